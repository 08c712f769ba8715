// A search for shortest straightedge-and-compass constructions.
//
// A construction starts from given points and elements and adds one element
// per step, using a configurable set of tools. This package is the short
// path into the engine: build an initial state, hand a goal predicate to
// Solve or Shortest, and check that a construction generalises with
// ReplaySteps. The subpackages hold the details.
package euclid

import (
	"github.com/osuushi/euclid/construct"
	"github.com/osuushi/euclid/geom"
	"github.com/osuushi/euclid/replay"
	"github.com/osuushi/euclid/search"
)

type Point = geom.Point
type Element = geom.Element
type Line = geom.Line
type Circle = geom.Circle
type Tool = geom.Tool

type Context = construct.Context
type Config = construct.Config
type ToolSet = construct.ToolSet

type Check = search.Check
type Prune = search.Prune

// InitialContext builds the starting state of a puzzle.
func InitialContext(config Config, points []Point, elements ...Element) *Context {
	return construct.New(config, points, elements...)
}

// Solve searches for a construction satisfying check within maxDepth steps.
// The prune predicate may be nil. The result is nil when there is none.
func Solve(initial *Context, maxDepth int, prune Prune, check Check) *Context {
	var opts []search.Option
	if prune != nil {
		opts = append(opts, search.WithPrune(prune))
	}
	return search.Solve(initial, maxDepth, check, opts...)
}

// Shortest finds a construction with the fewest steps, up to maxDepth. The
// step count is -1 when there is none.
func Shortest(initial *Context, maxDepth int, check Check) (*Context, int) {
	return search.Deepen(initial, 0, maxDepth, check)
}

// ReplaySteps redoes the steps of reference on another instance of the same
// puzzle.
//
// The initial state must have the same shape as the reference's: as many
// given points, and given elements of the same kinds, in the same order. The
// error is a *replay.UnificationError when the steps don't carry over, or a
// *geom.DegenerateConstructionError when a tool can't be applied to the new
// coordinates.
func ReplaySteps(reference, initial *Context) (*Context, error) {
	return replay.Steps(reference, initial)
}
