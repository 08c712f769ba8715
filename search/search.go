// Package search runs depth-bounded searches over construction states.
//
// The engine is a plain recursive depth-first search. At each node the goal
// is checked before the depth limit, so a goal reached exactly at maxDepth is
// still reported. Below the goal check, a node is expanded only if depth
// remains, the prune predicate accepts it, and the optional lower bound on
// remaining steps still fits in the remaining depth.
//
// The engine satisfices: it returns the first goal state found in visiting
// order. Deepen layers iterative deepening on top to find the shallowest.
package search

import (
	"sort"

	"github.com/osuushi/euclid/construct"
)

// Check is a goal predicate.
type Check func(*construct.Context) bool

// Prune rejects a node before it is expanded. depth is the number of steps
// taken below the search root.
type Prune func(ctx *construct.Context, depth int) bool

// LowerBound returns a lower bound on the number of further steps needed to
// reach the goal from ctx. It must never overestimate, or solutions are lost.
type LowerBound func(ctx *construct.Context) int

// Priority scores children for visiting order, higher first. Ties keep the
// order produced by Nexts.
type Priority func(ctx *construct.Context) float64

type Option func(*engine)

func WithPrune(prune Prune) Option {
	return func(e *engine) { e.prune = prune }
}

func WithLowerBound(bound LowerBound) Option {
	return func(e *engine) { e.bound = bound }
}

func WithPriority(priority Priority) Option {
	return func(e *engine) { e.priority = priority }
}

// WithMetrics counts search events into m.
func WithMetrics(m *Metrics) Option {
	return func(e *engine) { e.metrics = m }
}

// engine holds the policies of one search run.
type engine struct {
	maxDepth int
	check    Check
	prune    Prune
	bound    LowerBound
	priority Priority
	metrics  *Metrics
}

// Solve searches below root for a state satisfying check, taking at most
// maxDepth further steps. It returns nil if there is none.
func Solve(root *construct.Context, maxDepth int, check Check, opts ...Option) *construct.Context {
	e := &engine{maxDepth: maxDepth, check: check}
	for _, opt := range opts {
		opt(e)
	}
	return e.dfs(root, 0)
}

func (e *engine) dfs(ctx *construct.Context, depth int) *construct.Context {
	e.metrics.node()
	e.metrics.goalCheck()
	if e.check(ctx) {
		e.metrics.solution()
		return ctx
	}
	if depth >= e.maxDepth {
		return nil
	}
	if e.prune != nil && e.prune(ctx, depth) {
		e.metrics.pruned(reasonPredicate)
		return nil
	}
	if e.bound != nil && depth+e.bound(ctx) > e.maxDepth {
		e.metrics.pruned(reasonBound)
		return nil
	}

	if e.priority == nil {
		for child := range ctx.Nexts() {
			if found := e.dfs(child, depth+1); found != nil {
				return found
			}
		}
		return nil
	}

	children := ctx.Children()
	scores := make([]float64, len(children))
	for i, child := range children {
		scores[i] = e.priority(child)
	}
	order := make([]int, len(children))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	for _, i := range order {
		if found := e.dfs(children[i], depth+1); found != nil {
			return found
		}
	}
	return nil
}

// Deepen runs Solve with limits minDepth, minDepth+1, ... maxDepth and
// returns the first solution with the depth it was found at, or nil and -1.
// With an admissible lower bound the result is a shortest solution.
func Deepen(root *construct.Context, minDepth, maxDepth int, check Check, opts ...Option) (*construct.Context, int) {
	if minDepth < 0 {
		minDepth = 0
	}
	for depth := minDepth; depth <= maxDepth; depth++ {
		if found := Solve(root, depth, check, opts...); found != nil {
			return found, depth
		}
	}
	return nil, -1
}
