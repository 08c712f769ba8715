package geom

import (
	"github.com/pkg/errors"
)

// Tool identifies the operation that produced an element.
type Tool int

const (
	ToolGiven Tool = iota
	ToolLine
	ToolCircle
	ToolPerpendicular
	ToolPerpendicularBisector
	ToolAngleBisector
	ToolParallel
	ToolCompass
)

// Tools lists every tool that can appear in a construction step, in the order
// that candidate steps are generated.
var Tools = []Tool{
	ToolLine,
	ToolCircle,
	ToolPerpendicular,
	ToolPerpendicularBisector,
	ToolAngleBisector,
	ToolParallel,
	ToolCompass,
}

var toolNames = map[Tool]string{
	ToolGiven:                 "given",
	ToolLine:                  "line",
	ToolCircle:                "circle",
	ToolPerpendicular:         "perpendicular",
	ToolPerpendicularBisector: "perpendicular-bisector",
	ToolAngleBisector:         "angle-bisector",
	ToolParallel:              "parallel",
	ToolCompass:               "compass",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return "unknown"
}

func ParseTool(name string) (Tool, error) {
	for tool, toolName := range toolNames {
		if toolName == name {
			return tool, nil
		}
	}
	return 0, errors.Errorf("unknown tool %q", name)
}

// Arity is the number of input points the tool consumes. Perpendicular and
// parallel additionally take a base line.
func (t Tool) Arity() int {
	switch t {
	case ToolLine, ToolCircle, ToolPerpendicularBisector:
		return 2
	case ToolAngleBisector, ToolCompass:
		return 3
	case ToolPerpendicular, ToolParallel:
		return 1
	}
	return 0
}

// NeedsBase reports whether the tool takes a line element as input.
func (t Tool) NeedsBase() bool {
	return t == ToolPerpendicular || t == ToolParallel
}

// Definition records how an element was made: the tool and its inputs. The
// geometry of an element is a function of its definition, which is what lets
// a construction be replayed with different inputs.
type Definition struct {
	Tool   Tool
	Points []Point
	Base   *Line
}

// Apply runs a tool on the given inputs.
func Apply(tool Tool, points []Point, base *Line) (Element, error) {
	if tool == ToolGiven {
		return nil, degenerate(tool, "given elements cannot be rebuilt")
	}
	if len(points) != tool.Arity() {
		return nil, degenerate(tool, "expected %d points, got %d", tool.Arity(), len(points))
	}
	if tool.NeedsBase() && base == nil {
		return nil, degenerate(tool, "missing base line")
	}

	switch tool {
	case ToolLine:
		return LineThrough(points[0], points[1])
	case ToolCircle:
		return CircleThrough(points[0], points[1])
	case ToolPerpendicular:
		return Perpendicular(*base, points[0])
	case ToolPerpendicularBisector:
		return PerpendicularBisector(points[0], points[1])
	case ToolAngleBisector:
		return AngleBisector(points[0], points[1], points[2])
	case ToolParallel:
		return Parallel(*base, points[0])
	case ToolCompass:
		return Compass(points[0], points[1], points[2])
	}
	return nil, degenerate(tool, "tool cannot be applied")
}

// Rebuild reapplies an element's own definition. Elements that were given
// rather than constructed cannot be rebuilt.
func Rebuild(def Definition) (Element, error) {
	return Apply(def.Tool, def.Points, def.Base)
}
