package construct

import (
	"iter"

	"github.com/osuushi/euclid/geom"
)

// Nexts enumerates every state reachable with one enabled tool application,
// in a fixed order:
//
//  1. line through points i < j
//  2. circle centred at i through j, for i != j
//  3. perpendicular to each line through each point
//  4. perpendicular bisector of points i < j
//  5. angle bisector at each vertex of points i < j
//  6. parallel to each line through each point
//  7. compass with radius |ij| for i < j, centred at each point
//
// A candidate is skipped if it is degenerate, coincides with an existing
// element or an earlier candidate, or introduces a point beyond the
// configured distance bound.
func (c *Context) Nexts() iter.Seq[*Context] {
	return func(yield func(*Context) bool) {
		points := c.Points()
		elements := c.Elements()
		tools := c.config.Tools
		seen := geom.NewElementSet()

		// offer reports whether to keep going.
		offer := func(e geom.Element, err error) bool {
			if err != nil || c.HasElement(e) || !seen.Add(e) {
				return true
			}
			next := c.derive(e, elements)
			for _, p := range next.points {
				if !c.config.inBounds(p) {
					return true
				}
			}
			return yield(next)
		}

		var lines []geom.Line
		for _, e := range elements {
			if l, ok := e.(geom.Line); ok {
				lines = append(lines, l)
			}
		}

		if tools.Has(geom.ToolLine) {
			for i := range points {
				for j := i + 1; j < len(points); j++ {
					if !offer(geom.LineThrough(points[i], points[j])) {
						return
					}
				}
			}
		}
		if tools.Has(geom.ToolCircle) {
			for i := range points {
				for j := range points {
					if i == j {
						continue
					}
					if !offer(geom.CircleThrough(points[i], points[j])) {
						return
					}
				}
			}
		}
		if tools.Has(geom.ToolPerpendicular) {
			for _, l := range lines {
				for _, p := range points {
					if !offer(geom.Perpendicular(l, p)) {
						return
					}
				}
			}
		}
		if tools.Has(geom.ToolPerpendicularBisector) {
			for i := range points {
				for j := i + 1; j < len(points); j++ {
					if !offer(geom.PerpendicularBisector(points[i], points[j])) {
						return
					}
				}
			}
		}
		if tools.Has(geom.ToolAngleBisector) {
			for v := range points {
				for i := range points {
					for j := i + 1; j < len(points); j++ {
						if i == v || j == v {
							continue
						}
						if !offer(geom.AngleBisector(points[i], points[v], points[j])) {
							return
						}
					}
				}
			}
		}
		if tools.Has(geom.ToolParallel) {
			for _, l := range lines {
				for _, p := range points {
					if !offer(geom.Parallel(l, p)) {
						return
					}
				}
			}
		}
		if tools.Has(geom.ToolCompass) {
			for i := range points {
				for j := i + 1; j < len(points); j++ {
					for k := range points {
						if !offer(geom.Compass(points[i], points[j], points[k])) {
							return
						}
					}
				}
			}
		}
	}
}

// Children collects Nexts into a slice.
func (c *Context) Children() []*Context {
	var out []*Context
	for next := range c.Nexts() {
		out = append(out, next)
	}
	return out
}
