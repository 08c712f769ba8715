package geom

import (
	"fmt"
	"math"
)

// Element is one of the two constructible curve types, Line or Circle.
//
// The interface is closed: the unexported method keeps other types from
// accidentally satisfying it, so type switches over Line and Circle are
// exhaustive.
type Element interface {
	Def() Definition
	// Contains reports whether p lies on the drawn extent of the element.
	Contains(p Point) bool
	String() string

	isElement()
}

func (Line) isElement()   {}
func (Circle) isElement() {}

// Line through two defining points. The bounded flags limit the drawn extent
// at each end (full line, ray or segment). They only affect which
// intersections are on the line, never its direction or equality.
type Line struct {
	A, B               Point
	BoundedA, BoundedB bool

	// Canonical form n·p = c, with n a unit normal pointing into the half plane
	// x > 0 (or y > 0 for vertical normals).
	n Point
	c float64

	def Definition
}

func newLine(a, b Point, def Definition) Line {
	n := b.Sub(a).Perp().Unit()
	if n.X < 0 || (n.X == 0 && n.Y < 0) {
		n = n.Scale(-1)
	}
	return Line{A: a, B: b, n: n, c: n.Dot(a), def: def}
}

func (l Line) Def() Definition { return l.def }

// Normal returns the canonical unit normal of the line.
func (l Line) Normal() Point { return l.n }

// Offset returns c in the canonical equation n·p = c.
func (l Line) Offset() float64 { return l.c }

// Direction is the unit vector from A towards B.
func (l Line) Direction() Point { return l.B.Sub(l.A).Unit() }

// Distance is the unsigned distance from p to the infinite line.
func (l Line) Distance(p Point) float64 {
	return math.Abs(l.n.Dot(p) - l.c)
}

// Param projects p onto the line, in units where A is 0 and B is 1.
func (l Line) Param(p Point) float64 {
	d := l.B.Sub(l.A)
	return p.Sub(l.A).Dot(d) / d.SqLen()
}

func (l Line) Contains(p Point) bool {
	if !Equal(l.n.Dot(p), l.c) {
		return false
	}
	if !l.BoundedA && !l.BoundedB {
		return true
	}
	// Compare along the line in absolute units so the tolerance does not scale
	// with the segment length.
	length := l.B.Sub(l.A).Len()
	t := l.Param(p) * length
	if l.BoundedA && t < -Tolerance*math.Max(1, length) {
		return false
	}
	if l.BoundedB && t > length+Tolerance*math.Max(1, length) {
		return false
	}
	return true
}

// SameLine compares the infinite lines, ignoring extents.
func (l Line) SameLine(o Line) bool {
	if Equal(l.n.X, o.n.X) && Equal(l.n.Y, o.n.Y) && Equal(l.c, o.c) {
		return true
	}
	// A near-vertical normal can land on either side of the sign convention.
	return Equal(l.n.X, -o.n.X) && Equal(l.n.Y, -o.n.Y) && Equal(l.c, -o.c)
}

func (l Line) String() string {
	kind := "line"
	switch {
	case l.BoundedA && l.BoundedB:
		kind = "segment"
	case l.BoundedA:
		kind = "ray"
	}
	return fmt.Sprintf("%s %v-%v", kind, l.A, l.B)
}

// Circle with a centre and radius. A circle drawn through a point keeps that
// sample point for display and provenance.
type Circle struct {
	Center    Point
	Radius    float64
	Sample    Point
	HasSample bool

	def Definition
}

func (c Circle) Def() Definition { return c.def }

func (c Circle) Contains(p Point) bool {
	return Equal(p.Dist(c.Center), c.Radius)
}

func (c Circle) SameCircle(o Circle) bool {
	return c.Center.Coincides(o.Center) && Equal(c.Radius, o.Radius)
}

func (c Circle) String() string {
	if c.HasSample {
		return fmt.Sprintf("circle %v through %v", c.Center, c.Sample)
	}
	return fmt.Sprintf("circle %v r=%.6g", c.Center, c.Radius)
}

// SameElement is the tolerant equality for elements. Elements of different
// kinds are never the same.
func SameElement(a, b Element) bool {
	switch a := a.(type) {
	case Line:
		if b, ok := b.(Line); ok {
			return a.SameLine(b)
		}
	case Circle:
		if b, ok := b.(Circle); ok {
			return a.SameCircle(b)
		}
	}
	return false
}
