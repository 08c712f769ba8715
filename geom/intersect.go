package geom

import "math"

type IntersectionKind int

const (
	Disjoint IntersectionKind = iota
	OnePoint
	TwoPoints
)

func (k IntersectionKind) String() string {
	switch k {
	case OnePoint:
		return "one"
	case TwoPoints:
		return "two"
	}
	return "disjoint"
}

// Intersection of two elements. Two-point results have a fixed order, and
// code downstream picks a branch by position, so the order must only depend on
// the inputs:
//
//   - line/circle: ordered along the line's direction from A to B, whichever
//     argument the line is.
//   - circle/circle: the first point lies to the left of the directed line
//     from the first circle's centre to the second's.
//
// The line/circle rule makes Intersect symmetric in its arguments for those
// pairs. For two circles, swapping the arguments swaps the points.
type Intersection struct {
	Kind   IntersectionKind
	Points [2]Point
}

func (i Intersection) Len() int {
	return int(i.Kind)
}

func (i Intersection) First() Point  { return i.Points[0] }
func (i Intersection) Second() Point { return i.Points[1] }

// Slice returns the intersection points in order.
func (i Intersection) Slice() []Point {
	return i.Points[:i.Len()]
}

func one(p Point) Intersection {
	return Intersection{Kind: OnePoint, Points: [2]Point{p}}
}

func two(p, q Point) Intersection {
	return Intersection{Kind: TwoPoints, Points: [2]Point{p, q}}
}

// Intersect computes the full geometric intersection, ignoring extents. Use
// Element.Contains to filter the result for rays and segments.
func Intersect(a, b Element) Intersection {
	switch a := a.(type) {
	case Line:
		switch b := b.(type) {
		case Line:
			return intersectLines(a, b)
		case Circle:
			return intersectLineCircle(a, b)
		}
	case Circle:
		switch b := b.(type) {
		case Line:
			return intersectLineCircle(b, a)
		case Circle:
			return intersectCircles(a, b)
		}
	}
	return Intersection{}
}

func intersectLines(a, b Line) Intersection {
	// Solve n1·p = c1, n2·p = c2 by Cramer's rule. The normals are unit
	// vectors, so the determinant is the sine of the angle between the lines.
	det := a.n.Cross(b.n)
	if math.Abs(det) < Tolerance {
		return Intersection{}
	}
	x := (a.c*b.n.Y - b.c*a.n.Y) / det
	y := (a.n.X*b.c - b.n.X*a.c) / det
	return one(Point{x, y})
}

func intersectLineCircle(l Line, c Circle) Intersection {
	dir := l.Direction()
	// Foot of the perpendicular from the centre.
	foot := l.A.Add(dir.Scale(c.Center.Sub(l.A).Dot(dir)))
	dist := foot.Dist(c.Center)
	if dist > c.Radius && !Equal(dist, c.Radius) {
		return Intersection{}
	}
	// A radial gap within tolerance is a tangency. Measuring the gap rather
	// than the root separation keeps computed tangencies from splitting into
	// two spurious points about sqrt(epsilon) apart.
	if Equal(dist, c.Radius) {
		return one(foot)
	}
	h := math.Sqrt(math.Max(c.Radius*c.Radius-dist*dist, 0))
	offset := dir.Scale(h)
	return two(foot.Sub(offset), foot.Add(offset))
}

func intersectCircles(a, b Circle) Intersection {
	axis := b.Center.Sub(a.Center)
	d := axis.Len()
	if d < Tolerance {
		// Concentric, including the same circle twice.
		return Intersection{}
	}
	scale := math.Max(1, math.Max(a.Radius, b.Radius))
	if d > a.Radius+b.Radius+Tolerance*scale || d < math.Abs(a.Radius-b.Radius)-Tolerance*scale {
		return Intersection{}
	}
	u := axis.Scale(1 / d)
	along := (d*d + a.Radius*a.Radius - b.Radius*b.Radius) / (2 * d)
	mid := a.Center.Add(u.Scale(along))
	if Equal(d, a.Radius+b.Radius) || Equal(d, math.Abs(a.Radius-b.Radius)) {
		return one(mid)
	}
	h := math.Sqrt(math.Max(a.Radius*a.Radius-along*along, 0))
	offset := u.Perp().Scale(h)
	return two(mid.Add(offset), mid.Sub(offset))
}
