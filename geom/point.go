package geom

import (
	"fmt"
	"math"
)

// Tolerance is the relative/absolute epsilon used by every coincidence test.
// Constructions in the puzzles stay within a few hundred units of the origin
// and only a handful of steps deep, so accumulated float error is many orders
// of magnitude below this.
const Tolerance = 1e-9

// To compensate for imprecision in floats, equality is tolerance based. The
// tolerance is absolute near zero and relative for magnitudes above 1.
//
// This is not a true equivalence relation (it is not transitive), but callers
// rely on it behaving like one. That holds as long as no puzzle places two
// meaningful values within a few epsilon of each other.
func Equal(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Tolerance*scale
}

// Point is an immutable coordinate pair. Points have no identity beyond their
// value.
type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point      { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point      { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point  { return Point{p.X * s, p.Y * s} }
func (p Point) Dot(q Point) float64    { return p.X*q.X + p.Y*q.Y }
func (p Point) Cross(q Point) float64  { return p.X*q.Y - p.Y*q.X }
func (p Point) SqLen() float64         { return p.X*p.X + p.Y*p.Y }
func (p Point) Len() float64           { return math.Hypot(p.X, p.Y) }
func (p Point) Perp() Point            { return Point{-p.Y, p.X} }
func (p Point) Midpoint(q Point) Point { return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }
func (p Point) Dist(q Point) float64   { return p.Sub(q).Len() }
func (p Point) Coincides(q Point) bool { return Equal(p.X, q.X) && Equal(p.Y, q.Y) }
func (p Point) IsFinite() bool         { return isFinite(p.X) && isFinite(p.Y) }
func (p Point) String() string         { return fmt.Sprintf("(%.6g, %.6g)", p.X, p.Y) }

// Lerp interpolates from p (t=0) to q (t=1).
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

// Unit returns the vector scaled to length 1. The zero vector stays zero.
func (p Point) Unit() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return p.Scale(1 / l)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
