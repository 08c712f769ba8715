package geom

import "math"

// Canonical sets deduplicate points and elements under the tolerant equality.
// See bucketSet for the approach.
//
// Known approximation: epsilon-ball equality is not transitive, so a chain of
// values each within tolerance of the next can dedupe differently depending
// on insertion order. This is only sound while the tolerance is small
// relative to the minimum feature separation of a puzzle.

type PointSet struct {
	set bucketSet[Point]
}

func NewPointSet(points ...Point) *PointSet {
	s := &PointSet{set: newBucketSet(2, pointKeys, Point.Coincides)}
	s.AddAll(points...)
	return s
}

func pointKeys(p Point) []cell {
	return []cell{cellOf(p.X, p.Y)}
}

func (s *PointSet) Contains(p Point) bool {
	_, ok := s.set.index(p)
	return ok
}

// Index returns the insertion index of the stored point coincident with p.
func (s *PointSet) Index(p Point) (int, bool) { return s.set.index(p) }

// Add reports whether p was newly added.
func (s *PointSet) Add(p Point) bool {
	_, added := s.set.add(p)
	return added
}

// AddAll returns the number of points newly added.
func (s *PointSet) AddAll(points ...Point) int {
	n := 0
	for _, p := range points {
		if s.Add(p) {
			n++
		}
	}
	return n
}

func (s *PointSet) Items() []Point { return s.set.snapshot() }
func (s *PointSet) Len() int       { return len(s.set.items) }

type LineSet struct {
	set bucketSet[Line]
}

func NewLineSet(lines ...Line) *LineSet {
	s := &LineSet{set: newBucketSet(2, lineKeys, Line.SameLine)}
	for _, l := range lines {
		s.Add(l)
	}
	return s
}

// Lines are keyed by the angle of their normal, folded into [0, π), and their
// offset. Folding flips the offset sign, so near the fold the other
// representation is probed as well.
func lineKeys(l Line) []cell {
	theta := math.Atan2(l.n.Y, l.n.X)
	c := l.c
	if theta < 0 {
		theta += math.Pi
		c = -c
	}
	if theta >= math.Pi {
		theta -= math.Pi
		c = -c
	}
	keys := []cell{cellOf(theta, c)}
	if theta < 2*CellSize {
		keys = append(keys, cellOf(theta+math.Pi, -c))
	} else if theta > math.Pi-2*CellSize {
		keys = append(keys, cellOf(theta-math.Pi, -c))
	}
	return keys
}

func (s *LineSet) Contains(l Line) bool {
	_, ok := s.set.index(l)
	return ok
}

func (s *LineSet) Index(l Line) (int, bool) { return s.set.index(l) }

func (s *LineSet) Add(l Line) bool {
	_, added := s.set.add(l)
	return added
}

func (s *LineSet) Items() []Line { return s.set.snapshot() }
func (s *LineSet) Len() int      { return len(s.set.items) }

type CircleSet struct {
	set bucketSet[Circle]
}

func NewCircleSet(circles ...Circle) *CircleSet {
	s := &CircleSet{set: newBucketSet(3, circleKeys, Circle.SameCircle)}
	for _, c := range circles {
		s.Add(c)
	}
	return s
}

func circleKeys(c Circle) []cell {
	return []cell{cellOf(c.Center.X, c.Center.Y, c.Radius)}
}

func (s *CircleSet) Contains(c Circle) bool {
	_, ok := s.set.index(c)
	return ok
}

func (s *CircleSet) Index(c Circle) (int, bool) { return s.set.index(c) }

func (s *CircleSet) Add(c Circle) bool {
	_, added := s.set.add(c)
	return added
}

func (s *CircleSet) Items() []Circle { return s.set.snapshot() }
func (s *CircleSet) Len() int        { return len(s.set.items) }

// ElementSet composes a LineSet and a CircleSet. Items and Index follow the
// combined insertion order.
type ElementSet struct {
	lines   LineSet
	circles CircleSet
	order   []Element
	// Position in order of the n-th line and n-th circle.
	linePos, circlePos []int
}

func NewElementSet(elements ...Element) *ElementSet {
	s := &ElementSet{
		lines:   LineSet{set: newBucketSet(2, lineKeys, Line.SameLine)},
		circles: CircleSet{set: newBucketSet(3, circleKeys, Circle.SameCircle)},
	}
	s.AddAll(elements...)
	return s
}

func (s *ElementSet) Contains(e Element) bool {
	_, ok := s.Index(e)
	return ok
}

func (s *ElementSet) Index(e Element) (int, bool) {
	switch e := e.(type) {
	case Line:
		if i, ok := s.lines.Index(e); ok {
			return s.linePos[i], true
		}
	case Circle:
		if i, ok := s.circles.Index(e); ok {
			return s.circlePos[i], true
		}
	}
	return -1, false
}

func (s *ElementSet) Add(e Element) bool {
	switch e := e.(type) {
	case Line:
		if !s.lines.Add(e) {
			return false
		}
		s.linePos = append(s.linePos, len(s.order))
	case Circle:
		if !s.circles.Add(e) {
			return false
		}
		s.circlePos = append(s.circlePos, len(s.order))
	default:
		return false
	}
	s.order = append(s.order, e)
	return true
}

func (s *ElementSet) AddAll(elements ...Element) int {
	n := 0
	for _, e := range elements {
		if s.Add(e) {
			n++
		}
	}
	return n
}

func (s *ElementSet) Items() []Element {
	out := make([]Element, len(s.order))
	copy(out, s.order)
	return out
}

func (s *ElementSet) Len() int { return len(s.order) }
