package geom

// Tool constructors. Each returns a DegenerateConstructionError when the tool
// is not available for its inputs.

func LineThrough(a, b Point) (Line, error) {
	if a.Coincides(b) {
		return Line{}, degenerate(ToolLine, "points %v and %v coincide", a, b)
	}
	return newLine(a, b, Definition{Tool: ToolLine, Points: []Point{a, b}}), nil
}

// Segment is a line bounded at both defining points. Segments only occur as
// given elements.
func Segment(a, b Point) (Line, error) {
	l, err := LineThrough(a, b)
	if err != nil {
		return Line{}, err
	}
	l.BoundedA, l.BoundedB = true, true
	return l, nil
}

// Ray starts at a and extends through b.
func Ray(a, b Point) (Line, error) {
	l, err := LineThrough(a, b)
	if err != nil {
		return Line{}, err
	}
	l.BoundedA = true
	return l, nil
}

// CircleThrough is the plain circle tool: centred at center, passing through
// sample.
func CircleThrough(center, sample Point) (Circle, error) {
	if center.Coincides(sample) {
		return Circle{}, degenerate(ToolCircle, "center %v and sample %v coincide", center, sample)
	}
	return Circle{
		Center:    center,
		Radius:    center.Dist(sample),
		Sample:    sample,
		HasSample: true,
		def:       Definition{Tool: ToolCircle, Points: []Point{center, sample}},
	}, nil
}

// CircleRadius builds a circle from an explicit radius. It is used for given
// circles; the compass tool goes through Compass.
func CircleRadius(center Point, radius float64) (Circle, error) {
	if radius <= 0 || Equal(radius, 0) {
		return Circle{}, degenerate(ToolGiven, "radius %v is not positive", radius)
	}
	return Circle{
		Center: center,
		Radius: radius,
		def:    Definition{Tool: ToolGiven, Points: []Point{center}},
	}, nil
}

// Perpendicular is the line through p perpendicular to l.
func Perpendicular(l Line, p Point) (Line, error) {
	base := l
	return newLine(p, p.Add(l.Direction().Perp()), Definition{
		Tool:   ToolPerpendicular,
		Points: []Point{p},
		Base:   &base,
	}), nil
}

// PerpendicularBisector of the segment ab.
func PerpendicularBisector(a, b Point) (Line, error) {
	if a.Coincides(b) {
		return Line{}, degenerate(ToolPerpendicularBisector, "points %v and %v coincide", a, b)
	}
	m := a.Midpoint(b)
	return newLine(m, m.Add(b.Sub(a).Perp().Unit()), Definition{
		Tool:   ToolPerpendicularBisector,
		Points: []Point{a, b},
	}), nil
}

// AngleBisector bisects the angle a-vertex-c. A straight angle bisects to the
// perpendicular at the vertex.
func AngleBisector(a, vertex, c Point) (Line, error) {
	if a.Coincides(vertex) || c.Coincides(vertex) {
		return Line{}, degenerate(ToolAngleBisector, "arm point coincides with vertex %v", vertex)
	}
	u := a.Sub(vertex).Unit()
	v := c.Sub(vertex).Unit()
	dir := u.Add(v)
	if dir.Len() < Tolerance {
		dir = u.Perp()
	}
	return newLine(vertex, vertex.Add(dir.Unit()), Definition{
		Tool:   ToolAngleBisector,
		Points: []Point{a, vertex, c},
	}), nil
}

// Parallel is the line through p parallel to l.
func Parallel(l Line, p Point) (Line, error) {
	base := l
	return newLine(p, p.Add(l.Direction()), Definition{
		Tool:   ToolParallel,
		Points: []Point{p},
		Base:   &base,
	}), nil
}

// Compass draws a circle centred at center with radius |ab|. Unlike the plain
// circle tool, the circle need not pass through any of its inputs.
func Compass(a, b, center Point) (Circle, error) {
	if a.Coincides(b) {
		return Circle{}, degenerate(ToolCompass, "radius points %v and %v coincide", a, b)
	}
	return Circle{
		Center: center,
		Radius: a.Dist(b),
		def:    Definition{Tool: ToolCompass, Points: []Point{a, b, center}},
	}, nil
}

// Given marks an element as a puzzle input. Given elements keep their
// geometry but are matched positionally when a construction is replayed.
func Given(e Element) Element {
	switch e := e.(type) {
	case Line:
		e.def = Definition{Tool: ToolGiven, Points: []Point{e.A, e.B}}
		return e
	case Circle:
		points := []Point{e.Center}
		if e.HasSample {
			points = append(points, e.Sample)
		}
		e.def = Definition{Tool: ToolGiven, Points: points}
		return e
	}
	return e
}
