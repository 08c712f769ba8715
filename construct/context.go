package construct

import (
	"sync"

	"github.com/osuushi/euclid/geom"
)

// Origin records where a point came from. Points that are not given are the
// intersection of two elements: Intersect(elements[A], elements[B]) at
// position Branch, with A < B.
type Origin struct {
	Given  bool
	A, B   int
	Branch int
}

// Context is an immutable snapshot of a construction: the known points, the
// elements drawn so far in order, and where each point came from.
//
// Contexts are layered. A derived Context only holds its own element and the
// points that element introduced, plus a pointer to its parent, so deriving a
// state never copies the history. The root layer holds everything that was
// given. Flattened views are built lazily and cached.
type Context struct {
	parent *Context
	config Config

	// Layer contents. element is nil on the root, which keeps its given
	// elements in elementSet instead.
	element    geom.Element
	elementSet *geom.ElementSet
	points     []geom.Point
	origins    []Origin
	// Only the root indexes its points. Derived layers introduce a handful
	// of points at most and are scanned.
	pointSet *geom.PointSet

	// Totals up to and including this layer.
	pointBase, pointCount     int
	elementBase, elementCount int
	givenElements             int

	pointsOnce   sync.Once
	flatPoints   []geom.Point
	elementsOnce sync.Once
	flatElements []geom.Element
}

// New builds the root state of a puzzle. Given points come first, then the
// defining points of each given element, then the given elements themselves
// along with their mutual intersections.
func New(config Config, points []geom.Point, elements ...geom.Element) *Context {
	c := &Context{
		config:     config,
		elementSet: geom.NewElementSet(),
		pointSet:   geom.NewPointSet(),
	}
	for _, p := range points {
		c.addPoint(p, Origin{Given: true})
	}
	givens := make([]geom.Element, len(elements))
	for i, e := range elements {
		givens[i] = geom.Given(e)
		for _, p := range givens[i].Def().Points {
			c.addPoint(p, Origin{Given: true})
		}
	}
	for _, e := range givens {
		if c.elementSet.Contains(e) {
			continue
		}
		existing := c.elementSet.Items()
		c.elementSet.Add(e)
		c.elementCount++
		c.intersectWith(e, existing)
	}
	c.givenElements = c.elementCount
	return c
}

func (c *Context) child() *Context {
	return &Context{
		parent:        c,
		config:        c.config,
		pointBase:     c.pointCount,
		pointCount:    c.pointCount,
		elementBase:   c.elementCount,
		elementCount:  c.elementCount,
		givenElements: c.givenElements,
	}
}

// addPoint appends p to this layer unless it is already known. Only valid
// while the layer is being built.
func (c *Context) addPoint(p geom.Point, origin Origin) bool {
	if c.HasPoint(p) {
		return false
	}
	c.points = append(c.points, p)
	c.origins = append(c.origins, origin)
	if c.pointSet != nil {
		c.pointSet.Add(p)
	}
	c.pointCount++
	return true
}

// intersectWith adds the intersections of e, which has just been given the
// last element index, with every element before it.
func (c *Context) intersectWith(e geom.Element, existing []geom.Element) {
	index := len(existing)
	for i, other := range existing {
		for branch, p := range geom.Intersect(other, e).Slice() {
			if !p.IsFinite() || !other.Contains(p) || !e.Contains(p) {
				continue
			}
			c.addPoint(p, Origin{A: i, B: index, Branch: branch})
		}
	}
}

// derive builds the child state with e appended. The caller must already
// know that e is new.
func (c *Context) derive(e geom.Element, existing []geom.Element) *Context {
	child := c.child()
	child.element = e
	child.elementCount++
	child.intersectWith(e, existing)
	return child
}

// WithElement returns a state with e appended, or c itself if an element
// coincident with e is already present.
func (c *Context) WithElement(e geom.Element) *Context {
	if e == nil || c.HasElement(e) {
		return c
	}
	return c.derive(e, c.Elements())
}

// WithElements appends each element in order.
func (c *Context) WithElements(elements ...geom.Element) *Context {
	for _, e := range elements {
		c = c.WithElement(e)
	}
	return c
}

func (c *Context) Config() Config { return c.config }

// Parent is the state this one was derived from, or nil for the root.
func (c *Context) Parent() *Context { return c.parent }

// Last is the most recently added element, or nil if no step was taken.
func (c *Context) Last() geom.Element { return c.element }

// Steps is the number of elements constructed on top of the givens.
func (c *Context) Steps() int { return c.elementCount - c.givenElements }

func (c *Context) NumPoints() int        { return c.pointCount }
func (c *Context) NumElements() int      { return c.elementCount }
func (c *Context) NumGivenElements() int { return c.givenElements }

// NewPoints are the points introduced by the last step.
func (c *Context) NewPoints() []geom.Point {
	return append([]geom.Point(nil), c.points...)
}

func (c *Context) localPointIndex(p geom.Point) (int, bool) {
	if c.pointSet != nil {
		return c.pointSet.Index(p)
	}
	for i, q := range c.points {
		if q.Coincides(p) {
			return i, true
		}
	}
	return -1, false
}

func (c *Context) PointIndex(p geom.Point) (int, bool) {
	for layer := c; layer != nil; layer = layer.parent {
		if i, ok := layer.localPointIndex(p); ok {
			return layer.pointBase + i, true
		}
	}
	return -1, false
}

func (c *Context) HasPoint(p geom.Point) bool {
	_, ok := c.PointIndex(p)
	return ok
}

func (c *Context) HasPoints(points ...geom.Point) bool {
	for _, p := range points {
		if !c.HasPoint(p) {
			return false
		}
	}
	return true
}

func (c *Context) ElementIndex(e geom.Element) (int, bool) {
	for layer := c; layer != nil; layer = layer.parent {
		if layer.elementSet != nil {
			if i, ok := layer.elementSet.Index(e); ok {
				return layer.elementBase + i, true
			}
		} else if geom.SameElement(layer.element, e) {
			return layer.elementBase, true
		}
	}
	return -1, false
}

func (c *Context) HasElement(e geom.Element) bool {
	_, ok := c.ElementIndex(e)
	return ok
}

func (c *Context) HasElements(elements ...geom.Element) bool {
	for _, e := range elements {
		if !c.HasElement(e) {
			return false
		}
	}
	return true
}

// Points returns every known point in insertion order. The slice is shared
// and must not be modified.
func (c *Context) Points() []geom.Point {
	c.pointsOnce.Do(func() {
		if c.parent == nil {
			c.flatPoints = c.points
			return
		}
		inherited := c.parent.Points()
		flat := make([]geom.Point, 0, c.pointCount)
		flat = append(flat, inherited...)
		c.flatPoints = append(flat, c.points...)
	})
	return c.flatPoints
}

// Elements returns every element in construction order, givens first. The
// slice is shared and must not be modified.
func (c *Context) Elements() []geom.Element {
	c.elementsOnce.Do(func() {
		if c.parent == nil {
			c.flatElements = c.elementSet.Items()
			return
		}
		inherited := c.parent.Elements()
		flat := make([]geom.Element, 0, c.elementCount)
		flat = append(flat, inherited...)
		c.flatElements = append(flat, c.element)
	})
	return c.flatElements
}

func (c *Context) Element(i int) geom.Element { return c.Elements()[i] }
func (c *Context) Point(i int) geom.Point     { return c.Points()[i] }

// Origin returns the provenance of the i-th point.
func (c *Context) Origin(i int) Origin {
	for layer := c; layer != nil; layer = layer.parent {
		if i >= layer.pointBase {
			return layer.origins[i-layer.pointBase]
		}
	}
	panic("point index out of range")
}

func (c *Context) root() *Context {
	for c.parent != nil {
		c = c.parent
	}
	return c
}

// GivenPoints are the root points with a given origin, in order.
func (c *Context) GivenPoints() []geom.Point {
	root := c.root()
	var out []geom.Point
	for i, p := range root.points {
		if root.origins[i].Given {
			out = append(out, p)
		}
	}
	return out
}

func (c *Context) GivenElements() []geom.Element {
	return c.root().elementSet.Items()
}

// StepElements are the constructed elements, without the givens.
func (c *Context) StepElements() []geom.Element {
	return c.Elements()[c.givenElements:]
}
