package construct

import (
	"math"
	"testing"

	"github.com/osuushi/euclid/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	O = geom.Pt(0, 0)
	A = geom.Pt(1, 0)
)

func mustLine(t *testing.T, a, b geom.Point) geom.Line {
	l, err := geom.LineThrough(a, b)
	require.NoError(t, err)
	return l
}

func mustCircle(t *testing.T, center, sample geom.Point) geom.Circle {
	c, err := geom.CircleThrough(center, sample)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	ctx := New(DefaultConfig(), []geom.Point{O, A, geom.Pt(0, 1e-12)})
	// The last point coincides with O
	assert.Equal(t, 2, ctx.NumPoints())
	assert.Equal(t, 0, ctx.NumElements())
	assert.Equal(t, 0, ctx.Steps())
	assert.Nil(t, ctx.Last())
	assert.Nil(t, ctx.Parent())
	assert.Equal(t, []geom.Point{O, A}, ctx.GivenPoints())
	assert.True(t, ctx.Origin(1).Given)
	assert.NoError(t, ctx.Validate())
}

func TestNewWithGivenElements(t *testing.T) {
	seg, err := geom.Segment(geom.Pt(0, 0), geom.Pt(2, 0))
	require.NoError(t, err)
	circle, err := geom.CircleRadius(geom.Pt(3, 0), 2)
	require.NoError(t, err)

	ctx := New(DefaultConfig(), nil, seg, circle, seg)
	require.Equal(t, 2, ctx.NumElements())
	assert.Equal(t, 0, ctx.Steps())
	for _, e := range ctx.GivenElements() {
		assert.Equal(t, geom.ToolGiven, e.Def().Tool)
	}

	// Segment ends, circle centre, then the one intersection inside the
	// segment. (5, 0) is off the segment.
	require.Equal(t, 4, ctx.NumPoints())
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, ctx.GivenPoints())
	assert.True(t, ctx.Point(3).Coincides(geom.Pt(1, 0)))
	assert.Equal(t, Origin{A: 0, B: 1, Branch: 0}, ctx.Origin(3))
	assert.False(t, ctx.HasPoint(geom.Pt(5, 0)))
	assert.NoError(t, ctx.Validate())
}

func TestWithElement(t *testing.T) {
	root := New(DefaultConfig(), []geom.Point{O, A})
	c1 := mustCircle(t, O, A)
	c2 := mustCircle(t, A, O)

	ctx := root.WithElement(c1)
	assert.Equal(t, 1, ctx.Steps())
	assert.Equal(t, 2, ctx.NumPoints())
	assert.Same(t, root, ctx.Parent())
	assert.Equal(t, geom.Element(c1), ctx.Last())

	ctx = ctx.WithElement(c2)
	require.Equal(t, 4, ctx.NumPoints())
	h := math.Sqrt(3) / 2
	// Left of O->A first
	assert.True(t, ctx.Point(2).Coincides(geom.Pt(0.5, h)))
	assert.True(t, ctx.Point(3).Coincides(geom.Pt(0.5, -h)))
	assert.Equal(t, Origin{A: 0, B: 1, Branch: 0}, ctx.Origin(2))
	assert.Equal(t, Origin{A: 0, B: 1, Branch: 1}, ctx.Origin(3))
	assert.Len(t, ctx.NewPoints(), 2)

	// Ancestors are untouched
	assert.Equal(t, 2, root.NumPoints())
	assert.Equal(t, 0, root.NumElements())
	assert.Len(t, root.Points(), 2)
	assert.NoError(t, ctx.Validate())

	t.Run("idempotent", func(t *testing.T) {
		again := ctx.WithElement(mustCircle(t, O, geom.Pt(0, 1)))
		assert.Same(t, ctx, again)
		assert.True(t, again.HasElement(c1))
		assert.Equal(t, ctx.NumPoints(), again.NumPoints())
		assert.Equal(t, ctx.NumElements(), again.NumElements())
	})

	t.Run("indices", func(t *testing.T) {
		i, ok := ctx.ElementIndex(c2)
		require.True(t, ok)
		assert.Equal(t, 1, i)
		i, ok = ctx.PointIndex(geom.Pt(0.5, -h))
		require.True(t, ok)
		assert.Equal(t, 3, i)
		assert.True(t, ctx.HasPoints(O, A, geom.Pt(0.5, h)))
		assert.False(t, ctx.HasPoints(O, geom.Pt(7, 7)))
		assert.True(t, ctx.HasElements(c1, c2))
		assert.Equal(t, []geom.Element{c1, c2}, ctx.StepElements())
	})
}

func TestWithElements(t *testing.T) {
	root := New(DefaultConfig(), []geom.Point{O, A})
	l := mustLine(t, O, A)
	c := mustCircle(t, O, A)
	ctx := root.WithElements(l, c, l)
	assert.Equal(t, 2, ctx.Steps())
	assert.Equal(t, []geom.Element{l, c}, ctx.Elements())
	// (-1, 0) is new; (1, 0) is A
	assert.Equal(t, 3, ctx.NumPoints())
	assert.True(t, ctx.HasPoint(geom.Pt(-1, 0)))
}

func TestWithElementRespectsExtents(t *testing.T) {
	ray, err := geom.Ray(O, A)
	require.NoError(t, err)
	root := New(DefaultConfig(), nil, ray)
	ctx := root.WithElement(mustCircle(t, geom.Pt(-3, 0), geom.Pt(-3, 2)))
	// The circle crosses the x axis at -5 and -1, both behind the ray
	assert.Equal(t, root.NumPoints(), ctx.NumPoints())
	assert.Equal(t, 1, ctx.Steps())
}
