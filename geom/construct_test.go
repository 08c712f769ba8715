package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegenerateConstructions(t *testing.T) {
	p := Pt(1, 1)
	cases := []struct {
		name string
		fn   func() error
	}{
		{"line", func() error { _, err := LineThrough(p, p); return err }},
		{"circle", func() error { _, err := CircleThrough(p, p); return err }},
		{"radius", func() error { _, err := CircleRadius(p, 0); return err }},
		{"perpendicular bisector", func() error { _, err := PerpendicularBisector(p, p); return err }},
		{"angle bisector", func() error { _, err := AngleBisector(p, p, Pt(0, 0)); return err }},
		{"compass", func() error { _, err := Compass(p, p, Pt(0, 0)); return err }},
		{"rebuild given", func() error { _, err := Apply(ToolGiven, nil, nil); return err }},
		{"missing base", func() error { _, err := Apply(ToolParallel, []Point{p}, nil); return err }},
		{"wrong arity", func() error { _, err := Apply(ToolLine, []Point{p}, nil); return err }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.fn()
			require.Error(t, err)
			assert.True(t, IsDegenerate(err))
		})
	}
	assert.False(t, IsDegenerate(nil))
}

func TestDerivedTools(t *testing.T) {
	base := mustLine(t, Pt(0, 0), Pt(2, 0))

	t.Run("perpendicular", func(t *testing.T) {
		l, err := Perpendicular(base, Pt(1, 5))
		require.NoError(t, err)
		assert.True(t, l.SameLine(mustLine(t, Pt(1, 0), Pt(1, 1))))
		assert.Equal(t, ToolPerpendicular, l.Def().Tool)
		require.NotNil(t, l.Def().Base)
		assert.True(t, l.Def().Base.SameLine(base))
	})

	t.Run("parallel", func(t *testing.T) {
		l, err := Parallel(base, Pt(1, 5))
		require.NoError(t, err)
		assert.True(t, l.SameLine(mustLine(t, Pt(0, 5), Pt(1, 5))))
	})

	t.Run("perpendicular bisector", func(t *testing.T) {
		l, err := PerpendicularBisector(Pt(0, 0), Pt(2, 2))
		require.NoError(t, err)
		assert.True(t, l.SameLine(mustLine(t, Pt(0, 2), Pt(2, 0))))
	})

	t.Run("angle bisector", func(t *testing.T) {
		l, err := AngleBisector(Pt(3, 0), Pt(0, 0), Pt(0, 7))
		require.NoError(t, err)
		assert.True(t, l.SameLine(mustLine(t, Pt(0, 0), Pt(1, 1))))

		straight, err := AngleBisector(Pt(-1, 0), Pt(0, 0), Pt(1, 0))
		require.NoError(t, err)
		assert.True(t, straight.SameLine(mustLine(t, Pt(0, 0), Pt(0, 1))))
	})

	t.Run("compass", func(t *testing.T) {
		c, err := Compass(Pt(0, 0), Pt(3, 4), Pt(10, 10))
		require.NoError(t, err)
		assert.Equal(t, 5.0, c.Radius)
		assert.False(t, c.HasSample)
		assert.True(t, c.Contains(Pt(15, 10)))
	})
}

func TestApplyRebuildsDefinition(t *testing.T) {
	base := mustLine(t, Pt(0, 0), Pt(2, 1))
	elements := []Element{
		mustLine(t, Pt(1, 2), Pt(3, -1)),
		mustCircle(t, Pt(1, 2), Pt(3, -1)),
	}
	for _, build := range []func() (Element, error){
		func() (Element, error) { return Perpendicular(base, Pt(4, 4)) },
		func() (Element, error) { return Parallel(base, Pt(4, 4)) },
		func() (Element, error) { return PerpendicularBisector(Pt(1, 1), Pt(4, 0)) },
		func() (Element, error) { return AngleBisector(Pt(1, 1), Pt(4, 0), Pt(2, 5)) },
		func() (Element, error) { return Compass(Pt(1, 1), Pt(4, 0), Pt(2, 5)) },
	} {
		e, err := build()
		require.NoError(t, err)
		elements = append(elements, e)
	}

	for _, e := range elements {
		t.Run(e.Def().Tool.String(), func(t *testing.T) {
			rebuilt, err := Rebuild(e.Def())
			require.NoError(t, err)
			assert.True(t, SameElement(e, rebuilt))
		})
	}
}

func TestGivenAndExtents(t *testing.T) {
	seg, err := Segment(Pt(0, 0), Pt(2, 0))
	require.NoError(t, err)
	assert.True(t, seg.Contains(Pt(1, 0)))
	assert.True(t, seg.Contains(Pt(2, 0)))
	assert.False(t, seg.Contains(Pt(3, 0)))
	assert.False(t, seg.Contains(Pt(-1, 0)))
	assert.False(t, seg.Contains(Pt(1, 1)))

	ray, err := Ray(Pt(0, 0), Pt(2, 0))
	require.NoError(t, err)
	assert.True(t, ray.Contains(Pt(300, 0)))
	assert.False(t, ray.Contains(Pt(-1, 0)))

	given := Given(seg)
	assert.Equal(t, ToolGiven, given.Def().Tool)
	assert.True(t, SameElement(seg, given))
	assert.True(t, given.(Line).BoundedB)

	c, err := CircleRadius(Pt(1, 1), math.Sqrt2)
	require.NoError(t, err)
	assert.True(t, c.Contains(Pt(0, 0)))
	assert.False(t, SameElement(c, seg))
}

func TestToolNames(t *testing.T) {
	for _, tool := range append([]Tool{ToolGiven}, Tools...) {
		parsed, err := ParseTool(tool.String())
		require.NoError(t, err)
		assert.Equal(t, tool, parsed)
	}
	_, err := ParseTool("protractor")
	assert.Error(t, err)
}
