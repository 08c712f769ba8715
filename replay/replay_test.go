package replay

import (
	"testing"

	"github.com/osuushi/euclid/construct"
	"github.com/osuushi/euclid/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

// Equilateral triangle on OA, with the apex on the left of O->A.
func equilateral(t *testing.T, o, a geom.Point) *construct.Context {
	ctx := construct.New(construct.DefaultConfig(), []geom.Point{o, a})
	c1 := mustCircle(t, o, a)
	c2 := mustCircle(t, a, o)
	apex := geom.Intersect(c1, c2).First()
	return ctx.WithElements(c1, c2, mustLine(t, o, apex), mustLine(t, a, apex))
}

func TestReplayEquilateral(t *testing.T) {
	reference := equilateral(t, geom.Pt(0, 0), geom.Pt(1, 0))

	o, a := geom.Pt(0.3, -0.2), geom.Pt(2.1, 0.7)
	initial := construct.New(construct.DefaultConfig(), []geom.Point{o, a})
	replayed, err := Steps(reference, initial)
	require.NoError(t, err)

	assert.Equal(t, reference.Steps(), replayed.Steps())
	assert.Equal(t, reference.NumPoints(), replayed.NumPoints())
	assert.Same(t, initial, replayed.Parent().Parent().Parent().Parent())
	assert.NoError(t, replayed.Validate())

	// Same construction built directly for the new instance
	expected := equilateral(t, o, a)
	assert.True(t, replayed.HasElements(expected.StepElements()...))
	for i, e := range replayed.StepElements() {
		assert.Equal(t, reference.StepElements()[i].Def().Tool, e.Def().Tool)
	}
}

func TestReplayGivenElements(t *testing.T) {
	setup := func(center geom.Point, radius float64) *construct.Context {
		seg, err := geom.Segment(geom.Pt(-3, 0), geom.Pt(3, 0))
		require.NoError(t, err)
		circle, err := geom.CircleRadius(center, radius)
		require.NoError(t, err)
		return construct.New(construct.Config{Tools: construct.All}, nil, seg, circle)
	}

	reference := setup(geom.Pt(0, 1), 2)
	// Both crossings of the segment with the circle
	require.Equal(t, 5, reference.NumPoints())
	bisector, err := geom.PerpendicularBisector(reference.Point(3), reference.Point(4))
	require.NoError(t, err)
	compass, err := geom.Compass(reference.Point(3), reference.Point(4), reference.Point(2))
	require.NoError(t, err)
	reference = reference.WithElements(bisector, compass)

	replayed, err := Steps(reference, setup(geom.Pt(0.5, -0.4), 1.7))
	require.NoError(t, err)
	assert.Equal(t, 2, replayed.Steps())
	l := replayed.Element(2).(geom.Line)
	assert.True(t, l.Contains(geom.Pt(0.5, 7)))
	c := replayed.Element(3).(geom.Circle)
	assert.True(t, c.Center.Coincides(geom.Pt(0.5, -0.4)))
}

func TestReplayFailures(t *testing.T) {
	reference := equilateral(t, geom.Pt(0, 0), geom.Pt(1, 0))

	t.Run("given count mismatch", func(t *testing.T) {
		initial := construct.New(construct.DefaultConfig(), []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(5, 5)})
		_, err := Steps(reference, initial)
		require.Error(t, err)
		assert.True(t, IsUnification(err))
	})

	t.Run("given element kinds", func(t *testing.T) {
		line := mustLine(t, geom.Pt(0, 0), geom.Pt(1, 0))
		circle := mustCircle(t, geom.Pt(0, 0), geom.Pt(1, 0))
		ref := construct.New(construct.DefaultConfig(), nil, line)
		_, err := Steps(ref, construct.New(construct.DefaultConfig(), nil, circle))
		assert.True(t, IsUnification(err))
	})

	t.Run("vanished intersection", func(t *testing.T) {
		setup := func(gap float64) *construct.Context {
			return construct.New(construct.DefaultConfig(), []geom.Point{
				geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, gap), geom.Pt(1, gap),
			})
		}
		ref := setup(1.5)
		c1 := mustCircle(t, geom.Pt(0, 0), geom.Pt(1, 0))
		c2 := mustCircle(t, geom.Pt(0, 1.5), geom.Pt(1, 1.5))
		x := geom.Intersect(c1, c2)
		require.Equal(t, geom.TwoPoints, x.Kind)
		ref = ref.WithElements(c1, c2, mustLine(t, x.First(), x.Second()))

		// The circles no longer meet
		_, err := Steps(ref, setup(3))
		require.Error(t, err)
		assert.True(t, IsUnification(err))
		assert.Contains(t, err.Error(), "vanished")
	})

	t.Run("accidental coincidence", func(t *testing.T) {
		setup := func(b geom.Point) *construct.Context {
			return construct.New(construct.DefaultConfig(), []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), b})
		}
		ref := setup(geom.Pt(3, 1)).WithElements(
			mustLine(t, geom.Pt(0, 0), geom.Pt(1, 0)),
			mustLine(t, geom.Pt(0, 0), geom.Pt(3, 1)),
		)
		// B on the first line makes the second line the same as the first
		_, err := Steps(ref, setup(geom.Pt(3, 0)))
		require.Error(t, err)
		assert.True(t, IsUnification(err))
	})

	t.Run("collapsed points", func(t *testing.T) {
		setup := func(b geom.Point) *construct.Context {
			return construct.New(construct.DefaultConfig(), []geom.Point{geom.Pt(0, 0), geom.Pt(2, 0), b})
		}
		// The circle meets the line at (1, 0) and (3, 0)
		ref := setup(geom.Pt(2, 1)).WithElements(
			mustLine(t, geom.Pt(0, 0), geom.Pt(2, 0)),
			mustCircle(t, geom.Pt(2, 0), geom.Pt(2, 1)),
		)
		// Doubling the radius makes the circle pass through O instead, which
		// is already a given point
		_, err := Steps(ref, setup(geom.Pt(2, 2)))
		require.Error(t, err)
		assert.True(t, IsUnification(err))
	})
}

func TestReplayIsRepeatable(t *testing.T) {
	reference := equilateral(t, geom.Pt(0, 0), geom.Pt(1, 0))
	initial := construct.New(construct.DefaultConfig(), []geom.Point{geom.Pt(-1, 2), geom.Pt(0.5, 3)})
	first, err := Steps(reference, initial)
	require.NoError(t, err)
	second, err := Steps(reference, initial)
	require.NoError(t, err)
	assert.Equal(t, first.Points(), second.Points())
}
