package dbg

import (
	"strings"
	"testing"

	"github.com/osuushi/euclid/construct"
	"github.com/osuushi/euclid/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	type thing struct{ n int }
	a, b := &thing{1}, &thing{1}

	assert.Equal(t, Name(a), Name(a))
	assert.NotEqual(t, Name(a), Name(b))
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name((*thing)(nil)))

	// Values that can't be map keys still get stable names
	l, err := geom.LineThrough(geom.Pt(0, 0), geom.Pt(1, 1))
	require.NoError(t, err)
	assert.Equal(t, Name(l), Name(l))
	assert.NotEmpty(t, Name(3))
}

func TestSteps(t *testing.T) {
	Colors = false
	defer func() { Colors = true }()

	segment, err := geom.Segment(geom.Pt(-2, 0), geom.Pt(2, 0))
	require.NoError(t, err)
	ctx := construct.New(construct.DefaultConfig(), []geom.Point{geom.Pt(1, 0)}, segment)
	circle, err := geom.CircleThrough(geom.Pt(1, 0), geom.Pt(2, 0))
	require.NoError(t, err)
	perp, err := geom.Perpendicular(segment, geom.Pt(1, 0))
	require.NoError(t, err)
	ctx = ctx.WithElements(circle, perp)

	lines := strings.Split(strings.TrimSpace(Steps(ctx)), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "2 steps, 6 points")
	assert.Equal(t, "  given p0(1, 0) p1(-2, 0) p2(2, 0)", lines[1])
	assert.Equal(t, "  e0 = given(p1, p2)", lines[2])
	assert.Equal(t, "  e1 = circle(p0, p2) → p3", lines[3])
	assert.Equal(t, "  e2 = perpendicular(e0, p0) → p4 p5", lines[4])
}

func TestDump(t *testing.T) {
	out := Dump(geom.Pt(1, 2))
	assert.Contains(t, out, "X:")
	assert.Contains(t, out, "Y:")
}
