// Package render draws constructions to PNG images, and can show them inline
// in terminals that support the iTerm image protocol.
package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/euclid/construct"
	"github.com/osuushi/euclid/geom"
	"github.com/pkg/errors"
)

// Padding around the figure, in pixels
const drawPadding = 40

// Draw renders ctx at scale pixels per unit. Given elements are grey, the
// last step is highlighted, and points are labelled by index.
func Draw(ctx *construct.Context, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p geom.Point, r float64) {
		minX = math.Min(minX, p.X-r)
		minY = math.Min(minY, p.Y-r)
		maxX = math.Max(maxX, p.X+r)
		maxY = math.Max(maxY, p.Y+r)
	}
	for _, p := range ctx.Points() {
		grow(p, 0)
	}
	for _, e := range ctx.Elements() {
		if c, ok := e.(geom.Circle); ok {
			grow(c.Center, c.Radius)
		}
	}
	if ctx.NumPoints() == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.Clear()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Long enough for unbounded lines to leave the canvas
	reach := math.Hypot(float64(width), float64(height)) / scale

	c.SetLineWidth(2)
	for i, e := range ctx.Elements() {
		switch {
		case i < ctx.NumGivenElements():
			c.SetRGB(0.6, 0.6, 0.6)
		case i == ctx.NumElements()-1:
			c.SetRGB(1, 1, 0)
		default:
			c.SetRGB(0.3, 0.8, 1)
		}
		drawElement(c, e, reach)
		c.Stroke()
	}

	for i, p := range ctx.Points() {
		if ctx.Origin(i).Given {
			c.SetRGB(1, 0.3, 0.3)
		} else {
			c.SetRGB(1, 1, 1)
		}
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()

		// Text has to be drawn unflipped, so go back to device coordinates
		x, y := c.TransformPoint(p.X, p.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(fmt.Sprintf("p%d", i), x+6, y-6, 0, 0)
		c.Pop()
	}
	return c
}

func drawElement(c *gg.Context, e geom.Element, reach float64) {
	switch e := e.(type) {
	case geom.Circle:
		c.DrawCircle(e.Center.X, e.Center.Y, e.Radius)
	case geom.Line:
		dir := e.Direction()
		start, end := e.A, e.B
		if !e.BoundedA {
			start = start.Sub(dir.Scale(reach))
		}
		if !e.BoundedB {
			end = end.Add(dir.Scale(reach))
		}
		c.DrawLine(start.X, start.Y, end.X, end.Y)
	}
}

func SavePNG(ctx *construct.Context, path string, scale float64) error {
	if err := Draw(ctx, scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Cat prints an image to the terminal (iTerm only).
func Cat(path string) {
	imgcat.CatFile(path, os.Stdout)
}

// Show draws ctx to a temporary file and prints it to the terminal.
func Show(ctx *construct.Context, scale float64) error {
	path := filepath.Join(os.TempDir(), "euclid.png")
	if err := SavePNG(ctx, path, scale); err != nil {
		return err
	}
	Cat(path)
	return nil
}
