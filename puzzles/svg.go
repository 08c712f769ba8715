package puzzles

import (
	"embed"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/euclid/construct"
	"github.com/osuushi/euclid/geom"
	"github.com/osuushi/euclid/improve"
	"github.com/pkg/errors"
)

// Figures are drawn as SVG, which keeps them editable in any vector editor.
// This is not a general SVG reader. It understands:
//
//   - <circle class="point" id="A" cx cy>: a given point, named by its id
//   - <line class="line|ray|segment" x1 y1 x2 y2>: a given line. A ray
//     starts at (x1, y1).
//   - <circle class="circle" cx cy r>: a given circle
//
// Everything else is ignored. The y axis is flipped so figures read the same
// way as the math.

//go:embed fixtures
var fixtures embed.FS

// Figure is a parsed drawing: named points and given elements, in document
// order.
type Figure struct {
	Names    []string
	Points   []geom.Point
	Elements []geom.Element
}

// Params returns the points by name.
func (f *Figure) Params() improve.Params {
	params := make(improve.Params, len(f.Points))
	for i, name := range f.Names {
		params[name] = f.Points[i]
	}
	return params
}

// Context builds the root construction state of the figure.
func (f *Figure) Context(config construct.Config) *construct.Context {
	return construct.New(config, f.Points, f.Elements...)
}

// LoadSVG parses a figure from a file.
func LoadSVG(path string) (*Figure, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()
	figure, err := ParseSVG(file)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return figure, nil
}

func ParseSVG(r io.Reader) (*Figure, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	f := &Figure{}
	if err := f.walk(root); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadFixture parses one of the embedded figures by name, sans extension.
func LoadFixture(name string) (*Figure, error) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		return nil, errors.Wrapf(err, "loading fixture %q", name)
	}
	defer fixture.Close()
	figure, err := ParseSVG(fixture)
	if err != nil {
		return nil, errors.Wrapf(err, "fixture %q", name)
	}
	return figure, nil
}

func mustLoadFixture(name string) *Figure {
	figure, err := LoadFixture(name)
	if err != nil {
		panic(err)
	}
	return figure
}

func (f *Figure) walk(el *svgparser.Element) error {
	if err := f.add(el); err != nil {
		return err
	}
	for _, child := range el.Children {
		if err := f.walk(child); err != nil {
			return err
		}
	}
	return nil
}

func (f *Figure) add(el *svgparser.Element) error {
	class := el.Attributes["class"]
	switch {
	case el.Name == "circle" && class == "point":
		p, err := point(el, "cx", "cy")
		if err != nil {
			return err
		}
		name := el.Attributes["id"]
		if name == "" {
			name = fmt.Sprintf("P%d", len(f.Points))
		}
		f.Names = append(f.Names, name)
		f.Points = append(f.Points, p)

	case el.Name == "circle" && class == "circle":
		center, err := point(el, "cx", "cy")
		if err != nil {
			return err
		}
		r, err := attr(el, "r")
		if err != nil {
			return err
		}
		c, err := geom.CircleRadius(center, r)
		if err != nil {
			return err
		}
		f.Elements = append(f.Elements, c)

	case el.Name == "line":
		a, err := point(el, "x1", "y1")
		if err != nil {
			return err
		}
		b, err := point(el, "x2", "y2")
		if err != nil {
			return err
		}
		var l geom.Line
		switch class {
		case "line":
			l, err = geom.LineThrough(a, b)
		case "ray":
			l, err = geom.Ray(a, b)
		case "segment":
			l, err = geom.Segment(a, b)
		default:
			return nil
		}
		if err != nil {
			return err
		}
		f.Elements = append(f.Elements, l)
	}
	return nil
}

func point(el *svgparser.Element, x, y string) (geom.Point, error) {
	px, err := attr(el, x)
	if err != nil {
		return geom.Point{}, err
	}
	py, err := attr(el, y)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(px, -py), nil
}

func attr(el *svgparser.Element, name string) (float64, error) {
	value, ok := el.Attributes[name]
	if !ok {
		return 0, errors.Errorf("<%s> is missing %q", el.Name, name)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "<%s> has invalid %s %q", el.Name, name, value)
	}
	return f, nil
}
