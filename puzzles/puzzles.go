// Package puzzles holds a small catalogue of construction puzzles, each with a
// reference construction that the improvement driver can try to beat.
package puzzles

import (
	"math/rand"
	"sort"

	"github.com/osuushi/euclid/construct"
	"github.com/osuushi/euclid/geom"
	"github.com/osuushi/euclid/improve"
	"github.com/osuushi/euclid/search"
	"github.com/pkg/errors"
)

// Builder instantiates a puzzle under a construction config.
type Builder func(config construct.Config) *improve.Puzzle

type Registry struct {
	builders map[string]Builder
}

func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Default holds every puzzle of this package.
var Default = NewRegistry()

func init() {
	Default.MustRegister("equilateral-triangle", EquilateralTriangle)
	Default.MustRegister("midpoint", Midpoint)
	Default.MustRegister("perpendicular-at-point", PerpendicularAtPoint)
	Default.MustRegister("angle-bisector", AngleBisector)
}

func (r *Registry) Register(name string, builder Builder) error {
	if _, ok := r.builders[name]; ok {
		return errors.Errorf("puzzle %q is already registered", name)
	}
	r.builders[name] = builder
	return nil
}

func (r *Registry) MustRegister(name string, builder Builder) {
	if err := r.Register(name, builder); err != nil {
		panic(err)
	}
}

// Get builds the named puzzle.
func (r *Registry) Get(name string, config construct.Config) (*improve.Puzzle, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, errors.Errorf("unknown puzzle %q", name)
	}
	puzzle := builder(config)
	puzzle.Name = name
	return puzzle, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// builder chains tool applications onto a context, keeping the first error.
type builder struct {
	ctx *construct.Context
	err error
}

func (b *builder) draw(e geom.Element, err error) geom.Element {
	if b.err == nil && err != nil {
		b.err = err
	}
	if b.err != nil {
		return nil
	}
	b.ctx = b.ctx.WithElement(e)
	return e
}

// cross returns both crossings of x and y.
func (b *builder) cross(x, y geom.Element) (geom.Point, geom.Point) {
	if b.err != nil {
		return geom.Point{}, geom.Point{}
	}
	i := geom.Intersect(x, y)
	if i.Len() != 2 {
		b.err = errors.Errorf("%v and %v meet in %v", x, y, i.Kind)
		return geom.Point{}, geom.Point{}
	}
	return i.First(), i.Second()
}

func (b *builder) result() (*construct.Context, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.ctx, nil
}

// EquilateralTriangle asks for the two missing sides of an equilateral
// triangle on OA. Either apex will do.
func EquilateralTriangle(config construct.Config) *improve.Puzzle {
	// Side pairs for each apex
	sides := func(p improve.Params) [][2]geom.Line {
		c1, err1 := geom.CircleThrough(p["O"], p["A"])
		c2, err2 := geom.CircleThrough(p["A"], p["O"])
		if err1 != nil || err2 != nil {
			return nil
		}
		var out [][2]geom.Line
		for _, apex := range geom.Intersect(c1, c2).Slice() {
			l1, err1 := geom.LineThrough(p["O"], apex)
			l2, err2 := geom.LineThrough(p["A"], apex)
			if err1 == nil && err2 == nil {
				out = append(out, [2]geom.Line{l1, l2})
			}
		}
		return out
	}

	return &improve.Puzzle{
		Sample: improve.Params{"O": geom.Pt(0, 0), "A": geom.Pt(1, 0.2)},
		Setup: func(p improve.Params) *construct.Context {
			return construct.New(config, []geom.Point{p["O"], p["A"]})
		},
		Goal: func(p improve.Params) search.Check {
			pairs := sides(p)
			return func(ctx *construct.Context) bool {
				for _, pair := range pairs {
					if ctx.HasElements(pair[0], pair[1]) {
						return true
					}
				}
				return false
			}
		},
		Reference: func(ctx *construct.Context, p improve.Params) (*construct.Context, error) {
			b := &builder{ctx: ctx}
			c1 := b.draw(geom.CircleThrough(p["O"], p["A"]))
			c2 := b.draw(geom.CircleThrough(p["A"], p["O"]))
			apex, _ := b.cross(c1, c2)
			b.draw(geom.LineThrough(p["O"], apex))
			b.draw(geom.LineThrough(p["A"], apex))
			return b.result()
		},
		// Each step draws at most one side
		LowerBound: func(p improve.Params) search.LowerBound {
			pairs := sides(p)
			return func(ctx *construct.Context) int {
				best := 2
				for _, pair := range pairs {
					missing := 0
					for _, l := range pair {
						if !ctx.HasElement(l) {
							missing++
						}
					}
					best = min(best, missing)
				}
				return best
			}
		},
	}
}

// Midpoint asks for the midpoint of AB.
func Midpoint(config construct.Config) *improve.Puzzle {
	return &improve.Puzzle{
		Sample: improve.Params{"A": geom.Pt(0, 0), "B": geom.Pt(2, 0.5)},
		Setup: func(p improve.Params) *construct.Context {
			return construct.New(config, []geom.Point{p["A"], p["B"]})
		},
		Goal: func(p improve.Params) search.Check {
			m := p["A"].Midpoint(p["B"])
			return func(ctx *construct.Context) bool { return ctx.HasPoint(m) }
		},
		Reference: func(ctx *construct.Context, p improve.Params) (*construct.Context, error) {
			b := &builder{ctx: ctx}
			c1 := b.draw(geom.CircleThrough(p["A"], p["B"]))
			c2 := b.draw(geom.CircleThrough(p["B"], p["A"]))
			x, y := b.cross(c1, c2)
			b.draw(geom.LineThrough(x, y))
			b.draw(geom.LineThrough(p["A"], p["B"]))
			return b.result()
		},
		// A point needs at least one more element
		LowerBound: func(p improve.Params) search.LowerBound {
			m := p["A"].Midpoint(p["B"])
			return func(ctx *construct.Context) int {
				if ctx.HasPoint(m) {
					return 0
				}
				return 1
			}
		},
	}
}

// PerpendicularAtPoint asks for the perpendicular to the line AB through P,
// which lies on AB.
func PerpendicularAtPoint(config construct.Config) *improve.Puzzle {
	sample := mustLoadFixture("perpendicular").Params()
	goal := func(p improve.Params) (geom.Line, error) {
		ab, err := geom.LineThrough(p["A"], p["B"])
		if err != nil {
			return geom.Line{}, err
		}
		return geom.Perpendicular(ab, p["P"])
	}

	return &improve.Puzzle{
		Sample: sample,
		Random: func(rng *rand.Rand) improve.Params {
			p := sample.Jitter(rng, 0.5)
			p["P"] = p["A"].Lerp(p["B"], 0.2+0.6*rng.Float64())
			return p
		},
		Setup: func(p improve.Params) *construct.Context {
			points := []geom.Point{p["A"], p["B"], p["P"]}
			ab, err := geom.LineThrough(p["A"], p["B"])
			if err != nil {
				return construct.New(config, points)
			}
			return construct.New(config, points, ab)
		},
		Goal: func(p improve.Params) search.Check {
			target, err := goal(p)
			return func(ctx *construct.Context) bool {
				return err == nil && ctx.HasElement(target)
			}
		},
		Reference: func(ctx *construct.Context, p improve.Params) (*construct.Context, error) {
			b := &builder{ctx: ctx}
			b.draw(geom.CircleThrough(p["P"], p["A"]))
			// Reflection of A through P, on the given line
			mirror := p["P"].Scale(2).Sub(p["A"])
			c1 := b.draw(geom.CircleThrough(p["A"], mirror))
			c2 := b.draw(geom.CircleThrough(mirror, p["A"]))
			x, y := b.cross(c1, c2)
			b.draw(geom.LineThrough(x, y))
			return b.result()
		},
		LowerBound: func(p improve.Params) search.LowerBound {
			target, err := goal(p)
			return func(ctx *construct.Context) int {
				if err == nil && ctx.HasElement(target) {
					return 0
				}
				return 1
			}
		},
	}
}

// AngleBisector asks for the bisector of the angle between the rays VA and VC.
func AngleBisector(config construct.Config) *improve.Puzzle {
	goal := func(p improve.Params) (geom.Line, error) {
		return geom.AngleBisector(p["A"], p["V"], p["C"])
	}

	return &improve.Puzzle{
		Sample: mustLoadFixture("angle").Params(),
		Setup: func(p improve.Params) *construct.Context {
			points := []geom.Point{p["V"], p["A"], p["C"]}
			va, err1 := geom.Ray(p["V"], p["A"])
			vc, err2 := geom.Ray(p["V"], p["C"])
			if err1 != nil || err2 != nil {
				return construct.New(config, points)
			}
			return construct.New(config, points, va, vc)
		},
		Goal: func(p improve.Params) search.Check {
			target, err := goal(p)
			return func(ctx *construct.Context) bool {
				return err == nil && ctx.HasElement(target)
			}
		},
		Reference: func(ctx *construct.Context, p improve.Params) (*construct.Context, error) {
			b := &builder{ctx: ctx}
			v, a := p["V"], p["A"]
			b.draw(geom.CircleThrough(v, a))
			// Where that circle crosses the other arm
			d := v.Add(p["C"].Sub(v).Unit().Scale(v.Dist(a)))
			c1 := b.draw(geom.CircleThrough(a, d))
			c2 := b.draw(geom.CircleThrough(d, a))
			// The far apex keeps the bisector well conditioned near 60 degrees
			x, y := b.cross(c1, c2)
			if y.Dist(v) > x.Dist(v) {
				x = y
			}
			b.draw(geom.LineThrough(v, x))
			return b.result()
		},
		LowerBound: func(p improve.Params) search.LowerBound {
			target, err := goal(p)
			return func(ctx *construct.Context) int {
				if err == nil && ctx.HasElement(target) {
					return 0
				}
				return 1
			}
		},
	}
}
