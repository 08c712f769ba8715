package construct

import (
	"github.com/osuushi/euclid/geom"
	"github.com/pkg/errors"
)

// Validate checks the state invariants: no two elements coincide, every
// point is given or is the recorded intersection of two earlier elements,
// and every element's defining inputs are present.
func (c *Context) Validate() error {
	elements := c.Elements()
	points := c.Points()

	for i := range elements {
		for j := i + 1; j < len(elements); j++ {
			if geom.SameElement(elements[i], elements[j]) {
				return errors.Errorf("elements %d and %d coincide: %v", i, j, elements[i])
			}
		}
	}

	for i, p := range points {
		origin := c.Origin(i)
		if origin.Given {
			continue
		}
		if origin.A < 0 || origin.A >= origin.B || origin.B >= len(elements) {
			return errors.Errorf("point %d %v has invalid origin %+v", i, p, origin)
		}
		x := geom.Intersect(elements[origin.A], elements[origin.B])
		if origin.Branch >= x.Len() || !x.Points[origin.Branch].Coincides(p) {
			return errors.Errorf("point %d %v is not intersection %d of elements %d and %d", i, p, origin.Branch, origin.A, origin.B)
		}
	}

	for i, e := range elements {
		def := e.Def()
		for _, p := range def.Points {
			if !c.HasPoint(p) {
				return errors.Errorf("element %d %v is defined by unknown point %v", i, e, p)
			}
		}
		if def.Base != nil && !c.HasElement(*def.Base) {
			return errors.Errorf("element %d %v has unknown base line %v", i, e, def.Base)
		}
	}
	return nil
}
