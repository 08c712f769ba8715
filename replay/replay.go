// Package replay re-derives a construction from new inputs.
//
// A construction found for one instance of a puzzle might only work because
// of a coincidence in that instance's coordinates. Replaying it matches the
// construction structurally instead of numerically: given points and
// elements are paired by position, and every later step is rebuilt from the
// replayed counterparts of its inputs. Intersection points are located by the
// pair of elements and the branch that produced them.
package replay

import (
	"github.com/osuushi/euclid/construct"
	"github.com/osuushi/euclid/geom"
)

// Steps replays every step of reference on top of initial, which must hold
// the givens of another instance of the same puzzle. It returns a
// *UnificationError if the steps cannot be matched, or a
// *geom.DegenerateConstructionError if a tool fails on the new inputs.
func Steps(reference, initial *construct.Context) (result *construct.Context, err error) {
	defer func() {
		recoveredErr := HandleReplayPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	u := newUnifier(reference, initial)
	u.unifyGivens()
	for i := reference.NumGivenElements(); i < reference.NumElements(); i++ {
		u.replayElement(i)
	}
	for i := 0; i < reference.NumPoints(); i++ {
		u.resolvePoint(i)
	}
	return u.out, nil
}

// unifier keeps the bindings between reference and replay indices. Bindings
// are one to one in both directions.
type unifier struct {
	ref *construct.Context
	out *construct.Context

	points        map[int]int
	pointImages   map[int]int
	elements      map[int]int
	elementImages map[int]int
}

func newUnifier(ref, initial *construct.Context) *unifier {
	return &unifier{
		ref:           ref,
		out:           initial,
		points:        make(map[int]int),
		pointImages:   make(map[int]int),
		elements:      make(map[int]int),
		elementImages: make(map[int]int),
	}
}

func givenPointIndices(ctx *construct.Context) []int {
	var out []int
	for i := 0; i < ctx.NumPoints(); i++ {
		if ctx.Origin(i).Given {
			out = append(out, i)
		}
	}
	return out
}

func (u *unifier) unifyGivens() {
	refPoints := givenPointIndices(u.ref)
	outPoints := givenPointIndices(u.out)
	if len(refPoints) != len(outPoints) {
		failf("reference has %d given points, replay has %d", len(refPoints), len(outPoints))
	}
	for k, i := range refPoints {
		u.bindPoint(i, outPoints[k])
	}

	if u.ref.NumGivenElements() != u.out.NumGivenElements() {
		failf("reference has %d given elements, replay has %d", u.ref.NumGivenElements(), u.out.NumGivenElements())
	}
	for i := 0; i < u.ref.NumGivenElements(); i++ {
		if kind(u.ref.Element(i)) != kind(u.out.Element(i)) {
			failf("given element %d is a %s in the reference but a %s in the replay",
				i, kind(u.ref.Element(i)), kind(u.out.Element(i)))
		}
		u.bindElement(i, i)
	}
}

func kind(e geom.Element) string {
	if _, ok := e.(geom.Line); ok {
		return "line"
	}
	return "circle"
}

func (u *unifier) bindPoint(ref, out int) {
	if bound, ok := u.points[ref]; ok {
		if bound != out {
			failf("reference point %d is bound to replay point %d, not %d", ref, bound, out)
		}
		return
	}
	if other, ok := u.pointImages[out]; ok {
		failf("reference points %d and %d both land on replay point %d %v", other, ref, out, u.out.Point(out))
	}
	u.points[ref] = out
	u.pointImages[out] = ref
}

func (u *unifier) bindElement(ref, out int) {
	if bound, ok := u.elements[ref]; ok {
		if bound != out {
			failf("reference element %d is bound to replay element %d, not %d", ref, bound, out)
		}
		return
	}
	if other, ok := u.elementImages[out]; ok {
		failf("reference elements %d and %d both land on replay element %d", other, ref, out)
	}
	u.elements[ref] = out
	u.elementImages[out] = ref
}

func (u *unifier) resolveElement(ref int) int {
	out, ok := u.elements[ref]
	if !ok {
		failf("reference element %d has not been replayed", ref)
	}
	return out
}

// resolvePoint finds the replay counterpart of a reference point, binding it
// on first use.
func (u *unifier) resolvePoint(ref int) int {
	if out, ok := u.points[ref]; ok {
		return out
	}
	origin := u.ref.Origin(ref)
	if origin.Given {
		failf("given point %d has no replay counterpart", ref)
	}

	a := u.out.Element(u.resolveElement(origin.A))
	b := u.out.Element(u.resolveElement(origin.B))
	x := geom.Intersect(a, b)
	if origin.Branch >= x.Len() {
		failf("intersection %d of elements %d and %d vanished (%s)", origin.Branch, origin.A, origin.B, x.Kind)
	}
	p := x.Points[origin.Branch]
	out, ok := u.out.PointIndex(p)
	if !ok {
		failf("intersection %v of elements %d and %d is off the drawn extent", p, origin.A, origin.B)
	}
	u.bindPoint(ref, out)
	return out
}

// replayElement rebuilds the i-th reference element from the replay
// counterparts of its inputs and appends it.
func (u *unifier) replayElement(i int) {
	e := u.ref.Element(i)
	def := e.Def()

	points := make([]geom.Point, len(def.Points))
	for k, p := range def.Points {
		ref, ok := u.ref.PointIndex(p)
		if !ok {
			failf("input %v of element %d is not a known point", p, i)
		}
		points[k] = u.out.Point(u.resolvePoint(ref))
	}

	var base *geom.Line
	if def.Base != nil {
		ref, ok := u.ref.ElementIndex(*def.Base)
		if !ok {
			failf("base line of element %d is not a known element", i)
		}
		line, ok := u.out.Element(u.resolveElement(ref)).(geom.Line)
		if !ok {
			failf("base of element %d does not replay to a line", i)
		}
		base = &line
	}

	rebuilt, err := geom.Apply(def.Tool, points, base)
	if err != nil {
		panic(err)
	}
	if existing, ok := u.out.ElementIndex(rebuilt); ok {
		failf("element %d %v coincides with replay element %d", i, rebuilt, existing)
	}
	u.out = u.out.WithElement(rebuilt)
	u.bindElement(i, u.out.NumElements()-1)
}
