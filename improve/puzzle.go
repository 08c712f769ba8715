package improve

import (
	"math/rand"
	"sort"

	"github.com/osuushi/euclid/construct"
	"github.com/osuushi/euclid/geom"
	"github.com/osuushi/euclid/search"
	"github.com/pkg/errors"
)

// Params are the named input points of one instance of a puzzle.
type Params map[string]geom.Point

// Names returns the parameter names in sorted order.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Jitter returns a copy with every point moved by up to amount along each
// axis. Points are visited in name order so a seeded rng gives repeatable
// instances.
func (p Params) Jitter(rng *rand.Rand, amount float64) Params {
	out := make(Params, len(p))
	for _, name := range p.Names() {
		dx := (rng.Float64()*2 - 1) * amount
		dy := (rng.Float64()*2 - 1) * amount
		out[name] = p[name].Add(geom.Pt(dx, dy))
	}
	return out
}

// Puzzle describes a family of construction problems over parameters.
type Puzzle struct {
	Name string
	// Sample is the instance searched on.
	Sample Params
	// Random draws another instance for genericity checks. Defaults to
	// jittering Sample.
	Random func(rng *rand.Rand) Params

	Setup func(Params) *construct.Context
	Goal  func(Params) search.Check
	// Reference builds a known construction on top of the setup state.
	Reference func(ctx *construct.Context, params Params) (*construct.Context, error)

	// LowerBound is an optional admissible estimate of remaining steps.
	LowerBound func(Params) search.LowerBound
	// StepTools optionally restricts the tool used at each step. A zero entry
	// allows any enabled tool.
	StepTools []construct.ToolSet
}

func (p *Puzzle) validate() error {
	if p.Setup == nil || p.Goal == nil || p.Reference == nil {
		return errors.Errorf("puzzle %q needs a setup, a goal and a reference", p.Name)
	}
	if len(p.Sample) == 0 {
		return errors.Errorf("puzzle %q has no sample parameters", p.Name)
	}
	return nil
}

// allowsSteps checks the step tool filters against every step of ctx.
func (p *Puzzle) allowsSteps(ctx *construct.Context) bool {
	for i, e := range ctx.StepElements() {
		if i >= len(p.StepTools) {
			break
		}
		if allowed := p.StepTools[i]; allowed != 0 && !allowed.Has(e.Def().Tool) {
			return false
		}
	}
	return true
}
