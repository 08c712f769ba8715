// Package improve looks for constructions at least as short as a puzzle's
// reference construction.
//
// The search runs on the puzzle's sample instance, steered by the reference:
// partial constructions may only stray from it by a few elements, and
// children resembling it are visited first. Any goal state must then replay
// on several random instances before it is accepted, which rules out
// constructions that only work through a coincidence of the sample.
package improve

import (
	"math/rand"
	"time"

	"github.com/osuushi/euclid/construct"
	"github.com/osuushi/euclid/replay"
	"github.com/osuushi/euclid/search"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrGoalNotMet means a replayed candidate no longer reaches the goal.
	ErrGoalNotMet = errors.New("replayed construction misses the goal")
	// ErrNoSolution means the search exhausted every depth.
	ErrNoSolution = errors.New("no construction found")
)

type Driver struct {
	puzzle  *Puzzle
	config  Config
	logger  *zap.Logger
	metrics *search.Metrics

	instances []Params
}

// Result of an improvement run.
type Result struct {
	Puzzle         string
	Reference      *construct.Context
	Solution       *construct.Context
	ReferenceSteps int
	Steps          int
	Improved       bool
	Duration       time.Duration
}

// New prepares a driver and draws the replay instances. A nil logger
// discards output.
func New(puzzle *Puzzle, config Config, logger *zap.Logger) (*Driver, error) {
	if err := puzzle.validate(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rng := rand.New(rand.NewSource(config.Seed))
	instances := make([]Params, config.Replays)
	for i := range instances {
		if puzzle.Random != nil {
			instances[i] = puzzle.Random(rng)
		} else {
			instances[i] = puzzle.Sample.Jitter(rng, config.Jitter)
		}
	}

	return &Driver{
		puzzle:    puzzle,
		config:    config,
		logger:    logger.With(zap.String("puzzle", puzzle.Name)),
		instances: instances,
	}, nil
}

// WithMetrics counts search events of Improve into m.
func (d *Driver) WithMetrics(m *search.Metrics) *Driver {
	d.metrics = m
	return d
}

// Instances are the parameter sets candidates are replayed on.
func (d *Driver) Instances() []Params { return d.instances }

// Verify replays candidate on every random instance and checks the goal
// there. It returns the first failure.
func (d *Driver) Verify(candidate *construct.Context) error {
	g := new(errgroup.Group)
	g.SetLimit(d.config.Concurrency)
	for i, params := range d.instances {
		g.Go(func() error {
			replayed, err := replay.Steps(candidate, d.puzzle.Setup(params))
			if err != nil {
				return errors.Wrapf(err, "replay %d", i)
			}
			if !d.puzzle.Goal(params)(replayed) {
				return errors.Wrapf(ErrGoalNotMet, "replay %d", i)
			}
			return nil
		})
	}
	return g.Wait()
}

// Reference builds the reference construction on the sample and checks that
// it reaches the goal there and on the random instances.
func (d *Driver) Reference() (*construct.Context, error) {
	params := d.puzzle.Sample
	ref, err := d.puzzle.Reference(d.puzzle.Setup(params), params)
	if err != nil {
		return nil, errors.Wrap(err, "building reference")
	}
	if !d.puzzle.Goal(params)(ref) {
		return nil, errors.Errorf("reference for %q misses the goal", d.puzzle.Name)
	}
	if err := d.Verify(ref); err != nil {
		return nil, errors.Wrap(err, "reference is not generic")
	}
	return ref, nil
}

// Improve searches for the shortest verified construction no longer than
// the reference.
func (d *Driver) Improve() (*Result, error) {
	start := time.Now()
	ref, err := d.Reference()
	if err != nil {
		return nil, err
	}

	params := d.puzzle.Sample
	root := d.puzzle.Setup(params)
	goal := d.puzzle.Goal(params)
	refSteps := ref.StepElements()

	extra := func(ctx *construct.Context) int {
		n := 0
		for _, e := range ctx.StepElements() {
			if !ref.HasElement(e) {
				n++
			}
		}
		return n
	}
	prune := func(ctx *construct.Context, depth int) bool {
		return !d.puzzle.allowsSteps(ctx) || extra(ctx) > d.config.MaxExtra
	}
	priority := func(ctx *construct.Context) float64 {
		return float64(len(refSteps) - extra(ctx))
	}
	check := func(ctx *construct.Context) bool {
		if !d.puzzle.allowsSteps(ctx) || !goal(ctx) {
			return false
		}
		if err := d.Verify(ctx); err != nil {
			d.logger.Debug("Candidate rejected",
				zap.Int("steps", ctx.Steps()),
				zap.Error(err))
			return false
		}
		return true
	}

	opts := []search.Option{
		search.WithPrune(prune),
		search.WithPriority(priority),
		search.WithMetrics(d.metrics),
	}
	if d.puzzle.LowerBound != nil {
		opts = append(opts, search.WithLowerBound(d.puzzle.LowerBound(params)))
	}

	maxDepth := ref.Steps()
	if d.config.MaxDepth > 0 && d.config.MaxDepth < maxDepth {
		maxDepth = d.config.MaxDepth
	}
	d.logger.Info("Searching",
		zap.Int("reference_steps", ref.Steps()),
		zap.Int("min_depth", d.config.MinDepth),
		zap.Int("max_depth", maxDepth))

	solution, depth := search.Deepen(root, d.config.MinDepth, maxDepth, check, opts...)
	if solution == nil {
		return nil, errors.Wrapf(ErrNoSolution, "%q within %d steps", d.puzzle.Name, maxDepth)
	}

	result := &Result{
		Puzzle:         d.puzzle.Name,
		Reference:      ref,
		Solution:       solution,
		ReferenceSteps: ref.Steps(),
		Steps:          solution.Steps(),
		Improved:       solution.Steps() < ref.Steps(),
		Duration:       time.Since(start),
	}
	d.logger.Info("Search finished",
		zap.Int("depth", depth),
		zap.Int("steps", result.Steps),
		zap.Bool("improved", result.Improved),
		zap.Duration("duration", result.Duration))
	return result, nil
}
