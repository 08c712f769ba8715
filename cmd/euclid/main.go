// Command euclid searches for short constructions of the catalogued puzzles.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/osuushi/euclid/construct"
	"github.com/osuushi/euclid/dbg"
	"github.com/osuushi/euclid/improve"
	"github.com/osuushi/euclid/puzzles"
	"github.com/osuushi/euclid/render"
	"github.com/osuushi/euclid/search"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("euclid", "Shortest straightedge-and-compass constructions.")
	verbose = app.Flag("verbose", "Log search progress.").Short('v').Bool()
	tools   = app.Flag("tools", "Enabled tools: names, or basic or all.").Default("basic").Strings()
	maxDist = app.Flag("max-sq-dist", "Reject points further than this squared distance from the origin.").Float64()
	png     = app.Flag("png", "Save the construction to this PNG file.").String()
	cat     = app.Flag("cat", "Print the construction inline (iTerm only).").Bool()
	scale   = app.Flag("scale", "Pixels per unit when drawing.").Default("100").Float64()

	listCmd = app.Command("list", "List the puzzles.")

	solveCmd    = app.Command("solve", "Find a shortest construction on a puzzle's sample.")
	solvePuzzle = solveCmd.Arg("puzzle", "Puzzle name.").Required().String()
	solveDepth  = solveCmd.Flag("depth", "Deepest search.").Default("4").Int()

	improveCmd    = app.Command("improve", "Try to beat a puzzle's reference construction.")
	improvePuzzle = improveCmd.Arg("puzzle", "Puzzle name.").Required().String()
	improveConfig = improveCmd.Flag("config", "YAML driver config.").ExistingFile()

	showCmd  = app.Command("show", "Show a figure drawn in SVG.")
	showFile = showCmd.Arg("file", "SVG file.").Required().ExistingFile()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	config := zap.NewProductionConfig()
	if *verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	app.FatalIfError(err, "initializing logger")
	defer logger.Sync()

	switch command {
	case listCmd.FullCommand():
		fmt.Println(strings.Join(puzzles.Default.Names(), "\n"))
	case solveCmd.FullCommand():
		err = solve(logger)
	case improveCmd.FullCommand():
		err = improveReference(logger)
	case showCmd.FullCommand():
		err = show()
	}
	app.FatalIfError(err, "%s", command)
}

func constructConfig() (construct.Config, error) {
	toolSet, err := construct.ParseToolSet(*tools)
	if err != nil {
		return construct.Config{}, err
	}
	return construct.Config{Tools: toolSet, MaxSqDist: *maxDist}, nil
}

func solve(logger *zap.Logger) error {
	cfg, err := constructConfig()
	if err != nil {
		return err
	}
	puzzle, err := puzzles.Default.Get(*solvePuzzle, cfg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opts := []search.Option{search.WithMetrics(search.NewMetrics(reg))}
	if puzzle.LowerBound != nil {
		opts = append(opts, search.WithLowerBound(puzzle.LowerBound(puzzle.Sample)))
	}
	logger.Info("Solving", zap.String("puzzle", puzzle.Name), zap.Stringer("tools", cfg.Tools))
	solution, depth := search.Deepen(puzzle.Setup(puzzle.Sample), 0, *solveDepth, puzzle.Goal(puzzle.Sample), opts...)
	logMetrics(logger, reg)
	if solution == nil {
		return errors.Errorf("no construction within %d steps", *solveDepth)
	}
	logger.Info("Solved", zap.Int("depth", depth))
	return output(solution)
}

func improveReference(logger *zap.Logger) error {
	cfg, err := constructConfig()
	if err != nil {
		return err
	}
	puzzle, err := puzzles.Default.Get(*improvePuzzle, cfg)
	if err != nil {
		return err
	}
	driverConfig := improve.DefaultConfig()
	if *improveConfig != "" {
		if driverConfig, err = improve.LoadConfig(*improveConfig); err != nil {
			return err
		}
	}

	driver, err := improve.New(puzzle, driverConfig, logger)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	result, err := driver.WithMetrics(search.NewMetrics(reg)).Improve()
	logMetrics(logger, reg)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d steps (reference %d)\n", result.Puzzle, result.Steps, result.ReferenceSteps)
	return output(result.Solution)
}

func show() error {
	figure, err := puzzles.LoadSVG(*showFile)
	if err != nil {
		return err
	}
	cfg, err := constructConfig()
	if err != nil {
		return err
	}
	ctx := figure.Context(cfg)
	if err := ctx.Validate(); err != nil {
		return err
	}
	return output(ctx)
}

func output(ctx *construct.Context) error {
	fmt.Print(dbg.Steps(ctx))
	if *png != "" {
		if err := render.SavePNG(ctx, *png, *scale); err != nil {
			return err
		}
		if *cat {
			render.Cat(*png)
		}
	} else if *cat {
		return render.Show(ctx, *scale)
	}
	return nil
}

func logMetrics(logger *zap.Logger, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warn("Gathering metrics failed", zap.Error(err))
		return
	}
	for _, family := range families {
		total := 0.0
		for _, m := range family.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		logger.Debug("Search metric", zap.String("name", family.GetName()), zap.Float64("value", total))
	}
}
