package cli

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/laserbox/pkg/errors"
	"github.com/matzehuels/laserbox/pkg/pipeline"
)

// generateFlags holds the command-line flags for the generate command.
type generateFlags struct {
	seed      uint64
	count     int
	formats   string
	vizType   string
	style     string
	output    string
	width     float64
	height    float64
	scale     float64
	noLabel   bool
	noCache   bool
	refresh   bool
	showTable bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	f := generateFlags{count: 1, showTable: true}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate laser box puzzles",
		Long: `Generate laser box puzzles.

Each puzzle places a mirror and two plain barriers in the box, one of them
crossing the center line the laser travels along, and picks a target on the
right wall. The same seed and configuration always give the same puzzle.

Without --seed a random seed is picked and printed. With --count N the seeds
seed, seed+1, ..., seed+N-1 are generated.

Examples:
  laserbox generate
  laserbox generate -s 7 -f svg,json --style handdrawn
  laserbox generate -n 10 -o puzzles/
  laserbox generate -s 7 -t graphviz -f svg,dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.count < 1 {
				return errs.New(errs.ErrCodeInvalidInput, "count must be at least 1, got %d", f.count)
			}
			opts, err := c.generateOptions(cmd, f)
			if err != nil {
				return err
			}
			if opts.Seed > math.MaxUint64-uint64(f.count-1) {
				return errs.New(errs.ErrCodeInvalidSeed, "seed %d overflows with count %d", opts.Seed, f.count)
			}
			output := c.Config.Render.Output
			if cmd.Flags().Changed("output") {
				output = f.output
			}
			return c.runGenerate(cmd.Context(), opts, f.count, output, f.noCache, f.showTable)
		},
	}

	cmd.Flags().Uint64VarP(&f.seed, "seed", "s", 0, "random seed (default: random)")
	cmd.Flags().IntVarP(&f.count, "count", "n", f.count, "number of puzzles to generate")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&f.vizType, "type", "t", "", "visualization type: diagram (default), graphviz")
	cmd.Flags().StringVar(&f.style, "style", "", "visual style: simple (default), handdrawn")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output directory (default from config, else .)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "box width")
	cmd.Flags().Float64Var(&f.height, "height", 0, "box height")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "pixels per box unit")
	cmd.Flags().BoolVar(&f.noLabel, "no-label", false, "omit the target label")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVar(&f.showTable, "table", f.showTable, "print the barrier table")

	return cmd
}

// generateOptions merges the loaded config with the flags that were set.
func (c *CLI) generateOptions(cmd *cobra.Command, f generateFlags) (pipeline.Options, error) {
	seed := f.seed
	if !cmd.Flags().Changed("seed") {
		seed = randomSeed()
	}

	opts := c.Config.Options(seed)
	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if flags.Changed("type") {
		opts.VizType = f.vizType
	}
	if flags.Changed("style") {
		opts.Style = f.style
	}
	if flags.Changed("width") {
		opts.Width = f.width
	}
	if flags.Changed("height") {
		opts.Height = f.height
	}
	if flags.Changed("scale") {
		opts.Scale = f.scale
	}
	if flags.Changed("no-label") {
		opts.NoLabel = f.noLabel
	}
	opts.Refresh = f.refresh

	// Validate a copy so the first puzzle fails fast on bad flags.
	check := opts
	if err := check.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	if flags.Changed("seed") && f.seed == 0 {
		return pipeline.Options{}, errs.New(errs.ErrCodeInvalidSeed, "seed must be non-zero")
	}
	return opts, nil
}

// randomSeed returns a seed in [1, 2^63], leaving room for --count.
func randomSeed() uint64 {
	return rand.Uint64N(1<<63) + 1
}

// runGenerate generates count puzzles starting at opts.Seed and writes their artifacts.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, count int, output string, noCache, showTable bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	check := opts
	if err := check.ValidateAndSetDefaults(); err != nil {
		return err
	}
	formats := check.RenderFormats()
	for _, f := range check.Formats {
		if !slices.Contains(formats, f) {
			printWarning("Skipping %s: not supported by the %s type", f, check.VizType)
		}
	}

	prog := newProgress(logger)
	var partial int
	var jsonPath string
	for i := range count {
		if err := ctx.Err(); err != nil {
			return err
		}
		run := opts
		run.Seed = opts.Seed + uint64(i)

		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating puzzle %d...", run.Seed))
		spinner.Start()
		result, err := runner.Execute(ctx, run)
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("Puzzle %d failed", run.Seed))
			return err
		}
		spinner.Stop()

		l := result.Layout
		printSuccess("Puzzle %s", StyleNumber.Render(fmt.Sprint(l.Seed)))
		printDetail("id %s", l.ID)
		printStats(len(l.Barriers), l.Requested, l.Attempts, result.CacheInfo.LayoutHit)
		if !l.Complete() {
			partial++
			printWarning("Retry budget exhausted: placed %d of %d barriers", len(l.Barriers), l.Requested)
		}
		if showTable {
			printBarrierTable(l)
		}

		paths, err := writeArtifacts(artifactWriteParams{
			artifacts: result.Artifacts,
			formats:   formats,
			dir:       output,
			base:      puzzleBase(l.Seed),
			cacheHit:  result.CacheInfo.RenderHit,
		})
		if err != nil {
			return err
		}
		for _, p := range paths {
			if filepath.Ext(p) == "."+pipeline.FormatJSON {
				jsonPath = p
			}
		}
	}

	if count > 1 {
		prog.done("generated puzzles", "count", count, "partial", partial)
		if partial > 0 {
			printWarning("%d of %d puzzles are partial", partial, count)
		}
	}
	if jsonPath != "" {
		printNewline()
		printNextStep("Re-render with another style", "laserbox render --style handdrawn "+jsonPath)
	}
	return nil
}
