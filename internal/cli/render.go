package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/laserbox/pkg/io"
	"github.com/matzehuels/laserbox/pkg/pipeline"
)

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	formats string
	vizType string
	style   string
	output  string
	scale   float64
	noLabel bool
	noCache bool
}

// renderCommand creates the render command for re-rendering an exported puzzle.
func (c *CLI) renderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render [puzzle.json]",
		Short: "Render a puzzle exported as JSON",
		Long: `Render a puzzle exported as JSON.

The render command takes a puzzle.json file (produced by 'generate -f json')
and renders it again, for example in another style or format. The puzzle is
not regenerated: barriers and target are taken from the file as they are.

Output files are named after the input and written next to it unless
--output names a directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.Config.Options(0)
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
			if flags.Changed("scale") {
				opts.Scale = f.scale
			}
			if flags.Changed("no-label") {
				opts.NoLabel = f.noLabel
			}
			if err := opts.ValidateForRender(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, f.output, f.noCache)
		},
	}

	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVarP(&f.vizType, "type", "t", "", "visualization type: diagram (default), graphviz")
	cmd.Flags().StringVar(&f.style, "style", "", "visual style: simple (default), handdrawn")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output directory (default: next to the input)")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "pixels per box unit")
	cmd.Flags().BoolVar(&f.noLabel, "no-label", false, "omit the target label")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runRender loads the puzzle at input and renders it to the requested formats.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	l, err := io.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded puzzle", "path", input, "seed", l.Seed, "barriers", len(l.Barriers))
	if !l.Complete() {
		printWarning("Partial puzzle: %d of %d barriers", len(l.Barriers), l.Requested)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.VizType))
	spinner.Start()
	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if output == "" {
		output = filepath.Dir(input)
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	printSuccess("Rendered puzzle %s", StyleNumber.Render(fmt.Sprint(l.Seed)))
	formats := opts.RenderFormats()
	if filepath.Clean(filepath.Join(output, base+"."+pipeline.FormatJSON)) == filepath.Clean(input) {
		formats = slices.DeleteFunc(formats, func(f string) bool { return f == pipeline.FormatJSON })
		logger.Debug("not overwriting input", "path", input)
	}
	if _, err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   formats,
		dir:       output,
		base:      base,
		cacheHit:  cacheHit,
	}); err != nil {
		return err
	}
	return nil
}
