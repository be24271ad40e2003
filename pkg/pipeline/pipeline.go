// Package pipeline provides the generate → render pipeline for laserbox.
//
// This package implements the complete pipeline used by the CLI and the HTTP
// server. By centralizing it, both entry points share defaults, validation
// and caching.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: place the barriers and draw the target for a seed
//  2. Render: produce output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
// Both stages are cached: layouts by seed and configuration, artifacts by
// layout hash and render options.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Seed:    7,
//	    Style:   pipeline.StyleHanddrawn,
//	    Formats: []string{"svg", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Generate only
//	layout, err := runner.Generate(ctx, opts)
//
//	// Render an imported layout
//	artifacts, err := runner.Render(ctx, layout, opts)
package pipeline

import (
	"math"
	"slices"
	"time"

	"github.com/matzehuels/laserbox/pkg/cache"
	errs "github.com/matzehuels/laserbox/pkg/errors"
	"github.com/matzehuels/laserbox/pkg/puzzle"
	"github.com/matzehuels/laserbox/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultScale is the default number of pixels per box unit.
	DefaultScale = render.DefaultScale

	// DefaultPNGScale is the rasterization factor for PNG output.
	DefaultPNGScale = 2.0
)

// Visualization types.
const (
	VizTypeDiagram  = "diagram"
	VizTypeGraphviz = "graphviz"
)

// Visual styles.
const (
	StyleSimple    = "simple"
	StyleHanddrawn = "handdrawn"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeDiagram

// DefaultStyle is the default visual style.
const DefaultStyle = StyleSimple

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleSimple:    true,
	StyleHanddrawn: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeDiagram:  true,
	VizTypeGraphviz: true,
}

// ContentTypes maps output formats to their MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
	FormatDOT:  "text/vnd.graphviz",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Seed   uint64        `json:"seed,omitempty"`
	Width  float64       `json:"width,omitempty"`
	Height float64       `json:"height,omitempty"`
	Rules  *puzzle.Rules `json:"rules,omitempty"` // nil selects puzzle.DefaultRules
	// Refresh bypasses cached layouts and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Render options
	VizType string   `json:"viz_type,omitempty"`
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	NoLabel bool     `json:"no_label,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the generated puzzle.
	Layout puzzle.Layout

	// LayoutHash is the content hash of the layout's JSON form.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Barriers     int
	Attempts     int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errs.New(errs.ErrCodeInvalidStyle, "invalid style: %q (must be one of: simple, handdrawn)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errs.New(errs.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: diagram, graphviz)", vizType)
	}
	return nil
}

// SupportsFormat reports whether vizType can produce format. JSON is a
// property of the layout and only produced by the diagram type; DOT only by
// graphviz.
func SupportsFormat(vizType, format string) bool {
	switch format {
	case FormatJSON:
		return vizType != VizTypeGraphviz
	case FormatDOT:
		return vizType == VizTypeGraphviz
	default:
		return ValidFormats[format]
	}
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetGenerateDefaults sets default values for puzzle generation.
func (o *Options) SetGenerateDefaults() {
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Width == 0 {
		o.Width = puzzle.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = puzzle.DefaultHeight
	}
}

// ValidateForGenerate validates and sets defaults for puzzle generation.
func (o *Options) ValidateForGenerate() error {
	o.SetGenerateDefaults()
	return o.Config().Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) || o.Scale < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "scale must be a positive number, got %g", o.Scale)
	}
	return ValidateStyle(o.Style)
}

// Config returns the puzzle configuration described by o.
func (o *Options) Config() puzzle.Config {
	cfg := puzzle.DefaultConfig()
	if o.Width != 0 {
		cfg.Box.Width = o.Width
	}
	if o.Height != 0 {
		cfg.Box.Height = o.Height
	}
	if o.Rules != nil {
		cfg.Rules = *o.Rules
	}
	return cfg
}

// RenderFormats returns the requested formats the visualization type can
// produce, in request order.
func (o *Options) RenderFormats() []string {
	var out []string
	for _, f := range o.Formats {
		if SupportsFormat(o.VizType, f) && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// IsGraphviz returns true if this is a Graphviz visualization.
func (o *Options) IsGraphviz() bool {
	return o.VizType == VizTypeGraphviz
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		VizType: o.VizType,
		Format:  format,
		Style:   o.Style,
		Scale:   o.Scale,
		NoLabel: o.NoLabel,
	}
}
