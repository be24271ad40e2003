package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/laserbox/pkg/cache"
	"github.com/matzehuels/laserbox/pkg/io"
	"github.com/matzehuels/laserbox/pkg/observability"
	"github.com/matzehuels/laserbox/pkg/puzzle"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate
	generateStart := time.Now()
	l, layoutHit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Layout = l
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.Barriers = len(l.Barriers)
	result.Stats.Attempts = l.Attempts
	result.CacheInfo.LayoutHit = layoutHit

	if data, err := io.MarshalJSON(l, ""); err == nil {
		result.LayoutHash = cache.Hash(data)
	}

	r.Logger.Info("generated puzzle",
		"seed", l.Seed,
		"barriers", len(l.Barriers),
		"attempts", l.Attempts,
		"cached", layoutHit,
		"duration", result.Stats.GenerateTime)
	if !l.Complete() {
		r.Logger.Warn("retry budget exhausted",
			"seed", l.Seed,
			"placed", len(l.Barriers),
			"requested", l.Requested)
	}

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.RenderFormats(),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo generates a layout with caching and returns cache hit info.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (puzzle.Layout, bool, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return puzzle.Layout{}, false, err
	}

	cfg := opts.Config()
	cacheKey := r.Keyer.LayoutKey(opts.Seed, ConfigHash(cfg))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := io.UnmarshalJSON(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to regenerate
		} else if err != nil {
			r.Logger.Warn("layout cache read failed", "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnGenerateStart(ctx, opts.Seed)
	l, err := Generate(opts)
	hooks.OnGenerateComplete(ctx, opts.Seed, len(l.Barriers), l.Attempts, time.Since(start), err)
	if err != nil {
		return puzzle.Layout{}, false, err
	}

	// Cache the result
	if data, err := io.MarshalJSON(l, ""); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.LayoutTTL); err != nil {
			r.Logger.Warn("layout cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return l, false, nil // Cache miss
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, opts Options) (puzzle.Layout, error) {
	l, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l puzzle.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	formats := opts.RenderFormats()

	// Compute cache key from layout data
	layoutData, err := io.MarshalJSON(l, "")
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := !opts.Refresh
	artifacts := make(map[string][]byte)

	for _, format := range formats {
		if !allCached {
			break
		}
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
		}
	}

	if allCached && len(artifacts) == len(formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, formats)
	rendered, err := Render(l, opts)
	hooks.OnRenderComplete(ctx, formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL); err != nil {
			r.Logger.Debug("artifact cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l puzzle.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
