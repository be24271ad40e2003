// Package observability lets a binary observe puzzle generation, rendering,
// cache traffic and served requests without the libraries importing any
// metrics or tracing backend.
//
// Libraries emit events through the accessors:
//
//	observability.Pipeline().OnGenerateStart(ctx, seed)
//	// ... place barriers ...
//	observability.Pipeline().OnGenerateComplete(ctx, seed, placed, attempts, elapsed, err)
//
// and main decides who listens:
//
//	observability.SetPipelineHooks(observability.NewLogHooks(logger))
//
// Until something is registered every accessor returns a no-op
// implementation.
package observability

import (
	"context"
	"time"
)

// PipelineHooks receives events from the puzzle pipeline.
type PipelineHooks interface {
	// placed may be lower than requested when the retry budget ran out.
	OnGenerateStart(ctx context.Context, seed uint64)
	OnGenerateComplete(ctx context.Context, seed uint64, placed, attempts int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives events from cache lookups. keyType is "layout" or
// "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest fires before routing, so path is the raw request path.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse fires after the handler. route is the matched pattern,
	// e.g. "/puzzles/{seed}", or the raw path when nothing matched.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// NoopPipelineHooks ignores every pipeline event. Embed it to implement only
// the events you care about.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnGenerateStart(context.Context, uint64) {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, uint64, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks ignores every cache event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every request event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
