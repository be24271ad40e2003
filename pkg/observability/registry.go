package observability

import "sync/atomic"

// slot holds the current implementation of one hook interface. Loads are
// lock-free since every pipeline run and request goes through them.
type slot[T any] struct {
	fallback T
	cur      atomic.Pointer[T]
}

func (s *slot[T]) get() T {
	if p := s.cur.Load(); p != nil {
		return *p
	}
	return s.fallback
}

func (s *slot[T]) set(h T) { s.cur.Store(&h) }

func (s *slot[T]) reset() { s.cur.Store(nil) }

var (
	pipelineSlot = slot[PipelineHooks]{fallback: NoopPipelineHooks{}}
	cacheSlot    = slot[CacheHooks]{fallback: NoopCacheHooks{}}
	httpSlot     = slot[HTTPHooks]{fallback: NoopHTTPHooks{}}
)

// SetPipelineHooks registers h for pipeline events. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		pipelineSlot.set(h)
	}
}

// SetCacheHooks registers h for cache events. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cacheSlot.set(h)
	}
}

// SetHTTPHooks registers h for server events. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		httpSlot.set(h)
	}
}

func Pipeline() PipelineHooks { return pipelineSlot.get() }
func Cache() CacheHooks       { return cacheSlot.get() }
func HTTP() HTTPHooks         { return httpSlot.get() }

// Reset drops every registered hook.
func Reset() {
	pipelineSlot.reset()
	cacheSlot.reset()
	httpSlot.reset()
}
