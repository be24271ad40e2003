package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments or
// releases can share one cache backend without seeing each other's entries.
//
// Example usage:
//
//	// Entries written by this server only
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "laserbox:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(seed uint64, configHash string) string {
	return k.prefix + k.inner.LayoutKey(seed, configHash)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
