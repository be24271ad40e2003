// Package cache stores generated layouts and rendered artifacts.
//
// A [Cache] is a byte store with per-entry TTLs. [FileCache] backs the CLI,
// [RedisCache] backs shared deployments of the HTTP server and [NullCache]
// disables caching. Keys are produced by a [Keyer] so that every backend
// agrees on the same namespace.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Default time-to-live values. Layouts are a pure function of seed and
// configuration, so they can live long; artifacts follow rendering changes
// between releases.
const (
	LayoutTTL   = 30 * 24 * time.Hour
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache is a key/value byte store.
type Cache interface {
	// Get returns the value for key. A miss is reported as ok == false with
	// a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey identifies a generated layout by seed and configuration hash.
	LayoutKey(seed uint64, configHash string) string
	// ArtifactKey identifies a rendered output of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	VizType string  `json:"viz_type"`
	Format  string  `json:"format"`
	Style   string  `json:"style"`
	Scale   float64 `json:"scale"`
	NoLabel bool    `json:"no_label"`
}

// DefaultKeyer produces keys of the form "kind:sha256(...)".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(seed uint64, configHash string) string {
	return hashKey("layout", struct {
		Seed   uint64 `json:"seed"`
		Config string `json:"config"`
	}{seed, configHash})
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", struct {
		Layout string          `json:"layout"`
		Opts   ArtifactKeyOpts `json:"opts"`
	}{layoutHash, opts})
}

// hashKey returns kind + ":" + the SHA-256 of v's JSON encoding.
func hashKey(kind string, v any) string {
	data, _ := json.Marshal(v)
	return kind + ":" + Hash(data)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
