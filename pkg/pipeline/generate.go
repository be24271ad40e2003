package pipeline

import (
	"encoding/json"

	"github.com/matzehuels/laserbox/pkg/cache"
	"github.com/matzehuels/laserbox/pkg/puzzle"
)

// Generate places the barriers and target for opts.Seed.
func Generate(opts Options) (puzzle.Layout, error) {
	return puzzle.Generate(opts.Config(), opts.Seed)
}

// ConfigHash returns the content hash of a puzzle configuration, used to key
// cached layouts.
func ConfigHash(cfg puzzle.Config) string {
	data, _ := json.Marshal(cfg)
	return cache.Hash(data)
}
