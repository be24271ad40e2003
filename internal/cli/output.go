package cli

import (
	"fmt"
	"os"
	"path/filepath"

	errs "github.com/matzehuels/laserbox/pkg/errors"
)

// artifactWriteParams describes one batch of rendered artifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string // write order; formats missing from artifacts are skipped
	dir       string
	base      string // file name without extension
	cacheHit  bool
}

// writeArtifacts writes each artifact to dir/base.format and prints the
// resulting paths. It returns the paths in write order.
func writeArtifacts(p artifactWriteParams) ([]string, error) {
	if p.dir == "" {
		p.dir = "."
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var paths []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := filepath.Join(p.dir, p.base+"."+format)
		if err := errs.ValidateOutputPath(path); err != nil {
			return paths, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
		paths = append(paths, path)
	}
	if p.cacheHit && len(paths) > 0 {
		printDetail("%d artifact(s) served from cache", len(paths))
	}
	return paths, nil
}

// puzzleBase is the file name stem for a generated puzzle.
func puzzleBase(seed uint64) string {
	return fmt.Sprintf("puzzle-%d", seed)
}
