package sink

import (
	"github.com/matzehuels/laserbox/pkg/io"
	"github.com/matzehuels/laserbox/pkg/puzzle"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name (e.g., "simple", "handdrawn") in the
// JSON output so a re-render can reproduce the same look.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// RenderJSON exports the layout as an indented JSON document readable by
// [io.ImportJSON].
//
// [io.ImportJSON]: github.com/matzehuels/laserbox/pkg/io.ImportJSON
func RenderJSON(l puzzle.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	return io.MarshalJSON(l, r.style)
}
