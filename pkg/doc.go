// Package pkg provides the libraries behind laserbox, a generator for laser
// box puzzles.
//
// # Overview
//
// A puzzle is a 56 × 35 box with a laser entering the left wall on the
// center line, a target on the right wall and three barriers in between.
// Exactly one barrier is a mirror; one barrier crosses the center line. The
// player has to work out how the mirror sends the laser to the target.
//
// # Architecture
//
// The typical data flow:
//
//	seed + [puzzle.Config]
//	         ↓
//	    [puzzle] (place barriers, pick the target)
//	         ↓
//	    [render] (scene → SVG, Graphviz, PNG, PDF)  /  [io] (JSON)
//
// [pipeline] runs both stages with caching from [cache] and is shared by the
// CLI and the HTTP server.
//
// # Quick Start
//
//	l, err := puzzle.Generate(puzzle.DefaultConfig(), 7)
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(l, sink.WithStyle(handdrawn.New(l.Seed)))
//
// # Main Packages
//
// [geom] - Points, segments and closed-form distances.
//
// [puzzle] - Box configuration, placement rules and the barrier generator.
//
// [render] - Scene construction and format conversion, with the [render/sink]
// (native SVG, JSON), [render/styles] (simple, hand-drawn) and
// [render/graphviz] subpackages.
//
// [io] - The JSON interchange document.
//
// [pipeline] - Generate → render orchestration, defaults and validation.
//
// [cache] - File, Redis and null caches plus key derivation.
//
// [config] - The TOML configuration file.
//
// [errors] - Structured error codes.
//
// [observability] - Hooks for metrics and tracing.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test -run Example ./... # Examples only
//
// The Redis cache test runs only when LASERBOX_TEST_REDIS_URL is set.
package pkg
