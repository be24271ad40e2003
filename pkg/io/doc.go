// Package io provides JSON import and export for generated puzzle layouts.
//
// # Overview
//
// The JSON document is the hand-off between the generator and any renderer,
// and the format the pipeline caches. It carries, for every placed barrier,
// the record renderers consume:
//
//	{"x1": 25.1, "y1": 14.2, "x2": 29.9, "y2": 15.6, "is_mirror": true, "angle": 16.3, "facing": -1}
//
// plus the target point and the generation metadata needed to reproduce or
// audit the layout:
//
//	{
//	  "id": "6f1c…",
//	  "seed": 42,
//	  "box": {"width": 56, "height": 35},
//	  "mirror_index": 1,
//	  "center_index": 0,
//	  "attempts": 0,
//	  "requested": 3,
//	  "complete": true,
//	  "barriers": [ … ],
//	  "target": {"x": 56, "y": 12.7}
//	}
//
// # Barrier Fields
//
//   - x1, y1, x2, y2: segment endpoints in box units
//   - is_mirror: true for the mirror barrier
//   - angle: orientation in degrees, [0, 180)
//   - facing: -1 or 1, present only for the mirror
//   - cx, cy, length: optional; derived from the endpoints when absent
//
// "complete" is written for consumers that do not want to compare
// len(barriers) with "requested"; on import it is recomputed.
//
// # Round Trip
//
// [WriteJSON] followed by [ReadJSON] reproduces the layout exactly: floats are
// encoded in their shortest round-tripping form.
package io
