// Package geom provides the planar primitives used by barrier placement.
//
// # Overview
//
// Barriers are straight line segments, and every placement rule reduces to a
// minimum distance between two segments: the clearance between two barriers,
// or the gap between a barrier and the box's horizontal center line. This
// package implements those distances in closed form:
//
//   - [PointSegmentDistance]: distance from a point to the nearest point of a segment
//   - [Intersects]: whether two segments share at least one point
//   - [SegmentDistance]: minimum distance between two segments (0 when they cross)
//
// All routines treat horizontal, vertical, parallel and collinear segments
// uniformly; no orientation is special-cased.
//
// # Construction
//
// Segments are usually built from a center, an angle in degrees and a length:
//
//	s := geom.SegmentFromCenter(geom.Pt(28, 17.5), 90, 8)
//	// s.A = (28, 13.5), s.B = (28, 21.5)
package geom
