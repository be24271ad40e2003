// Package puzzle generates laser box puzzle layouts.
//
// # Overview
//
// A laser box is a W×H rectangle with a laser entering on the left wall at
// half height and a target somewhere on the right wall. Inside the box sit a
// handful of straight barriers. Exactly one barrier is a mirror (shorter, and
// kept clear of the laser entry and the right wall); one barrier, chosen
// independently, must touch the horizontal center line; no two barriers may
// come within the minimum clearance of each other.
//
// # Generation
//
// [Generator] places barriers one index at a time with two nested retry
// budgets. Each outer pass draws a fresh angle for the current index and then
// makes up to [Rules.MaxTries] attempts at a position. A pass that exhausts
// its tries consumes one of [Rules.MaxAttempts] outer attempts and the same
// index is retried; accepted barriers are never revisited. When the outer
// budget runs out the generator returns whatever prefix it has accepted.
//
// Running out of budget is not an error. Callers detect it explicitly:
//
//	l, err := puzzle.Generate(puzzle.DefaultConfig(), 42)
//	if err != nil {
//	    return err // invalid configuration
//	}
//	if !l.Complete() {
//	    log.Warn("partial layout", "barriers", len(l.Barriers))
//	}
//
// # Reproducibility
//
// All randomness comes from an injected [Source]. [NewSource] returns a PCG
// generator, so the same seed and [Config] always produce an identical
// [Layout], including its [Layout.ID].
package puzzle
