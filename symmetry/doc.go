// Package symmetry detects discrete symmetries in small colored grids
// and repairs occluded cells from their orbit-mates.
//
// What & Why
//
//   - What is a symmetry repair?
//     Given a grid whose cells hold small color codes, some of which are
//     occluded by a designated wildcard color, find a symmetry-group
//     action (mirror, rotation, translation) the visible cells obey,
//     partition the coordinates into orbits forced to share one color,
//     and fill each occluded cell from its orbit-mates.
//
//   - Why it matters:
//     Grid-transformation puzzles frequently hide part of a symmetric
//     pattern and ask for the restored surface. Detecting which group
//     action survives the occlusion — and composing several actions into
//     one finer partition — recovers the answer without any learning.
//
// Generators Provided
//
// Eight generator kinds implement the Generator interface, each
// exposing parameter search, strength scoring, and orbit construction
// as one capability:
//
//   - HorizontalMirror(r)    : (i,j) ~ (r−i, j)
//   - VerticalMirror(s)      : (i,j) ~ (i, s−j)
//   - DiagonalMirrorNWSE(s)  : (i,j) ~ (s+j, i−s)
//   - DiagonalMirrorNESW(s)  : (i,j) ~ (s−j, s−i)
//   - Rotation90(r,s)        : 4-cycles around the center; r+s must be even
//   - Rotation180(r,s)       : (i,j) ~ (r−i, s−j)
//   - Translation2D(r,s)     : axis-aligned periods
//   - ShearTranslation(r,s)  : sheared-lattice vector
//
// The first six search under a wildcard-tolerant consistency check
// (occluded cells match anything); the two translations compare
// exactly and therefore serve mostly as applicability signals on
// occluded grids. Accepted parameters are ranked by centering distance
// and the best yields a strength in [0,1]: 1 − distance/extent.
//
// Repair Pipeline
//
//  1. Gate: CanSolve scans every training grid with every generator.
//  2. Wildcard inference: the one color that uniformly disappears
//     between training inputs and outputs, else every color of the
//     test grid in turn.
//  3. Combination search: single generators, then pairs, in a fixed
//     priority order; the first combination yielding any candidate
//     wins (greedy first-hit cutoff, deliberately not exhaustive).
//  4. Merge & repair: orbit sets of all active generators are unioned
//     in one arena disjoint-set; each class resolves to a single color
//     or the attempt dies with ErrCollision.
//  5. Ranking: candidates score as the summed generator strengths on
//     the repaired grid; stable descending sort, exact-duplicate
//     removal, at most MaxCandidates survive per test grid.
//
// Error Conditions
//
// All failures are soft — the solver never raises a hard error, it
// classifies the empty result:
//
//   - ErrNoEvidence           — no generator parameter found anywhere, or
//     no attempt survived (attempt-local lack of evidence).
//   - ErrInconsistentTraining — training pairs disagree on shape or on
//     which color disappears (task-global, aborts the whole task).
//   - ErrCollision            — one attempt hit an orbit with conflicting
//     real colors (attempt-local, only that attempt is discarded;
//     surfaced by Repair for direct callers).
//
// Determinism & Concurrency
//
// Every operation is a pure, single-threaded function over in-memory
// grids: no I/O, no caching across calls, no shared mutable state.
// Stable sorts and fixed iteration orders make equal-score outputs
// reproducible run-to-run, and a Solver may be shared freely by
// concurrent workers processing different tasks.
//
// Complexity: O(n+k) axis candidates per generator × O(n·k) validation
// across ≤ 8 generators, a handful of wildcard candidates and a fixed
// set of pairwise combinations — well bounded for grids under 30×30.
//
// For usage, see example_test.go.
package symmetry
