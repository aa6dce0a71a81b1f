// Package symmetry: the repair orchestrator.
package symmetry

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/symgrid/grid"
)

// combinations is the fixed combination search order: each family's
// single generators first, then its pair. The solver stops at the first
// combination that yields any kept candidate (greedy first-hit, not an
// exhaustive global re-rank), so this order decides which candidates
// can ever be returned on ambiguous tasks.
var combinations = [][]Kind{
	{Translation2D},
	{ShearTranslation},
	{Translation2D, ShearTranslation},
	{HorizontalMirror},
	{VerticalMirror},
	{HorizontalMirror, VerticalMirror},
	{DiagonalMirrorNWSE},
	{DiagonalMirrorNESW},
	{DiagonalMirrorNWSE, DiagonalMirrorNESW},
	{Rotation90},
	{Rotation180},
}

// Solver detects symmetry in a task's grids and repairs occluded test
// grids from their orbit-mates. A Solver is stateless between calls
// and safe for use from independent concurrent workers: every Solve
// owns its own disjoint-sets and candidate lists.
type Solver struct {
	opts    Options
	catalog []Generator
}

// New constructs a Solver. Returns ErrBadOptions for non-positive
// option fields; use DefaultOptions for behavioral parity with the
// reference cutoffs.
func New(opts Options) (*Solver, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Solver{opts: opts, catalog: Catalog()}, nil
}

// generator returns the catalog entry for k; Catalog is Kind-ordered.
func (s *Solver) generator(k Kind) Generator { return s.catalog[k] }

// CanSolve is the applicability gate: true if any training input or
// output exhibits a detectable symmetry under any generator's exact
// search. Callers use it to skip the subsystem cheaply for tasks with
// no symmetry evidence.
func (s *Solver) CanSolve(t *grid.Task) bool {
	if t == nil {
		return false
	}
	for _, pair := range t.Train {
		if s.hasSymmetry(pair.Input) || s.hasSymmetry(pair.Output) {
			return true
		}
	}

	return false
}

// hasSymmetry reports whether any generator accepts any parameter on g.
func (s *Solver) hasSymmetry(g *grid.Grid) bool {
	for _, gen := range s.catalog {
		if gen.Search(g, NoWildcard).Found() {
			return true
		}
	}

	return false
}

// Solve repairs every test grid of t and returns, per test grid, at
// most MaxCandidates repaired grids ordered by descending score.
//
// Failures stay soft: the returned error only classifies an empty
// result and may be ignored.
//
//   - ErrNoEvidence          — gate failed, or no attempt produced a candidate.
//   - ErrInconsistentTraining — shapes or disappearing colors disagree;
//     the whole task is abandoned.
func (s *Solver) Solve(t *grid.Task) ([][]*grid.Grid, error) {
	// 1. Gate: bail out unless some training grid shows symmetry.
	if !s.CanSolve(t) {
		return nil, ErrNoEvidence
	}

	// 2. Infer the wildcard color(s) from the training pairs.
	forced, err := disappearingColors(t)
	if err != nil {
		return nil, err
	}

	// 3. Repair each test grid independently. With exactly one
	// uniformly disappearing color, that color is the wildcard;
	// otherwise every color present in the test grid is tried in turn.
	out := make([][]*grid.Grid, len(t.Test))
	produced := false
	for ti, test := range t.Test {
		wildcards := forced
		if len(forced) != 1 {
			wildcards = test.Colors()
		}
		out[ti] = s.SolveGrid(test, wildcards)
		if len(out[ti]) > 0 {
			produced = true
		}
	}

	// 4. Classify an all-empty result.
	if !produced {
		return out, ErrNoEvidence
	}

	return out, nil
}

// disappearingColors inspects the training pairs: per pair, the set of
// input colors that change anywhere between input and output. Exactly
// zero or one color may disappear per pair, and shapes must match;
// anything else is ErrInconsistentTraining. The union of the per-pair
// colors is returned in encounter order.
func disappearingColors(t *grid.Task) ([]int, error) {
	var colors []int
	for _, pair := range t.Train {
		in, out := pair.Input, pair.Output
		if in.Rows() != out.Rows() || in.Cols() != out.Cols() {
			return nil, ErrInconsistentTraining
		}
		var gone []int
		for i := 0; i < in.Rows(); i++ {
			for j := 0; j < in.Cols(); j++ {
				c := in.At(i, j)
				if c == out.At(i, j) {
					continue
				}
				seen := false
				for _, g := range gone {
					if g == c {
						seen = true
						break
					}
				}
				if !seen {
					gone = append(gone, c)
				}
			}
		}
		if len(gone) > 1 {
			return nil, ErrInconsistentTraining
		}
		if len(gone) == 1 {
			known := false
			for _, c := range colors {
				if c == gone[0] {
					known = true
					break
				}
			}
			if !known {
				colors = append(colors, gone[0])
			}
		}
	}

	return colors, nil
}

// SolveGrid repairs a single test grid, trying each wildcard color for
// each combination in order and keeping the first combination that
// yields anything. Exposed so callers can force a wildcard color and
// skip the training-based inference.
func (s *Solver) SolveGrid(test *grid.Grid, wildcards []int) []*grid.Grid {
	// 1. Greedy combination search: first combination that yields any
	// kept candidate wins; each (combination, wildcard) attempt is
	// truncated to AttemptKeep before pooling.
	var (
		kept    []*grid.Grid
		winning []Kind
	)
	for _, combo := range combinations {
		for _, w := range wildcards {
			att := s.attempt(test, w, combo)
			if len(att) > s.opts.AttemptKeep {
				att = att[:s.opts.AttemptKeep]
			}
			kept = append(kept, att...)
		}
		if len(kept) > 0 {
			winning = combo
			break
		}
	}
	if len(kept) == 0 {
		return nil
	}

	// 2. Score each survivor: summed strength of the winning
	// combination's generators, measured on the repaired grid itself.
	scores := make([]float64, len(kept))
	for i, cand := range kept {
		scores[i] = s.score(cand, winning)
	}

	// 3. Rank descending; stable so equal-score candidates keep their
	// attempt order.
	order := make([]int, len(kept))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	// 4. Deduplicate and cap at MaxCandidates.
	var out []*grid.Grid
	for _, idx := range order {
		cand := kept[idx]
		dup := false
		for _, u := range out {
			if u.Equal(cand) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		out = append(out, cand)
		if len(out) == s.opts.MaxCandidates {
			break
		}
	}

	return out
}

// attempt runs one (combination, wildcard) repair: search parameters
// for each generator in the combination, build orbits for each chosen
// parameter (pairs fan out by combined rank, cheapest first), and keep
// every successful, non-degenerate repair.
func (s *Solver) attempt(test *grid.Grid, wildcard int, combo []Kind) []*grid.Grid {
	n, k := test.Rows(), test.Cols()
	var out []*grid.Grid

	keep := func(orbits []Orbit) {
		fixed, err := Repair(test, wildcard, orbits)
		if err != nil || fixed.Uniform() {
			return // collision or a degenerate single-color repair
		}
		out = append(out, fixed)
	}

	switch len(combo) {
	case 1:
		gen := s.generator(combo[0])
		for _, p := range s.topParams(gen, test, wildcard) {
			keep(gen.Orbits(n, k, p))
		}
	case 2:
		gen1, gen2 := s.generator(combo[0]), s.generator(combo[1])
		params1 := s.topParams(gen1, test, wildcard)
		params2 := s.topParams(gen2, test, wildcard)
		for sum := 0; sum <= 2*(s.opts.ParamCutoff-1); sum++ {
			for i := 0; i < len(params1); i++ {
				j := sum - i
				if j < 0 || j >= len(params2) {
					continue
				}
				orbits := gen1.Orbits(n, k, params1[i])
				orbits = append(orbits, gen2.Orbits(n, k, params2[j])...)
				keep(orbits)
			}
		}
	}

	return out
}

// topParams runs gen's search and truncates to the ParamCutoff best.
func (s *Solver) topParams(gen Generator, test *grid.Grid, wildcard int) []Params {
	params := gen.Search(test, wildcard).Params
	if len(params) > s.opts.ParamCutoff {
		params = params[:s.opts.ParamCutoff]
	}

	return params
}

// score sums the per-generator strengths of combo on g under an exact
// search. Scores are internal-only; callers see order, never values.
func (s *Solver) score(g *grid.Grid, combo []Kind) float64 {
	strengths := make([]float64, 0, len(combo))
	for _, kind := range combo {
		strengths = append(strengths, s.generator(kind).Search(g, NoWildcard).Strength)
	}

	return floats.Sum(strengths)
}
