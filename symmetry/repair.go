// Package symmetry: the merger/repair engine.
package symmetry

import (
	"github.com/katalvlaran/symgrid/grid"
)

// Repair merges the supplied orbit sets — possibly from several
// generators at once, which is how two generators compose into one
// finer repair — over a single disjoint-set and resolves one color per
// class:
//
//   - all members wildcard, or a single distinct color → class kept as-is
//     (wildcard-only classes have no evidence to fill from);
//   - one real color plus occluded cells → occlusions filled with it;
//   - two distinct non-wildcard colors, or more than two distinct values
//     → ErrCollision, the whole attempt fails.
//
// Returns a repaired copy of g, or (nil, ErrCollision). A grid that
// already satisfies its generators comes back unchanged.
// Complexity: O(n·k·α(n·k) + Σ|orbit|).
func Repair(g *grid.Grid, wildcard int, orbits []Orbit) (*grid.Grid, error) {
	// 1. Union every orbit's members over one flattened-id arena;
	// overlapping orbits from different generators merge here.
	n, k := g.Rows(), g.Cols()
	d := newDisjointSet(n * k)
	for _, orb := range orbits {
		if len(orb) < 2 {
			continue
		}
		first := orb[0].Row*k + orb[0].Col
		for _, c := range orb[1:] {
			d.union(first, c.Row*k+c.Col)
		}
	}

	// 2. Gather classes deterministically: ids in row-major order,
	// classes by first member.
	classIdx := make(map[int]int)
	var classes [][]int
	for id := 0; id < n*k; id++ {
		root := d.find(id)
		ci, ok := classIdx[root]
		if !ok {
			ci = len(classes)
			classIdx[root] = ci
			classes = append(classes, nil)
		}
		classes[ci] = append(classes[ci], id)
	}

	// 3. Resolve one color per class and fill occlusions.
	cells := g.Cells()
	for _, members := range classes {
		var colors []int
		for _, id := range members {
			c := cells[id/k][id%k]
			known := false
			for _, seen := range colors {
				if seen == c {
					known = true
					break
				}
			}
			if !known {
				colors = append(colors, c)
			}
		}
		if len(colors) <= 1 {
			continue // nothing to repair
		}
		if len(colors) > 2 {
			return nil, ErrCollision
		}
		if colors[0] != wildcard && colors[1] != wildcard {
			return nil, ErrCollision
		}
		fill := colors[0]
		if fill == wildcard {
			fill = colors[1]
		}
		for _, id := range members {
			cells[id/k][id%k] = fill
		}
	}

	return grid.New(cells)
}
