// Package symmetry: the two rotation generators.
package symmetry

import (
	"github.com/katalvlaran/symgrid/grid"
)

//----------------------------------------------------------------------------//
// Rotation90: 4-cycles {(i,j), (v−j, i−u), (r−i, s−j), (j+u, v−i)}
// with u=(r−s)/2, v=(r+s)/2
//----------------------------------------------------------------------------//

type rotation90 struct{}

func (rotation90) Kind() Kind { return Rotation90 }

// rot90Cycle returns the up-to-3 rotated mates of (i,j) for center
// parameters (r,s); callers must bounds-check each mate.
func rot90Cycle(i, j, r, s int) [3]grid.Coord {
	u, v := (r-s)/2, (r+s)/2

	return [3]grid.Coord{
		{Row: v - j, Col: i - u},
		{Row: r - i, Col: s - j},
		{Row: j + u, Col: v - i},
	}
}

// Search scans center parameters r ∈ [1, 2n−3], s ∈ [1, 2k−3] with r+s
// even (the rotation center must land on a cell or a cell corner).
// Distance |r−n+1|+|s−k+1|, extent n+k.
// Complexity: O(n²·k²).
func (rotation90) Search(g *grid.Grid, wildcard int) Detection {
	n, k := g.Rows(), g.Cols()
	var found []scored
	for r := 1; r <= 2*n-3; r++ {
		for s := 1; s <= 2*k-3; s++ {
			if (r+s)%2 != 0 {
				continue
			}
			ok := true
			for i := 0; i < n && ok; i++ {
				for j := 0; j < k && ok; j++ {
					for _, m := range rot90Cycle(i, j, r, s) {
						if !g.InBounds(m.Row, m.Col) {
							continue
						}
						if !colorsCompatible(g.At(i, j), g.At(m.Row, m.Col), wildcard) {
							ok = false
							break
						}
					}
				}
			}
			if ok {
				found = append(found, scored{penalty: abs(r-n+1) + abs(s-k+1), p: Params{R: r, S: s}})
			}
		}
	}

	return rank(found, float64(n+k))
}

// Orbits unions every cell with its in-bounds rotated mates and emits
// the resulting classes of size ≥ 2. Partial cycles (some mates out of
// bounds) from neighboring cells can overlap, so a disjoint-set merge
// is required to keep the output an exact partition.
func (rotation90) Orbits(rows, cols int, p Params) []Orbit {
	d := newDisjointSet(rows * cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			for _, m := range rot90Cycle(i, j, p.R, p.S) {
				if m.Row < 0 || m.Row >= rows || m.Col < 0 || m.Col >= cols {
					continue
				}
				d.union(i*cols+j, m.Row*cols+m.Col)
			}
		}
	}

	return orbitsFromSet(d, rows, cols)
}

//----------------------------------------------------------------------------//
// Rotation180: (i,j) ~ (r−i, s−j)
//----------------------------------------------------------------------------//

type rotation180 struct{}

func (rotation180) Kind() Kind { return Rotation180 }

// Search scans r ∈ [1, 2n−3], s ∈ [1, 2k−3]; distance |r−n+1|+|s−k+1|,
// extent n+k.
// Complexity: O(n²·k²).
func (rotation180) Search(g *grid.Grid, wildcard int) Detection {
	n, k := g.Rows(), g.Cols()
	var found []scored
	for r := 1; r <= 2*n-3; r++ {
		for s := 1; s <= 2*k-3; s++ {
			ok := true
			for i := 0; i < n && ok; i++ {
				for j := 0; j < k; j++ {
					i1, j1 := r-i, s-j
					if i1 < 0 || i1 >= n || j1 < 0 || j1 >= k {
						continue
					}
					if !colorsCompatible(g.At(i, j), g.At(i1, j1), wildcard) {
						ok = false
						break
					}
				}
			}
			if ok {
				found = append(found, scored{penalty: abs(r-n+1) + abs(s-k+1), p: Params{R: r, S: s}})
			}
		}
	}

	return rank(found, float64(n+k))
}

// Orbits pairs (i,j) with (r−i, s−j), emitted once per unordered pair;
// the fixed point at the center (if any) stays implicit.
func (rotation180) Orbits(rows, cols int, p Params) []Orbit {
	var orbits []Orbit
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			i1, j1 := p.R-i, p.S-j
			if i1 < 0 || i1 >= rows || j1 < 0 || j1 >= cols {
				continue
			}
			if i1 < i || (i1 == i && j1 <= j) {
				continue
			}
			orbits = append(orbits, Orbit{{Row: i, Col: j}, {Row: i1, Col: j1}})
		}
	}

	return orbits
}
