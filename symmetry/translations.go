// Package symmetry: the two translation generators.
//
// Both search with exact equality only — occluded cells are not
// tolerated — so on grids containing the wildcard color they usually
// find nothing and act purely as applicability signals. This asymmetry
// with the mirror/rotation searches is deliberate and preserved as-is.
package symmetry

import (
	"github.com/katalvlaran/symgrid/grid"
)

//----------------------------------------------------------------------------//
// Translation2D: axis-aligned periodicity (i,j) ~ (i+r, j+s)
//----------------------------------------------------------------------------//

type translation2D struct{}

func (translation2D) Kind() Kind { return Translation2D }

// Search finds the smallest row period r ∈ [1,n) and column period
// s ∈ [1,k) under exact equality. A missing period is recorded as the
// full extent (n or k); if both are missing there is no symmetry.
// The single best (r,s) is returned with strength 1.
// Complexity: O(n²·k + n·k²).
func (translation2D) Search(g *grid.Grid, _ int) Detection {
	n, k := g.Rows(), g.Cols()
	bestR, bestS := n, k

	for r := 1; r < n; r++ {
		ok := true
		for i := 0; i < n-r && ok; i++ {
			for j := 0; j < k; j++ {
				if g.At(i, j) != g.At(i+r, j) {
					ok = false
					break
				}
			}
		}
		if ok {
			bestR = r
			break
		}
	}
	for s := 1; s < k; s++ {
		ok := true
		for i := 0; i < n && ok; i++ {
			for j := 0; j < k-s; j++ {
				if g.At(i, j) != g.At(i, j+s) {
					ok = false
					break
				}
			}
		}
		if ok {
			bestS = s
			break
		}
	}

	if bestR == n && bestS == k {
		return Detection{}
	}

	return Detection{Params: []Params{{R: bestR, S: bestS}}, Strength: 1}
}

// Orbits groups cells by their phase (i mod r, j mod s); a period equal
// to the full extent contributes no folding on that axis. Classes are
// listed by first occurrence in row-major order.
func (translation2D) Orbits(rows, cols int, p Params) []Orbit {
	classIdx := make(map[int]int)
	var classes []Orbit
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			key := (i%p.R)*cols + j%p.S
			ci, ok := classIdx[key]
			if !ok {
				ci = len(classes)
				classIdx[key] = ci
				classes = append(classes, nil)
			}
			classes[ci] = append(classes[ci], grid.Coord{Row: i, Col: j})
		}
	}

	var orbits []Orbit
	for _, c := range classes {
		if len(c) >= 2 {
			orbits = append(orbits, c)
		}
	}

	return orbits
}

//----------------------------------------------------------------------------//
// ShearTranslation: periodicity along the sheared lattice vector (r,s)
//----------------------------------------------------------------------------//

type shearTranslation struct{}

func (shearTranslation) Kind() Kind { return ShearTranslation }

// shearKey projects (i,j) onto lattice coordinates for the vector
// (r,s): u is the component orthogonal to the vector, v the position
// along it folded by the vector's squared length. Cells sharing a key
// are translates of each other. The large positive bias keeps the
// modulus argument non-negative for every in-domain grid size.
func shearKey(i, j, r, s int) (u, v int) {
	d := r*r + s*s

	return i*s - j*r, (i*r + j*s + 100*d) % d
}

// Search enumerates every lattice vector (r,s) ∈ [−n+1,n−1]×[−k+1,k−1]
// except (0,0) and keeps those under which all key-sharing cells hold
// equal colors (exact check). The winner minimizes (|r|+|s|, r, s);
// it is returned alone with strength 1.
// Complexity: O(n²·k²).
func (shearTranslation) Search(g *grid.Grid, _ int) Detection {
	n, k := g.Rows(), g.Cols()
	var (
		best      Params
		bestScore = -1
	)
	for r := -n + 1; r <= n-1; r++ {
		for s := -k + 1; s <= k-1; s++ {
			if r == 0 && s == 0 {
				continue
			}
			if !shearConsistent(g, r, s) {
				continue
			}
			// Ascending (r,s) enumeration: the first strict minimum of
			// |r|+|s| also minimizes the (r,s) tie-break.
			if score := abs(r) + abs(s); bestScore < 0 || score < bestScore {
				bestScore = score
				best = Params{R: r, S: s}
			}
		}
	}

	if bestScore < 0 {
		return Detection{}
	}

	return Detection{Params: []Params{best}, Strength: 1}
}

// shearConsistent verifies that all cells sharing a lattice key hold
// equal colors.
func shearConsistent(g *grid.Grid, r, s int) bool {
	type key struct{ u, v int }
	n, k := g.Rows(), g.Cols()
	colors := make(map[key]int)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			u, v := shearKey(i, j, r, s)
			c := g.At(i, j)
			if prev, ok := colors[key{u, v}]; ok {
				if prev != c {
					return false
				}
				continue
			}
			colors[key{u, v}] = c
		}
	}

	return true
}

// Orbits groups cells by their lattice key under the vector (r,s),
// classes listed by first occurrence in row-major order.
func (shearTranslation) Orbits(rows, cols int, p Params) []Orbit {
	type key struct{ u, v int }
	classIdx := make(map[key]int)
	var classes []Orbit
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			u, v := shearKey(i, j, p.R, p.S)
			ci, ok := classIdx[key{u, v}]
			if !ok {
				ci = len(classes)
				classIdx[key{u, v}] = ci
				classes = append(classes, nil)
			}
			classes[ci] = append(classes[ci], grid.Coord{Row: i, Col: j})
		}
	}

	var orbits []Orbit
	for _, c := range classes {
		if len(c) >= 2 {
			orbits = append(orbits, c)
		}
	}

	return orbits
}
