// Package symmetry: the four mirror generators and the shared
// parameter-ranking helpers.
//
// Every mirror search follows the same shape:
//  1. Enumerate the integer axis parameters whose reflection maps the
//     grid into itself.
//  2. For each candidate, verify every in-bounds related cell pair under
//     the wildcard-tolerant check.
//  3. Rank accepted parameters by centering distance (axis closest to
//     the grid midline first) with a stable sort, and derive the
//     strength of the best one.
package symmetry

import (
	"sort"

	"github.com/katalvlaran/symgrid/grid"
)

// colorsCompatible reports whether two cell values may share an orbit:
// equal colors, or at least one side occluded by the wildcard.
func colorsCompatible(a, b, wildcard int) bool {
	return a == b || a == wildcard || b == wildcard
}

// abs returns |x| for ints.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// scored couples an accepted parameter with its centering distance.
type scored struct {
	penalty int
	p       Params
}

// rank orders candidates by centering distance, stable on ties so that
// enumeration order breaks them deterministically, and derives the
// strength of the best candidate: 1 − distance/extent.
func rank(found []scored, extent float64) Detection {
	if len(found) == 0 {
		return Detection{}
	}
	sort.SliceStable(found, func(a, b int) bool { return found[a].penalty < found[b].penalty })
	params := make([]Params, len(found))
	for i, f := range found {
		params[i] = f.p
	}

	return Detection{
		Params:   params,
		Strength: 1 - float64(found[0].penalty)/extent,
	}
}

//----------------------------------------------------------------------------//
// HorizontalMirror: (i,j) ~ (r−i, j)
//----------------------------------------------------------------------------//

type horizontalMirror struct{}

func (horizontalMirror) Kind() Kind { return HorizontalMirror }

// Search scans r ∈ [1, 2n−3]. Distance |r−(n−1)| measures how far the
// reflection axis sits from the horizontal midline; extent is n.
// Complexity: O(n²·k).
func (horizontalMirror) Search(g *grid.Grid, wildcard int) Detection {
	n, k := g.Rows(), g.Cols()
	var found []scored
	for r := 1; r <= 2*n-3; r++ {
		ok := true
		for i := 0; i < n && ok; i++ {
			i1 := r - i
			if i1 < 0 || i1 >= n {
				continue
			}
			for j := 0; j < k; j++ {
				if !colorsCompatible(g.At(i, j), g.At(i1, j), wildcard) {
					ok = false
					break
				}
			}
		}
		if ok {
			found = append(found, scored{penalty: abs(r - n + 1), p: Params{R: r}})
		}
	}

	return rank(found, float64(n))
}

// Orbits pairs (i,j) with (r−i, j); each pair is emitted once, from its
// upper cell. Cells on the axis (i == r−i) are singletons and omitted.
func (horizontalMirror) Orbits(rows, cols int, p Params) []Orbit {
	var orbits []Orbit
	for i := 0; i < rows; i++ {
		i1 := p.R - i
		if i1 <= i || i1 >= rows {
			continue
		}
		for j := 0; j < cols; j++ {
			orbits = append(orbits, Orbit{{Row: i, Col: j}, {Row: i1, Col: j}})
		}
	}

	return orbits
}

//----------------------------------------------------------------------------//
// VerticalMirror: (i,j) ~ (i, s−j)
//----------------------------------------------------------------------------//

type verticalMirror struct{}

func (verticalMirror) Kind() Kind { return VerticalMirror }

// Search scans s ∈ [1, 2k−3]; distance |s−(k−1)|, extent k.
// Complexity: O(n·k²).
func (verticalMirror) Search(g *grid.Grid, wildcard int) Detection {
	n, k := g.Rows(), g.Cols()
	var found []scored
	for s := 1; s <= 2*k-3; s++ {
		ok := true
		for i := 0; i < n && ok; i++ {
			for j := 0; j < k; j++ {
				j1 := s - j
				if j1 < 0 || j1 >= k {
					continue
				}
				if !colorsCompatible(g.At(i, j), g.At(i, j1), wildcard) {
					ok = false
					break
				}
			}
		}
		if ok {
			found = append(found, scored{penalty: abs(s - k + 1), p: Params{S: s}})
		}
	}

	return rank(found, float64(k))
}

// Orbits pairs (i,j) with (i, s−j), emitted once from the left cell.
func (verticalMirror) Orbits(rows, cols int, p Params) []Orbit {
	var orbits []Orbit
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			j1 := p.S - j
			if j1 <= j || j1 >= cols {
				continue
			}
			orbits = append(orbits, Orbit{{Row: i, Col: j}, {Row: i, Col: j1}})
		}
	}

	return orbits
}

//----------------------------------------------------------------------------//
// DiagonalMirrorNWSE: (i,j) ~ (s+j, i−s)
//----------------------------------------------------------------------------//

type diagonalMirrorNWSE struct{}

func (diagonalMirrorNWSE) Kind() Kind { return DiagonalMirrorNWSE }

// Search scans the diagonal offset s ∈ [−k+2, n−2]; distance |s| (the
// main diagonal is the midline), extent n+k.
// Complexity: O((n+k)·n·k).
func (diagonalMirrorNWSE) Search(g *grid.Grid, wildcard int) Detection {
	n, k := g.Rows(), g.Cols()
	var found []scored
	for s := -k + 2; s <= n-2; s++ {
		ok := true
		for i := 0; i < n && ok; i++ {
			for j := 0; j < k; j++ {
				i1, j1 := s+j, i-s
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
			found = append(found, scored{penalty: abs(s), p: Params{S: s}})
		}
	}

	return rank(found, float64(n+k))
}

// Orbits pairs (i,j) with (s+j, i−s), emitted once per unordered pair.
func (diagonalMirrorNWSE) Orbits(rows, cols int, p Params) []Orbit {
	var orbits []Orbit
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			i1, j1 := p.S+j, i-p.S
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

//----------------------------------------------------------------------------//
// DiagonalMirrorNESW: (i,j) ~ (s−j, s−i)
//----------------------------------------------------------------------------//

type diagonalMirrorNESW struct{}

func (diagonalMirrorNESW) Kind() Kind { return DiagonalMirrorNESW }

// Search scans the anti-diagonal sum s ∈ [2, n+k−4]; distance
// |2s−n−k−2|, extent n+k.
// Complexity: O((n+k)·n·k).
func (diagonalMirrorNESW) Search(g *grid.Grid, wildcard int) Detection {
	n, k := g.Rows(), g.Cols()
	var found []scored
	for s := 2; s <= n+k-4; s++ {
		ok := true
		for i := 0; i < n && ok; i++ {
			for j := 0; j < k; j++ {
				i1, j1 := s-j, s-i
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
			found = append(found, scored{penalty: abs(2*s - n - k - 2), p: Params{S: s}})
		}
	}

	return rank(found, float64(n+k))
}

// Orbits pairs (i,j) with (s−j, s−i), emitted once per unordered pair.
func (diagonalMirrorNESW) Orbits(rows, cols int, p Params) []Orbit {
	var orbits []Orbit
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			i1, j1 := p.S-j, p.S-i
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
