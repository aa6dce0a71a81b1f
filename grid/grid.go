// Package grid provides the immutable colored-grid and task model shared
// by the symmetry engine. A Grid is a rectangular 2D array of small
// non-negative integer color codes, stored row-major; a Task pairs
// training examples (input, output) with one or more test grids.
//
// Grids are deep-copied on construction and never mutated afterwards,
// so they are safe to share across concurrent solver invocations.
package grid

import (
	"strconv"
	"strings"
)

// Grid is an immutable rectangular grid of color codes.
// Cells are stored row-major: cell (i,j) lives at index i*cols+j.
type Grid struct {
	rows, cols int
	cells      []int
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeColor if any cell is below zero.
// Complexity: O(n·k) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n, k := len(values), len(values[0])
	cells := make([]int, 0, n*k)
	for _, row := range values {
		if len(row) != k {
			return nil, ErrNonRectangular
		}
		for _, c := range row {
			if c < 0 {
				return nil, ErrNegativeColor
			}
			cells = append(cells, c)
		}
	}

	return &Grid{rows: n, cols: k, cells: cells}, nil
}

// Rows returns the number of rows (n).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (k).
func (g *Grid) Cols() int { return g.cols }

// At returns the color at cell (i,j). Callers must pass in-bounds
// coordinates; see InBounds. Complexity: O(1).
func (g *Grid) At(i, j int) int {
	return g.cells[i*g.cols+j]
}

// InBounds reports whether (i,j) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

// Cells returns a fresh 2D copy of the cell values; mutating it does
// not affect the Grid. Complexity: O(n·k).
func (g *Grid) Cells() [][]int {
	out := make([][]int, g.rows)
	for i := 0; i < g.rows; i++ {
		out[i] = make([]int, g.cols)
		copy(out[i], g.cells[i*g.cols:(i+1)*g.cols])
	}

	return out
}

// Equal reports whether two grids have identical shape and cell values.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for idx, c := range g.cells {
		if c != o.cells[idx] {
			return false
		}
	}

	return true
}

// Uniform reports whether every cell holds the same color.
func (g *Grid) Uniform() bool {
	for _, c := range g.cells[1:] {
		if c != g.cells[0] {
			return false
		}
	}

	return true
}

// Colors lists the distinct colors present, in first-appearance
// (row-major scan) order. Complexity: O(n·k·|colors|).
func (g *Grid) Colors() []int {
	var colors []int
	for _, c := range g.cells {
		seen := false
		for _, known := range colors {
			if known == c {
				seen = true
				break
			}
		}
		if !seen {
			colors = append(colors, c)
		}
	}

	return colors
}

// String renders the grid as space-separated color codes, one row per
// line, without a trailing newline.
func (g *Grid) String() string {
	var b strings.Builder
	for i := 0; i < g.rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < g.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(g.At(i, j)))
		}
	}

	return b.String()
}
