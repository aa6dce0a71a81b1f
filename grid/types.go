// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/symgrid.
package grid

import (
	"errors"
)

// Sentinel errors for grid and task construction.
var (
	// ErrEmptyGrid indicates an input grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeColor indicates a cell value below zero.
	ErrNegativeColor = errors.New("grid: color codes must be non-negative")
	// ErrEmptyTask indicates a task without training pairs or test grids.
	ErrEmptyTask = errors.New("grid: task must contain at least one training pair and one test grid")
	// ErrBadTaskJSON indicates task data that does not decode as a task document.
	ErrBadTaskJSON = errors.New("grid: malformed task document")
)

// Coord addresses a single cell: Row ∈ [0, Rows), Col ∈ [0, Cols).
type Coord struct {
	Row, Col int
}
