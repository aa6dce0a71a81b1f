// Package symmetry defines generator kinds, parameters, options, and
// sentinel errors for the symmetry subpackage of
// github.com/katalvlaran/symgrid.
package symmetry

import (
	"errors"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symgrid/grid"
)

// Sentinel errors for symmetry operations. All of them are soft:
// the solver never fails hard, it only classifies why a result list
// came back empty (or why one attempt was discarded).
var (
	// ErrCollision indicates an orbit holding two or more distinct
	// non-wildcard colors; the owning repair attempt is discarded.
	ErrCollision = errors.New("symmetry: orbit holds conflicting colors")
	// ErrNoEvidence indicates that no generator search found a valid
	// parameter anywhere in the task.
	ErrNoEvidence = errors.New("symmetry: no symmetry evidence found")
	// ErrInconsistentTraining indicates training pairs that disagree on
	// shape, or a pair in which more than one color disappears; the
	// whole task is inapplicable.
	ErrInconsistentTraining = errors.New("symmetry: training pairs disagree on shape or disappearing color")
	// ErrBadOptions indicates non-positive option fields.
	ErrBadOptions = errors.New("symmetry: option fields must be positive")
)

// NoWildcard is a color value that occurs in no grid (colors are
// non-negative), so passing it as the wildcard makes every consistency
// check exact.
const NoWildcard = -1

// Kind enumerates the symmetry generators, in catalog order.
type Kind int

const (
	// Translation2D relates (i,j) ~ (i+r, j+s) for axis-aligned periods
	// r (rows) and s (columns). Exact-match search only.
	Translation2D Kind = iota
	// ShearTranslation relates cells along the sheared lattice spanned
	// by the vector (r,s). Exact-match search only.
	ShearTranslation
	// HorizontalMirror relates (i,j) ~ (r−i, j): reflection across the
	// horizontal axis at row r/2.
	HorizontalMirror
	// VerticalMirror relates (i,j) ~ (i, s−j).
	VerticalMirror
	// DiagonalMirrorNWSE relates (i,j) ~ (s+j, i−s).
	DiagonalMirrorNWSE
	// DiagonalMirrorNESW relates (i,j) ~ (s−j, s−i).
	DiagonalMirrorNESW
	// Rotation90 relates each cell to its up-to-4-cycle around the
	// center ((r)/2, (s)/2); requires r+s even.
	Rotation90
	// Rotation180 relates (i,j) ~ (r−i, s−j).
	Rotation180
)

// kindNames is indexed by Kind.
var kindNames = [...]string{
	"Translation2D",
	"ShearTranslation",
	"HorizontalMirror",
	"VerticalMirror",
	"DiagonalMirrorNWSE",
	"DiagonalMirrorNESW",
	"Rotation90",
	"Rotation180",
}

// String returns the canonical generator name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}

	return kindNames[k]
}

// Params positions a generator's axis, center, or lattice vector.
// Which fields are meaningful depends on the kind:
//
//	HorizontalMirror            R — axis parameter (i+i' = R)
//	VerticalMirror              S — axis parameter (j+j' = S)
//	DiagonalMirrorNWSE          S — diagonal offset
//	DiagonalMirrorNESW          S — anti-diagonal sum
//	Rotation90, Rotation180     R, S — center parameters
//	Translation2D               R, S — row and column periods
//	ShearTranslation            R, S — lattice vector
type Params struct {
	R, S int
}

// Detection is the outcome of one generator's parameter search:
// all accepted parameters ranked by centering distance (closest to the
// grid midline first, stable on ties), plus the strength of the
// best-ranked one. Strength lies in [0,1]: 1 − distance/extent.
type Detection struct {
	Params   []Params
	Strength float64
}

// Found reports whether the search accepted any parameter.
func (d Detection) Found() bool { return len(d.Params) > 0 }

// Orbit is one coordinate class forced to share a single color by a
// generator's action. Only orbits of size ≥ 2 are stored explicitly;
// singletons carry no constraint and stay implicit.
type Orbit []grid.Coord

// Generator is one symmetry-group action exposing parameter search,
// orbit construction, and (via Detection) strength scoring as a single
// capability.
type Generator interface {
	// Kind identifies the generator.
	Kind() Kind

	// Search enumerates feasible axis/center parameters for g under the
	// wildcard-tolerant consistency check: every related in-bounds cell
	// pair must hold equal colors, or at least one side must equal
	// wildcard. Pass NoWildcard for an exact check. The two translation
	// kinds always compare exactly and ignore wildcard (see doc.go).
	Search(g *grid.Grid, wildcard int) Detection

	// Orbits builds the coordinate classes of size ≥ 2 induced by p
	// over a rows×cols grid. Pure geometry; cell colors are never
	// consulted, so occluded grids partition identically.
	Orbits(rows, cols int, p Params) []Orbit
}

// Catalog returns the eight generators in Kind order.
func Catalog() []Generator {
	return []Generator{
		translation2D{},
		shearTranslation{},
		horizontalMirror{},
		verticalMirror{},
		diagonalMirrorNWSE{},
		diagonalMirrorNESW{},
		rotation90{},
		rotation180{},
	}
}

// Options contains the solver cutoffs. The defaults reproduce the
// engine's reference behavior; change them only if you know why.
//
//   - ParamCutoff   — parameters kept per generator search.
//   - AttemptKeep   — candidates kept per (combination, wildcard) attempt.
//   - MaxCandidates — final candidates returned per test grid.
type Options struct {
	ParamCutoff   int `yaml:"param_cutoff"`
	AttemptKeep   int `yaml:"attempt_keep"`
	MaxCandidates int `yaml:"max_candidates"`
}

// DefaultOptions returns the reference cutoffs: 3 parameters per
// generator, 6 candidates per attempt, 3 final candidates.
func DefaultOptions() Options {
	return Options{
		ParamCutoff:   3,
		AttemptKeep:   6,
		MaxCandidates: 3,
	}
}

// validate reports ErrBadOptions for non-positive fields.
func (o Options) validate() error {
	if o.ParamCutoff < 1 || o.AttemptKeep < 1 || o.MaxCandidates < 1 {
		return ErrBadOptions
	}

	return nil
}

// OptionsFromYAML decodes an Options document, filling omitted fields
// from DefaultOptions. Returns ErrBadOptions for non-positive values.
func OptionsFromYAML(data []byte) (Options, error) {
	o := DefaultOptions()
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, err
	}
	if err := o.validate(); err != nil {
		return Options{}, err
	}

	return o, nil
}
