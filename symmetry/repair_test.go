package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgrid/symmetry"
)

const occluded = 9

//----------------------------------------------------------------------------//
// Merger / repair engine
//----------------------------------------------------------------------------//

// TestRepair_Idempotent: a grid with no occluded cells that already
// satisfies its generator comes back unchanged.
func TestRepair_Idempotent(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2, 3},
		{4, 5, 4},
		{3, 2, 1},
	})
	orbits := gen(symmetry.Rotation180).Orbits(3, 3, symmetry.Params{R: 2, S: 2})

	fixed, err := symmetry.Repair(g, occluded, orbits)
	require.NoError(t, err)
	assert.True(t, fixed.Equal(g))
}

// TestRepair_FillsWildcard: a 180°-symmetric grid with one occluded
// cell is restored to the exact original color at that cell.
func TestRepair_FillsWildcard(t *testing.T) {
	damaged := mustGrid(t, [][]int{
		{1, 2, 3},
		{4, 5, 4},
		{3, 2, occluded},
	})
	want := mustGrid(t, [][]int{
		{1, 2, 3},
		{4, 5, 4},
		{3, 2, 1},
	})

	// The tolerant search must still rank the true center first.
	det := gen(symmetry.Rotation180).Search(damaged, occluded)
	require.True(t, det.Found())
	require.Equal(t, symmetry.Params{R: 2, S: 2}, det.Params[0])

	fixed, err := symmetry.Repair(damaged, occluded,
		gen(symmetry.Rotation180).Orbits(3, 3, det.Params[0]))
	require.NoError(t, err)
	assert.True(t, fixed.Equal(want), "occlusion must be filled from its orbit-mate:\n%s", fixed)
}

// TestRepair_Collision: two genuinely conflicting non-wildcard colors
// in one orbit must fail the attempt, never silently merge.
func TestRepair_Collision(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 2, 3},
		{4, 5, 4},
		{3, 2, 7},
	})
	orbits := gen(symmetry.Rotation180).Orbits(3, 3, symmetry.Params{R: 2, S: 2})

	fixed, err := symmetry.Repair(g, occluded, orbits)
	assert.Nil(t, fixed)
	assert.ErrorIs(t, err, symmetry.ErrCollision)
}

// TestRepair_ThreeColorsCollide: more than two distinct values in one
// orbit collide even when one of them is the wildcard.
func TestRepair_ThreeColorsCollide(t *testing.T) {
	g := mustGrid(t, [][]int{{1, occluded, 2}})
	orbits := []symmetry.Orbit{{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}}

	_, err := symmetry.Repair(g, occluded, orbits)
	assert.ErrorIs(t, err, symmetry.ErrCollision)
}

// TestRepair_AllWildcardOrbitUntouched: an orbit made entirely of
// occluded cells has no evidence to fill from and stays occluded.
func TestRepair_AllWildcardOrbitUntouched(t *testing.T) {
	g := mustGrid(t, [][]int{
		{occluded, 2},
		{2, occluded},
	})
	orbits := gen(symmetry.DiagonalMirrorNWSE).Orbits(2, 2, symmetry.Params{S: 0})

	fixed, err := symmetry.Repair(g, occluded, orbits)
	require.NoError(t, err)
	assert.True(t, fixed.Equal(g))
}

// TestRepair_ComposedGenerators: orbits from two generators merge into
// one finer partition, filling cells neither could fill alone.
func TestRepair_ComposedGenerators(t *testing.T) {
	damaged := mustGrid(t, [][]int{
		{1, 2, occluded},
		{4, 5, 4},
		{occluded, 2, occluded},
	})
	want := mustGrid(t, [][]int{
		{1, 2, 1},
		{4, 5, 4},
		{1, 2, 1},
	})

	// Horizontal axis r=2 and vertical axis s=2 together link all four
	// corners into one class; the single known 1 supplies the other
	// three. Either generator alone leaves an all-occluded pair behind.
	orbits := gen(symmetry.HorizontalMirror).Orbits(3, 3, symmetry.Params{R: 2})
	orbits = append(orbits, gen(symmetry.VerticalMirror).Orbits(3, 3, symmetry.Params{S: 2})...)

	fixed, err := symmetry.Repair(damaged, occluded, orbits)
	require.NoError(t, err)
	assert.True(t, fixed.Equal(want), "got:\n%s", fixed)
}
