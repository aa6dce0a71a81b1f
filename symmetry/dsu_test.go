package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgrid/grid"
)

// TestDisjointSet_UnionFind exercises the arena union-find directly:
// transitive merges, idempotent unions, and path compression leaving
// find results stable.
func TestDisjointSet_UnionFind(t *testing.T) {
	d := newDisjointSet(6)
	for i := 0; i < 6; i++ {
		assert.Equal(t, i, d.find(i), "fresh sets are singletons")
	}

	d.union(0, 1)
	d.union(1, 2)
	assert.Equal(t, d.find(0), d.find(2), "unions are transitive")
	assert.NotEqual(t, d.find(0), d.find(3))

	root := d.find(2)
	d.union(0, 2) // already merged; must be a no-op
	assert.Equal(t, root, d.find(2))

	d.union(3, 4)
	d.union(2, 4)
	for i := 0; i < 5; i++ {
		assert.Equal(t, d.find(0), d.find(i))
	}
	assert.NotEqual(t, d.find(0), d.find(5))
}

// TestOrbitsFromSet_Deterministic: classes come out ordered by first
// member, members in row-major order, singletons omitted.
func TestOrbitsFromSet_Deterministic(t *testing.T) {
	// 2×3 arena: ids 0..5 for (0,0)..(1,2).
	d := newDisjointSet(6)
	d.union(5, 0) // {(0,0),(1,2)}
	d.union(1, 4) // {(0,1),(1,1)}

	orbits := orbitsFromSet(d, 2, 3)
	require.Len(t, orbits, 2)
	assert.Equal(t, Orbit{{Row: 0, Col: 0}, {Row: 1, Col: 2}}, orbits[0])
	assert.Equal(t, Orbit{{Row: 0, Col: 1}, {Row: 1, Col: 1}}, orbits[1])
}

// TestDisappearingColors covers the wildcard inference table: none,
// one, several across pairs, several within a pair, and shape drift.
func TestDisappearingColors(t *testing.T) {
	mk := func(values [][]int) *grid.Grid {
		g, err := grid.New(values)
		require.NoError(t, err)
		return g
	}

	t.Run("NoneDisappear", func(t *testing.T) {
		colors, err := disappearingColors(&grid.Task{Train: []grid.Pair{
			{Input: mk([][]int{{1, 2}}), Output: mk([][]int{{1, 2}})},
		}})
		require.NoError(t, err)
		assert.Empty(t, colors)
	})

	t.Run("SingleColor", func(t *testing.T) {
		colors, err := disappearingColors(&grid.Task{Train: []grid.Pair{
			{Input: mk([][]int{{9, 2}}), Output: mk([][]int{{1, 2}})},
			{Input: mk([][]int{{2, 9}}), Output: mk([][]int{{2, 3}})},
		}})
		require.NoError(t, err)
		assert.Equal(t, []int{9}, colors)
	})

	t.Run("DifferentColorsPerPair", func(t *testing.T) {
		// Legal: each pair loses one color; the union has two entries,
		// which later forces the test-grid fallback.
		colors, err := disappearingColors(&grid.Task{Train: []grid.Pair{
			{Input: mk([][]int{{9, 2}}), Output: mk([][]int{{1, 2}})},
			{Input: mk([][]int{{8, 2}}), Output: mk([][]int{{1, 2}})},
		}})
		require.NoError(t, err)
		assert.Equal(t, []int{9, 8}, colors)
	})

	t.Run("TwoColorsInOnePair", func(t *testing.T) {
		_, err := disappearingColors(&grid.Task{Train: []grid.Pair{
			{Input: mk([][]int{{1, 2}}), Output: mk([][]int{{3, 4}})},
		}})
		assert.ErrorIs(t, err, ErrInconsistentTraining)
	})

	t.Run("ShapeDrift", func(t *testing.T) {
		_, err := disappearingColors(&grid.Task{Train: []grid.Pair{
			{Input: mk([][]int{{1, 2}}), Output: mk([][]int{{1}, {2}})},
		}})
		assert.ErrorIs(t, err, ErrInconsistentTraining)
	})
}

// TestCombinations_Order pins the greedy search order: changing it
// changes which candidates the engine can ever return.
func TestCombinations_Order(t *testing.T) {
	want := [][]Kind{
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
	assert.Equal(t, want, combinations)
}

// TestCatalog_KindOrder: Catalog must stay indexable by Kind.
func TestCatalog_KindOrder(t *testing.T) {
	for i, g := range Catalog() {
		assert.Equal(t, Kind(i), g.Kind())
	}
}
