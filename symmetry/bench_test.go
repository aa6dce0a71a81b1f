package symmetry_test

import (
	"testing"

	"github.com/katalvlaran/symgrid/grid"
	"github.com/katalvlaran/symgrid/symmetry"
)

// benchTask builds a 6×6 point-symmetric training board and a test
// grid with two occlusions, sized like a typical puzzle input.
func benchTask(b *testing.B) *grid.Task {
	b.Helper()
	values := make([][]int, 6)
	for i := range values {
		values[i] = make([]int, 6)
		for j := range values[i] {
			values[i][j] = (i*7 + j*3) % 4
		}
	}
	// Symmetrize by point reflection about the center.
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			values[5-i][5-j] = values[i][j]
		}
	}
	board, err := grid.New(values)
	if err != nil {
		b.Fatal(err)
	}

	damaged := board.Cells()
	damaged[0][0] = 9
	damaged[3][4] = 9
	test, err := grid.New(damaged)
	if err != nil {
		b.Fatal(err)
	}

	return &grid.Task{
		Train: []grid.Pair{{Input: board, Output: board}},
		Test:  []*grid.Grid{test},
	}
}

func BenchmarkSolver_Solve(b *testing.B) {
	solver, err := symmetry.New(symmetry.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	task := benchTask(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(task); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolver_CanSolve(b *testing.B) {
	solver, err := symmetry.New(symmetry.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	task := benchTask(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		solver.CanSolve(task)
	}
}
