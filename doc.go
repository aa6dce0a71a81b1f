// Package symgrid guesses the hidden surface of small colored-grid
// puzzles by detecting the discrete symmetries a grid obeys and
// repairing occluded cells from their orbit-mates.
//
// 🚀 What is symgrid?
//
//	A small, deterministic library built from two packages:
//		• grid/     — immutable rectangular color grids + the task model
//		• symmetry/ — generator catalog, parameter search, orbit
//		              partitioning, disjoint-set merge & repair, and the
//		              ranked-candidate orchestrator
//
// ✨ Why choose symgrid?
//
//   - Deterministic – stable sorts and fixed iteration orders; identical
//     input always yields identical ranked output
//   - Soft failures – lack of evidence, inconsistent training pairs and
//     orbit collisions all resolve to an empty candidate list, never a panic
//   - Pure functions – no I/O, no shared state; safe under concurrent callers
//
// Quick ASCII example — a 180°-symmetric grid with one occluded cell:
//
//	1 2 3        1 2 3
//	4 5 4   →    4 5 4
//	3 2 ░        3 2 1
//
// The cmd/symgrid CLI wraps the library for task files on disk:
//
//	symgrid solve task.json
//
// Dive into symmetry/doc.go for the full pipeline and error contract.
package symgrid
