package symmetry

import "github.com/katalvlaran/symgrid/grid"

// disjointSet is an arena union-find over flattened cell ids
// (row·cols + col) with path compression and union by rank.
// Every solve call owns its own instance; nothing is shared.
type disjointSet struct {
	parent []int
	rank   []int
}

// newDisjointSet creates n singleton sets.
func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find walks to the root, halving the path as it goes.
func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets holding a and b, attaching the shallower tree
// under the deeper root.
func (d *disjointSet) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
}

// orbitsFromSet extracts the classes of size ≥ 2 from a disjoint-set
// over a rows×cols arena, each class in row-major member order and the
// class list ordered by first member. Deterministic: no map iteration.
func orbitsFromSet(d *disjointSet, rows, cols int) []Orbit {
	classIdx := make(map[int]int)
	var classes []Orbit
	for id := 0; id < rows*cols; id++ {
		root := d.find(id)
		ci, ok := classIdx[root]
		if !ok {
			ci = len(classes)
			classIdx[root] = ci
			classes = append(classes, nil)
		}
		classes[ci] = append(classes[ci], grid.Coord{Row: id / cols, Col: id % cols})
	}

	var orbits []Orbit
	for _, c := range classes {
		if len(c) >= 2 {
			orbits = append(orbits, c)
		}
	}

	return orbits
}
