// Package cellconfig is the CellConfigs collaborator: given a cell's 8-bit
// corner-sign pattern, it answers which of the cell's crossing edges belong
// to the same surface sheet.
//
// The 256-entry table is generated once, not hand-authored: for each corner
// pattern we build a disjoint-set over the cube's 8 corners, union any pair
// of corners joined by a cube edge that does not cross the surface (same
// sign on both ends), then group every crossing edge by the disjoint-set
// root of its negative endpoint. Corners split by every incident edge
// crossing (the classic four-tunnel pattern, see the package tests) end up
// as singleton components, one edge-set per corner; corners joined by a
// same-sign edge merge their crossing edges into one shared edge-set. This
// reproduces the same edge-connectivity partition a hand-built marching
// cubes case table would give, by construction rather than by enumeration.
package cellconfig

import "github.com/polyhedra/dmc/edgeset"

// cornerEdges lists, for edges 0-11 (A-L), the pair of unit-cube corner
// indices ((z<<2)|(y<<1)|x) the edge connects.
var cornerEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4}, {2, 3}, {1, 3}, {1, 5},
	{4, 5}, {4, 6}, {2, 6}, {6, 7}, {5, 7}, {3, 7},
}

// Table holds, for each of the 256 corner-sign bitsets, the connected
// components of that cell's crossing edges. Bit i of the pattern is set iff
// corner i (index (z<<2)|(y<<1)|x) is negative.
var Table [256][]edgeset.Set

func init() {
	for bits := 0; bits < 256; bits++ {
		Table[bits] = buildConfig(uint8(bits))
	}
}

type disjointSet struct {
	parent [8]int
	rank   [8]int
}

func newDisjointSet() *disjointSet {
	d := &disjointSet{}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

func (d *disjointSet) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	if d.rank[ra] < d.rank[rb] {
		d.parent[ra] = rb
	} else {
		d.parent[rb] = ra
		if d.rank[ra] == d.rank[rb] {
			d.rank[ra]++
		}
	}
}

func negative(bits uint8, corner int) bool {
	return bits&(1<<uint(corner)) != 0
}

func buildConfig(bits uint8) []edgeset.Set {
	ds := newDisjointSet()
	for edge, cs := range cornerEdges {
		_ = edge
		if negative(bits, cs[0]) == negative(bits, cs[1]) {
			ds.union(cs[0], cs[1])
		}
	}
	groups := map[int]edgeset.Set{}
	var order []int
	for edge, cs := range cornerEdges {
		a, b := cs[0], cs[1]
		an, bn := negative(bits, a), negative(bits, b)
		if an == bn {
			continue // not a crossing edge
		}
		neg := a
		if bn {
			neg = b
		}
		root := ds.find(neg)
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = groups[root].With(edge)
	}
	if len(order) == 0 {
		return nil
	}
	out := make([]edgeset.Set, len(order))
	for i, root := range order {
		out[i] = groups[root]
	}
	return out
}

// ConnectedEdges returns the edge-set containing edge within the given
// cell's configuration. Panics if edge does not cross within this cell,
// which indicates the caller queried a cell/edge pair that contradicts the
// sampled value grid.
func ConnectedEdges(edge int, bits uint8) edgeset.Set {
	for _, es := range Table[bits] {
		if es.Test(edge) {
			return es
		}
	}
	panic("cellconfig: edge does not cross in this cell configuration")
}

// ConnectedEdgesFromSet returns every edge-set in the given cell's
// configuration that shares at least one member with es.
func ConnectedEdgesFromSet(es edgeset.Set, bits uint8) []edgeset.Set {
	var out []edgeset.Set
	for _, candidate := range Table[bits] {
		if !candidate.Intersect(es).Empty() {
			out = append(out, candidate)
		}
	}
	return out
}
