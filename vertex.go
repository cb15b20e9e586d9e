package dmc

import (
	"fmt"

	"github.com/polyhedra/dmc/cellconfig"
	"github.com/polyhedra/dmc/edgeset"
	"github.com/polyhedra/dmc/qef"
)

// VertexIndex identifies a dual vertex cluster by the cell it lives in and
// the set of that cell's crossing edges feeding it.
type VertexIndex struct {
	Edges edgeset.Set
	Index Index
}

// VarIndex is a reference to a vertex, either already resolved to a local
// index within some layer (IsVertex false) or still naming a VertexIndex
// that has to be looked up (IsVertex true). Every layer's construction ends
// by rewriting all its VarIndexes to the local form; only the builder
// producing a layer ever sees the unresolved form.
type VarIndex struct {
	Local    int
	Vertex   VertexIndex
	IsVertex bool
}

// Cluster is one dual vertex: the accumulated QEF of its tangent planes,
// links to its six axis-neighbour clusters in the same layer, and (once
// simplification has run) a link to its super-cell parent in the next layer
// up.
type Cluster struct {
	Index Index
	Qef   qef.Qef
	// Neighbours[2*axis+bit] holds the neighbour references across the face
	// in the -axis direction (bit==0) or +axis direction (bit==1).
	Neighbours [6][]VarIndex
	// Parent indexes the cluster's super-cell in the next layer up, or -1
	// if simplification has not assigned one yet.
	Parent int
	// Children indexes this cluster's members in the layer below, empty for
	// the leaf layer.
	Children []int
}

// Layer is one level of the octree vertex stack.
type Layer []Cluster

func containsVarIndex(s []VarIndex, v VarIndex) bool {
	for _, existing := range s {
		if existing.Local == v.Local && existing.IsVertex == v.IsVertex &&
			existing.Vertex == v.Vertex {
			return true
		}
	}
	return false
}

// bitsetForCell returns the 8-bit corner-sign pattern of the cell whose own
// origin corner is idx. Panics if any of the cell's 8 corners is missing
// from the value grid, which would mean an earlier phase violated the
// sampler's coverage guarantee.
func bitsetForCell(grid ValueGrid, idx Index) uint8 {
	var bits uint8
	for z := 0; z < 2; z++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				corner := Index{idx[0] + x, idx[1] + y, idx[2] + z}
				v, ok := grid[corner]
				if !ok {
					panic(fmt.Sprintf("dmc: missing value grid entry at %v", corner))
				}
				if v < 0 {
					bits |= 1 << uint((z<<2)|(y<<1)|x)
				}
			}
		}
	}
	return bits
}

func connectedEdges(edge Edge, bits uint8) edgeset.Set {
	return cellconfig.ConnectedEdges(int(edge), bits)
}

func connectedEdgesFromSet(es edgeset.Set, bits uint8) []edgeset.Set {
	return cellconfig.ConnectedEdgesFromSet(es, bits)
}

// neighbourCellIndex returns the index of the cell sharing the face in
// direction dir (2*axis+bit) with the cell at idx, or false if that would
// require a negative index component.
func neighbourCellIndex(idx Index, dir int) (Index, bool) {
	axis := dir / 2
	bit := dir % 2
	if bit == 0 {
		if idx[axis] == 0 {
			return Index{}, false
		}
		idx[axis]--
	} else {
		idx[axis]++
	}
	return idx, true
}

// getEdgeTangentPlane looks up the tangent plane for ei's canonical form in
// the edge grid. Panics if absent: every edge named by a cell configuration
// must have been populated by buildEdgeGrid.
func getEdgeTangentPlane(ei EdgeIndex, edgeGrid EdgeGrid) Plane {
	canon := ei.Canonical()
	p, ok := edgeGrid[canon]
	if !ok {
		panic(fmt.Sprintf("dmc: no tangent plane for edge %v (canonical %v)", ei, canon))
	}
	return p
}

// buildLeafLayer builds the leaf layer of the vertex stack: one cluster per
// (cell, connected edge-set) pair reachable by walking the QUADS table
// around every crossing edge in the edge grid.
func (t *Tessellator) buildLeafLayer() Layer {
	indexMap := map[VertexIndex]int{}
	var layer Layer

	for canon := range t.edgeGrid {
		t.addVerticesForMinimalEdge(canon, indexMap, &layer)
	}

	// Second sweep: rewrite every still-unresolved VarIndex to the local
	// index its VertexIndex was assigned above.
	for i := range layer {
		for d := 0; d < 6; d++ {
			for k, vi := range layer[i].Neighbours[d] {
				if !vi.IsVertex {
					continue
				}
				local, ok := indexMap[vi.Vertex]
				if !ok {
					panic(fmt.Sprintf("dmc: unresolved neighbour vertex %v", vi.Vertex))
				}
				layer[i].Neighbours[d][k] = VarIndex{Local: local}
			}
		}
	}
	return layer
}

func (t *Tessellator) addVerticesForMinimalEdge(canon EdgeIndex, indexMap map[VertexIndex]int, layer *Layer) {
	if canon.Edge != EdgeA && canon.Edge != EdgeB && canon.Edge != EdgeC {
		panic("dmc: edge grid key is not in canonical form")
	}
	for _, quadEdge := range QUADS[canon.Edge] {
		idx := canon.Index.Sub(EDGE_OFFSET[quadEdge])
		bits := bitsetForCell(t.valueGrid, idx)
		edges := connectedEdges(quadEdge, bits)
		vi := VertexIndex{Edges: edges, Index: idx}
		if _, exists := indexMap[vi]; exists {
			continue
		}

		var neighbours [6][]VarIndex
		for d := 0; d < 6; d++ {
			nIdx, ok := neighbourCellIndex(vi.Index, d)
			if !ok {
				continue
			}
			nBits := bitsetForCell(t.valueGrid, nIdx)
			for _, es := range connectedEdgesFromSet(vi.Edges, nBits) {
				cand := VarIndex{Vertex: VertexIndex{Edges: es, Index: nIdx}, IsVertex: true}
				if !containsVarIndex(neighbours[d], cand) {
					neighbours[d] = append(neighbours[d], cand)
				}
			}
		}

		var planes []Plane
		for _, e := range edges.Edges() {
			planes = append(planes, getEdgeTangentPlane(EdgeIndex{Edge: Edge(e), Index: idx}, t.edgeGrid))
		}

		*layer = append(*layer, Cluster{
			Index:      idx,
			Qef:        qef.New(planes),
			Neighbours: neighbours,
			Parent:     -1,
		})
		indexMap[vi] = len(*layer) - 1
	}
}
