package dmc

import (
	"github.com/soypat/geometry/ms3"

	"github.com/polyhedra/dmc/edgeset"
	"github.com/polyhedra/dmc/qef"
)

// lookupCellPoint returns the mesh vertex index for the dual vertex at
// cell idx containing edge, memoizing by VertexIndex so every quad corner
// sharing the same (cell, edge-set) pair emits the same vertex.
func (t *Tessellator) lookupCellPoint(edge Edge, idx Index) int {
	bits := bitsetForCell(t.valueGrid, idx)
	edges := connectedEdges(edge, bits)
	vi := VertexIndex{Edges: edges, Index: idx}
	if mi, ok := t.vertexMap[vi]; ok {
		return mi
	}
	p := t.computeCellPoint(edges, idx)
	mi := len(t.mesh.Vertices)
	t.vertexMap[vi] = mi
	t.mesh.Vertices = append(t.mesh.Vertices, p)
	return mi
}

// computeCellPoint solves a fresh QEF from edges' tangent planes — a
// separate solve from the hierarchical one done during simplification, kept
// deliberately independent so emission never depends on solve order — and
// keeps the solution only when it lies strictly inside the cell, replacing
// it with the tangent planes' centroid otherwise.
func (t *Tessellator) computeCellPoint(edges edgeset.Set, idx Index) ms3.Vec {
	var planes []Plane
	for _, e := range edges.Edges() {
		planes = append(planes, getEdgeTangentPlane(EdgeIndex{Edge: Edge(e), Index: idx}, t.edgeGrid))
	}
	q := qef.New(planes)
	q.Solve()
	if isInCell(q.Solution, idx, t.origin, t.res) {
		t.qefs++
		return q.Solution
	}
	if !t.clampWarned {
		t.clampWarned = true
		logf(&t.cfg, "vertex at cell %v clamped to tangent-plane centroid", idx)
	}
	t.clamps++
	return q.Bias()
}

func isInCell(p ms3.Vec, idx Index, origin ms3.Vec, res float32) bool {
	for axis := 0; axis < 3; axis++ {
		d := component(p, axis) - component(origin, axis) - float32(idx[axis])*res
		if d <= 0 || d >= res {
			return false
		}
	}
	return true
}
