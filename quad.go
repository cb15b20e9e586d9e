package dmc

// emitQuad appends the two triangles covering the quad of dual vertices
// surrounding canon, reversing the corner order when the value at the
// edge's origin corner (canon.Index) is negative, matching the winding
// convention every crossing edge needs for outward-facing normals.
func (t *Tessellator) emitQuad(canon EdgeIndex) {
	quads := QUADS[canon.Edge]
	var p [4]int
	for i, quadEdge := range quads {
		cellIdx := canon.Index.Sub(EDGE_OFFSET[quadEdge])
		p[i] = t.lookupCellPoint(quadEdge, cellIdx)
	}
	if v, ok := t.valueGrid[canon.Index]; ok && v < 0 {
		p[0], p[1], p[2], p[3] = p[3], p[2], p[1], p[0]
	}
	t.mesh.Faces = append(t.mesh.Faces,
		[3]int{p[0], p[1], p[2]},
		[3]int{p[2], p[3], p[0]},
	)
}
