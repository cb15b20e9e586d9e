package dmc

import "github.com/polyhedra/dmc/qef"

// simplifyLayer builds the next layer up the octree: every cluster whose
// index halves to the same super-cell index, and which is reachable from
// the others through same-super-cell neighbour links, merges into one
// parent cluster. Built in two passes (discover groups into a side buffer,
// then commit parents and rewrite neighbour links) rather than mutating
// Parent fields while walking neighbour lists mid-traversal.
func simplifyLayer(layer Layer) Layer {
	n := len(layer)
	assigned := make([]bool, n)
	var groups [][]int

	for i := 0; i < n; i++ {
		if assigned[i] {
			continue
		}
		parentIdx := layer[i].Index.Half()
		group := []int{i}
		assigned[i] = true
		queue := []int{i}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for d := 0; d < 6; d++ {
				for _, nb := range layer[cur].Neighbours[d] {
					j := nb.Local
					if assigned[j] || layer[j].Index.Half() != parentIdx {
						continue
					}
					assigned[j] = true
					group = append(group, j)
					queue = append(queue, j)
				}
			}
		}
		groups = append(groups, group)
	}

	next := make(Layer, len(groups))
	for gi, group := range groups {
		merged := qef.New(nil)
		var neighbours [6][]VarIndex
		for _, ci := range group {
			child := &layer[ci]
			merged.Merge(child.Qef)
			for axis := 0; axis < 3; axis++ {
				bit := child.Index[axis] & 1
				d := axis*2 + bit
				for _, nb := range child.Neighbours[d] {
					cand := VarIndex{Local: nb.Local}
					if !containsVarIndex(neighbours[d], cand) {
						neighbours[d] = append(neighbours[d], cand)
					}
				}
			}
			child.Parent = gi
		}
		next[gi] = Cluster{
			Index:      layer[group[0]].Index.Half(),
			Qef:        merged,
			Neighbours: neighbours,
			Parent:     -1,
			Children:   group,
		}
	}

	// Rewrite neighbour references, which still point at child-layer
	// indices, to their parents in the next layer.
	for i := range next {
		for d := 0; d < 6; d++ {
			for k, nb := range next[i].Neighbours[d] {
				parent := layer[nb.Local].Parent
				if parent < 0 {
					panic("dmc: child missing parent during simplification")
				}
				next[i].Neighbours[d][k] = VarIndex{Local: parent}
			}
		}
	}
	return next
}

// buildVertexStack repeatedly simplifies layer until a round produces no
// change in cluster count. The unchanged final round's output is not
// appended.
func buildVertexStack(leaf Layer) []Layer {
	stack := []Layer{leaf}
	for {
		next := simplifyLayer(stack[len(stack)-1])
		if len(next) == len(stack[len(stack)-1]) {
			break
		}
		stack = append(stack, next)
	}
	return stack
}
