package dmc

// meshStats computes a few topological properties of an emitted mesh via
// breadth-first search over its vertex adjacency, in place of pulling in a
// graph library for a handful of queries a test needs.
type meshStats struct {
	VertexCount, FaceCount, EdgeCount int
	ComponentCount                   int
	EulerCharacteristic              int
}

func computeMeshStats(m Mesh) meshStats {
	adj := make(map[int]map[int]bool, len(m.Vertices))
	addEdge := func(a, b int) {
		if adj[a] == nil {
			adj[a] = map[int]bool{}
		}
		adj[a][b] = true
		if adj[b] == nil {
			adj[b] = map[int]bool{}
		}
		adj[b][a] = true
	}
	for _, f := range m.Faces {
		addEdge(f[0], f[1])
		addEdge(f[1], f[2])
		addEdge(f[2], f[0])
	}
	edges := 0
	for v, nbrs := range adj {
		for n := range nbrs {
			if n > v {
				edges++
			}
		}
	}

	visited := make(map[int]bool, len(m.Vertices))
	components := 0
	for start := range adj {
		if visited[start] {
			continue
		}
		components++
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for n := range adj[cur] {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
	}

	return meshStats{
		VertexCount:          len(m.Vertices),
		FaceCount:            len(m.Faces),
		EdgeCount:            edges,
		ComponentCount:       components,
		EulerCharacteristic:  len(adj) - edges + len(m.Faces),
	}
}
