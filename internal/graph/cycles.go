package graph

// ContainsCycleOriented reports whether g has a cycle respecting edge
// direction, via depth-first search with an explicit "on the current path"
// set.
func ContainsCycleOriented[N, E any](g *Graph[N, E]) bool {
	color := make(map[int]int) // 0 = white, 1 = gray (on path), 2 = black
	for _, start := range g.Nodes() {
		if color[start] != 0 {
			continue
		}
		if dfsOriented(g, start, color) {
			return true
		}
	}
	return false
}

func dfsOriented[N, E any](g *Graph[N, E], v int, color map[int]int) bool {
	color[v] = 1
	succ, _ := g.Successors(v)
	for _, w := range succ {
		switch color[w] {
		case 1:
			return true
		case 0:
			if dfsOriented(g, w, color) {
				return true
			}
		}
	}
	color[v] = 2
	return false
}

// ContainsCycleUnoriented reports whether g has a cycle when edge direction
// is ignored, via depth-first search tracking the parent edge to avoid
// treating a single undirected edge as a 2-cycle.
func ContainsCycleUnoriented[N, E any](g *Graph[N, E]) bool {
	adj := undirectedAdjacency(g)
	visited := make(map[int]bool)
	for _, start := range g.Nodes() {
		if visited[start] {
			continue
		}
		if dfsUnoriented(adj, start, -1, visited) {
			return true
		}
	}
	return false
}

func dfsUnoriented(adj map[int][]int, v, parent int, visited map[int]bool) bool {
	visited[v] = true
	parentEdgeConsumed := false
	for _, w := range adj[v] {
		if w == parent && !parentEdgeConsumed {
			// Consume exactly one occurrence of the parent edge; any
			// further occurrence (a parallel edge, or a true back-edge to
			// the parent) is a genuine cycle.
			parentEdgeConsumed = true
			continue
		}
		if visited[w] {
			return true
		}
		if dfsUnoriented(adj, w, v, visited) {
			return true
		}
	}
	return false
}
