package graph

// SplitWeakComponents returns one graph per weakly-connected component of g
// (edge direction ignored for connectivity, but preserved in the copies).
// Each returned graph is a deep copy with fresh, densely-packed ids;
// component order is the ascending order of each component's smallest
// original node id.
func SplitWeakComponents[N, E any](g *Graph[N, E]) []*Graph[N, E] {
	adjacency := undirectedAdjacency(g)
	visited := make(map[int]bool)

	var componentsOfIDs [][]int
	for _, start := range g.Nodes() {
		if visited[start] {
			continue
		}
		var comp []int
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, cur)
			for _, next := range adjacency[cur] {
				if !visited[next] {
					visited[next] = true
					stack = append(stack, next)
				}
			}
		}
		sortInts(comp)
		componentsOfIDs = append(componentsOfIDs, comp)
	}

	out := make([]*Graph[N, E], 0, len(componentsOfIDs))
	for _, ids := range componentsOfIDs {
		out = append(out, subgraph(g, ids))
	}
	return out
}

// undirectedAdjacency builds a symmetric adjacency list for connectivity
// purposes only (edge direction is irrelevant to weak-component splitting).
func undirectedAdjacency[N, E any](g *Graph[N, E]) map[int][]int {
	adj := make(map[int][]int, len(g.nodes))
	for _, id := range g.Nodes() {
		adj[id] = nil
	}
	for _, rec := range g.Edges() {
		adj[rec.From] = append(adj[rec.From], rec.To)
		adj[rec.To] = append(adj[rec.To], rec.From)
	}
	return adj
}

// subgraph deep-copies the induced subgraph on ids (assumed sorted) into a
// fresh Graph with ids reassigned 0..n-1 in the given order.
func subgraph[N, E any](g *Graph[N, E], ids []int) *Graph[N, E] {
	out := New[N, E]()
	remap := make(map[int]int, len(ids))
	for _, id := range ids {
		v, _ := g.NodeValue(id)
		remap[id] = out.CreateNode(v)
	}
	for _, rec := range g.Edges() {
		fromNew, okFrom := remap[rec.From]
		toNew, okTo := remap[rec.To]
		if !okFrom || !okTo {
			continue
		}
		// #nosec G104 -- endpoints are always present in out by construction
		out.CreateEdge(fromNew, toNew, rec.Value)
	}
	return out
}
