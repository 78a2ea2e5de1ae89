package graph

// IsTree reports whether g, taken as undirected, is a tree: connected and
// exactly |V|-1 edges with no cycle. An empty graph is trivially a tree.
func IsTree[N, E any](g *Graph[N, E]) bool {
	n := g.NodeCount()
	if n == 0 {
		return true
	}
	if g.EdgeCount() != n-1 {
		return false
	}
	return len(SplitWeakComponents(g)) == 1 && !ContainsCycleUnoriented(g)
}

// IsLinearOriented reports whether g is a single directed chain: every node
// has output degree <= 1 and input degree <= 1, exactly one node has input
// degree 0 (the head) and exactly one has output degree 0 (the tail), and
// the graph is weakly connected with n-1 edges (n = node count).
func IsLinearOriented[N, E any](g *Graph[N, E]) bool {
	n := g.NodeCount()
	if n == 0 {
		return true
	}
	if g.EdgeCount() != n-1 {
		return false
	}
	if len(SplitWeakComponents(g)) != 1 {
		return false
	}
	heads, tails := 0, 0
	for _, id := range g.Nodes() {
		out, _ := g.OutputDegree(id)
		in, _ := g.InputDegree(id)
		if out > 1 || in > 1 {
			return false
		}
		if in == 0 {
			heads++
		}
		if out == 0 {
			tails++
		}
	}
	return heads == 1 && tails == 1
}

// IsStarOriented reports whether g is a directed star: one center node with
// an edge to every other node, or an edge from every other node, and no
// edges among the leaves. A chain of three nodes is not a directed star.
func IsStarOriented[N, E any](g *Graph[N, E]) bool {
	n := g.NodeCount()
	if n <= 1 {
		return true
	}
	if g.EdgeCount() != n-1 {
		return false
	}
	if len(SplitWeakComponents(g)) != 1 {
		return false
	}
	for _, id := range g.Nodes() {
		out, _ := g.OutputDegree(id)
		in, _ := g.InputDegree(id)
		// With n-1 edges in a weakly connected graph, a node all of whose
		// n-1 edges point the same way is the center of a directed star.
		if (out == n-1 && in == 0) || (in == n-1 && out == 0) {
			return true
		}
	}
	return false
}

// IsTrunkTree reports whether g is a linear chain ("trunk") followed, at
// its tail, by a single branching tree: there is a maximal directed chain
// from the unique root, and everything beyond the point where the chain's
// out-degree first exceeds 1 forms a tree hanging off that node.
func IsTrunkTree[N, E any](g *Graph[N, E]) bool {
	n := g.NodeCount()
	if n == 0 {
		return true
	}
	if !IsTree(g) {
		return false
	}
	// A tree has n-1 edges already (checked by IsTree). Find the unique
	// root: the node with input degree 0 when the tree is re-rooted from
	// any node with in-degree 0 (if no such node exists, or more than one
	// exists with an oriented parent elsewhere, this isn't an oriented
	// trunk-tree).
	roots := 0
	var root int
	for _, id := range g.Nodes() {
		in, _ := g.InputDegree(id)
		if in == 0 {
			roots++
			root = id
		}
	}
	if roots != 1 {
		return false
	}
	// Walk the chain from root while out-degree == 1; once a branch point
	// (out-degree > 1) or a leaf (out-degree 0) is reached, everything
	// beyond must still satisfy the tree's acyclic/connected invariant,
	// which IsTree has already established for the whole graph. The only
	// additional constraint a trunk-tree adds over a general oriented tree
	// is that it *has* a single root to walk from, which we've now found.
	cur := root
	for {
		out, _ := g.OutputDegree(cur)
		if out != 1 {
			break
		}
		succ, _ := g.Successors(cur)
		cur = succ[0]
	}
	return true
}
