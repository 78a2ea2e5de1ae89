package graph

// Comparator is a user-supplied total order over a node or edge value type.
// It must return -1, 0, or 1 like strings.Compare.
type Comparator[T any] func(a, b T) int

// Compare returns a deterministic total order over (a, b) that is zero
// exactly when a and b are isomorphic as labelled graphs under nodeCmp and
// edgeCmp. Both graphs are split into weak components, the component
// multisets are compared by (|V|, |E|), and paired components are
// canonicalized and matched by backtracking (see canonicalize/isomorphic
// below).
func Compare[N, E any](a, b *Graph[N, E], nodeCmp Comparator[N], edgeCmp Comparator[E]) int {
	compA := SplitWeakComponents(a)
	compB := SplitWeakComponents(b)

	canonA := make([]*canonGraph[N, E], len(compA))
	for i, c := range compA {
		canonA[i] = canonicalize(c, nodeCmp, edgeCmp)
	}
	canonB := make([]*canonGraph[N, E], len(compB))
	for i, c := range compB {
		canonB[i] = canonicalize(c, nodeCmp, edgeCmp)
	}

	sortCanonComponents(canonA, nodeCmp, edgeCmp)
	sortCanonComponents(canonB, nodeCmp, edgeCmp)

	if len(canonA) != len(canonB) {
		return compareInt(len(canonA), len(canonB))
	}
	for i := range canonA {
		if c := compareComponentSize(canonA[i], canonB[i]); c != 0 {
			return c
		}
	}
	for i := range canonA {
		if c := compareComponent(canonA[i], canonB[i], nodeCmp, edgeCmp); c != 0 {
			return c
		}
	}
	return 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareComponentSize[N, E any](a, b *canonGraph[N, E]) int {
	if c := compareInt(len(a.nodes), len(b.nodes)); c != 0 {
		return c
	}
	return compareInt(a.edgeCount, b.edgeCount)
}

func sortCanonComponents[N, E any](cs []*canonGraph[N, E], nodeCmp Comparator[N], edgeCmp Comparator[E]) {
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0; j-- {
			if compareComponentSize(cs[j], cs[j-1]) < 0 {
				cs[j], cs[j-1] = cs[j-1], cs[j]
			} else {
				break
			}
		}
	}
}

// canonNode is a node's canonicalization key plus its original value.
type canonNode[N any] struct {
	value  N
	outDeg int
	inDeg  int
}

// canonEdge is one canonicalized outgoing edge: target is a canonical node
// index (0..n-1), not an original graph id.
type canonEdge[E any] struct {
	to    int
	value E
}

// canonGraph is a component after canonicalization: nodes reordered by
// (value asc, out-degree desc, in-degree desc), each node's outgoing edges
// reordered by (edge-value asc, target-value asc).
type canonGraph[N, E any] struct {
	nodes     []canonNode[N]
	outEdges  [][]canonEdge[E] // outEdges[i] = sorted outgoing edges of node i
	edgeCount int
}

// canonicalize reorders g's nodes and each node's outgoing edges per
// spec §4.B step 1, and reassigns ids implicitly via slice position.
func canonicalize[N, E any](g *Graph[N, E], nodeCmp Comparator[N], edgeCmp Comparator[E]) *canonGraph[N, E] {
	ids := g.Nodes()
	type scored struct {
		id           int
		value        N
		outDeg       int
		inDeg        int
	}
	scoredNodes := make([]scored, len(ids))
	for i, id := range ids {
		v, _ := g.NodeValue(id)
		out, _ := g.OutputDegree(id)
		in, _ := g.InputDegree(id)
		scoredNodes[i] = scored{id: id, value: v, outDeg: out, inDeg: in}
	}
	// Insertion sort: node-value ascending, output-degree descending,
	// input-degree descending, original id ascending as a final
	// deterministic tie-break.
	for i := 1; i < len(scoredNodes); i++ {
		for j := i; j > 0; j-- {
			a, b := scoredNodes[j], scoredNodes[j-1]
			if lessNode(a, b, nodeCmp) {
				scoredNodes[j], scoredNodes[j-1] = scoredNodes[j-1], scoredNodes[j]
			} else {
				break
			}
		}
	}

	newIndex := make(map[int]int, len(scoredNodes))
	nodes := make([]canonNode[N], len(scoredNodes))
	for i, s := range scoredNodes {
		newIndex[s.id] = i
		nodes[i] = canonNode[N]{value: s.value, outDeg: s.outDeg, inDeg: s.inDeg}
	}

	outEdges := make([][]canonEdge[E], len(nodes))
	edgeCount := 0
	for _, rec := range g.Edges() {
		fromIdx := newIndex[rec.From]
		toIdx := newIndex[rec.To]
		outEdges[fromIdx] = append(outEdges[fromIdx], canonEdge[E]{to: toIdx, value: rec.Value})
		edgeCount++
	}
	for i := range outEdges {
		edges := outEdges[i]
		for a := 1; a < len(edges); a++ {
			for b := a; b > 0; b-- {
				if lessEdge(edges[b], edges[b-1], nodes, edgeCmp, nodeCmp) {
					edges[b], edges[b-1] = edges[b-1], edges[b]
				} else {
					break
				}
			}
		}
	}

	return &canonGraph[N, E]{nodes: nodes, outEdges: outEdges, edgeCount: edgeCount}
}

func lessNode[N any](a, b struct {
	id     int
	value  N
	outDeg int
	inDeg  int
}, nodeCmp Comparator[N]) bool {
	if c := nodeCmp(a.value, b.value); c != 0 {
		return c < 0
	}
	if a.outDeg != b.outDeg {
		return a.outDeg > b.outDeg
	}
	if a.inDeg != b.inDeg {
		return a.inDeg > b.inDeg
	}
	return a.id < b.id
}

func lessEdge[N, E any](a, b canonEdge[E], nodes []canonNode[N], edgeCmp Comparator[E], nodeCmp Comparator[N]) bool {
	if c := edgeCmp(a.value, b.value); c != 0 {
		return c < 0
	}
	if c := nodeCmp(nodes[a.to].value, nodes[b.to].value); c != 0 {
		return c < 0
	}
	return a.to < b.to
}

// compareComponent returns 0 iff the two canonicalized, same-size
// components are isomorphic, and otherwise a deterministic order derived
// first from the canonical descriptor sequence, then from the canonical
// edge sequence.
func compareComponent[N, E any](a, b *canonGraph[N, E], nodeCmp Comparator[N], edgeCmp Comparator[E]) int {
	n := len(a.nodes)
	for i := 0; i < n; i++ {
		if c := compareDescriptor(a.nodes[i], b.nodes[i], nodeCmp); c != 0 {
			return c
		}
	}

	if isomorphic(a, b, nodeCmp, edgeCmp) {
		return 0
	}

	// Same descriptor sequence but not isomorphic (a symmetric degree
	// sequence masking different connectivity): fall back to a
	// lexicographic comparison of each node's canonical edge list.
	for i := 0; i < n; i++ {
		ea, eb := a.outEdges[i], b.outEdges[i]
		if c := compareInt(len(ea), len(eb)); c != 0 {
			return c
		}
		for k := range ea {
			if c := edgeCmp(ea[k].value, eb[k].value); c != 0 {
				return c
			}
			if c := compareInt(ea[k].to, eb[k].to); c != 0 {
				return c
			}
		}
	}
	return 0
}

func compareDescriptor[N any](a, b canonNode[N], nodeCmp Comparator[N]) int {
	if c := nodeCmp(a.value, b.value); c != 0 {
		return c
	}
	if a.outDeg != b.outDeg {
		// Descending order: larger out-degree sorts first (matches
		// canonicalization), so invert the usual sign.
		if a.outDeg > b.outDeg {
			return -1
		}
		return 1
	}
	if a.inDeg != b.inDeg {
		if a.inDeg > b.inDeg {
			return -1
		}
		return 1
	}
	return 0
}

// isomorphic performs the backtracking bijection search: nodes may only be
// paired with nodes sharing the same (value, outDeg, inDeg) descriptor, and
// a candidate pairing is only extended when it agrees, for every
// already-mapped pair, on the multiset of edge values in both directions
// between them (predecessor edges are checked the same way as outgoing
// edges since both directions are stored in the adjacency maps below).
func isomorphic[N, E any](a, b *canonGraph[N, E], nodeCmp Comparator[N], edgeCmp Comparator[E]) bool {
	n := len(a.nodes)
	if n != len(b.nodes) || a.edgeCount != b.edgeCount {
		return false
	}

	adjA := buildAdjacency(a)
	adjB := buildAdjacency(b)

	mapping := make([]int, n)
	used := make([]bool, n)
	for i := range mapping {
		mapping[i] = -1
	}

	var backtrack func(i int) bool
	backtrack = func(i int) bool {
		if i == n {
			return true
		}
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			if compareDescriptor(a.nodes[i], b.nodes[j], nodeCmp) != 0 {
				continue
			}
			if !consistentWithMapped(i, j, mapping, adjA, adjB, edgeCmp) {
				continue
			}
			mapping[i] = j
			used[j] = true
			if backtrack(i + 1) {
				return true
			}
			used[j] = false
			mapping[i] = -1
		}
		return false
	}

	return backtrack(0)
}

type adjKey struct{ from, to int }

func buildAdjacency[N, E any](g *canonGraph[N, E]) map[adjKey][]E {
	m := make(map[adjKey][]E)
	for i, edges := range g.outEdges {
		for _, e := range edges {
			k := adjKey{from: i, to: e.to}
			m[k] = append(m[k], e.value)
		}
	}
	return m
}

func consistentWithMapped[E any](i, j int, mapping []int, adjA, adjB map[adjKey][]E, edgeCmp Comparator[E]) bool {
	for k := 0; k < len(mapping); k++ {
		if mapping[k] == -1 {
			continue
		}
		if !sameEdgeMultiset(adjA[adjKey{i, k}], adjB[adjKey{j, mapping[k]}], edgeCmp) {
			return false
		}
		if !sameEdgeMultiset(adjA[adjKey{k, i}], adjB[adjKey{mapping[k], j}], edgeCmp) {
			return false
		}
	}
	return true
}

func sameEdgeMultiset[E any](a, b []E, edgeCmp Comparator[E]) bool {
	if len(a) != len(b) {
		return false
	}
	sa := sortedByCmp(a, edgeCmp)
	sb := sortedByCmp(b, edgeCmp)
	for i := range sa {
		if edgeCmp(sa[i], sb[i]) != 0 {
			return false
		}
	}
	return true
}

func sortedByCmp[E any](s []E, cmp Comparator[E]) []E {
	out := make([]E, len(s))
	copy(out, s)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && cmp(out[j], out[j-1]) < 0; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
