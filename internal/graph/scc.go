package graph

// SplitStrongComponents decomposes g into its strongly-connected
// components using an iterative (stack-based, no recursion) Tarjan's
// algorithm, since the graphs produced by link-topology messages may be
// large enough that a recursive implementation would risk stack depth
// issues on pathological inputs. Each returned graph is a deep copy with
// fresh ids, ordered by the ascending original id of each component's
// first-discovered node.
func SplitStrongComponents[N, E any](g *Graph[N, E]) []*Graph[N, E] {
	type frame struct {
		node     int
		edgeIdx  int
		outEdges []int // successor node ids, in Successors() order
	}

	index := make(map[int]int)
	lowlink := make(map[int]int)
	onStack := make(map[int]bool)
	var tarjanStack []int
	nextIndex := 0

	var componentsOfIDs [][]int

	for _, start := range g.Nodes() {
		if _, seen := index[start]; seen {
			continue
		}

		var callStack []frame
		succ, _ := g.Successors(start)
		callStack = append(callStack, frame{node: start, outEdges: succ})
		index[start] = nextIndex
		lowlink[start] = nextIndex
		nextIndex++
		tarjanStack = append(tarjanStack, start)
		onStack[start] = true

		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			if top.edgeIdx < len(top.outEdges) {
				w := top.outEdges[top.edgeIdx]
				top.edgeIdx++
				if _, seen := index[w]; !seen {
					wSucc, _ := g.Successors(w)
					index[w] = nextIndex
					lowlink[w] = nextIndex
					nextIndex++
					tarjanStack = append(tarjanStack, w)
					onStack[w] = true
					callStack = append(callStack, frame{node: w, outEdges: wSucc})
				} else if onStack[w] {
					if index[w] < lowlink[top.node] {
						lowlink[top.node] = index[w]
					}
				}
				continue
			}

			// Done exploring top.node's successors.
			v := top.node
			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if lowlink[v] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[v]
				}
			}
			if lowlink[v] == index[v] {
				var comp []int
				for {
					n := len(tarjanStack) - 1
					w := tarjanStack[n]
					tarjanStack = tarjanStack[:n]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				sortInts(comp)
				componentsOfIDs = append(componentsOfIDs, comp)
			}
		}
	}

	out := make([]*Graph[N, E], 0, len(componentsOfIDs))
	for _, ids := range componentsOfIDs {
		out = append(out, subgraph(g, ids))
	}
	return out
}
