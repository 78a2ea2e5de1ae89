package messages

import (
	"errors"
	"fmt"

	"github.com/banshee-data/tuio2d/internal/graph"
)

// ErrTopologyViolated is returned when an association message's embedded
// graph breaks the shape invariant its message type requires (spec §7
// topology_violated).
var ErrTopologyViolated = errors.New("topology_violated")

// Link is a generic link-association message: an arbitrary directed graph
// over session ids (spec §4.C /tuio2/lia). No shape invariant beyond being
// a valid graph of session ids.
type Link struct {
	SessionHolder
	Topology LinkTopology
}

func (l *Link) Clone() Message {
	c := &Link{SessionHolder: l.SessionHolder, Topology: LinkTopology{
		Kind:          l.Topology.Kind,
		IsolatedNodes: append([]SessionID(nil), l.Topology.IsolatedNodes...),
		Edges:         append([]LinkEdge(nil), l.Topology.Edges...),
	}}
	return c
}

func (l *Link) Equal(o Message) bool {
	other, ok := o.(*Link)
	if !ok {
		return false
	}
	return l.SessionID == other.SessionID && topologyEqual(l.Topology, other.Topology)
}

func (l *Link) String() string {
	return fmt.Sprintf("lia(s=%d kind=%d edges=%d)", l.SessionID, l.Topology.Kind, len(l.Topology.Edges))
}

// LinkedList is a linked-list association message (spec §4.C /tuio2/lla):
// its topology must form a single directed chain (exactly one in-degree-0
// node, one out-degree-0 node, every other node degree (1,1)).
type LinkedList struct {
	SessionHolder
	Topology LinkTopology
}

// Validate checks the list-shape invariant, returning ErrTopologyViolated
// if the embedded topology is not a single directed chain.
func (l *LinkedList) Validate() error {
	if !topologyIsChain(l.Topology) {
		return fmt.Errorf("lla session %d: %w: not a single directed chain", l.SessionID, ErrTopologyViolated)
	}
	return nil
}

func (l *LinkedList) Clone() Message {
	c := &LinkedList{SessionHolder: l.SessionHolder, Topology: cloneTopology(l.Topology)}
	return c
}

func (l *LinkedList) Equal(o Message) bool {
	other, ok := o.(*LinkedList)
	if !ok {
		return false
	}
	return l.SessionID == other.SessionID && topologyEqual(l.Topology, other.Topology)
}

func (l *LinkedList) String() string {
	return fmt.Sprintf("lla(s=%d edges=%d)", l.SessionID, len(l.Topology.Edges))
}

// LinkedTree is a linked-tree association message (spec §4.C /tuio2/lta):
// its topology must be acyclic with a single root (spanning tree shape).
type LinkedTree struct {
	SessionHolder
	Topology LinkTopology
}

// Validate checks the tree-shape invariant, returning ErrTopologyViolated
// if the embedded topology is not acyclic with a single root.
func (l *LinkedTree) Validate() error {
	if !topologyIsTree(l.Topology) {
		return fmt.Errorf("lta session %d: %w: not an acyclic single-root tree", l.SessionID, ErrTopologyViolated)
	}
	return nil
}

func (l *LinkedTree) Clone() Message {
	c := &LinkedTree{SessionHolder: l.SessionHolder, Topology: cloneTopology(l.Topology)}
	return c
}

func (l *LinkedTree) Equal(o Message) bool {
	other, ok := o.(*LinkedTree)
	if !ok {
		return false
	}
	return l.SessionID == other.SessionID && topologyEqual(l.Topology, other.Topology)
}

func (l *LinkedTree) String() string {
	return fmt.Sprintf("lta(s=%d edges=%d)", l.SessionID, len(l.Topology.Edges))
}

func cloneTopology(t LinkTopology) LinkTopology {
	return LinkTopology{
		Kind:          t.Kind,
		IsolatedNodes: append([]SessionID(nil), t.IsolatedNodes...),
		Edges:         append([]LinkEdge(nil), t.Edges...),
	}
}

func topologyEqual(a, b LinkTopology) bool {
	if a.Kind != b.Kind || len(a.Edges) != len(b.Edges) || len(a.IsolatedNodes) != len(b.IsolatedNodes) {
		return false
	}
	for i := range a.Edges {
		if a.Edges[i] != b.Edges[i] {
			return false
		}
	}
	for i := range a.IsolatedNodes {
		if a.IsolatedNodes[i] != b.IsolatedNodes[i] {
			return false
		}
	}
	return true
}

// buildGraph materializes a LinkTopology into a graph.Graph[SessionID,
// [2]int32] (edge value = [inPort, outPort]) for shape-predicate checks.
func buildGraph(t LinkTopology) *graph.Graph[SessionID, [2]int32] {
	g := graph.New[SessionID, [2]int32]()
	index := make(map[SessionID]int)
	ensure := func(s SessionID) int {
		if idx, ok := index[s]; ok {
			return idx
		}
		idx := g.CreateNode(s)
		index[s] = idx
		return idx
	}
	for _, s := range t.IsolatedNodes {
		ensure(s)
	}
	for _, e := range t.Edges {
		from := ensure(e.From)
		to := ensure(e.To)
		// #nosec G104 -- endpoints were just created above
		g.CreateEdge(from, to, [2]int32{e.InPort, e.OutPort})
	}
	return g
}

func topologyIsChain(t LinkTopology) bool {
	if len(t.IsolatedNodes) > 0 && len(t.Edges) == 0 {
		// A single isolated node is a degenerate chain of length 1.
		return len(t.IsolatedNodes) == 1
	}
	return graph.IsLinearOriented(buildGraph(t))
}

func topologyIsTree(t LinkTopology) bool {
	if len(t.IsolatedNodes) > 0 && len(t.Edges) == 0 {
		return len(t.IsolatedNodes) == 1
	}
	g := buildGraph(t)
	if !graph.IsTree(g) || graph.ContainsCycleOriented(g) {
		return false
	}
	roots := 0
	for _, id := range g.Nodes() {
		if in, _ := g.InputDegree(id); in == 0 {
			roots++
		}
	}
	return roots == 1
}
