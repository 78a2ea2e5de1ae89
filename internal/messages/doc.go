package messages

// ReferencedSessionIDs returns every session id directly carried by msgs
// (pointer/token/bounds/symbol's own session id) plus every session id
// transitively referenced by association messages' embedded topologies —
// the set spec §8's alive-set invariant requires to equal the bundle's
// alive-set.
func ReferencedSessionIDs(msgs []Message) []SessionID {
	seen := make(map[SessionID]bool)
	var out []SessionID
	add := func(s SessionID) {
		if s == NoSession {
			return
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, m := range msgs {
		switch v := m.(type) {
		case *Pointer:
			add(v.SessionID)
		case *Token:
			add(v.SessionID)
		case *Bounds:
			add(v.SessionID)
		case *Symbol:
			add(v.SessionID)
		case *Area:
			add(v.SessionID)
		case *Link:
			add(v.SessionID)
			for _, s := range v.Topology.SessionIDs() {
				add(s)
			}
		case *LinkedList:
			add(v.SessionID)
			for _, s := range v.Topology.SessionIDs() {
				add(s)
			}
		case *LinkedTree:
			add(v.SessionID)
			for _, s := range v.Topology.SessionIDs() {
				add(s)
			}
		}
	}
	return out
}
