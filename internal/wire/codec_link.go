package wire

import "github.com/banshee-data/tuio2d/internal/messages"

// Association messages (lia/lla/lta) encode their embedded LinkTopology as
// a flat type-tagged argument list: kind, isolated-node count and ids, then
// edge count and (from, to, in_port, out_port) per edge. The shape
// invariant (list/tree) is validated on decode, not on the wire itself.

func encodeTopology(b *argBuilder, t messages.LinkTopology) {
	b.i(int32(t.Kind))
	b.i(int32(len(t.IsolatedNodes)))
	for _, id := range t.IsolatedNodes {
		b.i(int32(id))
	}
	b.i(int32(len(t.Edges)))
	for _, e := range t.Edges {
		b.i(int32(e.From))
		b.i(int32(e.To))
		b.i(e.InPort)
		b.i(e.OutPort)
	}
}

func decodeTopology(a *argReader) (messages.LinkTopology, error) {
	kind, err := a.i()
	if err != nil {
		return messages.LinkTopology{}, err
	}
	isolatedCount, err := a.i()
	if err != nil {
		return messages.LinkTopology{}, err
	}
	t := messages.LinkTopology{Kind: messages.LinkKind(kind)}
	for i := int32(0); i < isolatedCount; i++ {
		id, err := a.i()
		if err != nil {
			return messages.LinkTopology{}, err
		}
		t.IsolatedNodes = append(t.IsolatedNodes, messages.SessionID(id))
	}
	edgeCount, err := a.i()
	if err != nil {
		return messages.LinkTopology{}, err
	}
	for i := int32(0); i < edgeCount; i++ {
		from, err := a.i()
		if err != nil {
			return messages.LinkTopology{}, err
		}
		to, err := a.i()
		if err != nil {
			return messages.LinkTopology{}, err
		}
		inPort, err := a.i()
		if err != nil {
			return messages.LinkTopology{}, err
		}
		outPort, err := a.i()
		if err != nil {
			return messages.LinkTopology{}, err
		}
		t.Edges = append(t.Edges, messages.LinkEdge{
			From: messages.SessionID(from), To: messages.SessionID(to),
			InPort: inPort, OutPort: outPort,
		})
	}
	return t, nil
}

// EncodeLink produces the /tuio2/lia record for a Link message.
func EncodeLink(l *messages.Link) Record {
	var b argBuilder
	b.i(int32(l.SessionID))
	encodeTopology(&b, l.Topology)
	return Record{Path: PathLink, TypeTags: b.tags, Args: b.args}
}

func decodeLink(r Record) (messages.Message, error) {
	a := newArgReader(r)
	session, err := a.i()
	if err != nil {
		return nil, err
	}
	t, err := decodeTopology(a)
	if err != nil {
		return nil, err
	}
	return &messages.Link{SessionHolder: messages.SessionHolder{SessionID: messages.SessionID(session)}, Topology: t}, nil
}

// EncodeLinkedList produces the /tuio2/lla record for a LinkedList message.
func EncodeLinkedList(l *messages.LinkedList) Record {
	var b argBuilder
	b.i(int32(l.SessionID))
	encodeTopology(&b, l.Topology)
	return Record{Path: PathLinkList, TypeTags: b.tags, Args: b.args}
}

func decodeLinkedList(r Record) (messages.Message, error) {
	a := newArgReader(r)
	session, err := a.i()
	if err != nil {
		return nil, err
	}
	t, err := decodeTopology(a)
	if err != nil {
		return nil, err
	}
	l := &messages.LinkedList{SessionHolder: messages.SessionHolder{SessionID: messages.SessionID(session)}, Topology: t}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// EncodeLinkedTree produces the /tuio2/lta record for a LinkedTree message.
func EncodeLinkedTree(l *messages.LinkedTree) Record {
	var b argBuilder
	b.i(int32(l.SessionID))
	encodeTopology(&b, l.Topology)
	return Record{Path: PathLinkTree, TypeTags: b.tags, Args: b.args}
}

func decodeLinkedTree(r Record) (messages.Message, error) {
	a := newArgReader(r)
	session, err := a.i()
	if err != nil {
		return nil, err
	}
	t, err := decodeTopology(a)
	if err != nil {
		return nil, err
	}
	l := &messages.LinkedTree{SessionHolder: messages.SessionHolder{SessionID: messages.SessionID(session)}, Topology: t}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func registerLinkCodecs(reg *Registry) {
	reg.Register(PathLink, decodeLink)
	reg.Register(PathLinkList, decodeLinkedList)
	reg.Register(PathLinkTree, decodeLinkedTree)
}
