package wire

import (
	"fmt"

	"github.com/banshee-data/tuio2d/internal/messages"
)

// Imprint returns the wire record(s) for any catalogue message. Frame and
// Alive always produce exactly one record; output-mode-aware messages
// (Pointer, Token, Bounds) may produce one or two.
func Imprint(msg messages.Message) ([]Record, error) {
	switch m := msg.(type) {
	case *messages.Frame:
		return []Record{EncodeFrame(m)}, nil
	case *messages.Alive:
		return []Record{EncodeAlive(m)}, nil
	case *messages.Pointer:
		return ImprintPointer(m), nil
	case *messages.Token:
		return ImprintToken(m), nil
	case *messages.Bounds:
		return ImprintBounds(m), nil
	case *messages.Symbol:
		return []Record{EncodeSymbol(m)}, nil
	case *messages.Area:
		return []Record{EncodeArea(m)}, nil
	case *messages.Link:
		return []Record{EncodeLink(m)}, nil
	case *messages.LinkedList:
		return []Record{EncodeLinkedList(m)}, nil
	case *messages.LinkedTree:
		return []Record{EncodeLinkedTree(m)}, nil
	case *messages.Sensor:
		return []Record{EncodeSensor(m)}, nil
	case *messages.Viewport:
		return []Record{EncodeViewport(m)}, nil
	case *messages.Group:
		return []Record{EncodeGroup(m)}, nil
	case *messages.Neighbour:
		return []Record{EncodeNeighbour(m)}, nil
	default:
		return nil, fmt.Errorf("wire: no encoder for message type %T", msg)
	}
}

// BuildBundle assembles a frame, its alive set, and the contact/association
// payload messages into a single wire Bundle, in the element order spec §3
// requires: frame first, alive second, then the payload.
func BuildBundle(tt messages.Timetag, frame *messages.Frame, alive *messages.Alive, payload []messages.Message) (*Bundle, error) {
	b := &Bundle{Timetag: tt}
	frameRec, err := Imprint(frame)
	if err != nil {
		return nil, err
	}
	aliveRec, err := Imprint(alive)
	if err != nil {
		return nil, err
	}
	for _, rec := range frameRec {
		rec := rec
		b.Elements = append(b.Elements, Element{Record: &rec})
	}
	for _, rec := range aliveRec {
		rec := rec
		b.Elements = append(b.Elements, Element{Record: &rec})
	}
	for _, msg := range payload {
		recs, err := Imprint(msg)
		if err != nil {
			return nil, err
		}
		for _, rec := range recs {
			rec := rec
			b.Elements = append(b.Elements, Element{Record: &rec})
		}
	}
	return b, nil
}
