package adaptor

import "github.com/banshee-data/tuio2d/internal/messages"

// ComponentTag stamps every message passing through with a fixed
// ComponentID (spec §3 scalar identifiers: component_id), letting a single
// physical source present several logical sub-components (e.g. distinct
// regions of one touch surface) while remaining distinguishable downstream.
type ComponentTag struct {
	ComponentID messages.ComponentID
}

// Process re-tags each message's ComponentHolder, leaving messages with no
// component concept (Frame, Alive, associations, sensor metadata)
// untouched.
func (c ComponentTag) Process(in []messages.Message) []messages.Message {
	out := make([]messages.Message, len(in))
	for i, msg := range in {
		switch v := msg.Clone().(type) {
		case *messages.Pointer:
			v.ComponentID = c.ComponentID
			out[i] = v
		case *messages.Token:
			v.ComponentID = c.ComponentID
			out[i] = v
		case *messages.Symbol:
			v.ComponentID = c.ComponentID
			out[i] = v
		default:
			out[i] = msg
		}
	}
	return out
}
