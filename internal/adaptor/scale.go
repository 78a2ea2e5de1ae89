package adaptor

import "github.com/banshee-data/tuio2d/internal/messages"

// Scale multiplies every message's position (and, for Bounds, its ellipse
// shape) by a fixed per-axis factor — e.g. converting a sensor's native
// pixel coordinates into the shared coordinate frame's units (spec §5
// scaling).
type Scale struct {
	X, Y, Z float64
}

// Process scales positions in place on cloned messages.
func (s Scale) Process(in []messages.Message) []messages.Message {
	out := make([]messages.Message, len(in))
	for i, msg := range in {
		switch v := msg.Clone().(type) {
		case *messages.Pointer:
			v.Position.X *= s.X
			v.Position.Y *= s.Y
			v.Position.Z *= s.Z
			out[i] = v
		case *messages.Token:
			v.Position.X *= s.X
			v.Position.Y *= s.Y
			v.Position.Z *= s.Z
			out[i] = v
		case *messages.Bounds:
			v.Position.X *= s.X
			v.Position.Y *= s.Y
			v.Position.Z *= s.Z
			v.ShapeMajor *= s.X
			v.ShapeMinor *= s.Y
			out[i] = v
		default:
			out[i] = msg
		}
	}
	return out
}
