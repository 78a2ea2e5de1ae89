package adaptor

import "github.com/banshee-data/tuio2d/internal/messages"

// Region is an axis-aligned rectangle in the XY plane tagged with the
// TypeID a contact should carry while inside it.
type Region struct {
	MinX, MinY, MaxX, MaxY float64
	TypeID                 messages.TypeID
}

func (r Region) contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// CoordinateMarker stamps each contact's TypeID according to the first
// configured Region its position falls inside, leaving contacts outside
// every region untouched (spec §5 coordinate marker).
type CoordinateMarker struct {
	Regions []Region
}

// Process marks positions in place on cloned messages.
func (cm CoordinateMarker) Process(in []messages.Message) []messages.Message {
	out := make([]messages.Message, len(in))
	for i, msg := range in {
		switch v := msg.Clone().(type) {
		case *messages.Pointer:
			if r, ok := cm.match(v.Position.X, v.Position.Y); ok {
				v.TypeID = r.TypeID
			}
			out[i] = v
		case *messages.Token:
			if r, ok := cm.match(v.Position.X, v.Position.Y); ok {
				v.TypeID = r.TypeID
			}
			out[i] = v
		default:
			out[i] = msg
		}
	}
	return out
}

func (cm CoordinateMarker) match(x, y float64) (Region, bool) {
	for _, r := range cm.Regions {
		if r.contains(x, y) {
			return r, true
		}
	}
	return Region{}, false
}
