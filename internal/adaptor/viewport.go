package adaptor

import (
	"github.com/banshee-data/tuio2d/internal/geom"
	"github.com/banshee-data/tuio2d/internal/messages"
)

// ViewportProject re-expresses every message's position relative to a
// configured Viewport: rotate by -Orientation about the viewport center,
// translate so the center becomes the origin, independent of the sensor's
// own native frame (spec §5 viewport projector).
type ViewportProject struct {
	Viewport messages.Viewport
}

// Process projects positions in place on cloned messages.
func (vp ViewportProject) Process(in []messages.Message) []messages.Message {
	out := make([]messages.Message, len(in))
	for i, msg := range in {
		switch v := msg.Clone().(type) {
		case *messages.Pointer:
			v.Position = vp.project(v.Position)
			out[i] = v
		case *messages.Token:
			v.Position = vp.project(v.Position)
			out[i] = v
		case *messages.Bounds:
			v.Position = vp.project(v.Position)
			out[i] = v
		default:
			out[i] = msg
		}
	}
	return out
}

func (vp ViewportProject) project(p geom.Point3D) geom.Point3D {
	center := vp.Viewport.Center.To3D()
	rotated := p.RotateAround3(center, -vp.Viewport.Orientation, 0, 0)
	return geom.Point3D{X: rotated.X - center.X, Y: rotated.Y - center.Y, Z: rotated.Z}
}
