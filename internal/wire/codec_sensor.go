package wire

import (
	"fmt"

	"github.com/banshee-data/tuio2d/internal/geom"
	"github.com/banshee-data/tuio2d/internal/messages"
	"github.com/google/uuid"
)

func appendUUID(b *argBuilder, id messages.UUID) {
	b.blob(id[:])
}

func readUUID(a *argReader) (messages.UUID, error) {
	raw, err := a.blob()
	if err != nil {
		return messages.UUID{}, err
	}
	if len(raw) != 16 {
		return messages.UUID{}, fmt.Errorf("wire: uuid blob: want 16 bytes, got %d", len(raw))
	}
	id, err := uuid.FromBytes(raw)
	if err != nil {
		return messages.UUID{}, fmt.Errorf("wire: uuid blob: %w", err)
	}
	return id, nil
}

// EncodeSensor produces the /dtuio/sensor record for a Sensor message.
func EncodeSensor(s *messages.Sensor) Record {
	var b argBuilder
	appendUUID(&b, s.UUID)
	b.i(int32(s.TranslationMode))
	b.i(int32(s.Purpose))
	return Record{Path: PathSensor, TypeTags: b.tags, Args: b.args}
}

func decodeSensor(r Record) (messages.Message, error) {
	a := newArgReader(r)
	id, err := readUUID(a)
	if err != nil {
		return nil, err
	}
	mode, err := a.i()
	if err != nil {
		return nil, err
	}
	purpose, err := a.i()
	if err != nil {
		return nil, err
	}
	return &messages.Sensor{
		UUID:            id,
		TranslationMode: messages.TranslationMode(mode),
		Purpose:         messages.SensorPurpose(purpose),
	}, nil
}

// EncodeViewport produces the /dtuio/viewport record for a Viewport
// message.
func EncodeViewport(v *messages.Viewport) Record {
	var b argBuilder
	appendUUID(&b, v.UUID)
	b.f(v.Width)
	b.f(v.Height)
	b.f(v.Center.X)
	b.f(v.Center.Y)
	b.f(v.Orientation)
	return Record{Path: PathViewport, TypeTags: b.tags, Args: b.args}
}

func decodeViewport(r Record) (messages.Message, error) {
	a := newArgReader(r)
	id, err := readUUID(a)
	if err != nil {
		return nil, err
	}
	w, err := a.f()
	if err != nil {
		return nil, err
	}
	h, err := a.f()
	if err != nil {
		return nil, err
	}
	cx, err := a.f()
	if err != nil {
		return nil, err
	}
	cy, err := a.f()
	if err != nil {
		return nil, err
	}
	orient, err := a.f()
	if err != nil {
		return nil, err
	}
	return &messages.Viewport{
		UUID: id, Width: w, Height: h,
		Center:      geom.Point2D{X: cx, Y: cy},
		Orientation: orient,
	}, nil
}

// EncodeGroup produces the /dtuio/group record for a Group message.
func EncodeGroup(g *messages.Group) Record {
	var b argBuilder
	appendUUID(&b, g.UUID)
	appendUUID(&b, g.GroupUUID)
	return Record{Path: PathGroup, TypeTags: b.tags, Args: b.args}
}

func decodeGroup(r Record) (messages.Message, error) {
	a := newArgReader(r)
	id, err := readUUID(a)
	if err != nil {
		return nil, err
	}
	group, err := readUUID(a)
	if err != nil {
		return nil, err
	}
	return &messages.Group{UUID: id, GroupUUID: group}, nil
}

// EncodeNeighbour produces the /dtuio/neighbour record for a Neighbour
// message.
func EncodeNeighbour(n *messages.Neighbour) Record {
	var b argBuilder
	appendUUID(&b, n.UUID)
	appendUUID(&b, n.NeighbourUUID)
	b.f(n.Azimuth)
	b.f(n.Altitude)
	b.f(n.Distance)
	return Record{Path: PathNeighbour, TypeTags: b.tags, Args: b.args}
}

func decodeNeighbour(r Record) (messages.Message, error) {
	a := newArgReader(r)
	id, err := readUUID(a)
	if err != nil {
		return nil, err
	}
	neighbour, err := readUUID(a)
	if err != nil {
		return nil, err
	}
	az, err := a.f()
	if err != nil {
		return nil, err
	}
	alt, err := a.f()
	if err != nil {
		return nil, err
	}
	dist, err := a.f()
	if err != nil {
		return nil, err
	}
	return &messages.Neighbour{
		UUID: id, NeighbourUUID: neighbour,
		Azimuth: az, Altitude: alt, Distance: dist,
	}, nil
}

func registerSensorCodecs(reg *Registry) {
	reg.Register(PathSensor, decodeSensor)
	reg.Register(PathViewport, decodeViewport)
	reg.Register(PathGroup, decodeGroup)
	reg.Register(PathNeighbour, decodeNeighbour)
}
