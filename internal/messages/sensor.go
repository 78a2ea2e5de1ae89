package messages

import (
	"fmt"

	"github.com/banshee-data/tuio2d/internal/geom"
)

// TranslationMode selects how a sensor's raw coordinates are mapped into
// the shared coordinate frame (spec §3 Sensor topology metadata).
type TranslationMode int

const (
	// TranslationIntact means no coordinate translation is applied.
	TranslationIntact TranslationMode = iota
	// TranslationSetupOnce means translation parameters are computed once
	// at startup (e.g. from a calibration file) and then held fixed.
	TranslationSetupOnce
	// TranslationSetupContinuous means translation parameters are
	// recomputed continuously (e.g. tracked calibration).
	TranslationSetupContinuous
)

// SensorPurpose classifies a sensor's role in the topology.
type SensorPurpose int

const (
	// PurposeSource is a sensor that originates contacts.
	PurposeSource SensorPurpose = iota
	// PurposeObserver is a sensor that only observes (e.g. a depth camera
	// used for presence detection, not contact origin).
	PurposeObserver
	// PurposeTagger is a sensor that annotates contacts from other
	// sensors (e.g. an RFID/NFC tag reader).
	PurposeTagger
)

// Sensor is a sensor-properties message (spec §4.C /dtuio/sensor).
type Sensor struct {
	UUID            UUID
	TranslationMode TranslationMode
	Purpose         SensorPurpose
}

func (s *Sensor) Clone() Message {
	c := *s
	return &c
}

func (s *Sensor) Equal(o Message) bool {
	other, ok := o.(*Sensor)
	if !ok {
		return false
	}
	return *s == *other
}

func (s *Sensor) String() string {
	return fmt.Sprintf("sensor(uuid=%s mode=%d purpose=%d)", s.UUID, s.TranslationMode, s.Purpose)
}

// Viewport is a viewport message (spec §4.C /dtuio/viewport): the
// rectangle a sensor's coordinates are projected into.
type Viewport struct {
	UUID        UUID
	Width       float64
	Height      float64
	Center      geom.Point2D
	Orientation float64 // radians
}

func (v *Viewport) Clone() Message {
	c := *v
	return &c
}

func (v *Viewport) Equal(o Message) bool {
	other, ok := o.(*Viewport)
	if !ok {
		return false
	}
	return *v == *other
}

func (v *Viewport) String() string {
	return fmt.Sprintf("viewport(uuid=%s %gx%g center=%+v orient=%g)", v.UUID, v.Width, v.Height, v.Center, v.Orientation)
}

// Group is a group-membership message (spec §4.C /dtuio/group).
type Group struct {
	UUID      UUID
	GroupUUID UUID
}

func (g *Group) Clone() Message {
	c := *g
	return &c
}

func (g *Group) Equal(o Message) bool {
	other, ok := o.(*Group)
	if !ok {
		return false
	}
	return *g == *other
}

func (g *Group) String() string {
	return fmt.Sprintf("group(uuid=%s group=%s)", g.UUID, g.GroupUUID)
}

// Neighbour is a neighbour declaration message (spec §4.C
// /dtuio/neighbour): directional/distance relationship to another sensor.
type Neighbour struct {
	UUID          UUID
	NeighbourUUID UUID
	Azimuth       float64 // radians
	Altitude      float64 // radians
	Distance      float64
}

func (n *Neighbour) Clone() Message {
	c := *n
	return &c
}

func (n *Neighbour) Equal(o Message) bool {
	other, ok := o.(*Neighbour)
	if !ok {
		return false
	}
	return *n == *other
}

func (n *Neighbour) String() string {
	return fmt.Sprintf("neighbour(uuid=%s -> %s az=%g alt=%g dist=%g)", n.UUID, n.NeighbourUUID, n.Azimuth, n.Altitude, n.Distance)
}
