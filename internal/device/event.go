package device

import "fmt"

// EventType mirrors the Linux evdev input_event.type values a raw touch
// event stream is shaped around, regardless of which concrete backend
// (serial controller, trace replay) produces it.
type EventType uint16

const (
	// EventSyn (EV_SYN) separates one report from the next.
	EventSyn EventType = 0
	// EventKey (EV_KEY) carries contact presence (e.g. BTN_TOUCH).
	EventKey EventType = 1
	// EventAbs (EV_ABS) carries an absolute axis value (position, slot id,
	// tracking id, pressure, ...).
	EventAbs EventType = 3
)

// Synchronization report codes (EV_SYN).
const (
	SynReport  uint16 = 0
	SynMTReport uint16 = 2
	// SynDropped signals the kernel (or equivalent) dropped events and the
	// consumer must resynchronize its per-slot state (spec §7
	// buffer_overrun).
	SynDropped uint16 = 3
)

// Multi-touch absolute axis codes (EV_ABS), Type-B protocol.
const (
	AbsMTSlot       uint16 = 0x2f
	AbsMTTrackingID uint16 = 0x39
	AbsMTPositionX  uint16 = 0x35
	AbsMTPositionY  uint16 = 0x36
	AbsMTPressure   uint16 = 0x3a
)

// RawEvent is one input_event-shaped record: a timestamped (type, code,
// value) triple.
type RawEvent struct {
	TimestampSec  int64
	TimestampUsec int64
	Type          EventType
	Code          uint16
	Value         int32
}

func (e RawEvent) String() string {
	return fmt.Sprintf("event(t=%d.%06d type=%d code=%#x value=%d)", e.TimestampSec, e.TimestampUsec, e.Type, e.Code, e.Value)
}

// RawEventSource produces a stream of raw input events. Next blocks until
// an event is available or the source is closed.
type RawEventSource interface {
	Next() (RawEvent, error)
	Close() error
}
