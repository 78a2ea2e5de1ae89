// Package messages defines the closed catalogue of TUIO2-style messages
// (spec §4.C): frame, alive, pointer, token, bounds, symbol, area-geometry,
// link/list/tree association, sensor-properties, viewport, group, and
// neighbour. Each message is composed from orthogonal capability mixins by
// containment, not inheritance — a pointer "has a" session id, a
// type/user pair, and a position, rather than subclassing a base message.
package messages

import (
	"fmt"

	"github.com/google/uuid"
)

// SessionID identifies a contact. 0 is reserved for "none".
type SessionID uint32

// NoSession is the reserved "none" session id.
const NoSession SessionID = 0

// TypeID is a 16-bit application-defined contact type.
type TypeID uint16

// UserID is a 16-bit user identifier; 0 means no user.
type UserID uint16

// TUID packs (UserID<<16 | TypeID) for wire transmission.
type TUID uint32

// PackTUID combines a UserID and TypeID into their packed wire form.
func PackTUID(user UserID, typ TypeID) TUID {
	return TUID(uint32(user)<<16 | uint32(typ))
}

// Unpack splits a TUID back into its UserID and TypeID.
func (t TUID) Unpack() (UserID, TypeID) {
	return UserID(uint32(t) >> 16), TypeID(uint32(t) & 0xFFFF)
}

// ComponentID identifies the sensor/device component that produced a
// contact.
type ComponentID uint32

// FrameID is a monotonically increasing per-source frame serial number.
type FrameID uint32

// SlotID is the slot-addressed multitouch convention's slot selector.
type SlotID int32

// TrackingID is the kernel-reported tracking id; -1 signals release.
type TrackingID int32

// ReleasedTrackingID is the sentinel value meaning "finger released".
const ReleasedTrackingID TrackingID = -1

// Timetag is a 64-bit NTP-style timestamp: high 32 bits are seconds since
// epoch, low 32 bits are a binary fraction of a second (1<<32 == 1s). Zero
// is reserved to mean "immediate".
type Timetag uint64

// Immediate is the reserved "apply immediately" timetag.
const Immediate Timetag = 0

// NewTimetag packs whole seconds and a fractional-second numerator (out of
// 1<<32) into a Timetag.
func NewTimetag(seconds uint32, fraction uint32) Timetag {
	return Timetag(uint64(seconds)<<32 | uint64(fraction))
}

// Seconds returns the whole-seconds component.
func (t Timetag) Seconds() uint32 { return uint32(t >> 32) }

// Fraction returns the fractional-second component (numerator of a
// 1/2^32 s unit).
func (t Timetag) Fraction() uint32 { return uint32(t & 0xFFFFFFFF) }

// UUID is a sensor/group/neighbour identifier (spec §3 Sensor topology
// metadata). Backed by google/uuid for generation and string formatting.
type UUID = uuid.UUID

// NewUUID returns a fresh random UUID.
func NewUUID() UUID { return uuid.New() }

func (t TUID) String() string {
	u, ty := t.Unpack()
	return fmt.Sprintf("tu(%d,%d)", u, ty)
}
