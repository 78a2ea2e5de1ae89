package tracker

import (
	"github.com/banshee-data/tuio2d/internal/geom"
	"github.com/banshee-data/tuio2d/internal/messages"
)

// UpdateTypeB applies one slot-addressed (Type-B) sample: trackingID ==
// ReleasedTrackingID (-1) ends the slot's contact, returning the session id
// that was freed so the caller can drop it from the next alive set. Any
// other trackingID value reports a live sample, returning the Pointer to
// stage (nil session id) for a new or ongoing contact.
func (tr *Tracker) UpdateTypeB(slot messages.SlotID, trackingID messages.TrackingID, pos geom.Point3D, t float64) (*messages.Pointer, messages.SessionID) {
	key := int(slot)
	s, exists := tr.slotsB[key]

	if trackingID == messages.ReleasedTrackingID {
		if !exists || s.State == StateEmpty {
			return nil, messages.NoSession
		}
		sid := s.SessionID
		delete(tr.slotsB, key)
		tr.alloc.Release(sid)
		return nil, sid
	}

	if !exists {
		s = &Slot{State: StatePending, SessionID: tr.alloc.Allocate()}
		tr.slotsB[key] = s
	} else if s.State == StatePending {
		s.State = StateLive
	}

	s.History.Push(t, pos)
	vel, velOK := s.History.Velocity()
	accel, accelOK := s.History.Acceleration()

	return &messages.Pointer{
		SessionHolder:    messages.SessionHolder{SessionID: s.SessionID},
		PositionHolder3D: messages.PositionHolder3D{Position: pos},
		VelocityHolder3D: messages.VelocityHolder3D{Velocity: vel, Available: velOK},
		AccelHolder:      messages.AccelHolder{Accel: accel, Available: accelOK},
		OutputMode:       messages.OutputMode2D,
	}, messages.NoSession
}
