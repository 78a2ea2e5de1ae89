package tracker

import "github.com/banshee-data/tuio2d/internal/messages"

// SlotState is a per-slot lifecycle stage.
type SlotState int

const (
	// StateEmpty: no contact occupies the slot.
	StateEmpty SlotState = iota
	// StatePending: a contact has just appeared; one sample recorded, no
	// kinematic estimate yet available.
	StatePending
	// StateLive: the contact has been observed across at least two
	// samples.
	StateLive
	// StateDying: a release was requested. UpdateTypeB deletes a released
	// slot and hands its session id back to the allocator in the same
	// call, so no stored slot is left in this state.
	StateDying
)

// Slot is one tracked contact's bookkeeping: its allocated session id,
// lifecycle state, and kinematic sample history.
type Slot struct {
	State     SlotState
	SessionID messages.SessionID
	History   History
}

// Allocator hands out and reclaims session ids. server.Allocator satisfies
// this without tracker importing the server package.
type Allocator interface {
	Allocate() messages.SessionID
	Release(messages.SessionID)
}

// Tracker converts raw per-device touch events into Pointer messages,
// running either the Type-A (anonymous) or Type-B (slot-addressed)
// convention depending on which Update method the caller drives.
type Tracker struct {
	alloc             Allocator
	joinDistanceLimit float64

	slotsB map[int]*Slot // Type-B: keyed by kernel ABS_MT_SLOT index
	tracksA []*Slot      // Type-A: unordered set of currently live tracks
}

// NewTracker returns a Tracker backed by alloc. joinDistanceLimit is the
// mandatory maximum distance (spec §5 Type-A) within which a new batch
// point may be matched to an existing track; pairs exceeding it are never
// merged, each side instead starting/ending its own track.
func NewTracker(alloc Allocator, joinDistanceLimit float64) *Tracker {
	return &Tracker{
		alloc:             alloc,
		joinDistanceLimit: joinDistanceLimit,
		slotsB:            make(map[int]*Slot),
	}
}
