package server

import (
	"sync"

	"github.com/banshee-data/tuio2d/internal/messages"
)

// Allocator hands out SessionIDs and recycles them only once a released id
// has been reported absent from a bundle's alive set on two separate
// Commit calls — reusing an id the client might still believe live would
// silently merge two unrelated contacts. The second confirmation exists
// because Release and the Commit that first omits the id from the alive
// set happen in the same call: without it, the very next Allocate could
// hand the id straight back out one bundle sooner than a client watching
// for its absence would expect.
type Allocator struct {
	mu             sync.Mutex
	next           messages.SessionID
	free           []messages.SessionID
	pendingRelease map[messages.SessionID]bool // true once confirmed absent at least once
}

// NewAllocator returns an Allocator starting at session id 1 (0 is
// reserved for "none").
func NewAllocator() *Allocator {
	return &Allocator{next: 1, pendingRelease: make(map[messages.SessionID]bool)}
}

// Allocate returns a fresh session id, reusing one from the free pool when
// available.
func (a *Allocator) Allocate() messages.SessionID {
	a.mu.Lock()
	defer a.mu.Unlock()
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		return id
	}
	id := a.next
	a.next++
	return id
}

// Release marks id as no longer tracked. It is not returned to the free
// pool until ConfirmAbsent observes it missing from two subsequent alive
// sets in a row.
func (a *Allocator) Release(id messages.SessionID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pendingRelease[id] = false
}

// ConfirmAbsent scans the ids awaiting release. An id missing from alive
// for the first time since Release is armed but kept pending one more
// round; an id still missing on a later call (already armed) moves into
// the free pool, safe for reuse by a future Allocate. An id that
// reappears in alive before being freed loses its armed state and must be
// confirmed absent twice more.
func (a *Allocator) ConfirmAbsent(alive []messages.SessionID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.pendingRelease) == 0 {
		return
	}
	stillAlive := make(map[messages.SessionID]bool, len(alive))
	for _, id := range alive {
		stillAlive[id] = true
	}
	for id, armed := range a.pendingRelease {
		if stillAlive[id] {
			a.pendingRelease[id] = false
			continue
		}
		if armed {
			a.free = append(a.free, id)
			delete(a.pendingRelease, id)
			continue
		}
		a.pendingRelease[id] = true
	}
}

// Pending reports whether id is currently awaiting a confirmed absence.
func (a *Allocator) Pending(id messages.SessionID) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.pendingRelease[id]
	return ok
}
