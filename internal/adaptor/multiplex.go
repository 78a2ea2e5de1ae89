package adaptor

import (
	"sort"

	"github.com/banshee-data/tuio2d/internal/messages"
)

// SourceBundle is one logical source's view of a bundle: the frame id and
// timetag it was stamped with, its alive set, and its payload messages
// (spec §3 Frame/Alive/payload). Multiplexer merges several of these into
// one outgoing bundle.
type SourceBundle struct {
	FrameID messages.FrameID
	Timetag messages.Timetag
	Alive   []messages.SessionID
	Payload []messages.Message
}

// Multiplexer merges temporally-adjacent bundles from multiple logical
// sources into one bundle (spec §4.F Multiplexing): the highest frame id,
// the latest timetag, the union of alive sets, and the concatenation of
// payload lists. Unlike the other adaptors, it does not implement Adaptor:
// it consumes one SourceBundle per upstream source rather than a single
// stage's in-frame payload, so it sits in front of the Chain, not inside
// it.
type Multiplexer struct {
	sources   map[string]SourceBundle
	lastFrame messages.FrameID
	seenAny   bool
}

// NewMultiplexer returns a Multiplexer ready to accept source bundles.
func NewMultiplexer() *Multiplexer {
	return &Multiplexer{sources: make(map[string]SourceBundle)}
}

// Ingest records the most recent bundle received from a named source,
// replacing whatever that source last contributed.
func (m *Multiplexer) Ingest(sourceID string, b SourceBundle) {
	m.sources[sourceID] = b
}

// Merge combines every currently-buffered source bundle into one, per spec
// §4.F, and reports false if no source has contributed a bundle yet. The
// returned frame id is always strictly greater than the one from the
// previous Merge call (spec.md §8 scenario 6: frame ids strictly increasing
// across the multiplexer's output), even when every source's own frame id
// stays flat or regresses.
func (m *Multiplexer) Merge() (SourceBundle, bool) {
	if len(m.sources) == 0 {
		return SourceBundle{}, false
	}

	var merged SourceBundle
	aliveSet := make(map[messages.SessionID]struct{})
	first := true
	for _, b := range m.sources {
		if first || b.FrameID > merged.FrameID {
			merged.FrameID = b.FrameID
		}
		if first || b.Timetag > merged.Timetag {
			merged.Timetag = b.Timetag
		}
		for _, id := range b.Alive {
			aliveSet[id] = struct{}{}
		}
		merged.Payload = append(merged.Payload, b.Payload...)
		first = false
	}

	if m.seenAny && merged.FrameID <= m.lastFrame {
		merged.FrameID = m.lastFrame + 1
	}
	m.lastFrame = merged.FrameID
	m.seenAny = true

	merged.Alive = make([]messages.SessionID, 0, len(aliveSet))
	for id := range aliveSet {
		merged.Alive = append(merged.Alive, id)
	}
	sort.Slice(merged.Alive, func(i, j int) bool { return merged.Alive[i] < merged.Alive[j] })

	return merged, true
}
