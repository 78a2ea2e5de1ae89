package sessionlog

import (
	"fmt"

	"github.com/banshee-data/tuio2d/internal/messages"
)

// EventType distinguishes a session allocation from a release.
type EventType string

const (
	EventAlloc   EventType = "alloc"
	EventRelease EventType = "release"
)

// RecordSessionEvent appends one session-id alloc/release event.
func (db *DB) RecordSessionEvent(sessionID messages.SessionID, eventType EventType, frameID messages.FrameID, sourceAddr string) error {
	if eventType != EventAlloc && eventType != EventRelease {
		return fmt.Errorf("sessionlog: invalid event type %q", eventType)
	}
	_, err := db.Exec(
		`INSERT INTO session_events (session_id, event_type, frame_id, source_addr) VALUES (?, ?, ?, ?)`,
		sessionID, string(eventType), frameID, sourceAddr,
	)
	return err
}

// RecordBundleSummary appends one emitted-bundle summary, keyed by frame id.
func (db *DB) RecordBundleSummary(frameID messages.FrameID, sourceAddr string, messageCount, aliveCount int) error {
	_, err := db.Exec(
		`INSERT INTO bundle_summaries (frame_id, source_addr, message_count, alive_count) VALUES (?, ?, ?, ?)`,
		frameID, sourceAddr, messageCount, aliveCount,
	)
	return err
}

// SessionEvent is one row of the session_events table.
type SessionEvent struct {
	EventID    int64
	SessionID  messages.SessionID
	EventType  EventType
	FrameID    messages.FrameID
	SourceAddr string
}

// RecordAliveDiff compares the previous and current alive sets carried by
// consecutive ALV messages and records an alloc event for every session id
// that newly appears and a release event for every one that drops out.
func (db *DB) RecordAliveDiff(prev, cur *messages.Alive, frameID messages.FrameID, sourceAddr string) error {
	prevSet := make(map[messages.SessionID]bool)
	if prev != nil {
		for _, s := range prev.SessionIDs {
			prevSet[s] = true
		}
	}
	curSet := make(map[messages.SessionID]bool)
	if cur != nil {
		for _, s := range cur.SessionIDs {
			curSet[s] = true
		}
	}

	for s := range curSet {
		if !prevSet[s] {
			if err := db.RecordSessionEvent(s, EventAlloc, frameID, sourceAddr); err != nil {
				return err
			}
		}
	}
	for s := range prevSet {
		if !curSet[s] {
			if err := db.RecordSessionEvent(s, EventRelease, frameID, sourceAddr); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecentSessionEvents returns the most recent events for sessionID, newest
// first, for debugging alive-set invariants.
func (db *DB) RecentSessionEvents(sessionID messages.SessionID, limit int) ([]SessionEvent, error) {
	rows, err := db.Query(
		`SELECT event_id, session_id, event_type, frame_id, source_addr
		 FROM session_events WHERE session_id = ? ORDER BY event_id DESC LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []SessionEvent
	for rows.Next() {
		var e SessionEvent
		var eventType string
		if err := rows.Scan(&e.EventID, &e.SessionID, &eventType, &e.FrameID, &e.SourceAddr); err != nil {
			return nil, err
		}
		e.EventType = EventType(eventType)
		events = append(events, e)
	}
	return events, rows.Err()
}
