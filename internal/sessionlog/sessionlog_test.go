package sessionlog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/tuio2d/internal/messages"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessionlog.db")
	db, err := NewDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDB_MigratesSchema(t *testing.T) {
	db := newTestDB(t)
	version, dirty, err := db.MigrateVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}

func TestRecordSessionEvent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.RecordSessionEvent(42, EventAlloc, 1, "10.0.0.1:3333"))
	require.NoError(t, db.RecordSessionEvent(42, EventRelease, 5, "10.0.0.1:3333"))

	events, err := db.RecentSessionEvents(42, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, EventRelease, events[0].EventType)
	assert.Equal(t, messages.FrameID(5), events[0].FrameID)
	assert.Equal(t, EventAlloc, events[1].EventType)
}

func TestRecordSessionEvent_InvalidType(t *testing.T) {
	db := newTestDB(t)
	err := db.RecordSessionEvent(1, "bogus", 1, "")
	assert.Error(t, err)
}

func TestRecordBundleSummary(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.RecordBundleSummary(7, "10.0.0.1:3333", 4, 2))

	var messageCount, aliveCount int
	row := db.QueryRow(`SELECT message_count, alive_count FROM bundle_summaries WHERE frame_id = ?`, 7)
	require.NoError(t, row.Scan(&messageCount, &aliveCount))
	assert.Equal(t, 4, messageCount)
	assert.Equal(t, 2, aliveCount)
}

func TestRecordAliveDiff(t *testing.T) {
	db := newTestDB(t)
	prev := &messages.Alive{SessionIDs: []messages.SessionID{1, 2}}
	cur := &messages.Alive{SessionIDs: []messages.SessionID{2, 3}}

	require.NoError(t, db.RecordAliveDiff(prev, cur, 9, "10.0.0.1:3333"))

	allocEvents, err := db.RecentSessionEvents(3, 10)
	require.NoError(t, err)
	require.Len(t, allocEvents, 1)
	assert.Equal(t, EventAlloc, allocEvents[0].EventType)

	releaseEvents, err := db.RecentSessionEvents(1, 10)
	require.NoError(t, err)
	require.Len(t, releaseEvents, 1)
	assert.Equal(t, EventRelease, releaseEvents[0].EventType)

	unchanged, err := db.RecentSessionEvents(2, 10)
	require.NoError(t, err)
	assert.Empty(t, unchanged)
}

func TestRecordAliveDiff_NilPrev(t *testing.T) {
	db := newTestDB(t)
	cur := &messages.Alive{SessionIDs: []messages.SessionID{5}}
	require.NoError(t, db.RecordAliveDiff(nil, cur, 1, ""))

	events, err := db.RecentSessionEvents(5, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventAlloc, events[0].EventType)
}
