package server

import (
	"testing"

	"github.com/banshee-data/tuio2d/internal/messages"
	"github.com/banshee-data/tuio2d/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *MockUDPSender) {
	t.Helper()
	sender := &MockUDPSender{}
	srv, err := NewServer(Config{
		Address: "127.0.0.1:3333",
		AppName: "test",
		Factory: MockUDPSenderFactory{Sender: sender},
	})
	require.NoError(t, err)
	return srv, sender
}

func TestServerCommitSendsFrameAliveAndPayload(t *testing.T) {
	t.Parallel()
	srv, sender := newTestServer(t)

	id := srv.Allocator().Allocate()
	srv.Stage(&messages.Pointer{SessionHolder: messages.SessionHolder{SessionID: id}, OutputMode: messages.OutputMode2D})

	require.NoError(t, srv.Commit(messages.NewTimetag(1, 0)))
	require.Len(t, sender.Sent, 1)

	b, err := wire.DecodeBundle(sender.Sent[0])
	require.NoError(t, err)
	reg := wire.NewRegistry()
	msgs, err := reg.DecodeBundle(b)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	_, isFrame := msgs[0].(*messages.Frame)
	assert.True(t, isFrame)
	alive, isAlive := msgs[1].(*messages.Alive)
	require.True(t, isAlive)
	assert.Equal(t, []messages.SessionID{id}, alive.SessionIDs)
}

func TestServerFrameIDIncrements(t *testing.T) {
	t.Parallel()
	srv, sender := newTestServer(t)
	require.NoError(t, srv.Commit(messages.NewTimetag(1, 0)))
	require.NoError(t, srv.Commit(messages.NewTimetag(2, 0)))

	reg := wire.NewRegistry()
	var frames []*messages.Frame
	for _, raw := range sender.Sent {
		b, err := wire.DecodeBundle(raw)
		require.NoError(t, err)
		msgs, err := reg.DecodeBundle(b)
		require.NoError(t, err)
		frames = append(frames, msgs[0].(*messages.Frame))
	}
	assert.Equal(t, messages.FrameID(0), frames[0].FrameID)
	assert.Equal(t, messages.FrameID(1), frames[1].FrameID)
}

func TestServerCommitSurfacesSendFailure(t *testing.T) {
	t.Parallel()
	srv, sender := newTestServer(t)
	sender.WriteError = assert.AnError
	err := srv.Commit(messages.NewTimetag(1, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSocketSendFailed)
}

func TestAllocatorRecyclesOnlyAfterConfirmedAbsence(t *testing.T) {
	t.Parallel()
	a := NewAllocator()
	id := a.Allocate()
	other := a.Allocate()
	assert.NotEqual(t, id, other)

	a.Release(id)
	// Still reported alive this round: must not be recycled.
	a.ConfirmAbsent([]messages.SessionID{id, other})
	assert.True(t, a.Pending(id))
	fresh := a.Allocate()
	assert.NotEqual(t, id, fresh)

	// First round absent: armed, but held one more bundle per the
	// one-bundle delay guard, not yet safe to hand back out.
	a.ConfirmAbsent([]messages.SessionID{other})
	assert.True(t, a.Pending(id))
	stillHeld := a.Allocate()
	assert.NotEqual(t, id, stillHeld)

	// Second consecutive round absent: now safe to recycle.
	a.ConfirmAbsent([]messages.SessionID{other})
	assert.False(t, a.Pending(id))
	recycled := a.Allocate()
	assert.Equal(t, id, recycled)
}

func TestAllocatorReappearanceResetsArmedState(t *testing.T) {
	t.Parallel()
	a := NewAllocator()
	id := a.Allocate()

	a.Release(id)
	a.ConfirmAbsent(nil) // armed: absent once
	assert.True(t, a.Pending(id))

	// id reappears in the alive set before the second confirmation: the
	// arming must reset, so it again needs two consecutive absences.
	a.ConfirmAbsent([]messages.SessionID{id})
	assert.True(t, a.Pending(id))

	a.ConfirmAbsent(nil)
	assert.True(t, a.Pending(id), "single absence after reappearance must not be enough to recycle")

	a.ConfirmAbsent(nil)
	assert.False(t, a.Pending(id))
}

func TestServerMarkReleasedDropsFromNextAliveSet(t *testing.T) {
	t.Parallel()
	srv, sender := newTestServer(t)
	id := srv.Allocator().Allocate()
	srv.Stage(&messages.Pointer{SessionHolder: messages.SessionHolder{SessionID: id}})
	require.NoError(t, srv.Commit(messages.NewTimetag(1, 0)))

	srv.MarkReleased(id)
	require.NoError(t, srv.Commit(messages.NewTimetag(2, 0)))

	reg := wire.NewRegistry()
	b, err := wire.DecodeBundle(sender.Sent[1])
	require.NoError(t, err)
	msgs, err := reg.DecodeBundle(b)
	require.NoError(t, err)
	alive := msgs[1].(*messages.Alive)
	assert.Empty(t, alive.SessionIDs)
}
