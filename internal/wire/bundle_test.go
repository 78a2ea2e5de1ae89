package wire

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/tuio2d/internal/geom"
	"github.com/banshee-data/tuio2d/internal/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitivesRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("string padding", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "a", "ab", "abc", "abcd", "/tuio2/frm"} {
			buf := appendString(nil, s)
			assert.Equal(t, 0, len(buf)%4, "string %q: not 4-byte aligned", s)
			got, next, err := readString(buf, 0)
			require.NoError(t, err)
			assert.Equal(t, s, got)
			assert.Equal(t, len(buf), next)
		}
	})

	t.Run("blob padding", func(t *testing.T) {
		t.Parallel()
		for _, b := range [][]byte{{}, {1}, {1, 2}, {1, 2, 3}, {1, 2, 3, 4}} {
			buf := appendBlob(nil, b)
			got, next, err := readBlob(buf, 0)
			require.NoError(t, err)
			assert.Equal(t, b, got)
			assert.Equal(t, len(buf), next)
		}
	})

	t.Run("int32 and float32", func(t *testing.T) {
		t.Parallel()
		buf := appendInt32(nil, -42)
		v, _, err := readInt32(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, int32(-42), v)

		buf = appendFloat32(nil, 3.5)
		f, _, err := readFloat32(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, float32(3.5), f)
	})

	t.Run("timetag", func(t *testing.T) {
		t.Parallel()
		tt := messages.NewTimetag(1000, 42)
		buf := appendTimetag(nil, tt)
		got, _, err := readTimetag(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, tt, got)
	})
}

func TestRecordRoundTrip(t *testing.T) {
	t.Parallel()
	rec := Record{
		Path:     PathFrame,
		TypeTags: "itiisff",
		Args:     []any{int32(7), messages.NewTimetag(10, 0), int32(0x7f000001), int32(1), "demo", float32(1920), float32(1080)},
	}
	buf, err := EncodeRecord(rec)
	require.NoError(t, err)

	got, err := DecodeRecord(buf)
	require.NoError(t, err)
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestBundleRoundTrip(t *testing.T) {
	t.Parallel()

	frame := &messages.Frame{FrameID: 1, Timetag: messages.NewTimetag(5, 0), AppName: "demo", SensorWidth: 100, SensorHeight: 100}
	alive := &messages.Alive{SessionIDs: []messages.SessionID{1, 2, 3}}
	ptr := &messages.Pointer{
		SessionHolder:    messages.SessionHolder{SessionID: 1},
		PositionHolder3D: messages.PositionHolder3D{Position: geom.Point3D{X: 0.5, Y: 0.25}},
		OutputMode:       messages.OutputMode2D,
	}

	b, err := BuildBundle(messages.NewTimetag(5, 0), frame, alive, []messages.Message{ptr})
	require.NoError(t, err)

	raw, err := EncodeBundle(b)
	require.NoError(t, err)
	assert.Equal(t, 0, len(raw)%4)

	decoded, err := DecodeBundle(raw)
	require.NoError(t, err)

	reg := NewRegistry()
	msgs, err := reg.DecodeBundle(decoded)
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	gotFrame, ok := msgs[0].(*messages.Frame)
	require.True(t, ok)
	assert.True(t, gotFrame.Equal(frame))

	gotAlive, ok := msgs[1].(*messages.Alive)
	require.True(t, ok)
	assert.True(t, gotAlive.Equal(alive))

	gotPtr, ok := msgs[2].(*messages.Pointer)
	require.True(t, ok)
	assert.Equal(t, ptr.SessionID, gotPtr.SessionID)
	assert.InDelta(t, 0.5, gotPtr.Position.X, 1e-6)
	assert.InDelta(t, 0.25, gotPtr.Position.Y, 1e-6)
	assert.False(t, gotPtr.VelocityHolder3D.Available)
}

func TestNestedBundle(t *testing.T) {
	t.Parallel()
	inner := &Bundle{Timetag: messages.NewTimetag(1, 0)}
	frame := EncodeFrame(&messages.Frame{FrameID: 1, AppName: "x"})
	inner.Elements = append(inner.Elements, Element{Record: &frame})

	outer := &Bundle{Timetag: messages.NewTimetag(2, 0)}
	outer.Elements = append(outer.Elements, Element{Bundle: inner})

	raw, err := EncodeBundle(outer)
	require.NoError(t, err)

	decoded, err := DecodeBundle(raw)
	require.NoError(t, err)
	require.Len(t, decoded.Elements, 1)
	require.NotNil(t, decoded.Elements[0].Bundle)
	assert.Equal(t, messages.NewTimetag(1, 0), decoded.Elements[0].Bundle.Timetag)

	records := decoded.Records()
	require.Len(t, records, 1)
	assert.Equal(t, PathFrame, records[0].Path)
}

func TestUnknownPathDiscarded(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	rec := Record{Path: "/tuio2/unknown", TypeTags: "i", Args: []any{int32(1)}}
	raw, err := EncodeRecord(rec)
	require.NoError(t, err)

	b := &Bundle{Timetag: messages.Immediate}
	r, err := DecodeRecord(raw)
	require.NoError(t, err)
	b.Elements = append(b.Elements, Element{Record: &r})

	msgs, err := reg.DecodeBundle(b)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestMalformedRecordDroppedNotBundleAborted(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()

	frame := EncodeFrame(&messages.Frame{FrameID: 1, AppName: "x"})

	// A "Y" topology (1->2, 1->3) is not a single chain, so decoding this
	// lla record fails messages.LinkedList.Validate.
	badLink := EncodeLinkedList(&messages.LinkedList{
		SessionHolder: messages.SessionHolder{SessionID: 99},
		Topology: messages.LinkTopology{
			Edges: []messages.LinkEdge{{From: 1, To: 2}, {From: 1, To: 3}},
		},
	})

	b := &Bundle{Timetag: messages.Immediate}
	b.Elements = append(b.Elements, Element{Record: &frame}, Element{Record: &badLink})

	msgs, err := reg.DecodeBundle(b)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	gotFrame, ok := msgs[0].(*messages.Frame)
	require.True(t, ok)
	assert.Equal(t, messages.FrameID(1), gotFrame.FrameID)
}

func TestLinkedListRejectsNonChain(t *testing.T) {
	t.Parallel()
	// A "Y" shape: 1->2, 1->3 is not a single chain.
	l := &messages.LinkedList{
		SessionHolder: messages.SessionHolder{SessionID: 99},
		Topology: messages.LinkTopology{
			Edges: []messages.LinkEdge{
				{From: 1, To: 2},
				{From: 1, To: 3},
			},
		},
	}
	rec := EncodeLinkedList(l)
	_, err := decodeLinkedList(rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, messages.ErrTopologyViolated)
}

func TestLinkedTreeRoundTrip(t *testing.T) {
	t.Parallel()
	l := &messages.LinkedTree{
		SessionHolder: messages.SessionHolder{SessionID: 42},
		Topology: messages.LinkTopology{
			Edges: []messages.LinkEdge{
				{From: 1, To: 2},
				{From: 1, To: 3},
			},
		},
	}
	require.NoError(t, l.Validate())
	rec := EncodeLinkedTree(l)
	msg, err := decodeLinkedTree(rec)
	require.NoError(t, err)
	got, ok := msg.(*messages.LinkedTree)
	require.True(t, ok)
	assert.True(t, got.Equal(l))
}
