package trace

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	ranges := []AxisRange{
		{Code: 0x35, Min: 0, Max: 1920, Fuzz: 0, Flat: 0, Resolution: 0, Value: 0},
		{Code: 0x36, Min: 0, Max: 1080, Fuzz: 0, Flat: 0, Resolution: 0, Value: 0},
	}
	require.NoError(t, w.WriteAxisRanges(ranges))

	events := []EventRecord{
		{Sec: 100, Usec: 0, Type: 3, Code: 0x2f, Value: 0},
		{Sec: 100, Usec: 500, Type: 3, Code: 0x39, Value: 7},
		{Sec: 100, Usec: 1000, Type: 0, Code: 0, Value: 0},
	}
	for _, ev := range events {
		require.NoError(t, w.WriteEvent(ev))
	}
	require.NoError(t, w.Flush())

	r, err := NewReader(&buf)
	require.NoError(t, err)

	gotRanges, err := r.ReadAxisRanges()
	require.NoError(t, err)
	assert.Equal(t, ranges, gotRanges)

	for _, want := range events {
		got, err := r.ReadEvent()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = r.ReadEvent()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderRejectsBadMagic(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte("not a trace!")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestAxisRangeIsEmpty(t *testing.T) {
	assert.True(t, AxisRange{}.IsEmpty())
	assert.False(t, AxisRange{Code: 1}.IsEmpty())
}

func TestReplaySourceTranslatesEvents(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.WriteAxisRanges(nil))
	require.NoError(t, w.WriteEvent(EventRecord{Sec: 5, Usec: 10, Type: 3, Code: 0x39, Value: 42}))
	require.NoError(t, w.Flush())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	_, err = r.ReadAxisRanges()
	require.NoError(t, err)

	src := NewReplaySource(r, nil, 0)
	ev, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(5), ev.TimestampSec)
	assert.Equal(t, int64(10), ev.TimestampUsec)
	assert.Equal(t, uint16(0x39), ev.Code)
	assert.Equal(t, int32(42), ev.Value)

	_, err = src.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReplaySourcePacesWithDelay(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.WriteAxisRanges(nil))
	require.NoError(t, w.WriteEvent(EventRecord{Sec: 1}))
	require.NoError(t, w.WriteEvent(EventRecord{Sec: 2}))
	require.NoError(t, w.Flush())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	_, err = r.ReadAxisRanges()
	require.NoError(t, err)

	src := NewReplaySource(r, nil, 20*time.Millisecond)
	start := time.Now()
	_, err = src.Next()
	require.NoError(t, err)
	_, err = src.Next()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
