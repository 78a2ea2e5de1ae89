package trace

import (
	"io"
	"time"

	"github.com/banshee-data/tuio2d/internal/device"
)

// ReplaySource replays a trace file's event records as a device.RawEventSource,
// optionally pacing them by Delay between records (the CLI's `-d seconds
// replay delay`, spec §6).
type ReplaySource struct {
	r       *Reader
	closer  io.Closer
	Delay   time.Duration
	started bool
}

// NewReplaySource wraps an already-opened trace file: r must have already
// consumed the header magic and axis-range section (via NewReader and
// ReadAxisRanges) before being passed here.
func NewReplaySource(r *Reader, closer io.Closer, delay time.Duration) *ReplaySource {
	return &ReplaySource{r: r, closer: closer, Delay: delay}
}

// Next returns the next event record translated into a device.RawEvent,
// pacing by Delay when configured. Returns io.EOF once the trace is
// exhausted.
func (s *ReplaySource) Next() (device.RawEvent, error) {
	if s.started && s.Delay > 0 {
		time.Sleep(s.Delay)
	}
	s.started = true

	ev, err := s.r.ReadEvent()
	if err != nil {
		return device.RawEvent{}, err
	}
	return device.RawEvent{
		TimestampSec:  int64(ev.Sec),
		TimestampUsec: int64(ev.Usec),
		Type:          device.EventType(ev.Type),
		Code:          ev.Code,
		Value:         ev.Value,
	}, nil
}

// Close closes the underlying trace file, if one was given.
func (s *ReplaySource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
