package wrapperrun

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/banshee-data/tuio2d/internal/adaptor"
	"github.com/banshee-data/tuio2d/internal/device"
	"github.com/banshee-data/tuio2d/internal/device/serialmt"
	"github.com/banshee-data/tuio2d/internal/geom"
	"github.com/banshee-data/tuio2d/internal/messages"
	"github.com/banshee-data/tuio2d/internal/server"
	"github.com/banshee-data/tuio2d/internal/tracker"
	"github.com/banshee-data/tuio2d/internal/trace"
)

// pendingSlot accumulates the axis values seen for one ABS_MT slot between
// SYN_REPORT boundaries.
type pendingSlot struct {
	trackingID messages.TrackingID
	pos        geom.Point3D
	touched    bool
	released   bool
}

// Loop drives one device.RawEventSource through the Type-B tracker and the
// adaptor chain into the server, one commit per SYN_REPORT (spec §5: the
// host thread pumps the OS input source and drives all downstream
// processing synchronously; there is no hidden worker thread).
type Loop struct {
	Source  device.RawEventSource
	Tracker *tracker.Tracker
	Chain   *adaptor.Chain
	Server  *server.Server
	Trace   *trace.Writer // optional: records every raw event (-o output-trace)
	Logger  *log.Logger

	currentSlot int
	pending     map[int]*pendingSlot
}

// NewLoop returns a Loop ready to Run. logger defaults to log.Default() if
// nil.
func NewLoop(source device.RawEventSource, tr *tracker.Tracker, chain *adaptor.Chain, srv *server.Server, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	if chain == nil {
		chain = &adaptor.Chain{}
	}
	return &Loop{
		Source:  source,
		Tracker: tr,
		Chain:   chain,
		Server:  srv,
		Logger:  logger,
		pending: make(map[int]*pendingSlot),
	}
}

// Run pumps events from Source until ctx is cancelled, the source is
// exhausted (io.EOF, or serialmt.ErrClosed from a closed driver), or the
// source returns any other error. On cancellation or exhaustion it releases
// every live contact with an explicit DYING transition and emits one final
// commit before returning, per spec §5's "device close" failure semantics.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			l.releaseAll()
			return l.commit()
		default:
		}

		ev, err := l.Source.Next()
		if err != nil {
			// io.EOF (trace replay exhausted) and serialmt.ErrClosed
			// (driver closed, e.g. on shutdown) both mean the source is
			// done, not that it failed.
			if errors.Is(err, io.EOF) || errors.Is(err, serialmt.ErrClosed) {
				l.releaseAll()
				return l.commit()
			}
			return fmt.Errorf("wrapperrun: read event: %w", err)
		}

		if l.Trace != nil {
			if werr := l.Trace.WriteEvent(trace.EventRecord{
				Sec: uint64(ev.TimestampSec), Usec: uint64(ev.TimestampUsec),
				Type: uint16(ev.Type), Code: ev.Code, Value: ev.Value,
			}); werr != nil {
				l.Logger.Printf("wrapperrun: trace write failed: %v", werr)
			}
		}

		l.apply(ev)
	}
}

func (l *Loop) apply(ev device.RawEvent) {
	switch ev.Type {
	case device.EventAbs:
		l.applyAbs(ev)
	case device.EventSyn:
		switch ev.Code {
		case device.SynReport:
			if err := l.flush(ev); err != nil {
				l.Logger.Printf("wrapperrun: commit failed: %v", err)
			}
		case device.SynDropped:
			// spec §7 buffer_overrun: reset pending state only, recovered
			// locally; logged at warn.
			l.Logger.Printf("wrapperrun: SYN_DROPPED, resetting pending state")
			l.pending = make(map[int]*pendingSlot)
		}
	}
}

func (l *Loop) applyAbs(ev device.RawEvent) {
	switch ev.Code {
	case device.AbsMTSlot:
		l.currentSlot = int(ev.Value)
	case device.AbsMTTrackingID:
		s := l.slot(l.currentSlot)
		s.trackingID = messages.TrackingID(ev.Value)
		s.touched = true
		s.released = messages.TrackingID(ev.Value) == messages.ReleasedTrackingID
	case device.AbsMTPositionX:
		s := l.slot(l.currentSlot)
		s.pos.X = float64(ev.Value)
		s.touched = true
	case device.AbsMTPositionY:
		s := l.slot(l.currentSlot)
		s.pos.Y = float64(ev.Value)
		s.touched = true
	}
}

func (l *Loop) slot(id int) *pendingSlot {
	s, ok := l.pending[id]
	if !ok {
		s = &pendingSlot{}
		l.pending[id] = s
	}
	return s
}

// flush applies every touched slot to the tracker and commits one bundle.
func (l *Loop) flush(ev device.RawEvent) error {
	t := float64(ev.TimestampSec) + float64(ev.TimestampUsec)/1e6

	for id, s := range l.pending {
		if !s.touched {
			continue
		}
		s.touched = false

		if s.released {
			_, sessionID := l.Tracker.UpdateTypeB(messages.SlotID(id), messages.ReleasedTrackingID, geom.Point3D{}, t)
			if sessionID != messages.NoSession {
				l.Server.MarkReleased(sessionID)
			}
			delete(l.pending, id)
			continue
		}

		ptr, _ := l.Tracker.UpdateTypeB(messages.SlotID(id), s.trackingID, s.pos, t)
		if ptr == nil {
			continue
		}
		for _, msg := range l.Chain.Process([]messages.Message{ptr}) {
			l.Server.Stage(msg)
		}
	}

	return l.commit()
}

func (l *Loop) commit() error {
	return l.Server.Commit(messages.Immediate)
}

// releaseAll ends every currently tracked slot with an explicit DYING
// transition, per spec §5's device-close failure semantics.
func (l *Loop) releaseAll() {
	for id := range l.pending {
		_, sessionID := l.Tracker.UpdateTypeB(messages.SlotID(id), messages.ReleasedTrackingID, geom.Point3D{}, 0)
		if sessionID != messages.NoSession {
			l.Server.MarkReleased(sessionID)
		}
	}
	l.pending = make(map[int]*pendingSlot)
}
