package serialmt

import (
	"errors"
	"fmt"
	"sync"

	"github.com/banshee-data/tuio2d/internal/device"
)

// LineSource is the subset of *serialmux.SerialMux a Driver needs: a way
// to subscribe to classified controller lines and tear the subscription
// down again. *serialmux.SerialMux[T] satisfies this for any port type T.
type LineSource interface {
	Subscribe() (string, chan string)
	Unsubscribe(id string)
}

// ErrClosed is returned by Next once the driver has been closed and its
// queued events are exhausted.
var ErrClosed = errors.New("serialmt: driver closed")

// Driver subscribes to a serial touch controller's line stream and
// translates each line into one or more device.RawEvent values, buffering
// them until Next is called. It implements device.RawEventSource.
type Driver struct {
	source LineSource
	subID  string
	lines  chan string

	mu     sync.Mutex
	queue  []device.RawEvent
	closed bool
}

// NewDriver subscribes to source and returns a ready-to-use Driver.
func NewDriver(source LineSource) *Driver {
	id, ch := source.Subscribe()
	return &Driver{source: source, subID: id, lines: ch}
}

// Next returns the next translated raw event, reading and translating
// further controller lines as needed. It returns ErrClosed once the
// subscription channel has closed and the queue is empty.
func (d *Driver) Next() (device.RawEvent, error) {
	for {
		d.mu.Lock()
		if len(d.queue) > 0 {
			ev := d.queue[0]
			d.queue = d.queue[1:]
			d.mu.Unlock()
			return ev, nil
		}
		if d.closed {
			d.mu.Unlock()
			return device.RawEvent{}, ErrClosed
		}
		d.mu.Unlock()

		line, ok := <-d.lines
		if !ok {
			d.mu.Lock()
			d.closed = true
			d.mu.Unlock()
			return device.RawEvent{}, ErrClosed
		}

		events, err := translate(line)
		if err != nil {
			// Malformed lines are skipped, not fatal: the parse error is
			// discarded and the driver keeps reading.
			continue
		}
		if len(events) == 0 {
			continue
		}
		d.mu.Lock()
		d.queue = append(d.queue, events...)
		d.mu.Unlock()
	}
}

// Close unsubscribes from the controller's line stream.
func (d *Driver) Close() error {
	d.mu.Lock()
	already := d.closed
	d.closed = true
	d.mu.Unlock()
	if !already {
		d.source.Unsubscribe(d.subID)
	}
	return nil
}

// translate converts one classified controller line into zero or more raw
// events, in the same per-slot axis order a kernel evdev multi-touch
// source emits them: slot, tracking id, then position, each report closed
// by a SYN_REPORT.
func translate(line string) ([]device.RawEvent, error) {
	switch ClassifyLine(line) {
	case LineTypeSynReport:
		return []device.RawEvent{{Type: device.EventSyn, Code: device.SynReport}}, nil
	case LineTypeSynDropped:
		return []device.RawEvent{{Type: device.EventSyn, Code: device.SynDropped}}, nil
	case LineTypeTouch:
		t, err := ParseTouchLine(line)
		if err != nil {
			return nil, err
		}
		events := []device.RawEvent{
			{Type: device.EventAbs, Code: device.AbsMTSlot, Value: int32(t.Slot)},
			{Type: device.EventAbs, Code: device.AbsMTTrackingID, Value: t.TrackingID},
		}
		if t.X != nil {
			events = append(events, device.RawEvent{Type: device.EventAbs, Code: device.AbsMTPositionX, Value: *t.X})
		}
		if t.Y != nil {
			events = append(events, device.RawEvent{Type: device.EventAbs, Code: device.AbsMTPositionY, Value: *t.Y})
		}
		if t.Pressure != nil {
			events = append(events, device.RawEvent{Type: device.EventAbs, Code: device.AbsMTPressure, Value: *t.Pressure})
		}
		return events, nil
	default:
		return nil, fmt.Errorf("serialmt: unrecognized line: %q", line)
	}
}
