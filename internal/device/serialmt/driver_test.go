package serialmt

import (
	"errors"
	"testing"

	"github.com/banshee-data/tuio2d/internal/device"
)

type fakeSource struct {
	ch chan string
}

func newFakeSource() *fakeSource {
	return &fakeSource{ch: make(chan string, 16)}
}

func (f *fakeSource) Subscribe() (string, chan string) { return "fake", f.ch }
func (f *fakeSource) Unsubscribe(string)               { close(f.ch) }

func TestClassifyLine(t *testing.T) {
	cases := map[string]string{
		"SYN_REPORT":               LineTypeSynReport,
		"SYN_DROPPED":              LineTypeSynDropped,
		`{"slot":0,"tracking_id":1,"x":10,"y":20}`: LineTypeTouch,
		"garbage":                  LineTypeUnknown,
	}
	for line, want := range cases {
		if got := ClassifyLine(line); got != want {
			t.Errorf("ClassifyLine(%q) = %q, want %q", line, got, want)
		}
	}
}

func TestDriverTranslatesTouchLine(t *testing.T) {
	src := newFakeSource()
	d := NewDriver(src)
	defer d.Close()

	src.ch <- `{"slot":0,"tracking_id":7,"x":100,"y":200}`
	src.ch <- "SYN_REPORT"

	want := []device.RawEvent{
		{Type: device.EventAbs, Code: device.AbsMTSlot, Value: 0},
		{Type: device.EventAbs, Code: device.AbsMTTrackingID, Value: 7},
		{Type: device.EventAbs, Code: device.AbsMTPositionX, Value: 100},
		{Type: device.EventAbs, Code: device.AbsMTPositionY, Value: 200},
		{Type: device.EventSyn, Code: device.SynReport},
	}
	for i, w := range want {
		got, err := d.Next()
		if err != nil {
			t.Fatalf("Next()[%d]: %v", i, err)
		}
		if got != w {
			t.Errorf("Next()[%d] = %+v, want %+v", i, got, w)
		}
	}
}

func TestDriverSkipsMalformedLines(t *testing.T) {
	src := newFakeSource()
	d := NewDriver(src)
	defer d.Close()

	src.ch <- "not json and not a keyword"
	src.ch <- "SYN_REPORT"

	got, err := d.Next()
	if err != nil {
		t.Fatalf("Next(): %v", err)
	}
	want := device.RawEvent{Type: device.EventSyn, Code: device.SynReport}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDriverSynDropped(t *testing.T) {
	src := newFakeSource()
	d := NewDriver(src)
	defer d.Close()

	src.ch <- "SYN_DROPPED"
	got, err := d.Next()
	if err != nil {
		t.Fatalf("Next(): %v", err)
	}
	if got.Code != device.SynDropped {
		t.Errorf("got code %d, want SynDropped", got.Code)
	}
}

func TestDriverCloseReturnsErrClosed(t *testing.T) {
	src := newFakeSource()
	d := NewDriver(src)

	if err := d.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}
	_, err := d.Next()
	if !errors.Is(err, ErrClosed) {
		t.Errorf("got %v, want ErrClosed", err)
	}
}
