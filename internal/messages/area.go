package messages

import (
	"fmt"

	"github.com/banshee-data/tuio2d/internal/geom"
)

// DiscSpan is one disc in an area-geometry union: a center point and a
// radius.
type DiscSpan struct {
	Center geom.Point2D
	Radius float64
}

// Area represents an area-geometry message: the union of disc spans
// describing an arbitrary contact footprint (spec §4.C /tuio2/arg).
type Area struct {
	SessionHolder
	Spans []DiscSpan
}

func (a *Area) Clone() Message {
	c := &Area{SessionHolder: a.SessionHolder, Spans: make([]DiscSpan, len(a.Spans))}
	copy(c.Spans, a.Spans)
	return c
}

func (a *Area) Equal(o Message) bool {
	other, ok := o.(*Area)
	if !ok || a.SessionID != other.SessionID || len(a.Spans) != len(other.Spans) {
		return false
	}
	for i := range a.Spans {
		if a.Spans[i] != other.Spans[i] {
			return false
		}
	}
	return true
}

func (a *Area) String() string {
	return fmt.Sprintf("arg(s=%d spans=%d)", a.SessionID, len(a.Spans))
}
