// Package serialmt drives a serial-attached touch controller: it classifies
// and parses the controller's line-oriented output and translates it into
// the same raw event stream a kernel evdev multi-touch source would
// produce, so it becomes one more Type-A/Type-B source for the tracker.
package serialmt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Line classification tokens, mirroring a classify-then-unmarshal style:
// a cheap string scan decides which strict JSON shape to attempt.
const (
	LineTypeSynReport  = "syn_report"
	LineTypeSynDropped = "syn_dropped"
	LineTypeTouch      = "touch"
	LineTypeUnknown    = "unknown"
)

// TouchLine is one slot's sample: {"slot":0,"tracking_id":42,"x":100,"y":200}.
// TrackingID -1 (messages.ReleasedTrackingID) releases the slot; X/Y/Pressure
// are omitted on release.
type TouchLine struct {
	Slot       int    `json:"slot"`
	TrackingID int32  `json:"tracking_id"`
	X          *int32 `json:"x,omitempty"`
	Y          *int32 `json:"y,omitempty"`
	Pressure   *int32 `json:"pressure,omitempty"`
}

// ClassifyLine inspects a raw controller line and returns a classification
// token used to pick the right parse path.
func ClassifyLine(line string) string {
	trimmed := strings.TrimSpace(line)
	switch trimmed {
	case "SYN_REPORT":
		return LineTypeSynReport
	case "SYN_DROPPED":
		return LineTypeSynDropped
	}
	if strings.HasPrefix(trimmed, "{") {
		return LineTypeTouch
	}
	return LineTypeUnknown
}

// ParseTouchLine decodes a touch sample line.
func ParseTouchLine(line string) (TouchLine, error) {
	var t TouchLine
	if err := json.Unmarshal([]byte(line), &t); err != nil {
		return TouchLine{}, fmt.Errorf("serialmt: invalid touch line: %w", err)
	}
	return t, nil
}
