package config

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"time"
)

// TuningConfig holds the tracker and adaptor tuning knobs embedded as a
// JSON document inside a wrapper's <tuning> XML element. Every field is
// optional (a pointer); an omitted field keeps its documented default, so
// partial tuning documents are safe.
type TuningConfig struct {
	// Tracker params
	JoinDistanceLimit *float64 `json:"join_distance_limit,omitempty"`
	HistoryCapacity   *int     `json:"history_capacity,omitempty"`

	// Adaptor params
	AppendInterval *int    `json:"append_interval,omitempty"`
	FilterPattern  *string `json:"filter_pattern,omitempty"`

	// Topology publisher params
	TopologyInterval *string `json:"topology_interval,omitempty"` // duration string like "5s"

	// Frame/bundle params
	SendInterval *string `json:"send_interval,omitempty"` // duration string like "16ms"
}

// UnmarshalXML lets a <tuning>{...json...}</tuning> element hold its
// tuning document as embedded JSON rather than nested XML elements.
func (c *TuningConfig) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw string
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	type alias TuningConfig
	var a alias
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return fmt.Errorf("tuning: invalid embedded JSON: %w", err)
	}
	*c = TuningConfig(a)
	return nil
}

// Validate checks that the configured values are in range / parseable.
func (c *TuningConfig) Validate() error {
	if c.JoinDistanceLimit != nil && *c.JoinDistanceLimit <= 0 {
		return fmt.Errorf("join_distance_limit must be positive, got %g", *c.JoinDistanceLimit)
	}
	if c.HistoryCapacity != nil && *c.HistoryCapacity < 2 {
		return fmt.Errorf("history_capacity must be at least 2, got %d", *c.HistoryCapacity)
	}
	if c.AppendInterval != nil && *c.AppendInterval < 1 {
		return fmt.Errorf("append_interval must be at least 1, got %d", *c.AppendInterval)
	}
	if c.TopologyInterval != nil && *c.TopologyInterval != "" {
		if _, err := time.ParseDuration(*c.TopologyInterval); err != nil {
			return fmt.Errorf("invalid topology_interval %q: %w", *c.TopologyInterval, err)
		}
	}
	if c.SendInterval != nil && *c.SendInterval != "" {
		if _, err := time.ParseDuration(*c.SendInterval); err != nil {
			return fmt.Errorf("invalid send_interval %q: %w", *c.SendInterval, err)
		}
	}
	return nil
}

// GetJoinDistanceLimit returns the configured join distance limit or its
// default.
func (c *TuningConfig) GetJoinDistanceLimit() float64 {
	if c == nil || c.JoinDistanceLimit == nil {
		return 50.0
	}
	return *c.JoinDistanceLimit
}

// GetHistoryCapacity returns the configured kinematic history capacity or
// its default.
func (c *TuningConfig) GetHistoryCapacity() int {
	if c == nil || c.HistoryCapacity == nil {
		return 5
	}
	return *c.HistoryCapacity
}

// GetAppendInterval returns the configured append-on-interval period or
// its default.
func (c *TuningConfig) GetAppendInterval() int {
	if c == nil || c.AppendInterval == nil {
		return 30
	}
	return *c.AppendInterval
}

// GetFilterPattern returns the configured regex-filter pattern, or an
// empty string (no filtering) when unset.
func (c *TuningConfig) GetFilterPattern() string {
	if c == nil || c.FilterPattern == nil {
		return ""
	}
	return *c.FilterPattern
}

// GetTopologyInterval returns the configured topology re-publish interval
// or its default.
func (c *TuningConfig) GetTopologyInterval() time.Duration {
	if c == nil || c.TopologyInterval == nil || *c.TopologyInterval == "" {
		return 5 * time.Second
	}
	d, err := time.ParseDuration(*c.TopologyInterval)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// GetSendInterval returns the configured bundle-send interval or its
// default.
func (c *TuningConfig) GetSendInterval() time.Duration {
	if c == nil || c.SendInterval == nil || *c.SendInterval == "" {
		return 16 * time.Millisecond
	}
	d, err := time.ParseDuration(*c.SendInterval)
	if err != nil {
		return 16 * time.Millisecond
	}
	return d
}
