package config

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/banshee-data/tuio2d/internal/geom"
)

// UIMode selects how a wrapper presents itself to the operator.
type UIMode string

const (
	UIAuto    UIMode = "auto"
	UIGTK     UIMode = "gtk"
	UIConsole UIMode = "console"
)

// MuseConfig is the root of a muse_config XML document (spec §6).
type MuseConfig struct {
	XMLName  xml.Name  `xml:"muse_config"`
	Wrappers []Wrapper `xml:"wrapper"`
}

// Wrapper is one <wrapper name="..."><config>...</config></wrapper> entry.
type Wrapper struct {
	Name   string       `xml:"name,attr"`
	Config WrapperConfig `xml:"config"`
}

// WrapperConfig carries the wrapper-generic options plus the per-sensor
// topology declarations and any device-specific options the instantiated
// wrapper recognizes (captured raw, since they vary per device).
type WrapperConfig struct {
	Target  string         `xml:"target"`
	Device  string         `xml:"device"`
	UI      UIMode         `xml:"ui"`
	Sensors []SensorConfig `xml:"sensor"`
	Tuning  *TuningConfig  `xml:"tuning"`

	// DeviceOptions captures device-specific elements (depth-sensor
	// resolution/format, blob-size range, depth threshold range, ...)
	// that only a particular wrapper backend knows how to interpret.
	DeviceOptions []DeviceOption `xml:",any"`
}

// DeviceOption is one raw, wrapper-specific <key>value</key> element not
// recognized as one of the generic options above.
type DeviceOption struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// Point2DConfig is an (x, y) attribute pair, used for quadrangle corners.
type Point2DConfig struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
}

func (p Point2DConfig) ToGeom() geom.Point2D { return geom.Point2D{X: p.X, Y: p.Y} }

// ViewportConfig is a sensor's declared viewport rectangle.
type ViewportConfig struct {
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
}

// QuadrangleConfig is the sensor's active area, expressed as four corners
// in raw sensor coordinates. It is parsed and kept on SensorConfig; no
// adaptor is built from it.
type QuadrangleConfig struct {
	TopLeft     Point2DConfig `xml:"top_left"`
	TopRight    Point2DConfig `xml:"top_right"`
	BottomLeft  Point2DConfig `xml:"bottom_left"`
	BottomRight Point2DConfig `xml:"bottom_right"`
}

// MappingConfig declares which raw axes feed the tracker and which are
// ignored entirely.
type MappingConfig struct {
	VirtualAxis []string `xml:"virtual_axis"`
	Ignore      []string `xml:"ignore"`
}

// GroupConfig declares the sensor's group membership.
type GroupConfig struct {
	UUID string `xml:"uuid,attr"`
}

// NeighbourConfig declares a directional/distance relationship to another
// sensor.
type NeighbourConfig struct {
	UUID     string  `xml:"uuid,attr"`
	Azimuth  float64 `xml:"azimuth,attr"`
	Altitude float64 `xml:"altitude,attr"`
	Distance float64 `xml:"distance,attr"`
}

// SensorConfig is one sensor's topology declaration within a wrapper.
type SensorConfig struct {
	UUID             string            `xml:"uuid,attr"`
	Viewport         ViewportConfig    `xml:"viewport"`
	ActiveQuadrangle QuadrangleConfig  `xml:"active_quadrangle"`
	Mapping          MappingConfig     `xml:"mapping"`
	Group            *GroupConfig      `xml:"group"`
	Neighbours       []NeighbourConfig `xml:"neighbour"`
}

// Load reads and parses a muse_config XML document from path, validating
// it against the required-key and range constraints spec §7's
// config_invalid entry describes. Parse and validation failures are
// wrapped in ErrConfigInvalid.
func Load(path string) (*MuseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigInvalid, path, err)
	}

	var cfg MuseConfig
	if err := xml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: malformed XML: %v", ErrConfigInvalid, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigInvalid, path, err)
	}

	return &cfg, nil
}

// Validate checks every wrapper's required keys and range constraints.
func (c *MuseConfig) Validate() error {
	if len(c.Wrappers) == 0 {
		return fmt.Errorf("muse_config: no wrapper elements")
	}
	for i, w := range c.Wrappers {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("wrapper[%d] %q: %w", i, w.Name, err)
		}
	}
	return nil
}

// Validate checks one wrapper's config element.
func (w *Wrapper) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("missing name attribute")
	}
	return w.Config.Validate()
}

// Validate checks required keys and per-sensor sub-elements.
func (c *WrapperConfig) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("missing required key: target")
	}
	switch c.UI {
	case "", UIAuto, UIGTK, UIConsole:
	default:
		return fmt.Errorf("ui: invalid mode %q (want auto, gtk or console)", c.UI)
	}
	for i, s := range c.Sensors {
		if s.UUID == "" {
			return fmt.Errorf("sensor[%d]: missing uuid attribute", i)
		}
		if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
			return fmt.Errorf("sensor[%d] %s: viewport width/height must be positive", i, s.UUID)
		}
	}
	if c.Tuning != nil {
		if err := c.Tuning.Validate(); err != nil {
			return fmt.Errorf("tuning: %w", err)
		}
	}
	return nil
}

// UIOrDefault returns the wrapper's configured UI mode, defaulting to
// UIAuto when unset.
func (c *WrapperConfig) UIOrDefault() UIMode {
	if c.UI == "" {
		return UIAuto
	}
	return c.UI
}
