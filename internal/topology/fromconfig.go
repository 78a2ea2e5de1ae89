package topology

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/tuio2d/internal/config"
	"github.com/banshee-data/tuio2d/internal/messages"
)

// FromWrapperConfig builds the static topology (sensor/viewport/group/
// neighbour messages) a wrapper publishes from its parsed muse_config
// <sensor> declarations.
func FromWrapperConfig(wc *config.WrapperConfig, interval time.Duration) (Config, error) {
	cfg := Config{Interval: interval}

	for _, sc := range wc.Sensors {
		id, err := uuid.Parse(sc.UUID)
		if err != nil {
			return Config{}, fmt.Errorf("topology: sensor uuid %q: %w", sc.UUID, err)
		}

		cfg.Sensors = append(cfg.Sensors, &messages.Sensor{
			UUID:            id,
			TranslationMode: messages.TranslationIntact,
			Purpose:         messages.PurposeSource,
		})

		cfg.Viewports = append(cfg.Viewports, &messages.Viewport{
			UUID:   id,
			Width:  sc.Viewport.Width,
			Height: sc.Viewport.Height,
		})

		if sc.Group != nil {
			groupID, err := uuid.Parse(sc.Group.UUID)
			if err != nil {
				return Config{}, fmt.Errorf("topology: sensor %s group uuid %q: %w", sc.UUID, sc.Group.UUID, err)
			}
			cfg.Groups = append(cfg.Groups, &messages.Group{UUID: id, GroupUUID: groupID})
		}

		for _, n := range sc.Neighbours {
			neighbourID, err := uuid.Parse(n.UUID)
			if err != nil {
				return Config{}, fmt.Errorf("topology: sensor %s neighbour uuid %q: %w", sc.UUID, n.UUID, err)
			}
			cfg.Neighbours = append(cfg.Neighbours, &messages.Neighbour{
				UUID:          id,
				NeighbourUUID: neighbourID,
				Azimuth:       n.Azimuth,
				Altitude:      n.Altitude,
				Distance:      n.Distance,
			})
		}
	}

	return cfg, nil
}
