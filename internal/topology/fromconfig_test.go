package topology

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/tuio2d/internal/config"
)

func TestFromWrapperConfig_BuildsTopology(t *testing.T) {
	wc := &config.WrapperConfig{
		Sensors: []config.SensorConfig{
			{
				UUID:     "3e2f6e1e-21a1-4b7a-9b0a-1a2b3c4d5e6f",
				Viewport: config.ViewportConfig{Width: 1920, Height: 1080},
				Group:    &config.GroupConfig{UUID: "4e2f6e1e-21a1-4b7a-9b0a-1a2b3c4d5e6f"},
				Neighbours: []config.NeighbourConfig{
					{UUID: "5e2f6e1e-21a1-4b7a-9b0a-1a2b3c4d5e6f", Azimuth: 1.5, Distance: 2.0},
				},
			},
		},
	}

	cfg, err := FromWrapperConfig(wc, 5*time.Second)
	require.NoError(t, err)
	require.Len(t, cfg.Sensors, 1)
	require.Len(t, cfg.Viewports, 1)
	require.Len(t, cfg.Groups, 1)
	require.Len(t, cfg.Neighbours, 1)
	assert.Equal(t, 5*time.Second, cfg.Interval)
	assert.Equal(t, 1920.0, cfg.Viewports[0].Width)
}

func TestFromWrapperConfig_InvalidUUID(t *testing.T) {
	wc := &config.WrapperConfig{
		Sensors: []config.SensorConfig{{UUID: "not-a-uuid"}},
	}
	_, err := FromWrapperConfig(wc, 0)
	assert.Error(t, err)
}
