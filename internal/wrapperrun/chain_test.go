package wrapperrun

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/tuio2d/internal/adaptor"
	"github.com/banshee-data/tuio2d/internal/config"
)

func TestBuildChain_DisableTransformReturnsEmptyChain(t *testing.T) {
	wc := &config.WrapperConfig{Sensors: []config.SensorConfig{
		{UUID: "s1", Viewport: config.ViewportConfig{Width: 1920, Height: 1080}},
	}}
	chain := BuildChain(wc, true)
	assert.Empty(t, chain.Stages)
}

func TestBuildChain_NilConfigReturnsEmptyChain(t *testing.T) {
	chain := BuildChain(nil, false)
	assert.Empty(t, chain.Stages)
}

func TestBuildChain_ScalesToFirstSensorViewport(t *testing.T) {
	wc := &config.WrapperConfig{Sensors: []config.SensorConfig{
		{UUID: "s1", Viewport: config.ViewportConfig{Width: 4095, Height: 4095}},
	}}
	chain := BuildChain(wc, false)
	require := assert.New(t)
	require.Len(chain.Stages, 1)
	scale, ok := chain.Stages[0].(adaptor.Scale)
	require.True(ok)
	require.InDelta(1.0, scale.X, 0.0001)
	require.InDelta(1.0, scale.Y, 0.0001)
}

func TestDeviceID(t *testing.T) {
	assert.Equal(t, "event3", DeviceID("/dev/input/event3"))
	assert.Equal(t, "ttyUSB0", DeviceID("/dev/ttyUSB0"))
	assert.Equal(t, "default", DeviceID(""))
}
