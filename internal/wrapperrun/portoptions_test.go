package wrapperrun

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/tuio2d/internal/config"
)

func TestPortOptionsFromConfig_NilConfig(t *testing.T) {
	opts := PortOptionsFromConfig(nil)
	assert.Equal(t, 0, opts.BaudRate)
}

func TestPortOptionsFromConfig_ReadsKnownOptions(t *testing.T) {
	wc := &config.WrapperConfig{
		DeviceOptions: []config.DeviceOption{
			{XMLName: xml.Name{Local: "baud_rate"}, Value: "115200"},
			{XMLName: xml.Name{Local: "data_bits"}, Value: "8"},
			{XMLName: xml.Name{Local: "stop_bits"}, Value: "1"},
			{XMLName: xml.Name{Local: "parity"}, Value: "N"},
			{XMLName: xml.Name{Local: "unrelated_option"}, Value: "ignored"},
		},
	}
	opts := PortOptionsFromConfig(wc)
	assert.Equal(t, 115200, opts.BaudRate)
	assert.Equal(t, 8, opts.DataBits)
	assert.Equal(t, 1, opts.StopBits)
	assert.Equal(t, "N", opts.Parity)
}
