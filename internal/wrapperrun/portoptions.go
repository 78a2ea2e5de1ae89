package wrapperrun

import (
	"strconv"

	"github.com/banshee-data/tuio2d/internal/config"
	"github.com/banshee-data/tuio2d/internal/device/serialmux"
)

// PortOptionsFromConfig reads the wrapper-specific <baud_rate>,
// <data_bits>, <stop_bits>, and <parity> device options (spec §6 "device
// specific options appear only when the corresponding wrapper is
// instantiated") into a serialmux.PortOptions, leaving unset fields to
// PortOptions.Normalize's defaults.
func PortOptionsFromConfig(wc *config.WrapperConfig) serialmux.PortOptions {
	var opts serialmux.PortOptions
	if wc == nil {
		return opts
	}
	for _, opt := range wc.DeviceOptions {
		switch opt.XMLName.Local {
		case "baud_rate":
			if v, err := strconv.Atoi(opt.Value); err == nil {
				opts.BaudRate = v
			}
		case "data_bits":
			if v, err := strconv.Atoi(opt.Value); err == nil {
				opts.DataBits = v
			}
		case "stop_bits":
			if v, err := strconv.Atoi(opt.Value); err == nil {
				opts.StopBits = v
			}
		case "parity":
			opts.Parity = opt.Value
		}
	}
	return opts
}
