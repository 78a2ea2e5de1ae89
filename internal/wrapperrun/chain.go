package wrapperrun

import (
	"path/filepath"

	"github.com/banshee-data/tuio2d/internal/adaptor"
	"github.com/banshee-data/tuio2d/internal/config"
)

// rawAxisMax is the upper bound of a Type-B ABS_MT_POSITION_X/Y report that
// BuildChain assumes for every device; axis ranges declared in a trace
// file's axis-range records are not consulted.
const rawAxisMax = 4095.0

// BuildChain assembles the per-wrapper adaptor chain from a wrapper's
// config: a Scale stage mapping a raw axis range of 0..rawAxisMax onto the
// first configured sensor's viewport, unless transforms are disabled
// (spec §5 scaling adaptor; spec §6 flag -T).
func BuildChain(wc *config.WrapperConfig, disableTransform bool) *adaptor.Chain {
	chain := &adaptor.Chain{}
	if disableTransform || wc == nil || len(wc.Sensors) == 0 {
		return chain
	}
	vp := wc.Sensors[0].Viewport
	chain.Stages = append(chain.Stages, adaptor.Scale{
		X: vp.Width / rawAxisMax,
		Y: vp.Height / rawAxisMax,
		Z: 1,
	})
	return chain
}

// DeviceID derives the pidfile device-id suffix from a device path,
// mirroring the original wrapper's basename-based pidfile naming.
func DeviceID(devicePath string) string {
	base := filepath.Base(devicePath)
	if base == "." || base == "/" {
		return "default"
	}
	return base
}
