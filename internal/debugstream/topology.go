package debugstream

import "github.com/banshee-data/tuio2d/internal/topology"

// TopologySummary is the JSON-friendly view of a topology.Config's static
// sensor/viewport/group/neighbour list.
type TopologySummary struct {
	SensorUUIDs []string `json:"sensor_uuids"`
	Viewports   int      `json:"viewport_count"`
	Groups      int      `json:"group_count"`
	Neighbours  int      `json:"neighbour_count"`
}

// SummarizeTopology builds a TopologySummary from the topology the server
// is publishing, for the /api/debug/topology endpoint.
func SummarizeTopology(cfg topology.Config) TopologySummary {
	uuids := make([]string, 0, len(cfg.Sensors))
	for _, s := range cfg.Sensors {
		uuids = append(uuids, s.UUID.String())
	}
	return TopologySummary{
		SensorUUIDs: uuids,
		Viewports:   len(cfg.Viewports),
		Groups:      len(cfg.Groups),
		Neighbours:  len(cfg.Neighbours),
	}
}
