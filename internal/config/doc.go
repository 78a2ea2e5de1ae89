// Package config loads the wrapper driver's startup configuration: an XML
// muse_config document (spec §6) describing one or more wrapper instances,
// each carrying generic and device-specific options plus a per-sensor
// topology declaration, and an embedded JSON tuning sub-document for
// tracker and adaptor knobs.
package config
