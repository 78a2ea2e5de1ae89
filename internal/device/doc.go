// Package device defines the raw input-event boundary the tracker consumes
// (spec §1: device enumeration and file-descriptor I/O are external
// collaborators, only their interface to the core is specified) and the
// concrete source that produces that stream from a serial-attached touch
// controller (internal/device/serialmt). The trace-file replay source that
// also satisfies RawEventSource lives in internal/trace.
package device
