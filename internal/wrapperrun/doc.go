// Package wrapperrun is the generic wrapper-driver CLI surface and event
// loop shared by cmd/tuio2-wrapper and cmd/tuio2-serialmt (spec §6): flag
// parsing, the PID-file device-id suffix (DeviceID; the lock itself is
// internal/pidlock), the single-threaded cooperative event loop
// that drives a device.RawEventSource through the tracker and adaptor
// chain into the server, and the exit-code convention (0 success, 1
// config error, 2 device error, 3 runtime failure).
package wrapperrun
