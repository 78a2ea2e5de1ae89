// Package pidlock implements the §6 single-instance lock: a wrapper
// refuses to start if /tmp/<wrapper>_<device-id>.pid names a still-live
// process, and otherwise claims the file for the lifetime of the run.
package pidlock
