// Package wire implements the bundle/record wire codec: OSC-style message
// framing (path, type tags, arguments) nested inside a "#bundle\0" / timetag
// / size-prefixed-payload envelope, plus a path-keyed Registry that expands
// decoded records back into the internal/messages catalogue.
package wire
