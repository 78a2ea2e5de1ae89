// Package debugstream is a read-only HTTP/JSON introspection sidecar: the
// current frame id, the alive session-id set, and the sensor topology's
// static message list. It is a debugging aid, not part of the wire
// protocol, and carries no write path into the server.
package debugstream
