package server

import "errors"

// ErrSocketSendFailed wraps any error returned while writing an encoded
// bundle to the configured UDPSender (spec §7 socket_send_failed).
var ErrSocketSendFailed = errors.New("socket_send_failed")
