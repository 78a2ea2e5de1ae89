package server

import "net"

// UDPSender abstracts sending a datagram to the server's configured target,
// so the staging buffer can be exercised in tests without a real socket
// (grounded on the teacher's UDPSocket/UDPSocketFactory seam).
type UDPSender interface {
	Write(b []byte) (int, error)
	Close() error
}

// UDPSenderFactory creates a UDPSender bound to an address.
type UDPSenderFactory interface {
	DialUDP(network, address string) (UDPSender, error)
}

// RealUDPSender wraps *net.UDPConn.
type RealUDPSender struct {
	conn *net.UDPConn
}

func (r *RealUDPSender) Write(b []byte) (int, error) { return r.conn.Write(b) }
func (r *RealUDPSender) Close() error                { return r.conn.Close() }

// RealUDPSenderFactory dials real UDP sockets via net.DialUDP.
type RealUDPSenderFactory struct{}

// DialUDP resolves address and dials a UDP socket to it.
func (RealUDPSenderFactory) DialUDP(network, address string) (UDPSender, error) {
	addr, err := net.ResolveUDPAddr(network, address)
	if err != nil {
		return nil, err
	}
	conn, err := net.DialUDP(network, nil, addr)
	if err != nil {
		return nil, err
	}
	return &RealUDPSender{conn: conn}, nil
}

// MockUDPSender records every datagram written to it, for tests.
type MockUDPSender struct {
	Sent   [][]byte
	Closed bool
	// WriteError, when set, is returned (and cleared) on the next Write.
	WriteError error
}

// Write records a copy of b and returns its length.
func (m *MockUDPSender) Write(b []byte) (int, error) {
	if m.WriteError != nil {
		err := m.WriteError
		m.WriteError = nil
		return 0, err
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	m.Sent = append(m.Sent, cp)
	return len(b), nil
}

// Close marks the mock sender closed.
func (m *MockUDPSender) Close() error {
	m.Closed = true
	return nil
}

// MockUDPSenderFactory always returns the same pre-built MockUDPSender.
type MockUDPSenderFactory struct {
	Sender *MockUDPSender
}

// DialUDP returns the configured mock sender.
func (f MockUDPSenderFactory) DialUDP(network, address string) (UDPSender, error) {
	return f.Sender, nil
}
