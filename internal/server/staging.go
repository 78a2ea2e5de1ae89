package server

import (
	"fmt"
	"sync"

	"github.com/banshee-data/tuio2d/internal/messages"
	"github.com/banshee-data/tuio2d/internal/wire"
)

// Config configures a Server's outbound connection and frame metadata.
type Config struct {
	Address       string
	SourceAddress uint32
	InstanceID    uint32
	AppName       string
	SensorWidth   float64
	SensorHeight  float64
	Factory       UDPSenderFactory
}

// Server owns the per-frame staging buffer, the outbound socket, and the
// session-id allocator; Commit assembles and sends one bundle per call
// (spec §3: frame, alive, staged payload, in that order).
type Server struct {
	mu      sync.Mutex
	cfg     Config
	sender  UDPSender
	staged  []messages.Message
	alive   map[messages.SessionID]bool
	frameID messages.FrameID
	alloc   *Allocator
}

// NewServer dials the configured target via cfg.Factory (or a real UDP
// socket factory if none is given) and returns a ready-to-use Server.
func NewServer(cfg Config) (*Server, error) {
	factory := cfg.Factory
	if factory == nil {
		factory = RealUDPSenderFactory{}
	}
	sender, err := factory.DialUDP("udp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("server: dial %s: %w", cfg.Address, err)
	}
	return &Server{
		cfg:    cfg,
		sender: sender,
		alive:  make(map[messages.SessionID]bool),
		alloc:  NewAllocator(),
	}, nil
}

// Allocator returns the server's session-id allocator.
func (s *Server) Allocator() *Allocator { return s.alloc }

// Stage appends a payload message (pointer/token/bounds/symbol/area/
// association/sensor-topology) to the current frame's staging buffer. Its
// referenced session ids are added to the frame's alive set.
func (s *Server) Stage(msg messages.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged = append(s.staged, msg)
	for _, id := range messages.ReferencedSessionIDs([]messages.Message{msg}) {
		s.alive[id] = true
	}
}

// MarkReleased removes id from the frame's alive set (the contact will be
// implicitly absent from the next committed bundle's alv message) and
// notifies the allocator that id is awaiting confirmed absence.
func (s *Server) MarkReleased(id messages.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.alive, id)
	s.alloc.Release(id)
}

// Commit assembles a bundle from the current staging buffer and the
// server's alive set, sends it, confirms any pending session-id releases
// against the just-sent alive set, and clears the staging buffer for the
// next frame.
func (s *Server) Commit(tt messages.Timetag) error {
	s.mu.Lock()
	frameID := s.frameID
	s.frameID++
	aliveIDs := make([]messages.SessionID, 0, len(s.alive))
	for id := range s.alive {
		aliveIDs = append(aliveIDs, id)
	}
	sortSessionIDs(aliveIDs)
	payload := s.staged
	s.staged = nil
	s.mu.Unlock()

	frame := &messages.Frame{
		FrameID:       frameID,
		Timetag:       tt,
		SourceAddress: s.cfg.SourceAddress,
		InstanceID:    s.cfg.InstanceID,
		AppName:       s.cfg.AppName,
		SensorWidth:   s.cfg.SensorWidth,
		SensorHeight:  s.cfg.SensorHeight,
	}
	alv := &messages.Alive{SessionIDs: aliveIDs}

	b, err := wire.BuildBundle(tt, frame, alv, payload)
	if err != nil {
		return fmt.Errorf("server: build bundle: %w", err)
	}
	raw, err := wire.EncodeBundle(b)
	if err != nil {
		return fmt.Errorf("server: encode bundle: %w", err)
	}
	if _, err := s.sender.Write(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrSocketSendFailed, err)
	}

	s.alloc.ConfirmAbsent(aliveIDs)
	return nil
}

// Close releases the underlying socket.
func (s *Server) Close() error { return s.sender.Close() }

// Snapshot returns the next frame id to be committed and a copy of the
// current alive set, for read-only introspection (internal/debugstream).
func (s *Server) Snapshot() (nextFrameID messages.FrameID, alive []messages.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	alive = make([]messages.SessionID, 0, len(s.alive))
	for id := range s.alive {
		alive = append(alive, id)
	}
	sortSessionIDs(alive)
	return s.frameID, alive
}

func sortSessionIDs(ids []messages.SessionID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}
