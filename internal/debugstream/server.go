package debugstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/banshee-data/tuio2d/internal/messages"
)

// Snapshotter exposes a server's current frame id and alive session set,
// satisfied by *server.Server without debugstream importing it directly.
type Snapshotter interface {
	Snapshot() (frameID messages.FrameID, alive []messages.SessionID)
}

// Server is a minimal read-only HTTP/JSON introspection sidecar.
type Server struct {
	Addr     string
	Snapshot Snapshotter
	Topology TopologySummary
	httpSrv  *http.Server
}

// NewServer builds a debugstream HTTP server bound to addr.
func NewServer(addr string, snap Snapshotter, topo TopologySummary) *Server {
	s := &Server{Addr: addr, Snapshot: snap, Topology: topo}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/debug/status", s.handleStatus)
	mux.HandleFunc("/api/debug/topology", s.handleTopology)
	s.httpSrv = &http.Server{Addr: addr, Handler: mux}
	return s
}

// ListenAndServe blocks serving HTTP until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.httpSrv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		return s.httpSrv.Shutdown(context.Background())
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if s.Snapshot == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "no server attached")
		return
	}
	frameID, alive := s.Snapshot.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"next_frame_id": frameID,
		"alive":         alive,
		"alive_count":   len(alive),
	})
}

func (s *Server) handleTopology(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Topology)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprint(msg)})
}
