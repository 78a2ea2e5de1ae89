package debugstream

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/tuio2d/internal/messages"
	"github.com/banshee-data/tuio2d/internal/topology"
)

type fakeSnapshotter struct {
	frameID messages.FrameID
	alive   []messages.SessionID
}

func (f fakeSnapshotter) Snapshot() (messages.FrameID, []messages.SessionID) {
	return f.frameID, f.alive
}

func newTestServer() *Server {
	cfg := topology.Config{
		Sensors: []*messages.Sensor{{UUID: uuid.MustParse("00000000-0000-0000-0000-000000000001")}},
	}
	return NewServer(":0", fakeSnapshotter{frameID: 12, alive: []messages.SessionID{1, 2}}, SummarizeTopology(cfg))
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	s.handleHealth(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleStatus(t *testing.T) {
	s := newTestServer()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/debug/status", nil)
	s.handleStatus(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, float64(12), body["next_frame_id"])
	assert.Equal(t, float64(2), body["alive_count"])
}

func TestHandleStatus_NoServerAttached(t *testing.T) {
	s := NewServer(":0", nil, TopologySummary{})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/debug/status", nil)
	s.handleStatus(rr, req)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestHandleTopology(t *testing.T) {
	s := newTestServer()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/debug/topology", nil)
	s.handleTopology(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var summary TopologySummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	require.Len(t, summary.SensorUUIDs, 1)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", summary.SensorUUIDs[0])
}
