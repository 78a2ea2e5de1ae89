package topology

import (
	"bytes"
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/banshee-data/tuio2d/internal/messages"
)

type mockStager struct {
	mu     sync.Mutex
	staged []messages.Message
}

func (m *mockStager) Stage(msg messages.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.staged = append(m.staged, msg)
}

func (m *mockStager) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.staged)
}

func testTopology() Config {
	return Config{
		Sensors:    []*messages.Sensor{{UUID: messages.UUID{1}}},
		Viewports:  []*messages.Viewport{{UUID: messages.UUID{1}, Width: 1920, Height: 1080}},
		Groups:     []*messages.Group{{UUID: messages.UUID{1}, GroupUUID: messages.UUID{2}}},
		Neighbours: []*messages.Neighbour{{UUID: messages.UUID{1}, NeighbourUUID: messages.UUID{3}}},
	}
}

func TestPublisher_Run_ZeroInterval(t *testing.T) {
	var logBuf bytes.Buffer
	cfg := testTopology()
	cfg.Interval = 0
	cfg.Logger = log.New(&logBuf, "", 0)

	pub := NewPublisher(cfg)
	stager := &mockStager{}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := pub.Run(ctx, stager); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !bytes.Contains(logBuf.Bytes(), []byte("interval is zero")) {
		t.Error("expected log message about zero interval")
	}
	if stager.count() != 0 {
		t.Errorf("expected no staged messages, got %d", stager.count())
	}
}

func TestPublisher_Run_StagesImmediatelyThenPeriodically(t *testing.T) {
	cfg := testTopology()
	cfg.Interval = 30 * time.Millisecond

	pub := NewPublisher(cfg)
	stager := &mockStager{}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := pub.Run(ctx, stager); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// One immediate publish plus at least one tick, 4 messages each time.
	if stager.count() < 8 {
		t.Errorf("expected at least 8 staged messages, got %d", stager.count())
	}
}

func TestPublisher_Stop(t *testing.T) {
	cfg := testTopology()
	cfg.Interval = time.Hour

	pub := NewPublisher(cfg)
	stager := &mockStager{}

	runDone := make(chan error, 1)
	go func() { runDone <- pub.Run(context.Background(), stager) }()

	time.Sleep(50 * time.Millisecond)
	if !pub.IsRunning() {
		t.Error("expected publisher to be running")
	}

	pub.Stop()

	select {
	case err := <-runDone:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Error("publisher did not stop in time")
	}

	if pub.IsRunning() {
		t.Error("expected publisher to not be running after Stop()")
	}
	// Immediate publish on Run entry.
	if stager.count() != 4 {
		t.Errorf("expected 4 staged messages from the initial publish, got %d", stager.count())
	}
}

func TestPublisher_Stop_NotRunning(t *testing.T) {
	pub := NewPublisher(testTopology())
	pub.Stop()
}

func TestPublisher_PublishNow(t *testing.T) {
	cfg := testTopology()
	cfg.Interval = time.Hour

	pub := NewPublisher(cfg)
	stager := &mockStager{}

	pub.PublishNow(stager)

	if stager.count() != 4 {
		t.Errorf("expected 4 staged messages, got %d", stager.count())
	}
}

func TestPublisher_Run_AlreadyRunning(t *testing.T) {
	cfg := testTopology()
	cfg.Interval = time.Hour

	pub := NewPublisher(cfg)
	stager := &mockStager{}

	go pub.Run(context.Background(), stager)
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := pub.Run(ctx, stager); err != nil {
		t.Errorf("unexpected error from second Run(): %v", err)
	}
	pub.Stop()
}
