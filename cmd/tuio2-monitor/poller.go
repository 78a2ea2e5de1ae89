package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// statusResponse mirrors internal/debugstream's /api/debug/status payload.
type statusResponse struct {
	NextFrameID uint32 `json:"next_frame_id"`
	AliveCount  int    `json:"alive_count"`
}

// sample is one polled data point.
type sample struct {
	at         time.Time
	aliveCount int
}

// Poller periodically fetches a debugstream sidecar's status endpoint and
// keeps a bounded history for charting, the same role the teacher's
// PacketStats snapshot plays for its traffic chart.
type Poller struct {
	sourceURL string
	client    *http.Client
	capacity  int

	mu      sync.Mutex
	history []sample
}

// NewPoller targets sourceURL (a debugstream base address) and retains up
// to capacity samples.
func NewPoller(sourceURL string, capacity int) *Poller {
	return &Poller{
		sourceURL: sourceURL,
		client:    &http.Client{Timeout: 2 * time.Second},
		capacity:  capacity,
	}
}

// Run polls every interval until ctx is cancelled.
func (p *Poller) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll()
		}
	}
}

func (p *Poller) poll() {
	resp, err := p.client.Get(p.sourceURL + "/api/debug/status")
	if err != nil {
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return
	}

	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.history = append(p.history, sample{at: time.Now(), aliveCount: status.AliveCount})
	if len(p.history) > p.capacity {
		p.history = p.history[len(p.history)-p.capacity:]
	}
}

// Snapshot returns a copy of the current history, oldest first.
func (p *Poller) Snapshot() []sample {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]sample, len(p.history))
	copy(out, p.history)
	return out
}

func (s sample) label() string {
	return fmt.Sprintf("%02d:%02d:%02d", s.at.Hour(), s.at.Minute(), s.at.Second())
}
