package topology

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/banshee-data/tuio2d/internal/messages"
)

// Stager accepts one payload message into the caller's current frame
// staging buffer. *server.Server satisfies this.
type Stager interface {
	Stage(msg messages.Message)
}

// Config describes the static topology to publish and how often.
type Config struct {
	Sensors    []*messages.Sensor
	Viewports  []*messages.Viewport
	Groups     []*messages.Group
	Neighbours []*messages.Neighbour
	// Interval is how often the topology is re-staged (e.g. every 5s).
	Interval time.Duration
	// Logger is optional; if nil, uses log.Default().
	Logger *log.Logger
}

// Publisher periodically re-stages a sensor's static topology metadata so
// late-joining clients (and clients that missed an earlier bundle) still
// learn the sensor/viewport/group/neighbour relationships, without the
// topology needing to be restated on every single frame.
type Publisher struct {
	cfg     Config
	logger  *log.Logger
	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewPublisher creates a Publisher for the given static topology.
func NewPublisher(cfg Config) *Publisher {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Publisher{
		cfg:    cfg,
		logger: logger,
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Run stages the topology once immediately, then again every Interval,
// until ctx is cancelled or Stop is called. Returns nil on clean shutdown.
func (p *Publisher) Run(ctx context.Context, stage Stager) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = true
	p.stopCh = make(chan struct{})
	p.doneCh = make(chan struct{})
	p.mu.Unlock()

	defer func() {
		close(p.doneCh)
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
	}()

	if p.cfg.Interval <= 0 {
		p.logger.Printf("topology.Publisher: interval is zero or negative, not starting")
		return nil
	}

	p.publish(stage)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.logger.Printf("topology.Publisher started: interval=%v", p.cfg.Interval)

	for {
		select {
		case <-ctx.Done():
			p.logger.Printf("topology.Publisher stopping due to context cancellation")
			return nil
		case <-p.stopCh:
			p.logger.Printf("topology.Publisher stopping due to Stop() call")
			return nil
		case <-ticker.C:
			p.publish(stage)
		}
	}
}

// Stop requests the publisher to stop. Safe to call multiple times.
func (p *Publisher) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
	p.mu.Unlock()
	<-p.doneCh
}

// IsRunning reports whether the publisher's Run loop is active.
func (p *Publisher) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// PublishNow stages the topology immediately, outside the regular interval.
func (p *Publisher) PublishNow(stage Stager) {
	p.publish(stage)
}

func (p *Publisher) publish(stage Stager) {
	for _, s := range p.cfg.Sensors {
		stage.Stage(s.Clone())
	}
	for _, v := range p.cfg.Viewports {
		stage.Stage(v.Clone())
	}
	for _, g := range p.cfg.Groups {
		stage.Stage(g.Clone())
	}
	for _, n := range p.cfg.Neighbours {
		stage.Stage(n.Clone())
	}
	p.logger.Printf("topology.Publisher: staged %d sensors, %d viewports, %d groups, %d neighbours",
		len(p.cfg.Sensors), len(p.cfg.Viewports), len(p.cfg.Groups), len(p.cfg.Neighbours))
}
