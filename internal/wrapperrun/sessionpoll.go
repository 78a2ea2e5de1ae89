package wrapperrun

import (
	"context"
	"time"

	"github.com/banshee-data/tuio2d/internal/messages"
	"github.com/banshee-data/tuio2d/internal/sessionlog"
)

// PollSessionLog polls snap.Snapshot every interval and records the
// alive-set diff into log, until ctx is cancelled. It is the bridge
// between the event loop's in-process alive set and the optional
// sessionlog recorder, which has no other way to observe bundles as they
// are committed.
func PollSessionLog(ctx context.Context, log *sessionlog.DB, snap debugstreamSnapshotter, sourceAddr string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var prev *messages.Alive
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			frameID, alive := snap.Snapshot()
			cur := &messages.Alive{SessionIDs: alive}
			if err := log.RecordAliveDiff(prev, cur, frameID, sourceAddr); err != nil {
				continue
			}
			if err := log.RecordBundleSummary(frameID, sourceAddr, len(alive), len(alive)); err != nil {
				continue
			}
			prev = cur
		}
	}
}

// debugstreamSnapshotter mirrors debugstream.Snapshotter, duplicated here
// to avoid wrapperrun depending on debugstream for a single method shape.
type debugstreamSnapshotter interface {
	Snapshot() (frameID messages.FrameID, alive []messages.SessionID)
}
