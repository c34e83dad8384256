// Package sweeper removes expired temporary grants periodically.
package sweeper

import (
	"context"
	"time"

	"github.com/go-logr/logr"
)

// DefaultInterval is how often grants are swept when no interval is given
const DefaultInterval = time.Minute

// Target is swept on every tick
type Target interface {
	SweepExpired() int
}

// Start sweeps target every interval until ctx is done.
// The returned channel is closed once the sweeping goroutine has returned.
func Start(ctx context.Context, target Target, interval time.Duration, l logr.Logger) <-chan struct{} {
	if interval <= 0 {
		interval = DefaultInterval
	}
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		l.V(4).Info("start sweeping", "interval", interval)
		for {
			select {
			case <-ctx.Done():
				l.V(4).Info("stop sweeping", "reason", ctx.Err())
				return
			case <-ticker.C:
				if n := target.SweepExpired(); n > 0 {
					l.V(4).Info("swept expired grants", "grants", n)
				}
			}
		}
	}()

	return done
}
