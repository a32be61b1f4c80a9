// internal/bridge/runner.go
package bridge

import (
	"context"
	"log"
	"time"
)

// Run starts the ticker loop. One goroutine, no overlap, no retries:
// a failed cycle is logged and the next tick starts fresh.
func (b *Bridge) Run(ctx context.Context) {
	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := b.PollOnce(); err != nil {
				log.Printf("bridge poll failed: %v", err)
			}
		}
	}
}
