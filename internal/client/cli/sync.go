package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/momentumos/momentum/internal/client/sync"
)

func (c *Cli) runSync(ctx context.Context) error {
	if !c.syncService.IsOnline() {
		return fmt.Errorf("backend unreachable, queued mutations will sync when connectivity returns")
	}

	result, err := c.syncService.Flush(ctx)
	if err != nil {
		if errors.Is(err, sync.ErrFlushInFlight) {
			c.io.Println("Sync already running.")
			return nil
		}
		return fmt.Errorf("sync failed: %w", err)
	}

	c.io.Printf("Applied:      %d\n", result.Applied)
	c.io.Printf("Still queued: %d\n", result.Remaining)
	if result.DeadLettered > 0 {
		c.io.Printf("Rejected:     %d (see 'momentum status')\n", result.DeadLettered)
	}
	return nil
}
