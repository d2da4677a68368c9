package cli

import (
	"context"
	"errors"
)

// runWatch keeps the client syncing: the probe feeds connectivity
// transitions and the sync service drains the queue in the background.
// Blocks until the context is cancelled.
func (c *Cli) runWatch(ctx context.Context) error {
	c.io.Println("Watching for connectivity, press Ctrl-C to stop.")

	go func() {
		if err := c.syncService.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			c.io.Printf("sync loop stopped: %v\n", err)
		}
	}()

	if err := c.probe.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
