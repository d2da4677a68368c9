package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/momentumos/momentum/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Momentum Status ===")
	c.io.Println()

	session, err := c.authService.Restore(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			c.io.Println("Status: not authenticated")
			c.io.Println("Run 'momentum login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	c.io.Printf("Signed in:     %s\n", session.Email)
	c.io.Printf("Token expires: %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))

	c.probe.Check(ctx)
	if c.syncService.IsOnline() {
		c.io.Println("Connectivity:  online")
	} else {
		c.io.Println("Connectivity:  offline")
	}

	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to read pending count: %w", err)
	}
	if pending > 0 {
		c.io.Printf("Pending sync:  %d mutation(s) waiting\n", pending)
		c.io.Println("Run 'momentum sync' to push them.")
	} else {
		c.io.Println("Pending sync:  none")
	}

	letters, err := c.syncService.DeadLetters(ctx)
	if err != nil {
		return fmt.Errorf("failed to read dead letters: %w", err)
	}
	if len(letters) > 0 {
		c.io.Printf("Failed:        %d mutation(s) rejected by the backend\n", len(letters))
		for _, l := range letters {
			c.io.Printf("  %s %s: %s\n", l.Mutation.Operation, l.Mutation.Target, l.Reason)
		}
	}
	return nil
}
