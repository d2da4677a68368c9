package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDashboard(ctx context.Context) error {
	snap, err := c.dataService.RefreshScore(ctx, c.session.UserID)
	if err != nil {
		return fmt.Errorf("failed to refresh score (offline?): %w", err)
	}

	c.io.Println("=== Momentum ===")
	c.io.Printf("Score:   %d (%s)\n", snap.Score, snap.Level)
	c.io.Printf("Budget:  %.2f / %.2f spent this month\n", snap.MonthSpend, snap.Budget)
	c.io.Printf("Freezes: %d\n", snap.Freezes)
	c.io.Println()

	if len(snap.Habits) == 0 {
		c.io.Println("No habits yet. Add one with 'momentum habit add'.")
		return nil
	}

	for _, h := range snap.Habits {
		mark := " "
		if h.CompletedToday {
			mark = "x"
		}
		c.io.Printf("[%s] %-30s streak %d\n", mark, h.Habit.Title, h.Streak)
	}
	return nil
}
