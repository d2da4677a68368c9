package cli

import (
	"context"
	"fmt"
)

// Run dispatches one command. Commands that mutate or read user data
// restore the session first; login/signup/logout manage it themselves.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "signup":
		return c.runSignUp(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "sync":
		if err := c.requireSession(ctx); err != nil {
			return err
		}
		return c.runSync(ctx)
	case "dashboard":
		if err := c.requireSession(ctx); err != nil {
			return err
		}
		return c.runDashboard(ctx)
	case "habit":
		if err := c.requireSession(ctx); err != nil {
			return err
		}
		return c.runHabit(ctx, args)
	case "task":
		if err := c.requireSession(ctx); err != nil {
			return err
		}
		return c.runTask(ctx, args)
	case "expense":
		if err := c.requireSession(ctx); err != nil {
			return err
		}
		return c.runExpense(ctx, args)
	case "budget":
		if err := c.requireSession(ctx); err != nil {
			return err
		}
		return c.runBudget(ctx, args)
	case "watch":
		if err := c.requireSession(ctx); err != nil {
			return err
		}
		return c.runWatch(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
