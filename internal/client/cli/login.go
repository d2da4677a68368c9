package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/momentumos/momentum/internal/client/auth"
)

func (c *Cli) runLogin(ctx context.Context) error {
	email, password, err := c.readCredentials()
	if err != nil {
		return err
	}

	session, err := c.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Printf("Logged in as %s\n", session.Email)

	// Flush anything a previous offline session left behind.
	c.probe.Check(ctx)
	if pending, err := c.syncService.PendingCount(ctx); err == nil && pending > 0 {
		c.io.Printf("%d pending mutation(s) from a previous session\n", pending)
	}
	return nil
}

func (c *Cli) runSignUp(ctx context.Context) error {
	email, password, err := c.readCredentials()
	if err != nil {
		return err
	}

	session, err := c.authService.SignUp(ctx, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			c.io.Println("Account created. Confirm your email, then run 'momentum login'.")
			return nil
		}
		return err
	}

	c.io.Printf("Account created, logged in as %s\n", session.Email)
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	c.io.Println("Logged out.")
	return nil
}
