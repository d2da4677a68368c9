// Package cli implements the terminal commands. Commands are thin: they
// parse arguments, call the services, and print results; all sync and
// scoring behavior lives below.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/momentumos/momentum/internal/client/auth"
	"github.com/momentumos/momentum/internal/client/data"
	"github.com/momentumos/momentum/internal/client/iocli"
	"github.com/momentumos/momentum/internal/client/storage"
	"github.com/momentumos/momentum/internal/client/sync"
)

type Cli struct {
	io          iocli.IO
	authService *auth.Service
	dataService data.Service
	syncService sync.Service
	probe       *sync.Probe
	session     *storage.Session
}

func New(io iocli.IO, authService *auth.Service, dataService data.Service, syncService sync.Service, probe *sync.Probe) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		dataService: dataService,
		syncService: syncService,
		probe:       probe,
	}
}

// requireSession restores the persisted session and checks connectivity
// once, so a queue left by a prior run gets flushed before the command.
func (c *Cli) requireSession(ctx context.Context) error {
	session, err := c.authService.Restore(ctx)
	if err != nil {
		return err
	}
	c.session = session
	c.probe.Check(ctx)
	return nil
}

// readCredentials collects email and password, preferring the password
// from MOMENTUM_PASSWORD over an interactive prompt.
func (c *Cli) readCredentials() (string, string, error) {
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read email: %w", err)
	}
	if email == "" {
		return "", "", fmt.Errorf("email cannot be empty")
	}

	if password := os.Getenv("MOMENTUM_PASSWORD"); password != "" {
		return email, password, nil
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", "", fmt.Errorf("password cannot be empty")
	}
	return email, password, nil
}

func PrintUsage() {
	fmt.Println("Momentum Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  momentum [OPTIONS] COMMAND [ARGS]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version   Show version information")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  MOMENTUM_API_URL    Backend URL (required)")
	fmt.Println("  MOMENTUM_API_KEY    Project API key")
	fmt.Println("  MOMENTUM_DATA_DIR   Local data directory (default: ~/.momentum)")
	fmt.Println("  MOMENTUM_PASSWORD   Password for login/signup (skips prompt)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                                  Log in")
	fmt.Println("  signup                                 Register a new account")
	fmt.Println("  logout                                 Drop the stored session")
	fmt.Println("  status                                 Connectivity, pending and failed mutations")
	fmt.Println("  sync                                   Flush the pending mutation queue")
	fmt.Println("  dashboard                              Momentum score, level and streaks")
	fmt.Println("  habit add <title> [--days mon,wed]     Add a habit (daily unless --days)")
	fmt.Println("  habit list                             List habits")
	fmt.Println("  habit done <id>                        Mark a habit completed today")
	fmt.Println("  habit rm <id>                          Delete a habit")
	fmt.Println("  task add <title>                       Add a task")
	fmt.Println("  task list                              List tasks")
	fmt.Println("  task done <id>                         Complete a task")
	fmt.Println("  task rm <id>                           Delete a task")
	fmt.Println("  expense add <amount> [note] [date]     Record an expense")
	fmt.Println("  expense list                           List this month's expenses")
	fmt.Println("  budget set <amount>                    Set the monthly budget")
	fmt.Println("  budget show                            Show the monthly budget and spend")
	fmt.Println("  watch                                  Keep syncing until interrupted")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  momentum login")
	fmt.Println("  momentum habit add \"Morning run\" --days mon,wed,fri")
	fmt.Println("  momentum habit done 2f1c...")
	fmt.Println("  momentum expense add 12.50 \"coffee\"")
	fmt.Println("  momentum dashboard")
}
