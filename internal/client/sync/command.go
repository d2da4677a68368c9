package sync

import (
	"context"
	"log/slog"

	"github.com/momentumos/momentum/internal/models"
)

// Command pairs an optimistic local state change with the remote
// mutation that makes it durable. The dispatcher applies the local
// change first, then hands the mutation to the queue; if the queue
// reports a terminal rejection the local change is reverted. Every
// call site gets the same apply/attempt/revert sequence instead of
// hand-rolling its own copy/restore logic.
type Command struct {
	// Apply performs the optimistic local change. Optional.
	Apply func(ctx context.Context) error

	// Revert undoes the optimistic change after a terminal rejection.
	// Optional, but expected whenever Apply is set.
	Revert func(ctx context.Context) error

	Payload      map[string]any
	Target       string
	Op           models.Operation
	ConflictKeys []string
}

// Dispatcher executes optimistic commands against a sync service.
type Dispatcher struct {
	sync   Service
	logger *slog.Logger
}

// NewDispatcher creates a command dispatcher.
func NewDispatcher(syncService Service, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{sync: syncService, logger: logger}
}

// Do applies the command locally, queues the remote mutation, and
// reverts the local change if the mutation is rejected terminally.
// A deferred (queued offline) mutation is success from the caller's
// point of view.
func (d *Dispatcher) Do(ctx context.Context, cmd Command) error {
	if cmd.Apply != nil {
		if err := cmd.Apply(ctx); err != nil {
			return err
		}
	}

	var err error
	if cmd.Op == models.OpUpsert {
		err = d.sync.QueueUpsert(ctx, cmd.Target, cmd.Payload, cmd.ConflictKeys)
	} else {
		err = d.sync.QueueAction(ctx, cmd.Target, cmd.Op, cmd.Payload)
	}
	if err == nil {
		return nil
	}

	if cmd.Revert != nil {
		if revertErr := cmd.Revert(ctx); revertErr != nil {
			d.logger.Error("failed to revert optimistic change",
				"target", cmd.Target,
				"operation", cmd.Op,
				"error", revertErr)
		}
	}
	return err
}
