package storage

import (
	"context"

	"github.com/momentumos/momentum/internal/models"
)

//go:generate go tool moq -out queuestorage_mock.go . QueueStorage

// QueueStorage defines the durable store for pending mutations. The
// whole queue is read and written as a single ordered value: a flush
// pass loads the full queue, attempts every item, and persists the
// residual once. There are no per-item transactions.
type QueueStorage interface {
	// LoadQueue returns the full pending queue in enqueue order.
	// An empty queue is returned as a nil or empty slice, not an error.
	LoadQueue(ctx context.Context) ([]models.QueuedMutation, error)

	// SaveQueue replaces the persisted queue with the given sequence.
	SaveQueue(ctx context.Context, queue []models.QueuedMutation) error

	// AppendDeadLetters adds terminally failed mutations to the
	// inspectable dead-letter list.
	AppendDeadLetters(ctx context.Context, letters []models.DeadLetter) error

	// LoadDeadLetters returns the dead-letter list in failure order.
	LoadDeadLetters(ctx context.Context) ([]models.DeadLetter, error)
}
