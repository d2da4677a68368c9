// Package sync implements the offline-first mutation queue. Writes are
// executed directly while online; on direct failure or while offline
// they are persisted to a durable local queue and replayed in enqueue
// order on reconnect. Delivery is at-least-once: a mutation leaves the
// queue only when the remote store confirms it.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	httpclient "github.com/momentumos/momentum/internal/client/api"
	"github.com/momentumos/momentum/internal/client/storage"
	"github.com/momentumos/momentum/internal/models"
)

//go:generate go tool moq -out service_mock.go . Service

// ErrFlushInFlight is returned when a flush is requested while another
// pass is running. The request is dropped, not queued; the next
// connectivity transition or drain tick retries naturally.
var ErrFlushInFlight = errors.New("flush already in progress")

// ErrMissingPayloadID is returned when an UPDATE or DELETE payload does
// not carry the target row's identifier.
var ErrMissingPayloadID = errors.New("payload must carry the target row id")

// Service is the mutation sync queue.
type Service interface {
	// QueueAction executes the mutation directly when online; on direct
	// transient failure, or while offline, it persists the mutation for
	// later replay and returns nil. Terminal remote rejections of the
	// direct attempt are returned so the caller can roll back optimistic
	// state.
	QueueAction(ctx context.Context, target string, op models.Operation, payload map[string]any) error

	// QueueUpsert is QueueAction for the upsert path (habit logs keyed
	// on habit_id+date).
	QueueUpsert(ctx context.Context, target string, payload map[string]any, conflictKeys []string) error

	// Flush replays the full queue once, in enqueue order, and persists
	// the residual. Returns ErrFlushInFlight when a pass is running.
	Flush(ctx context.Context) (*FlushResult, error)

	// Run drains the queue in the background with capped exponential
	// backoff between passes while online. Blocks until ctx is done.
	Run(ctx context.Context) error

	// SetOnline records a connectivity transition. Going from offline
	// to online triggers exactly one flush attempt.
	SetOnline(ctx context.Context, online bool)

	// IsOnline reports the current connectivity flag.
	IsOnline() bool

	// PendingCount returns the number of queued mutations, for the
	// status indicator.
	PendingCount(ctx context.Context) (int, error)

	// DeadLetters returns mutations that were rejected terminally.
	DeadLetters(ctx context.Context) ([]models.DeadLetter, error)
}

// FlushResult describes one flush pass.
type FlushResult struct {
	Applied      int // mutations confirmed by the remote store
	Remaining    int // transient failures left queued for the next pass
	DeadLettered int // terminal rejections moved to the dead-letter list
}

type service struct {
	apiClient    httpclient.ClientAPI
	queueStorage storage.QueueStorage
	logger       *slog.Logger
	drainTick    time.Duration
	online       atomic.Bool
	flushing     atomic.Bool
}

// NewService creates a new sync service. Connectivity starts offline:
// the probe's first successful check is an offline-to-online transition,
// which flushes any queue persisted by a prior session.
func NewService(apiClient httpclient.ClientAPI, queueStorage storage.QueueStorage, logger *slog.Logger) Service {
	return &service{
		apiClient:    apiClient,
		queueStorage: queueStorage,
		logger:       logger,
		drainTick:    15 * time.Second,
	}
}

func (s *service) QueueAction(ctx context.Context, target string, op models.Operation, payload map[string]any) error {
	return s.queueOrExecute(ctx, models.QueuedMutation{
		Target:    target,
		Operation: op,
		Payload:   payload,
	})
}

func (s *service) QueueUpsert(ctx context.Context, target string, payload map[string]any, conflictKeys []string) error {
	return s.queueOrExecute(ctx, models.QueuedMutation{
		Target:       target,
		Operation:    models.OpUpsert,
		Payload:      payload,
		ConflictKeys: conflictKeys,
	})
}

func (s *service) queueOrExecute(ctx context.Context, m models.QueuedMutation) error {
	if m.Operation == models.OpUpdate || m.Operation == models.OpDelete {
		if _, ok := m.PayloadID(); !ok {
			return ErrMissingPayloadID
		}
	}

	if s.online.Load() {
		err := s.execute(ctx, m)
		if err == nil {
			return nil
		}
		if httpclient.IsTerminal(err) {
			// Replaying a permanent rejection will never succeed;
			// surface it so the caller can revert optimistic state.
			return err
		}
		s.logger.Warn("direct execution failed, queueing mutation",
			"target", m.Target,
			"operation", m.Operation,
			"error", err)
	}

	m.ID = uuid.New().String()
	m.EnqueuedAt = time.Now().UnixMilli()

	queue, err := s.queueStorage.LoadQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to load queue: %w", err)
	}
	queue = append(queue, m)
	if err := s.queueStorage.SaveQueue(ctx, queue); err != nil {
		return fmt.Errorf("failed to persist queue: %w", err)
	}

	s.logger.Info("mutation queued",
		"id", m.ID,
		"target", m.Target,
		"operation", m.Operation,
		"pending", len(queue))
	return nil
}

// Flush replays the full queue once. The residual queue is persisted
// exactly once per pass, after all items were attempted, so a crash
// mid-pass reverts to the pre-pass queue and nothing is lost.
func (s *service) Flush(ctx context.Context) (*FlushResult, error) {
	if !s.flushing.CompareAndSwap(false, true) {
		return nil, ErrFlushInFlight
	}
	defer s.flushing.Store(false)

	queue, err := s.queueStorage.LoadQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}
	if len(queue) == 0 {
		return &FlushResult{}, nil
	}

	s.logger.Info("starting flush pass", "pending", len(queue))

	result := &FlushResult{}
	var residual []models.QueuedMutation
	var dead []models.DeadLetter

	for _, m := range queue {
		err := s.execute(ctx, m)
		switch {
		case err == nil:
			result.Applied++
		case httpclient.IsTerminal(err):
			s.logger.Warn("mutation rejected, moving to dead letters",
				"id", m.ID,
				"target", m.Target,
				"error", err)
			dead = append(dead, models.DeadLetter{
				Mutation: m,
				Reason:   err.Error(),
				FailedAt: time.Now().UnixMilli(),
			})
			result.DeadLettered++
		default:
			s.logger.Warn("mutation failed, keeping queued",
				"id", m.ID,
				"target", m.Target,
				"error", err)
			residual = append(residual, m)
			result.Remaining++
		}
	}

	if err := s.queueStorage.SaveQueue(ctx, residual); err != nil {
		return nil, fmt.Errorf("failed to persist residual queue: %w", err)
	}
	if err := s.queueStorage.AppendDeadLetters(ctx, dead); err != nil {
		return nil, fmt.Errorf("failed to persist dead letters: %w", err)
	}

	s.logger.Info("flush pass completed",
		"applied", result.Applied,
		"remaining", result.Remaining,
		"dead_lettered", result.DeadLettered)
	return result, nil
}

// execute performs one mutation against the remote store.
func (s *service) execute(ctx context.Context, m models.QueuedMutation) error {
	switch m.Operation {
	case models.OpInsert:
		return s.apiClient.Insert(ctx, m.Target, []map[string]any{m.Payload})
	case models.OpUpdate:
		id, ok := m.PayloadID()
		if !ok {
			return ErrMissingPayloadID
		}
		return s.apiClient.Update(ctx, m.Target, id, m.Payload)
	case models.OpDelete:
		id, ok := m.PayloadID()
		if !ok {
			return ErrMissingPayloadID
		}
		return s.apiClient.Delete(ctx, m.Target, id)
	case models.OpUpsert:
		return s.apiClient.Upsert(ctx, m.Target, m.Payload, m.ConflictKeys)
	default:
		return fmt.Errorf("unknown operation %q", m.Operation)
	}
}

func (s *service) SetOnline(ctx context.Context, online bool) {
	was := s.online.Swap(online)
	if was == online {
		return
	}

	if online {
		s.logger.Info("connectivity restored")
		if _, err := s.Flush(ctx); err != nil && !errors.Is(err, ErrFlushInFlight) {
			s.logger.Warn("flush on reconnect failed", "error", err)
		}
		return
	}
	s.logger.Info("connectivity lost")
}

func (s *service) IsOnline() bool {
	return s.online.Load()
}

func (s *service) PendingCount(ctx context.Context) (int, error) {
	queue, err := s.queueStorage.LoadQueue(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load queue: %w", err)
	}
	return len(queue), nil
}

func (s *service) DeadLetters(ctx context.Context) ([]models.DeadLetter, error) {
	letters, err := s.queueStorage.LoadDeadLetters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dead letters: %w", err)
	}
	return letters, nil
}

// Run drains the queue in the background. Each tick with pending work
// starts a drain cycle that retries flush passes with capped exponential
// backoff until the queue is empty or retries are exhausted.
func (s *service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.drainTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !s.online.Load() {
				continue
			}
			pending, err := s.PendingCount(ctx)
			if err != nil {
				s.logger.Warn("failed to read pending count", "error", err)
				continue
			}
			if pending == 0 {
				continue
			}
			if err := s.drain(ctx); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Warn("drain cycle ended with pending mutations", "error", err)
			}
		}
	}
}

func (s *service) drain(ctx context.Context) error {
	backoff := retry.WithMaxRetries(5,
		retry.WithCappedDuration(30*time.Second,
			retry.NewExponential(500*time.Millisecond)))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		result, err := s.Flush(ctx)
		if err != nil {
			if errors.Is(err, ErrFlushInFlight) {
				return nil
			}
			return retry.RetryableError(err)
		}
		if result.Remaining > 0 {
			return retry.RetryableError(fmt.Errorf("%d mutations still pending", result.Remaining))
		}
		return nil
	})
}
