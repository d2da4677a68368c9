package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/momentumos/momentum/internal/client/storage"
	"github.com/momentumos/momentum/internal/models"
)

const (
	// keyPending holds the entire pending-mutation array as one value.
	// Whole-array read-modify-write keeps flush persistence atomic: a
	// crash mid-pass reverts to the pre-pass queue.
	keyPending = "pending"

	// keyDeadLetters holds the dead-letter array.
	keyDeadLetters = "letters"
)

// LoadQueue returns the full pending queue in enqueue order.
func (s *Storage) LoadQueue(ctx context.Context) ([]models.QueuedMutation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var queue []models.QueuedMutation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(keyPending))
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &queue); err != nil {
			return fmt.Errorf("failed to unmarshal queue: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}

	return queue, nil
}

// SaveQueue replaces the persisted queue with the given sequence.
func (s *Storage) SaveQueue(ctx context.Context, queue []models.QueuedMutation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if queue == nil {
		queue = []models.QueuedMutation{}
	}

	data, err := json.Marshal(queue)
	if err != nil {
		return fmt.Errorf("failed to marshal queue: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketQueue)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		if err := bucket.Put([]byte(keyPending), data); err != nil {
			return fmt.Errorf("failed to save queue: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// AppendDeadLetters adds terminally failed mutations to the dead-letter
// list.
func (s *Storage) AppendDeadLetters(ctx context.Context, letters []models.DeadLetter) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if len(letters) == 0 {
		return nil
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketDeadLetter)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}

		var existing []models.DeadLetter
		if data := bucket.Get([]byte(keyDeadLetters)); data != nil {
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("failed to unmarshal dead letters: %w", err)
			}
		}

		existing = append(existing, letters...)
		data, err := json.Marshal(existing)
		if err != nil {
			return fmt.Errorf("failed to marshal dead letters: %w", err)
		}

		if err := bucket.Put([]byte(keyDeadLetters), data); err != nil {
			return fmt.Errorf("failed to save dead letters: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// LoadDeadLetters returns the dead-letter list in failure order.
func (s *Storage) LoadDeadLetters(ctx context.Context) ([]models.DeadLetter, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var letters []models.DeadLetter

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDeadLetter)
		if bucket == nil {
			return nil
		}

		data := bucket.Get([]byte(keyDeadLetters))
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &letters); err != nil {
			return fmt.Errorf("failed to unmarshal dead letters: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load dead letters: %w", err)
	}

	return letters, nil
}
