package local

import (
	"context"
	"fmt"

	"github.com/momentumos/momentum/internal/models"
)

// UpsertTask inserts or replaces a task row.
func (s *Store) UpsertTask(ctx context.Context, task *models.Task) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, user_id, title, done, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			done = excluded.done`,
		task.ID, task.UserID, task.Title, task.Done, task.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert task: %w", err)
	}
	return nil
}

// ListTasks returns the user's tasks, open ones first.
func (s *Store) ListTasks(ctx context.Context, userID string) ([]*models.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, done, created_at
		FROM tasks WHERE user_id = ? ORDER BY done, created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Done, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// SetTaskDone flips the done flag on a task.
func (s *Store) SetTaskDone(ctx context.Context, id string, done bool) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE tasks SET done = ? WHERE id = ?`, done, id); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// DeleteTask removes a task from the mirror.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
