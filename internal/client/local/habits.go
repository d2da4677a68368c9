package local

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/momentumos/momentum/internal/models"
)

// UpsertHabit inserts or replaces a habit row.
func (s *Store) UpsertHabit(ctx context.Context, habit *models.Habit) error {
	schedule, err := json.Marshal(habit.Schedule)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO habits (id, user_id, title, category, schedule, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			category = excluded.category,
			schedule = excluded.schedule`,
		habit.ID, habit.UserID, habit.Title, habit.Category, string(schedule), habit.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert habit: %w", err)
	}
	return nil
}

// ListHabits returns the user's habits ordered by creation time.
func (s *Store) ListHabits(ctx context.Context, userID string) ([]*models.Habit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, category, schedule, created_at
		FROM habits WHERE user_id = ? ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	var habits []*models.Habit
	for rows.Next() {
		var h models.Habit
		var schedule string
		if err := rows.Scan(&h.ID, &h.UserID, &h.Title, &h.Category, &schedule, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		if err := json.Unmarshal([]byte(schedule), &h.Schedule); err != nil {
			return nil, fmt.Errorf("failed to unmarshal schedule: %w", err)
		}
		habits = append(habits, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}
	return habits, nil
}

// DeleteHabit removes a habit and its logs from the mirror. The remote
// store cascades log deletion server-side; the mirror does the same
// locally so reads stay consistent.
func (s *Store) DeleteHabit(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM habit_logs WHERE habit_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete habit logs: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return tx.Commit()
}

// UpsertLog inserts or replaces a completion log keyed on (habit_id, date).
func (s *Store) UpsertLog(ctx context.Context, log *models.HabitLog) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO habit_logs (habit_id, user_id, date, completed)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (habit_id, date) DO UPDATE SET completed = excluded.completed`,
		log.HabitID, log.UserID, log.Date, log.Completed)
	if err != nil {
		return fmt.Errorf("failed to upsert habit log: %w", err)
	}
	return nil
}

// GetLog returns the log for one habit and date, if any.
func (s *Store) GetLog(ctx context.Context, habitID, date string) (*models.HabitLog, error) {
	var log models.HabitLog
	err := s.db.QueryRowContext(ctx, `
		SELECT habit_id, user_id, date, completed
		FROM habit_logs WHERE habit_id = ? AND date = ?`, habitID, date).
		Scan(&log.HabitID, &log.UserID, &log.Date, &log.Completed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get habit log: %w", err)
	}
	return &log, nil
}

// DeleteLog removes a completion log from the mirror.
func (s *Store) DeleteLog(ctx context.Context, habitID, date string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM habit_logs WHERE habit_id = ? AND date = ?`, habitID, date); err != nil {
		return fmt.Errorf("failed to delete habit log: %w", err)
	}
	return nil
}

// CompletedDates returns the set of dates with a completed log for the
// habit, from sinceDate (inclusive) onward.
func (s *Store) CompletedDates(ctx context.Context, habitID, sinceDate string) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date FROM habit_logs
		WHERE habit_id = ? AND date >= ? AND completed = 1`, habitID, sinceDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query habit logs: %w", err)
	}
	defer rows.Close()

	dates := make(map[string]bool)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan habit log: %w", err)
		}
		dates[date] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habit logs: %w", err)
	}
	return dates, nil
}
