package local

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/momentumos/momentum/internal/models"
)

// UpsertExpense inserts or replaces an expense row.
func (s *Store) UpsertExpense(ctx context.Context, expense *models.Expense) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, user_id, amount, note, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			amount = excluded.amount,
			note = excluded.note,
			date = excluded.date`,
		expense.ID, expense.UserID, expense.Amount, expense.Note, expense.Date, expense.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert expense: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense from the mirror.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// ListExpenses returns the user's expenses between fromDate and toDate
// (inclusive), newest first.
func (s *Store) ListExpenses(ctx context.Context, userID, fromDate, toDate string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, amount, note, date, created_at
		FROM expenses WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date DESC, created_at DESC`, userID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Note, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// MonthTotal sums expenses between fromDate and toDate (inclusive).
func (s *Store) MonthTotal(ctx context.Context, userID, fromDate, toDate string) (float64, error) {
	var total sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT SUM(amount) FROM expenses
		WHERE user_id = ? AND date >= ? AND date <= ?`, userID, fromDate, toDate).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total.Float64, nil
}

// SetBudget inserts or replaces a budget row keyed on (user_id, category).
func (s *Store) SetBudget(ctx context.Context, budget *models.Budget) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, user_id, category, limit_amount)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, category) DO UPDATE SET limit_amount = excluded.limit_amount`,
		budget.ID, budget.UserID, budget.Category, budget.LimitAmount)
	if err != nil {
		return fmt.Errorf("failed to set budget: %w", err)
	}
	return nil
}

// GetBudget returns the user's budget for the category, or nil if unset.
func (s *Store) GetBudget(ctx context.Context, userID, category string) (*models.Budget, error) {
	var b models.Budget
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, category, limit_amount
		FROM budgets WHERE user_id = ? AND category = ?`, userID, category).
		Scan(&b.ID, &b.UserID, &b.Category, &b.LimitAmount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &b, nil
}

// SaveProfile inserts or replaces the user's profile row.
func (s *Store) SaveProfile(ctx context.Context, profile *models.Profile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (id, freezes_available)
		VALUES (?, ?)
		ON CONFLICT (id) DO UPDATE SET freezes_available = excluded.freezes_available`,
		profile.ID, profile.FreezesAvailable)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile returns the user's profile row, or nil if not mirrored yet.
func (s *Store) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	err := s.db.QueryRowContext(ctx, `
		SELECT id, freezes_available FROM profiles WHERE id = ?`, userID).
		Scan(&p.ID, &p.FreezesAvailable)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}
