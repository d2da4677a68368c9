package models

import "time"

// Task is a one-off to-do item.
type Task struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
}

// Expense is a single spend record.
type Expense struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Note      string    `json:"note"`
	Date      string    `json:"date"`
	Amount    float64   `json:"amount"`
}

// Budget is a monthly spending ceiling. The remote store keeps one row
// per (user, category); the score engine only consults the "Monthly" one.
type Budget struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Category    string  `json:"category"`
	LimitAmount float64 `json:"limit_amount"`
}

// BudgetCategoryMonthly is the category of the budget row consulted by
// the momentum score.
const BudgetCategoryMonthly = "Monthly"

// DefaultMonthlyBudget is assumed when the user has no budget row yet.
const DefaultMonthlyBudget = 3000

// Profile holds per-user settings kept by the backend.
// FreezesAvailable is the pool of streak-saving tokens; it is consulted,
// not decremented, by streak computation (see momentum.Streak).
type Profile struct {
	ID               string `json:"id"`
	FreezesAvailable int    `json:"freezes_available"`
}
