// Package data orchestrates reads and optimistic writes for the client.
// Reads pull from the remote store and mirror into the local read model;
// writes apply locally first and go through the mutation queue.
package data

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/momentumos/momentum/internal/client/api"
	"github.com/momentumos/momentum/internal/client/local"
	"github.com/momentumos/momentum/internal/client/sync"
	"github.com/momentumos/momentum/internal/models"
	"github.com/momentumos/momentum/internal/momentum"
)

//go:generate go tool moq -out service_mock.go . Service

// Service is the client-side data service.
type Service interface {
	// RefreshScore pulls the user's habits, recent completion logs,
	// month-to-date expenses, budget and profile, mirrors them locally,
	// and computes the momentum snapshot.
	RefreshScore(ctx context.Context, userID string) (*Snapshot, error)

	AddHabit(ctx context.Context, userID, title, category string, schedule models.Schedule) (*models.Habit, error)
	ListHabits(ctx context.Context, userID string) ([]*models.Habit, error)
	MarkHabitDone(ctx context.Context, userID, habitID string) error
	DeleteHabit(ctx context.Context, userID, habitID string) error

	AddTask(ctx context.Context, userID, title string) (*models.Task, error)
	ListTasks(ctx context.Context, userID string) ([]*models.Task, error)
	CompleteTask(ctx context.Context, taskID string) error
	DeleteTask(ctx context.Context, userID, taskID string) error

	AddExpense(ctx context.Context, userID string, amount float64, note, date string) (*models.Expense, error)
	ListExpenses(ctx context.Context, userID string) ([]*models.Expense, error)
	MonthSpend(ctx context.Context, userID string) (float64, error)

	SetBudget(ctx context.Context, userID string, limit float64) error
	GetBudget(ctx context.Context, userID string) (*models.Budget, error)
}

// Snapshot is the computed momentum state for the dashboard.
type Snapshot struct {
	Habits     []HabitStatus
	Score      int
	Level      momentum.Level
	Freezes    int
	MonthSpend float64
	Budget     float64
}

// HabitStatus pairs a habit with its computed streak state.
type HabitStatus struct {
	Habit          *models.Habit
	Streak         int
	CompletedToday bool
}

type service struct {
	apiClient  api.ClientAPI
	local      *local.Store
	dispatcher *sync.Dispatcher
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new data service.
func NewService(apiClient api.ClientAPI, localStore *local.Store, dispatcher *sync.Dispatcher, logger *slog.Logger) Service {
	return &service{
		apiClient:  apiClient,
		local:      localStore,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *service) RefreshScore(ctx context.Context, userID string) (*Snapshot, error) {
	today := s.now()
	todayStr := today.Format(models.DateLayout)
	sinceStr := today.AddDate(0, 0, -(momentum.LookbackDays - 1)).Format(models.DateLayout)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).Format(models.DateLayout)

	var habits []*models.Habit
	err := s.apiClient.Select(ctx, "habits", api.Query{
		Filters: []api.Filter{api.Eq("user_id", userID)},
		Order:   "created_at",
	}, &habits)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch habits: %w", err)
	}

	var logs []*models.HabitLog
	err = s.apiClient.Select(ctx, "habit_logs", api.Query{
		Filters: []api.Filter{
			api.Eq("user_id", userID),
			api.Gte("date", sinceStr),
			api.Eq("completed", "true"),
		},
	}, &logs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch habit logs: %w", err)
	}

	var expenses []*models.Expense
	err = s.apiClient.Select(ctx, "expenses", api.Query{
		Filters: []api.Filter{
			api.Eq("user_id", userID),
			api.Gte("date", monthStart),
			api.Lte("date", todayStr),
		},
	}, &expenses)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	var budgets []*models.Budget
	err = s.apiClient.Select(ctx, "budgets", api.Query{
		Filters: []api.Filter{
			api.Eq("user_id", userID),
			api.Eq("category", models.BudgetCategoryMonthly),
		},
	}, &budgets)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	}

	var profiles []*models.Profile
	err = s.apiClient.Select(ctx, "profiles", api.Query{
		Filters: []api.Filter{api.Eq("id", userID)},
	}, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	s.mirror(ctx, habits, logs, expenses, budgets, profiles)

	completed := make(map[string]map[string]bool, len(habits))
	for _, log := range logs {
		if completed[log.HabitID] == nil {
			completed[log.HabitID] = make(map[string]bool)
		}
		completed[log.HabitID][log.Date] = log.Completed
	}

	// With no budget row the budget term is disabled (score stays at
	// baseline for a fresh account); the displayed ceiling still falls
	// back to the default.
	var scoreBudget float64
	budget := float64(models.DefaultMonthlyBudget)
	if len(budgets) > 0 {
		budget = budgets[0].LimitAmount
		scoreBudget = budget
	}
	freezes := 0
	if len(profiles) > 0 {
		freezes = profiles[0].FreezesAvailable
	}

	var spend float64
	for _, e := range expenses {
		spend += e.Amount
	}

	snapshot := &Snapshot{
		Habits:     make([]HabitStatus, 0, len(habits)),
		Freezes:    freezes,
		MonthSpend: spend,
		Budget:     budget,
	}
	standings := make([]momentum.HabitStanding, 0, len(habits))
	for _, h := range habits {
		standing := momentum.HabitStanding{
			HabitID:        h.ID,
			Streak:         momentum.Streak(completed[h.ID], h.Schedule, freezes, today),
			CompletedToday: momentum.CompletedToday(completed[h.ID], today),
		}
		standings = append(standings, standing)
		snapshot.Habits = append(snapshot.Habits, HabitStatus{
			Habit:          h,
			Streak:         standing.Streak,
			CompletedToday: standing.CompletedToday,
		})
	}
	snapshot.Score = momentum.Score(standings, spend, scoreBudget)
	snapshot.Level = momentum.LevelFor(snapshot.Score)

	return snapshot, nil
}

// mirror writes fetched rows into the local read model. Mirror failures
// are logged, not returned: the snapshot is already computed from the
// fetched rows and a stale mirror heals on the next refresh.
func (s *service) mirror(ctx context.Context, habits []*models.Habit, logs []*models.HabitLog, expenses []*models.Expense, budgets []*models.Budget, profiles []*models.Profile) {
	for _, h := range habits {
		if err := s.local.UpsertHabit(ctx, h); err != nil {
			s.logger.Warn("failed to mirror habit", "id", h.ID, "error", err)
		}
	}
	for _, l := range logs {
		if err := s.local.UpsertLog(ctx, l); err != nil {
			s.logger.Warn("failed to mirror habit log", "habit_id", l.HabitID, "error", err)
		}
	}
	for _, e := range expenses {
		if err := s.local.UpsertExpense(ctx, e); err != nil {
			s.logger.Warn("failed to mirror expense", "id", e.ID, "error", err)
		}
	}
	for _, b := range budgets {
		if err := s.local.SetBudget(ctx, b); err != nil {
			s.logger.Warn("failed to mirror budget", "id", b.ID, "error", err)
		}
	}
	for _, p := range profiles {
		if err := s.local.SaveProfile(ctx, p); err != nil {
			s.logger.Warn("failed to mirror profile", "id", p.ID, "error", err)
		}
	}
}

func (s *service) AddHabit(ctx context.Context, userID, title, category string, schedule models.Schedule) (*models.Habit, error) {
	habit := &models.Habit{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Category:  category,
		Schedule:  schedule,
		CreatedAt: s.now().UTC(),
	}

	err := s.dispatcher.Do(ctx, sync.Command{
		Apply: func(ctx context.Context) error {
			return s.local.UpsertHabit(ctx, habit)
		},
		Revert: func(ctx context.Context) error {
			return s.local.DeleteHabit(ctx, habit.ID)
		},
		Target: "habits",
		Op:     models.OpInsert,
		Payload: map[string]any{
			"id":         habit.ID,
			"user_id":    habit.UserID,
			"title":      habit.Title,
			"category":   habit.Category,
			"schedule":   habit.Schedule,
			"created_at": habit.CreatedAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *service) ListHabits(ctx context.Context, userID string) ([]*models.Habit, error) {
	return s.local.ListHabits(ctx, userID)
}

// MarkHabitDone records today's completion. The log is keyed on
// (habit_id, date) so repeated calls are idempotent upserts; the toggle
// path only moves not-done to done.
func (s *service) MarkHabitDone(ctx context.Context, userID, habitID string) error {
	date := s.now().Format(models.DateLayout)

	prior, err := s.local.GetLog(ctx, habitID, date)
	if err != nil {
		return err
	}

	log := &models.HabitLog{HabitID: habitID, UserID: userID, Date: date, Completed: true}
	return s.dispatcher.Do(ctx, sync.Command{
		Apply: func(ctx context.Context) error {
			return s.local.UpsertLog(ctx, log)
		},
		Revert: func(ctx context.Context) error {
			if prior == nil {
				return s.local.DeleteLog(ctx, habitID, date)
			}
			return s.local.UpsertLog(ctx, prior)
		},
		Target: "habit_logs",
		Op:     models.OpUpsert,
		Payload: map[string]any{
			"habit_id":  habitID,
			"user_id":   userID,
			"date":      date,
			"completed": true,
		},
		ConflictKeys: []string{"habit_id", "date"},
	})
}

func (s *service) DeleteHabit(ctx context.Context, userID, habitID string) error {
	prior := s.findHabit(ctx, userID, habitID)

	return s.dispatcher.Do(ctx, sync.Command{
		Apply: func(ctx context.Context) error {
			return s.local.DeleteHabit(ctx, habitID)
		},
		Revert: func(ctx context.Context) error {
			// Logs are not restored; the next refresh re-mirrors them.
			if prior == nil {
				return nil
			}
			return s.local.UpsertHabit(ctx, prior)
		},
		Target:  "habits",
		Op:      models.OpDelete,
		Payload: map[string]any{"id": habitID},
	})
}

func (s *service) findHabit(ctx context.Context, userID, habitID string) *models.Habit {
	habits, err := s.local.ListHabits(ctx, userID)
	if err != nil {
		return nil
	}
	for _, h := range habits {
		if h.ID == habitID {
			return h
		}
	}
	return nil
}

func (s *service) AddTask(ctx context.Context, userID, title string) (*models.Task, error) {
	task := &models.Task{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		CreatedAt: s.now().UTC(),
	}

	err := s.dispatcher.Do(ctx, sync.Command{
		Apply: func(ctx context.Context) error {
			return s.local.UpsertTask(ctx, task)
		},
		Revert: func(ctx context.Context) error {
			return s.local.DeleteTask(ctx, task.ID)
		},
		Target: "tasks",
		Op:     models.OpInsert,
		Payload: map[string]any{
			"id":         task.ID,
			"user_id":    task.UserID,
			"title":      task.Title,
			"done":       false,
			"created_at": task.CreatedAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *service) ListTasks(ctx context.Context, userID string) ([]*models.Task, error) {
	return s.local.ListTasks(ctx, userID)
}

func (s *service) CompleteTask(ctx context.Context, taskID string) error {
	return s.dispatcher.Do(ctx, sync.Command{
		Apply: func(ctx context.Context) error {
			return s.local.SetTaskDone(ctx, taskID, true)
		},
		Revert: func(ctx context.Context) error {
			return s.local.SetTaskDone(ctx, taskID, false)
		},
		Target:  "tasks",
		Op:      models.OpUpdate,
		Payload: map[string]any{"id": taskID, "done": true},
	})
}

func (s *service) DeleteTask(ctx context.Context, userID, taskID string) error {
	prior := s.findTask(ctx, userID, taskID)

	return s.dispatcher.Do(ctx, sync.Command{
		Apply: func(ctx context.Context) error {
			return s.local.DeleteTask(ctx, taskID)
		},
		Revert: func(ctx context.Context) error {
			if prior == nil {
				return nil
			}
			return s.local.UpsertTask(ctx, prior)
		},
		Target:  "tasks",
		Op:      models.OpDelete,
		Payload: map[string]any{"id": taskID},
	})
}

func (s *service) findTask(ctx context.Context, userID, taskID string) *models.Task {
	tasks, err := s.local.ListTasks(ctx, userID)
	if err != nil {
		return nil
	}
	for _, t := range tasks {
		if t.ID == taskID {
			return t
		}
	}
	return nil
}

func (s *service) AddExpense(ctx context.Context, userID string, amount float64, note, date string) (*models.Expense, error) {
	if date == "" {
		date = s.now().Format(models.DateLayout)
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %s", strconv.FormatFloat(amount, 'f', -1, 64))
	}

	expense := &models.Expense{
		ID:        uuid.New().String(),
		UserID:    userID,
		Amount:    amount,
		Note:      note,
		Date:      date,
		CreatedAt: s.now().UTC(),
	}

	err := s.dispatcher.Do(ctx, sync.Command{
		Apply: func(ctx context.Context) error {
			return s.local.UpsertExpense(ctx, expense)
		},
		Revert: func(ctx context.Context) error {
			return s.local.DeleteExpense(ctx, expense.ID)
		},
		Target: "expenses",
		Op:     models.OpInsert,
		Payload: map[string]any{
			"id":         expense.ID,
			"user_id":    expense.UserID,
			"amount":     expense.Amount,
			"note":       expense.Note,
			"date":       expense.Date,
			"created_at": expense.CreatedAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses returns the current month's expenses from the mirror.
func (s *service) ListExpenses(ctx context.Context, userID string) ([]*models.Expense, error) {
	from, to := s.monthWindow()
	return s.local.ListExpenses(ctx, userID, from, to)
}

// MonthSpend returns the month-to-date expense total from the mirror.
func (s *service) MonthSpend(ctx context.Context, userID string) (float64, error) {
	from, to := s.monthWindow()
	return s.local.MonthTotal(ctx, userID, from, to)
}

func (s *service) monthWindow() (string, string) {
	now := s.now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(models.DateLayout)
	return from, now.Format(models.DateLayout)
}

func (s *service) SetBudget(ctx context.Context, userID string, limit float64) error {
	if limit <= 0 {
		return fmt.Errorf("budget must be positive, got %s", strconv.FormatFloat(limit, 'f', -1, 64))
	}

	prior, err := s.local.GetBudget(ctx, userID, models.BudgetCategoryMonthly)
	if err != nil {
		return err
	}

	budget := &models.Budget{
		ID:          uuid.New().String(),
		UserID:      userID,
		Category:    models.BudgetCategoryMonthly,
		LimitAmount: limit,
	}
	if prior != nil {
		budget.ID = prior.ID
	}

	return s.dispatcher.Do(ctx, sync.Command{
		Apply: func(ctx context.Context) error {
			return s.local.SetBudget(ctx, budget)
		},
		Revert: func(ctx context.Context) error {
			if prior == nil {
				return nil
			}
			return s.local.SetBudget(ctx, prior)
		},
		Target: "budgets",
		Op:     models.OpUpsert,
		Payload: map[string]any{
			"id":           budget.ID,
			"user_id":      budget.UserID,
			"category":     budget.Category,
			"limit_amount": budget.LimitAmount,
		},
		ConflictKeys: []string{"user_id", "category"},
	})
}

// GetBudget returns the mirrored monthly budget, nil when unset.
func (s *service) GetBudget(ctx context.Context, userID string) (*models.Budget, error) {
	return s.local.GetBudget(ctx, userID, models.BudgetCategoryMonthly)
}
