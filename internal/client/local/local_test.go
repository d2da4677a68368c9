package local

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/momentumos/momentum/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestHabitsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	h := &models.Habit{
		ID:        "h1",
		UserID:    "u1",
		Title:     "Read",
		Category:  "mind",
		Schedule:  models.OnWeekdays(time.Monday, time.Wednesday),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.UpsertHabit(ctx, h))

	habits, err := store.ListHabits(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, habits, 1)
	require.Equal(t, "Read", habits[0].Title)
	require.True(t, habits[0].Schedule.On(time.Monday))
	require.False(t, habits[0].Schedule.On(time.Tuesday))

	h.Title = "Read more"
	require.NoError(t, store.UpsertHabit(ctx, h))
	habits, err = store.ListHabits(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, habits, 1)
	require.Equal(t, "Read more", habits[0].Title)
}

func TestDeleteHabitCascadesLogs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	h := &models.Habit{ID: "h1", UserID: "u1", Title: "Run", Schedule: models.EveryDay()}
	require.NoError(t, store.UpsertHabit(ctx, h))
	require.NoError(t, store.UpsertLog(ctx, &models.HabitLog{
		HabitID: "h1", UserID: "u1", Date: "2026-08-30", Completed: true,
	}))

	require.NoError(t, store.DeleteHabit(ctx, "h1"))

	habits, err := store.ListHabits(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, habits)

	log, err := store.GetLog(ctx, "h1", "2026-08-30")
	require.NoError(t, err)
	require.Nil(t, log)
}

func TestLogsUpsertOnCompositeKey(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	log := &models.HabitLog{HabitID: "h1", UserID: "u1", Date: "2026-08-31", Completed: true}
	require.NoError(t, store.UpsertLog(ctx, log))

	log.Completed = false
	require.NoError(t, store.UpsertLog(ctx, log))

	got, err := store.GetLog(ctx, "h1", "2026-08-31")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.False(t, got.Completed)

	require.NoError(t, store.DeleteLog(ctx, "h1", "2026-08-31"))
	got, err = store.GetLog(ctx, "h1", "2026-08-31")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCompletedDatesFiltersWindow(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	logs := []models.HabitLog{
		{HabitID: "h1", UserID: "u1", Date: "2026-08-01", Completed: true},
		{HabitID: "h1", UserID: "u1", Date: "2026-08-15", Completed: true},
		{HabitID: "h1", UserID: "u1", Date: "2026-08-20", Completed: false},
		{HabitID: "h2", UserID: "u1", Date: "2026-08-15", Completed: true},
	}
	for i := range logs {
		require.NoError(t, store.UpsertLog(ctx, &logs[i]))
	}

	dates, err := store.CompletedDates(ctx, "h1", "2026-08-10")
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"2026-08-15": true}, dates)
}

func TestTasksLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	now := time.Now().UTC()
	require.NoError(t, store.UpsertTask(ctx, &models.Task{
		ID: "t1", UserID: "u1", Title: "Ship it", CreatedAt: now,
	}))
	require.NoError(t, store.UpsertTask(ctx, &models.Task{
		ID: "t2", UserID: "u1", Title: "Review", CreatedAt: now.Add(time.Second),
	}))

	require.NoError(t, store.SetTaskDone(ctx, "t1", true))

	tasks, err := store.ListTasks(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	// open tasks sort before done ones
	require.Equal(t, "t2", tasks[0].ID)
	require.False(t, tasks[0].Done)
	require.True(t, tasks[1].Done)

	require.NoError(t, store.DeleteTask(ctx, "t1"))
	tasks, err = store.ListTasks(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

func TestExpensesAndMonthTotal(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	expenses := []models.Expense{
		{ID: "e1", UserID: "u1", Amount: 12.50, Note: "coffee", Date: "2026-08-02"},
		{ID: "e2", UserID: "u1", Amount: 40, Note: "groceries", Date: "2026-08-15"},
		{ID: "e3", UserID: "u1", Amount: 99, Note: "last month", Date: "2026-07-28"},
		{ID: "e4", UserID: "u2", Amount: 500, Note: "someone else", Date: "2026-08-10"},
	}
	for i := range expenses {
		require.NoError(t, store.UpsertExpense(ctx, &expenses[i]))
	}

	list, err := store.ListExpenses(ctx, "u1", "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "e2", list[0].ID)

	total, err := store.MonthTotal(ctx, "u1", "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.InDelta(t, 52.50, total, 0.001)

	require.NoError(t, store.DeleteExpense(ctx, "e2"))
	total, err = store.MonthTotal(ctx, "u1", "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.InDelta(t, 12.50, total, 0.001)
}

func TestMonthTotalEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	total, err := store.MonthTotal(ctx, "u1", "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestBudgetUpsertOnUserCategory(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	got, err := store.GetBudget(ctx, "u1", models.BudgetCategoryMonthly)
	require.NoError(t, err)
	require.Nil(t, got)

	b := &models.Budget{ID: "b1", UserID: "u1", Category: models.BudgetCategoryMonthly, LimitAmount: 2500}
	require.NoError(t, store.SetBudget(ctx, b))

	b2 := &models.Budget{ID: "b2", UserID: "u1", Category: models.BudgetCategoryMonthly, LimitAmount: 2000}
	require.NoError(t, store.SetBudget(ctx, b2))

	got, err = store.GetBudget(ctx, "u1", models.BudgetCategoryMonthly)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, float64(2000), got.LimitAmount)
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	got, err := store.GetProfile(ctx, "u1")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, store.SaveProfile(ctx, &models.Profile{ID: "u1", FreezesAvailable: 3}))
	require.NoError(t, store.SaveProfile(ctx, &models.Profile{ID: "u1", FreezesAvailable: 2}))

	got, err = store.GetProfile(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 2, got.FreezesAvailable)
}
