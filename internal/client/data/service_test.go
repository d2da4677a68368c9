package data

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentumos/momentum/internal/client/api"
	"github.com/momentumos/momentum/internal/client/local"
	"github.com/momentumos/momentum/internal/client/sync"
	"github.com/momentumos/momentum/internal/models"
	"github.com/momentumos/momentum/internal/momentum"
)

// 2026-08-31 is a Monday.
var testToday = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, apiMock *api.ClientAPIMock, syncMock *sync.ServiceMock) (*service, *local.Store) {
	t.Helper()
	store, err := local.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	dispatcher := sync.NewDispatcher(syncMock, testLogger())
	svc := NewService(apiMock, store, dispatcher, testLogger()).(*service)
	svc.now = func() time.Time { return testToday }
	return svc, store
}

func acceptingSync() *sync.ServiceMock {
	return &sync.ServiceMock{
		QueueActionFunc: func(ctx context.Context, target string, op models.Operation, payload map[string]any) error {
			return nil
		},
		QueueUpsertFunc: func(ctx context.Context, target string, payload map[string]any, conflictKeys []string) error {
			return nil
		},
	}
}

// remoteFixture serves canned rows per table through the Select mock.
type remoteFixture struct {
	habits   []*models.Habit
	logs     []*models.HabitLog
	expenses []*models.Expense
	budgets  []*models.Budget
	profiles []*models.Profile
}

func (f remoteFixture) apiMock() *api.ClientAPIMock {
	return &api.ClientAPIMock{
		SelectFunc: func(ctx context.Context, table string, q api.Query, dest any) error {
			switch d := dest.(type) {
			case *[]*models.Habit:
				*d = f.habits
			case *[]*models.HabitLog:
				*d = f.logs
			case *[]*models.Expense:
				*d = f.expenses
			case *[]*models.Budget:
				*d = f.budgets
			case *[]*models.Profile:
				*d = f.profiles
			}
			return nil
		},
	}
}

func TestRefreshScoreComputesSnapshot(t *testing.T) {
	ctx := context.Background()

	habit := &models.Habit{ID: "h1", UserID: "u1", Title: "Run", Schedule: models.EveryDay()}
	var logs []*models.HabitLog
	for i := 0; i < 9; i++ {
		logs = append(logs, &models.HabitLog{
			HabitID:   "h1",
			UserID:    "u1",
			Date:      testToday.AddDate(0, 0, -i).Format(models.DateLayout),
			Completed: true,
		})
	}

	fixture := remoteFixture{
		habits:   []*models.Habit{habit},
		logs:     logs,
		expenses: []*models.Expense{{ID: "e1", UserID: "u1", Amount: 1500, Date: "2026-08-10"}},
		budgets:  []*models.Budget{{ID: "b1", UserID: "u1", Category: models.BudgetCategoryMonthly, LimitAmount: 3000}},
		profiles: []*models.Profile{{ID: "u1", FreezesAvailable: 2}},
	}

	svc, store := newTestService(t, fixture.apiMock(), acceptingSync())

	snap, err := svc.RefreshScore(ctx, "u1")
	require.NoError(t, err)

	// baseline 250 + (9*10+15) + floor((1-1500/3000)*300) = 250+105+150
	assert.Equal(t, 505, snap.Score)
	assert.Equal(t, momentum.LevelSolid, snap.Level)
	assert.Equal(t, 2, snap.Freezes)
	assert.InDelta(t, 1500, snap.MonthSpend, 0.001)
	assert.InDelta(t, 3000, snap.Budget, 0.001)
	require.Len(t, snap.Habits, 1)
	assert.Equal(t, 9, snap.Habits[0].Streak)
	assert.True(t, snap.Habits[0].CompletedToday)

	// fetched rows land in the mirror
	mirrored, err := store.ListHabits(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mirrored, 1)
	total, err := store.MonthTotal(ctx, "u1", "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.InDelta(t, 1500, total, 0.001)
}

func TestRefreshScoreEmptyInputs(t *testing.T) {
	svc, _ := newTestService(t, remoteFixture{}.apiMock(), acceptingSync())

	snap, err := svc.RefreshScore(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, momentum.Baseline, snap.Score)
	assert.Equal(t, momentum.LevelLow, snap.Level)
	assert.Zero(t, snap.Freezes)
	assert.Empty(t, snap.Habits)
	assert.InDelta(t, float64(models.DefaultMonthlyBudget), snap.Budget, 0.001)
}

func TestRefreshScoreFetchErrorPropagates(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		SelectFunc: func(ctx context.Context, table string, q api.Query, dest any) error {
			return &api.StatusError{Code: 503, Message: "unavailable"}
		},
	}
	svc, _ := newTestService(t, apiMock, acceptingSync())

	_, err := svc.RefreshScore(context.Background(), "u1")
	require.Error(t, err)
}

func TestAddHabitQueuesInsertAndMirrors(t *testing.T) {
	ctx := context.Background()
	syncMock := acceptingSync()
	svc, store := newTestService(t, remoteFixture{}.apiMock(), syncMock)

	habit, err := svc.AddHabit(ctx, "u1", "Read", "mind", models.EveryDay())
	require.NoError(t, err)
	require.NotEmpty(t, habit.ID)

	calls := syncMock.QueueActionCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "habits", calls[0].Target)
	assert.Equal(t, models.OpInsert, calls[0].Op)
	assert.Equal(t, habit.ID, calls[0].Payload["id"])
	assert.Equal(t, "Read", calls[0].Payload["title"])

	mirrored, err := store.ListHabits(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mirrored, 1)
}

func TestMarkHabitDoneUpsertsOnCompositeKey(t *testing.T) {
	ctx := context.Background()
	syncMock := acceptingSync()
	svc, store := newTestService(t, remoteFixture{}.apiMock(), syncMock)

	require.NoError(t, svc.MarkHabitDone(ctx, "u1", "h1"))

	calls := syncMock.QueueUpsertCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "habit_logs", calls[0].Target)
	assert.Equal(t, []string{"habit_id", "date"}, calls[0].ConflictKeys)
	assert.Equal(t, "2026-08-31", calls[0].Payload["date"])
	assert.Equal(t, true, calls[0].Payload["completed"])

	log, err := store.GetLog(ctx, "h1", "2026-08-31")
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.True(t, log.Completed)
}

func TestMarkHabitDoneRevertsOnRejection(t *testing.T) {
	ctx := context.Background()
	syncMock := acceptingSync()
	syncMock.QueueUpsertFunc = func(ctx context.Context, target string, payload map[string]any, conflictKeys []string) error {
		return &api.StatusError{Code: 403, Message: "forbidden"}
	}
	svc, store := newTestService(t, remoteFixture{}.apiMock(), syncMock)

	err := svc.MarkHabitDone(ctx, "u1", "h1")
	require.Error(t, err)

	log, err := store.GetLog(ctx, "h1", "2026-08-31")
	require.NoError(t, err)
	assert.Nil(t, log)
}

func TestCompleteTaskRevertsOnRejection(t *testing.T) {
	ctx := context.Background()
	syncMock := acceptingSync()
	svc, store := newTestService(t, remoteFixture{}.apiMock(), syncMock)

	task, err := svc.AddTask(ctx, "u1", "Ship it")
	require.NoError(t, err)

	syncMock.QueueActionFunc = func(ctx context.Context, target string, op models.Operation, payload map[string]any) error {
		return &api.StatusError{Code: 409, Message: "conflict"}
	}

	require.Error(t, svc.CompleteTask(ctx, task.ID))

	tasks, err := store.ListTasks(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].Done)
}

func TestDeleteTaskRestoresOnRejection(t *testing.T) {
	ctx := context.Background()
	syncMock := acceptingSync()
	svc, store := newTestService(t, remoteFixture{}.apiMock(), syncMock)

	task, err := svc.AddTask(ctx, "u1", "Keep me")
	require.NoError(t, err)

	syncMock.QueueActionFunc = func(ctx context.Context, target string, op models.Operation, payload map[string]any) error {
		if op == models.OpDelete {
			return &api.StatusError{Code: 403, Message: "forbidden"}
		}
		return nil
	}

	require.Error(t, svc.DeleteTask(ctx, "u1", task.ID))

	tasks, err := store.ListTasks(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Keep me", tasks[0].Title)
}

func TestSetBudgetKeepsPriorRowID(t *testing.T) {
	ctx := context.Background()
	syncMock := acceptingSync()
	svc, _ := newTestService(t, remoteFixture{}.apiMock(), syncMock)

	require.NoError(t, svc.SetBudget(ctx, "u1", 2500))
	require.NoError(t, svc.SetBudget(ctx, "u1", 2000))

	calls := syncMock.QueueUpsertCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "budgets", calls[0].Target)
	assert.Equal(t, []string{"user_id", "category"}, calls[0].ConflictKeys)
	assert.Equal(t, calls[0].Payload["id"], calls[1].Payload["id"])

	budget, err := svc.GetBudget(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, budget)
	assert.InDelta(t, 2000, budget.LimitAmount, 0.001)
}

func TestAddExpenseValidatesInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, remoteFixture{}.apiMock(), acceptingSync())

	_, err := svc.AddExpense(ctx, "u1", 0, "free lunch", "")
	require.Error(t, err)

	_, err = svc.AddExpense(ctx, "u1", 10, "bad date", "31-08-2026")
	require.Error(t, err)
}

func TestAddExpenseDefaultsDateAndSums(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, remoteFixture{}.apiMock(), acceptingSync())

	expense, err := svc.AddExpense(ctx, "u1", 42.50, "groceries", "")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", expense.Date)

	spend, err := svc.MonthSpend(ctx, "u1")
	require.NoError(t, err)
	assert.InDelta(t, 42.50, spend, 0.001)
}
