package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-budget-sync/internal/cache"
	"github.com/MKhiriev/go-budget-sync/internal/validators"
	"github.com/MKhiriev/go-budget-sync/models"
)

// newTestBudgetStack wires a budget service over a real synchronizer, queue,
// and notification service backed by an in-memory cache and the fake remote.
func newTestBudgetStack(t *testing.T) (BudgetService, SyncQueue, NotificationService, *fakeRemoteStore) {
	t.Helper()

	cacheStore := cache.NewMemoryStore()
	remote := newFakeRemoteStore()
	replicas := NewReplicaSynchronizer(cacheStore, remote)
	queue := NewSyncQueue(cacheStore, remote)
	notifications := NewNotificationService(replicas, queue)
	budgets := NewBudgetService(replicas, queue, notifications, validators.NewRecordValidator())

	return budgets, queue, notifications, remote
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestBudgetService_Create_Online(t *testing.T) {
	budgets, queue, _, remote := newTestBudgetStack(t)
	ctx := context.Background()

	created, err := budgets.Create(ctx, 1, models.ModeOnline, models.Budget{Name: "Rent", Goal: 1200})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "an id is assigned when absent")
	assert.False(t, created.CreatedAt.IsZero())

	snap := remote.snapshot(models.CollectionBudgets)
	require.Len(t, snap.Document.Budgets, 1)

	pending, err := queue.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending, "online creations are not deferred")
}

func TestBudgetService_Create_OfflineEnqueues(t *testing.T) {
	budgets, queue, _, remote := newTestBudgetStack(t)
	ctx := context.Background()

	created, err := budgets.Create(ctx, 1, models.ModeOffline, models.Budget{Name: "Rent", Goal: 1200})

	require.NoError(t, err)
	assert.Empty(t, remote.recordedCalls(), "offline creation must not contact the remote store")

	pending, err := queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, models.SyncActionAdd, pending[0].Kind)
	assert.Equal(t, models.CollectionBudgets, pending[0].Collection)
	assert.Contains(t, string(pending[0].Record), created.ID)
}

func TestBudgetService_Create_Validation(t *testing.T) {
	budgets, _, _, _ := newTestBudgetStack(t)

	tests := []struct {
		name   string
		budget models.Budget
	}{
		{name: "empty name", budget: models.Budget{Goal: 100}},
		{name: "zero goal", budget: models.Budget{Name: "Rent"}},
		{name: "negative goal", budget: models.Budget{Name: "Rent", Goal: -5}},
		{name: "spent over goal", budget: models.Budget{Name: "Rent", Goal: 100, AmountSpent: 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := budgets.Create(context.Background(), 1, models.ModeOnline, tt.budget)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestBudgetService_List(t *testing.T) {
	budgets, _, _, _ := newTestBudgetStack(t)
	ctx := context.Background()

	_, err := budgets.Create(ctx, 1, models.ModeOffline, models.Budget{Name: "Rent", Goal: 1200})
	require.NoError(t, err)
	_, err = budgets.Create(ctx, 1, models.ModeOffline, models.Budget{Name: "Food", Goal: 300})
	require.NoError(t, err)

	list, err := budgets.List(ctx, 1, models.ModeOffline)

	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestBudgetService_List_Empty(t *testing.T) {
	budgets, _, _, _ := newTestBudgetStack(t)

	list, err := budgets.List(context.Background(), 1, models.ModeOffline)

	require.NoError(t, err)
	assert.Empty(t, list)
}

// ── AddFunds ─────────────────────────────────────────────────────────────────

func TestBudgetService_AddFunds_Success(t *testing.T) {
	budgets, _, _, _ := newTestBudgetStack(t)
	ctx := context.Background()

	created, err := budgets.Create(ctx, 1, models.ModeOffline, models.Budget{Name: "Rent", Goal: 1200})
	require.NoError(t, err)

	updated, err := budgets.AddFunds(ctx, 1, models.ModeOffline, created.ID, 450)

	require.NoError(t, err)
	assert.Equal(t, 450.0, updated.AmountSpent)

	list, err := budgets.List(ctx, 1, models.ModeOffline)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 450.0, list[0].AmountSpent, "the mutation is visible to a subsequent read")
}

func TestBudgetService_AddFunds_GoalExceeded(t *testing.T) {
	budgets, _, _, _ := newTestBudgetStack(t)
	ctx := context.Background()

	created, err := budgets.Create(ctx, 1, models.ModeOffline, models.Budget{Name: "Rent", Goal: 100})
	require.NoError(t, err)

	_, err = budgets.AddFunds(ctx, 1, models.ModeOffline, created.ID, 150)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGoalExceeded)

	list, err := budgets.List(ctx, 1, models.ModeOffline)
	require.NoError(t, err)
	assert.Equal(t, 0.0, list[0].AmountSpent, "a rejected mutation leaves the budget untouched")
}

func TestBudgetService_AddFunds_BoundaryCompletesBudget(t *testing.T) {
	budgets, _, notifications, _ := newTestBudgetStack(t)
	ctx := context.Background()

	created, err := budgets.Create(ctx, 1, models.ModeOffline, models.Budget{
		Name:               "Vacation",
		Goal:               500,
		NotifyOnCompletion: true,
	})
	require.NoError(t, err)

	updated, err := budgets.AddFunds(ctx, 1, models.ModeOffline, created.ID, 500)

	require.NoError(t, err)
	assert.True(t, updated.Completed(), "amountSpent == goal counts as completed")

	list, err := notifications.List(ctx, 1, models.ModeOffline)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Contains(t, list[0].Message, "Vacation")
}

func TestBudgetService_AddFunds_NoNotificationWhenDisabled(t *testing.T) {
	budgets, _, notifications, _ := newTestBudgetStack(t)
	ctx := context.Background()

	created, err := budgets.Create(ctx, 1, models.ModeOffline, models.Budget{Name: "Vacation", Goal: 500})
	require.NoError(t, err)

	_, err = budgets.AddFunds(ctx, 1, models.ModeOffline, created.ID, 500)
	require.NoError(t, err)

	list, err := notifications.List(ctx, 1, models.ModeOffline)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBudgetService_AddFunds_UnknownBudget(t *testing.T) {
	budgets, _, _, _ := newTestBudgetStack(t)

	_, err := budgets.AddFunds(context.Background(), 1, models.ModeOffline, "nonexistent", 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBudgetNotFound)
}

func TestBudgetService_AddFunds_InvalidArguments(t *testing.T) {
	budgets, _, _, _ := newTestBudgetStack(t)

	tests := []struct {
		name     string
		budgetID string
		amount   float64
	}{
		{name: "empty id", budgetID: "", amount: 10},
		{name: "zero amount", budgetID: "b-1", amount: 0},
		{name: "negative amount", budgetID: "b-1", amount: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := budgets.AddFunds(context.Background(), 1, models.ModeOffline, tt.budgetID, tt.amount)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestBudgetService_AddFunds_OfflineEnqueuesUpdate(t *testing.T) {
	budgets, queue, _, _ := newTestBudgetStack(t)
	ctx := context.Background()

	created, err := budgets.Create(ctx, 1, models.ModeOffline, models.Budget{Name: "Rent", Goal: 1200})
	require.NoError(t, err)

	_, err = budgets.AddFunds(ctx, 1, models.ModeOffline, created.ID, 450)
	require.NoError(t, err)

	pending, err := queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2, "the create and the update are both deferred")
	assert.Equal(t, models.SyncActionUpdate, pending[1].Kind)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestBudgetService_Delete(t *testing.T) {
	budgets, queue, _, _ := newTestBudgetStack(t)
	ctx := context.Background()

	created, err := budgets.Create(ctx, 1, models.ModeOffline, models.Budget{Name: "Rent", Goal: 1200})
	require.NoError(t, err)

	require.NoError(t, budgets.Delete(ctx, 1, models.ModeOffline, created.ID))

	list, err := budgets.List(ctx, 1, models.ModeOffline)
	require.NoError(t, err)
	assert.Empty(t, list)

	pending, err := queue.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, models.SyncActionDelete, pending[1].Kind)
}

func TestBudgetService_Delete_UnknownBudget(t *testing.T) {
	budgets, _, _, _ := newTestBudgetStack(t)

	err := budgets.Delete(context.Background(), 1, models.ModeOffline, "nonexistent")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBudgetNotFound)
}
