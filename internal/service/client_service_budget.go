package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-budget-sync/internal/validators"
	"github.com/MKhiriev/go-budget-sync/models"
)

type budgetService struct {
	replicas  ReplicaSynchronizer
	queue     SyncQueue
	notifier  NotificationService
	validator validators.Validator
}

// NewBudgetService creates a BudgetService writing through the given
// synchronizer. Offline mutations are recorded in the queue; completion
// notifications are created via notifier.
func NewBudgetService(replicas ReplicaSynchronizer, queue SyncQueue, notifier NotificationService, validator validators.Validator) BudgetService {
	return &budgetService{replicas: replicas, queue: queue, notifier: notifier, validator: validator}
}

func (s *budgetService) Create(ctx context.Context, userID int64, mode models.Mode, budget models.Budget) (models.Budget, error) {
	if err := s.validator.Validate(ctx, budget); err != nil {
		return models.Budget{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if budget.ID == "" {
		budget.ID = uuid.NewString()
	}
	if budget.CreatedAt.IsZero() {
		budget.CreatedAt = time.Now().UTC()
	}

	if err := s.replicas.Append(ctx, models.CollectionBudgets, userID, mode, budget); err != nil {
		return models.Budget{}, err
	}

	if mode.IsOffline() {
		if err := s.enqueue(ctx, models.SyncActionAdd, userID, budget); err != nil {
			return models.Budget{}, err
		}
	}
	return budget, nil
}

func (s *budgetService) List(ctx context.Context, userID int64, mode models.Mode) ([]models.Budget, error) {
	doc, err := s.replicas.Fetch(ctx, models.CollectionBudgets, userID, mode)
	if err != nil {
		return nil, err
	}
	return doc.Budgets, nil
}

func (s *budgetService) AddFunds(ctx context.Context, userID int64, mode models.Mode, budgetID string, amount float64) (models.Budget, error) {
	if budgetID == "" || amount <= 0 {
		return models.Budget{}, fmt.Errorf("%w: budget id and positive amount required", ErrInvalidDataProvided)
	}

	var before, after models.Budget
	err := s.replicas.Mutate(ctx, models.CollectionBudgets, userID, mode, func(doc models.Document) (models.Document, error) {
		i := indexOfBudget(doc.Budgets, budgetID)
		if i < 0 {
			return doc, fmt.Errorf("%w: id %q", ErrBudgetNotFound, budgetID)
		}

		before = doc.Budgets[i]
		// decimal keeps repeated top-ups exact, 0.1+0.2 style drift would
		// otherwise leak into the goal comparison
		spent := decimal.NewFromFloat(before.AmountSpent).Add(decimal.NewFromFloat(amount))
		if spent.GreaterThan(decimal.NewFromFloat(before.Goal)) {
			// Rejected inside the mutation function, before any store write.
			return doc, fmt.Errorf("%w: %s over goal %.2f", ErrGoalExceeded, spent.StringFixed(2), before.Goal)
		}

		doc.Budgets[i].AmountSpent, _ = spent.Float64()
		after = doc.Budgets[i]
		return doc, nil
	})
	if err != nil {
		return models.Budget{}, err
	}

	if mode.IsOffline() {
		if err := s.enqueue(ctx, models.SyncActionUpdate, userID, after); err != nil {
			return models.Budget{}, err
		}
	}

	if after.NotifyOnCompletion && !before.Completed() && after.Completed() {
		msg := fmt.Sprintf("Budget %q reached its goal of %.2f", after.Name, after.Goal)
		if _, err := s.notifier.Notify(ctx, userID, mode, msg); err != nil {
			return models.Budget{}, fmt.Errorf("create completion notification: %w", err)
		}
	}
	return after, nil
}

func (s *budgetService) Delete(ctx context.Context, userID int64, mode models.Mode, budgetID string) error {
	if budgetID == "" {
		return fmt.Errorf("%w: budget id required", ErrInvalidDataProvided)
	}

	var removed models.Budget
	err := s.replicas.Mutate(ctx, models.CollectionBudgets, userID, mode, func(doc models.Document) (models.Document, error) {
		i := indexOfBudget(doc.Budgets, budgetID)
		if i < 0 {
			return doc, fmt.Errorf("%w: id %q", ErrBudgetNotFound, budgetID)
		}
		removed = doc.Budgets[i]
		doc.Budgets = append(doc.Budgets[:i], doc.Budgets[i+1:]...)
		return doc, nil
	})
	if err != nil {
		return err
	}

	if mode.IsOffline() {
		return s.enqueue(ctx, models.SyncActionDelete, userID, removed)
	}
	return nil
}

func (s *budgetService) enqueue(ctx context.Context, kind models.SyncActionKind, userID int64, budget models.Budget) error {
	raw, err := json.Marshal(budget)
	if err != nil {
		return fmt.Errorf("encode budget record: %w", err)
	}
	return s.queue.Enqueue(ctx, models.SyncAction{
		Kind:       kind,
		Collection: models.CollectionBudgets,
		UserID:     userID,
		Record:     raw,
	})
}

func indexOfBudget(list []models.Budget, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
