package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-budget-sync/models"
)

type statsService struct {
	replicas ReplicaSynchronizer
}

// NewStatsService creates a StatsService reading budgets through the given
// synchronizer. Aggregation uses decimal arithmetic so repeated float64
// amounts do not accumulate rounding drift.
func NewStatsService(replicas ReplicaSynchronizer) StatsService {
	return &statsService{replicas: replicas}
}

func (s *statsService) CategoryTotals(ctx context.Context, userID int64, mode models.Mode) ([]models.CategoryTotal, error) {
	doc, err := s.replicas.Fetch(ctx, models.CollectionBudgets, userID, mode)
	if err != nil {
		return nil, err
	}

	type sums struct {
		goal  decimal.Decimal
		spent decimal.Decimal
	}
	byCategory := make(map[string]sums)
	for _, b := range doc.Budgets {
		label := b.CategoryLabel()
		t := byCategory[label]
		t.goal = t.goal.Add(decimal.NewFromFloat(b.Goal))
		t.spent = t.spent.Add(decimal.NewFromFloat(b.AmountSpent))
		byCategory[label] = t
	}

	totals := make([]models.CategoryTotal, 0, len(byCategory))
	for label, t := range byCategory {
		goal, _ := t.goal.Float64()
		spent, _ := t.spent.Float64()
		totals = append(totals, models.CategoryTotal{
			Category:    label,
			Goal:        goal,
			AmountSpent: spent,
		})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Category < totals[j].Category })
	return totals, nil
}

func (s *statsService) ByCompletion(ctx context.Context, userID int64, mode models.Mode) (active, completed []models.Budget, err error) {
	doc, err := s.replicas.Fetch(ctx, models.CollectionBudgets, userID, mode)
	if err != nil {
		return nil, nil, err
	}

	for _, b := range doc.Budgets {
		if b.Completed() {
			completed = append(completed, b)
		} else {
			active = append(active, b)
		}
	}
	return active, completed, nil
}
