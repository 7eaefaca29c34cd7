package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-budget-sync/internal/validators"
	"github.com/MKhiriev/go-budget-sync/models"
)

type transactionService struct {
	replicas  ReplicaSynchronizer
	queue     SyncQueue
	validator validators.Validator
}

// NewTransactionService creates a TransactionService writing through the
// given synchronizer.
func NewTransactionService(replicas ReplicaSynchronizer, queue SyncQueue, validator validators.Validator) TransactionService {
	return &transactionService{replicas: replicas, queue: queue, validator: validator}
}

func (s *transactionService) Add(ctx context.Context, userID int64, mode models.Mode, t models.Transaction) (models.Transaction, error) {
	if err := s.validator.Validate(ctx, t); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Date.IsZero() {
		t.Date = time.Now().UTC()
	}

	if err := s.replicas.Append(ctx, models.CollectionTransactions, userID, mode, t); err != nil {
		return models.Transaction{}, err
	}

	if mode.IsOffline() {
		raw, err := json.Marshal(t)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("encode transaction record: %w", err)
		}
		if err := s.queue.Enqueue(ctx, models.SyncAction{
			Kind:       models.SyncActionAdd,
			Collection: models.CollectionTransactions,
			UserID:     userID,
			Record:     raw,
		}); err != nil {
			return models.Transaction{}, err
		}
	}
	return t, nil
}

func (s *transactionService) List(ctx context.Context, userID int64, mode models.Mode) ([]models.Transaction, error) {
	doc, err := s.replicas.Fetch(ctx, models.CollectionTransactions, userID, mode)
	if err != nil {
		return nil, err
	}
	return doc.Transactions, nil
}
