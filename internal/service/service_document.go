package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/store"
	"github.com/MKhiriev/go-budget-sync/models"
)

// documentService is the concrete implementation of DocumentService.
// It is a thin business layer over the DocumentRepository: persistence
// semantics (upserts, read-modify-write cycles) live in the repository,
// while input validation is layered on top via DocumentValidationService.
type documentService struct {
	documents store.DocumentRepository
	logger    *logger.Logger
}

// NewDocumentService constructs a DocumentService backed by the given
// repository.
func NewDocumentService(documents store.DocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documents: documents,
		logger:    logger,
	}
}

func (s *documentService) Get(ctx context.Context, userID int64, collection models.Collection) (models.DocumentSnapshot, error) {
	snap, err := s.documents.Get(ctx, userID, collection)
	if err != nil {
		return models.DocumentSnapshot{}, fmt.Errorf("get document: %w", err)
	}
	return snap, nil
}

func (s *documentService) Set(ctx context.Context, userID int64, collection models.Collection, doc models.Document, merge bool) error {
	if err := s.documents.Set(ctx, userID, collection, doc, merge); err != nil {
		return fmt.Errorf("set document: %w", err)
	}
	return nil
}

func (s *documentService) UpdateField(ctx context.Context, userID int64, collection models.Collection, field string, value json.RawMessage) error {
	if err := s.documents.UpdateField(ctx, userID, collection, field, value); err != nil {
		return fmt.Errorf("update document field: %w", err)
	}
	return nil
}

func (s *documentService) ArrayUnion(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error {
	if err := s.documents.ArrayUnion(ctx, userID, collection, element); err != nil {
		return fmt.Errorf("array union: %w", err)
	}
	return nil
}

func (s *documentService) ArrayRemove(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error {
	if err := s.documents.ArrayRemove(ctx, userID, collection, element); err != nil {
		return fmt.Errorf("array remove: %w", err)
	}
	return nil
}
