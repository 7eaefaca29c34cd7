package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-budget-sync/internal/validators"
	"github.com/MKhiriev/go-budget-sync/models"
)

// DocumentValidationService decorates a DocumentService with input checks:
// the collection must be known, field updates must target the collection's
// payload field, and list elements must decode into the collection's record
// type and pass domain validation.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *DocumentValidationService) Get(ctx context.Context, userID int64, collection models.Collection) (models.DocumentSnapshot, error) {
	if !collection.Valid() {
		return models.DocumentSnapshot{}, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	return v.inner.Get(ctx, userID, collection)
}

func (v *DocumentValidationService) Set(ctx context.Context, userID int64, collection models.Collection, doc models.Document, merge bool) error {
	if !collection.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	return v.inner.Set(ctx, userID, collection, doc, merge)
}

func (v *DocumentValidationService) UpdateField(ctx context.Context, userID int64, collection models.Collection, field string, value json.RawMessage) error {
	if !collection.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	if field != collection.ListField() {
		return fmt.Errorf("%w: collection %q has no field %q", ErrInvalidDataProvided, collection, field)
	}
	if !json.Valid(value) {
		return fmt.Errorf("%w: field value is not valid JSON", ErrInvalidDataProvided)
	}
	return v.inner.UpdateField(ctx, userID, collection, field, value)
}

func (v *DocumentValidationService) ArrayUnion(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error {
	if err := v.validateElement(ctx, collection, element); err != nil {
		return err
	}
	return v.inner.ArrayUnion(ctx, userID, collection, element)
}

func (v *DocumentValidationService) ArrayRemove(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error {
	// Removal only needs the record's id; the rest of the element may be
	// stale, so the full domain checks are skipped here.
	if !collection.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	if _, err := recordID(element); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.ArrayRemove(ctx, userID, collection, element)
}

// validateElement decodes element into the collection's record type and runs
// the domain validator over it, including the record id.
func (v *DocumentValidationService) validateElement(ctx context.Context, collection models.Collection, element json.RawMessage) error {
	var (
		record any
		fields []string
	)
	switch collection {
	case models.CollectionBudgets:
		record = &models.Budget{}
		fields = []string{validators.FieldID, validators.FieldName, validators.FieldGoal, validators.FieldAmountSpent}
	case models.CollectionTransactions:
		record = &models.Transaction{}
		fields = []string{validators.FieldID, validators.FieldBudgetName, validators.FieldAmount}
	case models.CollectionNotifications:
		record = &models.Notification{}
		fields = []string{validators.FieldID, validators.FieldMessage}
	case models.CollectionPreferences:
		return fmt.Errorf("%w: collection %q holds no record list", ErrInvalidDataProvided, collection)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	if err := json.Unmarshal(element, record); err != nil {
		return fmt.Errorf("%w: decode %s record: %w", ErrInvalidDataProvided, collection, err)
	}
	if err := v.validator.Validate(ctx, record, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// recordID extracts the mandatory "id" field from a list element.
func recordID(element json.RawMessage) (string, error) {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(element, &probe); err != nil {
		return "", fmt.Errorf("decode record: %w", err)
	}
	if probe.ID == "" {
		return "", fmt.Errorf("record has no id")
	}
	return probe.ID, nil
}

func (v *DocumentValidationService) Wrap(wrapped DocumentService) DocumentService {
	v.inner = wrapped
	return v
}
