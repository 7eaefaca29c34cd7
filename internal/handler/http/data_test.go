package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/service"
	"github.com/MKhiriev/go-budget-sync/internal/utils"
	"github.com/MKhiriev/go-budget-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: DocumentService
// ─────────────────────────────────────────────

// mockDocumentSvc implements service.DocumentService for unit tests.
// Each method field can be overridden per test case; unset methods succeed
// with zero values.
type mockDocumentSvc struct {
	getFn         func(ctx context.Context, userID int64, collection models.Collection) (models.DocumentSnapshot, error)
	setFn         func(ctx context.Context, userID int64, collection models.Collection, doc models.Document, merge bool) error
	updateFieldFn func(ctx context.Context, userID int64, collection models.Collection, field string, value json.RawMessage) error
	arrayUnionFn  func(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error
	arrayRemoveFn func(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error
}

func (m *mockDocumentSvc) Get(ctx context.Context, userID int64, collection models.Collection) (models.DocumentSnapshot, error) {
	if m.getFn == nil {
		return models.DocumentSnapshot{}, nil
	}
	return m.getFn(ctx, userID, collection)
}

func (m *mockDocumentSvc) Set(ctx context.Context, userID int64, collection models.Collection, doc models.Document, merge bool) error {
	if m.setFn == nil {
		return nil
	}
	return m.setFn(ctx, userID, collection, doc, merge)
}

func (m *mockDocumentSvc) UpdateField(ctx context.Context, userID int64, collection models.Collection, field string, value json.RawMessage) error {
	if m.updateFieldFn == nil {
		return nil
	}
	return m.updateFieldFn(ctx, userID, collection, field, value)
}

func (m *mockDocumentSvc) ArrayUnion(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error {
	if m.arrayUnionFn == nil {
		return nil
	}
	return m.arrayUnionFn(ctx, userID, collection, element)
}

func (m *mockDocumentSvc) ArrayRemove(ctx context.Context, userID int64, collection models.Collection, element json.RawMessage) error {
	if m.arrayRemoveFn == nil {
		return nil
	}
	return m.arrayRemoveFn(ctx, userID, collection, element)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerForDocuments builds a Handler with the given DocumentService mock.
func newHandlerForDocuments(t *testing.T, svc service.DocumentService) *Handler {
	t.Helper()
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:     &mockAuthSvc{},
			DocumentService: svc,
		},
	}
}

// encodeBody serialises v to JSON and returns it as an io.Reader.
func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// documentRequest builds a request carrying the {collection} URL parameter
// and the authenticated user's ID, as the router and auth middleware would.
func documentRequest(method, collection string, userID int64, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, "/api/collections/"+collection, body)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("collection", collection)

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

// ─────────────────────────────────────────────
// getDocument
// ─────────────────────────────────────────────

func TestGetDocument_Success(t *testing.T) {
	snap := models.DocumentSnapshot{
		Exists: true,
		Document: models.Document{
			Budgets: []models.Budget{{ID: "b-1", Name: "Groceries", Goal: 300}},
		},
	}
	svc := &mockDocumentSvc{
		getFn: func(_ context.Context, userID int64, collection models.Collection) (models.DocumentSnapshot, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, models.CollectionBudgets, collection)
			return snap, nil
		},
	}

	h := newHandlerForDocuments(t, svc)
	req := documentRequest(http.MethodGet, "budgets", 42, nil)
	rec := httptest.NewRecorder()

	h.getDocument(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DocumentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Exists)
	require.Len(t, resp.Document.Budgets, 1)
	assert.Equal(t, "Groceries", resp.Document.Budgets[0].Name)
}

func TestGetDocument_Missing(t *testing.T) {
	svc := &mockDocumentSvc{
		getFn: func(_ context.Context, _ int64, _ models.Collection) (models.DocumentSnapshot, error) {
			return models.DocumentSnapshot{}, nil
		},
	}

	h := newHandlerForDocuments(t, svc)
	req := documentRequest(http.MethodGet, "budgets", 42, nil)
	rec := httptest.NewRecorder()

	h.getDocument(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DocumentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Exists)
}

func TestGetDocument_UnknownCollection(t *testing.T) {
	h := newHandlerForDocuments(t, &mockDocumentSvc{})
	req := documentRequest(http.MethodGet, "passwords", 42, nil)
	rec := httptest.NewRecorder()

	h.getDocument(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDocument_NoUserID(t *testing.T) {
	h := newHandlerForDocuments(t, &mockDocumentSvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/collections/budgets", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("collection", "budgets")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	h.getDocument(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetDocument_ServiceError(t *testing.T) {
	svc := &mockDocumentSvc{
		getFn: func(_ context.Context, _ int64, _ models.Collection) (models.DocumentSnapshot, error) {
			return models.DocumentSnapshot{}, errors.New("db connection lost")
		},
	}

	h := newHandlerForDocuments(t, svc)
	req := documentRequest(http.MethodGet, "budgets", 42, nil)
	rec := httptest.NewRecorder()

	h.getDocument(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// setDocument
// ─────────────────────────────────────────────

func TestSetDocument_Success(t *testing.T) {
	var gotMerge bool
	svc := &mockDocumentSvc{
		setFn: func(_ context.Context, userID int64, collection models.Collection, doc models.Document, merge bool) error {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, models.CollectionTransactions, collection)
			assert.Len(t, doc.Transactions, 1)
			gotMerge = merge
			return nil
		},
	}

	body := encodeBody(t, models.SetDocumentRequest{
		Document: models.Document{
			Transactions: []models.Transaction{{ID: "t-1", BudgetName: "Groceries", Amount: 12.5}},
		},
		Merge: true,
	})

	h := newHandlerForDocuments(t, svc)
	req := documentRequest(http.MethodPut, "transactions", 7, body)
	rec := httptest.NewRecorder()

	h.setDocument(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotMerge)
}

func TestSetDocument_InvalidJSON(t *testing.T) {
	h := newHandlerForDocuments(t, &mockDocumentSvc{})
	req := documentRequest(http.MethodPut, "budgets", 7, strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.setDocument(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// ─────────────────────────────────────────────
// updateField
// ─────────────────────────────────────────────

func TestUpdateField_Success(t *testing.T) {
	svc := &mockDocumentSvc{
		updateFieldFn: func(_ context.Context, _ int64, collection models.Collection, field string, value json.RawMessage) error {
			assert.Equal(t, models.CollectionPreferences, collection)
			assert.Equal(t, "chartTheme", field)
			assert.JSONEq(t, `"dark"`, string(value))
			return nil
		},
	}

	body := encodeBody(t, models.UpdateFieldRequest{
		Field: "chartTheme",
		Value: json.RawMessage(`"dark"`),
	})

	h := newHandlerForDocuments(t, svc)
	req := documentRequest(http.MethodPatch, "userPreferences", 7, body)
	rec := httptest.NewRecorder()

	h.updateField(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateField_ValidationErrorMapsTo400(t *testing.T) {
	svc := &mockDocumentSvc{
		updateFieldFn: func(_ context.Context, _ int64, _ models.Collection, _ string, _ json.RawMessage) error {
			return fmt.Errorf("%w: collection %q has no field %q", service.ErrInvalidDataProvided, "budgets", "nope")
		},
	}

	body := encodeBody(t, models.UpdateFieldRequest{Field: "nope", Value: json.RawMessage(`[]`)})

	h := newHandlerForDocuments(t, svc)
	req := documentRequest(http.MethodPatch, "budgets", 7, body)
	rec := httptest.NewRecorder()

	h.updateField(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// arrayUnion / arrayRemove
// ─────────────────────────────────────────────

func TestArrayUnion_Success(t *testing.T) {
	var gotElement json.RawMessage
	svc := &mockDocumentSvc{
		arrayUnionFn: func(_ context.Context, _ int64, collection models.Collection, element json.RawMessage) error {
			assert.Equal(t, models.CollectionBudgets, collection)
			gotElement = element
			return nil
		},
	}

	budget := models.Budget{ID: "b-9", Name: "Trips", Goal: 1500}
	raw, err := json.Marshal(budget)
	require.NoError(t, err)

	body := encodeBody(t, models.ArrayElementRequest{Field: "budgets", Element: raw})

	h := newHandlerForDocuments(t, svc)
	req := documentRequest(http.MethodPost, "budgets", 7, body)
	rec := httptest.NewRecorder()

	h.arrayUnion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(raw), string(gotElement))
}

func TestArrayUnion_InvalidJSON(t *testing.T) {
	h := newHandlerForDocuments(t, &mockDocumentSvc{})
	req := documentRequest(http.MethodPost, "budgets", 7, strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.arrayUnion(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArrayRemove_Success(t *testing.T) {
	called := false
	svc := &mockDocumentSvc{
		arrayRemoveFn: func(_ context.Context, _ int64, collection models.Collection, element json.RawMessage) error {
			called = true
			assert.Equal(t, models.CollectionNotifications, collection)
			return nil
		},
	}

	body := encodeBody(t, models.ArrayElementRequest{
		Field:   "notifications",
		Element: json.RawMessage(`{"id":"n-1"}`),
	})

	h := newHandlerForDocuments(t, svc)
	req := documentRequest(http.MethodPost, "notifications", 7, body)
	rec := httptest.NewRecorder()

	h.arrayRemove(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestArrayRemove_ServiceError(t *testing.T) {
	svc := &mockDocumentSvc{
		arrayRemoveFn: func(_ context.Context, _ int64, _ models.Collection, _ json.RawMessage) error {
			return fmt.Errorf("%w: record has no id", service.ErrInvalidDataProvided)
		},
	}

	body := encodeBody(t, models.ArrayElementRequest{Element: json.RawMessage(`{}`)})

	h := newHandlerForDocuments(t, svc)
	req := documentRequest(http.MethodPost, "notifications", 7, body)
	rec := httptest.NewRecorder()

	h.arrayRemove(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
