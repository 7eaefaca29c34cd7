// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRemoteStore(t *testing.T, serverURL string) *httpRemoteStore {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL}
	appCfg := config.ClientApp{HashKey: "testhashkey"}

	rs, err := NewHTTPRemoteStore(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return rs.(*httpRemoteStore)
}

// ── Register / Login ─────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "alice", user.Login)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{UserID: 7, Token: "tok-123"})
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	auth, err := rs.Register(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), auth.UserID)
	assert.Equal(t, "tok-123", rs.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	_, err := rs.Register(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid login/password"))
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	_, err := rs.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, rs.Token())
}

// ── GetDocument ──────────────────────────────────────────────────────────────

func TestGetDocument_Exists(t *testing.T) {
	want := models.Document{Budgets: []models.Budget{{ID: "1", Name: "Rent", Goal: 1000}}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/collections/budgets", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.DocumentResponse{Exists: true, Document: want})
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	rs.SetToken("tok-123")

	snap, err := rs.GetDocument(context.Background(), models.CollectionBudgets, 7)
	require.NoError(t, err)
	assert.True(t, snap.Exists)
	assert.Equal(t, want, snap.Document)
}

func TestGetDocument_Absent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.DocumentResponse{Exists: false})
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	rs.SetToken("tok-123")

	snap, err := rs.GetDocument(context.Background(), models.CollectionTransactions, 7)
	require.NoError(t, err)
	assert.False(t, snap.Exists)
	assert.True(t, snap.Document.IsEmpty())
}

// ── SetDocument / UpdateField ────────────────────────────────────────────────

func TestSetDocument_SendsFullDocumentAndHash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/collections/budgets", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("HashSHA256"))

		var req models.SetDocumentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Document.Budgets, 1)
		assert.False(t, req.Merge)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	rs.SetToken("tok-123")

	doc := models.Document{Budgets: []models.Budget{{ID: "1", Name: "Rent", Goal: 1000}}}
	require.NoError(t, rs.SetDocument(context.Background(), models.CollectionBudgets, 7, doc, false))
}

func TestUpdateField_SendsFieldPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/collections/userPreferences/field", r.URL.Path)

		var req models.UpdateFieldRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "chartTheme", req.Field)
		assert.JSONEq(t, `"dark"`, string(req.Value))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	rs.SetToken("tok-123")

	err := rs.UpdateField(context.Background(), models.CollectionPreferences, 7, "chartTheme", json.RawMessage(`"dark"`))
	require.NoError(t, err)
}

// ── Array primitives ─────────────────────────────────────────────────────────

func TestArrayUnion_SendsElement(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/collections/budgets/array-union", r.URL.Path)

		var req models.ArrayElementRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "budgets", req.Field)
		assert.JSONEq(t, `{"id":"1"}`, string(req.Element))

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	rs.SetToken("tok-123")

	err := rs.ArrayUnion(context.Background(), models.CollectionBudgets, 7, "budgets", json.RawMessage(`{"id":"1"}`))
	require.NoError(t, err)
}

func TestArrayRemove_NotFoundMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("document not found"))
	}))
	defer srv.Close()

	rs := newTestRemoteStore(t, srv.URL)
	rs.SetToken("tok-123")

	err := rs.ArrayRemove(context.Background(), models.CollectionBudgets, 7, "budgets", json.RawMessage(`{"id":"1"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── URL normalisation ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "scheme kept", raw: "https://example.com/", want: "https://example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
