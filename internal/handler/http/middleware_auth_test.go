package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/service"
	"github.com/MKhiriev/go-budget-sync/internal/utils"
	"github.com/MKhiriev/go-budget-sync/models"
)

func newAuthMiddlewareHandler(parseTokenFn func(ctx context.Context, s string) (models.Token, error)) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: &mockAuthService{parseTokenFn: parseTokenFn},
		},
	}
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func callAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/collections/budgets", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

// ── getTokenFromAuthHeader ───────────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty header", header: "", wantErr: ErrInvalidAuthorizationHeader},
		{name: "single space", header: " ", wantErr: ErrEmptyToken},
		{name: "non-bearer scheme still parses second part", header: "Basic dXNlcjpwYXNz", wantToken: "dXNlcjpwYXNz"},
		{name: "extra parts ignored", header: "Bearer token trailing", wantToken: "token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ── auth middleware ──────────────────────────────────────────────────────────

func TestAuth_ValidToken(t *testing.T) {
	h := newAuthMiddlewareHandler(func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{UserID: 42}, nil
	})

	var gotUserID any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value(utils.UserIDCtxKey)
		w.WriteHeader(http.StatusOK)
	})

	rr := callAuth(h, "Bearer valid-token", next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(42), gotUserID)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name         string
		authHeader   string
		parseTokenFn func(ctx context.Context, s string) (models.Token, error)
		wantBodyPart string
	}{
		{
			name:         "missing header",
			authHeader:   "",
			wantBodyPart: ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:         "header without token part",
			authHeader:   "BearerTokenWithoutSpace",
			wantBodyPart: ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:       "expired token",
			authHeader: "Bearer expired",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpired
			},
			wantBodyPart: service.ErrTokenIsExpired.Error(),
		},
		{
			name:       "invalid token",
			authHeader: "Bearer garbage",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
			wantBodyPart: http.StatusText(http.StatusUnauthorized),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseTokenFn := tt.parseTokenFn
			if parseTokenFn == nil {
				// header никогда не доходит до сервиса
				parseTokenFn = func(_ context.Context, _ string) (models.Token, error) {
					t.Fatal("ParseToken should not be called")
					return models.Token{}, nil
				}
			}
			h := newAuthMiddlewareHandler(parseTokenFn)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			rr := callAuth(h, tt.authHeader, next)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.False(t, nextCalled)
			assert.Contains(t, rr.Body.String(), tt.wantBodyPart)
		})
	}
}

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newAuthMiddlewareHandler(func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{UserID: 1}, nil
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/collections/budgets", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, originalCtx, req.Context())
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newAuthMiddlewareHandler(func(_ context.Context, _ string) (models.Token, error) {
		return models.Token{UserID: 7}, nil
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.auth(next)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodGet, "/api/collections/transactions", nil)
			req = injectNopLogger(req)
			req.Header.Set("Authorization", "Bearer concurrent-token")
			rr := httptest.NewRecorder()

			middleware.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		}()
	}
	wg.Wait()
}
