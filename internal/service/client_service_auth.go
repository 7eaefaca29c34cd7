package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-budget-sync/internal/adapter"
	"github.com/MKhiriev/go-budget-sync/internal/cache"
	"github.com/MKhiriev/go-budget-sync/internal/utils"
	"github.com/MKhiriev/go-budget-sync/internal/validators"
	"github.com/MKhiriev/go-budget-sync/models"
)

type clientAuthService struct {
	cache     cache.Store
	remote    adapter.RemoteStore
	validator validators.Validator
}

// NewClientAuthService creates a ClientAuthService that authenticates against
// the remote store and persists the session under the "offlineUser" cache key.
func NewClientAuthService(cacheStore cache.Store, remote adapter.RemoteStore, validator validators.Validator) ClientAuthService {
	return &clientAuthService{cache: cacheStore, remote: remote, validator: validator}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	if err := a.validator.Validate(ctx, user); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resp, err := a.remote.Register(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("register on server: %w", err)
	}
	return a.storeSession(ctx, user.Login, resp)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	if err := a.validator.Validate(ctx, user); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resp, err := a.remote.Login(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("login on server: %w", err)
	}
	return a.storeSession(ctx, user.Login, resp)
}

func (a *clientAuthService) Resume(ctx context.Context) (models.Session, error) {
	raw, ok, err := a.cache.Get(ctx, cacheKeySession)
	if err != nil {
		return models.Session{}, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return models.Session{}, ErrNotAuthenticated
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode session: %w", err)
	}

	expired, err := utils.TokenExpired(session.Token)
	if err != nil {
		return models.Session{}, fmt.Errorf("inspect session token: %w", err)
	}
	if expired {
		return models.Session{}, ErrTokenIsExpired
	}

	a.remote.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.cache.Remove(ctx, cacheKeySession); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	a.remote.SetToken("")
	return nil
}

func (a *clientAuthService) storeSession(ctx context.Context, login string, resp models.AuthResponse) (models.Session, error) {
	session := models.Session{
		UserID: resp.UserID,
		Login:  login,
		Token:  resp.Token,
		At:     time.Now().UTC(),
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return models.Session{}, fmt.Errorf("encode session: %w", err)
	}
	if err := a.cache.Set(ctx, cacheKeySession, string(raw)); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}
	return session, nil
}
