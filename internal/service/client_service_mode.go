package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-sync/internal/cache"
	"github.com/MKhiriev/go-budget-sync/models"
)

type modeResolver struct {
	cache cache.Store
}

// NewModeResolver creates a ModeResolver persisting the flag in the given
// cache store under the "offlineMode" key.
func NewModeResolver(cacheStore cache.Store) ModeResolver {
	return &modeResolver{cache: cacheStore}
}

func (m *modeResolver) Mode(ctx context.Context) (models.Mode, error) {
	raw, ok, err := m.cache.Get(ctx, cacheKeyMode)
	if err != nil {
		return "", fmt.Errorf("read mode flag: %w", err)
	}
	if !ok {
		return models.ModeOnline, nil
	}

	mode, err := models.ParseMode(raw)
	if err != nil {
		return "", fmt.Errorf("parse mode flag: %w", err)
	}
	return mode, nil
}

func (m *modeResolver) SetMode(ctx context.Context, mode models.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: mode %q", ErrInvalidDataProvided, mode)
	}

	if mode.IsOffline() {
		// Destructive reset: the offline session starts from an empty data
		// set, so every cached copy of the list collections goes.
		keys := make([]string, 0, 2*len(models.ListCollections))
		for _, c := range models.ListCollections {
			keys = append(keys, c.CacheKey(models.ModeOnline), c.CacheKey(models.ModeOffline))
		}
		if err := m.cache.Remove(ctx, keys...); err != nil {
			return fmt.Errorf("reset local replicas: %w", err)
		}
	}

	if err := m.cache.Set(ctx, cacheKeyMode, string(mode)); err != nil {
		return fmt.Errorf("persist mode flag: %w", err)
	}
	return nil
}
