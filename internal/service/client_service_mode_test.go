package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-budget-sync/internal/cache"
	"github.com/MKhiriev/go-budget-sync/models"
)

// ── Mode ─────────────────────────────────────────────────────────────────────

func TestModeResolver_Mode_DefaultsToOnline(t *testing.T) {
	resolver := NewModeResolver(cache.NewMemoryStore())

	mode, err := resolver.Mode(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.ModeOnline, mode)
}

func TestModeResolver_Mode_ReadsPersistedFlag(t *testing.T) {
	cacheStore := cache.NewMemoryStore()
	resolver := NewModeResolver(cacheStore)
	ctx := context.Background()

	require.NoError(t, cacheStore.Set(ctx, "offlineMode", "offline"))

	mode, err := resolver.Mode(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.ModeOffline, mode)
}

func TestModeResolver_Mode_CorruptedFlag(t *testing.T) {
	cacheStore := cache.NewMemoryStore()
	resolver := NewModeResolver(cacheStore)
	ctx := context.Background()

	require.NoError(t, cacheStore.Set(ctx, "offlineMode", "turbo"))

	_, err := resolver.Mode(ctx)

	require.Error(t, err)
}

// ── SetMode ──────────────────────────────────────────────────────────────────

func TestModeResolver_SetMode_PersistsFlag(t *testing.T) {
	cacheStore := cache.NewMemoryStore()
	resolver := NewModeResolver(cacheStore)
	ctx := context.Background()

	require.NoError(t, resolver.SetMode(ctx, models.ModeOffline))

	raw, ok, err := cacheStore.Get(ctx, "offlineMode")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "offline", raw)

	mode, err := resolver.Mode(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ModeOffline, mode)
}

func TestModeResolver_SetMode_InvalidMode(t *testing.T) {
	resolver := NewModeResolver(cache.NewMemoryStore())

	err := resolver.SetMode(context.Background(), models.Mode("turbo"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestModeResolver_SetMode_OfflineWipesReplicas(t *testing.T) {
	cacheStore := cache.NewMemoryStore()
	resolver := NewModeResolver(cacheStore)
	ctx := context.Background()

	// Seed both mode variants of every list collection replica.
	for _, c := range models.ListCollections {
		require.NoError(t, cacheStore.Set(ctx, c.CacheKey(models.ModeOnline), `{"seed":true}`))
		require.NoError(t, cacheStore.Set(ctx, c.CacheKey(models.ModeOffline), `{"seed":true}`))
	}
	require.NoError(t, cacheStore.Set(ctx, "onlineChartTheme", `{"chartTheme":"dark"}`))

	require.NoError(t, resolver.SetMode(ctx, models.ModeOffline))

	for _, c := range models.ListCollections {
		_, ok, err := cacheStore.Get(ctx, c.CacheKey(models.ModeOnline))
		require.NoError(t, err)
		assert.False(t, ok, "online replica of %s should be wiped", c)

		_, ok, err = cacheStore.Get(ctx, c.CacheKey(models.ModeOffline))
		require.NoError(t, err)
		assert.False(t, ok, "offline replica of %s should be wiped", c)
	}

	// The preference object survives the reset.
	_, ok, err := cacheStore.Get(ctx, "onlineChartTheme")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestModeResolver_SetMode_OnlineKeepsReplicas(t *testing.T) {
	cacheStore := cache.NewMemoryStore()
	resolver := NewModeResolver(cacheStore)
	ctx := context.Background()

	require.NoError(t, cacheStore.Set(ctx, models.CollectionBudgets.CacheKey(models.ModeOnline), `{"seed":true}`))

	require.NoError(t, resolver.SetMode(ctx, models.ModeOnline))

	_, ok, err := cacheStore.Get(ctx, models.CollectionBudgets.CacheKey(models.ModeOnline))
	require.NoError(t, err)
	assert.True(t, ok, "switching online must not wipe anything")
}
