//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acaipro/storefront-service/internal/circuitbreaker"
)

func TestSettingsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewSettingsRepository(db)

	t.Run("get active when none exists", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		assert.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("create settings", func(t *testing.T) {
		settings, err := repo.Create(ctx, 5.00, 45, "admin")
		require.NoError(t, err)
		assert.NotNil(t, settings)
		assert.Equal(t, 5.00, settings.DeliveryFee)
		assert.Equal(t, 45, settings.DeliveryLeadMinutes)
		assert.True(t, settings.Active)
		assert.Equal(t, 1, settings.Version)
		assert.Equal(t, "admin", settings.CreatedBy)
		assert.False(t, settings.ID.IsZero())
	})

	t.Run("get active after create", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, 5.00, active.DeliveryFee)
		assert.True(t, active.Active)
	})

	t.Run("create new active deactivates old", func(t *testing.T) {
		oldActive, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, oldActive)

		newSettings, err := repo.Create(ctx, 7.50, 60, "admin-2")
		require.NoError(t, err)
		assert.NotNil(t, newSettings)

		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, 7.50, active.DeliveryFee)
		assert.Equal(t, 60, active.DeliveryLeadMinutes)
		assert.NotEqual(t, oldActive.ID, active.ID)
	})

	t.Run("update settings", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)

		updated, err := repo.Update(ctx, active.ID, 6.00, 50, "admin-updater")
		require.NoError(t, err)
		assert.Equal(t, 6.00, updated.DeliveryFee)
		assert.Equal(t, 50, updated.DeliveryLeadMinutes)
		assert.Equal(t, active.Version+1, updated.Version)
	})

	t.Run("list all settings", func(t *testing.T) {
		settings, err := repo.List(ctx, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(settings), 2)
	})

	t.Run("list with limit", func(t *testing.T) {
		settings, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, len(settings))
	})
}

func TestSettingsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database name
	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewSettingsRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewSettingsRepositoryWithCircuitBreaker(repo, cb)

	t.Run("circuit breaker allows successful operations", func(t *testing.T) {
		settings, err := wrappedRepo.Create(ctx, 5.00, 45, "admin")
		require.NoError(t, err)
		assert.NotNil(t, settings)

		active, err := wrappedRepo.GetActive(ctx)
		require.NoError(t, err)
		assert.NotNil(t, active)
	})

	t.Run("circuit breaker stats", func(t *testing.T) {
		stats := cb.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)
	})

	t.Run("circuit breaker Update", func(t *testing.T) {
		active, err := wrappedRepo.GetActive(ctx)
		require.NoError(t, err)
		if active != nil {
			updated, err := wrappedRepo.Update(ctx, active.ID, 8.00, 40, "admin-updater")
			require.NoError(t, err)
			assert.NotNil(t, updated)
		}
	})

	t.Run("circuit breaker List", func(t *testing.T) {
		settings, err := wrappedRepo.List(ctx, 5)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(settings), 0)
	})
}
