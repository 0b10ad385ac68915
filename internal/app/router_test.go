//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/acaipro/storefront-service/config"
	"github.com/acaipro/storefront-service/internal/middleware"
	"github.com/acaipro/storefront-service/internal/mocks"
)

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name         string
		dbComponents *DatabaseComponents
		cfg          config.Config
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name: "creates router without database components",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  100,
					RateWindow: time.Minute,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.StoreRoutes)
				assert.NotNil(t, components.AdminRoutes)
				assert.NotNil(t, components.HealthHandler)
				assert.Nil(t, components.Config.LoggingService)
				assert.True(t, components.Config.EnableIdempotency)
				assert.Equal(t, 100, components.Config.RateLimit)
			},
		},
		{
			name: "creates router with API keys",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  50,
					RateWindow: 30 * time.Second,
				},
				Auth: config.AuthConfig{
					APIKeys: map[string]bool{"test-key": true},
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.Equal(t, map[string]bool{"test-key": true}, components.Config.APIKeys)
			},
		},
		{
			name: "creates router with database components",
			dbComponents: &DatabaseComponents{
				OrdersRepo:     new(mocks.MockOrdersRepositoryInterface),
				SettingsRepo:   new(mocks.MockSettingsRepositoryInterface),
				LoggingService: new(mocks.MockLoggingService),
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Config.LoggingService)
			},
		},
		{
			name: "creates router with CORS origins",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:   10,
					RateWindow:  time.Second,
					CORSOrigins: []string{"http://localhost:5173"},
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.Equal(t, []string{"http://localhost:5173"}, components.Config.CORSOrigins)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := InitializeServices(config.SessionConfig{Size: 100, TTL: time.Minute})
			t.Cleanup(services.Sessions.Stop)
			t.Cleanup(middleware.StopAsyncLogger)

			components := InitializeRouter(services, tt.dbComponents, tt.cfg)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestInitializeRouter_StartsAsyncLogger(t *testing.T) {
	services := InitializeServices(config.SessionConfig{Size: 100, TTL: time.Minute})
	t.Cleanup(services.Sessions.Stop)
	t.Cleanup(middleware.StopAsyncLogger)

	dbComponents := &DatabaseComponents{
		OrdersRepo:     new(mocks.MockOrdersRepositoryInterface),
		SettingsRepo:   new(mocks.MockSettingsRepositoryInterface),
		LoggingService: new(mocks.MockLoggingService),
	}

	InitializeRouter(services, dbComponents, config.Config{
		Server: config.ServerConfig{RateLimit: 10, RateWindow: time.Second},
	})
	assert.NotNil(t, middleware.GetAsyncLogger())

	middleware.StopAsyncLogger()

	InitializeRouter(services, nil, config.Config{
		Server: config.ServerConfig{RateLimit: 10, RateWindow: time.Second},
	})
	assert.Nil(t, middleware.GetAsyncLogger())
}
