//go:build integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/acaipro/storefront-service/config"
)

func TestInitializeApp_Integration(t *testing.T) {
	t.Parallel()

	// Use shared container with unique database names for each subtest
	uri := getSharedContainerURI()

	t.Run("initialize app with MongoDB enabled", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.Config{
			Server: config.ServerConfig{
				Port:       "8080",
				RateLimit:  100,
				RateWindow: time.Minute,
			},
			Store: config.StoreConfig{
				DeliveryFee:      5.0,
				DeliveryLeadTime: 45 * time.Minute,
				SettingsCacheTTL: 30 * time.Second,
			},
			Sessions: config.SessionConfig{
				Size: 1000,
				TTL:  30 * time.Minute,
			},
			Database: config.DatabaseConfig{
				URI:                            uri,
				DatabaseName:                   dbName,
				LogsTTL:                        30 * 24 * time.Hour,
				Enabled:                        true,
				CircuitBreakerFailureThreshold: 5,
				CircuitBreakerSuccessThreshold: 2,
				CircuitBreakerTimeout:          30 * time.Second,
			},
		}

		router := InitializeApp(cfg)
		assert.NotNil(t, router)
	})

	t.Run("initialize app with MongoDB disabled", func(t *testing.T) {
		t.Parallel()
		cfg := config.Config{
			Server: config.ServerConfig{
				Port: "8080",
			},
			Database: config.DatabaseConfig{
				Enabled: false,
			},
		}

		router := InitializeApp(cfg)
		assert.NotNil(t, router)
	})

	t.Run("initialize app with custom store defaults", func(t *testing.T) {
		t.Parallel()
		dbName := sanitizeDBNameForApp(t.Name())
		cfg := config.Config{
			Server: config.ServerConfig{
				Port: "8080",
			},
			Store: config.StoreConfig{
				DeliveryFee:      8.5,
				DeliveryLeadTime: time.Hour,
			},
			Database: config.DatabaseConfig{
				URI:                            uri,
				DatabaseName:                   dbName,
				LogsTTL:                        30 * 24 * time.Hour,
				Enabled:                        true,
				CircuitBreakerFailureThreshold: 5,
				CircuitBreakerSuccessThreshold: 2,
				CircuitBreakerTimeout:          30 * time.Second,
			},
		}

		router := InitializeApp(cfg)
		assert.NotNil(t, router)
	})
}
