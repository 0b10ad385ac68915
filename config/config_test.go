package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 5.00, cfg.Store.DeliveryFee)
		assert.Equal(t, 45*time.Minute, cfg.Store.DeliveryLeadTime)
		assert.Equal(t, 10000, cfg.Sessions.Size)
		assert.Equal(t, 24*time.Hour, cfg.Sessions.TTL)
		assert.Empty(t, cfg.Auth.AdminPasswordHash)
		assert.False(t, cfg.Database.Enabled)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("DELIVERY_FEE", "7.50")
		_ = os.Setenv("DELIVERY_LEAD_TIME", "1h")
		_ = os.Setenv("CART_SESSION_TTL", "2h")
		_ = os.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdef")
		_ = os.Setenv("API_KEYS", "key1,key2")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 7.50, cfg.Store.DeliveryFee)
		assert.Equal(t, time.Hour, cfg.Store.DeliveryLeadTime)
		assert.Equal(t, 2*time.Hour, cfg.Sessions.TTL)
		assert.Equal(t, "$2a$10$abcdef", cfg.Auth.AdminPasswordHash)
		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("DELIVERY_FEE", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, 5.00, cfg.Store.DeliveryFee)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	})

	t.Run("parses API keys with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("API_KEYS", " key1 , key2 , key3 ")
		defer os.Clearenv()

		cfg := Load()

		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
		assert.True(t, cfg.Auth.APIKeys["key3"])
	})

	t.Run("returns nil for empty API keys", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Auth.APIKeys)
	})

	t.Run("appends CORS origins to defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://acai.example.com")
		defer os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://acai.example.com")
	})
}
