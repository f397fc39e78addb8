package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("RATE_LIMIT_DRIVER", "")
	t.Setenv("CONTACT_RATE_LIMIT", "")
	t.Setenv("CONTACT_RATE_WINDOW", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, DriverMemory, cfg.RateLimit.Driver)
	assert.Equal(t, 5, cfg.RateLimit.ContactLimit)
	assert.Equal(t, time.Hour, cfg.RateLimit.ContactWindow)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("RATE_LIMIT_DRIVER", "redis")
	t.Setenv("CONTACT_RATE_LIMIT", "10")
	t.Setenv("CONTACT_RATE_WINDOW", "90")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, DriverRedis, cfg.RateLimit.Driver)
	assert.Equal(t, 10, cfg.RateLimit.ContactLimit)
	assert.Equal(t, 90*time.Second, cfg.RateLimit.ContactWindow)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.Database.URL)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load()
	require.Error(t, err)
}

func TestProductionRequiresSecret(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("RATE_LIMIT_DRIVER", "")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
