package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "акции", cfg.Catalog.SaleQuery)
	assert.Equal(t, 12, cfg.Catalog.DefaultPageSize)
	assert.Equal(t, 5*time.Minute, cfg.Catalog.CacheTTL)
	assert.Equal(t, "orders.created", cfg.NATS.Subject)
	assert.Equal(t, "catalog-stock", cfg.NATS.Queue)
	assert.True(t, cfg.Postgres.AutoMigrate)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("CATALOG_SALE_QUERY", "sale")
	t.Setenv("CATALOG_CACHE_TTL", "90s")
	t.Setenv("FEEDBACK_API_TIMEOUT", "3")
	t.Setenv("CATALOG_DEFAULT_PAGE_SIZE", "24")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "not-a-number")

	cfg := LoadEnv()

	assert.Equal(t, "sale", cfg.Catalog.SaleQuery)
	assert.Equal(t, 90*time.Second, cfg.Catalog.CacheTTL)
	assert.Equal(t, 3*time.Second, cfg.Feedback.Timeout)
	assert.Equal(t, 24, cfg.Catalog.DefaultPageSize)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns, "bad values fall back")
}

func TestGetEnvDuration_Invalid(t *testing.T) {
	t.Setenv("X_DURATION", "soon")
	assert.Equal(t, time.Minute, getEnvDuration("X_DURATION", time.Minute))
}
