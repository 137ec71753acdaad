package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("IS_PRODUCTION", "")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.False(t, cfg.IsProduction)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://u:p@localhost:5432/commission")
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("ENABLE_DB_CHECK", "1")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("RATE_LIMIT", " 10-S ")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("MIGRATIONS_PATH", "/srv/migrations")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@localhost:5432/commission", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.True(t, cfg.EnableDBCheck)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "file:///srv/migrations", cfg.MigrationsPath)
}
