package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFallbacks(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_TTL", "not-a-duration")
	t.Setenv("SEED", "maybe")

	cfg := LoadConfig()

	assert.Equal(t, 5*time.Minute, cfg.RedisTTL)
	assert.True(t, cfg.Seed)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/retro.db")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REDIS_TTL", "30s")
	t.Setenv("SEED", "false")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/retro.db", cfg.SQLitePath)
	assert.Equal(t, 30*time.Second, cfg.RedisTTL)
	assert.False(t, cfg.Seed)
	assert.True(t, cfg.CacheEnabled())
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBUser: "u", DBPass: "p", DBName: "retro", DBPort: "5433"}
	assert.Equal(t, "host=db user=u password=p dbname=retro port=5433 sslmode=disable", cfg.PostgresDSN())
}
