package db

import (
	"testing"

	"myretro/internal/app/retro"
	"myretro/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnectAndMigrateSQLite(t *testing.T) {
	cfg := &config.Config{DBDriver: "sqlite", SQLitePath: ":memory:"}
	logger := zap.NewNop()

	conn, err := Connect(cfg, logger)
	require.NoError(t, err)
	require.NoError(t, Migrate(conn, logger))
	assert.True(t, conn.Migrator().HasTable(&retro.RetroBoard{}))
	assert.True(t, conn.Migrator().HasTable(&retro.Card{}))
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"}, zap.NewNop())
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
