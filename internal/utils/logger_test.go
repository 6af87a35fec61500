package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLoggerConfigEncodingFollowsEnv(t *testing.T) {
	cases := map[string]string{
		"":        "console",
		"dev":     "console",
		"DEV":     "console",
		"prod":    "json",
		"staging": "json",
	}
	for env, encoding := range cases {
		t.Run(env, func(t *testing.T) {
			assert.Equal(t, encoding, loggerConfig(env, "").Encoding)
		})
	}
}

func TestLoggerConfigLevelOverride(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, loggerConfig("dev", "").Level.Level())
	assert.Equal(t, zapcore.InfoLevel, loggerConfig("prod", "").Level.Level())

	assert.Equal(t, zapcore.WarnLevel, loggerConfig("prod", "WARN").Level.Level())
	assert.Equal(t, zapcore.ErrorLevel, loggerConfig("dev", "error").Level.Level())
	assert.Equal(t, zapcore.InfoLevel, loggerConfig("prod", "loud").Level.Level())
}

func TestNewLoggerBuilds(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("LOG_LEVEL", "debug")

	logger, err := NewLogger()
	if assert.NoError(t, err) {
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	}
}
