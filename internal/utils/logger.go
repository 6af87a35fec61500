package utils

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. ENV=dev (or no ENV) gives colored
// console output, anything else JSON. LOG_LEVEL overrides the default level.
func NewLogger() (*zap.Logger, error) {
	cfg := loggerConfig(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	return cfg.Build()
}

func loggerConfig(env, levelStr string) zap.Config {
	cfg := zap.NewProductionConfig()
	if env == "" || strings.EqualFold(env, "dev") {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if levelStr != "" {
		level, err := zapcore.ParseLevel(strings.ToLower(levelStr))
		if err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}
	return cfg
}
