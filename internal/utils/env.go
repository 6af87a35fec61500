package utils

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var envFiles = []string{".env.local", ".env"}

// LoadEnv loads .env.local then .env. Variables already present in the
// process environment win, and earlier files win over later ones.
func LoadEnv(logger *zap.Logger) {
	var found []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			found = append(found, f)
		}
	}

	if len(found) == 0 {
		logger.Warn("No ENV file found, using process environment and defaults")
		return
	}

	if err := godotenv.Load(found...); err != nil {
		logger.Warn("Failed to load ENV files", zap.Strings("files", found), zap.Error(err))
		return
	}
	logger.Info("ENV files loaded", zap.Strings("files", found))
}
