package app

import (
	"github.com/castledice/storage/internal/config"
	"github.com/castledice/storage/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
