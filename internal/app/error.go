package app

import (
	"github.com/castledice/storage/internal/http/middleware"
	"github.com/castledice/storage/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
