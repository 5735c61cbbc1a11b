package app

import (
	"github.com/castledice/storage/internal/http"
	"github.com/castledice/storage/internal/http/handlers"
	"github.com/castledice/storage/internal/http/middleware"
	"github.com/castledice/storage/internal/infrastructure/logger"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	userHandler *handlers.UserHandler,
	gameHandler *handlers.GameHandler,
	assetHandler *handlers.AssetHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(userHandler, gameHandler, assetHandler, errorHandler, log, port)
}
