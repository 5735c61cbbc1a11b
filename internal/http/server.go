package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/castledice/storage/internal/http/handlers"
	"github.com/castledice/storage/internal/http/middleware"
	"github.com/castledice/storage/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router       *gin.Engine
	userHandler  *handlers.UserHandler
	gameHandler  *handlers.GameHandler
	assetHandler *handlers.AssetHandler
	errorHandler *middleware.ErrorHandler
	port         string
}

// NewServer creates a new HTTP server
func NewServer(
	userHandler *handlers.UserHandler,
	gameHandler *handlers.GameHandler,
	assetHandler *handlers.AssetHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:       router,
		userHandler:  userHandler,
		gameHandler:  gameHandler,
		assetHandler: assetHandler,
		errorHandler: errorHandler,
		port:         port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.router.GET("/user/:auth_id", s.userHandler.GetUser)
	s.router.POST("/user", s.userHandler.CreateUser)
	s.router.PUT("/authuser", s.userHandler.UpdateUser)
	s.router.DELETE("/user/:auth_id", s.userHandler.DeleteUser)

	s.router.GET("/game/:game_id", s.gameHandler.GetGame)
	s.router.POST("/game", s.gameHandler.CreateGame)

	s.router.POST("/asset", s.assetHandler.CreateAsset)
	s.router.GET("/asset/:asset_id", s.assetHandler.GetAsset)
	s.router.PUT("/asset/:asset_id", s.assetHandler.UpdateAsset)

	nft := s.router.Group("/nft")
	{
		nft.POST("", s.assetHandler.AddAssetToUser)
		nft.POST("/ownership", s.assetHandler.CheckOwnership)
		nft.POST("/freeze", s.assetHandler.FreezeAssets)
		nft.POST("/unfreeze", s.assetHandler.UnfreezeAssets)
		nft.POST("/match", s.assetHandler.Match)
		nft.GET("/:nft_id", s.assetHandler.GetUsersAsset)
		nft.DELETE("/:nft_id", s.assetHandler.RemoveAssetFromUser)
	}
}

// Router exposes the underlying gin engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
