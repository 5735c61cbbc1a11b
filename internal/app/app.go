package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/castledice/storage/internal/config"
	httpserver "github.com/castledice/storage/internal/http"

	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Castledice Storage Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitUnitOfWorkFactory,
			a.InitChainGateway,
			a.InitUserUseCase,
			a.InitGameUseCase,
			a.InitAssetUseCase,
			a.InitUserHandler,
			a.InitGameHandler,
			a.InitAssetHandler,
			a.InitErrorHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(func(lc fx.Lifecycle, server *httpserver.Server) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					go func() {
						if err := server.Start(); err != nil {
							log.Panic(err.Error())
						}
					}()
					return nil
				},
			})
		}),
	)

	app.Run()
}
