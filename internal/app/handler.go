package app

import (
	"github.com/castledice/storage/internal/domain"
	"github.com/castledice/storage/internal/http/handlers"
)

func (a *application) InitUserHandler(uc domain.UserUseCase) *handlers.UserHandler {
	return handlers.NewUserHandler(uc)
}

func (a *application) InitGameHandler(gc domain.GameUseCase) *handlers.GameHandler {
	return handlers.NewGameHandler(gc)
}

func (a *application) InitAssetHandler(ac domain.AssetUseCase) *handlers.AssetHandler {
	return handlers.NewAssetHandler(ac)
}
