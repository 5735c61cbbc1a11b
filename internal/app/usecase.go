package app

import (
	"github.com/castledice/storage/internal/domain"
	"github.com/castledice/storage/internal/infrastructure/logger"
	"github.com/castledice/storage/internal/usecase/asset"
	"github.com/castledice/storage/internal/usecase/game"
	"github.com/castledice/storage/internal/usecase/user"
)

func (a *application) InitUserUseCase(uowf domain.UnitOfWorkFactory, logger *logger.Logger) domain.UserUseCase {
	return user.NewUserUseCase(uowf, logger)
}

func (a *application) InitGameUseCase(uowf domain.UnitOfWorkFactory, logger *logger.Logger) domain.GameUseCase {
	return game.NewGameUseCase(uowf, logger)
}

func (a *application) InitAssetUseCase(uowf domain.UnitOfWorkFactory, chain domain.ChainGateway, logger *logger.Logger) domain.AssetUseCase {
	return asset.NewAssetUseCase(uowf, chain, logger)
}
