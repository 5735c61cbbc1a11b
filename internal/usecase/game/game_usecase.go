package game

import (
	"github.com/castledice/storage/internal/domain"
	"github.com/castledice/storage/internal/infrastructure/logger"

	"go.uber.org/zap"
)

// GameUseCase implements domain.GameUseCase
type GameUseCase struct {
	uowFactory domain.UnitOfWorkFactory
	logger     *logger.Logger
}

// NewGameUseCase creates a new game use case
func NewGameUseCase(uowFactory domain.UnitOfWorkFactory, logger *logger.Logger) domain.GameUseCase {
	return &GameUseCase{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// GetGame retrieves a game by id
func (uc *GameUseCase) GetGame(id int64) (*domain.Game, error) {
	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	return uow.Games().GetByID(id)
}

// CreateGame persists a game with its participants and optional winner
func (uc *GameUseCase) CreateGame(game *domain.Game, userAuthIDs []int64, winnerAuthID *int64) (*domain.Game, error) {
	uc.logger.Info("Creating game", zap.Int("participants", len(userAuthIDs)))

	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	created, err := uow.Games().Create(game, userAuthIDs, winnerAuthID)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}
