package repository

import (
	"errors"

	"github.com/castledice/storage/internal/domain"

	"gorm.io/gorm"
)

// GameRepository implements domain.GameRepository
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) domain.GameRepository {
	return &GameRepository{db: db}
}

// GetByID retrieves a game with participants and winner materialized
func (r *GameRepository) GetByID(id int64) (*domain.Game, error) {
	var game domain.Game
	result := r.db.
		Preload("Users").
		Preload("Winner").
		Where("id = ?", id).
		First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewGameNotFound(id)
		}
		return nil, result.Error
	}
	return &game, nil
}

// Create persists a game, resolving participants and the optional winner by
// auth id. Unknown auth ids abort with the first missing one.
func (r *GameRepository) Create(game *domain.Game, userAuthIDs []int64, winnerAuthID *int64) (*domain.Game, error) {
	users := make([]domain.User, 0, len(userAuthIDs))
	for _, authID := range userAuthIDs {
		user, err := r.getUserByAuthID(authID)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	game.Users = users

	if winnerAuthID != nil {
		winner, err := r.getUserByAuthID(*winnerAuthID)
		if err != nil {
			return nil, err
		}
		game.WinnerID = &winner.ID
	}

	if err := r.db.Create(game).Error; err != nil {
		return nil, err
	}
	return r.GetByID(game.ID)
}

func (r *GameRepository) getUserByAuthID(authID int64) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("auth_id = ?", authID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewUserNotFound(authID)
		}
		return nil, err
	}
	return &user, nil
}
