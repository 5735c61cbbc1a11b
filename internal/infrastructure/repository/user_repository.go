package repository

import (
	"errors"

	"github.com/castledice/storage/internal/domain"

	"gorm.io/gorm"
)

// UserRepository implements domain.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// GetByAuthID retrieves a user by auth id with wallet and game relations
// fully materialized.
func (r *UserRepository) GetByAuthID(authID int64) (*domain.User, error) {
	var user domain.User
	result := r.db.
		Preload("Wallet").
		Preload("Games").
		Preload("GamesWon").
		Where("auth_id = ?", authID).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewUserNotFound(authID)
		}
		return nil, result.Error
	}
	return &user, nil
}

// Create creates a new user together with its optional nested wallet
func (r *UserRepository) Create(user *domain.User) (*domain.User, error) {
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return r.GetByAuthID(user.AuthID)
}

// Update persists changes to an existing user, including the nested wallet
func (r *UserRepository) Update(user *domain.User) (*domain.User, error) {
	if err := r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(user).Error; err != nil {
		return nil, err
	}
	return r.GetByAuthID(user.AuthID)
}

// DeleteByAuthID removes a user and its wallet
func (r *UserRepository) DeleteByAuthID(authID int64) error {
	user, err := r.GetByAuthID(authID)
	if err != nil {
		return err
	}

	if err := r.db.Model(user).Association("Games").Clear(); err != nil {
		return err
	}
	if user.Wallet != nil {
		if err := r.db.Delete(user.Wallet).Error; err != nil {
			return err
		}
	}
	return r.db.Delete(user).Error
}

// MissingAuthIDs returns the auth ids with no matching user, in input order
func (r *UserRepository) MissingAuthIDs(authIDs []int64) ([]int64, error) {
	var found []int64
	if err := r.db.Model(&domain.User{}).
		Where("auth_id IN ?", authIDs).
		Pluck("auth_id", &found).Error; err != nil {
		return nil, err
	}

	present := make(map[int64]bool, len(found))
	for _, id := range found {
		present[id] = true
	}
	return missingKeys(authIDs, func(id int64) bool { return present[id] }), nil
}
