package uow

import (
	"github.com/castledice/storage/internal/domain"
	"github.com/castledice/storage/internal/infrastructure/repository"

	"gorm.io/gorm"
)

// Factory begins gorm-backed unit-of-work scopes
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new unit-of-work factory
func NewFactory(db *gorm.DB) domain.UnitOfWorkFactory {
	return &Factory{db: db}
}

// Begin opens a transaction and constructs the repositories against it
func (f *Factory) Begin() (domain.UnitOfWork, error) {
	tx := f.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &unitOfWork{
		tx:     tx,
		users:  repository.NewUserRepository(tx),
		games:  repository.NewGameRepository(tx),
		assets: repository.NewAssetRepository(tx),
	}, nil
}

// unitOfWork implements domain.UnitOfWork over one gorm transaction. done
// guards against double resolution so a deferred Rollback after Commit is a
// no-op.
type unitOfWork struct {
	tx     *gorm.DB
	done   bool
	users  domain.UserRepository
	games  domain.GameRepository
	assets domain.AssetRepository
}

// Users returns the user repository bound to this scope
func (u *unitOfWork) Users() domain.UserRepository {
	return u.users
}

// Games returns the game repository bound to this scope
func (u *unitOfWork) Games() domain.GameRepository {
	return u.games
}

// Assets returns the asset repository bound to this scope
func (u *unitOfWork) Assets() domain.AssetRepository {
	return u.assets
}

// Commit makes the scope's mutations durable
func (u *unitOfWork) Commit() error {
	if u.done {
		return nil
	}
	u.done = true
	return u.tx.Commit().Error
}

// Rollback aborts the scope; safe to call after Commit
func (u *unitOfWork) Rollback() error {
	if u.done {
		return nil
	}
	u.done = true
	return u.tx.Rollback().Error
}
