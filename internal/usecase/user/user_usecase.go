package user

import (
	"github.com/castledice/storage/internal/domain"
	"github.com/castledice/storage/internal/infrastructure/logger"

	"go.uber.org/zap"
)

// UserUseCase implements domain.UserUseCase
type UserUseCase struct {
	uowFactory domain.UnitOfWorkFactory
	logger     *logger.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(uowFactory domain.UnitOfWorkFactory, logger *logger.Logger) domain.UserUseCase {
	return &UserUseCase{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// GetUserByAuthID retrieves a user by its external auth id
func (uc *UserUseCase) GetUserByAuthID(authID int64) (*domain.User, error) {
	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	return uow.Users().GetByAuthID(authID)
}

// CreateUser creates a new user, including its optional wallet
func (uc *UserUseCase) CreateUser(user *domain.User) (*domain.User, error) {
	uc.logger.Info("Creating user", zap.Int64("auth_id", user.AuthID))

	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	created, err := uow.Users().Create(user)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateUserByAuthID loads the user by auth id, overlays the provided name,
// creates or updates the nested wallet address, and persists the result.
func (uc *UserUseCase) UpdateUserByAuthID(authID int64, name string, walletAddress *string) (*domain.User, error) {
	uc.logger.Info("Updating user", zap.Int64("auth_id", authID))

	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := uow.Users().GetByAuthID(authID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if walletAddress != nil {
		if user.Wallet != nil {
			user.Wallet.Address = *walletAddress
		} else {
			user.Wallet = &domain.Wallet{Address: *walletAddress, UserID: user.ID}
		}
	}

	updated, err := uow.Users().Update(user)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteUserByAuthID removes a user and its wallet
func (uc *UserUseCase) DeleteUserByAuthID(authID int64) error {
	uc.logger.Info("Deleting user", zap.Int64("auth_id", authID))

	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.Users().DeleteByAuthID(authID); err != nil {
		return err
	}
	return uow.Commit()
}
