package user

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castledice/storage/internal/domain"
	"github.com/castledice/storage/internal/domain/mocks"
	"github.com/castledice/storage/internal/infrastructure/logger"
	"github.com/castledice/storage/internal/infrastructure/repository/memory"
)

func newMemoryUseCase(t *testing.T) domain.UserUseCase {
	t.Helper()
	return NewUserUseCase(memory.NewStore(), logger.NewLogger("test", "error"))
}

func TestCreateAndGetUser(t *testing.T) {
	uc := newMemoryUseCase(t)

	created, err := uc.CreateUser(&domain.User{
		AuthID: 34633089486,
		Name:   "player1",
		Wallet: &domain.Wallet{Address: "0x8ba1f109551bd432803012645ac136ddd64dba72"},
	})
	require.NoError(t, err)
	assert.Equal(t, "player1", created.Name)

	got, err := uc.GetUserByAuthID(34633089486)
	require.NoError(t, err)
	require.NotNil(t, got.Wallet)
	assert.Equal(t, "0x8ba1f109551bd432803012645ac136ddd64dba72", got.Wallet.Address)
}

func TestUpdateUserOverlaysNameAndWallet(t *testing.T) {
	uc := newMemoryUseCase(t)

	_, err := uc.CreateUser(&domain.User{AuthID: 1, Name: "player1"})
	require.NoError(t, err)

	addr := "0xab5801a7d398351b8be11c439e05c5b3259aec9b"
	updated, err := uc.UpdateUserByAuthID(1, "renamed", &addr)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	require.NotNil(t, updated.Wallet)
	assert.Equal(t, addr, updated.Wallet.Address)

	// A nil wallet address leaves the existing wallet alone.
	updated, err = uc.UpdateUserByAuthID(1, "renamed again", nil)
	require.NoError(t, err)
	assert.Equal(t, "renamed again", updated.Name)
	require.NotNil(t, updated.Wallet)
	assert.Equal(t, addr, updated.Wallet.Address)
}

func TestUpdateUnknownUser(t *testing.T) {
	uc := newMemoryUseCase(t)

	_, err := uc.UpdateUserByAuthID(404, "ghost", nil)
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, []int64{404}, nf.Keys)
}

func TestDeleteUser(t *testing.T) {
	uc := newMemoryUseCase(t)

	_, err := uc.CreateUser(&domain.User{AuthID: 1, Name: "player1"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteUserByAuthID(1))

	_, err = uc.GetUserByAuthID(1)
	_, ok := domain.IsNotFound(err)
	assert.True(t, ok)
}

func TestCreateUserRollsBackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockUow := mocks.NewMockUnitOfWork(ctrl)
	mockFactory := mocks.NewMockUnitOfWorkFactory(ctrl)

	user := &domain.User{AuthID: 1, Name: "player1"}
	mockFactory.EXPECT().Begin().Return(mockUow, nil)
	mockUow.EXPECT().Users().Return(mockRepo)
	mockRepo.EXPECT().Create(user).Return(nil, domain.NewUserNotFound(1))
	mockUow.EXPECT().Rollback().Return(nil)

	uc := NewUserUseCase(mockFactory, logger.NewLogger("test", "error"))
	_, err := uc.CreateUser(user)
	_, ok := domain.IsNotFound(err)
	assert.True(t, ok)
}
