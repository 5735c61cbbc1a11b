package asset

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castledice/storage/internal/domain"
	"github.com/castledice/storage/internal/domain/mocks"
	"github.com/castledice/storage/internal/infrastructure/logger"
	"github.com/castledice/storage/internal/infrastructure/repository/memory"
)

type noopChain struct{}

func (noopChain) NotifyTransfer(fromAuthID, toAuthID int64, nftIDs []int64) error { return nil }

func newMemoryUseCase(t *testing.T) (domain.AssetUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := NewAssetUseCase(store, noopChain{}, logger.NewLogger("test", "error"))
	return uc, store
}

func seedLedger(t *testing.T, store *memory.Store) {
	t.Helper()
	uow, err := store.Begin()
	require.NoError(t, err)
	defer uow.Rollback()

	for authID := int64(1); authID <= 2; authID++ {
		_, err := uow.Users().Create(&domain.User{AuthID: authID, Name: "player"})
		require.NoError(t, err)
	}
	asset, err := uow.Assets().CreateAsset("QmSeed")
	require.NoError(t, err)
	_, err = uow.Assets().AddAssetToUser(asset.ID, 1, 10)
	require.NoError(t, err)
	require.NoError(t, uow.Commit())
}

func TestCreateAndGetAsset(t *testing.T) {
	uc, _ := newMemoryUseCase(t)

	created, err := uc.CreateAsset("QmCID")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := uc.GetAsset(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "QmCID", got.IpfsCID)
}

func TestFailedOperationLeavesStoreUntouched(t *testing.T) {
	uc, store := newMemoryUseCase(t)
	seedLedger(t, store)

	err := uc.FreezeAssets([]int64{10, 3, 4})
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, []int64{3, 4}, nf.Keys)

	ua, err := uc.GetUsersAsset(10)
	require.NoError(t, err)
	assert.False(t, ua.IsLocked)
}

func TestFullTransferLifecycle(t *testing.T) {
	uc, store := newMemoryUseCase(t)
	seedLedger(t, store)

	owned, err := uc.CheckOwnership([]int64{10}, 1)
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, owned)

	require.NoError(t, uc.FreezeAssets([]int64{10}))

	// A locked record cannot collide with itself; a repeat freeze is fine.
	require.NoError(t, uc.FreezeAssets([]int64{10}))

	require.NoError(t, uc.Match(1, 2, []int64{10}))

	owned, err = uc.CheckOwnership([]int64{10}, 2)
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, owned)

	ua, err := uc.GetUsersAsset(10)
	require.NoError(t, err)
	assert.False(t, ua.IsLocked)
}

func TestMatchRequiresLock(t *testing.T) {
	uc, store := newMemoryUseCase(t)
	seedLedger(t, store)

	err := uc.Match(1, 2, []int64{10})
	var unlocked *domain.UsersAssetNotLockedError
	require.ErrorAs(t, err, &unlocked)
	assert.Equal(t, []int64{10}, unlocked.NFTIDs)

	owned, err := uc.CheckOwnership([]int64{10}, 1)
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, owned)
}

func TestMatchNotifiesChainGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := memory.NewStore()
	seedLedger(t, store)

	mockChain := mocks.NewMockChainGateway(ctrl)
	mockChain.EXPECT().NotifyTransfer(int64(1), int64(2), []int64{10}).Return(nil)

	uc := NewAssetUseCase(store, mockChain, logger.NewLogger("test", "error"))
	require.NoError(t, uc.FreezeAssets([]int64{10}))
	require.NoError(t, uc.Match(1, 2, []int64{10}))
}

func TestMatchSucceedsWhenChainGatewayFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := memory.NewStore()
	seedLedger(t, store)

	mockChain := mocks.NewMockChainGateway(ctrl)
	mockChain.EXPECT().NotifyTransfer(int64(1), int64(2), []int64{10}).Return(errors.New("gateway down"))

	uc := NewAssetUseCase(store, mockChain, logger.NewLogger("test", "error"))
	require.NoError(t, uc.FreezeAssets([]int64{10}))
	require.NoError(t, uc.Match(1, 2, []int64{10}))

	owned, err := uc.CheckOwnership([]int64{10}, 2)
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, owned)
}

func TestMatchFailureSkipsCommitAndNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssetRepository(ctrl)
	mockUow := mocks.NewMockUnitOfWork(ctrl)
	mockFactory := mocks.NewMockUnitOfWorkFactory(ctrl)
	mockChain := mocks.NewMockChainGateway(ctrl)

	mockFactory.EXPECT().Begin().Return(mockUow, nil)
	mockUow.EXPECT().Assets().Return(mockRepo)
	mockRepo.EXPECT().Match(int64(1), int64(1), []int64{10}).Return(&domain.UsersAreSameError{UserID: 1})
	mockUow.EXPECT().Rollback().Return(nil)

	uc := NewAssetUseCase(mockFactory, mockChain, logger.NewLogger("test", "error"))
	err := uc.Match(1, 1, []int64{10})
	assert.True(t, domain.IsConflict(err))
}

func TestAddAssetToUserCommits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAssetRepository(ctrl)
	mockUow := mocks.NewMockUnitOfWork(ctrl)
	mockFactory := mocks.NewMockUnitOfWorkFactory(ctrl)

	record := &domain.UserAsset{NFTID: 10, UserID: 1, AssetID: 1}
	mockFactory.EXPECT().Begin().Return(mockUow, nil)
	mockUow.EXPECT().Assets().Return(mockRepo)
	mockRepo.EXPECT().AddAssetToUser(int64(1), int64(1), int64(10)).Return(record, nil)
	mockUow.EXPECT().Commit().Return(nil)
	mockUow.EXPECT().Rollback().Return(nil)

	uc := NewAssetUseCase(mockFactory, noopChain{}, logger.NewLogger("test", "error"))
	created, err := uc.AddAssetToUser(1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, record, created)
}
