package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castledice/storage/internal/domain"
)

// seededScope opens a scope over a store holding users 1 and 2, two assets
// and two ownership records: nft 10 for user 1 and nft 11 for user 2.
func seededScope(t *testing.T) (domain.UnitOfWork, *Store) {
	t.Helper()

	store := NewStore()
	uow, err := store.Begin()
	require.NoError(t, err)

	for _, u := range []struct {
		authID int64
		name   string
	}{
		{1, "player1"},
		{2, "player2"},
	} {
		_, err := uow.Users().Create(&domain.User{AuthID: u.authID, Name: u.name})
		require.NoError(t, err)
	}

	first, err := uow.Assets().CreateAsset("QmFirst")
	require.NoError(t, err)
	second, err := uow.Assets().CreateAsset("QmSecond")
	require.NoError(t, err)

	_, err = uow.Assets().AddAssetToUser(first.ID, 1, 10)
	require.NoError(t, err)
	_, err = uow.Assets().AddAssetToUser(second.ID, 2, 11)
	require.NoError(t, err)

	require.NoError(t, uow.Commit())

	scope, err := store.Begin()
	require.NoError(t, err)
	return scope, store
}

func TestAddAssetToUserCreatesUnlockedRecord(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	asset, err := uow.Assets().CreateAsset("QmThird")
	require.NoError(t, err)

	ua, err := uow.Assets().AddAssetToUser(asset.ID, 1, 12)
	require.NoError(t, err)

	assert.Equal(t, int64(12), ua.NFTID)
	assert.Equal(t, int64(1), ua.UserID)
	assert.Equal(t, asset.ID, ua.AssetID)
	assert.False(t, ua.IsLocked)
	assert.Equal(t, "QmThird", ua.Asset.IpfsCID)
}

func TestAddAssetToUserNFTCollision(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	_, err := uow.Assets().AddAssetToUser(1, 1, 10)
	var exists *domain.UsersAssetAlreadyExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, int64(10), exists.NFTID)
}

func TestAddAssetToUserErrorPrecedence(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	// Collision wins even when the asset and user are unknown too.
	_, err := uow.Assets().AddAssetToUser(999, 999, 10)
	var exists *domain.UsersAssetAlreadyExistsError
	require.ErrorAs(t, err, &exists)

	// Missing asset is reported before the missing user.
	_, err = uow.Assets().AddAssetToUser(999, 999, 12)
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, domain.EntityAsset, nf.Entity)

	// With the asset present, the missing user surfaces.
	_, err = uow.Assets().AddAssetToUser(1, 999, 12)
	nf, ok = domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, domain.EntityUser, nf.Entity)
	assert.Equal(t, []int64{999}, nf.Keys)
}

func TestGetUsersAssetsReportsAllMissing(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	_, err := uow.Assets().GetUsersAssets([]int64{10, 3, 4})
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, domain.EntityUserAsset, nf.Entity)
	assert.Equal(t, []int64{3, 4}, nf.Keys)
}

func TestGetUsersAssetsPreservesInputOrder(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	records, err := uow.Assets().GetUsersAssets([]int64{11, 10})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(11), records[0].NFTID)
	assert.Equal(t, int64(10), records[1].NFTID)
}

func TestCheckOwnership(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	asset, err := uow.Assets().CreateAsset("QmThird")
	require.NoError(t, err)
	_, err = uow.Assets().AddAssetToUser(asset.ID, 2, 12)
	require.NoError(t, err)

	owned, err := uow.Assets().CheckOwnership([]int64{10, 11, 12}, 1)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, owned)
}

func TestCheckOwnershipMissingRecord(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	_, err := uow.Assets().CheckOwnership([]int64{10, 99}, 1)
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, []int64{99}, nf.Keys)
}

func TestFreezeUnfreezeRoundTrip(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	require.NoError(t, uow.Assets().FreezeAssets([]int64{10, 11}))
	for _, id := range []int64{10, 11} {
		ua, err := uow.Assets().GetUsersAsset(id)
		require.NoError(t, err)
		assert.True(t, ua.IsLocked)
	}

	require.NoError(t, uow.Assets().UnfreezeAssets([]int64{10, 11}))
	for _, id := range []int64{10, 11} {
		ua, err := uow.Assets().GetUsersAsset(id)
		require.NoError(t, err)
		assert.False(t, ua.IsLocked)
	}
}

func TestFreezeIsAtomic(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	err := uow.Assets().FreezeAssets([]int64{10, 3, 4})
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, []int64{3, 4}, nf.Keys)

	// The resolvable record must not have been locked.
	ua, err := uow.Assets().GetUsersAsset(10)
	require.NoError(t, err)
	assert.False(t, ua.IsLocked)
}

func TestMatchTransfersAndUnlocks(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	asset, err := uow.Assets().CreateAsset("QmThird")
	require.NoError(t, err)
	_, err = uow.Assets().AddAssetToUser(asset.ID, 1, 12)
	require.NoError(t, err)

	require.NoError(t, uow.Assets().FreezeAssets([]int64{10, 12}))
	require.NoError(t, uow.Assets().Match(1, 2, []int64{10, 12}))

	for _, id := range []int64{10, 12} {
		ua, err := uow.Assets().GetUsersAsset(id)
		require.NoError(t, err)
		assert.Equal(t, int64(2), ua.UserID)
		assert.False(t, ua.IsLocked)
	}
}

func TestMatchSameUser(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	err := uow.Assets().Match(1, 1, []int64{10})
	var same *domain.UsersAreSameError
	require.ErrorAs(t, err, &same)
	assert.Equal(t, int64(1), same.UserID)
}

func TestMatchMissingUsers(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	err := uow.Assets().Match(8, 9, []int64{10})
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, domain.EntityUser, nf.Entity)
	assert.Equal(t, []int64{8, 9}, nf.Keys)
}

func TestMatchMissingRecords(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	err := uow.Assets().Match(1, 2, []int64{10, 3, 4})
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, domain.EntityUserAsset, nf.Entity)
	assert.Equal(t, []int64{3, 4}, nf.Keys)
}

func TestMatchNotOwned(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	require.NoError(t, uow.Assets().FreezeAssets([]int64{10, 11}))

	// nft 11 belongs to user 2, so user 1 cannot transfer it.
	err := uow.Assets().Match(1, 2, []int64{10, 11})
	var notOwned *domain.UsersAssetNotOwnedByUserError
	require.ErrorAs(t, err, &notOwned)
	assert.Equal(t, []int64{11}, notOwned.NFTIDs)
	assert.Equal(t, int64(1), notOwned.UserID)

	// Nothing moved.
	ua, err := uow.Assets().GetUsersAsset(10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ua.UserID)
	assert.True(t, ua.IsLocked)
}

func TestMatchNotLocked(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	asset, err := uow.Assets().CreateAsset("QmThird")
	require.NoError(t, err)
	_, err = uow.Assets().AddAssetToUser(asset.ID, 1, 12)
	require.NoError(t, err)
	require.NoError(t, uow.Assets().FreezeAssets([]int64{10}))

	err = uow.Assets().Match(1, 2, []int64{10, 12})
	var unlocked *domain.UsersAssetNotLockedError
	require.ErrorAs(t, err, &unlocked)
	assert.Equal(t, []int64{12}, unlocked.NFTIDs)

	// The locked record stays with the first user, still locked.
	ua, err := uow.Assets().GetUsersAsset(10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ua.UserID)
	assert.True(t, ua.IsLocked)
}

func TestRemoveAssetFromUser(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	removed, err := uow.Assets().RemoveAssetFromUser(10)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = uow.Assets().GetUsersAsset(10)
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, []int64{10}, nf.Keys)

	_, err = uow.Assets().RemoveAssetFromUser(10)
	_, ok = domain.IsNotFound(err)
	assert.True(t, ok)
}

func TestUpdateAsset(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	updated, err := uow.Assets().UpdateAsset(&domain.Asset{ID: 1, IpfsCID: "QmReplaced"})
	require.NoError(t, err)
	assert.Equal(t, "QmReplaced", updated.IpfsCID)

	_, err = uow.Assets().UpdateAsset(&domain.Asset{ID: 999, IpfsCID: "QmNope"})
	_, ok := domain.IsNotFound(err)
	assert.True(t, ok)
}

func TestGetAssetsReportsAllMissing(t *testing.T) {
	uow, _ := seededScope(t)
	defer uow.Rollback()

	_, err := uow.Assets().GetAssets([]int64{1, 7, 8})
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, domain.EntityAsset, nf.Entity)
	assert.Equal(t, []int64{7, 8}, nf.Keys)
}
