package memory

import (
	"github.com/castledice/storage/internal/domain"
)

// AssetRepository implements domain.AssetRepository over a scope snapshot.
// Semantics match the gorm implementation: batch operations report the
// complete missing or offending key set and mutate nothing on failure.
type AssetRepository struct {
	state *state
}

// GetAsset retrieves an asset by ID
func (r *AssetRepository) GetAsset(assetID int64) (*domain.Asset, error) {
	asset, ok := r.state.assets[assetID]
	if !ok {
		return nil, domain.NewAssetNotFound(assetID)
	}
	return &asset, nil
}

// GetAssets retrieves assets in input order or fails with all missing ids
func (r *AssetRepository) GetAssets(assetIDs []int64) ([]domain.Asset, error) {
	if missing := r.missingAssets(assetIDs); len(missing) > 0 {
		return nil, domain.NewAssetNotFound(missing...)
	}
	assets := make([]domain.Asset, 0, len(assetIDs))
	for _, id := range assetIDs {
		assets = append(assets, r.state.assets[id])
	}
	return assets, nil
}

// CreateAsset creates a new asset with a generated id
func (r *AssetRepository) CreateAsset(ipfsCID string) (*domain.Asset, error) {
	r.state.nextAssetID++
	asset := domain.Asset{ID: r.state.nextAssetID, IpfsCID: ipfsCID}
	r.state.assets[asset.ID] = asset
	return &asset, nil
}

// UpdateAsset updates the content identifier of an existing asset
func (r *AssetRepository) UpdateAsset(asset *domain.Asset) (*domain.Asset, error) {
	existing, ok := r.state.assets[asset.ID]
	if !ok {
		return nil, domain.NewAssetNotFound(asset.ID)
	}
	existing.IpfsCID = asset.IpfsCID
	r.state.assets[existing.ID] = existing
	return &existing, nil
}

// GetUsersAsset retrieves an ownership record with its asset loaded
func (r *AssetRepository) GetUsersAsset(nftID int64) (*domain.UserAsset, error) {
	ua, ok := r.state.usersAssets[nftID]
	if !ok {
		return nil, domain.NewUsersAssetNotFound(nftID)
	}
	ua.Asset = r.state.assets[ua.AssetID]
	return &ua, nil
}

// GetUsersAssets retrieves ownership records in input order or fails with all
// unresolved nft ids
func (r *AssetRepository) GetUsersAssets(nftIDs []int64) ([]domain.UserAsset, error) {
	if missing := r.missingUsersAssets(nftIDs); len(missing) > 0 {
		return nil, domain.NewUsersAssetNotFound(missing...)
	}
	records := make([]domain.UserAsset, 0, len(nftIDs))
	for _, id := range nftIDs {
		ua := r.state.usersAssets[id]
		ua.Asset = r.state.assets[ua.AssetID]
		records = append(records, ua)
	}
	return records, nil
}

// AddAssetToUser creates an unlocked ownership record. Collision on the nft
// id is checked before the asset and user are resolved.
func (r *AssetRepository) AddAssetToUser(assetID, userID, nftID int64) (*domain.UserAsset, error) {
	if _, ok := r.state.usersAssets[nftID]; ok {
		return nil, &domain.UsersAssetAlreadyExistsError{NFTID: nftID, UserID: userID}
	}
	asset, ok := r.state.assets[assetID]
	if !ok {
		return nil, domain.NewAssetNotFound(assetID)
	}
	if _, ok := r.state.users[userID]; !ok {
		return nil, domain.NewUserNotFound(userID)
	}

	ua := domain.UserAsset{
		NFTID:    nftID,
		UserID:   userID,
		AssetID:  asset.ID,
		IsLocked: false,
	}
	r.state.usersAssets[nftID] = ua
	ua.Asset = asset
	return &ua, nil
}

// RemoveAssetFromUser deletes an ownership record
func (r *AssetRepository) RemoveAssetFromUser(nftID int64) (bool, error) {
	if _, ok := r.state.usersAssets[nftID]; !ok {
		return false, domain.NewUsersAssetNotFound(nftID)
	}
	delete(r.state.usersAssets, nftID)
	return true, nil
}

// CheckOwnership reports per nft id whether the record belongs to userID
func (r *AssetRepository) CheckOwnership(nftIDs []int64, userID int64) ([]bool, error) {
	records, err := r.GetUsersAssets(nftIDs)
	if err != nil {
		return nil, err
	}
	owned := make([]bool, len(records))
	for i, ua := range records {
		owned[i] = ua.UserID == userID
	}
	return owned, nil
}

// FreezeAssets locks all given ownership records atomically
func (r *AssetRepository) FreezeAssets(nftIDs []int64) error {
	return r.setLocked(nftIDs, true)
}

// UnfreezeAssets unlocks all given ownership records atomically
func (r *AssetRepository) UnfreezeAssets(nftIDs []int64) error {
	return r.setLocked(nftIDs, false)
}

func (r *AssetRepository) setLocked(nftIDs []int64, locked bool) error {
	if missing := r.missingUsersAssets(nftIDs); len(missing) > 0 {
		return domain.NewUsersAssetNotFound(missing...)
	}
	for _, id := range nftIDs {
		ua := r.state.usersAssets[id]
		ua.IsLocked = locked
		r.state.usersAssets[id] = ua
	}
	return nil
}

// Match transfers the given locked assets from the first user to the second
func (r *AssetRepository) Match(firstUserID, secondUserID int64, nftIDs []int64) error {
	if firstUserID == secondUserID {
		return &domain.UsersAreSameError{UserID: firstUserID}
	}

	var missingUsers []int64
	for _, id := range []int64{firstUserID, secondUserID} {
		if _, ok := r.state.users[id]; !ok {
			missingUsers = append(missingUsers, id)
		}
	}
	if len(missingUsers) > 0 {
		return domain.NewUserNotFound(missingUsers...)
	}

	if missing := r.missingUsersAssets(nftIDs); len(missing) > 0 {
		return domain.NewUsersAssetNotFound(missing...)
	}

	var notOwned []int64
	for _, id := range nftIDs {
		if r.state.usersAssets[id].UserID != firstUserID {
			notOwned = append(notOwned, id)
		}
	}
	if len(notOwned) > 0 {
		return &domain.UsersAssetNotOwnedByUserError{NFTIDs: notOwned, UserID: firstUserID}
	}

	var unlocked []int64
	for _, id := range nftIDs {
		if !r.state.usersAssets[id].IsLocked {
			unlocked = append(unlocked, id)
		}
	}
	if len(unlocked) > 0 {
		return &domain.UsersAssetNotLockedError{NFTIDs: unlocked}
	}

	for _, id := range nftIDs {
		ua := r.state.usersAssets[id]
		ua.UserID = secondUserID
		ua.IsLocked = false
		r.state.usersAssets[id] = ua
	}
	return nil
}

func (r *AssetRepository) missingAssets(assetIDs []int64) []int64 {
	var missing []int64
	seen := make(map[int64]bool, len(assetIDs))
	for _, id := range assetIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := r.state.assets[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func (r *AssetRepository) missingUsersAssets(nftIDs []int64) []int64 {
	var missing []int64
	seen := make(map[int64]bool, len(nftIDs))
	for _, id := range nftIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := r.state.usersAssets[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
