package repository

import (
	"errors"

	"github.com/castledice/storage/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssetRepository implements domain.AssetRepository
type AssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository bound to db, which is
// expected to be the unit of work's transaction handle.
func NewAssetRepository(db *gorm.DB) domain.AssetRepository {
	return &AssetRepository{db: db}
}

// GetAsset retrieves an asset by ID
func (r *AssetRepository) GetAsset(assetID int64) (*domain.Asset, error) {
	var asset domain.Asset
	result := r.db.Where("id = ?", assetID).First(&asset)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewAssetNotFound(assetID)
		}
		return nil, result.Error
	}
	return &asset, nil
}

// GetAssets retrieves assets in input order, failing with the complete set of
// missing ids.
func (r *AssetRepository) GetAssets(assetIDs []int64) ([]domain.Asset, error) {
	var found []domain.Asset
	if err := r.db.Where("id IN ?", assetIDs).Find(&found).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Asset, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}

	if missing := missingKeys(assetIDs, func(id int64) bool { _, ok := byID[id]; return ok }); len(missing) > 0 {
		return nil, domain.NewAssetNotFound(missing...)
	}

	assets := make([]domain.Asset, 0, len(assetIDs))
	for _, id := range assetIDs {
		assets = append(assets, byID[id])
	}
	return assets, nil
}

// CreateAsset creates a new asset with a generated id. CID uniqueness is left
// to the storage constraint.
func (r *AssetRepository) CreateAsset(ipfsCID string) (*domain.Asset, error) {
	asset := domain.Asset{IpfsCID: ipfsCID}
	if err := r.db.Create(&asset).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

// UpdateAsset updates the content identifier of an existing asset
func (r *AssetRepository) UpdateAsset(asset *domain.Asset) (*domain.Asset, error) {
	existing, err := r.GetAsset(asset.ID)
	if err != nil {
		return nil, err
	}

	existing.IpfsCID = asset.IpfsCID
	if err := r.db.Model(existing).Update("ipfs_cid", asset.IpfsCID).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// GetUsersAsset retrieves an ownership record with its asset eagerly loaded
func (r *AssetRepository) GetUsersAsset(nftID int64) (*domain.UserAsset, error) {
	var ua domain.UserAsset
	result := r.db.Preload("Asset").Where("nft_id = ?", nftID).First(&ua)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewUsersAssetNotFound(nftID)
		}
		return nil, result.Error
	}
	return &ua, nil
}

// GetUsersAssets retrieves ownership records in input order, failing with the
// complete set of unresolved nft ids.
func (r *AssetRepository) GetUsersAssets(nftIDs []int64) ([]domain.UserAsset, error) {
	return r.getUsersAssets(nftIDs, false)
}

func (r *AssetRepository) getUsersAssets(nftIDs []int64, forUpdate bool) ([]domain.UserAsset, error) {
	tx := r.db.Preload("Asset")
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var found []domain.UserAsset
	if err := tx.Where("nft_id IN ?", nftIDs).Find(&found).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.UserAsset, len(found))
	for _, ua := range found {
		byID[ua.NFTID] = ua
	}

	if missing := missingKeys(nftIDs, func(id int64) bool { _, ok := byID[id]; return ok }); len(missing) > 0 {
		return nil, domain.NewUsersAssetNotFound(missing...)
	}

	records := make([]domain.UserAsset, 0, len(nftIDs))
	for _, id := range nftIDs {
		records = append(records, byID[id])
	}
	return records, nil
}

// AddAssetToUser creates an unlocked ownership record. The nft id collision is
// checked before the asset and user are resolved, in that order.
func (r *AssetRepository) AddAssetToUser(assetID, userID, nftID int64) (*domain.UserAsset, error) {
	var existing domain.UserAsset
	err := r.db.Where("nft_id = ?", nftID).First(&existing).Error
	if err == nil {
		return nil, &domain.UsersAssetAlreadyExistsError{NFTID: nftID, UserID: userID}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	asset, err := r.GetAsset(assetID)
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := r.db.Where("auth_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewUserNotFound(userID)
		}
		return nil, err
	}

	ua := domain.UserAsset{
		NFTID:    nftID,
		UserID:   user.AuthID,
		AssetID:  asset.ID,
		IsLocked: false,
	}
	if err := r.db.Create(&ua).Error; err != nil {
		return nil, err
	}

	ua.Asset = *asset
	return &ua, nil
}

// RemoveAssetFromUser deletes an ownership record; the asset and the user
// remain.
func (r *AssetRepository) RemoveAssetFromUser(nftID int64) (bool, error) {
	if _, err := r.GetUsersAsset(nftID); err != nil {
		return false, err
	}
	if err := r.db.Where("nft_id = ?", nftID).Delete(&domain.UserAsset{}).Error; err != nil {
		return false, err
	}
	return true, nil
}

// CheckOwnership reports, per nft id in input order, whether the record
// belongs to userID.
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
	// Resolve with row locks so the whole batch either applies or fails.
	if _, err := r.getUsersAssets(nftIDs, true); err != nil {
		return err
	}
	return r.db.Model(&domain.UserAsset{}).
		Where("nft_id IN ?", nftIDs).
		Update("is_locked", locked).Error
}

// Match transfers ownership of the given locked assets from the first user to
// the second, unlocking them. Preconditions fail fast, in order, with the
// complete offending key set; nothing mutates on failure. The ownership rows
// are selected FOR UPDATE so concurrent matches over overlapping nft sets
// serialize.
func (r *AssetRepository) Match(firstUserID, secondUserID int64, nftIDs []int64) error {
	if firstUserID == secondUserID {
		return &domain.UsersAreSameError{UserID: firstUserID}
	}

	var foundAuthIDs []int64
	if err := r.db.Model(&domain.User{}).
		Where("auth_id IN ?", []int64{firstUserID, secondUserID}).
		Pluck("auth_id", &foundAuthIDs).Error; err != nil {
		return err
	}
	present := make(map[int64]bool, len(foundAuthIDs))
	for _, id := range foundAuthIDs {
		present[id] = true
	}
	if missing := missingKeys([]int64{firstUserID, secondUserID}, func(id int64) bool { return present[id] }); len(missing) > 0 {
		return domain.NewUserNotFound(missing...)
	}

	records, err := r.getUsersAssets(nftIDs, true)
	if err != nil {
		return err
	}

	var notOwned []int64
	for _, ua := range records {
		if ua.UserID != firstUserID {
			notOwned = append(notOwned, ua.NFTID)
		}
	}
	if len(notOwned) > 0 {
		return &domain.UsersAssetNotOwnedByUserError{NFTIDs: notOwned, UserID: firstUserID}
	}

	var unlocked []int64
	for _, ua := range records {
		if !ua.IsLocked {
			unlocked = append(unlocked, ua.NFTID)
		}
	}
	if len(unlocked) > 0 {
		return &domain.UsersAssetNotLockedError{NFTIDs: unlocked}
	}

	return r.db.Model(&domain.UserAsset{}).
		Where("nft_id IN ?", nftIDs).
		Updates(map[string]interface{}{
			"user_id":   secondUserID,
			"is_locked": false,
		}).Error
}

// missingKeys returns the keys for which ok reports false, preserving input
// order and skipping duplicates.
func missingKeys(keys []int64, ok func(int64) bool) []int64 {
	var missing []int64
	seen := make(map[int64]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		if !ok(k) {
			missing = append(missing, k)
		}
	}
	return missing
}
