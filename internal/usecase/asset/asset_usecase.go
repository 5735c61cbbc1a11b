package asset

import (
	"github.com/castledice/storage/internal/domain"
	"github.com/castledice/storage/internal/infrastructure/logger"

	"go.uber.org/zap"
)

// AssetUseCase implements domain.AssetUseCase. Every operation runs in its
// own unit of work: reads roll back, mutations commit. Repository errors
// propagate unchanged.
type AssetUseCase struct {
	uowFactory domain.UnitOfWorkFactory
	chain      domain.ChainGateway
	logger     *logger.Logger
}

// NewAssetUseCase creates a new asset use case
func NewAssetUseCase(uowFactory domain.UnitOfWorkFactory, chain domain.ChainGateway, logger *logger.Logger) domain.AssetUseCase {
	return &AssetUseCase{
		uowFactory: uowFactory,
		chain:      chain,
		logger:     logger,
	}
}

// GetAsset retrieves an asset by id
func (uc *AssetUseCase) GetAsset(assetID int64) (*domain.Asset, error) {
	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	return uow.Assets().GetAsset(assetID)
}

// GetAssets retrieves assets in input order
func (uc *AssetUseCase) GetAssets(assetIDs []int64) ([]domain.Asset, error) {
	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	return uow.Assets().GetAssets(assetIDs)
}

// CreateAsset creates a new content-addressed asset
func (uc *AssetUseCase) CreateAsset(ipfsCID string) (*domain.Asset, error) {
	uc.logger.Info("Creating asset", zap.String("ipfs_cid", ipfsCID))

	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	created, err := uow.Assets().CreateAsset(ipfsCID)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateAsset updates the content identifier of an existing asset
func (uc *AssetUseCase) UpdateAsset(asset *domain.Asset) (*domain.Asset, error) {
	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	updated, err := uow.Assets().UpdateAsset(asset)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return updated, nil
}

// GetUsersAsset retrieves an ownership record by nft id
func (uc *AssetUseCase) GetUsersAsset(nftID int64) (*domain.UserAsset, error) {
	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	return uow.Assets().GetUsersAsset(nftID)
}

// GetUsersAssets retrieves ownership records by nft id
func (uc *AssetUseCase) GetUsersAssets(nftIDs []int64) ([]domain.UserAsset, error) {
	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	return uow.Assets().GetUsersAssets(nftIDs)
}

// AddAssetToUser creates an unlocked ownership record
func (uc *AssetUseCase) AddAssetToUser(assetID, userID, nftID int64) (*domain.UserAsset, error) {
	uc.logger.Info("Adding asset to user",
		zap.Int64("asset_id", assetID),
		zap.Int64("user_id", userID),
		zap.Int64("nft_id", nftID))

	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	created, err := uow.Assets().AddAssetToUser(assetID, userID, nftID)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

// RemoveAssetFromUser deletes an ownership record
func (uc *AssetUseCase) RemoveAssetFromUser(nftID int64) (bool, error) {
	uc.logger.Info("Removing asset from user", zap.Int64("nft_id", nftID))

	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return false, err
	}
	defer uow.Rollback()

	removed, err := uow.Assets().RemoveAssetFromUser(nftID)
	if err != nil {
		return false, err
	}
	if err := uow.Commit(); err != nil {
		return false, err
	}
	return removed, nil
}

// CheckOwnership reports per nft id whether the record belongs to userID
func (uc *AssetUseCase) CheckOwnership(nftIDs []int64, userID int64) ([]bool, error) {
	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	return uow.Assets().CheckOwnership(nftIDs, userID)
}

// FreezeAssets locks the given ownership records atomically
func (uc *AssetUseCase) FreezeAssets(nftIDs []int64) error {
	uc.logger.Info("Freezing assets", zap.Int64s("nft_ids", nftIDs))

	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.Assets().FreezeAssets(nftIDs); err != nil {
		return err
	}
	return uow.Commit()
}

// UnfreezeAssets unlocks the given ownership records atomically
func (uc *AssetUseCase) UnfreezeAssets(nftIDs []int64) error {
	uc.logger.Info("Unfreezing assets", zap.Int64s("nft_ids", nftIDs))

	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.Assets().UnfreezeAssets(nftIDs); err != nil {
		return err
	}
	return uow.Commit()
}

// Match transfers the given locked assets between two users and notifies the
// chain gateway after the mutation is durable.
func (uc *AssetUseCase) Match(firstUserID, secondUserID int64, nftIDs []int64) error {
	uc.logger.Info("Matching assets",
		zap.Int64("first_user_id", firstUserID),
		zap.Int64("second_user_id", secondUserID),
		zap.Int64s("nft_ids", nftIDs))

	uow, err := uc.uowFactory.Begin()
	if err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.Assets().Match(firstUserID, secondUserID, nftIDs); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	// Best effort: the transfer is already durable, a gateway failure only
	// loses the notification.
	if err := uc.chain.NotifyTransfer(firstUserID, secondUserID, nftIDs); err != nil {
		uc.logger.Warn("Failed to notify chain gateway of transfer",
			zap.Int64s("nft_ids", nftIDs),
			zap.Error(err))
	}
	return nil
}
