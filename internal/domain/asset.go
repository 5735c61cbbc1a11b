package domain

// Asset is a content-addressed item identified by its IPFS CID. Uniqueness of
// the CID is enforced by the storage constraint, not checked at the API edge.
type Asset struct {
	ID      int64  `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	IpfsCID string `json:"ipfs_cid" gorm:"column:ipfs_cid;type:varchar(128);uniqueIndex;not null"`
}

// TableName specifies the table name for Asset
func (a Asset) TableName() string {
	return "assets"
}

// UserAsset is one ownership record of the ledger: it binds an asset to a user
// under a caller-supplied, globally unique nft id. The nft id is the primary
// key and is never generated by the service.
type UserAsset struct {
	NFTID    int64 `json:"nft_id" gorm:"column:nft_id;primaryKey;autoIncrement:false"`
	UserID   int64 `json:"user_id" gorm:"not null;index"`
	AssetID  int64 `json:"-" gorm:"not null"`
	Asset    Asset `json:"asset" gorm:"foreignKey:AssetID"`
	IsLocked bool  `json:"is_locked" gorm:"not null;default:false"`
}

// TableName specifies the table name for UserAsset
func (ua UserAsset) TableName() string {
	return "users_assets"
}

// AssetRepository defines CRUD and ledger operations over assets and ownership
// records. Every operation runs inside the surrounding unit of work's
// transaction; batch operations validate all keys and report the complete
// missing or offending set, never just the first.
type AssetRepository interface {
	GetAsset(assetID int64) (*Asset, error)
	// GetAssets returns assets in input order or fails with the full set of
	// missing ids.
	GetAssets(assetIDs []int64) ([]Asset, error)
	CreateAsset(ipfsCID string) (*Asset, error)
	UpdateAsset(asset *Asset) (*Asset, error)

	// GetUsersAsset returns the ownership record with its asset loaded.
	GetUsersAsset(nftID int64) (*UserAsset, error)
	GetUsersAssets(nftIDs []int64) ([]UserAsset, error)
	// AddAssetToUser creates an unlocked ownership record. Error precedence:
	// nft id collision, then missing asset, then missing user.
	AddAssetToUser(assetID, userID, nftID int64) (*UserAsset, error)
	RemoveAssetFromUser(nftID int64) (bool, error)
	// CheckOwnership reports, per nft id in input order, whether the record
	// belongs to userID.
	CheckOwnership(nftIDs []int64, userID int64) ([]bool, error)
	FreezeAssets(nftIDs []int64) error
	UnfreezeAssets(nftIDs []int64) error
	// Match transfers the given locked assets from the first user to the
	// second, unlocking them. Preconditions are checked in order: distinct
	// users, both users exist, all nft ids resolve, all records owned by the
	// first user, all records locked. Any violation aborts with no mutation.
	Match(firstUserID, secondUserID int64, nftIDs []int64) error
}

// AssetUseCase defines the interface for asset ledger business logic
type AssetUseCase interface {
	GetAsset(assetID int64) (*Asset, error)
	GetAssets(assetIDs []int64) ([]Asset, error)
	CreateAsset(ipfsCID string) (*Asset, error)
	UpdateAsset(asset *Asset) (*Asset, error)
	GetUsersAsset(nftID int64) (*UserAsset, error)
	GetUsersAssets(nftIDs []int64) ([]UserAsset, error)
	AddAssetToUser(assetID, userID, nftID int64) (*UserAsset, error)
	RemoveAssetFromUser(nftID int64) (bool, error)
	CheckOwnership(nftIDs []int64, userID int64) ([]bool, error)
	FreezeAssets(nftIDs []int64) error
	UnfreezeAssets(nftIDs []int64) error
	Match(firstUserID, secondUserID int64, nftIDs []int64) error
}
