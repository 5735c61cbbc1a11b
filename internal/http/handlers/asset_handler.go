package handlers

import (
	"net/http"
	"strconv"

	"github.com/castledice/storage/internal/domain"

	"github.com/gin-gonic/gin"
)

// AssetHandler handles HTTP requests for the asset ledger
type AssetHandler struct {
	assetUseCase domain.AssetUseCase
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetUseCase domain.AssetUseCase) *AssetHandler {
	return &AssetHandler{
		assetUseCase: assetUseCase,
	}
}

// AssetRequest represents the create/update asset request body
type AssetRequest struct {
	IpfsCID string `json:"ipfs_cid" binding:"required" example:"QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"`
}

// AddAssetToUserRequest represents the add-asset-to-user request body
type AddAssetToUserRequest struct {
	AssetID *int64 `json:"asset_id" binding:"required" example:"1"`
	UserID  *int64 `json:"user_id" binding:"required" example:"34633089486"`
	NFTID   *int64 `json:"nft_id" binding:"required" example:"10"`
}

// OwnershipRequest represents the check-ownership request body
type OwnershipRequest struct {
	NFTIDs []int64 `json:"nft_ids" binding:"required"`
	UserID *int64  `json:"user_id" binding:"required" example:"34633089486"`
}

// NFTIDsRequest represents a batch of nft ids
type NFTIDsRequest struct {
	NFTIDs []int64 `json:"nft_ids" binding:"required"`
}

// MatchRequest represents the match request body
type MatchRequest struct {
	FirstUserID  *int64  `json:"first_user_id" binding:"required" example:"34633089486"`
	SecondUserID *int64  `json:"second_user_id" binding:"required" example:"34679664254"`
	NFTIDs       []int64 `json:"nft_ids" binding:"required"`
}

// CreateAsset handles asset creation
// @Summary Create asset
// @Description Register a content-addressed asset
// @Tags assets
// @Accept json
// @Produce json
// @Param request body AssetRequest true "Asset body"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} DetailResponse
// @Router /asset [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body.")
		return
	}

	created, err := h.assetUseCase.CreateAsset(req.IpfsCID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "created", "asset": created})
}

// GetAsset handles getting an asset by id
// @Summary Get asset
// @Tags assets
// @Produce json
// @Param asset_id path int true "Asset id"
// @Success 200 {object} domain.Asset
// @Failure 404 {object} DetailResponse
// @Router /asset/{asset_id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("asset_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid asset id.")
		return
	}

	asset, err := h.assetUseCase.GetAsset(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// UpdateAsset handles updating an asset's content identifier
// @Summary Update asset
// @Tags assets
// @Accept json
// @Produce json
// @Param asset_id path int true "Asset id"
// @Param request body AssetRequest true "Asset body"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} DetailResponse
// @Router /asset/{asset_id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("asset_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid asset id.")
		return
	}

	var req AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body.")
		return
	}

	updated, err := h.assetUseCase.UpdateAsset(&domain.Asset{ID: id, IpfsCID: req.IpfsCID})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated", "asset": updated})
}

// AddAssetToUser handles creating an ownership record
// @Summary Add asset to user
// @Description Bind an asset to a user under a caller-supplied nft id
// @Tags nfts
// @Accept json
// @Produce json
// @Param request body AddAssetToUserRequest true "Ownership body"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} DetailResponse
// @Failure 409 {object} DetailResponse
// @Router /nft [post]
func (h *AssetHandler) AddAssetToUser(c *gin.Context) {
	var req AddAssetToUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body.")
		return
	}

	created, err := h.assetUseCase.AddAssetToUser(*req.AssetID, *req.UserID, *req.NFTID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "created", "users_asset": created})
}

// GetUsersAsset handles getting an ownership record by nft id
// @Summary Get ownership record
// @Tags nfts
// @Produce json
// @Param nft_id path int true "NFT id"
// @Success 200 {object} domain.UserAsset
// @Failure 404 {object} DetailResponse
// @Router /nft/{nft_id} [get]
func (h *AssetHandler) GetUsersAsset(c *gin.Context) {
	nftID, err := strconv.ParseInt(c.Param("nft_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid nft id.")
		return
	}

	ua, err := h.assetUseCase.GetUsersAsset(nftID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ua)
}

// RemoveAssetFromUser handles deleting an ownership record
// @Summary Remove asset from user
// @Tags nfts
// @Produce json
// @Param nft_id path int true "NFT id"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} DetailResponse
// @Router /nft/{nft_id} [delete]
func (h *AssetHandler) RemoveAssetFromUser(c *gin.Context) {
	nftID, err := strconv.ParseInt(c.Param("nft_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid nft id.")
		return
	}

	if _, err := h.assetUseCase.RemoveAssetFromUser(nftID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CheckOwnership handles batch ownership checks
// @Summary Check ownership
// @Description Report, per nft id in input order, whether it belongs to the user
// @Tags nfts
// @Accept json
// @Produce json
// @Param request body OwnershipRequest true "Ownership query"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} DetailResponse
// @Router /nft/ownership [post]
func (h *AssetHandler) CheckOwnership(c *gin.Context) {
	var req OwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body.")
		return
	}

	owned, err := h.assetUseCase.CheckOwnership(req.NFTIDs, *req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": owned})
}

// FreezeAssets handles locking a batch of ownership records
// @Summary Freeze assets
// @Tags nfts
// @Accept json
// @Produce json
// @Param request body NFTIDsRequest true "NFT ids"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} DetailResponse
// @Router /nft/freeze [post]
func (h *AssetHandler) FreezeAssets(c *gin.Context) {
	var req NFTIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body.")
		return
	}

	if err := h.assetUseCase.FreezeAssets(req.NFTIDs); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "frozen"})
}

// UnfreezeAssets handles unlocking a batch of ownership records
// @Summary Unfreeze assets
// @Tags nfts
// @Accept json
// @Produce json
// @Param request body NFTIDsRequest true "NFT ids"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} DetailResponse
// @Router /nft/unfreeze [post]
func (h *AssetHandler) UnfreezeAssets(c *gin.Context) {
	var req NFTIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body.")
		return
	}

	if err := h.assetUseCase.UnfreezeAssets(req.NFTIDs); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unfrozen"})
}

// Match handles atomic ownership transfer between two users
// @Summary Match assets
// @Description Transfer the given locked assets from the first user to the second
// @Tags nfts
// @Accept json
// @Produce json
// @Param request body MatchRequest true "Match body"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} DetailResponse
// @Failure 409 {object} DetailResponse
// @Router /nft/match [post]
func (h *AssetHandler) Match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body.")
		return
	}

	if err := h.assetUseCase.Match(*req.FirstUserID, *req.SecondUserID, req.NFTIDs); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "matched"})
}
