package handlers

import (
	"net/http"
	"strconv"

	"github.com/castledice/storage/internal/domain"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUseCase domain.UserUseCase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUseCase domain.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// WalletRequest represents a nested wallet body
type WalletRequest struct {
	Address string `json:"address" binding:"required" example:"0x8ba1f109551bd432803012645ac136ddd64dba72"`
}

// UserRequest represents the create/update user request body
type UserRequest struct {
	Name   string         `json:"name" binding:"required" example:"player1"`
	AuthID *int64         `json:"auth_id" binding:"required" example:"34633089486"`
	Wallet *WalletRequest `json:"wallet,omitempty"`
}

// GetUser handles getting a user by auth id
// @Summary Get user
// @Description Get a user by its external auth id
// @Tags users
// @Produce json
// @Param auth_id path int true "User auth id"
// @Success 200 {object} domain.User
// @Failure 404 {object} DetailResponse
// @Router /user/{auth_id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	authID, err := strconv.ParseInt(c.Param("auth_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid auth_id.")
		return
	}

	user, err := h.userUseCase.GetUserByAuthID(authID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser handles user creation
// @Summary Create user
// @Description Create a user with an optional nested wallet
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserRequest true "User body"
// @Success 201 {object} StatusUserResponse
// @Failure 400 {object} DetailResponse
// @Router /user [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body.")
		return
	}

	user := &domain.User{
		AuthID: *req.AuthID,
		Name:   req.Name,
	}
	if req.Wallet != nil {
		user.Wallet = &domain.Wallet{Address: req.Wallet.Address}
	}

	created, err := h.userUseCase.CreateUser(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "created", "user": created})
}

// UpdateUser handles merge-updating a user addressed by auth id
// @Summary Update user
// @Description Overlay name and wallet address onto the user with the given auth id
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserRequest true "User body"
// @Success 200 {object} StatusUserResponse
// @Failure 404 {object} DetailResponse
// @Router /authuser [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body.")
		return
	}

	var walletAddress *string
	if req.Wallet != nil {
		walletAddress = &req.Wallet.Address
	}

	updated, err := h.userUseCase.UpdateUserByAuthID(*req.AuthID, req.Name, walletAddress)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated", "user": updated})
}

// DeleteUser handles user deletion by auth id
// @Summary Delete user
// @Description Delete the user with the given auth id, cascading its wallet
// @Tags users
// @Produce json
// @Param auth_id path int true "User auth id"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} DetailResponse
// @Router /user/{auth_id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	authID, err := strconv.ParseInt(c.Param("auth_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid auth_id.")
		return
	}

	if err := h.userUseCase.DeleteUserByAuthID(authID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// DetailResponse represents an error payload
type DetailResponse struct {
	Detail string `json:"detail" example:"The User with the given auth_id 1 does not exist."`
}

// StatusResponse represents a bare status payload
type StatusResponse struct {
	Status string `json:"status" example:"deleted"`
}

// StatusUserResponse represents a status payload carrying a user
type StatusUserResponse struct {
	Status string      `json:"status" example:"created"`
	User   domain.User `json:"user"`
}
