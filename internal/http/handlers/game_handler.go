package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/castledice/storage/internal/domain"

	"github.com/gin-gonic/gin"
)

// GameHandler handles HTTP requests for game operations
type GameHandler struct {
	gameUseCase domain.GameUseCase
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameUseCase domain.GameUseCase) *GameHandler {
	return &GameHandler{
		gameUseCase: gameUseCase,
	}
}

// GameRequest represents the create game request body
type GameRequest struct {
	Config       domain.JSON `json:"config"`
	StartedAt    time.Time   `json:"game_started_time" binding:"required"`
	EndedAt      time.Time   `json:"game_ended_time" binding:"required"`
	Users        []int64     `json:"users" binding:"required"`
	WinnerAuthID *int64      `json:"winner,omitempty"`
	History      domain.JSON `json:"history"`
}

// GetGame handles getting a game by id
// @Summary Get game
// @Description Get a game with its participants and winner
// @Tags games
// @Produce json
// @Param game_id path int true "Game id"
// @Success 200 {object} domain.Game
// @Failure 404 {object} DetailResponse
// @Router /game/{game_id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid game id.")
		return
	}

	game, err := h.gameUseCase.GetGame(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// CreateGame handles game creation
// @Summary Create game
// @Description Create a game; participant and winner auth ids must resolve
// @Tags games
// @Accept json
// @Produce json
// @Param request body GameRequest true "Game body"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} DetailResponse
// @Router /game [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body.")
		return
	}

	game := &domain.Game{
		Config:    req.Config,
		StartedAt: req.StartedAt,
		EndedAt:   req.EndedAt,
		History:   req.History,
	}

	created, err := h.gameUseCase.CreateGame(game, req.Users, req.WinnerAuthID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "created", "game": created})
}
