package memory

import (
	"github.com/castledice/storage/internal/domain"
)

// GameRepository implements domain.GameRepository over a scope snapshot
type GameRepository struct {
	state *state
}

// GetByID retrieves a game with participants and winner materialized
func (r *GameRepository) GetByID(id int64) (*domain.Game, error) {
	rec, ok := r.state.games[id]
	if !ok {
		return nil, domain.NewGameNotFound(id)
	}
	return r.materialize(rec), nil
}

func (r *GameRepository) materialize(rec gameRec) *domain.Game {
	g := rec.game
	g.Users = nil
	for _, authID := range rec.userAuthIDs {
		if u, ok := r.state.users[authID]; ok {
			g.Users = append(g.Users, u)
		}
	}
	if rec.winnerAuthID != nil {
		if u, ok := r.state.users[*rec.winnerAuthID]; ok {
			w := u
			g.Winner = &w
			g.WinnerID = &u.ID
		}
	}
	return &g
}

// Create persists a game, resolving participants and the optional winner by
// auth id
func (r *GameRepository) Create(game *domain.Game, userAuthIDs []int64, winnerAuthID *int64) (*domain.Game, error) {
	for _, authID := range userAuthIDs {
		if _, ok := r.state.users[authID]; !ok {
			return nil, domain.NewUserNotFound(authID)
		}
	}
	if winnerAuthID != nil {
		if _, ok := r.state.users[*winnerAuthID]; !ok {
			return nil, domain.NewUserNotFound(*winnerAuthID)
		}
	}

	r.state.nextGameID++
	g := *game
	g.ID = r.state.nextGameID
	g.Users = nil
	g.Winner = nil
	r.state.games[g.ID] = gameRec{
		game:         g,
		userAuthIDs:  append([]int64(nil), userAuthIDs...),
		winnerAuthID: winnerAuthID,
	}
	return r.GetByID(g.ID)
}
