package memory

import (
	"github.com/castledice/storage/internal/domain"
)

// UserRepository implements domain.UserRepository over a scope snapshot
type UserRepository struct {
	state *state
}

// GetByAuthID retrieves a user with wallet and game relations materialized
func (r *UserRepository) GetByAuthID(authID int64) (*domain.User, error) {
	user, ok := r.state.users[authID]
	if !ok {
		return nil, domain.NewUserNotFound(authID)
	}
	return r.materialize(user), nil
}

func (r *UserRepository) materialize(user domain.User) *domain.User {
	u := user
	if user.Wallet != nil {
		w := *user.Wallet
		u.Wallet = &w
	}
	u.Games = nil
	u.GamesWon = nil
	for _, rec := range r.state.games {
		for _, authID := range rec.userAuthIDs {
			if authID == u.AuthID {
				u.Games = append(u.Games, rec.game)
				break
			}
		}
		if rec.winnerAuthID != nil && *rec.winnerAuthID == u.AuthID {
			u.GamesWon = append(u.GamesWon, rec.game)
		}
	}
	return &u
}

// Create creates a new user together with its optional nested wallet
func (r *UserRepository) Create(user *domain.User) (*domain.User, error) {
	r.state.nextUserID++
	u := *user
	u.ID = r.state.nextUserID
	if user.Wallet != nil {
		w := *user.Wallet
		w.ID = u.ID
		w.UserID = u.ID
		u.Wallet = &w
	}
	r.state.users[u.AuthID] = u
	return r.GetByAuthID(u.AuthID)
}

// Update persists changes to an existing user, including the nested wallet
func (r *UserRepository) Update(user *domain.User) (*domain.User, error) {
	if _, ok := r.state.users[user.AuthID]; !ok {
		return nil, domain.NewUserNotFound(user.AuthID)
	}
	u := *user
	if user.Wallet != nil {
		w := *user.Wallet
		w.UserID = u.ID
		u.Wallet = &w
	}
	r.state.users[u.AuthID] = u
	return r.GetByAuthID(u.AuthID)
}

// DeleteByAuthID removes a user and its wallet
func (r *UserRepository) DeleteByAuthID(authID int64) error {
	if _, ok := r.state.users[authID]; !ok {
		return domain.NewUserNotFound(authID)
	}
	delete(r.state.users, authID)
	return nil
}

// MissingAuthIDs returns the auth ids with no matching user, in input order
func (r *UserRepository) MissingAuthIDs(authIDs []int64) ([]int64, error) {
	var missing []int64
	seen := make(map[int64]bool, len(authIDs))
	for _, id := range authIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := r.state.users[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
