// Package memory provides in-memory implementations of the repository and
// unit-of-work contracts. They mirror the relational semantics closely enough
// to stand in for postgres in tests: scopes work on a snapshot and publish it
// on commit, so a failed operation leaves the store untouched.
package memory

import (
	"sync"

	"github.com/castledice/storage/internal/domain"
)

type gameRec struct {
	game         domain.Game
	userAuthIDs  []int64
	winnerAuthID *int64
}

type state struct {
	users       map[int64]domain.User // keyed by auth id
	games       map[int64]gameRec
	assets      map[int64]domain.Asset
	usersAssets map[int64]domain.UserAsset // keyed by nft id

	nextUserID  int64
	nextGameID  int64
	nextAssetID int64
}

func newState() *state {
	return &state{
		users:       make(map[int64]domain.User),
		games:       make(map[int64]gameRec),
		assets:      make(map[int64]domain.Asset),
		usersAssets: make(map[int64]domain.UserAsset),
	}
}

func (s *state) clone() *state {
	c := newState()
	c.nextUserID = s.nextUserID
	c.nextGameID = s.nextGameID
	c.nextAssetID = s.nextAssetID
	for k, v := range s.users {
		if v.Wallet != nil {
			w := *v.Wallet
			v.Wallet = &w
		}
		c.users[k] = v
	}
	for k, v := range s.games {
		v.userAuthIDs = append([]int64(nil), v.userAuthIDs...)
		c.games[k] = v
	}
	for k, v := range s.assets {
		c.assets[k] = v
	}
	for k, v := range s.usersAssets {
		c.usersAssets[k] = v
	}
	return c
}

// Store is an in-memory stand-in for the relational database
type Store struct {
	mu    sync.Mutex
	state *state
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{state: newState()}
}

// Begin implements domain.UnitOfWorkFactory
func (s *Store) Begin() (domain.UnitOfWork, error) {
	s.mu.Lock()
	snapshot := s.state.clone()
	s.mu.Unlock()
	return &unitOfWork{store: s, state: snapshot}, nil
}

type unitOfWork struct {
	store *Store
	state *state
	done  bool
}

// Users returns the user repository bound to this scope
func (u *unitOfWork) Users() domain.UserRepository {
	return &UserRepository{state: u.state}
}

// Games returns the game repository bound to this scope
func (u *unitOfWork) Games() domain.GameRepository {
	return &GameRepository{state: u.state}
}

// Assets returns the asset repository bound to this scope
func (u *unitOfWork) Assets() domain.AssetRepository {
	return &AssetRepository{state: u.state}
}

// Commit publishes the scope's snapshot back to the store
func (u *unitOfWork) Commit() error {
	if u.done {
		return nil
	}
	u.done = true
	u.store.mu.Lock()
	u.store.state = u.state
	u.store.mu.Unlock()
	return nil
}

// Rollback discards the snapshot; safe to call after Commit
func (u *unitOfWork) Rollback() error {
	u.done = true
	return nil
}
