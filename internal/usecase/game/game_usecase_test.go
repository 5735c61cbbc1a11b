package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castledice/storage/internal/domain"
	"github.com/castledice/storage/internal/infrastructure/logger"
	"github.com/castledice/storage/internal/infrastructure/repository/memory"
)

func newMemoryUseCase(t *testing.T) (domain.GameUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewGameUseCase(store, logger.NewLogger("test", "error")), store
}

func seedUsers(t *testing.T, store *memory.Store, authIDs ...int64) {
	t.Helper()
	uow, err := store.Begin()
	require.NoError(t, err)
	defer uow.Rollback()
	for _, id := range authIDs {
		_, err := uow.Users().Create(&domain.User{AuthID: id, Name: "player"})
		require.NoError(t, err)
	}
	require.NoError(t, uow.Commit())
}

func TestCreateAndGetGame(t *testing.T) {
	uc, store := newMemoryUseCase(t)
	seedUsers(t, store, 1, 2)

	winner := int64(2)
	now := time.Now()
	created, err := uc.CreateGame(&domain.Game{
		Config:    domain.JSON(`{"board":"classic"}`),
		StartedAt: now,
		EndedAt:   now.Add(10 * time.Minute),
	}, []int64{1, 2}, &winner)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := uc.GetGame(created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Users, 2)
	require.NotNil(t, got.Winner)
	assert.Equal(t, int64(2), got.Winner.AuthID)
}

func TestCreateGameUnknownWinner(t *testing.T) {
	uc, store := newMemoryUseCase(t)
	seedUsers(t, store, 1, 2)

	winner := int64(9)
	now := time.Now()
	_, err := uc.CreateGame(&domain.Game{StartedAt: now, EndedAt: now}, []int64{1, 2}, &winner)
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, domain.EntityUser, nf.Entity)
	assert.Equal(t, []int64{9}, nf.Keys)
}

func TestGetUnknownGame(t *testing.T) {
	uc, _ := newMemoryUseCase(t)

	_, err := uc.GetGame(404)
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, domain.EntityGame, nf.Entity)
}
