package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castledice/storage/internal/domain"
)

func TestCreateUserWithWallet(t *testing.T) {
	store := NewStore()
	uow, err := store.Begin()
	require.NoError(t, err)
	defer uow.Rollback()

	created, err := uow.Users().Create(&domain.User{
		AuthID: 34633089486,
		Name:   "player1",
		Wallet: &domain.Wallet{Address: "0x8ba1f109551bd432803012645ac136ddd64dba72"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(34633089486), created.AuthID)
	require.NotNil(t, created.Wallet)
	assert.Equal(t, "0x8ba1f109551bd432803012645ac136ddd64dba72", created.Wallet.Address)
}

func TestGetUserNotFound(t *testing.T) {
	store := NewStore()
	uow, err := store.Begin()
	require.NoError(t, err)
	defer uow.Rollback()

	_, err = uow.Users().GetByAuthID(404)
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, domain.EntityUser, nf.Entity)
	assert.Equal(t, []int64{404}, nf.Keys)
}

func TestUpdateUser(t *testing.T) {
	store := NewStore()
	uow, err := store.Begin()
	require.NoError(t, err)
	defer uow.Rollback()

	created, err := uow.Users().Create(&domain.User{AuthID: 1, Name: "player1"})
	require.NoError(t, err)

	created.Name = "renamed"
	created.Wallet = &domain.Wallet{Address: "0xab5801a7d398351b8be11c439e05c5b3259aec9b"}
	updated, err := uow.Users().Update(created)
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Name)
	require.NotNil(t, updated.Wallet)
	assert.Equal(t, "0xab5801a7d398351b8be11c439e05c5b3259aec9b", updated.Wallet.Address)
}

func TestDeleteUser(t *testing.T) {
	store := NewStore()
	uow, err := store.Begin()
	require.NoError(t, err)
	defer uow.Rollback()

	_, err = uow.Users().Create(&domain.User{AuthID: 1, Name: "player1"})
	require.NoError(t, err)

	require.NoError(t, uow.Users().DeleteByAuthID(1))

	_, err = uow.Users().GetByAuthID(1)
	_, ok := domain.IsNotFound(err)
	assert.True(t, ok)

	err = uow.Users().DeleteByAuthID(1)
	_, ok = domain.IsNotFound(err)
	assert.True(t, ok)
}

func TestMissingAuthIDs(t *testing.T) {
	store := NewStore()
	uow, err := store.Begin()
	require.NoError(t, err)
	defer uow.Rollback()

	_, err = uow.Users().Create(&domain.User{AuthID: 1, Name: "player1"})
	require.NoError(t, err)

	missing, err := uow.Users().MissingAuthIDs([]int64{1, 3, 4, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, missing)
}

func TestUserGameRelations(t *testing.T) {
	store := NewStore()
	uow, err := store.Begin()
	require.NoError(t, err)
	defer uow.Rollback()

	for authID := int64(1); authID <= 2; authID++ {
		_, err := uow.Users().Create(&domain.User{AuthID: authID, Name: "player"})
		require.NoError(t, err)
	}

	winner := int64(1)
	now := time.Now()
	game, err := uow.Games().Create(&domain.Game{StartedAt: now, EndedAt: now.Add(time.Minute)}, []int64{1, 2}, &winner)
	require.NoError(t, err)
	require.Len(t, game.Users, 2)
	require.NotNil(t, game.Winner)

	user, err := uow.Users().GetByAuthID(1)
	require.NoError(t, err)
	assert.Len(t, user.Games, 1)
	assert.Len(t, user.GamesWon, 1)

	loser, err := uow.Users().GetByAuthID(2)
	require.NoError(t, err)
	assert.Len(t, loser.Games, 1)
	assert.Empty(t, loser.GamesWon)
}

func TestCreateGameUnknownParticipant(t *testing.T) {
	store := NewStore()
	uow, err := store.Begin()
	require.NoError(t, err)
	defer uow.Rollback()

	_, err = uow.Users().Create(&domain.User{AuthID: 1, Name: "player1"})
	require.NoError(t, err)

	now := time.Now()
	_, err = uow.Games().Create(&domain.Game{StartedAt: now, EndedAt: now}, []int64{1, 9}, nil)
	nf, ok := domain.IsNotFound(err)
	require.True(t, ok)
	assert.Equal(t, domain.EntityUser, nf.Entity)
	assert.Equal(t, []int64{9}, nf.Keys)
}
