package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castledice/storage/internal/domain"
)

func TestCommitPublishesChanges(t *testing.T) {
	store := NewStore()

	uow, err := store.Begin()
	require.NoError(t, err)
	_, err = uow.Users().Create(&domain.User{AuthID: 1, Name: "player1"})
	require.NoError(t, err)
	require.NoError(t, uow.Commit())

	next, err := store.Begin()
	require.NoError(t, err)
	defer next.Rollback()

	user, err := next.Users().GetByAuthID(1)
	require.NoError(t, err)
	assert.Equal(t, "player1", user.Name)
}

func TestRollbackDiscardsChanges(t *testing.T) {
	store := NewStore()

	uow, err := store.Begin()
	require.NoError(t, err)
	_, err = uow.Users().Create(&domain.User{AuthID: 1, Name: "player1"})
	require.NoError(t, err)
	require.NoError(t, uow.Rollback())

	next, err := store.Begin()
	require.NoError(t, err)
	defer next.Rollback()

	_, err = next.Users().GetByAuthID(1)
	_, ok := domain.IsNotFound(err)
	assert.True(t, ok)
}

func TestRollbackAfterCommitIsNoop(t *testing.T) {
	store := NewStore()

	uow, err := store.Begin()
	require.NoError(t, err)
	_, err = uow.Users().Create(&domain.User{AuthID: 1, Name: "player1"})
	require.NoError(t, err)
	require.NoError(t, uow.Commit())
	require.NoError(t, uow.Rollback())

	next, err := store.Begin()
	require.NoError(t, err)
	defer next.Rollback()

	_, err = next.Users().GetByAuthID(1)
	assert.NoError(t, err)
}

func TestScopesAreIsolated(t *testing.T) {
	store := NewStore()

	first, err := store.Begin()
	require.NoError(t, err)
	_, err = first.Users().Create(&domain.User{AuthID: 1, Name: "player1"})
	require.NoError(t, err)

	// A scope opened before the commit must not see the pending write.
	second, err := store.Begin()
	require.NoError(t, err)
	defer second.Rollback()

	_, err = second.Users().GetByAuthID(1)
	_, ok := domain.IsNotFound(err)
	assert.True(t, ok)

	require.NoError(t, first.Commit())
}
