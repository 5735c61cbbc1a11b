package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "User_Single",
			err:      NewUserNotFound(3),
			expected: "The User with the given auth_id 3 does not exist.",
		},
		{
			name:     "User_Batch",
			err:      NewUserNotFound(3, 4),
			expected: "The User with the given auth_id 3, 4 does not exist.",
		},
		{
			name:     "Game",
			err:      NewGameNotFound(7),
			expected: "The Game with the given id 7 does not exist.",
		},
		{
			name:     "Asset",
			err:      NewAssetNotFound(1, 2, 3),
			expected: "The Asset with the given id 1, 2, 3 does not exist.",
		},
		{
			name:     "UsersAsset",
			err:      NewUsersAssetNotFound(10, 11),
			expected: "The UsersAsset with the given nft_id 10, 11 does not exist.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNotFoundErrorCarriesKeys(t *testing.T) {
	err := NewUsersAssetNotFound(3, 4)

	nf, ok := IsNotFound(err)
	assert.True(t, ok)
	assert.Equal(t, EntityUserAsset, nf.Entity)
	assert.Equal(t, PKNFTID, nf.PKName)
	assert.Equal(t, []int64{3, 4}, nf.Keys)
}

func TestIsNotFoundWrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading record: %w", NewAssetNotFound(5))

	nf, ok := IsNotFound(wrapped)
	assert.True(t, ok)
	assert.Equal(t, []int64{5}, nf.Keys)

	_, ok = IsNotFound(fmt.Errorf("plain failure"))
	assert.False(t, ok)
}

func TestIsConflict(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		conflict bool
	}{
		{
			name:     "SameUsers",
			err:      &UsersAreSameError{UserID: 1},
			conflict: true,
		},
		{
			name:     "NotOwned",
			err:      &UsersAssetNotOwnedByUserError{NFTIDs: []int64{10}, UserID: 1},
			conflict: true,
		},
		{
			name:     "NotLocked",
			err:      &UsersAssetNotLockedError{NFTIDs: []int64{10}},
			conflict: true,
		},
		{
			name:     "AlreadyExists",
			err:      &UsersAssetAlreadyExistsError{NFTID: 10, UserID: 1},
			conflict: true,
		},
		{
			name:     "NotFound",
			err:      NewUserNotFound(1),
			conflict: false,
		},
		{
			name:     "Generic",
			err:      fmt.Errorf("boom"),
			conflict: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.conflict, IsConflict(tt.err))
		})
	}
}

func TestPreconditionErrorMessages(t *testing.T) {
	notOwned := &UsersAssetNotOwnedByUserError{NFTIDs: []int64{10, 11}, UserID: 2}
	assert.Equal(t, "The UsersAsset with the given nft_id 10, 11 is not owned by the user 2.", notOwned.Error())

	unlocked := &UsersAssetNotLockedError{NFTIDs: []int64{12}}
	assert.Equal(t, "The UsersAsset with the given nft_id 12 is not locked.", unlocked.Error())

	exists := &UsersAssetAlreadyExistsError{NFTID: 10, UserID: 1}
	assert.Equal(t, "The UsersAsset with the given nft_id 10 already exists for the user 1.", exists.Error())
}
