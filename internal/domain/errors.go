package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Entity and primary-key names used by the error taxonomy.
const (
	EntityUser      = "User"
	EntityGame      = "Game"
	EntityAsset     = "Asset"
	EntityUserAsset = "UsersAsset"

	PKAuthID = "auth_id"
	PKID     = "id"
	PKNFTID  = "nft_id"
)

// NotFoundError reports that one or more entities could not be resolved.
// Batch operations carry the complete missing-key set, not the first hit.
type NotFoundError struct {
	Entity string
	PKName string
	Keys   []int64
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("The %s with the given %s %s does not exist.", e.Entity, e.PKName, formatKeys(e.Keys))
}

// NewUserNotFound creates a user not-found error
func NewUserNotFound(authIDs ...int64) *NotFoundError {
	return &NotFoundError{Entity: EntityUser, PKName: PKAuthID, Keys: authIDs}
}

// NewGameNotFound creates a game not-found error
func NewGameNotFound(ids ...int64) *NotFoundError {
	return &NotFoundError{Entity: EntityGame, PKName: PKID, Keys: ids}
}

// NewAssetNotFound creates an asset not-found error
func NewAssetNotFound(ids ...int64) *NotFoundError {
	return &NotFoundError{Entity: EntityAsset, PKName: PKID, Keys: ids}
}

// NewUsersAssetNotFound creates an ownership-record not-found error
func NewUsersAssetNotFound(nftIDs ...int64) *NotFoundError {
	return &NotFoundError{Entity: EntityUserAsset, PKName: PKNFTID, Keys: nftIDs}
}

// UsersAssetNotOwnedByUserError reports ownership records that do not belong
// to the transferring user during a match. NFTIDs lists all offenders.
type UsersAssetNotOwnedByUserError struct {
	NFTIDs []int64
	UserID int64
}

// Error implements the error interface
func (e *UsersAssetNotOwnedByUserError) Error() string {
	return fmt.Sprintf("The UsersAsset with the given nft_id %s is not owned by the user %d.", formatKeys(e.NFTIDs), e.UserID)
}

// UsersAssetNotLockedError reports ownership records that are not locked and
// therefore not eligible for transfer. NFTIDs lists all offenders.
type UsersAssetNotLockedError struct {
	NFTIDs []int64
}

// Error implements the error interface
func (e *UsersAssetNotLockedError) Error() string {
	return fmt.Sprintf("The UsersAsset with the given nft_id %s is not locked.", formatKeys(e.NFTIDs))
}

// UsersAreSameError reports a degenerate match request between one user.
type UsersAreSameError struct {
	UserID int64
}

// Error implements the error interface
func (e *UsersAreSameError) Error() string {
	return fmt.Sprintf("The users of a match must differ, got auth_id %d for both sides.", e.UserID)
}

// UsersAssetAlreadyExistsError reports a collision on a caller-supplied nft id.
type UsersAssetAlreadyExistsError struct {
	NFTID  int64
	UserID int64
}

// Error implements the error interface
func (e *UsersAssetAlreadyExistsError) Error() string {
	return fmt.Sprintf("The UsersAsset with the given nft_id %d already exists for the user %d.", e.NFTID, e.UserID)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// IsConflict reports whether the error is one of the ledger precondition
// violations (same user, not owned, not locked, nft id collision).
func IsConflict(err error) bool {
	var (
		same     *UsersAreSameError
		notOwned *UsersAssetNotOwnedByUserError
		unlocked *UsersAssetNotLockedError
		exists   *UsersAssetAlreadyExistsError
	)
	return errors.As(err, &same) || errors.As(err, &notOwned) ||
		errors.As(err, &unlocked) || errors.As(err, &exists)
}

func formatKeys(keys []int64) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.FormatInt(k, 10)
	}
	return strings.Join(parts, ", ")
}
