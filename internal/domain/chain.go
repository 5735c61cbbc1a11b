package domain

// ChainGateway notifies the external chain service about ledger events. The
// service never mints or burns on chain itself; transfer notifications are
// fire-and-forget from the caller's point of view.
type ChainGateway interface {
	NotifyTransfer(fromAuthID, toAuthID int64, nftIDs []int64) error
}
