package domain

// UnitOfWork scopes one transactional session. Repositories returned by the
// accessors are bound to that session for the scope's duration. Without an
// explicit Commit the scope rolls back; Rollback after Commit is a no-op, so
// the usual pattern is
//
//	uow, err := factory.Begin()
//	if err != nil { ... }
//	defer uow.Rollback()
//	...
//	return uow.Commit()
type UnitOfWork interface {
	Users() UserRepository
	Games() GameRepository
	Assets() AssetRepository
	Commit() error
	Rollback() error
}

// UnitOfWorkFactory begins new unit-of-work scopes.
type UnitOfWorkFactory interface {
	Begin() (UnitOfWork, error)
}
