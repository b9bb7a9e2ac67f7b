package persistence

import (
	"context"
)

// UnitOfWork coordinates a serializable transaction across repositories.
// Repositories obtained from a context returned by Begin share that transaction.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetReservationRepository returns a reservation repository bound to the current transaction
	GetReservationRepository(ctx context.Context) ReservationRepository

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetFineRepository returns a fine repository bound to the current transaction
	GetFineRepository(ctx context.Context) FineRepository
}
