package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command, keeping
// concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary around order writes. Callers manage
// the lifecycle explicitly: Begin, then repository calls, then Commit or
// Rollback.
//
// Note that the settlement coordinator deliberately does NOT span its
// scatter writes with one unit of work: each source-order settlement write
// runs in its own transaction so that a failure on one never rolls back the
// others. The unit of work is a per-write boundary there, not a
// per-operation one.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit commits it. Errors when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards it. Errors when no transaction is active.
	Rollback(ctx context.Context) error

	// OrderRepository returns the order repository bound to the
	// transaction started by Begin.
	OrderRepository() OrderRepository
}
