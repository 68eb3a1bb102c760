// Package storage defines the persistence interfaces the status service
// relies on. It abstracts snapshot and incident storage plus transaction
// management so different backends (e.g. PostgreSQL) can provide concrete
// implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is a composite interface that includes all domain-specific
// storage capabilities required by the application.
type AllStorage interface {
	SnapshotStorage
	IncidentStorage
	JobStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same capabilities as AllStorage plus commit and
// rollback. Implementations become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions and manage its own lifecycle.
type Storage interface {
	AllStorage

	// Close releases resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage scoped to it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes the callback with a transactional
	// handle, and commits on success or rolls back if the callback errors.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
