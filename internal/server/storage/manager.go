// Package storage binds the entity repositories to a backend: PostgreSQL for
// deployments, an in-memory variant for tests and single-node development.
package storage

import (
	"context"

	"github.com/matchvault/matchvault/internal/server/ledger"
	"github.com/matchvault/matchvault/internal/server/matches"
	"github.com/matchvault/matchvault/internal/server/principals"
	"github.com/matchvault/matchvault/internal/server/profiles"
	"github.com/matchvault/matchvault/internal/server/refreshtokens"
	"github.com/matchvault/matchvault/internal/server/reveals"
)

// Store bundles the repositories bound to one backend handle. A Store handed
// to a Transact callback is bound to the transaction; mutations through it
// are atomic.
type Store interface {
	Principals() principals.Repository
	RefreshTokens() refreshtokens.Repository
	Profiles() profiles.Repository
	Matches() matches.Repository
	Reveals() reveals.Repository
	Ledger() ledger.Repository
}

// Manager owns the backend connection and hands out Stores.
type Manager interface {
	RunMigrations(ctx context.Context) error

	// Store returns a non-transactional store for reads and single-row
	// writes.
	Store() Store

	// Transact runs fn against a transaction-bound store. If fn returns an
	// error, every mutation made through the store is rolled back; no
	// partial application is ever observable.
	Transact(ctx context.Context, fn func(ctx context.Context, s Store) error) error

	Close() error
}
