package ledger

import "context"

// Repository stores claimable balances and scalar counters. Ledger entries
// are created implicitly: crediting an unknown principal starts it at zero.
// Zero returns the prior balance so the withdrawal path can restore it by
// re-crediting if the external transfer fails (the storage manager rolls the
// whole transaction back instead when the backend supports it).
type Repository interface {
	// Credit adds amount to the principal's claimable balance.
	Credit(ctx context.Context, principal string, amount int64) error

	// Balance returns the principal's claimable balance (zero by default).
	Balance(ctx context.Context, principal string) (int64, error)

	// Zero atomically clears the principal's balance and returns the prior
	// value.
	Zero(ctx context.Context, principal string) (int64, error)

	// AddPlatformFees adds amount to the platform fee account.
	AddPlatformFees(ctx context.Context, amount int64) error

	// PlatformBalance returns the accumulated platform fees.
	PlatformBalance(ctx context.Context) (int64, error)

	// ZeroPlatformFees atomically clears the platform fee account and
	// returns the prior value.
	ZeroPlatformFees(ctx context.Context) (int64, error)

	// AddRefunds adds amount to the running total-refunds counter.
	AddRefunds(ctx context.Context, amount int64) error

	// TotalRefunds returns the running total of refunds credited.
	TotalRefunds(ctx context.Context) (int64, error)

	// IncrementMatchCounters bumps the global match counter and the
	// per-principal counters for both participants.
	IncrementMatchCounters(ctx context.Context, a, b string) error

	// GlobalMatchCount returns the total number of matches created.
	GlobalMatchCount(ctx context.Context) (int64, error)

	// MatchCount returns the number of matches the principal participates in.
	MatchCount(ctx context.Context, principal string) (int64, error)

	// SetPaused persists the pause guard flag.
	SetPaused(ctx context.Context, paused bool) error

	// Paused reads the pause guard flag.
	Paused(ctx context.Context) (bool, error)
}
