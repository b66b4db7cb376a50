// Package ledger implements the fund-safety primitives: the per-principal
// refund ledger, the platform fee account, and the append-only counters.
// Amounts are int64 minor units. Balances only decrease through the
// zero-then-transfer withdrawal path in the engine.
package ledger

// Counter names shared by both storage backends.
const (
	CounterMatchesTotal = "matches_total"
	CounterRefundsTotal = "refunds_total"
	CounterPlatformFees = "platform_fees"
	CounterPaused       = "paused"
)
