// Package transfer defines the external fund-transfer boundary used by the
// withdrawal paths. The engine zeroes the internal balance before invoking
// Transfer and rolls the zeroing back if Transfer fails, so implementations
// only need to report success or failure.
package transfer

import (
	"context"

	"github.com/matchvault/matchvault/internal/logging"
)

type Transferer interface {
	// Transfer moves amount (minor units) out of the service to the
	// principal's external account.
	Transfer(ctx context.Context, principal string, amount int64) error
}

// LogTransferer is the development implementation: it records the transfer
// and succeeds. Real deployments plug in a payment or settlement backend.
type LogTransferer struct {
	logger logging.Logger
}

func NewLogTransferer(logger logging.Logger) *LogTransferer {
	return &LogTransferer{logger: logger.With("module", "transfer")}
}

func (t *LogTransferer) Transfer(ctx context.Context, principal string, amount int64) error {
	t.logger.Info(ctx, "transfer executed", "principal", principal, "amount", amount)
	return nil
}
