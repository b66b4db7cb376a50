package matches

import (
	"context"
)

// Repository stores matches. Entries transition status but are never
// removed; the identifier namespace only grows. Status gating is enforced by
// the transition engine, which reads the current record before mutating it
// under its serialization lock.
type Repository interface {
	// Create inserts a new match. Returns shared.ErrorAlreadyExists if the
	// derived identifier is already in use.
	Create(ctx context.Context, m *Match) error

	// Get returns the match or shared.ErrorNotFound.
	Get(ctx context.Context, id string) (*Match, error)

	// SetProcessing moves the match into StatusProcessing.
	SetProcessing(ctx context.Context, id string) error

	// Complete sets the revealed flag, stores the plaintext score, and moves
	// the match into StatusCompleted.
	Complete(ctx context.Context, id string, score int64) error

	// MarkTimedOut moves the match into StatusTimedOut.
	MarkTimedOut(ctx context.Context, id string) error

	// MarkRefunded moves the match into StatusRefunded.
	MarkRefunded(ctx context.Context, id string) error
}
