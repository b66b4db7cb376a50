package reveals

import "context"

// Repository stores decryption requests plus the explicit reverse-lookup
// table (request id → match id) used for callback routing. The route row is
// written atomically with the request record.
type Repository interface {
	// Create allocates the next request identifier, stores the record, and
	// populates the reverse index. Returns the allocated id.
	Create(ctx context.Context, r *Request) (int64, error)

	// Get returns the request or shared.ErrorNotFound.
	Get(ctx context.Context, id int64) (*Request, error)

	// Complete moves the request into StatusCompleted.
	Complete(ctx context.Context, id int64) error

	// MatchIDFor resolves a request identifier to its match identifier via
	// the reverse index. Returns shared.ErrorNotFound for unknown ids.
	MatchIDFor(ctx context.Context, id int64) (string, error)
}
