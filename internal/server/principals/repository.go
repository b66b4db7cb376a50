package principals

import "context"

type Repository interface {
	// Create registers a new principal. Returns shared.ErrorAlreadyExists
	// when the address is taken.
	Create(ctx context.Context, p *Principal) (*Principal, error)

	// GetByAddress returns the principal or shared.ErrorNotFound.
	GetByAddress(ctx context.Context, address string) (*Principal, error)
}
