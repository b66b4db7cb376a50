package profiles

import "context"

type Repository interface {
	// Upsert creates the principal's profile or replaces its handles in
	// place, bumping UpdatedAt.
	Upsert(ctx context.Context, p *Profile) error

	// Get returns the profile or shared.ErrorNotFound.
	Get(ctx context.Context, principal string) (*Profile, error)

	// Exists reports whether the principal has a profile.
	Exists(ctx context.Context, principal string) (bool, error)
}
