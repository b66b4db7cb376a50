// Package refreshtokens stores the opaque refresh tokens issued at login.
package refreshtokens

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, principal string, token string, validity time.Duration) error
}
