// Package profiles stores per-principal encrypted attribute profiles.
// Attribute values are opaque ciphertext blobs held in the blob store; only
// their handles (object keys) live in the database.
package profiles

import "time"

// Profile holds the three encrypted attribute handles for a principal.
// At most one profile exists per principal; updates mutate in place and
// profiles are never deleted.
type Profile struct {
	Principal      string
	CategoryHandle string
	SubAHandle     string
	SubBHandle     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
