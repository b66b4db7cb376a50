// Package blobstore persists opaque ciphertext blobs (encrypted profile
// attributes and encrypted scores) and hands back the object keys used as
// handles everywhere else in the system. The core never inspects blob
// contents.
package blobstore

import "context"

type Store interface {
	// Put stores data under key.
	Put(ctx context.Context, key string, data []byte) error

	// Get returns the blob stored under key, or shared.ErrorNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
}
