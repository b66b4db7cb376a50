package profiles

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/matchvault/matchvault/internal/server/blobstore"
)

// Service persists encrypted attribute blobs to the blob store and records
// their handles in the profile repository.
type Service struct {
	repo  Repository
	blobs blobstore.Store
	now   func() time.Time
}

func NewService(repo Repository, blobs blobstore.Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, blobs: blobs, now: now}
}

// storageKey builds a date-partitioned object key for an attribute blob.
func storageKey(principal string) string {
	d := time.Now()
	return fmt.Sprintf("profiles/%d/%d/%d/%s/%v", d.Year(), d.Month(), d.Day(), principal, uuid.New())
}

// Submit stores the three encrypted attribute blobs and creates or replaces
// the principal's profile. Old blobs are left in place; only the handles are
// swapped.
func (s *Service) Submit(ctx context.Context, principal string, category, subA, subB []byte) (*Profile, error) {

	handles := make([]string, 3)
	for i, blob := range [][]byte{category, subA, subB} {
		key := storageKey(principal)
		if err := s.blobs.Put(ctx, key, blob); err != nil {
			return nil, fmt.Errorf("error storing attribute blob: %w", err)
		}
		handles[i] = key
	}

	now := s.now()
	p := &Profile{
		Principal:      principal,
		CategoryHandle: handles[0],
		SubAHandle:     handles[1],
		SubBHandle:     handles[2],
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("error saving profile: %w", err)
	}

	return p, nil
}

// Get returns the principal's profile.
func (s *Service) Get(ctx context.Context, principal string) (*Profile, error) {
	return s.repo.Get(ctx, principal)
}
