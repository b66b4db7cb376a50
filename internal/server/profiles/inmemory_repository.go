package profiles

import (
	"context"
	"sync"

	"github.com/matchvault/matchvault/internal/shared"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*Profile
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[string]*Profile)}
}

func (r *InMemoryRepository) Upsert(ctx context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *p
	if existing, ok := r.records[p.Principal]; ok {
		cp.CreatedAt = existing.CreatedAt
	}
	r.records[p.Principal] = &cp
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, principal string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.records[principal]
	if !ok {
		return nil, shared.ErrorNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *InMemoryRepository) Exists(ctx context.Context, principal string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.records[principal]
	return ok, nil
}

// Snapshot returns a deep copy of the repository state.
func (r *InMemoryRepository) Snapshot() map[string]*Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*Profile, len(r.records))
	for k, v := range r.records {
		cp := *v
		out[k] = &cp
	}
	return out
}

// RestoreFrom replaces the repository state with a previously taken snapshot.
func (r *InMemoryRepository) RestoreFrom(snapshot map[string]*Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = snapshot
}
