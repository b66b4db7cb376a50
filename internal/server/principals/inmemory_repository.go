package principals

import (
	"context"
	"sync"
	"time"

	"github.com/matchvault/matchvault/internal/shared"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*Principal
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[string]*Principal)}
}

func (r *InMemoryRepository) Create(ctx context.Context, p *Principal) (*Principal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[p.Address]; ok {
		return nil, shared.ErrorAlreadyExists
	}

	cp := *p
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.records[p.Address] = &cp

	out := cp
	return &out, nil
}

func (r *InMemoryRepository) GetByAddress(ctx context.Context, address string) (*Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.records[address]
	if !ok {
		return nil, shared.ErrorNotFound
	}
	cp := *p
	return &cp, nil
}

// Snapshot returns a deep copy of the repository state.
func (r *InMemoryRepository) Snapshot() map[string]*Principal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*Principal, len(r.records))
	for k, v := range r.records {
		cp := *v
		out[k] = &cp
	}
	return out
}

// RestoreFrom replaces the repository state with a previously taken snapshot.
func (r *InMemoryRepository) RestoreFrom(snapshot map[string]*Principal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = snapshot
}
