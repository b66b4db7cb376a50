package matches

import (
	"context"
	"sync"

	"github.com/matchvault/matchvault/internal/shared"
)

// InMemoryRepository keeps matches in a map. Used by tests and by the
// in-memory storage manager, which snapshots it for transactional rollback.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*Match
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[string]*Match)}
}

func (r *InMemoryRepository) Create(ctx context.Context, m *Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[m.ID]; ok {
		return shared.ErrorAlreadyExists
	}
	cp := *m
	r.records[m.ID] = &cp
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.records[id]
	if !ok {
		return nil, shared.ErrorNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *InMemoryRepository) setStatus(id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.records[id]
	if !ok {
		return shared.ErrorNotFound
	}
	m.Status = status
	return nil
}

func (r *InMemoryRepository) SetProcessing(ctx context.Context, id string) error {
	return r.setStatus(id, StatusProcessing)
}

func (r *InMemoryRepository) Complete(ctx context.Context, id string, score int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.records[id]
	if !ok {
		return shared.ErrorNotFound
	}
	m.Status = StatusCompleted
	m.Revealed = true
	m.RevealedScore = score
	return nil
}

func (r *InMemoryRepository) MarkTimedOut(ctx context.Context, id string) error {
	return r.setStatus(id, StatusTimedOut)
}

func (r *InMemoryRepository) MarkRefunded(ctx context.Context, id string) error {
	return r.setStatus(id, StatusRefunded)
}

// Snapshot returns a deep copy of the repository state.
func (r *InMemoryRepository) Snapshot() map[string]*Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*Match, len(r.records))
	for k, v := range r.records {
		cp := *v
		out[k] = &cp
	}
	return out
}

// RestoreFrom replaces the repository state with a previously taken snapshot.
func (r *InMemoryRepository) RestoreFrom(snapshot map[string]*Match) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = snapshot
}
