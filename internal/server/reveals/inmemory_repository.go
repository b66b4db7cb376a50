package reveals

import (
	"context"
	"sync"

	"github.com/matchvault/matchvault/internal/shared"
)

// InMemoryRepository keeps decryption requests in maps, with identifiers
// allocated from an in-process counter. Records are never deleted.
type InMemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	records map[int64]*Request
	routes  map[int64]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records: make(map[int64]*Request),
		routes:  make(map[int64]string),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, req *Request) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	req.ID = r.nextID

	cp := *req
	r.records[req.ID] = &cp
	r.routes[req.ID] = req.MatchID

	return req.ID, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id int64) (*Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.records[id]
	if !ok {
		return nil, shared.ErrorNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *InMemoryRepository) Complete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.records[id]
	if !ok {
		return shared.ErrorNotFound
	}
	req.Status = StatusCompleted
	return nil
}

func (r *InMemoryRepository) MatchIDFor(ctx context.Context, id int64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matchID, ok := r.routes[id]
	if !ok {
		return "", shared.ErrorNotFound
	}
	return matchID, nil
}

// InMemorySnapshot captures repository state for transactional rollback.
type InMemorySnapshot struct {
	nextID  int64
	records map[int64]*Request
	routes  map[int64]string
}

// Snapshot returns a deep copy of the repository state.
func (r *InMemoryRepository) Snapshot() *InMemorySnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := &InMemorySnapshot{
		nextID:  r.nextID,
		records: make(map[int64]*Request, len(r.records)),
		routes:  make(map[int64]string, len(r.routes)),
	}
	for k, v := range r.records {
		cp := *v
		s.records[k] = &cp
	}
	for k, v := range r.routes {
		s.routes[k] = v
	}
	return s
}

// RestoreFrom replaces the repository state with a previously taken snapshot.
func (r *InMemoryRepository) RestoreFrom(s *InMemorySnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID = s.nextID
	r.records = s.records
	r.routes = s.routes
}
