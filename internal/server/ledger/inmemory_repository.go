package ledger

import (
	"context"
	"sync"
)

// InMemoryRepository keeps balances and counters in maps. Used by tests and
// by the in-memory storage manager, which snapshots it for rollback.
type InMemoryRepository struct {
	mu            sync.RWMutex
	balances      map[string]int64
	counters      map[string]int64
	matchCounters map[string]int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		balances:      make(map[string]int64),
		counters:      make(map[string]int64),
		matchCounters: make(map[string]int64),
	}
}

func (r *InMemoryRepository) Credit(ctx context.Context, principal string, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[principal] += amount
	return nil
}

func (r *InMemoryRepository) Balance(ctx context.Context, principal string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balances[principal], nil
}

func (r *InMemoryRepository) Zero(ctx context.Context, principal string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prior := r.balances[principal]
	r.balances[principal] = 0
	return prior, nil
}

func (r *InMemoryRepository) AddPlatformFees(ctx context.Context, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[CounterPlatformFees] += amount
	return nil
}

func (r *InMemoryRepository) PlatformBalance(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counters[CounterPlatformFees], nil
}

func (r *InMemoryRepository) ZeroPlatformFees(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prior := r.counters[CounterPlatformFees]
	r.counters[CounterPlatformFees] = 0
	return prior, nil
}

func (r *InMemoryRepository) AddRefunds(ctx context.Context, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[CounterRefundsTotal] += amount
	return nil
}

func (r *InMemoryRepository) TotalRefunds(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counters[CounterRefundsTotal], nil
}

func (r *InMemoryRepository) IncrementMatchCounters(ctx context.Context, a, b string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[CounterMatchesTotal]++
	r.matchCounters[a]++
	r.matchCounters[b]++
	return nil
}

func (r *InMemoryRepository) GlobalMatchCount(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counters[CounterMatchesTotal], nil
}

func (r *InMemoryRepository) MatchCount(ctx context.Context, principal string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.matchCounters[principal], nil
}

func (r *InMemoryRepository) SetPaused(ctx context.Context, paused bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if paused {
		r.counters[CounterPaused] = 1
	} else {
		r.counters[CounterPaused] = 0
	}
	return nil
}

func (r *InMemoryRepository) Paused(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counters[CounterPaused] != 0, nil
}

// InMemorySnapshot captures repository state for transactional rollback.
type InMemorySnapshot struct {
	balances      map[string]int64
	counters      map[string]int64
	matchCounters map[string]int64
}

// Snapshot returns a deep copy of the repository state.
func (r *InMemoryRepository) Snapshot() *InMemorySnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := &InMemorySnapshot{
		balances:      make(map[string]int64, len(r.balances)),
		counters:      make(map[string]int64, len(r.counters)),
		matchCounters: make(map[string]int64, len(r.matchCounters)),
	}
	for k, v := range r.balances {
		s.balances[k] = v
	}
	for k, v := range r.counters {
		s.counters[k] = v
	}
	for k, v := range r.matchCounters {
		s.matchCounters[k] = v
	}
	return s
}

// RestoreFrom replaces the repository state with a previously taken snapshot.
func (r *InMemoryRepository) RestoreFrom(s *InMemorySnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances = s.balances
	r.counters = s.counters
	r.matchCounters = s.matchCounters
}
