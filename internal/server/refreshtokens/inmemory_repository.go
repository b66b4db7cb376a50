package refreshtokens

import (
	"context"
	"sync"
	"time"
)

type record struct {
	principal string
	expiresAt time.Time
}

type InMemoryRepository struct {
	mu     sync.Mutex
	tokens map[string]record
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{tokens: make(map[string]record)}
}

func (r *InMemoryRepository) Create(ctx context.Context, principal string, token string, validity time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = record{principal: principal, expiresAt: time.Now().Add(validity)}
	return nil
}
