package storage

import (
	"context"
	"sync"

	"github.com/matchvault/matchvault/internal/server/ledger"
	"github.com/matchvault/matchvault/internal/server/matches"
	"github.com/matchvault/matchvault/internal/server/principals"
	"github.com/matchvault/matchvault/internal/server/profiles"
	"github.com/matchvault/matchvault/internal/server/refreshtokens"
	"github.com/matchvault/matchvault/internal/server/reveals"
)

// InMemoryManager keeps everything in process memory. Transact takes a
// global lock, snapshots the mutable repositories, and restores them if the
// callback fails, giving the same all-or-nothing visibility as the SQL
// backend.
type InMemoryManager struct {
	mu sync.Mutex

	principalsRepo *principals.InMemoryRepository
	refreshRepo    *refreshtokens.InMemoryRepository
	profilesRepo   *profiles.InMemoryRepository
	matchesRepo    *matches.InMemoryRepository
	revealsRepo    *reveals.InMemoryRepository
	ledgerRepo     *ledger.InMemoryRepository
}

func NewInMemoryManager() *InMemoryManager {
	return &InMemoryManager{
		principalsRepo: principals.NewInMemoryRepository(),
		refreshRepo:    refreshtokens.NewInMemoryRepository(),
		profilesRepo:   profiles.NewInMemoryRepository(),
		matchesRepo:    matches.NewInMemoryRepository(),
		revealsRepo:    reveals.NewInMemoryRepository(),
		ledgerRepo:     ledger.NewInMemoryRepository(),
	}
}

type memStore struct {
	m *InMemoryManager
}

func (s memStore) Principals() principals.Repository       { return s.m.principalsRepo }
func (s memStore) RefreshTokens() refreshtokens.Repository { return s.m.refreshRepo }
func (s memStore) Profiles() profiles.Repository           { return s.m.profilesRepo }
func (s memStore) Matches() matches.Repository             { return s.m.matchesRepo }
func (s memStore) Reveals() reveals.Repository             { return s.m.revealsRepo }
func (s memStore) Ledger() ledger.Repository               { return s.m.ledgerRepo }

func (m *InMemoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryManager) Store() Store {
	return memStore{m: m}
}

func (m *InMemoryManager) Transact(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	profilesSnap := m.profilesRepo.Snapshot()
	matchesSnap := m.matchesRepo.Snapshot()
	revealsSnap := m.revealsRepo.Snapshot()
	ledgerSnap := m.ledgerRepo.Snapshot()
	principalsSnap := m.principalsRepo.Snapshot()

	if err := fn(ctx, memStore{m: m}); err != nil {
		m.profilesRepo.RestoreFrom(profilesSnap)
		m.matchesRepo.RestoreFrom(matchesSnap)
		m.revealsRepo.RestoreFrom(revealsSnap)
		m.ledgerRepo.RestoreFrom(ledgerSnap)
		m.principalsRepo.RestoreFrom(principalsSnap)
		return err
	}

	return nil
}

func (m *InMemoryManager) Close() error {
	return nil
}
