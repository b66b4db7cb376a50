package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/matchvault/matchvault/internal/dbx"
	"github.com/matchvault/matchvault/internal/server/ledger"
	"github.com/matchvault/matchvault/internal/server/matches"
	"github.com/matchvault/matchvault/internal/server/migrations"
	"github.com/matchvault/matchvault/internal/server/principals"
	"github.com/matchvault/matchvault/internal/server/profiles"
	"github.com/matchvault/matchvault/internal/server/refreshtokens"
	"github.com/matchvault/matchvault/internal/server/reveals"
)

// pgStore binds the repositories to a shared handle, either the pooled
// connection or an open transaction.
type pgStore struct {
	q dbx.DBTX
}

func (s pgStore) Principals() principals.Repository       { return principals.NewPostgresRepository(s.q) }
func (s pgStore) RefreshTokens() refreshtokens.Repository { return refreshtokens.NewPostgresRepository(s.q) }
func (s pgStore) Profiles() profiles.Repository           { return profiles.NewPostgresRepository(s.q) }
func (s pgStore) Matches() matches.Repository             { return matches.NewPostgresRepository(s.q) }
func (s pgStore) Reveals() reveals.Repository             { return reveals.NewPostgresRepository(s.q) }
func (s pgStore) Ledger() ledger.Repository               { return ledger.NewPostgresRepository(s.q) }

type PostgresManager struct {
	db *sql.DB
}

func NewPostgresManager(dsn string) (*PostgresManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return &PostgresManager{db: db}, nil
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func (m *PostgresManager) Store() Store {
	return pgStore{q: m.db}
}

func (m *PostgresManager) Transact(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, pgStore{q: tx})
	})
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}
