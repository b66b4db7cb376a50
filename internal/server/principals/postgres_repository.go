package principals

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/matchvault/matchvault/internal/dbx"
	"github.com/matchvault/matchvault/internal/shared"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *Principal) (*Principal, error) {

	query :=
		`INSERT INTO principals (address, salt, verifier)
		 VALUES ($1, $2, $3)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query, p.Address, p.Salt, p.Verifier).Scan(&p.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, shared.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return p, nil
}

func (r *PostgresRepository) GetByAddress(ctx context.Context, address string) (*Principal, error) {

	query :=
		`SELECT address, salt, verifier, created_at FROM principals
		 WHERE address = $1
		 `

	p := &Principal{}
	err := r.db.QueryRowContext(ctx, query, address).Scan(&p.Address, &p.Salt, &p.Verifier, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return p, nil
}
