package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/matchvault/matchvault/internal/dbx"
	"github.com/matchvault/matchvault/internal/shared"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, p *Profile) error {

	query :=
		`INSERT INTO profiles (principal, category_handle, sub_a_handle, sub_b_handle, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)
		 ON CONFLICT (principal) DO UPDATE
		 SET category_handle = $2, sub_a_handle = $3, sub_b_handle = $4, updated_at = $5
		 `

	_, err := r.db.ExecContext(ctx, query,
		p.Principal, p.CategoryHandle, p.SubAHandle, p.SubBHandle, p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, principal string) (*Profile, error) {

	query :=
		`SELECT principal, category_handle, sub_a_handle, sub_b_handle, created_at, updated_at
		 FROM profiles
		 WHERE principal = $1
		 `

	p := &Profile{}
	err := r.db.QueryRowContext(ctx, query, principal).Scan(
		&p.Principal, &p.CategoryHandle, &p.SubAHandle, &p.SubBHandle, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return p, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, principal string) (bool, error) {

	query :=
		`SELECT EXISTS(SELECT 1 FROM profiles WHERE principal = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, principal).Scan(&exists); err != nil {
		return false, fmt.Errorf("error performing sql request: %v", err)
	}

	return exists, nil
}
