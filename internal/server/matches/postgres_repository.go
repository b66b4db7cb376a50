package matches

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

func (r *PostgresRepository) Create(ctx context.Context, m *Match) error {

	query :=
		`INSERT INTO matches (id, requester, partner, score_handle, revealed, revealed_score, fee_paid, status, created_at, timeout_deadline)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 `

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Requester, m.Partner, m.ScoreHandle, m.Revealed, m.RevealedScore,
		m.FeePaid, string(m.Status), m.CreatedAt, m.TimeoutDeadline)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shared.ErrorAlreadyExists
		}
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Match, error) {

	query :=
		`SELECT id, requester, partner, score_handle, revealed, revealed_score, fee_paid, status, created_at, timeout_deadline
		 FROM matches
		 WHERE id = $1
		 `

	m := &Match{}
	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.Requester, &m.Partner, &m.ScoreHandle, &m.Revealed, &m.RevealedScore,
		&m.FeePaid, &status, &m.CreatedAt, &m.TimeoutDeadline)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	m.Status = Status(status)

	return m, nil
}

func (r *PostgresRepository) setStatus(ctx context.Context, id string, status Status) error {

	query :=
		`UPDATE matches SET status = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if affected == 0 {
		return shared.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) SetProcessing(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, StatusProcessing)
}

func (r *PostgresRepository) Complete(ctx context.Context, id string, score int64) error {

	query :=
		`UPDATE matches
		 SET status = $2, revealed = TRUE, revealed_score = $3
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, string(StatusCompleted), score)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if affected == 0 {
		return shared.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) MarkTimedOut(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, StatusTimedOut)
}

func (r *PostgresRepository) MarkRefunded(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, StatusRefunded)
}
