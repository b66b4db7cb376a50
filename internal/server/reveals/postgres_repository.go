package reveals

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

func (r *PostgresRepository) Create(ctx context.Context, req *Request) (int64, error) {

	query :=
		`INSERT INTO decryption_requests (requester, match_id, fee_paid, key_generation, status, created_at, timeout_deadline)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		req.Requester, req.MatchID, req.FeePaid, int64(req.KeyGeneration),
		string(req.Status), req.CreatedAt, req.TimeoutDeadline).Scan(&req.ID)

	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	routeQuery :=
		`INSERT INTO reveal_routes (request_id, match_id)
		 VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, routeQuery, req.ID, req.MatchID); err != nil {
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return req.ID, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*Request, error) {

	query :=
		`SELECT id, requester, match_id, fee_paid, key_generation, status, created_at, timeout_deadline
		 FROM decryption_requests
		 WHERE id = $1
		 `

	req := &Request{}
	var status string
	var generation int64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.Requester, &req.MatchID, &req.FeePaid, &generation,
		&status, &req.CreatedAt, &req.TimeoutDeadline)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	req.Status = Status(status)
	req.KeyGeneration = uint64(generation)

	return req, nil
}

func (r *PostgresRepository) Complete(ctx context.Context, id int64) error {

	query :=
		`UPDATE decryption_requests SET status = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, string(StatusCompleted))
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

func (r *PostgresRepository) MatchIDFor(ctx context.Context, id int64) (string, error) {

	query :=
		`SELECT match_id FROM reveal_routes WHERE request_id = $1`

	var matchID string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&matchID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", shared.ErrorNotFound
		}
		return "", fmt.Errorf("error performing sql request: %v", err)
	}

	return matchID, nil
}
