package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/matchvault/matchvault/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Credit(ctx context.Context, principal string, amount int64) error {

	query :=
		`INSERT INTO refund_ledger (principal, balance)
		 VALUES ($1, $2)
		 ON CONFLICT (principal) DO UPDATE SET balance = refund_ledger.balance + $2
		 `

	if _, err := r.db.ExecContext(ctx, query, principal, amount); err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}

func (r *PostgresRepository) Balance(ctx context.Context, principal string) (int64, error) {

	query :=
		`SELECT balance FROM refund_ledger WHERE principal = $1`

	var balance int64
	err := r.db.QueryRowContext(ctx, query, principal).Scan(&balance)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return balance, nil
}

func (r *PostgresRepository) Zero(ctx context.Context, principal string) (int64, error) {

	query :=
		`UPDATE refund_ledger SET balance = 0
		 WHERE principal = $1
		 RETURNING (SELECT balance FROM refund_ledger WHERE principal = $1)
		 `

	var prior int64
	err := r.db.QueryRowContext(ctx, query, principal).Scan(&prior)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return prior, nil
}

func (r *PostgresRepository) addCounter(ctx context.Context, name string, amount int64) error {

	query :=
		`INSERT INTO counters (name, value)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET value = counters.value + $2
		 `

	if _, err := r.db.ExecContext(ctx, query, name, amount); err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}

func (r *PostgresRepository) counter(ctx context.Context, name string) (int64, error) {

	query :=
		`SELECT value FROM counters WHERE name = $1`

	var value int64
	err := r.db.QueryRowContext(ctx, query, name).Scan(&value)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return value, nil
}

func (r *PostgresRepository) AddPlatformFees(ctx context.Context, amount int64) error {
	return r.addCounter(ctx, CounterPlatformFees, amount)
}

func (r *PostgresRepository) PlatformBalance(ctx context.Context) (int64, error) {
	return r.counter(ctx, CounterPlatformFees)
}

func (r *PostgresRepository) ZeroPlatformFees(ctx context.Context) (int64, error) {

	query :=
		`UPDATE counters SET value = 0
		 WHERE name = $1
		 RETURNING (SELECT value FROM counters WHERE name = $1)
		 `

	var prior int64
	err := r.db.QueryRowContext(ctx, query, CounterPlatformFees).Scan(&prior)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return prior, nil
}

func (r *PostgresRepository) AddRefunds(ctx context.Context, amount int64) error {
	return r.addCounter(ctx, CounterRefundsTotal, amount)
}

func (r *PostgresRepository) TotalRefunds(ctx context.Context) (int64, error) {
	return r.counter(ctx, CounterRefundsTotal)
}

func (r *PostgresRepository) IncrementMatchCounters(ctx context.Context, a, b string) error {

	if err := r.addCounter(ctx, CounterMatchesTotal, 1); err != nil {
		return err
	}

	query :=
		`INSERT INTO match_counters (principal, matches)
		 VALUES ($1, 1)
		 ON CONFLICT (principal) DO UPDATE SET matches = match_counters.matches + 1
		 `

	for _, p := range []string{a, b} {
		if _, err := r.db.ExecContext(ctx, query, p); err != nil {
			return fmt.Errorf("error performing sql request: %v", err)
		}
	}

	return nil
}

func (r *PostgresRepository) GlobalMatchCount(ctx context.Context) (int64, error) {
	return r.counter(ctx, CounterMatchesTotal)
}

func (r *PostgresRepository) MatchCount(ctx context.Context, principal string) (int64, error) {

	query :=
		`SELECT matches FROM match_counters WHERE principal = $1`

	var count int64
	err := r.db.QueryRowContext(ctx, query, principal).Scan(&count)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return count, nil
}

func (r *PostgresRepository) SetPaused(ctx context.Context, paused bool) error {

	value := int64(0)
	if paused {
		value = 1
	}

	query :=
		`INSERT INTO counters (name, value)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET value = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, CounterPaused, value); err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}

func (r *PostgresRepository) Paused(ctx context.Context) (bool, error) {
	value, err := r.counter(ctx, CounterPaused)
	if err != nil {
		return false, err
	}
	return value != 0, nil
}
