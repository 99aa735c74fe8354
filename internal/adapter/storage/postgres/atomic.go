package postgres

import (
	"context"
	"errors"
	"time"

	"lnledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Serialization conflicts are retried this many times before surfacing.
const maxAtomicAttempts = 5

// Transactor implements ports.Transactor over a pgx pool. Units of work run
// at serializable isolation; the balance-safety guarantees of the settlement
// engine depend on that level, not on application locking.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a new Transactor wrapping the connection pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

// RunAtomic executes fn within one serializable transaction, committing on
// nil and rolling back otherwise. Serialization failures are retried with a
// short backoff; any other error is returned as-is.
func (t *Transactor) RunAtomic(ctx context.Context, fn func(ctx context.Context, q ports.Querier) error) error {
	var lastErr error
	for attempt := 0; attempt < maxAtomicAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 10 * time.Millisecond):
			}
		}

		err := t.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

func (t *Transactor) runOnce(ctx context.Context, fn func(ctx context.Context, q ports.Querier) error) error {
	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// isSerializationFailure matches PostgreSQL serialization_failure (40001)
// and deadlock_detected (40P01).
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
