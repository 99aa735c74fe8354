package postgres

import (
	"context"
	"errors"
	"fmt"

	"lnledger/internal/core/domain"
	"lnledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// AccessKeyRepo implements ports.AccessKeyRepository.
type AccessKeyRepo struct {
	pool Pool
}

// NewAccessKeyRepo creates a new AccessKeyRepo.
func NewAccessKeyRepo(pool Pool) *AccessKeyRepo {
	return &AccessKeyRepo{pool: pool}
}

func (r *AccessKeyRepo) querier(q ports.Querier) ports.Querier {
	if q != nil {
		return q
	}
	return r.pool
}

// AddAccessKey inserts a new access key.
func (r *AccessKeyRepo) AddAccessKey(ctx context.Context, q ports.Querier, k *domain.AccessKey) error {
	q = r.querier(q)

	query := `INSERT INTO access_keys (key, wallet_id, user_id, level, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := q.Exec(ctx, query, k.Key, k.WalletID, k.UserID, k.Level, k.CreatedAt); err != nil {
		return fmt.Errorf("insert access key: %w", err)
	}
	return nil
}

// RemoveAccessKey deletes an access key by its credential string.
func (r *AccessKeyRepo) RemoveAccessKey(ctx context.Context, q ports.Querier, key string) error {
	q = r.querier(q)

	tag, err := q.Exec(ctx, `DELETE FROM access_keys WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete access key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("access key not found")
	}
	return nil
}

// GetAccessKey fetches an access key by its credential string, or nil.
func (r *AccessKeyRepo) GetAccessKey(ctx context.Context, q ports.Querier, key string) (*domain.AccessKey, error) {
	q = r.querier(q)

	k := &domain.AccessKey{}
	query := `SELECT key, wallet_id, user_id, level, created_at FROM access_keys WHERE key = $1`
	err := q.QueryRow(ctx, query, key).Scan(&k.Key, &k.WalletID, &k.UserID, &k.Level, &k.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get access key: %w", err)
	}
	return k, nil
}
