package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/adroitdesign/studio-api/internal/model/auth"
	"github.com/adroitdesign/studio-api/pkg/db/transactor"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, t auth.RefreshToken) error
	FindByID(ctx context.Context, id string) (auth.RefreshToken, error)
	FindTokensByUserID(ctx context.Context, userID string) ([]auth.RefreshToken, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type postgresRefreshTokenRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

func NewPostgresRefreshTokenRepository(trx transactor.PgxWithinTransactionExecutor) RefreshTokenRepository {
	return &postgresRefreshTokenRepository{trx: trx}
}

func (r *postgresRefreshTokenRepository) Create(ctx context.Context, t auth.RefreshToken) error {
	q := `INSERT INTO refresh_tokens(id, user_id, fingerprint, expires_in, created_at)
	      VALUES($1, $2, $3, $4, $5)`
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, t.ID, t.UserID, t.Fingerprint, t.ExpiresIn, t.CreatedAt); err != nil {
		return err
	}
	return nil
}

func (r *postgresRefreshTokenRepository) FindByID(ctx context.Context, id string) (auth.RefreshToken, error) {
	q := "SELECT id, user_id, fingerprint, expires_in, created_at FROM refresh_tokens WHERE id = $1"

	var t auth.RefreshToken
	err := r.trx.Executor(ctx).QueryRow(ctx, q, id).Scan(&t.ID, &t.UserID, &t.Fingerprint, &t.ExpiresIn, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.RefreshToken{}, nil
		}
		return auth.RefreshToken{}, err
	}
	return t, nil
}

func (r *postgresRefreshTokenRepository) FindTokensByUserID(ctx context.Context, userID string) ([]auth.RefreshToken, error) {
	q := "SELECT id, user_id, fingerprint, expires_in, created_at FROM refresh_tokens WHERE user_id = $1"

	rows, err := r.trx.Executor(ctx).Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := make([]auth.RefreshToken, 0)
	for rows.Next() {
		var t auth.RefreshToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.Fingerprint, &t.ExpiresIn, &t.CreatedAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *postgresRefreshTokenRepository) DeleteByID(ctx context.Context, id string) error {
	q := "DELETE FROM refresh_tokens WHERE id = $1"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, id); err != nil {
		return err
	}
	return nil
}

func (r *postgresRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	q := "DELETE FROM refresh_tokens WHERE user_id = $1"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, userID); err != nil {
		return err
	}
	return nil
}
