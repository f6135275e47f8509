package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/adroitdesign/studio-api/internal/model/auth"
	"github.com/adroitdesign/studio-api/pkg/db/transactor"
)

type UserRepository interface {
	Create(ctx context.Context, u auth.User) error
	FindByEmail(ctx context.Context, email string) (auth.User, error)
	FindByID(ctx context.Context, id string) (auth.User, error)
}

type postgresUserRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

func NewPostgresUserRepository(trx transactor.PgxWithinTransactionExecutor) UserRepository {
	return &postgresUserRepository{trx: trx}
}

func (r *postgresUserRepository) Create(ctx context.Context, u auth.User) error {
	q := "INSERT INTO users(id, email, password_hash) VALUES($1, $2, $3)"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, u.ID, u.Email, u.PasswordHash); err != nil {
		return err
	}
	return nil
}

func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (auth.User, error) {
	q := "SELECT id, email, password_hash FROM users WHERE email = $1"
	return r.scanRow(r.trx.Executor(ctx).QueryRow(ctx, q, email))
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id string) (auth.User, error) {
	q := "SELECT id, email, password_hash FROM users WHERE id = $1"
	return r.scanRow(r.trx.Executor(ctx).QueryRow(ctx, q, id))
}

func (r *postgresUserRepository) scanRow(row pgx.Row) (auth.User, error) {
	var u auth.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, nil
		}
		return u, err
	}
	return u, nil
}
