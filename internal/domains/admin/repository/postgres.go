package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"vitrine-backend/internal/domains/admin"
	"vitrine-backend/internal/shared/apperr"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) admin.Repository {
	return &postgresRepository{pool: pool}
}

const userColumns = `id, email, password_hash, COALESCE(name, ''), role, created_at`

func (r *postgresRepository) scanUser(row pgx.Row) (*admin.User, error) {
	var u admin.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, admin.ErrUserNotFound
		}
		return nil, apperr.Storage("admin.scan", err)
	}
	return &u, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*admin.User, error) {
	query := `SELECT ` + userColumns + ` FROM admin_users WHERE LOWER(email) = LOWER($1)`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*admin.User, error) {
	query := `SELECT ` + userColumns + ` FROM admin_users WHERE id = $1`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) List(ctx context.Context) ([]admin.User, error) {
	query := `SELECT ` + userColumns + ` FROM admin_users ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperr.Storage("admin.list", err)
	}
	defer rows.Close()

	users := []admin.User{}
	for rows.Next() {
		var u admin.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt); err != nil {
			return nil, apperr.Storage("admin.scan", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("admin.list", err)
	}

	return users, nil
}

func (r *postgresRepository) Add(ctx context.Context, u admin.User) error {
	query := `
		INSERT INTO admin_users (id, email, password_hash, name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query, u.ID, u.Email, u.PasswordHash, u.Name, u.Role, u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return admin.ErrEmailExists
		}
		return apperr.Storage("admin.add", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return false, apperr.Storage("admin.delete", err)
	}

	return result.RowsAffected() > 0, nil
}
