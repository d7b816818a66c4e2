package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vitrine-backend/internal/domains/brand"
	"vitrine-backend/internal/shared/apperr"
	"vitrine-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) brand.Repository {
	return &postgresRepository{pool: pool}
}

const columns = `id, name, category, COALESCE(description, ''), COALESCE(logo, ''), COALESCE(website, '')`

func scanBrand(row pgx.Row) (*brand.Brand, error) {
	var b brand.Brand
	err := row.Scan(&b.ID, &b.Name, &b.Category, &b.Description, &b.Logo, &b.Website)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]brand.Brand, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+columns+` FROM brands ORDER BY name`)
	if err != nil {
		return nil, apperr.Storage("brands.list", err)
	}
	defer rows.Close()

	list := []brand.Brand{}
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, apperr.Storage("brands.scan", err)
		}
		list = append(list, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("brands.list", err)
	}

	return list, nil
}

func (r *postgresRepository) Add(ctx context.Context, b brand.Brand) error {
	query := `
		INSERT INTO brands (id, name, category, description, logo, website)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query, b.ID, b.Name, b.Category, b.Description, b.Logo, b.Website)
	if err != nil {
		return apperr.Storage("brands.add", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, id string, patch brand.Patch) (*brand.Brand, error) {
	cols := patch.RowPatch()
	if len(cols) == 0 {
		b, err := scanBrand(r.pool.QueryRow(ctx, `SELECT `+columns+` FROM brands WHERE id = $1`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, brand.ErrNotFound
			}
			return nil, apperr.Storage("brands.get", err)
		}
		return b, nil
	}

	setClause, args := utils.BuildSetClause(cols, 2)
	query := fmt.Sprintf(`UPDATE brands SET %s WHERE id = $1 RETURNING `+columns, setClause)

	b, err := scanBrand(r.pool.QueryRow(ctx, query, append([]interface{}{id}, args...)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, brand.ErrNotFound
		}
		return nil, apperr.Storage("brands.update", err)
	}

	return b, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return false, apperr.Storage("brands.delete", err)
	}

	return result.RowsAffected() > 0, nil
}
