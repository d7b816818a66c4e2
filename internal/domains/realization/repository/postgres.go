package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vitrine-backend/internal/domains/realization"
	"vitrine-backend/internal/shared/apperr"
	"vitrine-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) realization.Repository {
	return &postgresRepository{pool: pool}
}

const columns = `id, title, building_type, location, category, service_type, description,
	COALESCE(image, ''), COALESCE(before_image, ''), COALESCE(after_image, ''), featured`

func scanRealization(row pgx.Row) (*realization.Realization, error) {
	var item realization.Realization
	err := row.Scan(&item.ID, &item.Title, &item.BuildingType, &item.Location, &item.Category,
		&item.ServiceType, &item.Description, &item.Image, &item.BeforeImage, &item.AfterImage, &item.Featured)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepository) list(ctx context.Context, query string) ([]realization.Realization, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperr.Storage("realizations.list", err)
	}
	defer rows.Close()

	list := []realization.Realization{}
	for rows.Next() {
		item, err := scanRealization(rows)
		if err != nil {
			return nil, apperr.Storage("realizations.scan", err)
		}
		list = append(list, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("realizations.list", err)
	}

	return list, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]realization.Realization, error) {
	return r.list(ctx, `SELECT `+columns+` FROM realizations ORDER BY title`)
}

func (r *postgresRepository) ListFeatured(ctx context.Context) ([]realization.Realization, error) {
	return r.list(ctx, `SELECT `+columns+` FROM realizations WHERE featured ORDER BY title`)
}

func (r *postgresRepository) Add(ctx context.Context, item realization.Realization) error {
	query := `
		INSERT INTO realizations (id, title, building_type, location, category, service_type,
			description, image, before_image, after_image, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Title, item.BuildingType, item.Location, item.Category, item.ServiceType,
		item.Description, item.Image, item.BeforeImage, item.AfterImage, item.Featured,
	)
	if err != nil {
		return apperr.Storage("realizations.add", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, id string, patch realization.Patch) (*realization.Realization, error) {
	cols := patch.RowPatch()
	if len(cols) == 0 {
		item, err := scanRealization(r.pool.QueryRow(ctx, `SELECT `+columns+` FROM realizations WHERE id = $1`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, realization.ErrNotFound
			}
			return nil, apperr.Storage("realizations.get", err)
		}
		return item, nil
	}

	setClause, args := utils.BuildSetClause(cols, 2)
	query := fmt.Sprintf(`UPDATE realizations SET %s WHERE id = $1 RETURNING `+columns, setClause)

	item, err := scanRealization(r.pool.QueryRow(ctx, query, append([]interface{}{id}, args...)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, realization.ErrNotFound
		}
		return nil, apperr.Storage("realizations.update", err)
	}

	return item, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM realizations WHERE id = $1`, id)
	if err != nil {
		return false, apperr.Storage("realizations.delete", err)
	}

	return result.RowsAffected() > 0, nil
}
