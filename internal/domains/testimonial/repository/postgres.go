package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vitrine-backend/internal/domains/testimonial"
	"vitrine-backend/internal/shared/apperr"
	"vitrine-backend/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) testimonial.Repository {
	return &postgresRepository{pool: pool}
}

const columns = `id, name, rating, text, service, category, location, date, verified`

func scanTestimonial(row pgx.Row) (*testimonial.Testimonial, error) {
	var t testimonial.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Rating, &t.Text, &t.Service, &t.Category, &t.Location, &t.Date, &t.Verified)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]testimonial.Testimonial, error) {
	query := `SELECT ` + columns + ` FROM testimonials ORDER BY date DESC, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperr.Storage("testimonials.list", err)
	}
	defer rows.Close()

	list := []testimonial.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, apperr.Storage("testimonials.scan", err)
		}
		list = append(list, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("testimonials.list", err)
	}

	return list, nil
}

// Stats aggregates in SQL so the result is consistent with the rows at the
// moment of the query.
func (r *postgresRepository) Stats(ctx context.Context) (testimonial.Stats, error) {
	stats := testimonial.Stats{Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}

	query := `SELECT COUNT(*), COALESCE(ROUND(AVG(rating)::numeric, 1), 0) FROM testimonials`
	var avg float64
	if err := r.pool.QueryRow(ctx, query).Scan(&stats.TotalReviews, &avg); err != nil {
		return stats, apperr.Storage("testimonials.stats", err)
	}
	stats.AverageRating = avg

	rows, err := r.pool.Query(ctx, `SELECT rating, COUNT(*) FROM testimonials GROUP BY rating`)
	if err != nil {
		return stats, apperr.Storage("testimonials.stats", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return stats, apperr.Storage("testimonials.stats", err)
		}
		if rating >= 1 && rating <= 5 {
			stats.Distribution[rating] = count
		}
	}
	if err := rows.Err(); err != nil {
		return stats, apperr.Storage("testimonials.stats", err)
	}

	return stats, nil
}

func (r *postgresRepository) Add(ctx context.Context, t testimonial.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, name, rating, text, service, category, location, date, verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.Name, t.Rating, t.Text, t.Service, t.Category, t.Location, t.Date, t.Verified,
	)
	if err != nil {
		return apperr.Storage("testimonials.add", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, id string, patch testimonial.Patch) (*testimonial.Testimonial, error) {
	cols := patch.RowPatch()
	if len(cols) == 0 {
		t, err := scanTestimonial(r.pool.QueryRow(ctx, `SELECT `+columns+` FROM testimonials WHERE id = $1`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, testimonial.ErrNotFound
			}
			return nil, apperr.Storage("testimonials.get", err)
		}
		return t, nil
	}

	setClause, args := utils.BuildSetClause(cols, 2)
	query := fmt.Sprintf(`UPDATE testimonials SET %s WHERE id = $1 RETURNING `+columns, setClause)

	t, err := scanTestimonial(r.pool.QueryRow(ctx, query, append([]interface{}{id}, args...)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, testimonial.ErrNotFound
		}
		return nil, apperr.Storage("testimonials.update", err)
	}

	return t, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return false, apperr.Storage("testimonials.delete", err)
	}

	return result.RowsAffected() > 0, nil
}
