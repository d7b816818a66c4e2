package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"vitrine-backend/internal/domains/catalog"
	"vitrine-backend/internal/shared/apperr"
	"vitrine-backend/internal/shared/utils"
)

// Relational layout: service_categories plus services with a category_id
// foreign key and a UNIQUE (category_id, slug) index. Prestations and faqs
// live in jsonb columns; the category list query reassembles the nested
// app shape.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) catalog.Repository {
	return &postgresRepository{pool: pool}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *postgresRepository) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	catQuery := `
		SELECT id, name, slug, icon, color, COALESCE(description, '')
		FROM service_categories ORDER BY name
	`

	rows, err := r.pool.Query(ctx, catQuery)
	if err != nil {
		return nil, apperr.Storage("catalog.list", err)
	}
	defer rows.Close()

	categories := []catalog.Category{}
	index := map[string]int{}
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Icon, &c.Color, &c.Description); err != nil {
			return nil, apperr.Storage("catalog.scan", err)
		}
		c.Services = []catalog.Service{}
		index[c.ID] = len(categories)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("catalog.list", err)
	}

	svcQuery := `
		SELECT id, category_id, name, slug, icon,
			COALESCE(short_description, ''), COALESCE(full_description, ''),
			prestations, faqs
		FROM services ORDER BY name
	`

	svcRows, err := r.pool.Query(ctx, svcQuery)
	if err != nil {
		return nil, apperr.Storage("catalog.services", err)
	}
	defer svcRows.Close()

	for svcRows.Next() {
		s, err := scanService(svcRows)
		if err != nil {
			return nil, apperr.Storage("catalog.services", err)
		}
		if i, ok := index[s.CategoryID]; ok {
			categories[i].Services = append(categories[i].Services, *s)
		}
	}
	if err := svcRows.Err(); err != nil {
		return nil, apperr.Storage("catalog.services", err)
	}

	return categories, nil
}

func scanService(row pgx.Row) (*catalog.Service, error) {
	var s catalog.Service
	var prestations, faqs []byte

	err := row.Scan(&s.ID, &s.CategoryID, &s.Name, &s.Slug, &s.Icon,
		&s.ShortDescription, &s.FullDescription, &prestations, &faqs)
	if err != nil {
		return nil, err
	}

	if len(prestations) > 0 {
		if err := json.Unmarshal(prestations, &s.Prestations); err != nil {
			return nil, err
		}
	}
	if len(faqs) > 0 {
		if err := json.Unmarshal(faqs, &s.FAQs); err != nil {
			return nil, err
		}
	}

	s.Normalize()
	return &s, nil
}

func (r *postgresRepository) AddCategory(ctx context.Context, c catalog.Category) error {
	query := `
		INSERT INTO service_categories (id, name, slug, icon, color, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Slug, c.Icon, c.Color, c.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return catalog.ErrSlugTaken
		}
		return apperr.Storage("catalog.addcategory", err)
	}

	return nil
}

func (r *postgresRepository) UpdateCategory(ctx context.Context, id string, patch catalog.CategoryPatch) (*catalog.Category, error) {
	cols := patch.RowPatch()
	if len(cols) > 0 {
		setClause, args := utils.BuildSetClause(cols, 2)
		query := fmt.Sprintf(`UPDATE service_categories SET %s WHERE id = $1`, setClause)

		result, err := r.pool.Exec(ctx, query, append([]interface{}{id}, args...)...)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, catalog.ErrSlugTaken
			}
			return nil, apperr.Storage("catalog.updatecategory", err)
		}
		if result.RowsAffected() == 0 {
			return nil, catalog.ErrCategoryNotFound
		}
	}

	return r.getCategory(ctx, id)
}

func (r *postgresRepository) getCategory(ctx context.Context, id string) (*catalog.Category, error) {
	query := `
		SELECT id, name, slug, icon, color, COALESCE(description, '')
		FROM service_categories WHERE id = $1
	`

	var c catalog.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Slug, &c.Icon, &c.Color, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrCategoryNotFound
		}
		return nil, apperr.Storage("catalog.getcategory", err)
	}

	c.Services = []catalog.Service{}
	return &c, nil
}

func (r *postgresRepository) DeleteCategory(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services WHERE category_id = $1`, id).Scan(&count)
	if err != nil {
		return false, apperr.Storage("catalog.deletecategory", err)
	}
	if count > 0 {
		return false, catalog.ErrCategoryHasServices
	}

	result, err := r.pool.Exec(ctx, `DELETE FROM service_categories WHERE id = $1`, id)
	if err != nil {
		return false, apperr.Storage("catalog.deletecategory", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *postgresRepository) AddService(ctx context.Context, s catalog.Service) error {
	prestations, err := json.Marshal(s.Prestations)
	if err != nil {
		return apperr.Storage("catalog.addservice", err)
	}
	faqs, err := json.Marshal(s.FAQs)
	if err != nil {
		return apperr.Storage("catalog.addservice", err)
	}

	query := `
		INSERT INTO services (id, category_id, name, slug, icon,
			short_description, full_description, prestations, faqs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.pool.Exec(ctx, query, s.ID, s.CategoryID, s.Name, s.Slug, s.Icon,
		s.ShortDescription, s.FullDescription, prestations, faqs)
	if err != nil {
		if isUniqueViolation(err) {
			return catalog.ErrSlugTaken
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign key
			return catalog.ErrCategoryNotFound
		}
		return apperr.Storage("catalog.addservice", err)
	}

	return nil
}

func (r *postgresRepository) UpdateService(ctx context.Context, id string, patch catalog.ServicePatch) (*catalog.Service, error) {
	cols := map[string]interface{}{}
	if patch.Name != nil {
		cols["name"] = *patch.Name
	}
	if patch.Slug != nil {
		cols["slug"] = *patch.Slug
	}
	if patch.Icon != nil {
		cols["icon"] = *patch.Icon
	}
	if patch.ShortDescription != nil {
		cols["short_description"] = *patch.ShortDescription
	}
	if patch.FullDescription != nil {
		cols["full_description"] = *patch.FullDescription
	}
	if patch.Prestations != nil {
		data, err := json.Marshal(*patch.Prestations)
		if err != nil {
			return nil, apperr.Storage("catalog.updateservice", err)
		}
		cols["prestations"] = data
	}
	if patch.FAQs != nil {
		data, err := json.Marshal(*patch.FAQs)
		if err != nil {
			return nil, apperr.Storage("catalog.updateservice", err)
		}
		cols["faqs"] = data
	}

	if len(cols) > 0 {
		setClause, args := utils.BuildSetClause(cols, 2)
		query := fmt.Sprintf(`UPDATE services SET %s WHERE id = $1`, setClause)

		result, err := r.pool.Exec(ctx, query, append([]interface{}{id}, args...)...)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, catalog.ErrSlugTaken
			}
			return nil, apperr.Storage("catalog.updateservice", err)
		}
		if result.RowsAffected() == 0 {
			return nil, catalog.ErrServiceNotFound
		}
	}

	query := `
		SELECT id, category_id, name, slug, icon,
			COALESCE(short_description, ''), COALESCE(full_description, ''),
			prestations, faqs
		FROM services WHERE id = $1
	`

	s, err := scanService(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrServiceNotFound
		}
		return nil, apperr.Storage("catalog.getservice", err)
	}

	return s, nil
}

func (r *postgresRepository) DeleteService(ctx context.Context, id string) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return false, apperr.Storage("catalog.deleteservice", err)
	}

	return result.RowsAffected() > 0, nil
}
