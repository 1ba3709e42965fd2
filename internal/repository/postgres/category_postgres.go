package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

var categoryFields = columnMap{
	"id":   "id",
	"name": "name",
}

// CategoryPostgres is a PostgreSQL implementation of repository.CategoryRepository.
type CategoryPostgres struct {
	db *sql.DB
}

// NewCategoryPostgres creates a new CategoryPostgres repository.
func NewCategoryPostgres(db *sql.DB) *CategoryPostgres {
	return &CategoryPostgres{db: db}
}

var _ repository.CategoryRepository = (*CategoryPostgres)(nil)

func (r *CategoryPostgres) Create(ctx context.Context, c *model.Category) (*model.Category, error) {
	const q = `INSERT INTO categories (id, name) VALUES ($1, $2) RETURNING id, name`
	id := c.ID
	if id == "" {
		id = uuid.NewString()
	}
	var out model.Category
	if err := r.db.QueryRowContext(ctx, q, id, c.Name).Scan(&out.ID, &out.Name); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CategoryPostgres) FindByID(ctx context.Context, id string) (*model.Category, error) {
	const q = `SELECT id, name FROM categories WHERE id = $1`
	var out model.Category
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&out.ID, &out.Name); err != nil {
		return nil, mapNoRows(err)
	}
	return &out, nil
}

func (r *CategoryPostgres) List(ctx context.Context, q repository.Query) ([]model.Category, error) {
	tail, args, err := buildQuery(categoryFields, repository.CategorySchema, q, "created_at, id")
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories`+tail, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a category row. Posts keep their category label; there is no cascade.
func (r *CategoryPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}
