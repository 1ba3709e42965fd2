package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"blogapi/internal/lifecycle"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

const postColumns = `id, title, category, excerpt, content, image, status, author, scheduled_at, created_at, updated_at`

var postFields = columnMap{
	"id":          "id",
	"title":       "title",
	"category":    "category",
	"status":      "status",
	"author":      "author",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"scheduledAt": "scheduled_at",
}

// PostPostgres is a PostgreSQL implementation of repository.PostRepository.
// It uses database/sql with parameterized queries and contains no business logic.
// Timestamps come from the database clock.
type PostPostgres struct {
	db *sql.DB
}

// NewPostPostgres creates a new PostPostgres repository.
func NewPostPostgres(db *sql.DB) *PostPostgres {
	return &PostPostgres{db: db}
}

var _ repository.PostRepository = (*PostPostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*model.Post, error) {
	var (
		p           model.Post
		status      string
		scheduledAt sql.NullTime
	)
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Category,
		&p.Excerpt,
		&p.Content,
		&p.Image,
		&status,
		&p.Author,
		&scheduledAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Status = lifecycle.Status(status)
	p.ScheduledAt = timePtr(scheduledAt)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}

// Create inserts a new post row and returns the stored record.
func (r *PostPostgres) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	const q = `
		INSERT INTO posts (id, title, category, excerpt, content, image, status, author, scheduled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		RETURNING ` + postColumns
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	row := r.db.QueryRowContext(ctx, q,
		id,
		p.Title,
		p.Category,
		p.Excerpt,
		p.Content,
		p.Image,
		string(p.Status),
		p.Author,
		nullTime(p.ScheduledAt),
	)
	return scanPost(row)
}

// Update merges the patch into the row and refreshes updated_at. created_at is never written.
func (r *PostPostgres) Update(ctx context.Context, id string, patch model.PostPatch) (*model.Post, error) {
	var (
		sets []string
		args []any
	)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Title != nil {
		set("title", strings.TrimSpace(*patch.Title))
	}
	if patch.Category != nil {
		set("category", strings.TrimSpace(*patch.Category))
	}
	if patch.Excerpt != nil {
		set("excerpt", *patch.Excerpt)
	}
	if patch.Content != nil {
		set("content", *patch.Content)
	}
	if patch.Image != nil {
		set("image", strings.TrimSpace(*patch.Image))
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	if patch.ScheduledAt != nil {
		set("scheduled_at", patch.ScheduledAt.UTC())
	} else if patch.ClearSchedule {
		sets = append(sets, "scheduled_at = NULL")
	}
	if patch.Author != nil {
		set("author", *patch.Author)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE posts SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), postColumns)

	p, err := scanPost(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return p, nil
}

// FindByID fetches a single post by its ID.
func (r *PostPostgres) FindByID(ctx context.Context, id string) (*model.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	p, err := scanPost(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return p, nil
}

// List returns posts matching q. Without an explicit ordering rows come back oldest first.
func (r *PostPostgres) List(ctx context.Context, q repository.Query) ([]model.Post, error) {
	tail, args, err := buildQuery(postFields, repository.PostSchema, q, "created_at, id")
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts`+tail, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of rows in posts.
func (r *PostPostgres) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Delete removes a post by ID. It does not return an error if the row does not exist.
func (r *PostPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
