package category

import (
	"context"
	"errors"

	"bookstore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	const q = `
SELECT id::text, name, COALESCE(description, ''), created_at
FROM categories
WHERE id = $1
`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) FindPage(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Category], error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		return domain.Page[domain.Category]{}, err
	}

	const q = `
SELECT id::text, name, COALESCE(description, ''), created_at
FROM categories
ORDER BY name ASC
LIMIT $1 OFFSET $2
`
	rows, err := r.pool.Query(ctx, q, page.Size, page.Offset())
	if err != nil {
		return domain.Page[domain.Category]{}, err
	}
	defer rows.Close()

	var content []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return domain.Page[domain.Category]{}, err
		}
		content = append(content, c)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.Category]{}, err
	}
	return domain.Page[domain.Category]{Content: content, TotalElements: total, Size: page.Size, Number: page.Number}, nil
}

func (r *postgresRepo) Create(ctx context.Context, category domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (name, description)
VALUES ($1, NULLIF($2, ''))
RETURNING id::text, created_at
`
	out := category
	err := r.pool.QueryRow(ctx, q, category.Name, category.Description).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, category domain.Category) (*domain.Category, error) {
	const q = `
UPDATE categories
SET name = $1, description = NULLIF($2, '')
WHERE id = $3
RETURNING created_at
`
	out := category
	err := r.pool.QueryRow(ctx, q, category.Name, category.Description, category.ID).Scan(&out.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &out, nil
}

// UpsertByName inserts the category or refreshes the description of an
// existing one with the same name.
func (r *postgresRepo) UpsertByName(ctx context.Context, category domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (name, description)
VALUES ($1, NULLIF($2, ''))
ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
RETURNING id::text, created_at
`
	out := category
	if err := r.pool.QueryRow(ctx, q, category.Name, category.Description).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
