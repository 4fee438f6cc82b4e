package book

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"bookstore/internal/domain"
	"bookstore/internal/repository/book/spec"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = `id::text, title, author, isbn, price, COALESCE(description, ''), COALESCE(cover_image, ''),
COALESCE((SELECT array_agg(category_id::text ORDER BY category_id) FROM book_categories WHERE book_id = books.id), '{}'),
created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	q := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	b, err := r.scanOne(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("book repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("book repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return b, nil
}

func (r *postgresRepo) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	q := `SELECT ` + bookColumns + ` FROM books WHERE isbn = $1`
	b, err := r.scanOne(r.pool.QueryRow(ctx, q, isbn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *postgresRepo) FindPage(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Book], error) {
	return r.Search(ctx, spec.Filter{}, page)
}

// Search lists one page of books matching the filter, sorted by title then
// author ascending.
func (r *postgresRepo) Search(ctx context.Context, filter spec.Filter, page domain.PageRequest) (domain.Page[domain.Book], error) {
	where, args := filter.Where(1)
	cond := ""
	if where != "" {
		cond = " WHERE " + where
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`+cond, args...).Scan(&total); err != nil {
		r.logger.Printf("book repo: search count error=%v", err)
		return domain.Page[domain.Book]{}, err
	}

	q := fmt.Sprintf(`SELECT %s FROM books%s ORDER BY title ASC, author ASC LIMIT $%d OFFSET $%d`,
		bookColumns, cond, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, q, append(args, page.Size, page.Offset())...)
	if err != nil {
		r.logger.Printf("book repo: search error=%v", err)
		return domain.Page[domain.Book]{}, err
	}
	defer rows.Close()

	content, err := r.scanAll(rows)
	if err != nil {
		return domain.Page[domain.Book]{}, err
	}
	r.logger.Printf("book repo: search clauses=%d count=%d total=%d", len(filter.Clauses()), len(content), total)
	return domain.Page[domain.Book]{Content: content, TotalElements: total, Size: page.Size, Number: page.Number}, nil
}

func (r *postgresRepo) FindPageByCategory(ctx context.Context, page domain.PageRequest, categoryID string) (domain.Page[domain.Book], error) {
	const countQ = `
SELECT COUNT(*)
FROM books b
JOIN book_categories bc ON bc.book_id = b.id
WHERE bc.category_id = $1
`
	var total int64
	if err := r.pool.QueryRow(ctx, countQ, categoryID).Scan(&total); err != nil {
		return domain.Page[domain.Book]{}, err
	}

	q := `
SELECT ` + bookColumns + `
FROM books
JOIN book_categories bc ON bc.book_id = books.id
WHERE bc.category_id = $1
ORDER BY title ASC, author ASC
LIMIT $2 OFFSET $3
`
	rows, err := r.pool.Query(ctx, q, categoryID, page.Size, page.Offset())
	if err != nil {
		r.logger.Printf("book repo: list category_id=%s error=%v", categoryID, err)
		return domain.Page[domain.Book]{}, err
	}
	defer rows.Close()

	content, err := r.scanAll(rows)
	if err != nil {
		return domain.Page[domain.Book]{}, err
	}
	return domain.Page[domain.Book]{Content: content, TotalElements: total, Size: page.Size, Number: page.Number}, nil
}

func (r *postgresRepo) Create(ctx context.Context, book domain.Book) (*domain.Book, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO books (title, author, isbn, price, description, cover_image)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
RETURNING id::text, created_at
`
	out := book
	err = tx.QueryRow(ctx, q, book.Title, book.Author, book.ISBN, book.Price, book.Description, book.CoverImage).
		Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Printf("book repo: create isbn=%s already exists", book.ISBN)
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("book repo: create isbn=%s error=%v", book.ISBN, err)
		return nil, err
	}

	if err := replaceCategories(ctx, tx, out.ID, book.CategoryIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("book repo: created id=%s isbn=%s", out.ID, out.ISBN)
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, book domain.Book) (*domain.Book, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
UPDATE books
SET title = $1, author = $2, isbn = $3, price = $4, description = NULLIF($5, ''), cover_image = NULLIF($6, '')
WHERE id = $7
RETURNING created_at
`
	out := book
	err = tx.QueryRow(ctx, q, book.Title, book.Author, book.ISBN, book.Price, book.Description, book.CoverImage, book.ID).
		Scan(&out.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("book repo: update id=%s error=%v", book.ID, err)
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM book_categories WHERE book_id = $1`, book.ID); err != nil {
		return nil, err
	}
	if err := replaceCategories(ctx, tx, book.ID, book.CategoryIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertByISBN inserts the book or, when the ISBN is already catalogued,
// overwrites the existing row. Bulk imports re-run safely because of this.
func (r *postgresRepo) UpsertByISBN(ctx context.Context, book domain.Book) (*domain.Book, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO books (title, author, isbn, price, description, cover_image)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
ON CONFLICT (isbn) DO UPDATE
SET title = EXCLUDED.title,
    author = EXCLUDED.author,
    price = EXCLUDED.price,
    description = EXCLUDED.description,
    cover_image = EXCLUDED.cover_image
RETURNING id::text, created_at
`
	out := book
	err = tx.QueryRow(ctx, q, book.Title, book.Author, book.ISBN, book.Price, book.Description, book.CoverImage).
		Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		r.logger.Printf("book repo: upsert isbn=%s error=%v", book.ISBN, err)
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM book_categories WHERE book_id = $1`, out.ID); err != nil {
		return nil, err
	}
	if err := replaceCategories(ctx, tx, out.ID, book.CategoryIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("book repo: delete id=%s error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("book repo: deleted id=%s", id)
	return nil
}

func replaceCategories(ctx context.Context, tx pgx.Tx, bookID string, categoryIDs []string) error {
	for _, catID := range categoryIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO book_categories (book_id, category_id) VALUES ($1, $2)`, bookID, catID); err != nil {
			return err
		}
	}
	return nil
}

func (r *postgresRepo) scanOne(row pgx.Row) (*domain.Book, error) {
	var b domain.Book
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Price, &b.Description, &b.CoverImage, &b.CategoryIDs, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepo) scanAll(rows pgx.Rows) ([]domain.Book, error) {
	var result []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Price, &b.Description, &b.CoverImage, &b.CategoryIDs, &b.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
