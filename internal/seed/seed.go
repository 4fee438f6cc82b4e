package seed

import (
	"context"
	"fmt"

	"bookstore/internal/auth"
	"bookstore/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type bookSeed struct {
	Title       string
	Author      string
	ISBN        string
	Price       string
	Description string
	Categories  []string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureAdmin(ctx, pool, "admin@bookstore.local", "admin-password"); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	books := []bookSeed{
		{
			Title:       "Dune",
			Author:      "Frank Herbert",
			ISBN:        "9780441013593",
			Price:       "9.99",
			Description: "Desert planet epic",
			Categories:  []string{"Science Fiction", "Classics"},
		},
		{
			Title:       "The Pragmatic Programmer",
			Author:      "David Thomas",
			ISBN:        "9780135957059",
			Price:       "39.99",
			Description: "Your journey to mastery",
			Categories:  []string{"Programming"},
		},
		{
			Title:       "Pride and Prejudice",
			Author:      "Jane Austen",
			ISBN:        "9780141439518",
			Price:       "5.50",
			Categories:  []string{"Classics"},
		},
	}

	for _, b := range books {
		if err := upsertBook(ctx, pool, b); err != nil {
			return fmt.Errorf("upsert book %s: %w", b.ISBN, err)
		}
	}

	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (email, password_hash, first_name, role)
VALUES ($1, $2, 'Admin', $3)
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, email, hash, domain.RoleAdmin)
	return err
}

func upsertBook(ctx context.Context, pool *pgxpool.Pool, b bookSeed) error {
	price, err := decimal.NewFromString(b.Price)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO books (title, author, isbn, price, description)
VALUES ($1, $2, $3, $4, NULLIF($5, ''))
ON CONFLICT (isbn) DO UPDATE
SET title = EXCLUDED.title,
    author = EXCLUDED.author,
    price = EXCLUDED.price,
    description = EXCLUDED.description
RETURNING id::text
`
	var bookID string
	if err := pool.QueryRow(ctx, q, b.Title, b.Author, b.ISBN, price, b.Description).Scan(&bookID); err != nil {
		return err
	}

	for _, name := range b.Categories {
		const catQ = `
INSERT INTO categories (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
		var catID string
		if err := pool.QueryRow(ctx, catQ, name).Scan(&catID); err != nil {
			return err
		}
		const linkQ = `
INSERT INTO book_categories (book_id, category_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`
		if _, err := pool.Exec(ctx, linkQ, bookID, catID); err != nil {
			return err
		}
	}

	return nil
}
