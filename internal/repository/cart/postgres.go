package cart

import (
	"context"
	"errors"

	"bookstore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) CreateForUser(ctx context.Context, userID string) (*domain.Cart, error) {
	const q = `
INSERT INTO carts (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id::text, user_id::text, created_at
`
	var cart domain.Cart
	if err := r.pool.QueryRow(ctx, q, userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt); err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetByUserID loads the cart with its lines and each line's current book
// title and price, in line insertion order.
func (r *postgresRepo) GetByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	return LoadByUserID(ctx, r.pool, userID)
}

// Querier is the subset of pgx query methods shared by pools and
// transactions, so cart loads can also run inside a caller's transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LoadByUserID reads the cart and its lines through q. Order placement
// passes its own transaction here so the cart snapshot and the order write
// share one transactional boundary.
func LoadByUserID(ctx context.Context, q Querier, userID string) (*domain.Cart, error) {
	const cartQ = `
SELECT id::text, user_id::text, created_at
FROM carts
WHERE user_id = $1
`
	var cart domain.Cart
	err := q.QueryRow(ctx, cartQ, userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const linesQ = `
SELECT cl.id::text, cl.cart_id::text, cl.book_id::text, b.title, b.price, cl.quantity, cl.created_at
FROM cart_lines cl
JOIN books b ON b.id = cl.book_id
WHERE cl.cart_id = $1
ORDER BY cl.created_at ASC, cl.id ASC
`
	rows, err := q.Query(ctx, linesQ, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ID, &line.CartID, &line.BookID, &line.BookTitle, &line.BookPrice, &line.Quantity, &line.CreatedAt); err != nil {
			return nil, err
		}
		cart.Lines = append(cart.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddLine inserts a new line or merges the quantity into an existing line
// for the same book, inside one transaction.
func (r *postgresRepo) AddLine(ctx context.Context, cartID string, book domain.Book, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var lineID string
	var existingQty int
	err = tx.QueryRow(ctx, `
SELECT id::text, quantity
FROM cart_lines
WHERE cart_id = $1 AND book_id = $2
`, cartID, book.ID).Scan(&lineID, &existingQty)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	if err == nil {
		if _, err := tx.Exec(ctx, `
UPDATE cart_lines
SET quantity = $1
WHERE id = $2
`, existingQty+quantity, lineID); err != nil {
			return err
		}
	} else {
		if _, err := tx.Exec(ctx, `
INSERT INTO cart_lines (cart_id, book_id, quantity)
VALUES ($1, $2, $3)
`, cartID, book.ID, quantity); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) UpdateLineQuantity(ctx context.Context, cartID, lineID string, quantity int) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE cart_lines
SET quantity = $1
WHERE id = $2 AND cart_id = $3
`, quantity, lineID, cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteLine(ctx context.Context, cartID, lineID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_lines WHERE id = $1 AND cart_id = $2`, lineID, cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
