package order

import (
	"context"
	"errors"
	"io"
	"log"

	"bookstore/internal/domain"
	cartrepo "bookstore/internal/repository/cart"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

// SaveFromCart loads the user's cart and persists the order that build
// derives from it, all inside one transaction, so the saved order reflects
// a consistent cart snapshot.
func (r *postgresRepo) SaveFromCart(ctx context.Context, userID string, build func(*domain.Cart) (*domain.Order, error)) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cart, err := cartrepo.LoadByUserID(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	order, err := build(cart)
	if err != nil {
		return nil, err
	}

	out, err := r.insert(ctx, tx, *order)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: saved id=%s user_id=%s lines=%d total=%s", out.ID, out.UserID, len(out.Lines), out.Total)
	return out, nil
}

func (r *postgresRepo) insert(ctx context.Context, tx pgx.Tx, order domain.Order) (*domain.Order, error) {
	const orderQ = `
INSERT INTO orders (user_id, status, total, shipping_address)
VALUES ($1, $2, $3, $4)
RETURNING id::text, order_date
`
	out := order
	err := tx.QueryRow(ctx, orderQ, order.UserID, order.Status, order.Total, order.ShippingAddress).
		Scan(&out.ID, &out.OrderDate)
	if err != nil {
		r.logger.Printf("order repo: save user_id=%s error=%v", order.UserID, err)
		return nil, err
	}

	const lineQ = `
INSERT INTO order_lines (order_id, line_no, book_id, quantity, price)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text
`
	out.Lines = make([]domain.OrderLine, len(order.Lines))
	for i, line := range order.Lines {
		saved := line
		saved.OrderID = out.ID
		if err := tx.QueryRow(ctx, lineQ, out.ID, i+1, line.BookID, line.Quantity, line.Price).Scan(&saved.ID); err != nil {
			r.logger.Printf("order repo: save line book_id=%s error=%v", line.BookID, err)
			return nil, err
		}
		out.Lines[i] = saved
	}
	return &out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, status, total, shipping_address, order_date
FROM orders
WHERE id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.ShippingAddress, &o.OrderDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) GetByIDWithLines(ctx context.Context, id string) (*domain.Order, error) {
	o, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	const linesQ = `
SELECT id::text, order_id::text, book_id::text, quantity, price
FROM order_lines
WHERE order_id = $1
ORDER BY line_no ASC
`
	rows, err := r.pool.Query(ctx, linesQ, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.BookID, &line.Quantity, &line.Price); err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) FindPageByUserID(ctx context.Context, page domain.PageRequest, userID string) (domain.Page[domain.Order], error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return domain.Page[domain.Order]{}, err
	}

	const q = `
SELECT id::text, user_id::text, status, total, shipping_address, order_date
FROM orders
WHERE user_id = $1
ORDER BY order_date DESC
LIMIT $2 OFFSET $3
`
	rows, err := r.pool.Query(ctx, q, userID, page.Size, page.Offset())
	if err != nil {
		return domain.Page[domain.Order]{}, err
	}
	defer rows.Close()

	var content []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.ShippingAddress, &o.OrderDate); err != nil {
			return domain.Page[domain.Order]{}, err
		}
		content = append(content, o)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.Order]{}, err
	}
	return domain.Page[domain.Order]{Content: content, TotalElements: total, Size: page.Size, Number: page.Number}, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $1
WHERE id = $2
RETURNING id::text, user_id::text, status, total, shipping_address, order_date
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, status, id).Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.ShippingAddress, &o.OrderDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	r.logger.Printf("order repo: status id=%s set=%s", o.ID, o.Status)
	return &o, nil
}
