package order

import (
	"context"

	"bookstore/internal/domain"
)

type Repository interface {
	// SaveFromCart loads the user's cart, hands it to build, and persists
	// the resulting order with all its lines in the same transaction.
	SaveFromCart(ctx context.Context, userID string, build func(*domain.Cart) (*domain.Order, error)) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// GetByIDWithLines loads the order and its lines eagerly.
	GetByIDWithLines(ctx context.Context, id string) (*domain.Order, error)
	FindPageByUserID(ctx context.Context, page domain.PageRequest, userID string) (domain.Page[domain.Order], error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
}
