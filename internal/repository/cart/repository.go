package cart

import (
	"context"

	"bookstore/internal/domain"
)

type Repository interface {
	CreateForUser(ctx context.Context, userID string) (*domain.Cart, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Cart, error)
	AddLine(ctx context.Context, cartID string, book domain.Book, quantity int) error
	UpdateLineQuantity(ctx context.Context, cartID, lineID string, quantity int) error
	DeleteLine(ctx context.Context, cartID, lineID string) error
}
