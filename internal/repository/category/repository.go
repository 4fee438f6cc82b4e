package category

import (
	"context"

	"bookstore/internal/domain"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	FindPage(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Category], error)
	Create(ctx context.Context, category domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category domain.Category) (*domain.Category, error)
	UpsertByName(ctx context.Context, category domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
