package book

import (
	"context"

	"bookstore/internal/domain"
	"bookstore/internal/repository/book/spec"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*domain.Book, error)
	FindPage(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Book], error)
	Search(ctx context.Context, filter spec.Filter, page domain.PageRequest) (domain.Page[domain.Book], error)
	FindPageByCategory(ctx context.Context, page domain.PageRequest, categoryID string) (domain.Page[domain.Book], error)
	Create(ctx context.Context, book domain.Book) (*domain.Book, error)
	Update(ctx context.Context, book domain.Book) (*domain.Book, error)
	UpsertByISBN(ctx context.Context, book domain.Book) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
}
