package category

import (
	"context"

	"bookstore/internal/domain"
)

type Service struct {
	repo  categoryRepo
	books bookRepo
}

type categoryRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	FindPage(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Category], error)
	Create(ctx context.Context, category domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type bookRepo interface {
	FindPageByCategory(ctx context.Context, page domain.PageRequest, categoryID string) (domain.Page[domain.Book], error)
}

func New(repo categoryRepo, books bookRepo) *Service {
	return &Service{repo: repo, books: books}
}

func (s *Service) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Category], error) {
	return s.repo.FindPage(ctx, page)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

// Books lists the category's books; a category with no books reports not
// found rather than an empty page.
func (s *Service) Books(ctx context.Context, page domain.PageRequest, id string) (domain.Page[domain.Book], error) {
	books, err := s.books.FindPageByCategory(ctx, page, id)
	if err != nil {
		return domain.Page[domain.Book]{}, err
	}
	if len(books.Content) == 0 {
		return domain.Page[domain.Book]{}, domain.ErrNotFound
	}
	return books, nil
}

func (s *Service) Create(ctx context.Context, category domain.Category) (*domain.Category, error) {
	return s.repo.Create(ctx, category)
}

func (s *Service) Update(ctx context.Context, category domain.Category) (*domain.Category, error) {
	return s.repo.Update(ctx, category)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
