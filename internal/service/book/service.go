package book

import (
	"context"

	"bookstore/internal/domain"
	"bookstore/internal/repository/book/spec"
)

type Service struct {
	repo    bookRepo
	builder *spec.Builder
}

type bookRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	FindPage(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Book], error)
	Search(ctx context.Context, filter spec.Filter, page domain.PageRequest) (domain.Page[domain.Book], error)
	Create(ctx context.Context, book domain.Book) (*domain.Book, error)
	Update(ctx context.Context, book domain.Book) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
}

func New(repo bookRepo, builder *spec.Builder) *Service {
	return &Service{repo: repo, builder: builder}
}

func (s *Service) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Book], error) {
	return s.repo.FindPage(ctx, page)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Search builds a composite filter from the criteria and lists the matching
// page. A registry miss is a wiring defect and propagates as-is.
func (s *Service) Search(ctx context.Context, params spec.SearchParams, page domain.PageRequest) (domain.Page[domain.Book], error) {
	filter, err := s.builder.Build(params)
	if err != nil {
		return domain.Page[domain.Book]{}, err
	}
	return s.repo.Search(ctx, filter, page)
}

func (s *Service) Create(ctx context.Context, book domain.Book) (*domain.Book, error) {
	return s.repo.Create(ctx, book)
}

func (s *Service) Update(ctx context.Context, book domain.Book) (*domain.Book, error) {
	return s.repo.Update(ctx, book)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
