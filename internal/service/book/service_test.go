package book

import (
	"context"
	"errors"
	"testing"

	"bookstore/internal/domain"
	"bookstore/internal/repository/book/spec"
)

type stubRepo struct {
	page       domain.Page[domain.Book]
	pageErr    error
	lastFilter spec.Filter
	book       *domain.Book
	bookErr    error
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Book, error) {
	return s.book, s.bookErr
}

func (s *stubRepo) FindPage(_ context.Context, _ domain.PageRequest) (domain.Page[domain.Book], error) {
	return s.page, s.pageErr
}

func (s *stubRepo) Search(_ context.Context, filter spec.Filter, _ domain.PageRequest) (domain.Page[domain.Book], error) {
	s.lastFilter = filter
	return s.page, s.pageErr
}

func (s *stubRepo) Create(_ context.Context, book domain.Book) (*domain.Book, error) {
	return &book, nil
}

func (s *stubRepo) Update(_ context.Context, book domain.Book) (*domain.Book, error) {
	return &book, nil
}

func (s *stubRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func TestSearch_BuildsFilterFromCriteria(t *testing.T) {
	repo := &stubRepo{page: domain.Page[domain.Book]{Size: 10}}
	svc := New(repo, spec.NewBuilder(spec.DefaultRegistry()))

	_, err := svc.Search(context.Background(), spec.SearchParams{Title: "dune", Author: "herbert"}, domain.PageRequest{Size: 10})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if got := len(repo.lastFilter.Clauses()); got != 2 {
		t.Fatalf("expected 2 clauses, got %d", got)
	}
}

func TestSearch_EmptyCriteriaMatchesAll(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, spec.NewBuilder(spec.DefaultRegistry()))

	if _, err := svc.Search(context.Background(), spec.SearchParams{}, domain.PageRequest{Size: 10}); err != nil {
		t.Fatalf("search: %v", err)
	}
	if !repo.lastFilter.Empty() {
		t.Fatalf("expected match-all filter")
	}
}

func TestSearch_RegistryMisconfigured(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, spec.NewBuilder(spec.NewRegistry()))

	_, err := svc.Search(context.Background(), spec.SearchParams{Title: "dune"}, domain.PageRequest{Size: 10})
	if !errors.Is(err, spec.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestGet_PropagatesNotFound(t *testing.T) {
	svc := New(&stubRepo{bookErr: domain.ErrNotFound}, spec.NewBuilder(spec.DefaultRegistry()))
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
