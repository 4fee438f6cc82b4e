package cart

import (
	"context"
	"errors"

	"bookstore/internal/domain"
)

var ErrQuantityNotPositive = errors.New("quantity must be positive")

type Service struct {
	repo  cartRepo
	books bookRepo
}

type cartRepo interface {
	CreateForUser(ctx context.Context, userID string) (*domain.Cart, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Cart, error)
	AddLine(ctx context.Context, cartID string, book domain.Book, quantity int) error
	UpdateLineQuantity(ctx context.Context, cartID, lineID string, quantity int) error
	DeleteLine(ctx context.Context, cartID, lineID string) error
}

type bookRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Book, error)
}

func New(repo cartRepo, books bookRepo) *Service {
	return &Service{repo: repo, books: books}
}

// CreateForUser makes the user's cart; carts exist from registration on.
func (s *Service) CreateForUser(ctx context.Context, userID string) error {
	_, err := s.repo.CreateForUser(ctx, userID)
	return err
}

func (s *Service) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// AddItem puts a book into the user's cart. A book already present merges
// quantities instead of adding a second line.
func (s *Service) AddItem(ctx context.Context, userID, bookID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, ErrQuantityNotPositive
	}
	cart, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddLine(ctx, cart.ID, *book, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetByUserID(ctx, userID)
}

func (s *Service) UpdateItem(ctx context.Context, userID, lineID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, ErrQuantityNotPositive
	}
	cart, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateLineQuantity(ctx, cart.ID, lineID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetByUserID(ctx, userID)
}

func (s *Service) RemoveItem(ctx context.Context, userID, lineID string) error {
	cart, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.DeleteLine(ctx, cart.ID, lineID)
}
