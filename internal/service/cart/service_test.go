package cart

import (
	"context"
	"errors"
	"testing"

	"bookstore/internal/domain"
	"github.com/shopspring/decimal"
)

type stubRepo struct {
	carts        []*domain.Cart
	getErr       error
	getCalls     int
	addErr       error
	lastAddCart  string
	lastAddBook  domain.Book
	lastAddQty   int
	updateErr    error
	lastLineID   string
	lastLineQty  int
	deleteErr    error
	lastDeleteID string
}

func (s *stubRepo) CreateForUser(_ context.Context, userID string) (*domain.Cart, error) {
	return &domain.Cart{ID: "cart-1", UserID: userID}, nil
}

func (s *stubRepo) GetByUserID(_ context.Context, _ string) (*domain.Cart, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	idx := s.getCalls
	if idx >= len(s.carts) {
		idx = len(s.carts) - 1
	}
	s.getCalls++
	return s.carts[idx], nil
}

func (s *stubRepo) AddLine(_ context.Context, cartID string, book domain.Book, quantity int) error {
	s.lastAddCart = cartID
	s.lastAddBook = book
	s.lastAddQty = quantity
	return s.addErr
}

func (s *stubRepo) UpdateLineQuantity(_ context.Context, _, lineID string, quantity int) error {
	s.lastLineID = lineID
	s.lastLineQty = quantity
	return s.updateErr
}

func (s *stubRepo) DeleteLine(_ context.Context, _, lineID string) error {
	s.lastDeleteID = lineID
	return s.deleteErr
}

type stubBookRepo struct {
	book *domain.Book
	err  error
}

func (s *stubBookRepo) GetByID(_ context.Context, _ string) (*domain.Book, error) {
	return s.book, s.err
}

func TestAddItem_Success(t *testing.T) {
	price := decimal.RequireFromString("12.99")
	repo := &stubRepo{carts: []*domain.Cart{
		{ID: "cart-1", UserID: "user-1"},
		{ID: "cart-1", UserID: "user-1", Lines: []domain.CartLine{
			{ID: "l1", BookID: "b1", BookPrice: price, Quantity: 2},
		}},
	}}
	books := &stubBookRepo{book: &domain.Book{ID: "b1", Title: "Dune", Price: price}}
	svc := New(repo, books)

	cart, err := svc.AddItem(context.Background(), "user-1", "b1", 2)
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if repo.lastAddCart != "cart-1" || repo.lastAddBook.ID != "b1" || repo.lastAddQty != 2 {
		t.Fatalf("unexpected add call cart=%s book=%s qty=%d", repo.lastAddCart, repo.lastAddBook.ID, repo.lastAddQty)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected cart %+v", cart)
	}
}

func TestAddItem_BookNotFound(t *testing.T) {
	repo := &stubRepo{carts: []*domain.Cart{{ID: "cart-1"}}}
	svc := New(repo, &stubBookRepo{err: domain.ErrNotFound})

	_, err := svc.AddItem(context.Background(), "user-1", "missing", 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddItem_NonPositiveQuantity(t *testing.T) {
	svc := New(&stubRepo{carts: []*domain.Cart{{ID: "cart-1"}}}, &stubBookRepo{})
	for _, qty := range []int{0, -1} {
		if _, err := svc.AddItem(context.Background(), "user-1", "b1", qty); !errors.Is(err, ErrQuantityNotPositive) {
			t.Fatalf("qty %d: expected ErrQuantityNotPositive, got %v", qty, err)
		}
	}
}

func TestUpdateItem_PassesLineAndQuantity(t *testing.T) {
	repo := &stubRepo{carts: []*domain.Cart{{ID: "cart-1"}}}
	svc := New(repo, &stubBookRepo{})

	if _, err := svc.UpdateItem(context.Background(), "user-1", "line-7", 5); err != nil {
		t.Fatalf("update item: %v", err)
	}
	if repo.lastLineID != "line-7" || repo.lastLineQty != 5 {
		t.Fatalf("unexpected update call line=%s qty=%d", repo.lastLineID, repo.lastLineQty)
	}
}

func TestUpdateItem_LineNotFound(t *testing.T) {
	repo := &stubRepo{carts: []*domain.Cart{{ID: "cart-1"}}, updateErr: domain.ErrNotFound}
	svc := New(repo, &stubBookRepo{})

	if _, err := svc.UpdateItem(context.Background(), "user-1", "missing", 2); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveItem(t *testing.T) {
	repo := &stubRepo{carts: []*domain.Cart{{ID: "cart-1"}}}
	svc := New(repo, &stubBookRepo{})

	if err := svc.RemoveItem(context.Background(), "user-1", "line-3"); err != nil {
		t.Fatalf("remove item: %v", err)
	}
	if repo.lastDeleteID != "line-3" {
		t.Fatalf("unexpected delete call line=%s", repo.lastDeleteID)
	}
}
