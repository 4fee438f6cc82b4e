package httpserver

import (
	"context"

	"bookstore/internal/auth"
	"bookstore/internal/domain"
	"bookstore/internal/repository/book/spec"
	usersvc "bookstore/internal/service/user"
)

// Deps carries the services the handlers call. Handlers depend on these
// narrow interfaces so tests can substitute stubs.
type Deps struct {
	Books      BookService
	Categories CategoryService
	Carts      CartService
	Orders     OrderService
	Users      UserService
	Tokens     *auth.Manager
}

type BookService interface {
	List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Book], error)
	Get(ctx context.Context, id string) (*domain.Book, error)
	Search(ctx context.Context, params spec.SearchParams, page domain.PageRequest) (domain.Page[domain.Book], error)
	Create(ctx context.Context, book domain.Book) (*domain.Book, error)
	Update(ctx context.Context, book domain.Book) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Category], error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Books(ctx context.Context, page domain.PageRequest, id string) (domain.Page[domain.Book], error)
	Create(ctx context.Context, category domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type CartService interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, bookID string, quantity int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, userID, lineID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, lineID string) error
}

type OrderService interface {
	PlaceOrder(ctx context.Context, userID, shippingAddress string) (*domain.Order, error)
	Orders(ctx context.Context, page domain.PageRequest, userID string) (domain.Page[domain.Order], error)
	Items(ctx context.Context, orderID string) ([]domain.OrderLine, error)
	ItemInfo(ctx context.Context, orderID, itemID string) (*domain.OrderLine, error)
	UpdateStatus(ctx context.Context, orderID, statusName string) (*domain.Order, error)
}

type UserService interface {
	Register(ctx context.Context, in usersvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
