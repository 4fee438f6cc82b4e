package order

import (
	"context"

	"bookstore/internal/domain"
	"github.com/shopspring/decimal"
)

type Service struct {
	orders orderRepo
}

type orderRepo interface {
	SaveFromCart(ctx context.Context, userID string, build func(*domain.Cart) (*domain.Order, error)) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByIDWithLines(ctx context.Context, id string) (*domain.Order, error)
	FindPageByUserID(ctx context.Context, page domain.PageRequest, userID string) (domain.Page[domain.Order], error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
}

func New(orders orderRepo) *Service {
	return &Service{orders: orders}
}

// PlaceOrder converts the user's cart into a PENDING order. Each cart line
// becomes an order line with the book's price at this instant, and the total
// accumulates price times quantity per line. The repository reads the cart
// and writes the order in one transaction; the cart is left untouched.
func (s *Service) PlaceOrder(ctx context.Context, userID, shippingAddress string) (*domain.Order, error) {
	return s.orders.SaveFromCart(ctx, userID, func(cart *domain.Cart) (*domain.Order, error) {
		if len(cart.Lines) == 0 {
			return nil, domain.ErrCartEmpty
		}

		order := domain.Order{
			UserID:          userID,
			Status:          domain.StatusPending,
			Total:           decimal.Zero,
			ShippingAddress: shippingAddress,
		}
		for _, line := range cart.Lines {
			orderLine := domain.OrderLine{
				BookID:   line.BookID,
				Quantity: line.Quantity,
				Price:    line.BookPrice,
			}
			order.Lines = append(order.Lines, orderLine)
			order.Total = order.Total.Add(orderLine.Price.Mul(decimal.NewFromInt(int64(orderLine.Quantity))))
		}
		return &order, nil
	})
}

func (s *Service) Orders(ctx context.Context, page domain.PageRequest, userID string) (domain.Page[domain.Order], error) {
	return s.orders.FindPageByUserID(ctx, page, userID)
}

func (s *Service) Items(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	order, err := s.orders.GetByIDWithLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return order.Lines, nil
}

func (s *Service) ItemInfo(ctx context.Context, orderID, itemID string) (*domain.OrderLine, error) {
	order, err := s.orders.GetByIDWithLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for _, line := range order.Lines {
		if line.ID == itemID {
			return &line, nil
		}
	}
	return nil, domain.ErrNotFound
}

// UpdateStatus overwrites the order's status with any recognized name; no
// transition graph is enforced.
func (s *Service) UpdateStatus(ctx context.Context, orderID, statusName string) (*domain.Order, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	status, err := domain.ParseStatus(statusName)
	if err != nil {
		return nil, err
	}
	return s.orders.UpdateStatus(ctx, orderID, status)
}
