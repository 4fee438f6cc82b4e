package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus matches a status name against the fixed enumeration,
// case-sensitively.
func ParseStatus(name string) (Status, error) {
	switch Status(name) {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, name)
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Status          Status          `json:"status"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress string          `json:"shippingAddress"`
	OrderDate       time.Time       `json:"orderDate"`
	Lines           []OrderLine     `json:"orderItems,omitempty"`
}

// OrderLine is an immutable snapshot: Price is the book's price at order
// placement, never re-read from the catalog.
type OrderLine struct {
	ID       string          `json:"id"`
	OrderID  string          `json:"orderId"`
	BookID   string          `json:"bookId"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}
