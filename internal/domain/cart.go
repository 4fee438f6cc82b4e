package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	CreatedAt time.Time  `json:"createdAt"`
	Lines     []CartLine `json:"lineItems"`
}

// CartLine carries the book's live title and price alongside the reference
// so cart views and order placement do not need a second lookup.
type CartLine struct {
	ID        string          `json:"id"`
	CartID    string          `json:"cartId"`
	BookID    string          `json:"bookId"`
	BookTitle string          `json:"bookTitle,omitempty"`
	BookPrice decimal.Decimal `json:"bookPrice"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"createdAt"`
}
