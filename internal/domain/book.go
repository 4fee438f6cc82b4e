package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Book struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	ISBN        string          `json:"isbn"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	CoverImage  string          `json:"coverImage,omitempty"`
	CategoryIDs []string        `json:"categoryIds,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
