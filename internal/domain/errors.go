package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrCartEmpty rejects order placement when the cart has no lines.
	ErrCartEmpty = errors.New("shopping cart is empty")
	// ErrInvalidStatus indicates an order status name outside the fixed set.
	ErrInvalidStatus = errors.New("invalid order status")
)
