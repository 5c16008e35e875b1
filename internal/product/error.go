package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("price cannot be negative")
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
	ErrNoFields        = errors.New("no fields to update")
)
