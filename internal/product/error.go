package product

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidCategory = errors.New("invalid product category")
	ErrInvalidPrice    = errors.New("price cannot be negative")
	ErrInvalidStock    = errors.New("stock cannot be negative")
	ErrEmptyName       = errors.New("product name cannot be empty")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
