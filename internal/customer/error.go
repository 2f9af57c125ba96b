package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmptyName        = errors.New("customer name cannot be empty")
	ErrEmptyPhone       = errors.New("customer phone cannot be empty")
)
