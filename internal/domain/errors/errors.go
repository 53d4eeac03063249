package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrTotalsMismatch     = errors.New("cart totals do not match line items")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidStatus      = errors.New("invalid status value")
)
