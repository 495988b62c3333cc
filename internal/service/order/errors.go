package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrMissingStatus         = errors.New("status is required")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidPage           = errors.New("invalid pagination parameters")
	ErrInvalidQuantity       = errors.New("item quantity must not be negative")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrTotalMismatch         = errors.New("total does not match items")
	ErrMissingCustomerEmail  = errors.New("customer email is required")

	ErrOrderNotFound = errors.New("order not found")
	ErrPersistence   = errors.New("order store failure")
)
