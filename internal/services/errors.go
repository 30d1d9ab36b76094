package services

import (
	"errors"
	"fmt"
)

// Domain errors the handlers translate into user-facing notices. None of
// these should ever crash the process.
var (
	// ErrProductNotFound is returned when a product key resolves to nothing
	// in the catalog, both on add-to-cart and during checkout.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyCart is returned when checkout is attempted with nothing to buy.
	ErrEmptyCart = errors.New("cart is empty, nothing to check out")

	// ErrAuthRequired is returned when checkout is attempted without an
	// authenticated identity.
	ErrAuthRequired = errors.New("authentication required")

	// ErrOrderNotFound is returned when an order does not exist or does not
	// belong to the requesting user.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidCredentials is returned on any login failure. It is
	// deliberately generic so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports malformed user input (registration fields,
// shipping details). It is a pure precondition failure with no side effects.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// PersistenceError wraps a storage fault. When checkout returns one, every
// write of that call has been rolled back and the cart is untouched, so the
// user can simply retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
