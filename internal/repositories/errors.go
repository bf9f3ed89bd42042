package repositories

import (
	"errors"
	"fmt"
)

// Store errors
var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrAPIKeyNotFound   = errors.New("API key not found")
	ErrDuplicateID      = errors.New("record id already exists")
)

// Entity names used in store errors
const (
	EntityPayment  = "payment"
	EntityCustomer = "customer"
	EntityAPIKey   = "api_key"
)

// StoreError is returned by every repository method that fails. Callers
// unwrap it with errors.Is / errors.As.
type StoreError struct {
	Op     string
	Entity string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s store %s: %v", e.Entity, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Entity: entity, Err: err}
}

// IsNotFound reports whether err means the requested record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPaymentNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrAPIKeyNotFound)
}
