package model

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantity is matched by every InvalidQuantityError via errors.Is
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// InvalidQuantityError is returned when a line item is added with quantity <= 0
type InvalidQuantityError struct {
	Product  string
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d for %q: %v", e.Quantity, e.Product, ErrInvalidQuantity)
}

func (e *InvalidQuantityError) Is(target error) bool {
	return target == ErrInvalidQuantity
}

// NewInvalidQuantityError creates a new invalid quantity error
func NewInvalidQuantityError(product string, quantity int) *InvalidQuantityError {
	return &InvalidQuantityError{
		Product:  product,
		Quantity: quantity,
	}
}

// ValidationError represents validation failures of external input
// (order files, API requests)
type ValidationError struct {
	Field   string
	Value   interface{}
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed on %s: %s (value=%v, rule=%s)", e.Field, e.Message, e.Value, e.Rule)
	}
	return fmt.Sprintf("validation failed on %s: %s (rule=%s)", e.Field, e.Message, e.Rule)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}
