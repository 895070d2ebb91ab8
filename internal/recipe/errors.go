package recipe

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a recipe id does not resolve
var ErrNotFound = errors.New("recipe not found")

// ValidationError reports a draft or line that cannot enter the store
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func checkQuantity(q decimal.Decimal) error {
	if !q.IsPositive() {
		return invalid("quantity", "quantity must be greater than zero")
	}
	return nil
}

func unknownInput(id string) error {
	return invalid("input_id", fmt.Sprintf("input %q does not exist", id))
}
