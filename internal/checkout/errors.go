package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrIncompleteCheckout = errors.New("missing attendee info or payment method")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidStep        = errors.New("step out of range")
	ErrInvalidPayment     = errors.New("unsupported payment method")
	ErrOrderNotFound      = errors.New("order not found")
)

// InvalidAttendeeError reports which attendee field failed validation.
type InvalidAttendeeError struct {
	Field  string
	Reason string
}

func (e InvalidAttendeeError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
