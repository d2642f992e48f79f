package pricing

import (
	"errors"
	"fmt"

	"github.com/kelvish/storetix/internal/money"
)

var (
	ErrInvalidCode  = errors.New("invalid coupon code")
	ErrLimitReached = errors.New("coupon usage limit reached")
	ErrExpired      = errors.New("coupon expired")
	ErrRateLimited  = errors.New("rate limited")
)

// BelowMinimumError reports a subtotal under the coupon's minimum order
// amount. The message carries the minimum formatted in display currency.
type BelowMinimumError struct {
	MinAmountCents int64
	Currency       string
}

func (e BelowMinimumError) Error() string {
	return fmt.Sprintf("minimum order amount is %s", money.Format(e.MinAmountCents, e.Currency))
}
