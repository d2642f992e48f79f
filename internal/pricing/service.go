package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kelvish/storetix/internal/domain"
	"github.com/kelvish/storetix/internal/repository"
)

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

type Limiter interface {
	Allow(ctx context.Context, id string) (allowed bool, current int64, retryAfter time.Duration, err error)
}

type Service struct {
	coupons CouponRepository
	limiter Limiter
	fees    domain.FeeConfig
}

func New(coupons CouponRepository, limiter Limiter, fees domain.FeeConfig) *Service {
	return &Service{
		coupons: coupons,
		limiter: limiter,
		fees:    fees,
	}
}

func (s *Service) Fees() domain.FeeConfig {
	return s.fees
}

// ValidateCoupon checks a code against the catalog and the current subtotal.
//
// Parameters:
//   - ctx: request-scoped context.
//   - code: coupon code, matched case-insensitively.
//   - subtotalCents: current cart subtotal in minor units.
//   - now: validity reference time; now == ValidUntil is still valid.
//   - rlKey: rate-limit key for the caller, empty to skip limiting.
//
// Returns:
//   - *domain.Coupon: the coupon when applicable.
//   - int64: the discount it would produce on this subtotal, for messaging.
//   - error: pricing.ErrInvalidCode, pricing.ErrLimitReached,
//     pricing.ErrExpired, pricing.BelowMinimumError or pricing.ErrRateLimited.
func (s *Service) ValidateCoupon(
	ctx context.Context,
	code string,
	subtotalCents int64,
	now time.Time,
	rlKey string,
) (*domain.Coupon, int64, error) {
	const op = "service.pricing.ValidateCoupon"

	if s.limiter != nil && rlKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, rlKey)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			return nil, 0, fmt.Errorf("%s: %w, retry in %s", op, ErrRateLimited, retry)
		}
	}

	coupon, err := s.coupons.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, 0, fmt.Errorf("%s: %w", op, ErrInvalidCode)
		}

		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	if coupon.UsedCount >= coupon.UsageLimit {
		return nil, 0, fmt.Errorf("%s: %w", op, ErrLimitReached)
	}

	if now.After(coupon.ValidUntil) {
		return nil, 0, fmt.Errorf("%s: %w", op, ErrExpired)
	}

	if coupon.MinAmountCents > 0 && subtotalCents < coupon.MinAmountCents {
		return nil, 0, fmt.Errorf("%s: %w", op, BelowMinimumError{
			MinAmountCents: coupon.MinAmountCents,
			Currency:       s.fees.Currency,
		})
	}

	return coupon, Discount(subtotalCents, coupon), nil
}

// ResolveCoupon returns the coupon for an already-applied code, or nil when
// the code no longer resolves. No validity re-check: applied codes keep their
// discount until removed.
func (s *Service) ResolveCoupon(ctx context.Context, code string) *domain.Coupon {
	if code == "" {
		return nil
	}

	coupon, err := s.coupons.FindByCode(ctx, code)
	if err != nil {
		return nil
	}

	return coupon
}

func (s *Service) Breakdown(subtotalCents int64, coupon *domain.Coupon) domain.Breakdown {
	return ComputeBreakdown(subtotalCents, coupon, s.fees)
}

// Discount computes the discount a coupon yields on a subtotal, in cents.
// Percentage discounts are clamped to the coupon's cap; fixed-amount
// discounts are taken as-is, even above the subtotal (the breakdown floors
// the discounted subtotal at zero instead).
func Discount(subtotalCents int64, coupon *domain.Coupon) int64 {
	if coupon == nil {
		return 0
	}

	switch coupon.Type {
	case domain.CouponPercent:
		discount := subtotalCents * coupon.Value / 100
		if coupon.MaxDiscountCents > 0 && discount > coupon.MaxDiscountCents {
			discount = coupon.MaxDiscountCents
		}
		return discount
	case domain.CouponAmount:
		return coupon.Value
	default:
		return 0
	}
}

// ComputeBreakdown prices a cart: discount, then VAT on the discounted
// subtotal, then total. Pure integer arithmetic on minor units.
func ComputeBreakdown(subtotalCents int64, coupon *domain.Coupon, fees domain.FeeConfig) domain.Breakdown {
	discount := Discount(subtotalCents, coupon)

	after := subtotalCents - discount
	if after < 0 {
		after = 0
	}

	var vat int64
	if fees.DisplayVAT {
		vat = after * fees.VATPercent / 100
	}

	b := domain.Breakdown{
		SubtotalCents: subtotalCents,
		DiscountCents: discount,
		VATCents:      vat,
		TotalCents:    after + vat,
	}
	if coupon != nil {
		b.CouponCode = coupon.Code
	}

	return b
}
