package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/kelvish/storetix/internal/domain"
	"github.com/kelvish/storetix/internal/repository"
)

// Coupons is the fixture-backed coupon catalog. Codes match case-insensitively.
// Used counts are display data only; nothing here increments them.
type Coupons struct {
	mu     sync.RWMutex
	byCode map[string]domain.Coupon
}

func NewCoupons(seed []domain.Coupon) *Coupons {
	byCode := make(map[string]domain.Coupon, len(seed))
	for _, c := range seed {
		byCode[strings.ToLower(c.Code)] = c
	}

	return &Coupons{byCode: byCode}
}

func (r *Coupons) FindByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byCode[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &c, nil
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedCoupons mirrors the storefront's promotional codes. Amounts are cents.
func SeedCoupons() []domain.Coupon {
	return []domain.Coupon{
		{
			Code:             "WELCOME10",
			Type:             domain.CouponPercent,
			Value:            10,
			Description:      "10% off your first booking",
			MinAmountCents:   50000,
			MaxDiscountCents: 20000,
			ValidUntil:       mustTime("2025-12-31T23:59:59+04:00"),
			UsageLimit:       1000,
			UsedCount:        245,
		},
		{
			Code:           "EARLYBIRD",
			Type:           domain.CouponAmount,
			Value:          15000,
			Description:    "Rs 150 off early bird bookings",
			MinAmountCents: 80000,
			ValidUntil:     mustTime("2025-06-30T23:59:59+04:00"),
			UsageLimit:     500,
			UsedCount:      89,
		},
		{
			Code:             "STUDENT20",
			Type:             domain.CouponPercent,
			Value:            20,
			Description:      "20% student discount",
			MinAmountCents:   30000,
			MaxDiscountCents: 50000,
			ValidUntil:       mustTime("2025-12-31T23:59:59+04:00"),
			UsageLimit:       2000,
			UsedCount:        567,
		},
		{
			Code:             "FESTIVAL25",
			Type:             domain.CouponPercent,
			Value:            25,
			Description:      "25% off festival tickets",
			MinAmountCents:   100000,
			MaxDiscountCents: 75000,
			ValidUntil:       mustTime("2025-04-30T23:59:59+04:00"),
			UsageLimit:       200,
			UsedCount:        45,
		},
	}
}
