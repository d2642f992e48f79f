package checkout

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/kelvish/storetix/internal/cart"
	"github.com/kelvish/storetix/internal/domain"
	"github.com/kelvish/storetix/internal/pricing"
	"github.com/kelvish/storetix/internal/repository/memory"
)

func testCheckout(t *testing.T) (*Service, *cart.Service) {
	t.Helper()

	cartSvc := cart.New(memory.NewCartSnapshots())
	pricingSvc := pricing.New(
		memory.NewCoupons(memory.SeedCoupons()),
		nil,
		domain.FeeConfig{VATPercent: 15, DisplayVAT: true, Currency: "MUR"},
	)

	return New(cartSvc, pricingSvc, Config{}), cartSvc
}

func validAttendee() domain.AttendeeInfo {
	return domain.AttendeeInfo{
		FirstName: "Priya",
		LastName:  "Ramsamy",
		Email:     "priya@example.com",
		Phone:     "59876543",
	}
}

func fillCart(t *testing.T, cartSvc *cart.Service, sessionID string, priceCents int64, quantity int) {
	t.Helper()
	if _, err := cartSvc.AddItem(context.Background(), sessionID, domain.CartItem{
		EventID:    "1",
		EventTitle: "Concert",
		TierID:     "t1",
		TierName:   "General",
		PriceCents: priceCents,
		Quantity:   quantity,
	}); err != nil {
		t.Fatalf("add item: %v", err)
	}
}

func TestStateStartsAtStepOne(t *testing.T) {
	t.Parallel()

	svc, _ := testCheckout(t)

	state := svc.State("s1")
	if state.Step != StepAttendee {
		t.Fatalf("step = %d, want %d", state.Step, StepAttendee)
	}
	if state.AttendeeInfo != nil || state.PaymentMethod != "" {
		t.Fatalf("fresh state not empty: %+v", state)
	}
}

func TestSetStep(t *testing.T) {
	t.Parallel()

	svc, _ := testCheckout(t)

	// Free jumps in both directions.
	for _, step := range []int{3, 1, 2} {
		if err := svc.SetStep("s1", step); err != nil {
			t.Fatalf("set step %d: %v", step, err)
		}
		if got := svc.State("s1").Step; got != step {
			t.Fatalf("step = %d, want %d", got, step)
		}
	}

	for _, step := range []int{0, 4, -1} {
		if err := svc.SetStep("s1", step); !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("set step %d: err = %v, want %v", step, err, ErrInvalidStep)
		}
	}
}

func TestSetAttendeeInfo(t *testing.T) {
	t.Parallel()

	svc, _ := testCheckout(t)

	tests := []struct {
		name      string
		mutate    func(*domain.AttendeeInfo)
		wantField string
	}{
		{name: "valid", mutate: func(i *domain.AttendeeInfo) {}},
		{
			name:      "short first name",
			mutate:    func(i *domain.AttendeeInfo) { i.FirstName = " A " },
			wantField: "first name",
		},
		{
			name:      "short last name",
			mutate:    func(i *domain.AttendeeInfo) { i.LastName = "B" },
			wantField: "last name",
		},
		{
			name:      "bad email",
			mutate:    func(i *domain.AttendeeInfo) { i.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "short phone",
			mutate:    func(i *domain.AttendeeInfo) { i.Phone = "1234567" },
			wantField: "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validAttendee()
			tt.mutate(&info)

			err := svc.SetAttendeeInfo("s-"+tt.name, info)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("set attendee: %v", err)
				}
				state := svc.State("s-" + tt.name)
				if state.AttendeeInfo == nil {
					t.Fatal("attendee info not stored")
				}
				if state.Step != StepAttendee {
					t.Fatalf("step advanced to %d", state.Step)
				}
				return
			}

			var invalid InvalidAttendeeError
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %v, want InvalidAttendeeError", err)
			}
			if invalid.Field != tt.wantField {
				t.Fatalf("field = %q, want %q", invalid.Field, tt.wantField)
			}
		})
	}
}

func TestSetPaymentMethod(t *testing.T) {
	t.Parallel()

	svc, _ := testCheckout(t)

	for _, m := range []domain.PaymentMethod{
		domain.PaymentCard,
		domain.PaymentMCBJuice,
		domain.PaymentMytMoney,
	} {
		if err := svc.SetPaymentMethod("s1", m); err != nil {
			t.Fatalf("set payment %q: %v", m, err)
		}
	}

	if err := svc.SetPaymentMethod("s1", "cash"); !errors.Is(err, ErrInvalidPayment) {
		t.Fatalf("err = %v, want %v", err, ErrInvalidPayment)
	}
}

func TestPlaceOrderPreconditions(t *testing.T) {
	t.Parallel()

	svc, cartSvc := testCheckout(t)
	ctx := context.Background()

	fillCart(t, cartSvc, "s1", 100000, 1)

	// Nothing set yet.
	if _, err := svc.PlaceOrder(ctx, "s1"); !errors.Is(err, ErrIncompleteCheckout) {
		t.Fatalf("err = %v, want %v", err, ErrIncompleteCheckout)
	}

	// Attendee only.
	if err := svc.SetAttendeeInfo("s1", validAttendee()); err != nil {
		t.Fatalf("set attendee: %v", err)
	}
	if _, err := svc.PlaceOrder(ctx, "s1"); !errors.Is(err, ErrIncompleteCheckout) {
		t.Fatalf("err = %v, want %v", err, ErrIncompleteCheckout)
	}

	// A failed attempt must not disturb the session.
	state := svc.State("s1")
	if state.AttendeeInfo == nil || state.LastOrderRef != "" {
		t.Fatalf("failed place-order mutated state: %+v", state)
	}

	items, err := cartSvc.Items(ctx, "s1")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("cart touched by failed place-order: %d items", len(items))
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	t.Parallel()

	svc, _ := testCheckout(t)

	if err := svc.SetAttendeeInfo("s1", validAttendee()); err != nil {
		t.Fatalf("set attendee: %v", err)
	}
	if err := svc.SetPaymentMethod("s1", domain.PaymentCard); err != nil {
		t.Fatalf("set payment: %v", err)
	}

	if _, err := svc.PlaceOrder(context.Background(), "s1"); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want %v", err, ErrEmptyCart)
	}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	t.Parallel()

	svc, cartSvc := testCheckout(t)
	ctx := context.Background()

	fillCart(t, cartSvc, "s1", 100000, 1)

	if err := svc.SetAttendeeInfo("s1", validAttendee()); err != nil {
		t.Fatalf("set attendee: %v", err)
	}
	if err := svc.SetPaymentMethod("s1", domain.PaymentMCBJuice); err != nil {
		t.Fatalf("set payment: %v", err)
	}
	svc.ApplyCoupon("s1", "WELCOME10")

	order, err := svc.PlaceOrder(ctx, "s1")
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	// WELCOME10 on Rs 1000 at 15% VAT.
	if order.Breakdown.DiscountCents != 10000 {
		t.Fatalf("discount = %d, want 10000", order.Breakdown.DiscountCents)
	}
	if order.Breakdown.TotalCents != 103500 {
		t.Fatalf("total = %d, want 103500", order.Breakdown.TotalCents)
	}
	if order.PaymentMethod != domain.PaymentMCBJuice {
		t.Fatalf("payment = %q", order.PaymentMethod)
	}
	if len(order.Items) != 1 {
		t.Fatalf("order items = %d, want 1", len(order.Items))
	}

	// Cart cleared, session reset, reference kept.
	count, err := cartSvc.ItemCount(ctx, "s1")
	if err != nil {
		t.Fatalf("item count: %v", err)
	}
	if count != 0 {
		t.Fatalf("cart not cleared, count = %d", count)
	}

	state := svc.State("s1")
	if state.Step != StepAttendee || state.AttendeeInfo != nil ||
		state.PaymentMethod != "" || state.AppliedCoupon != "" {
		t.Fatalf("session not reset: %+v", state)
	}
	if state.LastOrderRef != order.Ref {
		t.Fatalf("last order ref = %q, want %q", state.LastOrderRef, order.Ref)
	}

	got, err := svc.GetOrder(order.Ref)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.Ref != order.Ref {
		t.Fatalf("looked-up ref = %q, want %q", got.Ref, order.Ref)
	}
}

func TestResetPreservesLastOrderRef(t *testing.T) {
	t.Parallel()

	svc, cartSvc := testCheckout(t)
	ctx := context.Background()

	fillCart(t, cartSvc, "s1", 100000, 1)
	if err := svc.SetAttendeeInfo("s1", validAttendee()); err != nil {
		t.Fatalf("set attendee: %v", err)
	}
	if err := svc.SetPaymentMethod("s1", domain.PaymentCard); err != nil {
		t.Fatalf("set payment: %v", err)
	}

	order, err := svc.PlaceOrder(ctx, "s1")
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if err := svc.SetStep("s1", StepReview); err != nil {
		t.Fatalf("set step: %v", err)
	}
	svc.Reset("s1")

	state := svc.State("s1")
	if state.Step != StepAttendee {
		t.Fatalf("step = %d, want %d", state.Step, StepAttendee)
	}
	if state.LastOrderRef != order.Ref {
		t.Fatalf("reset dropped last order ref: %q", state.LastOrderRef)
	}
}

func TestGetOrderUnknown(t *testing.T) {
	t.Parallel()

	svc, _ := testCheckout(t)

	if _, err := svc.GetOrder("TKT-NOPE"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want %v", err, ErrOrderNotFound)
	}
}

func TestNewOrderRefFormat(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^TKT-[0-9A-Z]+-[0-9A-Z]{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ref := NewOrderRef()
		if !re.MatchString(ref) {
			t.Fatalf("ref %q does not match format", ref)
		}
		if seen[ref] {
			t.Fatalf("duplicate ref %q", ref)
		}
		seen[ref] = true
	}
}
