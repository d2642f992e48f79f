package checkout

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/kelvish/storetix/internal/cart"
	"github.com/kelvish/storetix/internal/domain"
	"github.com/kelvish/storetix/internal/pricing"
)

const (
	StepAttendee = 1
	StepPayment  = 2
	StepReview   = 3
)

type Config struct {
	// ProcessingDelay is the simulated payment wait before an order
	// completes. It always runs to completion.
	ProcessingDelay time.Duration
}

// Service drives the three-step checkout for each session. Checkout state is
// in-memory only and does not survive restarts; the cart it coordinates with
// is the durable piece.
type Service struct {
	cart    *cart.Service
	pricing *pricing.Service
	cfg     Config

	mu       sync.RWMutex
	sessions map[string]*domain.CheckoutState
	orders   map[string]domain.Order
}

func New(cartSvc *cart.Service, pricingSvc *pricing.Service, cfg Config) *Service {
	return &Service{
		cart:     cartSvc,
		pricing:  pricingSvc,
		cfg:      cfg,
		sessions: make(map[string]*domain.CheckoutState),
		orders:   make(map[string]domain.Order),
	}
}

// State returns a copy of the session's checkout state, creating it at step 1
// on first access.
func (s *Service) State(sessionID string) domain.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.session(sessionID)
}

// SetStep jumps directly to any step in 1..3. Backward jumps serve the "Edit"
// links; the machine does not gate forward jumps on prior completeness.
func (s *Service) SetStep(sessionID string, step int) error {
	const op = "service.checkout.SetStep"

	if step < StepAttendee || step > StepReview {
		return fmt.Errorf("%s: %w", op, ErrInvalidStep)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sessionID).Step = step

	return nil
}

// SetAttendeeInfo validates and stores the attendee details. It does not
// advance the step; the caller does that after a successful store.
func (s *Service) SetAttendeeInfo(sessionID string, info domain.AttendeeInfo) error {
	const op = "service.checkout.SetAttendeeInfo"

	if err := validateAttendee(info); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sessionID).AttendeeInfo = &info

	return nil
}

// SetPaymentMethod stores the selected method. It does not advance the step.
func (s *Service) SetPaymentMethod(sessionID string, method domain.PaymentMethod) error {
	const op = "service.checkout.SetPaymentMethod"

	if !domain.ValidPaymentMethod(method) {
		return fmt.Errorf("%s: %w", op, ErrInvalidPayment)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sessionID).PaymentMethod = method

	return nil
}

// ApplyCoupon records an already-validated coupon code on the session.
func (s *Service) ApplyCoupon(sessionID, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sessionID).AppliedCoupon = code
}

func (s *Service) RemoveCoupon(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(sessionID).AppliedCoupon = ""
}

// PlaceOrder completes checkout: it requires attendee info and a payment
// method, waits the fixed processing delay, generates the order reference,
// snapshots the order, clears the cart and resets the session (keeping the
// order reference for the confirmation screen).
//
// Returns:
//   - *domain.Order: the placed order.
//   - error: checkout.ErrIncompleteCheckout when a step is missing, with no
//     state change; checkout.ErrEmptyCart when there is nothing to buy.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string) (*domain.Order, error) {
	const op = "service.checkout.PlaceOrder"

	s.mu.Lock()
	state := *s.session(sessionID)
	s.mu.Unlock()

	if state.AttendeeInfo == nil || state.PaymentMethod == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrIncompleteCheckout)
	}

	items, err := s.cart.Items(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyCart)
	}

	subtotal, err := s.cart.Subtotal(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	coupon := s.pricing.ResolveCoupon(ctx, state.AppliedCoupon)
	breakdown := s.pricing.Breakdown(subtotal, coupon)

	// Simulated payment processing; no failure branch, never cancelled.
	if s.cfg.ProcessingDelay > 0 {
		time.Sleep(s.cfg.ProcessingDelay)
	}

	order := domain.Order{
		Ref:           NewOrderRef(),
		Items:         items,
		Breakdown:     breakdown,
		Attendee:      *state.AttendeeInfo,
		PaymentMethod: state.PaymentMethod,
		PlacedAt:      time.Now(),
	}

	if err := s.cart.Clear(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.orders[order.Ref] = order
	sess := s.session(sessionID)
	sess.Step = StepAttendee
	sess.AttendeeInfo = nil
	sess.PaymentMethod = ""
	sess.AppliedCoupon = ""
	sess.LastOrderRef = order.Ref
	s.mu.Unlock()

	return &order, nil
}

// Reset returns the session to step 1 with attendee, payment and coupon
// cleared. The last order reference survives for the confirmation page.
func (s *Service) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.Step = StepAttendee
	sess.AttendeeInfo = nil
	sess.PaymentMethod = ""
	sess.AppliedCoupon = ""
}

// GetOrder looks up a placed order by its reference.
func (s *Service) GetOrder(ref string) (*domain.Order, error) {
	const op = "service.checkout.GetOrder"

	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[ref]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrOrderNotFound)
	}

	return &order, nil
}

// session returns the live state for a session; callers hold s.mu.
func (s *Service) session(sessionID string) *domain.CheckoutState {
	state, ok := s.sessions[sessionID]
	if !ok {
		state = &domain.CheckoutState{Step: StepAttendee}
		s.sessions[sessionID] = state
	}

	return state
}

func validateAttendee(info domain.AttendeeInfo) error {
	if len(strings.TrimSpace(info.FirstName)) < 2 {
		return InvalidAttendeeError{Field: "first name", Reason: "must be at least 2 characters"}
	}

	if len(strings.TrimSpace(info.LastName)) < 2 {
		return InvalidAttendeeError{Field: "last name", Reason: "must be at least 2 characters"}
	}

	if _, err := mail.ParseAddress(info.Email); err != nil {
		return InvalidAttendeeError{Field: "email", Reason: "must be a valid email address"}
	}

	if len(strings.TrimSpace(info.Phone)) < 8 {
		return InvalidAttendeeError{Field: "phone", Reason: "must be at least 8 characters"}
	}

	return nil
}
