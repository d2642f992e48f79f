package httpgin

import (
	"time"

	"github.com/kelvish/storetix/internal/domain"
)

type AddCartItemRequest struct {
	EventID    string           `json:"event_id" binding:"required"`
	EventTitle string           `json:"event_title" binding:"required"`
	TierID     string           `json:"tier_id" binding:"required"`
	TierName   string           `json:"tier_name" binding:"required"`
	PriceCents int64            `json:"price_cents" binding:"required,gt=0"`
	Quantity   int              `json:"quantity" binding:"required,gte=1,lte=8"`
	Seat       *domain.SeatInfo `json:"seat"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"gte=0,lte=8"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type SetStepRequest struct {
	Step int `json:"step" binding:"required,gte=1,lte=3"`
}

type AttendeeRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Company   string `json:"company"`
	JobTitle  string `json:"job_title"`
}

type PaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

type OrganizerEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Image       string `json:"image"`
	Starts      string `json:"starts" binding:"required"`
	Ends        string `json:"ends" binding:"required"`
	Venue       struct {
		Name    string `json:"name" binding:"required"`
		Address string `json:"address"`
		City    string `json:"city" binding:"required"`
		MapURL  string `json:"map_url"`
	} `json:"venue" binding:"required"`
	Organizer struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Contact     string `json:"contact"`
	} `json:"organizer"`
}

type LoginRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

type UpdateProfileRequest struct {
	FirstName   string                  `json:"first_name"`
	LastName    string                  `json:"last_name"`
	Email       string                  `json:"email"`
	Phone       string                  `json:"phone"`
	DateOfBirth string                  `json:"date_of_birth"`
	Preferences *domain.UserPreferences `json:"preferences"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// RedirectResponse carries the storefront path the client should fall back to,
// e.g. when checkout is entered with an empty cart.
type RedirectResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

type CartResponse struct {
	Items         []domain.CartItem `json:"items"`
	SubtotalCents int64             `json:"subtotal_cents"`
	ItemCount     int               `json:"item_count"`
}

type ApplyCouponResponse struct {
	Code          string `json:"code"`
	Description   string `json:"description"`
	DiscountCents int64  `json:"discount_cents"`
}

type CheckoutResponse struct {
	State     domain.CheckoutState `json:"state"`
	Breakdown domain.Breakdown     `json:"breakdown"`
}

type PlaceOrderResponse struct {
	Ref string `json:"ref"`
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
