package domain

import "time"

type CouponType string

const (
	CouponPercent CouponType = "percent"
	CouponAmount  CouponType = "amount"
)

type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentMCBJuice PaymentMethod = "mcb-juice"
	PaymentMytMoney PaymentMethod = "myt-money"
)

// ValidPaymentMethod reports whether m is one of the supported payment methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCard, PaymentMCBJuice, PaymentMytMoney:
		return true
	}
	return false
}

// SeatInfo pins a cart line to a fixed seat. Seated lines are quantity-locked at 1.
type SeatInfo struct {
	Section string `json:"section"`
	Row     string `json:"row"`
	Seat    string `json:"seat"`
}

// CartItem is a single line in a cart. Price is in minor currency units (cents).
type CartItem struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	EventTitle string    `json:"event_title"`
	TierID     string    `json:"tier_id"`
	TierName   string    `json:"tier_name"`
	PriceCents int64     `json:"price_cents"`
	Quantity   int       `json:"quantity"`
	Seat       *SeatInfo `json:"seat,omitempty"`
}

type Coupon struct {
	Code             string     `json:"code"`
	Type             CouponType `json:"type"`
	Value            int64      `json:"value"` // percent for CouponPercent, cents for CouponAmount
	Description      string     `json:"description"`
	MinAmountCents   int64      `json:"min_amount_cents"`   // 0 means no minimum
	MaxDiscountCents int64      `json:"max_discount_cents"` // 0 means no cap; percent type only
	ValidUntil       time.Time  `json:"valid_until"`
	UsageLimit       int        `json:"usage_limit"`
	UsedCount        int        `json:"used_count"`
}

type FeeConfig struct {
	VATPercent int64  `json:"vat_percent"`
	DisplayVAT bool   `json:"display_vat"`
	Currency   string `json:"currency"`
}

// Breakdown is the priced view of a cart: VAT applies to the discounted subtotal,
// and no other fees participate.
type Breakdown struct {
	SubtotalCents int64  `json:"subtotal_cents"`
	DiscountCents int64  `json:"discount_cents"`
	VATCents      int64  `json:"vat_cents"`
	TotalCents    int64  `json:"total_cents"`
	CouponCode    string `json:"coupon_code,omitempty"`
}

type AttendeeInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company,omitempty"`
	JobTitle  string `json:"job_title,omitempty"`
}

// CheckoutState tracks the three-step checkout progression for one session.
type CheckoutState struct {
	Step          int           `json:"step"` // 1..3
	AttendeeInfo  *AttendeeInfo `json:"attendee_info,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	AppliedCoupon string        `json:"applied_coupon,omitempty"`
	LastOrderRef  string        `json:"last_order_ref,omitempty"`
}

// Order is the confirmation-screen snapshot produced by placing an order.
// Orders are held in memory only; they are not durable state.
type Order struct {
	Ref           string        `json:"ref"`
	Items         []CartItem    `json:"items"`
	Breakdown     Breakdown     `json:"breakdown"`
	Attendee      AttendeeInfo  `json:"attendee"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PlacedAt      time.Time     `json:"placed_at"`
}

type Venue struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	MapURL  string `json:"map_url"`
}

type Organizer struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
}

type Event struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Starts      time.Time `json:"starts"`
	Ends        time.Time `json:"ends"`
	Venue       Venue     `json:"venue"`
	Organizer   Organizer `json:"organizer"`
	Featured    bool      `json:"featured"`
	Trending    bool      `json:"trending"`
}

type TierType string

const (
	TierGeneral TierType = "general"
	TierSeated  TierType = "seated"
)

type TicketTier struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	Available   int       `json:"available"`
	Total       int       `json:"total"`
	Type        TierType  `json:"type"`
	Benefits    []string  `json:"benefits"`
	SaleStarts  time.Time `json:"sale_starts"`
	SaleEnds    time.Time `json:"sale_ends"`
}

type SeatSection struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	PriceCents       int64    `json:"price_cents"`
	Color            string   `json:"color"`
	Rows             int      `json:"rows"`
	SeatsPerRow      int      `json:"seats_per_row"`
	UnavailableSeats []string `json:"unavailable_seats"`
}

type OrganizerEventStatus string

const (
	OrganizerDraft     OrganizerEventStatus = "draft"
	OrganizerPublished OrganizerEventStatus = "published"
	OrganizerCancelled OrganizerEventStatus = "cancelled"
)

// OrganizerEvent is an event owned by the organizer dashboard, with a
// publication lifecycle on top of the catalog shape.
type OrganizerEvent struct {
	Event
	Status    OrganizerEventStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

type UserPreferences struct {
	Newsletter         bool     `json:"newsletter"`
	SMSNotifications   bool     `json:"sms_notifications"`
	EmailNotifications bool     `json:"email_notifications"`
	Categories         []string `json:"categories,omitempty"`
	Language           string   `json:"language,omitempty"`
}

type UserProfile struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone,omitempty"`
	DateOfBirth string          `json:"date_of_birth,omitempty"`
	Preferences UserPreferences `json:"preferences"`
}

// UserState is the persisted "user" entry: login flag plus profile.
type UserState struct {
	IsLoggedIn bool         `json:"is_logged_in"`
	Profile    *UserProfile `json:"profile,omitempty"`
}
