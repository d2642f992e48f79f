package httpgin

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kelvish/storetix/internal/catalog"
	"github.com/kelvish/storetix/internal/checkout"
	"github.com/kelvish/storetix/internal/domain"
	"github.com/kelvish/storetix/internal/repository/memory"
	"github.com/kelvish/storetix/internal/service"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	catalogRepo := memory.NewCatalog(
		memory.SeedEvents(),
		memory.SeedTiers(),
		memory.SeedSeatSections(),
	)

	svcs := service.NewServices(service.Deps{
		Coupons:       memory.NewCoupons(memory.SeedCoupons()),
		CartSnapshots: memory.NewCartSnapshots(),
		UserSnapshots: memory.NewUserSnapshots(),
		CatalogRepo:   catalogRepo,
		CatalogPub:    catalogRepo,
		OrganizerRepo: memory.NewOrganizerEvents(),
	}, service.Config{
		Fees:     domain.FeeConfig{VATPercent: 15, DisplayVAT: true, Currency: "MUR"},
		Checkout: checkout.Config{},
		Catalog:  catalog.Config{},
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouter(svcs, nil, logger)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestListEventsRoute(t *testing.T) {
	t.Parallel()

	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/events", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if w.Header().Get("ETag") == "" {
		t.Fatal("missing ETag")
	}

	events := decode[[]domain.Event](t, w)
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}

	// Conditional re-request hits 304.
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set("If-None-Match", w.Header().Get("ETag"))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", w2.Code)
	}
}

func TestUnknownEventRoute(t *testing.T) {
	t.Parallel()

	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/events/no-such-event", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCartFlow(t *testing.T) {
	t.Parallel()

	r := testRouter(t)
	const sid = "session-cart"

	// 2 x Rs 500 + 1 x Rs 300.
	w := doJSON(t, r, http.MethodPost, "/cart/items", sid, AddCartItemRequest{
		EventID:    "1",
		EventTitle: "Atif Aslam Live in Concert",
		TierID:     "sega-vip",
		TierName:   "VIP Experience",
		PriceCents: 50000,
		Quantity:   2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add: status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/cart/items", sid, AddCartItemRequest{
		EventID:    "2",
		EventTitle: "Arijit Singh Live in Mauritius",
		TierID:     "jazz-general",
		TierName:   "Standard Seating",
		PriceCents: 30000,
		Quantity:   1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add: status = %d, body %s", w.Code, w.Body.String())
	}

	cart := decode[CartResponse](t, doJSON(t, r, http.MethodGet, "/cart", sid, nil))
	if cart.SubtotalCents != 130000 {
		t.Fatalf("subtotal = %d, want 130000", cart.SubtotalCents)
	}
	if cart.ItemCount != 3 {
		t.Fatalf("count = %d, want 3", cart.ItemCount)
	}

	// Another session sees an empty cart.
	other := decode[CartResponse](t, doJSON(t, r, http.MethodGet, "/cart", "session-other", nil))
	if other.ItemCount != 0 {
		t.Fatalf("other session count = %d, want 0", other.ItemCount)
	}
}

func TestAddCartItemQuantityBounds(t *testing.T) {
	t.Parallel()

	r := testRouter(t)

	for _, q := range []int{0, 9} {
		w := doJSON(t, r, http.MethodPost, "/cart/items", "s1", AddCartItemRequest{
			EventID:    "1",
			EventTitle: "Concert",
			TierID:     "t1",
			TierName:   "General",
			PriceCents: 50000,
			Quantity:   q,
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("quantity %d: status = %d, want 400", q, w.Code)
		}
	}
}

func TestSeatedLineQuantityLocked(t *testing.T) {
	t.Parallel()

	r := testRouter(t)
	const sid = "session-seat"

	w := doJSON(t, r, http.MethodPost, "/cart/items", sid, AddCartItemRequest{
		EventID:    "2",
		EventTitle: "Arijit Singh Live in Mauritius",
		TierID:     "jazz-premium",
		TierName:   "Premium Seating",
		PriceCents: 200000,
		Quantity:   1,
		Seat:       &domain.SeatInfo{Section: "Section A", Row: "A1", Seat: "A1-4"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add: status = %d, body %s", w.Code, w.Body.String())
	}
	cart := decode[CartResponse](t, w)
	lineID := cart.Items[0].ID

	w = doJSON(t, r, http.MethodPatch, "/cart/items/"+lineID, sid, UpdateQuantityRequest{Quantity: 2})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}

	// Removal via zero still works.
	w = doJSON(t, r, http.MethodPatch, "/cart/items/"+lineID, sid, UpdateQuantityRequest{Quantity: 0})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	cart = decode[CartResponse](t, w)
	if cart.ItemCount != 0 {
		t.Fatalf("count = %d, want 0", cart.ItemCount)
	}
}

func TestApplyExpiredCoupon(t *testing.T) {
	t.Parallel()

	r := testRouter(t)
	const sid = "session-coupon"

	w := doJSON(t, r, http.MethodPost, "/cart/items", sid, AddCartItemRequest{
		EventID:    "1",
		EventTitle: "Concert",
		TierID:     "sega-vip",
		TierName:   "VIP Experience",
		PriceCents: 100000,
		Quantity:   1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add: status = %d", w.Code)
	}

	// Every seeded code is past its validity window by now.
	w = doJSON(t, r, http.MethodPost, "/cart/coupon", sid, ApplyCouponRequest{Code: "WELCOME10"})
	if w.Code != http.StatusGone {
		t.Fatalf("status = %d, want 410, body %s", w.Code, w.Body.String())
	}
}

func TestCheckoutEmptyCartRedirect(t *testing.T) {
	t.Parallel()

	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/checkout", "session-empty", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	resp := decode[RedirectResponse](t, w)
	if resp.Redirect != "/events" {
		t.Fatalf("redirect = %q, want /events", resp.Redirect)
	}
}

func TestPlaceOrderFlow(t *testing.T) {
	t.Parallel()

	r := testRouter(t)
	const sid = "session-order"

	w := doJSON(t, r, http.MethodPost, "/cart/items", sid, AddCartItemRequest{
		EventID:    "1",
		EventTitle: "Atif Aslam Live in Concert",
		TierID:     "sega-vip",
		TierName:   "VIP Experience",
		PriceCents: 100000,
		Quantity:   1,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add: status = %d", w.Code)
	}

	// Missing attendee and payment.
	w = doJSON(t, r, http.MethodPost, "/checkout/place-order", sid, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, "/checkout/attendee", sid, AttendeeRequest{
		FirstName: "Priya",
		LastName:  "Ramsamy",
		Email:     "priya@example.com",
		Phone:     "59876543",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("attendee: status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, "/checkout/payment-method", sid, PaymentMethodRequest{Method: "mcb-juice"})
	if w.Code != http.StatusOK {
		t.Fatalf("payment: status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/checkout/place-order", sid, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("place order: status = %d, body %s", w.Code, w.Body.String())
	}
	order := decode[domain.Order](t, w)
	if order.Ref == "" {
		t.Fatal("missing order ref")
	}
	// Rs 1000 at 15% VAT, no coupon.
	if order.Breakdown.TotalCents != 115000 {
		t.Fatalf("total = %d, want 115000", order.Breakdown.TotalCents)
	}

	// Cart is cleared and the order is retrievable.
	cart := decode[CartResponse](t, doJSON(t, r, http.MethodGet, "/cart", sid, nil))
	if cart.ItemCount != 0 {
		t.Fatalf("cart count after order = %d, want 0", cart.ItemCount)
	}

	w = doJSON(t, r, http.MethodGet, "/orders/"+order.Ref, sid, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get order: status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/orders/TKT-UNKNOWN", sid, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown order: status = %d, want 404", w.Code)
	}
}

func TestInvalidAttendeeRoute(t *testing.T) {
	t.Parallel()

	r := testRouter(t)

	w := doJSON(t, r, http.MethodPut, "/checkout/attendee", "s1", AttendeeRequest{
		FirstName: "P",
		LastName:  "Ramsamy",
		Email:     "priya@example.com",
		Phone:     "59876543",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body %s", w.Code, w.Body.String())
	}
}

func TestOrganizerPublishRoute(t *testing.T) {
	t.Parallel()

	r := testRouter(t)

	payload := OrganizerEventRequest{
		Title:    "Island Jazz Night",
		Slug:     "island-jazz-night",
		Category: "concert",
		Starts:   "2025-09-12T19:00:00+04:00",
		Ends:     "2025-09-12T23:00:00+04:00",
	}
	payload.Venue.Name = "Caudan Waterfront"
	payload.Venue.City = "Port Louis"

	w := doJSON(t, r, http.MethodPost, "/organizer/events", "", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}
	created := decode[domain.OrganizerEvent](t, w)
	if created.Status != domain.OrganizerDraft {
		t.Fatalf("status = %q, want draft", created.Status)
	}

	w = doJSON(t, r, http.MethodPost, "/organizer/events/"+created.ID+"/publish", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("publish: status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/events/island-jazz-night", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("published event not public: status = %d", w.Code)
	}
}

func TestUserRoutes(t *testing.T) {
	t.Parallel()

	r := testRouter(t)
	const sid = "session-user"

	w := doJSON(t, r, http.MethodPost, "/login", sid, LoginRequest{
		FirstName: "Priya",
		LastName:  "Ramsamy",
		Email:     "priya@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body %s", w.Code, w.Body.String())
	}
	state := decode[domain.UserState](t, w)
	if !state.IsLoggedIn {
		t.Fatal("expected logged-in state")
	}

	w = doJSON(t, r, http.MethodPatch, "/me", sid, UpdateProfileRequest{Phone: "59876543"})
	if w.Code != http.StatusOK {
		t.Fatalf("patch: status = %d, body %s", w.Code, w.Body.String())
	}
	profile := decode[domain.UserProfile](t, w)
	if profile.Phone != "59876543" {
		t.Fatalf("phone = %q", profile.Phone)
	}

	w = doJSON(t, r, http.MethodPost, "/logout", sid, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("logout: status = %d", w.Code)
	}

	state = decode[domain.UserState](t, doJSON(t, r, http.MethodGet, "/me", sid, nil))
	if state.IsLoggedIn {
		t.Fatal("expected anonymous state after logout")
	}
}
