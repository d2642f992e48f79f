package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kelvish/storetix/internal/catalog"
	"github.com/kelvish/storetix/internal/checkout"
	"github.com/kelvish/storetix/internal/domain"
	"github.com/kelvish/storetix/internal/organizer"
	"github.com/kelvish/storetix/internal/pricing"
	"github.com/kelvish/storetix/internal/repository"
	redisrepo "github.com/kelvish/storetix/internal/repository/redis"
	"github.com/kelvish/storetix/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Recovery(),
		LoggingMiddleware(logger),
		RequestIDMiddleware(),
		SessionMiddleware(),
		CORS(),
	)
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Catalog
	r.GET("/events", handleListEvents(svcs))
	r.GET("/events/:slug", handleGetEvent(svcs))
	r.GET("/events/:slug/tiers", handleListTiers(svcs))
	r.GET("/events/:slug/seatmap", handleSeatMap(svcs))

	// Cart (scoped by X-Session-ID)
	r.GET("/cart", handleGetCart(svcs))
	r.POST("/cart/items", handleAddCartItem(svcs))
	r.PATCH("/cart/items/:id", handleUpdateQuantity(svcs))
	r.DELETE("/cart/items/:id", handleRemoveCartItem(svcs))
	r.DELETE("/cart", handleClearCart(svcs))
	r.POST("/cart/coupon", handleApplyCoupon(svcs))
	r.DELETE("/cart/coupon", handleRemoveCoupon(svcs))

	// Checkout
	r.GET("/checkout", handleGetCheckout(svcs))
	r.PUT("/checkout/step", handleSetStep(svcs))
	r.PUT("/checkout/attendee", handleSetAttendee(svcs))
	r.PUT("/checkout/payment-method", handleSetPaymentMethod(svcs))
	r.POST("/checkout/place-order", handlePlaceOrder(svcs, idem))
	r.POST("/checkout/reset", handleResetCheckout(svcs))
	r.GET("/orders/:ref", handleGetOrder(svcs))

	// Organizer dashboard
	org := r.Group("/organizer")
	{
		org.GET("/events", handleOrganizerListEvents(svcs))
		org.POST("/events", handleOrganizerCreateEvent(svcs))
		org.PATCH("/events/:id", handleOrganizerUpdateEvent(svcs))
		org.DELETE("/events/:id", handleOrganizerDeleteEvent(svcs))
		org.POST("/events/:id/publish", handleOrganizerPublishEvent(svcs))
	}

	// User
	r.GET("/me", handleGetMe(svcs))
	r.PATCH("/me", handleUpdateProfile(svcs))
	r.POST("/login", handleLogin(svcs))
	r.POST("/logout", handleLogout(svcs))

	return r
}

// --- Catalog handlers ---

// @Summary  List events
// @Param    q        query  string  false  "free-text search"
// @Param    category query  string  false  "category slug or all"
// @Param    city     query  string  false  "city slug"
// @Param    date     query  string  false  "today|tomorrow|this-week|this-month|next-month"
// @Param    price    query  string  false  "0-500|500-1000|1000-2000|2000+"
// @Param    sort     query  string  false  "trending|date-asc|date-desc|price-asc|price-desc"
// @Success  200  {array}  domain.Event
// @Router   /events [get]
func handleListEvents(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := catalog.Filter{
			Query:      c.Query("q"),
			Category:   c.Query("category"),
			City:       c.Query("city"),
			DateRange:  c.Query("date"),
			PriceRange: c.Query("price"),
			SortBy:     c.Query("sort"),
			Now:        time.Now(),
		}
		events, err := svcs.Catalog.ListEvents(c.Request.Context(), f)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, events, "public, max-age=60", true)
	}
}

// @Summary  Get event by slug
// @Param    slug  path  string  true  "Event slug"
// @Success  200  {object}  domain.Event
// @Failure  404  {object}  ErrorResponse
// @Router   /events/{slug} [get]
func handleGetEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		e, err := svcs.Catalog.GetEvent(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, e, "public, max-age=60", true)
	}
}

// @Summary  List ticket tiers for an event
// @Param    slug  path  string  true  "Event slug"
// @Success  200  {array}  domain.TicketTier
// @Router   /events/{slug}/tiers [get]
func handleListTiers(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		e, err := svcs.Catalog.GetEvent(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondErr(c, err)
			return
		}
		tiers, err := svcs.Catalog.ListTiers(c.Request.Context(), e.ID)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, tiers, "public, max-age=15", true)
	}
}

// @Summary  Seat map for an event
// @Param    slug  path  string  true  "Event slug"
// @Success  200  {array}  domain.SeatSection
// @Router   /events/{slug}/seatmap [get]
func handleSeatMap(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		e, err := svcs.Catalog.GetEvent(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondErr(c, err)
			return
		}
		sections, err := svcs.Catalog.SeatSections(c.Request.Context(), e.ID)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, sections, "public, max-age=15", true)
	}
}

// --- Cart handlers ---

// @Summary  Get cart
// @Param    X-Session-ID  header  string  false  "session (minted when absent)"
// @Success  200  {object}  CartResponse
// @Router   /cart [get]
func handleGetCart(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeCart(c, svcs, http.StatusOK)
	}
}

// @Summary  Add item to cart
// @Param    req  body  AddCartItemRequest  true  "payload"
// @Success  201  {object}  CartResponse
// @Failure  400  {object}  ErrorResponse
// @Router   /cart/items [post]
func handleAddCartItem(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		item := domain.CartItem{
			EventID:    req.EventID,
			EventTitle: req.EventTitle,
			TierID:     req.TierID,
			TierName:   req.TierName,
			PriceCents: req.PriceCents,
			Quantity:   req.Quantity,
			Seat:       req.Seat,
		}
		if _, err := svcs.Cart.AddItem(c.Request.Context(), sessionID(c), item); err != nil {
			respondErr(c, err)
			return
		}
		writeCart(c, svcs, http.StatusCreated)
	}
}

// @Summary  Update line quantity (0 removes the line)
// @Param    id   path  string                 true  "Cart line ID"
// @Param    req  body  UpdateQuantityRequest  true  "payload"
// @Success  200  {object}  CartResponse
// @Router   /cart/items/{id} [patch]
func handleUpdateQuantity(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		sid := sessionID(c)
		lineID := c.Param("id")

		// Seat-locked lines stay at quantity 1; only removal is allowed.
		if req.Quantity > 1 {
			items, err := svcs.Cart.Items(c.Request.Context(), sid)
			if err != nil {
				respondErr(c, err)
				return
			}
			for _, it := range items {
				if it.ID == lineID && it.Seat != nil {
					badRequest(c, "seated lines are fixed at quantity 1")
					return
				}
			}
		}

		if err := svcs.Cart.UpdateQuantity(
			c.Request.Context(),
			sid,
			lineID,
			req.Quantity,
		); err != nil {
			respondErr(c, err)
			return
		}
		writeCart(c, svcs, http.StatusOK)
	}
}

// @Summary  Remove cart line
// @Param    id  path  string  true  "Cart line ID"
// @Success  200  {object}  CartResponse
// @Router   /cart/items/{id} [delete]
func handleRemoveCartItem(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svcs.Cart.RemoveItem(
			c.Request.Context(),
			sessionID(c),
			c.Param("id"),
		); err != nil {
			respondErr(c, err)
			return
		}
		writeCart(c, svcs, http.StatusOK)
	}
}

// @Summary  Clear cart
// @Success  204
// @Router   /cart [delete]
func handleClearCart(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svcs.Cart.Clear(c.Request.Context(), sessionID(c)); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Validate and apply a coupon to the session (rate limited)
// @Param    req  body  ApplyCouponRequest  true  "payload"
// @Success  200  {object}  ApplyCouponResponse
// @Failure  400  {object}  ErrorResponse  "invalid code / below minimum"
// @Failure  409  {object}  ErrorResponse  "usage limit reached"
// @Failure  410  {object}  ErrorResponse  "expired"
// @Failure  429  {object}  ErrorResponse  "rate limited"
// @Router   /cart/coupon [post]
func handleApplyCoupon(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ApplyCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		sid := sessionID(c)
		subtotal, err := svcs.Cart.Subtotal(c.Request.Context(), sid)
		if err != nil {
			respondErr(c, err)
			return
		}

		coupon, discount, err := svcs.Pricing.ValidateCoupon(
			c.Request.Context(),
			req.Code,
			subtotal,
			time.Now(),
			"ip:"+c.ClientIP(),
		)
		if err != nil {
			respondErr(c, err)
			return
		}

		svcs.Checkout.ApplyCoupon(sid, coupon.Code)

		c.JSON(http.StatusOK, ApplyCouponResponse{
			Code:          coupon.Code,
			Description:   coupon.Description,
			DiscountCents: discount,
		})
	}
}

// @Summary  Remove the applied coupon
// @Success  204
// @Router   /cart/coupon [delete]
func handleRemoveCoupon(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		svcs.Checkout.RemoveCoupon(sessionID(c))
		c.Status(http.StatusNoContent)
	}
}

// --- Checkout handlers ---

// @Summary  Checkout state with live price breakdown
// @Success  200  {object}  CheckoutResponse
// @Failure  409  {object}  RedirectResponse  "empty cart"
// @Router   /checkout [get]
func handleGetCheckout(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)

		count, err := svcs.Cart.ItemCount(c.Request.Context(), sid)
		if err != nil {
			respondErr(c, err)
			return
		}
		if count == 0 {
			c.JSON(http.StatusConflict, RedirectResponse{
				Error:    "cart is empty",
				Redirect: "/events",
			})
			return
		}

		subtotal, err := svcs.Cart.Subtotal(c.Request.Context(), sid)
		if err != nil {
			respondErr(c, err)
			return
		}

		state := svcs.Checkout.State(sid)
		coupon := svcs.Pricing.ResolveCoupon(c.Request.Context(), state.AppliedCoupon)

		c.JSON(http.StatusOK, CheckoutResponse{
			State:     state,
			Breakdown: svcs.Pricing.Breakdown(subtotal, coupon),
		})
	}
}

// @Summary  Jump to a checkout step (1..3)
// @Param    req  body  SetStepRequest  true  "payload"
// @Success  200  {object}  domain.CheckoutState
// @Router   /checkout/step [put]
func handleSetStep(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetStepRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		sid := sessionID(c)
		if err := svcs.Checkout.SetStep(sid, req.Step); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, svcs.Checkout.State(sid))
	}
}

// @Summary  Save attendee info
// @Param    req  body  AttendeeRequest  true  "payload"
// @Success  200  {object}  domain.CheckoutState
// @Failure  422  {object}  ErrorResponse  "field validation"
// @Router   /checkout/attendee [put]
func handleSetAttendee(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AttendeeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		sid := sessionID(c)
		info := domain.AttendeeInfo{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Company:   req.Company,
			JobTitle:  req.JobTitle,
		}
		if err := svcs.Checkout.SetAttendeeInfo(sid, info); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, svcs.Checkout.State(sid))
	}
}

// @Summary  Select payment method
// @Param    req  body  PaymentMethodRequest  true  "payload"
// @Success  200  {object}  domain.CheckoutState
// @Router   /checkout/payment-method [put]
func handleSetPaymentMethod(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentMethodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		sid := sessionID(c)
		if err := svcs.Checkout.SetPaymentMethod(sid, domain.PaymentMethod(req.Method)); err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, svcs.Checkout.State(sid))
	}
}

// @Summary  Place order (idempotent via Idempotency-Key)
// @Header   201 {string} Idempotency-Key "echo"
// @Success  201  {object}  domain.Order
// @Failure  409  {object}  ErrorResponse  "empty cart / idem in progress"
// @Failure  422  {object}  ErrorResponse  "incomplete checkout"
// @Router   /checkout/place-order [post]
func handlePlaceOrder(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemOrder(sid, idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusCreated,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(
					c.Request.Context(),
					idemStorageKey,
				); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(
						http.StatusCreated,
						"application/json; charset=utf-8",
						[]byte(payload),
					)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		order, err := svcs.Checkout.PlaceOrder(c.Request.Context(), sid)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			respondErr(c, err)
			return
		}

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(order)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, order)
	}
}

// @Summary  Reset checkout state (keeps the last order reference)
// @Success  200  {object}  domain.CheckoutState
// @Router   /checkout/reset [post]
func handleResetCheckout(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		svcs.Checkout.Reset(sid)
		c.JSON(http.StatusOK, svcs.Checkout.State(sid))
	}
}

// @Summary  Get placed order by reference
// @Param    ref  path  string  true  "Order reference"
// @Success  200  {object}  domain.Order
// @Failure  404  {object}  ErrorResponse
// @Router   /orders/{ref} [get]
func handleGetOrder(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svcs.Checkout.GetOrder(c.Param("ref"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// --- Organizer handlers ---

// @Summary  List organizer events
// @Success  200  {array}  domain.OrganizerEvent
// @Router   /organizer/events [get]
func handleOrganizerListEvents(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := svcs.Organizer.ListEvents(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

// @Summary  Create draft event
// @Param    req  body  OrganizerEventRequest  true  "payload"
// @Success  201  {object}  domain.OrganizerEvent
// @Router   /organizer/events [post]
func handleOrganizerCreateEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ev, ok := bindOrganizerEvent(c)
		if !ok {
			return
		}
		created, err := svcs.Organizer.CreateEvent(c.Request.Context(), ev)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// @Summary  Update event
// @Param    id   path  string                 true  "Event ID"
// @Param    req  body  OrganizerEventRequest  true  "payload"
// @Success  200  {object}  domain.OrganizerEvent
// @Router   /organizer/events/{id} [patch]
func handleOrganizerUpdateEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ev, ok := bindOrganizerEvent(c)
		if !ok {
			return
		}
		updated, err := svcs.Organizer.UpdateEvent(c.Request.Context(), c.Param("id"), ev)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// @Summary  Delete event
// @Param    id  path  string  true  "Event ID"
// @Success  204
// @Router   /organizer/events/{id} [delete]
func handleOrganizerDeleteEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svcs.Organizer.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Publish event to the public catalog
// @Param    id  path  string  true  "Event ID"
// @Success  200  {object}  domain.OrganizerEvent
// @Router   /organizer/events/{id}/publish [post]
func handleOrganizerPublishEvent(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		published, err := svcs.Organizer.PublishEvent(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, published)
	}
}

// --- User handlers ---

// @Summary  Current user state
// @Success  200  {object}  domain.UserState
// @Router   /me [get]
func handleGetMe(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := svcs.User.State(c.Request.Context(), sessionID(c))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// @Summary  Log in (no credential check, storefront profile only)
// @Param    req  body  LoginRequest  true  "payload"
// @Success  200  {object}  domain.UserState
// @Router   /login [post]
func handleLogin(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		sid := sessionID(c)
		profile := domain.UserProfile{
			ID:        sid,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
		}
		if err := svcs.User.Login(c.Request.Context(), sid, profile); err != nil {
			respondErr(c, err)
			return
		}
		state, err := svcs.User.State(c.Request.Context(), sid)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// @Summary  Log out
// @Success  204
// @Router   /logout [post]
func handleLogout(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svcs.User.Logout(c.Request.Context(), sessionID(c)); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  Update profile (merge non-empty fields)
// @Param    req  body  UpdateProfileRequest  true  "payload"
// @Success  200  {object}  domain.UserProfile
// @Failure  404  {object}  ErrorResponse  "not logged in"
// @Router   /me [patch]
func handleUpdateProfile(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		updates := domain.UserProfile{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
			Phone:       req.Phone,
			DateOfBirth: req.DateOfBirth,
		}
		if req.Preferences != nil {
			updates.Preferences = *req.Preferences
		}
		p, err := svcs.User.UpdateProfile(c.Request.Context(), sessionID(c), updates)
		if err != nil {
			respondErr(c, err)
			return
		}
		if p == nil {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "not logged in"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// --- Helpers ---

func writeCart(c *gin.Context, svcs *service.Services, status int) {
	sid := sessionID(c)

	items, err := svcs.Cart.Items(c.Request.Context(), sid)
	if err != nil {
		respondErr(c, err)
		return
	}
	var subtotal int64
	count := 0
	for _, it := range items {
		subtotal += it.PriceCents * int64(it.Quantity)
		count += it.Quantity
	}
	c.JSON(status, CartResponse{
		Items:         items,
		SubtotalCents: subtotal,
		ItemCount:     count,
	})
}

func bindOrganizerEvent(c *gin.Context) (domain.Event, bool) {
	var req OrganizerEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return domain.Event{}, false
	}
	starts, err := parseRFC3339(req.Starts)
	if err != nil {
		badRequest(c, "invalid starts (RFC3339)")
		return domain.Event{}, false
	}
	ends, err := parseRFC3339(req.Ends)
	if err != nil {
		badRequest(c, "invalid ends (RFC3339)")
		return domain.Event{}, false
	}
	return domain.Event{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Starts:      starts,
		Ends:        ends,
		Venue: domain.Venue{
			Name:    req.Venue.Name,
			Address: req.Venue.Address,
			City:    req.Venue.City,
			MapURL:  req.Venue.MapURL,
		},
		Organizer: domain.Organizer{
			Name:        req.Organizer.Name,
			Description: req.Organizer.Description,
			Contact:     req.Organizer.Contact,
		},
	}, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	var belowMin pricing.BelowMinimumError
	var badAttendee checkout.InvalidAttendeeError

	switch {
	// pricing service
	case errors.Is(err, pricing.ErrInvalidCode):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid coupon code"})
		return
	case errors.Is(err, pricing.ErrLimitReached):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "coupon usage limit reached"})
		return
	case errors.Is(err, pricing.ErrExpired):
		c.JSON(http.StatusGone, ErrorResponse{Error: "coupon expired"})
		return
	case errors.As(err, &belowMin):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: belowMin.Error()})
		return
	case errors.Is(err, pricing.ErrRateLimited):
		c.Header("Retry-After", "60")
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate limited"})
		return
	// checkout service
	case errors.Is(err, checkout.ErrIncompleteCheckout):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusConflict, RedirectResponse{
			Error:    "cart is empty",
			Redirect: "/events",
		})
		return
	case errors.Is(err, checkout.ErrInvalidStep):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "step out of range"})
		return
	case errors.Is(err, checkout.ErrInvalidPayment):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported payment method"})
		return
	case errors.As(err, &badAttendee):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: badAttendee.Error()})
		return
	case errors.Is(err, checkout.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "order not found"})
		return
	// catalog service
	case errors.Is(err, catalog.ErrEventNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "event not found"})
		return
	// organizer service
	case errors.Is(err, organizer.ErrEventNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "event not found"})
		return
	// repositories
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "conflict"})
		return
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
