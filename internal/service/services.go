package service

import (
	"github.com/kelvish/storetix/internal/cart"
	"github.com/kelvish/storetix/internal/catalog"
	"github.com/kelvish/storetix/internal/checkout"
	"github.com/kelvish/storetix/internal/domain"
	"github.com/kelvish/storetix/internal/organizer"
	"github.com/kelvish/storetix/internal/pricing"
	redisrepo "github.com/kelvish/storetix/internal/repository/redis"
	"github.com/kelvish/storetix/internal/user"
)

type Services struct {
	Pricing   *pricing.Service
	Cart      *cart.Service
	Checkout  *checkout.Service
	Catalog   *catalog.Service
	Organizer *organizer.Service
	User      *user.Service
}

type Config struct {
	Fees     domain.FeeConfig
	Checkout checkout.Config
	Catalog  catalog.Config
}

// Deps collects every store the services are built on. The composition root
// owns construction; nothing here is a package-level singleton.
type Deps struct {
	Coupons       pricing.CouponRepository
	CouponLimiter pricing.Limiter
	CartSnapshots cart.SnapshotRepo
	UserSnapshots user.SnapshotRepo
	CatalogRepo   catalog.Repository
	CatalogPub    organizer.Publisher
	OrganizerRepo organizer.Repository
	Announcer     organizer.Announcer
	Cache         *redisrepo.Cache
}

func NewServices(deps Deps, cfg Config) *Services {
	pricingSvc := pricing.New(deps.Coupons, deps.CouponLimiter, cfg.Fees)
	cartSvc := cart.New(deps.CartSnapshots)

	return &Services{
		Pricing:   pricingSvc,
		Cart:      cartSvc,
		Checkout:  checkout.New(cartSvc, pricingSvc, cfg.Checkout),
		Catalog:   catalog.New(deps.CatalogRepo, deps.Cache, cfg.Catalog),
		Organizer: organizer.New(deps.OrganizerRepo, deps.CatalogPub, deps.Announcer),
		User:      user.New(deps.UserSnapshots),
	}
}
