package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelvish/storetix/internal/catalog"
	"github.com/kelvish/storetix/internal/checkout"
	"github.com/kelvish/storetix/internal/config"
	"github.com/kelvish/storetix/internal/domain"
	redisx "github.com/kelvish/storetix/internal/redis"
	"github.com/kelvish/storetix/internal/repository/memory"
	redisrepo "github.com/kelvish/storetix/internal/repository/redis"
	"github.com/kelvish/storetix/internal/service"
	httpgin "github.com/kelvish/storetix/internal/transport/http/gin"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	services   *service.Services
	pubsub     *redisx.CatalogPubSub
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize dependencies
	rdb, err := redisx.New(context.Background(), redisx.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	cache := redisrepo.New(rdb)
	cartSnapshots := redisrepo.NewCartSnapshots(rdb)
	userSnapshots := redisrepo.NewUserSnapshots(rdb)
	limiter := redisrepo.NewSlidingWindowLimiter(
		rdb,
		"coupon",
		cfg.Coupons.ApplyLimit,
		cfg.Coupons.ApplyWindow,
	)
	idempotencyStore := redisrepo.NewIdempotencyStore(rdb, 2*time.Hour)
	pubsub := redisx.NewCatalogPubSub(rdb)

	catalogRepo := memory.NewCatalog(
		memory.SeedEvents(),
		memory.SeedTiers(),
		memory.SeedSeatSections(),
	)
	coupons := memory.NewCoupons(memory.SeedCoupons())
	organizerRepo := memory.NewOrganizerEvents()

	// Initialize services
	services := service.NewServices(service.Deps{
		Coupons:       coupons,
		CouponLimiter: limiter,
		CartSnapshots: cartSnapshots,
		UserSnapshots: userSnapshots,
		CatalogRepo:   catalogRepo,
		CatalogPub:    catalogRepo,
		OrganizerRepo: organizerRepo,
		Announcer:     pubsub,
		Cache:         cache,
	}, service.Config{
		Fees: domain.FeeConfig{
			VATPercent: cfg.Fees.VATPercent,
			DisplayVAT: cfg.Fees.DisplayVAT,
			Currency:   cfg.Fees.Currency,
		},
		Checkout: checkout.Config{ProcessingDelay: cfg.Checkout.ProcessingDelay},
		Catalog:  catalog.Config{},
	})

	// Initialize Gin router
	router := httpgin.NewRouter(services, idempotencyStore, logger)

	return &App{
		cfg:      cfg,
		logger:   logger,
		services: services,
		pubsub:   pubsub,
		httpServer: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler: router,
		},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server
	g.Go(func() error {
		a.logger.Info("HTTP server listening", "host", a.cfg.Server.Host, "port", a.cfg.Server.Port)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	})

	// Cache invalidation on catalog changes from any instance
	g.Go(func() error {
		err := a.pubsub.Subscribe(gCtx, func(ctx context.Context, slug, eventID string) {
			a.services.Catalog.Invalidate(ctx, slug, eventID)
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return a.httpServer.Shutdown(ctx)
	})

	return g.Wait()
}
