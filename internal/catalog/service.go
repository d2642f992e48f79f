package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kelvish/storetix/internal/domain"
	redisx "github.com/kelvish/storetix/internal/redis"
	"github.com/kelvish/storetix/internal/repository"
	redisrepo "github.com/kelvish/storetix/internal/repository/redis"
)

type Repository interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error)
	ListTiers(ctx context.Context, eventID string) ([]domain.TicketTier, error)
	ListSeatSections(ctx context.Context, eventID string) ([]domain.SeatSection, error)
}

type Config struct {
	EventSummaryTTL time.Duration
	TiersTTL        time.Duration
	SeatMapTTL      time.Duration
}

// Service answers event discovery: listing with filters and sorting, plus the
// per-event detail, tier and seat-map reads. Detail reads go through the
// cache when one is wired.
type Service struct {
	repo  Repository
	cache *redisrepo.Cache
	cfg   Config
}

func New(repo Repository, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.EventSummaryTTL <= 0 {
		cfg.EventSummaryTTL = 60 * time.Second
	}

	if cfg.TiersTTL <= 0 {
		cfg.TiersTTL = 60 * time.Second
	}

	if cfg.SeatMapTTL <= 0 {
		cfg.SeatMapTTL = 15 * time.Second
	}

	return &Service{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}

// ListEvents applies the filter and sort order to the catalog.
func (s *Service) ListEvents(ctx context.Context, f Filter) ([]domain.Event, error) {
	const op = "service.catalog.ListEvents"

	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}

	minPrices := make(map[string]int64, len(events))
	needPrices := f.active(f.PriceRange) || f.SortBy == "price-asc" || f.SortBy == "price-desc"
	if needPrices {
		for _, ev := range events {
			price, ok, err := s.minTierPrice(ctx, ev.ID)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			if ok {
				minPrices[ev.ID] = price
			}
		}
	}

	filtered := events[:0]
	for _, ev := range events {
		if f.active(f.Query) && !matchQuery(ev, f.Query) {
			continue
		}

		if f.active(f.Category) && ev.Category != f.Category {
			continue
		}

		if f.active(f.City) && citySlug(ev.Venue.City) != f.City {
			continue
		}

		if f.active(f.DateRange) && !matchDateRange(f.DateRange, ev.Starts, now) {
			continue
		}

		if f.active(f.PriceRange) {
			price, ok := minPrices[ev.ID]
			if !ok || !matchPriceRange(f.PriceRange, price) {
				continue
			}
		}

		filtered = append(filtered, ev)
	}

	sortEvents(filtered, f.SortBy, minPrices)

	return filtered, nil
}

// GetEvent resolves an event by slug, through the cache when available.
//
// Returns:
//   - *domain.Event: the event.
//   - error: catalog.ErrEventNotFound when the slug is unknown.
func (s *Service) GetEvent(ctx context.Context, slug string) (*domain.Event, error) {
	const op = "service.catalog.GetEvent"

	if s.cache == nil {
		ev, err := s.repo.GetEventBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", op, ErrEventNotFound)
			}

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return ev, nil
	}

	event, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisx.KeyEventSummary(slug),
		s.cfg.EventSummaryTTL,
		func(ctx context.Context) (domain.Event, error) {
			e, err := s.repo.GetEventBySlug(ctx, slug)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.Event{}, ErrEventNotFound
				}

				return domain.Event{}, err
			}

			return *e, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &event, nil
}

// ListTiers returns the ticket tiers of an event, cached when possible.
func (s *Service) ListTiers(ctx context.Context, eventID string) ([]domain.TicketTier, error) {
	const op = "service.catalog.ListTiers"

	if s.cache == nil {
		tiers, err := s.repo.ListTiers(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return tiers, nil
	}

	tiers, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisx.KeyEventTiers(eventID),
		s.cfg.TiersTTL,
		func(ctx context.Context) ([]domain.TicketTier, error) {
			return s.repo.ListTiers(ctx, eventID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tiers, nil
}

// SeatSections returns the seat-map sections of an event, cached when possible.
func (s *Service) SeatSections(ctx context.Context, eventID string) ([]domain.SeatSection, error) {
	const op = "service.catalog.SeatSections"

	if s.cache == nil {
		sections, err := s.repo.ListSeatSections(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return sections, nil
	}

	sections, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisx.KeyEventSeatMap(eventID),
		s.cfg.SeatMapTTL,
		func(ctx context.Context) ([]domain.SeatSection, error) {
			return s.repo.ListSeatSections(ctx, eventID)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sections, nil
}

// Invalidate drops an event's cached entries after a catalog mutation.
func (s *Service) Invalidate(ctx context.Context, slug, eventID string) {
	if s.cache != nil {
		_ = s.cache.InvalidateEvent(ctx, slug, eventID)
	}
}

func (s *Service) minTierPrice(ctx context.Context, eventID string) (int64, bool, error) {
	tiers, err := s.repo.ListTiers(ctx, eventID)
	if err != nil {
		return 0, false, err
	}
	if len(tiers) == 0 {
		return 0, false, nil
	}

	min := tiers[0].PriceCents
	for _, t := range tiers[1:] {
		if t.PriceCents < min {
			min = t.PriceCents
		}
	}

	return min, true, nil
}

func matchQuery(ev domain.Event, query string) bool {
	q := strings.ToLower(query)

	return strings.Contains(strings.ToLower(ev.Title), q) ||
		strings.Contains(strings.ToLower(ev.Description), q) ||
		strings.Contains(strings.ToLower(ev.Venue.Name), q) ||
		strings.Contains(strings.ToLower(ev.Organizer.Name), q)
}

func sortEvents(events []domain.Event, sortBy string, minPrices map[string]int64) {
	switch sortBy {
	case "date-asc":
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Starts.Before(events[j].Starts)
		})
	case "date-desc":
		sort.SliceStable(events, func(i, j int) bool {
			return events[j].Starts.Before(events[i].Starts)
		})
	case "price-asc":
		sort.SliceStable(events, func(i, j int) bool {
			return minPrices[events[i].ID] < minPrices[events[j].ID]
		})
	case "price-desc":
		sort.SliceStable(events, func(i, j int) bool {
			return minPrices[events[j].ID] < minPrices[events[i].ID]
		})
	default: // trending: trending first, then soonest
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].Trending != events[j].Trending {
				return events[i].Trending
			}
			return events[i].Starts.Before(events[j].Starts)
		})
	}
}
