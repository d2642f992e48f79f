package memory

import (
	"context"
	"sync"

	"github.com/kelvish/storetix/internal/domain"
	"github.com/kelvish/storetix/internal/repository"
)

// Catalog serves the event, tier and seat-section fixtures. Published
// organizer events are merged in alongside the seed data.
type Catalog struct {
	mu       sync.RWMutex
	events   []domain.Event
	tiers    map[string][]domain.TicketTier  // by event ID
	sections map[string][]domain.SeatSection // by event ID
}

func NewCatalog(events []domain.Event, tiers []domain.TicketTier, sections map[string][]domain.SeatSection) *Catalog {
	byEvent := make(map[string][]domain.TicketTier)
	for _, t := range tiers {
		byEvent[t.EventID] = append(byEvent[t.EventID], t)
	}

	return &Catalog{
		events:   events,
		tiers:    byEvent,
		sections: sections,
	}
}

func (r *Catalog) ListEvents(ctx context.Context) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Event, len(r.events))
	copy(out, r.events)

	return out, nil
}

func (r *Catalog) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.events {
		if e.Slug == slug {
			ev := e
			return &ev, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *Catalog) ListTiers(ctx context.Context, eventID string) ([]domain.TicketTier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tiers, ok := r.tiers[eventID]
	if !ok {
		return nil, nil
	}

	out := make([]domain.TicketTier, len(tiers))
	copy(out, tiers)

	return out, nil
}

func (r *Catalog) ListSeatSections(ctx context.Context, eventID string) ([]domain.SeatSection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sections, ok := r.sections[eventID]
	if !ok {
		return nil, nil
	}

	out := make([]domain.SeatSection, len(sections))
	copy(out, sections)

	return out, nil
}

// PutEvent inserts or replaces an event, keyed by ID. Organizer publications
// land here.
func (r *Catalog) PutEvent(ctx context.Context, ev domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.events {
		if r.events[i].ID == ev.ID {
			r.events[i] = ev
			return nil
		}
	}

	r.events = append(r.events, ev)

	return nil
}

func (r *Catalog) RemoveEvent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}

	return repository.ErrNotFound
}
