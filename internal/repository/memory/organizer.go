package memory

import (
	"context"
	"sync"

	"github.com/kelvish/storetix/internal/domain"
	"github.com/kelvish/storetix/internal/repository"
)

// OrganizerEvents holds the organizer dashboard's events. Not persisted
// across restarts; organizer state is ephemeral.
type OrganizerEvents struct {
	mu     sync.RWMutex
	events map[string]domain.OrganizerEvent
	order  []string
}

func NewOrganizerEvents() *OrganizerEvents {
	return &OrganizerEvents{events: make(map[string]domain.OrganizerEvent)}
}

func (r *OrganizerEvents) List(ctx context.Context) ([]domain.OrganizerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.OrganizerEvent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.events[id])
	}

	return out, nil
}

func (r *OrganizerEvents) Get(ctx context.Context, id string) (*domain.OrganizerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ev, ok := r.events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &ev, nil
}

func (r *OrganizerEvents) Create(ctx context.Context, ev domain.OrganizerEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[ev.ID]; ok {
		return repository.ErrConflict
	}

	r.events[ev.ID] = ev
	r.order = append(r.order, ev.ID)

	return nil
}

func (r *OrganizerEvents) Update(ctx context.Context, ev domain.OrganizerEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[ev.ID]; !ok {
		return repository.ErrNotFound
	}

	r.events[ev.ID] = ev

	return nil
}

func (r *OrganizerEvents) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return repository.ErrNotFound
	}

	delete(r.events, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
