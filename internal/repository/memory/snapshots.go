package memory

import (
	"context"
	"sync"

	"github.com/kelvish/storetix/internal/domain"
)

// CartSnapshots is the in-memory stand-in for the durable cart store,
// used when no Redis is configured and by tests.
type CartSnapshots struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartItem
}

func NewCartSnapshots() *CartSnapshots {
	return &CartSnapshots{carts: make(map[string][]domain.CartItem)}
}

func (s *CartSnapshots) Load(ctx context.Context, cartID string) ([]domain.CartItem, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.carts[cartID]
	if !ok {
		return nil, false, nil
	}

	out := make([]domain.CartItem, len(items))
	copy(out, items)

	return out, true, nil
}

func (s *CartSnapshots) Save(ctx context.Context, cartID string, items []domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]domain.CartItem, len(items))
	copy(cp, items)
	s.carts[cartID] = cp

	return nil
}

func (s *CartSnapshots) Delete(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, cartID)

	return nil
}

// UserSnapshots is the in-memory stand-in for the durable user store.
type UserSnapshots struct {
	mu    sync.RWMutex
	users map[string]domain.UserState
}

func NewUserSnapshots() *UserSnapshots {
	return &UserSnapshots{users: make(map[string]domain.UserState)}
}

func (s *UserSnapshots) Load(ctx context.Context, sessionID string) (domain.UserState, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.users[sessionID]
	return state, ok, nil
}

func (s *UserSnapshots) Save(ctx context.Context, sessionID string, state domain.UserState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[sessionID] = state

	return nil
}

func (s *UserSnapshots) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, sessionID)

	return nil
}
