package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kelvish/storetix/internal/domain"
)

// SnapshotRepo is the durable key-value store behind the cart. Only the item
// list is snapshotted; UI flags like the drawer state never reach it.
type SnapshotRepo interface {
	Load(ctx context.Context, cartID string) ([]domain.CartItem, bool, error)
	Save(ctx context.Context, cartID string, items []domain.CartItem) error
	Delete(ctx context.Context, cartID string) error
}

// Service owns the ordered line-item collection of each cart. Every mutation
// writes a fresh snapshot; reads hydrate from the store, so a cart survives
// reloads and restarts.
type Service struct {
	snapshots SnapshotRepo
}

func New(snapshots SnapshotRepo) *Service {
	return &Service{snapshots: snapshots}
}

// Items returns the cart's line items in insertion order.
func (s *Service) Items(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	const op = "service.cart.Items"

	items, _, err := s.snapshots.Load(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// AddItem assigns a fresh line ID and appends the item. The ID combines the
// event and tier references with a random suffix, unique across the cart's
// lifetime.
func (s *Service) AddItem(ctx context.Context, cartID string, item domain.CartItem) (domain.CartItem, error) {
	const op = "service.cart.AddItem"

	items, _, err := s.snapshots.Load(ctx, cartID)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("%s: %w", op, err)
	}

	item.ID = lineID(item.EventID, item.TierID)
	items = append(items, item)

	if err := s.snapshots.Save(ctx, cartID, items); err != nil {
		return domain.CartItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// RemoveItem deletes the matching line; removing an absent ID is a no-op.
func (s *Service) RemoveItem(ctx context.Context, cartID, id string) error {
	const op = "service.cart.RemoveItem"

	items, found, err := s.snapshots.Load(ctx, cartID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil
	}

	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}

	if err := s.snapshots.Save(ctx, cartID, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes
// the line entirely.
func (s *Service) UpdateQuantity(ctx context.Context, cartID, id string, quantity int) error {
	const op = "service.cart.UpdateQuantity"

	if quantity <= 0 {
		return s.RemoveItem(ctx, cartID, id)
	}

	items, found, err := s.snapshots.Load(ctx, cartID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return nil
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			break
		}
	}

	if err := s.snapshots.Save(ctx, cartID, items); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context, cartID string) error {
	const op = "service.cart.Clear"

	if err := s.snapshots.Delete(ctx, cartID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Subtotal is the sum of price*quantity over all lines, in cents.
func (s *Service) Subtotal(ctx context.Context, cartID string) (int64, error) {
	const op = "service.cart.Subtotal"

	items, _, err := s.snapshots.Load(ctx, cartID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int64
	for _, it := range items {
		total += it.PriceCents * int64(it.Quantity)
	}

	return total, nil
}

// ItemCount is the sum of quantities over all lines.
func (s *Service) ItemCount(ctx context.Context, cartID string) (int, error) {
	const op = "service.cart.ItemCount"

	items, _, err := s.snapshots.Load(ctx, cartID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	for _, it := range items {
		count += it.Quantity
	}

	return count, nil
}

func lineID(eventID, tierID string) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s-%s-%s", eventID, tierID, suffix)
}
