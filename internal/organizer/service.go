package organizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kelvish/storetix/internal/domain"
	"github.com/kelvish/storetix/internal/repository"
)

type Repository interface {
	List(ctx context.Context) ([]domain.OrganizerEvent, error)
	Get(ctx context.Context, id string) (*domain.OrganizerEvent, error)
	Create(ctx context.Context, ev domain.OrganizerEvent) error
	Update(ctx context.Context, ev domain.OrganizerEvent) error
	Delete(ctx context.Context, id string) error
}

// Publisher pushes a published organizer event into the public catalog and
// announces the change for cache invalidation.
type Publisher interface {
	PutEvent(ctx context.Context, ev domain.Event) error
	RemoveEvent(ctx context.Context, id string) error
}

type Announcer interface {
	PublishCatalogChanged(ctx context.Context, slug, eventID string) error
}

// Service backs the organizer dashboard: draft events, edits, publication.
type Service struct {
	repo      Repository
	catalog   Publisher
	announcer Announcer
}

func New(repo Repository, catalog Publisher, announcer Announcer) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		announcer: announcer,
	}
}

func (s *Service) ListEvents(ctx context.Context) ([]domain.OrganizerEvent, error) {
	const op = "service.organizer.ListEvents"

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *Service) GetEvent(ctx context.Context, id string) (*domain.OrganizerEvent, error) {
	const op = "service.organizer.GetEvent"

	ev, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrEventNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ev, nil
}

// CreateEvent stores a new draft with a fresh "org-" ID and timestamps.
func (s *Service) CreateEvent(ctx context.Context, ev domain.Event) (*domain.OrganizerEvent, error) {
	const op = "service.organizer.CreateEvent"

	now := time.Now()
	ev.ID = "org-" + uuid.NewString()
	if ev.Slug == "" {
		ev.Slug = ev.ID
	}

	orgEvent := domain.OrganizerEvent{
		Event:     ev,
		Status:    domain.OrganizerDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, orgEvent); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &orgEvent, nil
}

// UpdateEvent overwrites the event's catalog fields and bumps UpdatedAt.
func (s *Service) UpdateEvent(ctx context.Context, id string, ev domain.Event) (*domain.OrganizerEvent, error) {
	const op = "service.organizer.UpdateEvent"

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrEventNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ev.ID = current.ID
	if ev.Slug == "" {
		ev.Slug = current.Slug
	}

	updated := domain.OrganizerEvent{
		Event:     ev,
		Status:    current.Status,
		CreatedAt: current.CreatedAt,
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if updated.Status == domain.OrganizerPublished {
		if err := s.catalog.PutEvent(ctx, updated.Event); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		s.announce(ctx, updated.Slug, updated.ID)
	}

	return &updated, nil
}

// DeleteEvent removes the event from the dashboard and, when it was
// published, from the public catalog.
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	const op = "service.organizer.DeleteEvent"

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrEventNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if current.Status == domain.OrganizerPublished {
		_ = s.catalog.RemoveEvent(ctx, id)
		s.announce(ctx, current.Slug, current.ID)
	}

	return nil
}

// PublishEvent flips the event to published and pushes it into the catalog.
func (s *Service) PublishEvent(ctx context.Context, id string) (*domain.OrganizerEvent, error) {
	const op = "service.organizer.PublishEvent"

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrEventNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	current.Status = domain.OrganizerPublished
	current.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, *current); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.catalog.PutEvent(ctx, current.Event); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.announce(ctx, current.Slug, current.ID)

	return current, nil
}

func (s *Service) announce(ctx context.Context, slug, eventID string) {
	if s.announcer != nil {
		_ = s.announcer.PublishCatalogChanged(ctx, slug, eventID)
	}
}
