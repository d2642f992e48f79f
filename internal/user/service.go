package user

import (
	"context"
	"fmt"

	"github.com/kelvish/storetix/internal/domain"
)

// SnapshotRepo is the durable "user" entry: login flag plus profile.
type SnapshotRepo interface {
	Load(ctx context.Context, sessionID string) (domain.UserState, bool, error)
	Save(ctx context.Context, sessionID string, state domain.UserState) error
	Delete(ctx context.Context, sessionID string) error
}

type Service struct {
	snapshots SnapshotRepo
}

func New(snapshots SnapshotRepo) *Service {
	return &Service{snapshots: snapshots}
}

func (s *Service) State(ctx context.Context, sessionID string) (domain.UserState, error) {
	const op = "service.user.State"

	state, _, err := s.snapshots.Load(ctx, sessionID)
	if err != nil {
		return domain.UserState{}, fmt.Errorf("%s: %w", op, err)
	}

	return state, nil
}

// Login stores the profile and flips the logged-in flag. There is no
// credential check; the storefront has no authentication.
func (s *Service) Login(ctx context.Context, sessionID string, profile domain.UserProfile) error {
	const op = "service.user.Login"

	state := domain.UserState{IsLoggedIn: true, Profile: &profile}

	if err := s.snapshots.Save(ctx, sessionID, state); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	const op = "service.user.Logout"

	if err := s.snapshots.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateProfile merges non-zero fields into the stored profile. A no-op when
// nobody is logged in.
func (s *Service) UpdateProfile(ctx context.Context, sessionID string, updates domain.UserProfile) (*domain.UserProfile, error) {
	const op = "service.user.UpdateProfile"

	state, found, err := s.snapshots.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found || !state.IsLoggedIn || state.Profile == nil {
		return nil, nil
	}

	p := state.Profile
	if updates.FirstName != "" {
		p.FirstName = updates.FirstName
	}
	if updates.LastName != "" {
		p.LastName = updates.LastName
	}
	if updates.Email != "" {
		p.Email = updates.Email
	}
	if updates.Phone != "" {
		p.Phone = updates.Phone
	}
	if updates.DateOfBirth != "" {
		p.DateOfBirth = updates.DateOfBirth
	}
	if updates.Preferences.Categories != nil || updates.Preferences.Language != "" ||
		updates.Preferences.Newsletter || updates.Preferences.SMSNotifications ||
		updates.Preferences.EmailNotifications {
		p.Preferences = updates.Preferences
	}

	if err := s.snapshots.Save(ctx, sessionID, state); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}
