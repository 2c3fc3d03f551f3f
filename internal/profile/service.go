// Package profile reads and updates the current user's own profile.
package profile

import (
	"context"
	"sync"

	"github.com/mkravets/sparkle/internal/api"
	"github.com/mkravets/sparkle/internal/logging"
	"github.com/mkravets/sparkle/internal/models"
)

const genericProfileError = "Failed to load profile"
const genericUpdateError = "Failed to update profile"

// API is the slice of the backend client this service needs.
type API interface {
	MyProfile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error)
	PublicProfile(ctx context.Context, userID int64) (*models.PublicProfile, error)
}

// State is a point-in-time copy for views.
type State struct {
	Profile *models.Profile
	Loading bool
	Err     string
}

// Service caches the last successfully fetched profile and keeps it in
// last-known-good form across failures.
type Service struct {
	api API
	log logging.Logger

	mu      sync.Mutex
	profile *models.Profile
	loading bool
	err     string
}

func NewService(a API, log logging.Logger) *Service {
	return &Service{api: a, log: log.With("component", "profile")}
}

// Snapshot returns a copy of the current state.
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Profile: s.profile, Loading: s.loading, Err: s.err}
}

// Get fetches the own profile. On failure the previously loaded profile,
// if any, is kept.
func (s *Service) Get(ctx context.Context) (*models.Profile, error) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	p, err := s.api.MyProfile(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = api.Message(err, genericProfileError)
		return nil, err
	}
	s.profile = p
	return p, nil
}

// Update applies a partial update. Nil fields stay unchanged server-side;
// non-nil empty values clear their field. The cached profile is replaced
// only on success.
func (s *Service) Update(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	if update.IsZero() {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.profile, nil
	}

	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	p, err := s.api.UpdateProfile(ctx, update)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = api.Message(err, genericUpdateError)
		return nil, err
	}
	s.profile = p
	s.log.Info(ctx, "profile updated", "user_id", p.UserID)
	return p, nil
}

// Public fetches another user's public profile. Not cached.
func (s *Service) Public(ctx context.Context, userID int64) (*models.PublicProfile, error) {
	return s.api.PublicProfile(ctx, userID)
}

// ClearError dismisses the last failure message.
func (s *Service) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}
