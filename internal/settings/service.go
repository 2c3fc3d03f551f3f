// Package settings toggles account visibility: closing a profile hides it
// from everyone's feed, reopening restores it.
package settings

import (
	"context"

	"github.com/mkravets/sparkle/internal/logging"
	"github.com/mkravets/sparkle/internal/models"
)

// API is the slice of the backend client this service needs.
type API interface {
	CloseProfile(ctx context.Context) (*models.ProfileVisibility, error)
	ReopenProfile(ctx context.Context) (*models.ProfileVisibility, error)
}

// Refresher is anything whose local state should be rebuilt after a
// visibility change; the discovery engine satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Service applies visibility changes and refreshes dependent state.
type Service struct {
	api  API
	feed Refresher
	log  logging.Logger
}

// NewService wires the settings calls. feed may be nil when nothing needs
// refreshing after a change.
func NewService(a API, feed Refresher, log logging.Logger) *Service {
	return &Service{api: a, feed: feed, log: log.With("component", "settings")}
}

// CloseProfile hides the profile. The discovery queue is refreshed on
// success so it reflects the new visibility; a refresh failure does not
// undo the visibility change and surfaces through the feed's own error
// channel.
func (s *Service) CloseProfile(ctx context.Context) (*models.ProfileVisibility, error) {
	v, err := s.api.CloseProfile(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "profile closed", "is_active", v.IsActive)
	s.refresh(ctx)
	return v, nil
}

// ReopenProfile makes the profile visible again. Same refresh behavior as
// CloseProfile.
func (s *Service) ReopenProfile(ctx context.Context) (*models.ProfileVisibility, error) {
	v, err := s.api.ReopenProfile(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "profile reopened", "is_active", v.IsActive)
	s.refresh(ctx)
	return v, nil
}

func (s *Service) refresh(ctx context.Context) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Refresh(ctx); err != nil {
		s.log.Warn(ctx, "feed refresh after visibility change failed", "error", err)
	}
}
