// Package matches fetches the confirmed mutual matches for the current
// user. The backend is the system of record: the client never derives match
// state from like results, it just refetches this list.
package matches

import (
	"context"
	"sort"

	"github.com/mkravets/sparkle/internal/logging"
	"github.com/mkravets/sparkle/internal/models"
)

// API is the slice of the backend client this service needs.
type API interface {
	Matches(ctx context.Context) (*models.MatchList, error)
}

// Service lists matches, newest first.
type Service struct {
	api API
	log logging.Logger
}

func NewService(a API, log logging.Logger) *Service {
	return &Service{api: a, log: log.With("component", "matches")}
}

// List returns every mutual match sorted by creation time, newest first.
// Ties keep the backend's order.
func (s *Service) List(ctx context.Context) ([]models.Match, error) {
	resp, err := s.api.Matches(ctx)
	if err != nil {
		return nil, err
	}
	out := append([]models.Match(nil), resp.Matches...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
