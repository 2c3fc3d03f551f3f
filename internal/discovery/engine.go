// Package discovery manages the swipeable candidate queue: pagination,
// like/skip transitions, mutual-match detection, and automatic
// replenishment when the queue runs dry.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mkravets/sparkle/internal/api"
	"github.com/mkravets/sparkle/internal/logging"
	"github.com/mkravets/sparkle/internal/models"
)

// ErrLikePending is returned when an action targets a candidate that
// already has a like in flight. The caller should wait for the first
// action to settle rather than race it.
var ErrLikePending = errors.New("like already in flight for this candidate")

// ErrNotInQueue is returned when the targeted candidate is not (or no
// longer) in the local queue.
var ErrNotInQueue = errors.New("candidate not in queue")

// Fallback messages for failures without backend detail.
const (
	genericFeedError = "Failed to load feed"
	genericLikeError = "Failed to send like"
)

// API is the slice of the backend client the engine needs.
type API interface {
	Feed(ctx context.Context, page, size int) (*models.FeedPage, error)
	Like(ctx context.Context, userID int64) (*models.LikeResult, error)
	Skip(ctx context.Context, userID int64) error
}

// State is a point-in-time copy of the engine for views to render.
// Queue index 0 is the candidate currently shown.
type State struct {
	Queue       []models.Candidate
	Page        int
	HasNext     bool
	Loading     bool
	LoadingMore bool
	Err         string
}

// Engine owns the candidate queue for one session.
//
// The queue is unique by UserID and strictly FIFO: new pages append at the
// tail, candidates leave only by being liked or skipped, and a candidate
// that left never re-enters in the same session. Mutations are serialized
// by a mutex; backend calls run outside it, so every async gap re-checks
// that the candidate it acted on is still present before mutating.
type Engine struct {
	api      API
	log      logging.Logger
	pageSize int

	mu          sync.Mutex
	queue       []models.Candidate
	page        int
	hasNext     bool
	loading     bool
	loadingMore bool
	err         string
	likePending map[int64]struct{}
	seen        map[int64]struct{}
}

// NewEngine creates an empty engine. pageSize is the fixed page size for
// every feed request.
func NewEngine(a API, pageSize int, log logging.Logger) *Engine {
	return &Engine{
		api:         a,
		log:         log.With("component", "discovery"),
		pageSize:    pageSize,
		likePending: make(map[int64]struct{}),
		seen:        make(map[int64]struct{}),
	}
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	queue := make([]models.Candidate, len(e.queue))
	copy(queue, e.queue)
	return State{
		Queue:       queue,
		Page:        e.page,
		HasNext:     e.hasNext,
		Loading:     e.loading,
		LoadingMore: e.loadingMore,
		Err:         e.err,
	}
}

// Current returns the head of the queue, if any.
func (e *Engine) Current() (models.Candidate, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return models.Candidate{}, false
	}
	return e.queue[0], true
}

// LoadFeed fetches one page of candidates. With appendPage false the queue
// is replaced wholesale; with appendPage true the fetched candidates are
// concatenated after the existing queue, deduplicated by UserID (first
// occurrence wins, and candidates already swiped away this session never
// come back). On failure the queue is untouched and the error message is
// stored. The loading flag in use is released on every exit path.
func (e *Engine) LoadFeed(ctx context.Context, page int, appendPage bool) error {
	if page < 1 {
		return fmt.Errorf("page must be >= 1, got %d", page)
	}

	e.mu.Lock()
	if appendPage {
		if e.loadingMore {
			e.mu.Unlock()
			return nil
		}
		e.loadingMore = true
	} else {
		if e.loading {
			e.mu.Unlock()
			return nil
		}
		e.loading = true
	}
	e.err = ""
	e.mu.Unlock()

	resp, err := e.api.Feed(ctx, page, e.pageSize)

	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() {
		if appendPage {
			e.loadingMore = false
		} else {
			e.loading = false
		}
	}()

	if err != nil {
		e.err = api.Message(err, genericFeedError)
		e.log.Warn(ctx, "feed load failed", "page", page, "error", err)
		return err
	}

	if !appendPage {
		e.queue = e.queue[:0]
		e.seen = make(map[int64]struct{})
	}
	added := 0
	for _, c := range resp.Profiles {
		if _, dup := e.seen[c.UserID]; dup {
			continue
		}
		e.seen[c.UserID] = struct{}{}
		e.queue = append(e.queue, c)
		added++
	}
	e.page = resp.Page
	e.hasNext = resp.HasNext
	e.log.Info(ctx, "feed page loaded", "page", resp.Page, "added", added, "has_next", resp.HasNext)
	return nil
}

// Refresh fully resets the queue and pagination cursor from page 1. Used
// after visibility changes and on explicit user request.
func (e *Engine) Refresh(ctx context.Context) error {
	return e.LoadFeed(ctx, 1, false)
}

// Like sends a like for the given candidate. At most one like per candidate
// is ever in flight; a concurrent second call gets ErrLikePending and no
// backend call happens. On success the candidate leaves the queue (by id,
// not position) and the result reports whether the like was mutual. On
// failure the candidate stays where it was so the user can retry.
func (e *Engine) Like(ctx context.Context, userID int64) (*models.LikeResult, error) {
	e.mu.Lock()
	if !e.inQueueLocked(userID) {
		e.mu.Unlock()
		return nil, ErrNotInQueue
	}
	if _, pending := e.likePending[userID]; pending {
		e.mu.Unlock()
		return nil, ErrLikePending
	}
	e.likePending[userID] = struct{}{}
	e.err = ""
	e.mu.Unlock()

	res, err := e.api.Like(ctx, userID)

	e.mu.Lock()
	delete(e.likePending, userID)
	if err != nil {
		e.err = api.Message(err, genericLikeError)
		e.mu.Unlock()
		return nil, err
	}
	e.removeLocked(userID)
	needMore, nextPage := e.needReplenishLocked()
	e.mu.Unlock()

	e.log.Info(ctx, "liked", "user_id", userID, "mutual", res.Mutual)
	if needMore {
		// Replenishment failures surface through the feed error channel
		// like any other load failure; the like itself already succeeded.
		_ = e.LoadFeed(ctx, nextPage, true)
	}
	return res, nil
}

// Skip removes the candidate locally and tells the backend on a best-effort
// basis. The local removal is never rolled back: skip is a feed-quality
// hint, not a correctness-critical operation.
func (e *Engine) Skip(ctx context.Context, userID int64) error {
	e.mu.Lock()
	if _, pending := e.likePending[userID]; pending {
		e.mu.Unlock()
		return ErrLikePending
	}
	if !e.inQueueLocked(userID) {
		e.mu.Unlock()
		return ErrNotInQueue
	}
	e.removeLocked(userID)
	needMore, nextPage := e.needReplenishLocked()
	e.mu.Unlock()

	if err := e.api.Skip(ctx, userID); err != nil {
		e.log.Warn(ctx, "skip notification failed", "user_id", userID, "error", err)
	}
	if needMore {
		_ = e.LoadFeed(ctx, nextPage, true)
	}
	return nil
}

// ClearError dismisses the last failure message.
func (e *Engine) ClearError() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.err = ""
}

func (e *Engine) inQueueLocked(userID int64) bool {
	for _, c := range e.queue {
		if c.UserID == userID {
			return true
		}
	}
	return false
}

func (e *Engine) removeLocked(userID int64) {
	for i, c := range e.queue {
		if c.UserID == userID {
			e.queue = append(e.queue[:i], e.queue[i+1:]...)
			return
		}
	}
}

func (e *Engine) needReplenishLocked() (bool, int) {
	if len(e.queue) == 0 && e.hasNext {
		return true, e.page + 1
	}
	return false, 0
}
