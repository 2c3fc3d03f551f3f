// Package session owns authentication state: who is logged in, whether the
// first hydration attempt has run, and the lifecycle of the stored session
// token. Every protected view gates on this package's state.
package session

import (
	"context"
	"sync"

	"github.com/mkravets/sparkle/internal/api"
	"github.com/mkravets/sparkle/internal/logging"
	"github.com/mkravets/sparkle/internal/models"
	"github.com/mkravets/sparkle/internal/token"
)

// Fallback messages shown when a failure carries no backend detail.
const (
	genericLoginError    = "Unable to sign in"
	genericRegisterError = "Unable to create account"
	genericLogoutError   = "Sign-out request failed"
	expiredSessionError  = "Session expired, please sign in again"
)

// API is the slice of the backend client the session manager needs.
type API interface {
	Login(ctx context.Context, creds models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, payload models.RegisterRequest) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// State is a point-in-time copy of the session for views to render.
// Err is the last user-visible failure message; empty means none.
type State struct {
	User            *models.User
	IsAuthenticated bool
	Initializing    bool
	Loading         bool
	HasHydrated     bool
	Err             string
}

// Manager is the single source of truth for the authenticated identity.
//
// All state transitions happen under one mutex; network calls run outside
// it so a slow backend never blocks readers. IsAuthenticated implies a
// non-nil User at all times. HasHydrated is monotonic: once true it never
// resets, and Hydrate becomes a permanent no-op.
type Manager struct {
	api    API
	tokens token.Store
	log    logging.Logger

	mu            sync.Mutex
	user          *models.User
	authenticated bool
	initializing  bool
	loading       bool
	hasHydrated   bool
	err           string
}

// NewManager wires a Manager to the backend client and the token store.
func NewManager(a API, tokens token.Store, log logging.Logger) *Manager {
	return &Manager{api: a, tokens: tokens, log: log.With("component", "session")}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{
		User:            m.user,
		IsAuthenticated: m.authenticated,
		Initializing:    m.initializing,
		Loading:         m.loading,
		HasHydrated:     m.hasHydrated,
		Err:             m.err,
	}
}

// IsAuthenticated reports whether a user is currently signed in.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authenticated
}

// Hydrate attempts to restore a session from a previously stored token.
//
// Idempotent: if hydration already ran, or is in flight, the call returns
// immediately without side effects, so any number of concurrent callers
// produce at most one backend call. Whatever the outcome, Initializing is
// false and HasHydrated is true once the call settles.
func (m *Manager) Hydrate(ctx context.Context) {
	m.mu.Lock()
	if m.hasHydrated || m.initializing {
		m.mu.Unlock()
		return
	}
	m.initializing = true
	m.mu.Unlock()

	var (
		user *models.User
		err  error
	)
	if m.tokens.Get() == "" {
		err = api.ErrUnauthorized
	} else {
		user, err = m.api.Me(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() {
		m.initializing = false
		m.hasHydrated = true
	}()

	if err != nil {
		m.tokens.Clear()
		m.user = nil
		m.authenticated = false
		m.log.Info(ctx, "hydration ended unauthenticated", "error", err)
		return
	}
	m.user = user
	m.authenticated = true
	m.err = ""
	m.log.Info(ctx, "session restored", "user_id", user.ID)
}

// Login exchanges credentials for a session. On success the token is stored
// and the user returned. On failure the extracted backend message lands in
// Err and the error is returned so the caller can keep its form open.
func (m *Manager) Login(ctx context.Context, creds models.LoginRequest) (*models.User, error) {
	m.mu.Lock()
	m.loading = true
	m.err = ""
	m.mu.Unlock()

	resp, err := m.api.Login(ctx, creds)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.authenticated = false
		m.err = api.Message(err, genericLoginError)
		return nil, err
	}

	m.tokens.Set(resp.Token)
	m.user = &resp.User
	m.authenticated = true
	m.err = ""
	m.log.Info(ctx, "signed in", "user_id", resp.User.ID)
	return m.user, nil
}

// Register creates an account; contract identical to Login.
func (m *Manager) Register(ctx context.Context, payload models.RegisterRequest) (*models.User, error) {
	m.mu.Lock()
	m.loading = true
	m.err = ""
	m.mu.Unlock()

	resp, err := m.api.Register(ctx, payload)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.authenticated = false
		m.err = api.Message(err, genericRegisterError)
		return nil, err
	}

	m.tokens.Set(resp.Token)
	m.user = &resp.User
	m.authenticated = true
	m.err = ""
	m.log.Info(ctx, "account created", "user_id", resp.User.ID)
	return m.user, nil
}

// Logout signs out. The backend call is best-effort: its failure message is
// recorded in Err, but the local session and stored token are cleared
// unconditionally. Local logout is never blocked by the backend.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()

	err := m.api.Logout(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.err = api.Message(err, genericLogoutError)
		m.log.Warn(ctx, "backend logout failed, clearing local session anyway", "error", err)
	}
	m.tokens.Clear()
	m.user = nil
	m.authenticated = false
}

// ClearError dismisses the last failure message.
func (m *Manager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = ""
}

// HandleUnauthorized is the hook for the API client's global 401 handler.
// The client has already cleared the token store by the time it fires; this
// drops the in-memory identity so the app lands on the sign-in view.
func (m *Manager) HandleUnauthorized() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.authenticated {
		return
	}
	m.user = nil
	m.authenticated = false
	m.err = expiredSessionError
}
