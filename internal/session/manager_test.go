package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkravets/sparkle/internal/api"
	"github.com/mkravets/sparkle/internal/logging"
	"github.com/mkravets/sparkle/internal/models"
	"github.com/mkravets/sparkle/internal/token"
)

// ---- fake API ----

// fakeAPI implements the API interface with canned results and call counters.
type fakeAPI struct {
	LoginResp *models.AuthResponse
	LoginErr  error

	RegisterResp *models.AuthResponse
	RegisterErr  error

	MeResp  *models.User
	MeErr   error
	MeCalls atomic.Int64

	LogoutErr   error
	LogoutCalls atomic.Int64

	LastLogin    models.LoginRequest
	LastRegister models.RegisterRequest
}

func (f *fakeAPI) Login(ctx context.Context, creds models.LoginRequest) (*models.AuthResponse, error) {
	f.LastLogin = creds
	return f.LoginResp, f.LoginErr
}

func (f *fakeAPI) Register(ctx context.Context, payload models.RegisterRequest) (*models.AuthResponse, error) {
	f.LastRegister = payload
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeAPI) Me(ctx context.Context) (*models.User, error) {
	f.MeCalls.Add(1)
	return f.MeResp, f.MeErr
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	f.LogoutCalls.Add(1)
	return f.LogoutErr
}

func newManager(f *fakeAPI) (*Manager, *token.MemoryStore) {
	tokens := token.NewMemoryStore()
	return NewManager(f, tokens, logging.NewNopLogger()), tokens
}

// ---- hydration ----

func TestHydrate_Success(t *testing.T) {
	f := &fakeAPI{MeResp: &models.User{ID: 1, Email: "a@b.com"}}
	m, tokens := newManager(f)
	tokens.Set("stored")

	m.Hydrate(context.Background())

	s := m.Snapshot()
	require.True(t, s.IsAuthenticated)
	require.NotNil(t, s.User)
	require.EqualValues(t, 1, s.User.ID)
	require.True(t, s.HasHydrated)
	require.False(t, s.Initializing)
	require.Equal(t, "stored", tokens.Get())
}

func TestHydrate_NoTokenSkipsBackendCall(t *testing.T) {
	f := &fakeAPI{MeResp: &models.User{ID: 1}}
	m, _ := newManager(f)

	m.Hydrate(context.Background())

	s := m.Snapshot()
	require.False(t, s.IsAuthenticated)
	require.Nil(t, s.User)
	require.True(t, s.HasHydrated)
	require.EqualValues(t, 0, f.MeCalls.Load())
}

func TestHydrate_FailureClearsTokenAndTerminatesFlags(t *testing.T) {
	f := &fakeAPI{MeErr: &api.Error{Status: 401, Detail: "Invalid authentication credentials"}}
	m, tokens := newManager(f)
	tokens.Set("expired")

	m.Hydrate(context.Background())

	s := m.Snapshot()
	require.False(t, s.IsAuthenticated)
	require.Nil(t, s.User)
	require.True(t, s.HasHydrated)
	require.False(t, s.Initializing)
	require.Empty(t, tokens.Get())
}

func TestHydrate_IdempotentUnderConcurrency(t *testing.T) {
	f := &fakeAPI{MeResp: &models.User{ID: 5}}
	m, tokens := newManager(f)
	tokens.Set("stored")

	const n = 16
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			m.Hydrate(context.Background())
		}()
	}
	wg.Wait()

	require.EqualValues(t, 1, f.MeCalls.Load(), "exactly one backend call")
	s := m.Snapshot()
	require.True(t, s.HasHydrated)
	require.False(t, s.Initializing)
}

func TestHydrate_SecondCallAfterSettleIsNoOp(t *testing.T) {
	f := &fakeAPI{MeErr: errors.New("network down")}
	m, tokens := newManager(f)
	tokens.Set("stored")

	m.Hydrate(context.Background())
	m.Hydrate(context.Background())

	require.EqualValues(t, 1, f.MeCalls.Load())
	require.True(t, m.Snapshot().HasHydrated)
}

// ---- login / register ----

func TestLogin_Success(t *testing.T) {
	f := &fakeAPI{LoginResp: &models.AuthResponse{
		User:  models.User{ID: 1, Email: "a@b.com"},
		Token: "abc",
	}}
	m, tokens := newManager(f)

	user, err := m.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)
	require.EqualValues(t, 1, user.ID)

	s := m.Snapshot()
	require.True(t, s.IsAuthenticated)
	require.Empty(t, s.Err)
	require.False(t, s.Loading)
	require.Equal(t, "abc", tokens.Get())
	require.Equal(t, "a@b.com", f.LastLogin.Email)
}

func TestLogin_FailureSurfacesBackendMessage(t *testing.T) {
	f := &fakeAPI{LoginErr: &api.Error{Status: 401, Detail: "Invalid credentials"}}
	m, tokens := newManager(f)

	_, err := m.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "wrong"})
	require.Error(t, err)

	s := m.Snapshot()
	require.False(t, s.IsAuthenticated)
	require.False(t, s.Loading)
	require.Equal(t, "Invalid credentials", s.Err)
	require.Empty(t, tokens.Get())
}

func TestLogin_TransportFailureFallsBackToGenericMessage(t *testing.T) {
	f := &fakeAPI{LoginErr: errors.New("dial tcp: connection refused")}
	m, _ := newManager(f)

	_, err := m.Login(context.Background(), models.LoginRequest{})
	require.Error(t, err)
	require.Equal(t, genericLoginError, m.Snapshot().Err)
}

func TestRegister_SuccessStoresToken(t *testing.T) {
	f := &fakeAPI{RegisterResp: &models.AuthResponse{
		User:  models.User{ID: 2, Username: "sam"},
		Token: "fresh",
	}}
	m, tokens := newManager(f)

	user, err := m.Register(context.Background(), models.RegisterRequest{
		Email: "s@m.com", Username: "sam", Password: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "sam", user.Username)
	require.Equal(t, "fresh", tokens.Get())
	require.True(t, m.IsAuthenticated())
}

func TestRegister_FailureKeepsUnauthenticated(t *testing.T) {
	f := &fakeAPI{RegisterErr: &api.Error{Status: 400, Detail: "Username already taken"}}
	m, _ := newManager(f)

	_, err := m.Register(context.Background(), models.RegisterRequest{Username: "sam"})
	require.Error(t, err)
	require.Equal(t, "Username already taken", m.Snapshot().Err)
	require.False(t, m.IsAuthenticated())
}

func TestClearError(t *testing.T) {
	f := &fakeAPI{LoginErr: &api.Error{Status: 401, Detail: "Invalid credentials"}}
	m, _ := newManager(f)

	_, _ = m.Login(context.Background(), models.LoginRequest{})
	require.NotEmpty(t, m.Snapshot().Err)

	m.ClearError()
	require.Empty(t, m.Snapshot().Err)
}

// ---- logout ----

func TestLogout_FailOpen(t *testing.T) {
	f := &fakeAPI{
		LoginResp: &models.AuthResponse{User: models.User{ID: 1}, Token: "abc"},
		LogoutErr: errors.New("backend down"),
	}
	m, tokens := newManager(f)

	_, err := m.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)

	m.Logout(context.Background())

	s := m.Snapshot()
	require.False(t, s.IsAuthenticated)
	require.Nil(t, s.User)
	require.False(t, s.Loading)
	require.Empty(t, tokens.Get(), "token cleared even when backend logout fails")
	require.Equal(t, genericLogoutError, s.Err)
	require.EqualValues(t, 1, f.LogoutCalls.Load())
}

// ---- forced sign-out ----

func TestHandleUnauthorized_DropsSession(t *testing.T) {
	f := &fakeAPI{LoginResp: &models.AuthResponse{User: models.User{ID: 1}, Token: "abc"}}
	m, _ := newManager(f)

	_, err := m.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)

	m.HandleUnauthorized()

	s := m.Snapshot()
	require.False(t, s.IsAuthenticated)
	require.Nil(t, s.User)
	require.Equal(t, expiredSessionError, s.Err)
}

func TestHandleUnauthorized_NoOpWhenSignedOut(t *testing.T) {
	m, _ := newManager(&fakeAPI{})
	m.HandleUnauthorized()
	require.Empty(t, m.Snapshot().Err)
}
