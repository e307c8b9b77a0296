package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/api"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/localstore"
)

type fakeAuthAPI struct {
	loginRes  api.LoginResponse
	loginErr  error
	verifyRes api.VerifyResponse
	verifyErr error

	loginCalls  int
	verifyCalls int
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (api.LoginResponse, error) {
	f.loginCalls++
	return f.loginRes, f.loginErr
}

func (f *fakeAuthAPI) VerifyToken(ctx context.Context, token string) (api.VerifyResponse, error) {
	f.verifyCalls++
	return f.verifyRes, f.verifyErr
}

func TestNewWithoutStoredToken(t *testing.T) {
	m := New(&fakeAuthAPI{}, localstore.NewMemory())

	require.Equal(t, Unauthenticated, m.State())
	require.False(t, m.Loading())
	require.False(t, m.IsAuthenticated())
}

func TestNewWithStoredTokenStartsVerifying(t *testing.T) {
	st := localstore.NewMemory()
	require.NoError(t, st.Set(StorageKey, []byte("stored-token")))

	m := New(&fakeAuthAPI{}, st)
	require.Equal(t, Verifying, m.State())
	require.True(t, m.Loading())
	require.False(t, m.IsAuthenticated())
}

func TestBootstrapWithoutTokenSkipsNetwork(t *testing.T) {
	a := &fakeAuthAPI{}
	m := New(a, localstore.NewMemory())

	m.Bootstrap(context.Background())

	require.Zero(t, a.verifyCalls)
	require.Equal(t, Unauthenticated, m.State())
}

func TestBootstrapValidToken(t *testing.T) {
	st := localstore.NewMemory()
	require.NoError(t, st.Set(StorageKey, []byte("stored-token")))

	a := &fakeAuthAPI{verifyRes: api.VerifyResponse{
		Valid: true,
		Admin: &api.Admin{ID: 1, Email: "admin@janadistrib.fr"},
	}}
	m := New(a, st)
	m.Bootstrap(context.Background())

	require.Equal(t, 1, a.verifyCalls)
	require.True(t, m.IsAuthenticated())
	require.False(t, m.Loading())
	require.Equal(t, "stored-token", m.Token())
	require.Equal(t, "admin@janadistrib.fr", m.Admin().Email)
}

func TestBootstrapInvalidTokenClearsStorage(t *testing.T) {
	st := localstore.NewMemory()
	require.NoError(t, st.Set(StorageKey, []byte("stale-token")))

	a := &fakeAuthAPI{verifyRes: api.VerifyResponse{Valid: false}}
	m := New(a, st)
	m.Bootstrap(context.Background())

	require.Equal(t, Unauthenticated, m.State())
	require.Empty(t, m.Token())
	require.Nil(t, m.Admin())

	_, ok, err := st.Get(StorageKey)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBootstrapNetworkErrorFailsClosed(t *testing.T) {
	st := localstore.NewMemory()
	require.NoError(t, st.Set(StorageKey, []byte("stored-token")))

	a := &fakeAuthAPI{verifyErr: errors.New("connection refused")}
	m := New(a, st)
	m.Bootstrap(context.Background())

	require.Equal(t, Unauthenticated, m.State())
	_, ok, _ := st.Get(StorageKey)
	require.False(t, ok)
}

func TestLoginPersistsTokenBeforeStateFlips(t *testing.T) {
	st := localstore.NewMemory()
	a := &fakeAuthAPI{loginRes: api.LoginResponse{
		Token: "fresh-token",
		Admin: api.Admin{ID: 1, Email: "admin@janadistrib.fr"},
	}}
	m := New(a, st)

	require.NoError(t, m.Login(context.Background(), "admin@janadistrib.fr", "secret"))

	require.True(t, m.IsAuthenticated())
	require.Equal(t, "fresh-token", m.Token())

	raw, ok, err := st.Get(StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "fresh-token", string(raw))
}

func TestFailedLoginLeavesEverythingUntouched(t *testing.T) {
	st := localstore.NewMemory()
	a := &fakeAuthAPI{loginErr: &api.Error{Status: 401, Message: "Email ou mot de passe incorrect"}}
	m := New(a, st)

	err := m.Login(context.Background(), "admin@janadistrib.fr", "wrong")
	require.Error(t, err)

	require.Equal(t, Unauthenticated, m.State())
	require.Empty(t, m.Token())

	_, ok, _ := st.Get(StorageKey)
	require.False(t, ok)
}

func TestLoginStorageFailureDoesNotAuthenticate(t *testing.T) {
	st := localstore.NewMemory()
	st.FailSet = true
	a := &fakeAuthAPI{loginRes: api.LoginResponse{Token: "fresh-token"}}
	m := New(a, st)

	require.Error(t, m.Login(context.Background(), "admin@janadistrib.fr", "secret"))
	require.False(t, m.IsAuthenticated())
	require.Empty(t, m.Token())
}

func TestLogoutIsLocalOnly(t *testing.T) {
	st := localstore.NewMemory()
	a := &fakeAuthAPI{loginRes: api.LoginResponse{
		Token: "fresh-token",
		Admin: api.Admin{ID: 1, Email: "admin@janadistrib.fr"},
	}}
	m := New(a, st)
	require.NoError(t, m.Login(context.Background(), "admin@janadistrib.fr", "secret"))

	calls := a.loginCalls + a.verifyCalls
	m.Logout()

	require.Equal(t, calls, a.loginCalls+a.verifyCalls)
	require.Equal(t, Unauthenticated, m.State())
	require.Nil(t, m.Admin())

	_, ok, _ := st.Get(StorageKey)
	require.False(t, ok)
}

func TestCheckAuthStatusWithoutTokenSkipsNetwork(t *testing.T) {
	a := &fakeAuthAPI{}
	m := New(a, localstore.NewMemory())

	require.False(t, m.CheckAuthStatus(context.Background()))
	require.Zero(t, a.verifyCalls)
}

func TestCheckAuthStatusDoesNotMutateState(t *testing.T) {
	st := localstore.NewMemory()
	require.NoError(t, st.Set(StorageKey, []byte("stored-token")))

	a := &fakeAuthAPI{verifyErr: errors.New("timeout")}
	m := New(a, st)

	require.False(t, m.CheckAuthStatus(context.Background()))

	// still Verifying: only Bootstrap settles the state
	require.Equal(t, Verifying, m.State())
	require.Equal(t, "stored-token", m.Token())
	_, ok, _ := st.Get(StorageKey)
	require.True(t, ok)
}
