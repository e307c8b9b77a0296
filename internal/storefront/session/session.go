// Package session holds the storefront's admin authentication state: the
// bearer token, the verified identity, and the login/logout/verify flows
// between durable local storage and the auth endpoints.
package session

import (
	"context"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/api"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/localstore"
)

// StorageKey is the fixed durable-storage key for the bearer token.
const StorageKey = "token"

type State string

const (
	Unauthenticated State = "unauthenticated"
	Verifying       State = "verifying"
	Authenticated   State = "authenticated"
)

// AuthAPI is the slice of the API client the manager needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (api.LoginResponse, error)
	VerifyToken(ctx context.Context, token string) (api.VerifyResponse, error)
}

// Manager brokers auth state between storage, memory and the server. Like the
// cart it assumes single-goroutine cooperative use; overlapping calls resolve
// last-writer-wins, never with a lock.
type Manager struct {
	api   AuthAPI
	st    localstore.Store
	token string
	admin *api.Admin
	state State
}

// New rehydrates the token from storage. A stored token is not trusted yet:
// the state starts at Verifying until Bootstrap has asked the server.
func New(a AuthAPI, st localstore.Store) *Manager {
	m := &Manager{api: a, st: st, state: Unauthenticated}

	if raw, ok, err := st.Get(StorageKey); err == nil && ok && len(raw) > 0 {
		m.token = string(raw)
		m.state = Verifying
	}
	return m
}

func (m *Manager) State() State { return m.state }

// Loading reports whether a startup verification is still in flight.
func (m *Manager) Loading() bool { return m.state == Verifying }

// IsAuthenticated is true only after the server confirmed the token.
func (m *Manager) IsAuthenticated() bool { return m.state == Authenticated }

// Admin returns the verified identity, or nil when unauthenticated.
func (m *Manager) Admin() *api.Admin {
	if m.admin == nil {
		return nil
	}
	cp := *m.admin
	return &cp
}

func (m *Manager) Token() string { return m.token }

// Bootstrap runs the startup verification once per session. With no stored
// token it settles to Unauthenticated immediately, no network call. With one,
// it asks the server; any failure at all (invalid token or network trouble)
// fails closed: the stored token is cleared and the state reset. Loading is
// over when Bootstrap returns, whatever the outcome.
func (m *Manager) Bootstrap(ctx context.Context) {
	if m.token == "" {
		m.state = Unauthenticated
		return
	}

	res, err := m.api.VerifyToken(ctx, m.token)
	if err != nil || !res.Valid || res.Admin == nil {
		m.reset()
		return
	}

	m.admin = res.Admin
	m.state = Authenticated
}

// Login exchanges credentials for a token. On success the token is persisted
// before the in-memory state flips to Authenticated. On failure nothing is
// touched: no state change, no storage write, no retry.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := m.st.Set(StorageKey, []byte(res.Token)); err != nil {
		return err
	}

	m.token = res.Token
	admin := res.Admin
	m.admin = &admin
	m.state = Authenticated
	return nil
}

// Logout is purely local: clear storage, reset memory. No server call.
func (m *Manager) Logout() {
	m.reset()
}

// CheckAuthStatus is a read-only probe. No token means "not authenticated"
// without any network call; otherwise it reports what the server says. It
// never mutates session state — that is Bootstrap's job.
func (m *Manager) CheckAuthStatus(ctx context.Context) bool {
	if m.token == "" {
		return false
	}

	res, err := m.api.VerifyToken(ctx, m.token)
	if err != nil {
		return false
	}
	return res.Valid
}

func (m *Manager) reset() {
	_ = m.st.Delete(StorageKey)
	m.token = ""
	m.admin = nil
	m.state = Unauthenticated
}
