// Package gate decides whether an admin view may render. It owns no state of
// its own; it only reads the session manager.
package gate

import (
	"context"
	"net/url"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/session"
)

// LoginPath is where unauthenticated visitors are sent.
const LoginPath = "/admin/login"

type Kind int

const (
	// ShowLoading: the session is still verifying; render a spinner, do not
	// redirect yet.
	ShowLoading Kind = iota
	// Redirect: not authenticated; go to Target (login, carrying the
	// originally requested destination).
	Redirect
	// Allow: render the protected content.
	Allow
)

type Decision struct {
	Kind   Kind
	Target string // set for Redirect
}

// Check gates one activation of a protected view. It fires a fresh
// verification probe every time, exactly like the route guard it models.
func Check(ctx context.Context, m *session.Manager, requestedPath string) Decision {
	// Read-only probe; the surrounding session state stays authoritative.
	m.CheckAuthStatus(ctx)

	if m.Loading() {
		return Decision{Kind: ShowLoading}
	}

	if !m.IsAuthenticated() {
		target := LoginPath
		if requestedPath != "" {
			target += "?return_to=" + url.QueryEscape(requestedPath)
		}
		return Decision{Kind: Redirect, Target: target}
	}

	return Decision{Kind: Allow}
}
