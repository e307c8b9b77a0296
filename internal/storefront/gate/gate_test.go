package gate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/api"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/localstore"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/storefront/session"
)

func verifyingManager(t *testing.T) *session.Manager {
	t.Helper()
	st := localstore.NewMemory()
	require.NoError(t, st.Set(session.StorageKey, []byte("stored-token")))

	// verify endpoint that never answers cleanly: the session stays Verifying
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	return session.New(api.NewClient(srv.URL), st)
}

func settledManager(t *testing.T, valid bool) *session.Manager {
	t.Helper()
	st := localstore.NewMemory()
	require.NoError(t, st.Set(session.StorageKey, []byte("stored-token")))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if valid {
			w.Write([]byte(`{"valid":true,"admin":{"id":1,"email":"admin@janadistrib.fr"}}`))
			return
		}
		w.Write([]byte(`{"valid":false}`))
	}))
	t.Cleanup(srv.Close)

	m := session.New(api.NewClient(srv.URL), st)
	m.Bootstrap(context.Background())
	return m
}

func TestCheckWhileVerifyingShowsLoading(t *testing.T) {
	m := verifyingManager(t)

	d := Check(context.Background(), m, "/admin/products")
	require.Equal(t, ShowLoading, d.Kind)
	require.Empty(t, d.Target)
}

func TestCheckUnauthenticatedRedirectsWithReturnTo(t *testing.T) {
	m := settledManager(t, false)

	d := Check(context.Background(), m, "/admin/products")
	require.Equal(t, Redirect, d.Kind)
	require.Equal(t, "/admin/login?return_to=%2Fadmin%2Fproducts", d.Target)
}

func TestCheckUnauthenticatedWithoutPath(t *testing.T) {
	m := settledManager(t, false)

	d := Check(context.Background(), m, "")
	require.Equal(t, Redirect, d.Kind)
	require.Equal(t, LoginPath, d.Target)
}

func TestCheckAuthenticatedAllows(t *testing.T) {
	m := settledManager(t, true)

	d := Check(context.Background(), m, "/admin/products")
	require.Equal(t, Allow, d.Kind)
	require.Empty(t, d.Target)
}

func TestCheckProbesServerEachActivation(t *testing.T) {
	st := localstore.NewMemory()
	require.NoError(t, st.Set(session.StorageKey, []byte("stored-token")))

	probes := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"valid":true,"admin":{"id":1,"email":"admin@janadistrib.fr"}}`))
	}))
	t.Cleanup(srv.Close)

	m := session.New(api.NewClient(srv.URL), st)
	m.Bootstrap(context.Background())
	before := probes

	Check(context.Background(), m, "/admin/products")
	Check(context.Background(), m, "/admin/categories")
	require.Equal(t, before+2, probes)
}
