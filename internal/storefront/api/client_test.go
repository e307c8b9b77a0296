package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "admin@janadistrib.fr", in["email"])
		require.Equal(t, "secret", in["password"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"jwt-token","admin":{"id":1,"email":"admin@janadistrib.fr"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.Login(context.Background(), "admin@janadistrib.fr", "secret")
	require.NoError(t, err)
	require.Equal(t, "jwt-token", res.Token)
	require.Equal(t, int64(1), res.Admin.ID)
}

func TestLoginFailureCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Email ou mot de passe incorrect"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Login(context.Background(), "admin@janadistrib.fr", "wrong")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Email ou mot de passe incorrect", apiErr.Message)
}

func TestVerifyTokenSendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/verify-token", r.URL.Path)
		require.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"valid":true,"admin":{"id":1,"email":"admin@janadistrib.fr"}}`))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).VerifyToken(context.Background(), "my-token")
	require.NoError(t, err)
	require.True(t, res.Valid)
	require.NotNil(t, res.Admin)
}

func TestListAvailableProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/available", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"Tomates grappe","price_ht":2.8,"tva":5.5,"is_available":true}]`))
	}))
	defer srv.Close()

	products, err := NewClient(srv.URL).ListAvailableProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Tomates grappe", products[0].Name)
	require.InDelta(t, 2.8, products[0].PriceHT, 1e-9)
}

func TestSendContact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/contact/send", r.URL.Path)

		var in ContactMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "Marie Dupont", in.Name)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Message envoyé avec succès"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).SendContact(context.Background(), ContactMessage{
		Name:    "Marie Dupont",
		Email:   "marie@example.fr",
		Subject: "Question",
		Message: "Bonjour",
	})
	require.NoError(t, err)
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	c := NewClient("http://localhost:5000/api/")
	require.Equal(t, "http://localhost:5000/api", c.BaseURL)
}

func TestErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListAvailableProducts(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.Equal(t, "api: 502", apiErr.Error())
}
