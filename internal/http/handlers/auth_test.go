package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/middleware"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/mailer"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/admins"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/auth"
)

type memAdminStore struct {
	admin admins.Admin
}

func (m *memAdminStore) FindByEmail(ctx context.Context, email string) (admins.Admin, error) {
	if email != m.admin.Email {
		return admins.Admin{}, admins.ErrNotFound
	}
	return m.admin, nil
}

func (m *memAdminStore) FindByResetToken(ctx context.Context, tokenHash string) (admins.Admin, error) {
	return admins.Admin{}, admins.ErrNotFound
}

func (m *memAdminStore) UpdatePassword(ctx context.Context, adminID int64, passwordHash string) error {
	return nil
}

func (m *memAdminStore) UpdateResetToken(ctx context.Context, adminID int64, tokenHash *string, expiry *time.Time) error {
	return nil
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &memAdminStore{admin: admins.Admin{
		ID:           1,
		Email:        "admin@janadistrib.fr",
		PasswordHash: string(hash),
	}}
	svc := auth.NewService(store, &mailer.Mock{}, "test-secret", time.Hour, "http://localhost:3000", "noreply@janadistrib.fr", "Jana Distrib")
	h := NewAuthHandler(svc)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler(logger))

	g := r.Group("/api/auth")
	g.POST("/login", h.Login)
	g.GET("/verify-token", h.VerifyToken)
	g.POST("/forgot-password", h.ForgotPassword)
	g.POST("/reset-password", h.ResetPassword)
	return r
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginReturnsTokenAndAdmin(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"admin@janadistrib.fr","password":"secret"}`, "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"token"`)
	require.Contains(t, w.Body.String(), `"admin@janadistrib.fr"`)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"admin@janadistrib.fr","password":"wrong"}`, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Identifiants invalides")
	require.Contains(t, w.Body.String(), "request_id")
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login", `{"email":"not-an-email"}`, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "fields")
}

func TestVerifyTokenAlwaysAnswers200(t *testing.T) {
	r := newAuthRouter(t)

	// no header at all
	w := doJSON(r, http.MethodGet, "/api/auth/verify-token", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"valid":false`)

	// garbage token
	w = doJSON(r, http.MethodGet, "/api/auth/verify-token", "", "garbage")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"valid":false`)
}

func TestVerifyTokenAcceptsFreshLogin(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"admin@janadistrib.fr","password":"secret"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	w = doJSON(r, http.MethodGet, "/api/auth/verify-token", "", res.Token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"valid":true`)
}

func TestForgotPasswordIsUniform(t *testing.T) {
	r := newAuthRouter(t)

	known := doJSON(r, http.MethodPost, "/api/auth/forgot-password",
		`{"email":"admin@janadistrib.fr"}`, "")
	unknown := doJSON(r, http.MethodPost, "/api/auth/forgot-password",
		`{"email":"ghost@janadistrib.fr"}`, "")

	require.Equal(t, http.StatusOK, known.Code)
	require.Equal(t, http.StatusOK, unknown.Code)
	require.Equal(t, known.Body.String(), unknown.Body.String())
}

func TestResetPasswordRejectsShortPassword(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/reset-password",
		`{"token":"whatever","newPassword":"12345"}`, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "au moins 6 caractères")
}

func TestResetPasswordRejectsUnknownToken(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/reset-password",
		`{"token":"never-issued","newPassword":"long-enough"}`, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Token invalide ou expiré")
}
