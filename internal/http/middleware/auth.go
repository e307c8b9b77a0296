package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/shared/apperr"
)

const (
	ctxKeyAdminID    = "admin_id"
	ctxKeyAdminEmail = "admin_email"
)

// TokenParser validates a raw bearer token and returns the signed-in identity.
// Implemented by the auth module; kept as an interface so the middleware does
// not depend on JWT details.
type TokenParser interface {
	ParseToken(raw string) (adminID int64, email string, err error)
}

// ContextAdmin is the authenticated admin stored in the gin context.
type ContextAdmin struct {
	ID    int64
	Email string
}

// AuthenticateToken requires a valid "Authorization: Bearer <jwt>" header and
// stores the decoded identity in the context. 401 on anything else.
func AuthenticateToken(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := BearerToken(c)
		if !ok {
			Fail(c, apperr.UnauthorizedErr("Accès refusé. Aucun token fourni."))
			return
		}

		id, email, err := parser.ParseToken(raw)
		if err != nil {
			Fail(c, apperr.UnauthorizedErr("Token invalide ou expiré"))
			return
		}

		c.Set(ctxKeyAdminID, id)
		c.Set(ctxKeyAdminEmail, email)
		c.Next()
	}
}

// RequireAdmin gates admin-only routes. Every authenticated principal is an
// admin in this back office; the check stays separate from AuthenticateToken
// so roles can be added without touching route tables.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentAdmin(c); !ok {
			Fail(c, apperr.UnauthorizedErr("Authentification requise"))
			return
		}
		c.Next()
	}
}

// CurrentAdmin retrieves the authenticated admin from the gin context.
func CurrentAdmin(c *gin.Context) (ContextAdmin, bool) {
	idVal, exists := c.Get(ctxKeyAdminID)
	if !exists {
		return ContextAdmin{}, false
	}
	id, ok := idVal.(int64)
	if !ok || id == 0 {
		return ContextAdmin{}, false
	}

	var email string
	if v, ok := c.Get(ctxKeyAdminEmail); ok && v != nil {
		email, _ = v.(string)
	}

	return ContextAdmin{ID: id, Email: email}, true
}

// BearerToken extracts the token from the standard Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tok == "" {
		return "", false
	}
	return tok, true
}
