package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/middleware"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/validation"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/auth"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/shared/apperr"
)

type AuthHandler struct {
	Svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Email et mot de passe requis", validation.FromBindError(err, &in)))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			middleware.Fail(c, apperr.UnauthorizedErr("Identifiants invalides"))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, res)
}

// VerifyToken handles GET /api/auth/verify-token. It always answers 200 with
// a validity flag; a missing or mangled header is just {valid:false}.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	raw, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusOK, auth.VerifyResult{Valid: false})
		return
	}

	res, err := h.Svc.VerifyToken(c.Request.Context(), raw)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, res)
}

type forgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword handles POST /api/auth/forgot-password. The answer is the
// same whether or not the email exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var in forgotPasswordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Email requis", validation.FromBindError(err, &in)))
		return
	}

	if err := h.Svc.ForgotPassword(c.Request.Context(), in.Email); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Si cet email existe, un lien de réinitialisation a été envoyé.",
	})
}

type resetPasswordInput struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var in resetPasswordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Token et nouveau mot de passe requis", validation.FromBindError(err, &in)))
		return
	}

	err := h.Svc.ResetPassword(c.Request.Context(), in.Token, in.NewPassword)
	switch {
	case errors.Is(err, auth.ErrWeakPassword):
		middleware.Fail(c, apperr.InvalidErr("Le mot de passe doit contenir au moins 6 caractères", nil))
	case errors.Is(err, auth.ErrInvalidToken):
		middleware.Fail(c, apperr.InvalidErr("Token invalide ou expiré", nil))
	case err != nil:
		middleware.Fail(c, apperr.Wrap(err))
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Mot de passe réinitialisé avec succès"})
	}
}
