package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/middleware"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/validation"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/contact"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/shared/apperr"
)

type ContactHandler struct {
	Svc *contact.Service
}

func NewContactHandler(svc *contact.Service) *ContactHandler {
	return &ContactHandler{Svc: svc}
}

type contactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Send handles POST /api/contact/send: plain contact messages and the cart's
// quote requests alike.
func (h *ContactHandler) Send(c *gin.Context) {
	var in contactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Tous les champs sont requis", validation.FromBindError(err, &in)))
		return
	}

	err := h.Svc.Send(c.Request.Context(), contact.Message{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Body:    in.Message,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Votre message a bien été envoyé."})
}
