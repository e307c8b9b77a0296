package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/middleware"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/validation"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/company"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/shared/apperr"
)

type CompanyHandler struct {
	Repo *company.Repo
}

func NewCompanyHandler(repo *company.Repo) *CompanyHandler {
	return &CompanyHandler{Repo: repo}
}

func (h *CompanyHandler) Get(c *gin.Context) {
	info, err := h.Repo.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Informations de l'entreprise non trouvées"))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, info)
}

type updateCompanyInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Website     *string `json:"website"`
	Siret       *string `json:"siret"`
	TVANumber   *string `json:"tva_number"`
	LogoURL     *string `json:"logo_url"`
}

func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var in updateCompanyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Données d'entreprise invalides", validation.FromBindError(err, &in)))
		return
	}

	info, err := h.Repo.Update(c.Request.Context(), id, company.UpdateInput{
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		Website:     in.Website,
		Siret:       in.Siret,
		TVANumber:   in.TVANumber,
		LogoURL:     in.LogoURL,
	})
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Informations de l'entreprise non trouvées"))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, info)
}
