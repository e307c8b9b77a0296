package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/middleware"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/validation"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/categories"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/shared/apperr"
)

type CategoriesHandler struct {
	Repo *categories.Repo
}

func NewCategoriesHandler(repo *categories.Repo) *CategoriesHandler {
	return &CategoriesHandler{Repo: repo}
}

func (h *CategoriesHandler) List(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CategoriesHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cat, err := h.Repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Catégorie non trouvée"))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, cat)
}

type createCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *CategoriesHandler) Create(c *gin.Context) {
	var in createCategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Le nom est requis", validation.FromBindError(err, &in)))
		return
	}

	cat, err := h.Repo.Create(c.Request.Context(), in.Name, in.Description)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, cat)
}

type updateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *CategoriesHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var in updateCategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Données de catégorie invalides", validation.FromBindError(err, &in)))
		return
	}

	cat, err := h.Repo.Update(c.Request.Context(), id, in.Name, in.Description)
	if err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Catégorie non trouvée"))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoriesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Catégorie non trouvée"))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catégorie supprimée avec succès"})
}
