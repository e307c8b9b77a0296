package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/middleware"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/validation"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/products"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/shared/apperr"
)

type ProductsHandler struct {
	Repo *products.Repo
}

func NewProductsHandler(repo *products.Repo) *ProductsHandler {
	return &ProductsHandler{Repo: repo}
}

func (h *ProductsHandler) List(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.Repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Produit non trouvé"))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductsHandler) ListFeatured(c *gin.Context) {
	items, err := h.Repo.ListFeatured(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProductsHandler) ListAvailable(c *gin.Context) {
	items, err := h.Repo.ListAvailable(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProductsHandler) ListByCategory(c *gin.Context) {
	id, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	items, err := h.Repo.ListByCategory(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

type createProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	PriceHT     float64 `json:"price_ht" binding:"required,gte=0"`
	TVA         float64 `json:"tva" binding:"required,gte=0,lte=100"`
	IsAvailable *bool   `json:"is_available"`
	ImageURL    *string `json:"image_url"`
	CategoryID  int64   `json:"category_id" binding:"required"`
	IsFresh     bool    `json:"is_fresh"`
	IsFeatured  bool    `json:"is_featured"`
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var in createProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Les champs nom, prix HT, TVA et catégorie sont requis", validation.FromBindError(err, &in)))
		return
	}

	// New products default to available unless told otherwise.
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	p, err := h.Repo.Create(c.Request.Context(), products.CreateInput{
		Name:        in.Name,
		Description: in.Description,
		PriceHT:     in.PriceHT,
		TVA:         in.TVA,
		IsAvailable: available,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		IsFresh:     in.IsFresh,
		IsFeatured:  in.IsFeatured,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, p)
}

type updateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	PriceHT     *float64 `json:"price_ht" binding:"omitempty,gte=0"`
	TVA         *float64 `json:"tva" binding:"omitempty,gte=0,lte=100"`
	IsAvailable *bool    `json:"is_available"`
	ImageURL    *string  `json:"image_url"`
	CategoryID  *int64   `json:"category_id"`
	IsFresh     *bool    `json:"is_fresh"`
	IsFeatured  *bool    `json:"is_featured"`
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var in updateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Données de produit invalides", validation.FromBindError(err, &in)))
		return
	}

	p, err := h.Repo.Update(c.Request.Context(), id, products.UpdateInput{
		Name:        in.Name,
		Description: in.Description,
		PriceHT:     in.PriceHT,
		TVA:         in.TVA,
		IsAvailable: in.IsAvailable,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		IsFresh:     in.IsFresh,
		IsFeatured:  in.IsFeatured,
	})
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Produit non trouvé"))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, products.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Produit non trouvé"))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé avec succès"})
}

// SetOutOfStock handles PUT /api/products/:id/out-of-stock.
func (h *ProductsHandler) SetOutOfStock(c *gin.Context) {
	h.setAvailability(c, false)
}

// SetInStock handles PUT /api/products/:id/in-stock.
func (h *ProductsHandler) SetInStock(c *gin.Context) {
	h.setAvailability(c, true)
}

func (h *ProductsHandler) setAvailability(c *gin.Context, available bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.Repo.SetAvailability(c.Request.Context(), id, available)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Produit non trouvé"))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

// pathID parses a numeric id path param, failing the request on garbage.
func pathID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		middleware.Fail(c, apperr.InvalidErr("ID invalide", nil))
		return 0, false
	}
	return id, true
}
