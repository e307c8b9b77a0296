package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/middleware"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/shared/apperr"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/storage"
)

const maxUploadBytes = 10 << 20 // 10 MB, same cap as the body limit

type UploadsHandler struct {
	Store storage.Storage
}

func NewUploadsHandler(store storage.Storage) *UploadsHandler {
	return &UploadsHandler{Store: store}
}

// UploadImage handles POST /api/products/upload-image (multipart field
// "image"). Returns the public URL to put in the product's image_url.
func (h *UploadsHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Aucune image fournie", nil))
		return
	}

	if fh.Size > maxUploadBytes {
		middleware.Fail(c, apperr.InvalidErr("Image trop volumineuse (10 Mo maximum)", nil))
		return
	}
	if !allowedImageExt(fh.Filename) {
		middleware.Fail(c, apperr.InvalidErr("Format d'image non supporté (png, jpg, jpeg, webp, gif)", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	res, err := h.Store.Put(c.Request.Context(), f, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": res.URL, "key": res.Key})
}

func allowedImageExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return true
	default:
		return false
	}
}
