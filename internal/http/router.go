package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/handlers"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/http/middleware"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/auth"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/categories"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/company"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/contact"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/products"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/storage"
)

// Deps carries everything the router mounts.
type Deps struct {
	Logger *slog.Logger

	AuthSvc    *auth.Service
	Products   *products.Repo
	Categories *categories.Repo
	Company    *company.Repo
	ContactSvc *contact.Service
	Uploads    storage.Storage

	ClientURL      string // allowed CORS origin
	LocalUploadDir string // served under /uploads when non-empty
}

func NewRouter(d Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.ErrorHandler(d.Logger))
	r.Use(cors(d.ClientURL))

	if d.LocalUploadDir != "" {
		r.Static("/uploads", d.LocalUploadDir)
	}

	authH := handlers.NewAuthHandler(d.AuthSvc)
	productsH := handlers.NewProductsHandler(d.Products)
	categoriesH := handlers.NewCategoriesHandler(d.Categories)
	companyH := handlers.NewCompanyHandler(d.Company)
	contactH := handlers.NewContactHandler(d.ContactSvc)
	uploadsH := handlers.NewUploadsHandler(d.Uploads)

	requireAuth := middleware.AuthenticateToken(d.AuthSvc)
	requireAdmin := middleware.RequireAdmin()

	api := r.Group("/api")
	{
		authGrp := api.Group("/auth")
		{
			authGrp.POST("/login", authH.Login)
			authGrp.GET("/verify-token", authH.VerifyToken)
			authGrp.POST("/forgot-password", authH.ForgotPassword)
			authGrp.POST("/reset-password", authH.ResetPassword)
		}

		prods := api.Group("/products")
		{
			prods.GET("", productsH.List)
			prods.GET("/featured", productsH.ListFeatured)
			prods.GET("/available", productsH.ListAvailable)
			prods.GET("/category/:categoryId", productsH.ListByCategory)
			prods.GET("/:id", productsH.Get)

			prods.POST("", requireAuth, requireAdmin, productsH.Create)
			prods.PUT("/:id", requireAuth, requireAdmin, productsH.Update)
			prods.DELETE("/:id", requireAuth, requireAdmin, productsH.Delete)
			prods.PUT("/:id/out-of-stock", requireAuth, requireAdmin, productsH.SetOutOfStock)
			prods.PUT("/:id/in-stock", requireAuth, requireAdmin, productsH.SetInStock)
			prods.POST("/upload-image", requireAuth, requireAdmin, uploadsH.UploadImage)
		}

		cats := api.Group("/categories")
		{
			cats.GET("", categoriesH.List)
			cats.GET("/:id", categoriesH.Get)
			cats.POST("", requireAuth, requireAdmin, categoriesH.Create)
			cats.PUT("/:id", requireAuth, requireAdmin, categoriesH.Update)
			cats.DELETE("/:id", requireAuth, requireAdmin, categoriesH.Delete)
		}

		comp := api.Group("/company")
		{
			comp.GET("", companyH.Get)
			comp.PUT("/:id", requireAuth, requireAdmin, companyH.Update)
		}

		api.POST("/contact/send", contactH.Send)
	}

	return r
}

// cors allows the storefront origin only. Credentials stay off: auth is a
// bearer header, not a cookie.
func cors(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
