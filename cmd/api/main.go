package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/config"
	apphttp "github.com/Neruaka/jana-distrib-ecommerce/internal/http"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/mailer"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/admins"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/auth"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/categories"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/company"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/contact"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/products"
	"github.com/Neruaka/jana-distrib-ecommerce/internal/storage"
)

func main() {
	// .env is for dev; prod uses real env vars.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	store, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	logger.Info("upload storage ready", "driver", store.Driver)

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)

	adminRepo := admins.NewRepo(db)
	authSvc := auth.NewService(
		adminRepo, smtpMailer,
		cfg.JWTSecret, cfg.JWTTTL,
		cfg.ClientURL, cfg.SMTP.From, cfg.SMTP.FromName,
	)
	contactSvc := contact.NewService(smtpMailer, cfg.ContactEmail, cfg.SMTP.From, cfg.SMTP.FromName)

	localDir := ""
	if store.Driver == "local" {
		if l, ok := store.Storage.(*storage.Local); ok {
			localDir = l.BaseDir
		}
	}

	r := apphttp.NewRouter(apphttp.Deps{
		Logger:         logger,
		AuthSvc:        authSvc,
		Products:       products.NewRepo(db),
		Categories:     categories.NewRepo(db),
		Company:        company.NewRepo(db),
		ContactSvc:     contactSvc,
		Uploads:        store.Storage,
		ClientURL:      cfg.ClientURL,
		LocalUploadDir: localDir,
	})

	logger.Info("listening", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
