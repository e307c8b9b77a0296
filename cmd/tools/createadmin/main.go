// Seeds a back-office admin account.
//
//	go run ./cmd/tools/createadmin -email admin@janadistrib.fr -password secret
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Neruaka/jana-distrib-ecommerce/internal/modules/admins"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password (min 6 chars)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}
	if len(*password) < 6 {
		log.Fatal("password must be at least 6 characters")
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	repo := admins.NewRepo(db)
	a, err := repo.Create(context.Background(), *email, string(hash))
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("✓ Admin #%d created (%s)\n", a.ID, a.Email)
}
