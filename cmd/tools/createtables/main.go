// Creates the schema. Safe to re-run: existing tables are left alone.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	mysqlErrTableExists = 1050
	mysqlErrDupEntry    = 1062
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	run := func(sql string) {
		if err := db.Exec(sql).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && (me.Number == mysqlErrTableExists || me.Number == mysqlErrDupEntry) {
				return
			}
			log.Fatalf("Failed: %v", err)
		}
	}

	run(`CREATE TABLE admins (
  id BIGINT AUTO_INCREMENT PRIMARY KEY,
  email VARCHAR(255) NOT NULL,
  password VARCHAR(255) NOT NULL,
  reset_token VARCHAR(64) NULL,
  reset_token_expiry DATETIME(3) NULL,
  created_at DATETIME(3) NOT NULL,
  updated_at DATETIME(3) NOT NULL,
  UNIQUE KEY ux_admins_email (email)
)`)

	run(`CREATE TABLE categories (
  id BIGINT AUTO_INCREMENT PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  description TEXT,
  created_at DATETIME(3) NOT NULL,
  updated_at DATETIME(3) NOT NULL,
  UNIQUE KEY ux_categories_name (name)
)`)

	run(`CREATE TABLE products (
  id BIGINT AUTO_INCREMENT PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  description TEXT,
  price_ht DOUBLE NOT NULL,
  tva DOUBLE NOT NULL,
  is_available TINYINT(1) NOT NULL DEFAULT 1,
  image_url VARCHAR(512) NULL,
  category_id BIGINT NOT NULL,
  is_fresh TINYINT(1) NOT NULL DEFAULT 0,
  is_featured TINYINT(1) NOT NULL DEFAULT 0,
  created_at DATETIME(3) NOT NULL,
  updated_at DATETIME(3) NOT NULL,
  KEY ix_products_category_id (category_id),
  CONSTRAINT fk_products_category FOREIGN KEY (category_id) REFERENCES categories (id)
)`)

	run(`CREATE TABLE company (
  id BIGINT AUTO_INCREMENT PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  description TEXT,
  address VARCHAR(512) NULL,
  phone VARCHAR(32) NULL,
  email VARCHAR(255) NULL,
  website VARCHAR(255) NULL,
  siret VARCHAR(32) NULL,
  tva_number VARCHAR(32) NULL,
  logo_url VARCHAR(512) NULL,
  created_at DATETIME(3) NOT NULL,
  updated_at DATETIME(3) NOT NULL
)`)

	fmt.Println("✓ Schema ready")
}
