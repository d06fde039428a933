// Seed command creates the default admin account.
//
// Usage: go run ./cmd/seed
//
// Default credentials (change immediately after first login):
//
//	username: admin
//	password: changeme123
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/services"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/infrastructure/config"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/infrastructure/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	adminService := services.NewAdminService(db, cfg)
	created, err := adminService.EnsureDefaultAdmin(cfg.DefaultAdminUsername, cfg.DefaultAdminPassword)
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	if !created {
		log.Printf("admin account already exists, skipping")
		return
	}
	log.Printf("admin %q created, change the default password after first login", cfg.DefaultAdminUsername)
}
