// @title           Neighborhood Solar Experts API
// @version         1.0
// @description     Lead capture and estimate management backend for a solar installation referral business

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer ` prefix
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/app/routes"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/services"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/infrastructure/config"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/infrastructure/database"
	"github.com/Aksaddd/neighborhood-solar-experts/pkg/logger"
)

func main() {
	if err := logger.Setup(); err != nil {
		fmt.Printf("failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		logger.Warning("no .env file loaded: %v", err)
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

	ensureAdminExists(db, cfg)

	r := routes.SetupRouter(db, cfg)

	if stats, err := pool.Stats(); err == nil {
		logger.Info("database pool ready: %+v", stats)
	}

	logger.Info("server listening on http://0.0.0.0:%s", cfg.ServerPort)
	if err := r.Run("0.0.0.0:" + cfg.ServerPort); err != nil {
		logger.Error("server exited: %v", err)
		os.Exit(1)
	}
}

// ensureAdminExists seeds the default admin account on first start
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	adminService := services.NewAdminService(db, cfg)
	created, err := adminService.EnsureDefaultAdmin(cfg.DefaultAdminUsername, cfg.DefaultAdminPassword)
	if err != nil {
		log.Fatalf("failed to ensure admin account: %v", err)
	}
	if created {
		logger.Warning("created default admin account %q, change the password after first login", cfg.DefaultAdminUsername)
	}
}
