// Command setupdb provisions the MySQL schema and seed data. It is meant to
// be run once before the first server start and is safe to re-run.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/velomir/auto-shop-scheduler/internal/config"
	"github.com/velomir/auto-shop-scheduler/internal/database"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}
	if err := database.SeedCatalog(ctx, db); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	// The initial admin account is only created when both variables are set.
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		if err := database.SeedAdmin(ctx, db, adminEmail, adminPassword, cfg.BcryptCost); err != nil {
			log.Fatalf("seed admin: %v", err)
		}
	}

	log.Println("schema created and seed data inserted")
}
