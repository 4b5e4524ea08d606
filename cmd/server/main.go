package main

import (
	"log"

	"github.com/Luisi123/budget-tracking-test/db"
	"github.com/Luisi123/budget-tracking-test/internal/auth"
	"github.com/Luisi123/budget-tracking-test/internal/config"
	"github.com/Luisi123/budget-tracking-test/internal/reporting"
	"github.com/Luisi123/budget-tracking-test/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	if err := auth.Init(cfg.JWTSecret, cfg.JWTExpiration); err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}

	if err := reporting.Init(cfg.SentryDSN); err != nil {
		log.Fatalf("Failed to initialize error reporting: %v", err)
	}
	defer reporting.Flush()

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter()

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
