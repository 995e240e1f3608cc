package main

import (
	"carpool-service/internal/adapters/files"
	"carpool-service/internal/adapters/repositories"
	"carpool-service/internal/config"
	"carpool-service/internal/platform/db"
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := initAndSeed(ctx, conn, cfg.RosterPath, cfg.DistancesPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, rosterPath, distancesPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	roster, err := files.LoadRosterCSV(rosterPath)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	matrix, err := files.LoadMatrixCSV(distancesPath)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Println("Seeding database...")
	if err := repositories.SeedRoster(ctx, conn, roster); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	if err := repositories.SeedDistances(ctx, conn, matrix); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Printf("Seeding complete. areas=%d people=%d origins=%d", len(roster.Areas()), len(roster.People()), len(matrix))

	return nil
}
