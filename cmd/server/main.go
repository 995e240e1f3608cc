package main

import (
	"carpool-service/internal/adapters/cache"
	"carpool-service/internal/adapters/files"
	"carpool-service/internal/adapters/repositories"
	"carpool-service/internal/api"
	"carpool-service/internal/config"
	"carpool-service/internal/metrics"
	"carpool-service/internal/platform/db"
	"carpool-service/internal/ports"
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (Postgres or CSV files, optional Redis cache)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()
	metrics.RegisterDefault()

	var (
		roster   ports.RosterRepository
		provider ports.DistanceProvider
		health   func(ctx context.Context) error
	)

	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		repo := repositories.NewPostgresRepository(conn)
		roster, provider = repo, repo
		health = conn.PingContext
		log.Println("Using Postgres roster and distances")
	} else {
		m, err := files.LoadMatrixCSV(cfg.DistancesPath)
		if err != nil {
			log.Fatal(err)
		}

		roster = files.NewRosterFile(cfg.RosterPath)
		provider = files.NewStaticMatrixProvider(m)
		log.Printf("Using CSV files roster=%s distances=%s", cfg.RosterPath, cfg.DistancesPath)
	}

	// The Redis cache only pays off in front of a remote distance source.
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		defer rdb.Close()

		provider = cache.NewCachedDistanceProvider(provider, cache.NewRedisDistanceCache(rdb, cfg.CacheTTL))
		log.Printf("Distance cache enabled ttl=%s", cfg.CacheTTL)
	}

	router := api.NewRouter(roster, provider, api.Options{
		DefaultOrigin: cfg.Origin,
		HealthCheck:   health,
		AssignRate:    cfg.AssignRate,
		AssignBurst:   cfg.AssignBurst,
	})

	log.Printf("Server listening addr=:%s origin=%q", cfg.Port, cfg.Origin)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
