// Package config reads service settings from the environment.
// Call godotenv.Load in main first so a local .env file is honoured.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const DefaultOrigin = "Tichonet"

type Config struct {
	Port          string
	Origin        string
	RosterPath    string
	DistancesPath string
	DatabaseURL   string
	RedisURL      string
	CacheTTL      time.Duration
	AssignRate    float64
	AssignBurst   int
}

// Load reads every setting, applying defaults for anything unset.
func Load() Config {
	return Config{
		Port:          Get("PORT", "8080"),
		Origin:        Get("CARPOOL_ORIGIN", DefaultOrigin),
		RosterPath:    Get("ROSTER_PATH", "data/people_areas.csv"),
		DistancesPath: Get("DISTANCES_PATH", "data/distance_matrix.csv"),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:      strings.TrimSpace(os.Getenv("REDIS_URL")),
		CacheTTL:      GetDuration("DISTANCE_CACHE_TTL", 24*time.Hour),
		AssignRate:    GetFloat("ASSIGN_RATE_PER_SEC", 5),
		AssignBurst:   GetInt("ASSIGN_BURST", 10),
	}
}

// Get returns the value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func GetFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return fallback
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
