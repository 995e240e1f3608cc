package api

import (
	"carpool-service/internal/api/handlers"
	"carpool-service/internal/metrics"
	"carpool-service/internal/ports"
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

type Options struct {
	DefaultOrigin string
	// HealthCheck, when set, is called by GET /health (e.g. a DB ping).
	HealthCheck func(ctx context.Context) error
	// AssignRate and AssignBurst bound POST /assignments; a non-positive rate disables the limit.
	AssignRate  float64
	AssignBurst int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(roster ports.RosterRepository, provider ports.DistanceProvider, opts Options) http.Handler {
	mux := http.NewServeMux()

	rosterHandler := &handlers.RosterHandler{Roster: roster}
	assignHandler := &handlers.AssignmentHandler{
		Roster:        roster,
		Provider:      provider,
		DefaultOrigin: opts.DefaultOrigin,
	}

	var assign http.Handler = http.HandlerFunc(assignHandler.Assign)
	if opts.AssignRate > 0 {
		burst := opts.AssignBurst
		if burst < 1 {
			burst = 1
		}
		assign = rateLimit(rate.NewLimiter(rate.Limit(opts.AssignRate), burst), assign)
	}

	healthHandler := &handlers.HealthHandler{Check: opts.HealthCheck}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/roster", rosterHandler.List)
	mux.Handle("/assignments", assign)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
