package handlers

import (
	"carpool-service/internal/platform/obs"
	"context"
	"log"
	"net/http"
)

// HealthHandler provides a liveness check, optionally verifying a backing store.
type HealthHandler struct {
	Check func(ctx context.Context) error
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Check != nil {
		if err := h.Check(r.Context()); err != nil {
			log.Printf("req_id=%s health check failed: %v", obs.RequestID(r.Context()), err)
			writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}

	res := map[string]string{"status": "ok"}
	writeJSON(w, r, http.StatusOK, res)
}
