package handlers

import (
	"carpool-service/internal/api/dto"
	"carpool-service/internal/domain"
	"carpool-service/internal/platform/obs"
	"carpool-service/internal/ports"
	"log"
	"net/http"
	"slices"
)

// RosterHandler exposes the read-only area roster.
type RosterHandler struct {
	Roster ports.RosterRepository
}

func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	roster, err := h.Roster.LoadRoster(r.Context())
	if err != nil {
		if domain.ErrorKind(err) != "" {
			writeError(w, r, http.StatusServiceUnavailable, err.Error())
			return
		}
		log.Printf("req_id=%s load roster failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	areas := roster.Areas()
	slices.SortFunc(areas, func(a, b domain.Area) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})

	res := dto.RosterResponse{Areas: make([]dto.AreaResponse, 0, len(areas))}
	for _, a := range areas {
		residents := slices.Clone(a.Residents)
		slices.Sort(residents)
		res.Areas = append(res.Areas, dto.AreaResponse{Area: a.Name, Residents: residents})
	}

	writeJSON(w, r, http.StatusOK, res)
}
