package handlers

import (
	"carpool-service/internal/api/dto"
	"carpool-service/internal/domain"
	"carpool-service/internal/platform/obs"
	"carpool-service/internal/ports"
	"carpool-service/internal/services"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
)

type AssignmentHandler struct {
	Roster        ports.RosterRepository
	Provider      ports.DistanceProvider
	DefaultOrigin string
}

// Assign turns a posted session into a ride assignment.
// Every input error kind is answered with its own message; anything else is a 500.
func (h *AssignmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.AssignmentRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	origin := strings.TrimSpace(req.Origin)
	if origin == "" {
		origin = strings.TrimSpace(h.DefaultOrigin)
	}
	if origin == "" {
		writeError(w, r, http.StatusBadRequest, "origin is required")
		return
	}

	session, err := toSession(req)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	svcReq := services.PlanRidesRequest{Origin: origin, Session: session}

	res, err := services.PlanRides(r.Context(), svcReq, h.Roster, h.Provider)
	if err != nil {
		switch domain.ErrorKind(err) {
		case "":
			log.Printf("req_id=%s plan rides failed: %v", obs.RequestID(r.Context()), err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		case "missing_area_data":
			writeError(w, r, http.StatusServiceUnavailable, err.Error())
		default:
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		}
		return
	}

	writeJSON(w, r, http.StatusOK, toResponse(res))
}

func toSession(req dto.AssignmentRequest) (domain.Session, error) {
	s := domain.Session{Present: req.Present}
	for _, st := range req.Students {
		s.Students = append(s.Students, domain.Student{
			Name: strings.TrimSpace(st.Name),
			Area: strings.TrimSpace(st.Area),
		})
	}
	for _, d := range req.Drivers {
		name := strings.TrimSpace(d.Name)
		seats, err := domain.ParseSeats(name, seatsInput(d.Seats))
		if err != nil {
			return domain.Session{}, err
		}
		s.AddDriver(domain.Driver{Name: name, Seats: seats, IsParent: d.Parent})
	}
	return s, nil
}

// seatsInput accepts seats sent as a JSON number or string.
func seatsInput(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case nil:
		return ""
	}
	return "invalid"
}

func toResponse(res *domain.Result) dto.AssignmentResponse {
	out := dto.AssignmentResponse{
		Origin:      res.Origin,
		Assignments: make([]dto.RideResponse, 0, len(res.Rides)),
		Unassigned:  res.Unassigned,
		SelfDriven:  res.SelfDriven,
	}

	for _, ride := range res.Rides {
		passengers := make([]dto.PassengerResponse, 0, len(ride.Passengers))
		for _, p := range ride.Passengers {
			passengers = append(passengers, dto.PassengerResponse{
				Name:         p.Name,
				Area:         p.Area,
				Distance:     p.Distance,
				ParentPickup: p.ParentPickup,
			})
		}

		out.Assignments = append(out.Assignments, dto.RideResponse{
			Driver:            ride.Driver.Name,
			Seats:             ride.Driver.Seats,
			Parent:            ride.Driver.IsParent,
			Passengers:        passengers,
			DistanceTravelled: ride.DistanceTravelled,
		})
	}

	return out
}
