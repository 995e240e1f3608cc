package services

import (
	"carpool-service/internal/domain"
	"carpool-service/internal/metrics"
	"carpool-service/internal/platform/obs"
	"carpool-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
)

type PlanRidesRequest struct {
	Origin  string
	Session domain.Session
}

// PlanRides runs one assignment for a session.
//
// It loads the roster, adds the session's ad-hoc students, fetches the
// origin distances for every area a present person lives in and hands the
// finalized inputs to AssignRides. Distances the provider does not know are
// left out so AssignRides reports them as a MissingDistanceError.
func PlanRides(
	ctx context.Context,
	req PlanRidesRequest,
	rosters ports.RosterRepository,
	provider ports.DistanceProvider,
) (res *domain.Result, err error) {
	defer obs.Time(ctx, "services.PlanRides")(&err)
	defer func() { recordRun(res, err) }()

	origin := strings.TrimSpace(req.Origin)
	if origin == "" {
		return nil, errors.New("plan rides: origin must be non-empty")
	}

	// Cheap checks first so an empty form never touches the data sources.
	if len(req.Session.Present) == 0 {
		return nil, domain.ErrNoPeoplePresent
	}
	if len(req.Session.Drivers) == 0 {
		return nil, domain.ErrNoDrivers
	}

	roster, err := rosters.LoadRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan rides: load roster: %w", err)
	}

	roster, err = roster.WithResidents(req.Session.Students)
	if err != nil {
		return nil, fmt.Errorf("plan rides: add students: %w", err)
	}

	areas := presentAreas(roster, req.Session.Present)

	row, err := fetchOriginRow(ctx, provider, origin, areas)
	if err != nil {
		return nil, fmt.Errorf("plan rides: %w", err)
	}

	distances := domain.DistanceMatrix{origin: row}

	res, err = AssignRides(req.Session.Present, roster, req.Session.Drivers, distances, origin)
	if err != nil {
		return nil, fmt.Errorf("plan rides: %w", err)
	}

	reqID, _ := ctx.Value(obs.RequestIDKey).(string)
	log.Printf(
		"req_id=%s op=assign origin=%q drivers=%d present=%d assigned=%d self_driven=%d unassigned=%d distance=%.1f",
		reqID, origin, len(req.Session.Drivers), len(req.Session.Present),
		res.AssignedCount(), len(res.SelfDriven), len(res.Unassigned), res.TotalDistance(),
	)

	return res, nil
}

// presentAreas returns the sorted, distinct home areas of the present people.
// People not on the roster are skipped here and reported by AssignRides.
func presentAreas(roster *domain.Roster, present []string) []string {
	areas := make([]string, 0, len(present))
	for _, p := range present {
		if a, ok := roster.AreaOf(strings.TrimSpace(p)); ok {
			areas = append(areas, a)
		}
	}
	slices.Sort(areas)
	return slices.Compact(areas)
}

func fetchOriginRow(
	ctx context.Context,
	provider ports.DistanceProvider,
	origin string,
	areas []string,
) (map[string]float64, error) {
	// Prefer batched distance lookups when supported to reduce round trips.
	if mp, ok := provider.(ports.DistanceMatrixProvider); ok {
		row, err := mp.GetDistances(ctx, origin, areas)
		if err != nil {
			return nil, fmt.Errorf("get distances from %q: %w", origin, err)
		}
		return row, nil
	}

	// Missing destinations are skipped; a missing origin row fails like the batched path.
	row := make(map[string]float64, len(areas))
	for _, a := range areas {
		d, err := provider.GetDistance(ctx, origin, a)
		if err != nil {
			var missing *domain.MissingDistanceError
			if errors.As(err, &missing) && missing.To != "" {
				continue
			}
			return nil, fmt.Errorf("get distance %q -> %q: %w", origin, a, err)
		}
		row[a] = d
	}
	return row, nil
}

func recordRun(res *domain.Result, err error) {
	if err != nil {
		kind := domain.ErrorKind(err)
		if kind == "" {
			kind = "error"
		}
		metrics.AssignmentRuns.WithLabelValues(kind).Inc()
		return
	}

	metrics.AssignmentRuns.WithLabelValues("ok").Inc()
	metrics.PassengersAssigned.Add(float64(res.AssignedCount()))
	metrics.PeopleUnassigned.Add(float64(len(res.Unassigned)))
	metrics.DistanceTravelled.Observe(res.TotalDistance())
}
