package services

import (
	"carpool-service/internal/domain"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// AssignRides assigns present people to drivers using a greedy nearest-first heuristic.
//
// Drivers are served in the given order. A parent driver first takes the
// first present co-resident (by name) without using a seat; a present driver
// is then removed from the pool, parents included, so no driver can end up
// as anyone's passenger; every free seat is filled with the remaining
// person whose home area is closest to origin. Each pickup is priced as a
// separate trip from origin, not as a route.
//
// All input checks happen before any assignment: either a complete Result is
// returned or an error and no Result. People left over are a normal outcome.
func AssignRides(
	present []string,
	roster *domain.Roster,
	drivers []domain.Driver,
	distances domain.DistanceMatrix,
	origin string,
) (*domain.Result, error) {
	remaining := uniqueSorted(present)
	if len(remaining) == 0 {
		return nil, domain.ErrNoPeoplePresent
	}

	if len(drivers) == 0 {
		return nil, domain.ErrNoDrivers
	}

	if roster == nil {
		return nil, errors.New("assign rides: roster must be non-nil")
	}

	drivers, err := normalizeDrivers(drivers)
	if err != nil {
		return nil, err
	}

	// Resolve every distance the run can need up front so the greedy pass
	// itself cannot fail.
	homeDistance, err := originDistances(remaining, roster, distances, origin)
	if err != nil {
		return nil, err
	}

	res := &domain.Result{
		Origin:     origin,
		Rides:      make([]domain.RideAssignment, 0, len(drivers)),
		Unassigned: []string{},
		SelfDriven: []string{},
	}

	for _, d := range drivers {
		ride := domain.NewRideAssignment(d)

		if d.IsParent {
			if child, ok := findChild(remaining, roster, d); ok {
				area, _ := roster.AreaOf(d.Name)
				if err := ride.Board(domain.Passenger{
					Name:         child,
					Area:         area,
					Distance:     homeDistance[area],
					ParentPickup: true,
				}); err != nil {
					return nil, fmt.Errorf("assign rides: %w", err)
				}
				remaining = remove(remaining, child)
			}
		}

		// A present driver rides in their own car.
		if _, ok := slices.BinarySearch(remaining, d.Name); ok {
			remaining = remove(remaining, d.Name)
			res.SelfDriven = append(res.SelfDriven, d.Name)
		}

		for len(remaining) > 0 && ride.HasFreeSeat() {
			best := ""
			bestArea := ""
			minDistance := math.Inf(1)

			// remaining is sorted, so strict < keeps the first name on ties.
			for _, p := range remaining {
				area, _ := roster.AreaOf(p)
				if dist := homeDistance[area]; dist < minDistance {
					best, bestArea, minDistance = p, area, dist
				}
			}

			if best == "" {
				return nil, errors.New("assign rides: failed to select next passenger")
			}

			if err := ride.Board(domain.Passenger{Name: best, Area: bestArea, Distance: minDistance}); err != nil {
				return nil, fmt.Errorf("assign rides: %w", err)
			}
			remaining = remove(remaining, best)
		}

		res.Rides = append(res.Rides, *ride)
	}

	res.Unassigned = append(res.Unassigned, remaining...)
	slices.Sort(res.SelfDriven)

	return res, nil
}

// normalizeDrivers returns a copy of drivers with trimmed names, matching
// how present names are read, and rejects empty, duplicate or negative-seat entries.
func normalizeDrivers(drivers []domain.Driver) ([]domain.Driver, error) {
	out := make([]domain.Driver, 0, len(drivers))
	seen := make(map[string]struct{}, len(drivers))
	for _, d := range drivers {
		d.Name = strings.TrimSpace(d.Name)
		if d.Name == "" {
			return nil, &domain.DuplicateDriverError{}
		}
		if _, ok := seen[d.Name]; ok {
			return nil, &domain.DuplicateDriverError{Name: d.Name}
		}
		seen[d.Name] = struct{}{}

		if d.Seats < 0 {
			return nil, &domain.InvalidSeatCountError{Driver: d.Name, Input: fmt.Sprint(d.Seats)}
		}
		out = append(out, d)
	}
	return out, nil
}

// originDistances returns origin -> area for every area a present person
// lives in. A parent pickup is always in a present person's area.
func originDistances(
	people []string,
	roster *domain.Roster,
	distances domain.DistanceMatrix,
	origin string,
) (map[string]float64, error) {
	if !distances.HasOrigin(origin) {
		return nil, &domain.MissingDistanceError{From: origin}
	}

	areas := make([]string, 0, len(people))
	for _, p := range people {
		area, ok := roster.AreaOf(p)
		if !ok {
			return nil, &domain.UnknownPersonError{Name: p}
		}
		areas = append(areas, area)
	}

	out := make(map[string]float64, len(areas))
	for _, a := range areas {
		if _, ok := out[a]; ok {
			continue
		}
		dist, err := distances.Distance(origin, a)
		if err != nil {
			return nil, err
		}
		out[a] = dist
	}
	return out, nil
}

// findChild returns the first remaining person, other than the driver, who
// shares the driver's home area.
func findChild(remaining []string, roster *domain.Roster, d domain.Driver) (string, bool) {
	home, ok := roster.AreaOf(d.Name)
	if !ok {
		return "", false
	}
	for _, p := range remaining {
		if p == d.Name {
			continue
		}
		if area, _ := roster.AreaOf(p); area == home {
			return p, true
		}
	}
	return "", false
}

func uniqueSorted(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func remove(names []string, name string) []string {
	i, ok := slices.BinarySearch(names, name)
	if !ok {
		return names
	}
	return slices.Delete(names, i, i+1)
}
