package services

import (
	"carpool-service/internal/adapters/distance"
	"carpool-service/internal/adapters/files"
	"carpool-service/internal/domain"
	"carpool-service/internal/ports"
	"context"
	"errors"
	"slices"
	"testing"
)

func testRoster() files.StaticRoster {
	return files.StaticRoster{Roster: domain.NewRoster([]domain.Area{
		{Name: "A", Residents: []string{"alice"}},
		{Name: "B", Residents: []string{"bob", "carol"}},
		{Name: "C", Residents: []string{"cleo"}},
	})}
}

func TestPlanRidesPairProvider(t *testing.T) {
	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: "Tichonet", To: "A", Distance: 5},
		{From: "Tichonet", To: "B", Distance: 3},
		{From: "Tichonet", To: "D", Distance: 1},
	})

	req := PlanRidesRequest{
		Origin: "Tichonet",
		Session: domain.Session{
			Present:  []string{"alice", "bob", "carol", "dana"},
			Students: []domain.Student{{Name: "dana", Area: "D"}},
			Drivers:  []domain.Driver{{Name: "bob", Seats: 2}},
		},
	}

	res, err := PlanRides(context.Background(), req, testRoster(), provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := res.Assignments()["bob"]; !slices.Equal(got, []string{"dana", "carol"}) {
		t.Fatalf("bob passengers = %v, want [dana carol]", got)
	}
	if !slices.Equal(res.Unassigned, []string{"alice"}) {
		t.Fatalf("unassigned = %v, want [alice]", res.Unassigned)
	}
	// One lookup per distinct present area.
	if provider.Calls != 3 {
		t.Fatalf("provider calls = %d, want 3", provider.Calls)
	}
}

func TestPlanRidesMatrixProvider(t *testing.T) {
	m := domain.DistanceMatrix{}
	m.Set("Tichonet", "A", 5)
	m.Set("Tichonet", "B", 3)

	req := PlanRidesRequest{
		Origin: "Tichonet",
		Session: domain.Session{
			Present: []string{"alice", "carol"},
			Drivers: []domain.Driver{{Name: "bob", Seats: 1, IsParent: true}},
		},
	}

	res, err := PlanRides(context.Background(), req, testRoster(), files.NewStaticMatrixProvider(m))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ride, ok := res.Ride("bob")
	if !ok || len(ride.Passengers) != 2 {
		t.Fatalf("ride = %+v", ride)
	}
	if !ride.Passengers[0].ParentPickup || ride.Passengers[0].Name != "carol" {
		t.Fatalf("expected carol as parent pickup first, got %+v", ride.Passengers[0])
	}
	if ride.DistanceTravelled != 8 {
		t.Fatalf("distance = %v, want 8", ride.DistanceTravelled)
	}
}

func TestPlanRidesMissingDistance(t *testing.T) {
	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: "Tichonet", To: "A", Distance: 5},
	})

	req := PlanRidesRequest{
		Origin: "Tichonet",
		Session: domain.Session{
			Present: []string{"alice", "cleo"},
			Drivers: []domain.Driver{{Name: "bob", Seats: 2}},
		},
	}

	res, err := PlanRides(context.Background(), req, testRoster(), provider)
	if res != nil {
		t.Fatalf("expected no result, got %+v", res)
	}
	var missing *domain.MissingDistanceError
	if !errors.As(err, &missing) || missing.To != "C" {
		t.Fatalf("expected MissingDistanceError for C, got %v", err)
	}
}

func TestPlanRidesUnknownOriginSameForBothProviders(t *testing.T) {
	req := PlanRidesRequest{
		Origin: "Mars",
		Session: domain.Session{
			Present: []string{"alice"},
			Drivers: []domain.Driver{{Name: "bob", Seats: 1}},
		},
	}

	m := domain.DistanceMatrix{}
	m.Set("Tichonet", "A", 5)
	pairs := distance.NewMockDistanceProvider([]distance.MockPair{{From: "Tichonet", To: "A", Distance: 5}})

	for name, provider := range map[string]ports.DistanceProvider{
		"matrix": files.NewStaticMatrixProvider(m),
		"pairs":  pairs,
	} {
		_, err := PlanRides(context.Background(), req, testRoster(), provider)

		var missing *domain.MissingDistanceError
		if !errors.As(err, &missing) || missing.From != "Mars" || missing.To != "" {
			t.Errorf("%s: expected missing origin row for Mars, got %v", name, err)
		}
	}
}

func TestPlanRidesChecksBeforeLoading(t *testing.T) {
	provider := distance.NewMockDistanceProvider(nil)

	_, err := PlanRides(context.Background(), PlanRidesRequest{
		Origin:  "Tichonet",
		Session: domain.Session{Drivers: []domain.Driver{{Name: "bob", Seats: 1}}},
	}, testRoster(), provider)
	if !errors.Is(err, domain.ErrNoPeoplePresent) {
		t.Fatalf("expected ErrNoPeoplePresent, got %v", err)
	}

	_, err = PlanRides(context.Background(), PlanRidesRequest{
		Origin:  "Tichonet",
		Session: domain.Session{Present: []string{"alice"}},
	}, testRoster(), provider)
	if !errors.Is(err, domain.ErrNoDrivers) {
		t.Fatalf("expected ErrNoDrivers, got %v", err)
	}

	if provider.Calls != 0 {
		t.Fatalf("provider called %d times before validation", provider.Calls)
	}
}

func TestPlanRidesRosterUnavailable(t *testing.T) {
	rosters := files.NewRosterFile("does/not/exist.csv")

	_, err := PlanRides(context.Background(), PlanRidesRequest{
		Origin: "Tichonet",
		Session: domain.Session{
			Present: []string{"alice"},
			Drivers: []domain.Driver{{Name: "bob", Seats: 1}},
		},
	}, rosters, distance.NewMockDistanceProvider(nil))

	if domain.ErrorKind(err) != "missing_area_data" {
		t.Fatalf("expected missing_area_data, got %v", err)
	}
}
