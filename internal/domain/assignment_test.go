package domain

import (
	"errors"
	"testing"
)

func TestRideAssignmentBoard(t *testing.T) {
	ride := NewRideAssignment(Driver{Name: "bob", Seats: 1, IsParent: true})

	if err := ride.Board(Passenger{Name: "kid", Area: "B", Distance: 3, ParentPickup: true}); err != nil {
		t.Fatalf("parent pickup: unexpected error: %v", err)
	}
	if err := ride.Board(Passenger{Name: "alice", Area: "A", Distance: 5}); err != nil {
		t.Fatalf("seated passenger: unexpected error: %v", err)
	}
	if err := ride.Board(Passenger{Name: "carol", Area: "A", Distance: 5}); err == nil {
		t.Fatal("expected capacity error for second seated passenger")
	}
	if err := ride.Board(Passenger{Name: "bob", ParentPickup: true}); err == nil {
		t.Fatal("expected error boarding the driver")
	}

	if ride.SeatsUsed() != 1 {
		t.Fatalf("seats used = %d, want 1", ride.SeatsUsed())
	}
	if ride.DistanceTravelled != 8 {
		t.Fatalf("distance = %v, want 8", ride.DistanceTravelled)
	}
}

func TestResultAssignments(t *testing.T) {
	res := Result{
		Rides: []RideAssignment{
			{Driver: Driver{Name: "bob"}, Passengers: []Passenger{{Name: "carol", Distance: 3}, {Name: "alice", Distance: 5}}, DistanceTravelled: 8},
			{Driver: Driver{Name: "dan"}, Passengers: []Passenger{}},
		},
	}

	got := res.Assignments()
	if len(got) != 1 {
		t.Fatalf("expected 1 driver with passengers, got %d", len(got))
	}
	if p := got["bob"]; len(p) != 2 || p[0] != "carol" || p[1] != "alice" {
		t.Fatalf("bob passengers = %v", p)
	}
	if res.AssignedCount() != 2 || res.TotalDistance() != 8 {
		t.Fatalf("count=%d total=%v", res.AssignedCount(), res.TotalDistance())
	}
	if _, ok := res.Ride("dan"); !ok {
		t.Fatal("expected ride for dan")
	}
}

func TestDistanceMatrixLookup(t *testing.T) {
	m := DistanceMatrix{}
	m.Set("Tichonet", "A", 5)

	if d, err := m.Distance("Tichonet", "A"); err != nil || d != 5 {
		t.Fatalf("distance = %v, err = %v", d, err)
	}

	var missing *MissingDistanceError
	if _, err := m.Distance("Tichonet", "B"); !errors.As(err, &missing) || missing.To != "B" {
		t.Fatalf("expected MissingDistanceError for B, got %v", err)
	}
	if _, err := m.Distance("Elsewhere", "A"); !errors.As(err, &missing) || missing.To != "" {
		t.Fatalf("expected MissingDistanceError for origin row, got %v", err)
	}
}

func TestSessionAddDriverReplaces(t *testing.T) {
	var s Session
	s.AddDriver(Driver{Name: "bob", Seats: 2})
	s.AddDriver(Driver{Name: "dan", Seats: 1})
	s.AddDriver(Driver{Name: "bob", Seats: 4, IsParent: true})

	if len(s.Drivers) != 2 {
		t.Fatalf("expected 2 drivers, got %d", len(s.Drivers))
	}
	if s.Drivers[0].Name != "bob" || s.Drivers[0].Seats != 4 || !s.Drivers[0].IsParent {
		t.Fatalf("bob not replaced in place: %+v", s.Drivers[0])
	}
}

func TestParseSeats(t *testing.T) {
	if n, err := ParseSeats("bob", " 3 "); err != nil || n != 3 {
		t.Fatalf("ParseSeats = %d, %v", n, err)
	}

	for _, raw := range []string{"", "-1", "two", "1.5"} {
		var seats *InvalidSeatCountError
		if _, err := ParseSeats("bob", raw); !errors.As(err, &seats) {
			t.Errorf("ParseSeats(%q): expected InvalidSeatCountError, got %v", raw, err)
		}
	}
}
