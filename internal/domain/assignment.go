package domain

import (
	"fmt"
	"slices"
)

// Represents a single person riding with a driver.
// Distance is the origin -> home area distance charged for this pickup.
type Passenger struct {
	Name         string
	Area         string
	Distance     float64
	ParentPickup bool
}

// Ride accumulated for one driver during an assignment run.
// Passengers are kept in assignment order, which is not a route order:
// every pickup is priced independently from the origin.
type RideAssignment struct {
	Driver            Driver
	Passengers        []Passenger
	DistanceTravelled float64
}

func NewRideAssignment(d Driver) *RideAssignment {
	return &RideAssignment{Driver: d, Passengers: []Passenger{}}
}

// SeatsUsed counts passengers that occupy a seat. The parent pickup rides free.
func (r *RideAssignment) SeatsUsed() int {
	n := 0
	for _, p := range r.Passengers {
		if !p.ParentPickup {
			n++
		}
	}
	return n
}

// HasFreeSeat reports whether another seated passenger fits.
func (r *RideAssignment) HasFreeSeat() bool {
	return r.SeatsUsed() < r.Driver.Seats
}

// Board adds a passenger to the ride and charges its distance.
func (r *RideAssignment) Board(p Passenger) error {
	if p.Name == r.Driver.Name {
		return fmt.Errorf("board ride: driver %q cannot be their own passenger", r.Driver.Name)
	}
	if !p.ParentPickup && !r.HasFreeSeat() {
		return fmt.Errorf("board ride: driver %q is at full capacity (seats=%d)", r.Driver.Name, r.Driver.Seats)
	}
	r.Passengers = append(r.Passengers, p)
	r.DistanceTravelled += p.Distance
	return nil
}

// Names returns passenger names in assignment order.
func (r *RideAssignment) Names() []string {
	out := make([]string, 0, len(r.Passengers))
	for _, p := range r.Passengers {
		out = append(out, p.Name)
	}
	return out
}

// Result is the outcome of one assignment run.
//
// Rides follow driver input order and include drivers who got nobody.
// SelfDriven lists present drivers taken out of the pool because they
// ride in their own car. Unassigned and SelfDriven are sorted.
type Result struct {
	Origin     string
	Rides      []RideAssignment
	Unassigned []string
	SelfDriven []string
}

// Assignments returns driver -> passenger names for drivers with at least one passenger.
func (r *Result) Assignments() map[string][]string {
	out := make(map[string][]string, len(r.Rides))
	for i := range r.Rides {
		if len(r.Rides[i].Passengers) == 0 {
			continue
		}
		out[r.Rides[i].Driver.Name] = r.Rides[i].Names()
	}
	return out
}

// AssignedCount is the total number of passengers across all rides.
func (r *Result) AssignedCount() int {
	n := 0
	for i := range r.Rides {
		n += len(r.Rides[i].Passengers)
	}
	return n
}

// TotalDistance sums DistanceTravelled over all rides.
func (r *Result) TotalDistance() float64 {
	total := 0.0
	for i := range r.Rides {
		total += r.Rides[i].DistanceTravelled
	}
	return total
}

// Ride returns the assignment for a driver by name.
func (r *Result) Ride(driver string) (*RideAssignment, bool) {
	i := slices.IndexFunc(r.Rides, func(a RideAssignment) bool { return a.Driver.Name == driver })
	if i < 0 {
		return nil, false
	}
	return &r.Rides[i], true
}
