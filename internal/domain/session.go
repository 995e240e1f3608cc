package domain

import (
	"strconv"
	"strings"
)

// Driver is a person offering seats for one session.
// Seats excludes the driver. A parent driver picks up their own
// co-resident child first without using a seat.
type Driver struct {
	Name     string
	Seats    int
	IsParent bool
}

// Student is an ad-hoc person added to an area for the current session only.
type Student struct {
	Name string
	Area string
}

// Session holds everything chosen for one assignment run: who is present,
// which ad-hoc students to add and who drives, in driver order.
type Session struct {
	Origin   string
	Present  []string
	Students []Student
	Drivers  []Driver
}

// AddDriver appends a driver, or replaces the seats and parent flag of a
// driver with the same name while keeping its original position.
func (s *Session) AddDriver(d Driver) {
	for i := range s.Drivers {
		if s.Drivers[i].Name == d.Name {
			s.Drivers[i] = d
			return
		}
	}
	s.Drivers = append(s.Drivers, d)
}

// ParseSeats converts raw seat input (form field, CLI flag, session file)
// into a seat count. Blank, non-numeric and negative input are rejected.
func ParseSeats(driver string, raw string) (int, error) {
	seats, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || seats < 0 {
		return 0, &InvalidSeatCountError{Driver: driver, Input: raw}
	}
	return seats, nil
}
