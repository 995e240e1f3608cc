package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPeoplePresent is returned when a session marks nobody as present.
	ErrNoPeoplePresent = errors.New("no people present: select at least one person present today")

	// ErrNoDrivers is returned when a session has no drivers.
	ErrNoDrivers = errors.New("no drivers: add at least one driver")
)

// InvalidSeatCountError reports seat input that is negative or not a number.
type InvalidSeatCountError struct {
	Driver string
	Input  string
}

func (e *InvalidSeatCountError) Error() string {
	return fmt.Sprintf("invalid seat count for driver %q: %q is not a non-negative whole number", e.Driver, e.Input)
}

// MissingDistanceError reports an area pair absent from the distance matrix.
// An empty To means the origin row itself is missing.
type MissingDistanceError struct {
	From string
	To   string
}

func (e *MissingDistanceError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("missing distance data: origin %q has no row in the distance table", e.From)
	}
	return fmt.Sprintf("missing distance data: no distance from %q to %q", e.From, e.To)
}

// MissingAreaDataError reports a roster or distance file that is absent, unreadable or malformed.
type MissingAreaDataError struct {
	Path string
	Err  error
}

func (e *MissingAreaDataError) Error() string {
	return fmt.Sprintf("missing area data: %q: %v", e.Path, e.Err)
}

func (e *MissingAreaDataError) Unwrap() error { return e.Err }

// UnknownPersonError reports a present person who does not live in any roster area.
type UnknownPersonError struct {
	Name string
}

func (e *UnknownPersonError) Error() string {
	return fmt.Sprintf("unknown person %q: not a resident of any area", e.Name)
}

// DuplicateDriverError reports a driver listed more than once, or with an empty name.
type DuplicateDriverError struct {
	Name string
}

func (e *DuplicateDriverError) Error() string {
	if e.Name == "" {
		return "invalid driver: name must not be empty"
	}
	return fmt.Sprintf("duplicate driver %q", e.Name)
}

// InvalidStudentError reports an ad-hoc student without a name or an area.
type InvalidStudentError struct {
	Name string
	Area string
}

func (e *InvalidStudentError) Error() string {
	return fmt.Sprintf("invalid student (name=%q area=%q): both name and area must be provided", e.Name, e.Area)
}

// ErrorKind names the input error kind of err, or returns "" when err is not
// one of the kinds above.
func ErrorKind(err error) string {
	var (
		seats    *InvalidSeatCountError
		distance *MissingDistanceError
		data     *MissingAreaDataError
		person   *UnknownPersonError
		driver   *DuplicateDriverError
		student  *InvalidStudentError
	)

	switch {
	case errors.Is(err, ErrNoPeoplePresent):
		return "no_people_present"
	case errors.Is(err, ErrNoDrivers):
		return "no_drivers"
	case errors.As(err, &seats):
		return "invalid_seat_count"
	case errors.As(err, &distance):
		return "missing_distance"
	case errors.As(err, &data):
		return "missing_area_data"
	case errors.As(err, &person):
		return "unknown_person"
	case errors.As(err, &driver):
		return "duplicate_driver"
	case errors.As(err, &student):
		return "invalid_student"
	}
	return ""
}
