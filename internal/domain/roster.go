package domain

import (
	"slices"
	"strings"
)

// Area is a named zone and the people who live there.
type Area struct {
	Name      string
	Residents []string
}

// Roster is the immutable area membership used for one assignment run.
//
// The person -> area index is built once at construction so home-area
// lookups do not rescan every area. A person listed under several areas
// lives in the first one, in roster order.
type Roster struct {
	areas []Area
	pos   map[string]int
	home  map[string]string
}

// NewRoster builds a roster from area records. Names are trimmed, blank
// names skipped and repeated area records merged in order of appearance.
func NewRoster(areas []Area) *Roster {
	r := &Roster{
		pos:  make(map[string]int, len(areas)),
		home: make(map[string]string),
	}
	for _, a := range areas {
		r.add(a.Name, a.Residents...)
	}
	return r
}

func (r *Roster) add(area string, people ...string) {
	area = strings.TrimSpace(area)
	if area == "" {
		return
	}

	i, ok := r.pos[area]
	if !ok {
		i = len(r.areas)
		r.pos[area] = i
		r.areas = append(r.areas, Area{Name: area})
	}

	for _, p := range people {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		r.areas[i].Residents = append(r.areas[i].Residents, p)
		if _, seen := r.home[p]; !seen {
			r.home[p] = area
		}
	}
}

// AreaOf returns the home area of a person.
func (r *Roster) AreaOf(person string) (string, bool) {
	a, ok := r.home[person]
	return a, ok
}

// Residents returns the people listed under area, in roster order.
func (r *Roster) Residents(area string) []string {
	i, ok := r.pos[area]
	if !ok {
		return nil
	}
	return slices.Clone(r.areas[i].Residents)
}

// Areas returns a copy of the area records in roster order.
func (r *Roster) Areas() []Area {
	out := make([]Area, 0, len(r.areas))
	for _, a := range r.areas {
		out = append(out, Area{Name: a.Name, Residents: slices.Clone(a.Residents)})
	}
	return out
}

// People returns every resident name, sorted.
func (r *Roster) People() []string {
	out := make([]string, 0, len(r.home))
	for p := range r.home {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// WithResidents returns a new roster with the ad-hoc students appended to
// their areas. Unknown areas are created. The receiver is not modified.
func (r *Roster) WithResidents(students []Student) (*Roster, error) {
	for _, s := range students {
		if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Area) == "" {
			return nil, &InvalidStudentError{Name: s.Name, Area: s.Area}
		}
	}

	next := NewRoster(r.areas)
	for _, s := range students {
		next.add(s.Area, s.Name)
	}
	return next, nil
}
