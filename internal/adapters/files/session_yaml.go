package files

import (
	"carpool-service/internal/domain"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type sessionDriver struct {
	Name   string `yaml:"name"`
	Seats  string `yaml:"seats"`
	Parent bool   `yaml:"parent"`
}

type sessionStudent struct {
	Name string `yaml:"name"`
	Area string `yaml:"area"`
}

type sessionFile struct {
	Origin   string           `yaml:"origin"`
	Present  []string         `yaml:"present"`
	Students []sessionStudent `yaml:"students"`
	Drivers  []sessionDriver  `yaml:"drivers"`
}

// LoadSessionYAML reads a session file: who is present, ad-hoc students
// and drivers in order. Seat counts go through domain.ParseSeats.
func LoadSessionYAML(path string) (domain.Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session %q: %w", path, err)
	}
	defer f.Close()

	s, err := ParseSessionYAML(f)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session %q: %w", path, err)
	}
	return s, nil
}

func ParseSessionYAML(r io.Reader) (domain.Session, error) {
	var raw sessionFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return domain.Session{}, fmt.Errorf("parse session: %w", err)
	}

	s := domain.Session{
		Origin:  strings.TrimSpace(raw.Origin),
		Present: make([]string, 0, len(raw.Present)),
	}
	for _, p := range raw.Present {
		if p = strings.TrimSpace(p); p != "" {
			s.Present = append(s.Present, p)
		}
	}
	for _, st := range raw.Students {
		s.Students = append(s.Students, domain.Student{
			Name: strings.TrimSpace(st.Name),
			Area: strings.TrimSpace(st.Area),
		})
	}
	for _, d := range raw.Drivers {
		name := strings.TrimSpace(d.Name)
		seats, err := domain.ParseSeats(name, d.Seats)
		if err != nil {
			return domain.Session{}, fmt.Errorf("parse session: %w", err)
		}
		s.AddDriver(domain.Driver{Name: name, Seats: seats, IsParent: d.Parent})
	}

	return s, nil
}
