package files

import (
	"carpool-service/internal/domain"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestParseRosterCSV(t *testing.T) {
	in := "A, alice, ,bob\nB,carol\nA,dana\n"

	r, err := ParseRosterCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := r.Residents("A"); !slices.Equal(got, []string{"alice", "bob", "dana"}) {
		t.Fatalf("residents of A = %v", got)
	}
	if a, ok := r.AreaOf("carol"); !ok || a != "B" {
		t.Fatalf("carol area = %q (ok=%v)", a, ok)
	}
}

func TestLoadRosterCSVMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people_areas.csv")

	_, err := LoadRosterCSV(path)

	var missing *domain.MissingAreaDataError
	if !errors.As(err, &missing) || missing.Path != path {
		t.Fatalf("expected MissingAreaDataError for %q, got %v", path, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestParseMatrixCSV(t *testing.T) {
	in := ",A,B,Tichonet\nTichonet,5,3.5,0\nA,0,2,5\n"

	m, err := ParseMatrixCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d, err := m.Distance("Tichonet", "B"); err != nil || d != 3.5 {
		t.Fatalf("Tichonet -> B = %v, %v", d, err)
	}
	if d, err := m.Distance("A", "B"); err != nil || d != 2 {
		t.Fatalf("A -> B = %v, %v", d, err)
	}
}

func TestParseMatrixCSVRejectsBadValues(t *testing.T) {
	cases := []string{
		"",
		",A\nTichonet,-1\n",
		",A\nTichonet,far\n",
		",A\nTichonet,1,2\n",
	}
	for _, in := range cases {
		if _, err := ParseMatrixCSV(strings.NewReader(in)); err == nil {
			t.Errorf("ParseMatrixCSV(%q): expected error", in)
		}
	}
}

func TestLoadMatrixCSVFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "distance_matrix.csv")
	if err := os.WriteFile(path, []byte(",A\nTichonet,4\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	m, err := LoadMatrixCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := NewStaticMatrixProvider(m)
	row, err := p.GetDistances(context.Background(), "Tichonet", []string{"A", "Z"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(row) != 1 || row["A"] != 4 {
		t.Fatalf("row = %v, want only A=4", row)
	}

	var missing *domain.MissingDistanceError
	if _, err := p.GetDistances(context.Background(), "Nowhere", []string{"A"}); !errors.As(err, &missing) {
		t.Fatalf("expected MissingDistanceError for unknown origin, got %v", err)
	}
}

func TestParseSessionYAML(t *testing.T) {
	in := `
origin: Tichonet
present: [alice, " bob ", carol]
students:
  - {name: dana, area: A}
drivers:
  - {name: bob, seats: 2}
  - {name: pat, seats: "1", parent: true}
  - {name: bob, seats: 3}
`
	s, err := ParseSessionYAML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Origin != "Tichonet" {
		t.Fatalf("origin = %q", s.Origin)
	}
	if !slices.Equal(s.Present, []string{"alice", "bob", "carol"}) {
		t.Fatalf("present = %v", s.Present)
	}
	if len(s.Students) != 1 || s.Students[0] != (domain.Student{Name: "dana", Area: "A"}) {
		t.Fatalf("students = %v", s.Students)
	}
	want := []domain.Driver{{Name: "bob", Seats: 3}, {Name: "pat", Seats: 1, IsParent: true}}
	if !slices.Equal(s.Drivers, want) {
		t.Fatalf("drivers = %+v, want %+v", s.Drivers, want)
	}
}

func TestParseSessionYAMLInvalidSeats(t *testing.T) {
	in := "present: [alice]\ndrivers:\n  - {name: bob, seats: lots}\n"

	_, err := ParseSessionYAML(strings.NewReader(in))

	var seats *domain.InvalidSeatCountError
	if !errors.As(err, &seats) || seats.Driver != "bob" {
		t.Fatalf("expected InvalidSeatCountError for bob, got %v", err)
	}
}
