package files

import (
	"carpool-service/internal/domain"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadRosterCSV reads the area roster file. Each row is
// "area,person,person,..."; blank cells are skipped and repeated areas merged.
func LoadRosterCSV(path string) (*domain.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.MissingAreaDataError{Path: path, Err: err}
	}
	defer f.Close()

	roster, err := ParseRosterCSV(f)
	if err != nil {
		return nil, &domain.MissingAreaDataError{Path: path, Err: err}
	}
	return roster, nil
}

func ParseRosterCSV(r io.Reader) (*domain.Roster, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var areas []domain.Area
	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse roster: line %d: %w", line, err)
		}
		if len(row) == 0 {
			continue
		}
		areas = append(areas, domain.Area{Name: row[0], Residents: row[1:]})
	}

	return domain.NewRoster(areas), nil
}

// RosterFile serves a roster read from a CSV file on every call, so edits
// to the file are picked up by the next run.
type RosterFile struct {
	Path string
}

func NewRosterFile(path string) *RosterFile {
	return &RosterFile{Path: path}
}

func (f *RosterFile) LoadRoster(ctx context.Context) (*domain.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadRosterCSV(f.Path)
}

// StaticRoster serves an already loaded roster.
type StaticRoster struct {
	Roster *domain.Roster
}

func (s StaticRoster) LoadRoster(ctx context.Context) (*domain.Roster, error) {
	if s.Roster == nil {
		return nil, errors.New("static roster: roster is nil")
	}
	return s.Roster, nil
}
