package files

import (
	"carpool-service/internal/domain"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadMatrixCSV reads the distance table. The header row lists destination
// areas after an ignored first cell; every following row starts with the
// origin area followed by one distance per destination.
func LoadMatrixCSV(path string) (domain.DistanceMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.MissingAreaDataError{Path: path, Err: err}
	}
	defer f.Close()

	m, err := ParseMatrixCSV(f)
	if err != nil {
		return nil, &domain.MissingAreaDataError{Path: path, Err: err}
	}
	return m, nil
}

func ParseMatrixCSV(r io.Reader) (domain.DistanceMatrix, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("parse distance matrix: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("parse distance matrix: header: %w", err)
	}

	destinations := make([]string, 0, len(header))
	for _, h := range header[1:] {
		destinations = append(destinations, strings.TrimSpace(h))
	}

	m := domain.DistanceMatrix{}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse distance matrix: line %d: %w", line, err)
		}

		origin := strings.TrimSpace(row[0])
		if origin == "" {
			continue
		}
		if len(row)-1 > len(destinations) {
			return nil, fmt.Errorf("parse distance matrix: line %d: %d values for %d areas", line, len(row)-1, len(destinations))
		}

		for i, cell := range row[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" || destinations[i] == "" {
				continue
			}
			d, err := strconv.ParseFloat(cell, 64)
			if err != nil || d < 0 || math.IsInf(d, 0) || math.IsNaN(d) {
				return nil, fmt.Errorf("parse distance matrix: line %d: %s -> %s: invalid distance %q", line, origin, destinations[i], cell)
			}
			m.Set(origin, destinations[i], d)
		}
	}

	return m, nil
}

// StaticMatrixProvider serves distances from an in-memory matrix.
// It implements ports.DistanceMatrixProvider.
type StaticMatrixProvider struct {
	Matrix domain.DistanceMatrix
}

func NewStaticMatrixProvider(m domain.DistanceMatrix) *StaticMatrixProvider {
	return &StaticMatrixProvider{Matrix: m}
}

func (p *StaticMatrixProvider) GetDistance(ctx context.Context, origin, destination string) (float64, error) {
	return p.Matrix.Distance(origin, destination)
}

func (p *StaticMatrixProvider) GetDistances(ctx context.Context, origin string, destinations []string) (map[string]float64, error) {
	if !p.Matrix.HasOrigin(origin) {
		return nil, &domain.MissingDistanceError{From: origin}
	}
	return p.Matrix.Row(origin, destinations), nil
}
