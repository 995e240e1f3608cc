package distance

import (
	"carpool-service/internal/domain"
	"context"
)

type MockPair struct {
	From, To string
	Distance float64
}

// MockDistanceProvider answers single pair lookups from a fixed table.
// It deliberately does not implement ports.DistanceMatrixProvider.
// An origin with no pairs at all is reported as a missing origin row.
type MockDistanceProvider struct {
	m       map[string]float64
	origins map[string]struct{}
	Calls   int
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]float64, len(pairs))
	origins := make(map[string]struct{})
	for _, p := range pairs {
		m[p.From+"|"+p.To] = p.Distance
		origins[p.From] = struct{}{}
	}
	return &MockDistanceProvider{m: m, origins: origins}
}

func (p *MockDistanceProvider) GetDistance(ctx context.Context, origin, destination string) (float64, error) {
	p.Calls++
	if _, ok := p.origins[origin]; !ok {
		return 0, &domain.MissingDistanceError{From: origin}
	}
	d, ok := p.m[origin+"|"+destination]
	if !ok {
		return 0, &domain.MissingDistanceError{From: origin, To: destination}
	}

	return d, nil
}
