package ports

import "context"

// Contract for retrieving the distance between two areas.
type DistanceProvider interface {
	// Return the distance from origin to destination.
	// Implementations report an unknown pair with a *domain.MissingDistanceError.
	GetDistance(ctx context.Context, origin string, destination string) (float64, error)
}
