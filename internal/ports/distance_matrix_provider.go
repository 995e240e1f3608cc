package ports

import "context"

// Optional extension of DistanceProvider that supports batched lookups.
type DistanceMatrixProvider interface {
	DistanceProvider
	// Return distances from one origin to many destinations.
	// Destinations without a known distance are left out of the result.
	GetDistances(ctx context.Context, origin string, destinations []string) (map[string]float64, error)
}
