package ports

import "context"

// Cache of origin -> destination distances placed in front of a DistanceProvider.
type DistanceCache interface {
	// Return cached distances; misses are simply absent from the result.
	GetMany(ctx context.Context, origin string, destinations []string) (map[string]float64, error)
	// Store distances for a single origin.
	PutMany(ctx context.Context, origin string, results map[string]float64) error
}
