package cache

import (
	"carpool-service/internal/domain"
	"carpool-service/internal/platform/obs"
	"carpool-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
)

// CachedDistanceProvider checks a DistanceCache before delegating to the
// underlying provider and writes fetched distances back.
//
// Cache failures are logged and bypassed; the provider stays the source of truth.
type CachedDistanceProvider struct {
	next  ports.DistanceProvider
	cache ports.DistanceCache
}

func NewCachedDistanceProvider(next ports.DistanceProvider, cache ports.DistanceCache) *CachedDistanceProvider {
	return &CachedDistanceProvider{next: next, cache: cache}
}

// Delegate to batched path to reuse caching logic.
func (p *CachedDistanceProvider) GetDistance(ctx context.Context, origin, destination string) (float64, error) {
	row, err := p.GetDistances(ctx, origin, []string{destination})
	if err != nil {
		return 0, err
	}
	d, ok := row[destination]
	if !ok {
		return 0, &domain.MissingDistanceError{From: origin, To: destination}
	}
	return d, nil
}

func (p *CachedDistanceProvider) GetDistances(
	ctx context.Context,
	origin string,
	destinations []string,
) (map[string]float64, error) {
	reqID := obs.RequestID(ctx)

	hits := map[string]float64{}
	if p.cache != nil {
		cached, err := p.cache.GetMany(ctx, origin, destinations)
		if err != nil {
			log.Printf("req_id=%s distance cache read failed: %v", reqID, err)
		} else {
			hits = cached
		}
	}

	misses := make([]string, 0, len(destinations))
	for _, d := range destinations {
		if _, ok := hits[d]; !ok {
			misses = append(misses, d)
		}
	}

	if len(misses) == 0 {
		return hits, nil
	}

	fetched, err := p.fetch(ctx, origin, misses)
	if err != nil {
		return nil, err
	}

	if p.cache != nil && len(fetched) > 0 {
		if err := p.cache.PutMany(ctx, origin, fetched); err != nil {
			log.Printf("req_id=%s distance cache write failed: %v", reqID, err)
		}
	}

	out := make(map[string]float64, len(hits)+len(fetched))
	for k, v := range hits {
		out[k] = v
	}
	for k, v := range fetched {
		out[k] = v
	}
	return out, nil
}

func (p *CachedDistanceProvider) fetch(ctx context.Context, origin string, destinations []string) (map[string]float64, error) {
	if mp, ok := p.next.(ports.DistanceMatrixProvider); ok {
		row, err := mp.GetDistances(ctx, origin, destinations)
		if err != nil {
			return nil, fmt.Errorf("cached provider: %w", err)
		}
		return row, nil
	}

	row := make(map[string]float64, len(destinations))
	for _, d := range destinations {
		dist, err := p.next.GetDistance(ctx, origin, d)
		if err != nil {
			var missing *domain.MissingDistanceError
			if errors.As(err, &missing) && missing.To != "" {
				continue
			}
			return nil, fmt.Errorf("cached provider: %w", err)
		}
		row[d] = dist
	}
	return row, nil
}
