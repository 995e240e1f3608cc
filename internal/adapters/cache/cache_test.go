package cache

import (
	"carpool-service/internal/domain"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisDistanceCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisDistanceCache(rdb, ttl), mr
}

// countingProvider is an in-memory DistanceMatrixProvider that counts batched calls.
type countingProvider struct {
	m     domain.DistanceMatrix
	calls int
	asked []string
}

func (p *countingProvider) GetDistance(ctx context.Context, origin, destination string) (float64, error) {
	return p.m.Distance(origin, destination)
}

func (p *countingProvider) GetDistances(ctx context.Context, origin string, destinations []string) (map[string]float64, error) {
	p.calls++
	p.asked = append(p.asked, destinations...)
	if !p.m.HasOrigin(origin) {
		return nil, &domain.MissingDistanceError{From: origin}
	}
	return p.m.Row(origin, destinations), nil
}

// singleProvider only supports one-at-a-time lookups.
type singleProvider struct {
	m domain.DistanceMatrix
}

func (p singleProvider) GetDistance(ctx context.Context, origin, destination string) (float64, error) {
	return p.m.Distance(origin, destination)
}

func TestRedisDistanceCacheRoundTrip(t *testing.T) {
	c, mr := newTestCache(t, time.Hour)
	ctx := context.Background()

	if err := c.PutMany(ctx, "Tichonet", map[string]float64{"A": 5, "B": 3.25}); err != nil {
		t.Fatalf("PutMany: %v", err)
	}

	got, err := c.GetMany(ctx, "Tichonet", []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	if len(got) != 2 || got["A"] != 5 || got["B"] != 3.25 {
		t.Fatalf("got %v", got)
	}

	if ttl := mr.TTL(keyPrefix + "Tichonet"); ttl != time.Hour {
		t.Fatalf("ttl = %v, want 1h", ttl)
	}

	mr.FastForward(2 * time.Hour)
	got, err = c.GetMany(ctx, "Tichonet", []string{"A"})
	if err != nil {
		t.Fatalf("GetMany after expiry: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected expired entries, got %v", got)
	}
}

func TestRedisDistanceCacheRejectsEmptyKeys(t *testing.T) {
	c, _ := newTestCache(t, 0)
	ctx := context.Background()

	if _, err := c.GetMany(ctx, "", []string{"A"}); err == nil {
		t.Fatal("expected error for empty origin")
	}
	if err := c.PutMany(ctx, "Tichonet", map[string]float64{" ": 1}); err == nil {
		t.Fatal("expected error for empty destination")
	}
}

func TestCachedDistanceProviderUsesCache(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	m := domain.DistanceMatrix{}
	m.Set("Tichonet", "A", 5)
	m.Set("Tichonet", "B", 3)
	next := &countingProvider{m: m}
	p := NewCachedDistanceProvider(next, c)

	row, err := p.GetDistances(ctx, "Tichonet", []string{"A", "B"})
	if err != nil {
		t.Fatalf("first GetDistances: %v", err)
	}
	if row["A"] != 5 || row["B"] != 3 {
		t.Fatalf("row = %v", row)
	}

	row, err = p.GetDistances(ctx, "Tichonet", []string{"A", "B"})
	if err != nil {
		t.Fatalf("second GetDistances: %v", err)
	}
	if len(row) != 2 {
		t.Fatalf("row = %v", row)
	}
	if next.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", next.calls)
	}

	if _, err := p.GetDistances(ctx, "Tichonet", []string{"A", "Z"}); err != nil {
		t.Fatalf("partial miss: %v", err)
	}
	if next.calls != 2 || next.asked[len(next.asked)-1] != "Z" {
		t.Fatalf("expected only Z to be fetched, asked %v", next.asked)
	}
}

func TestCachedDistanceProviderMissingOrigin(t *testing.T) {
	c, _ := newTestCache(t, 0)
	p := NewCachedDistanceProvider(&countingProvider{m: domain.DistanceMatrix{}}, c)

	var missing *domain.MissingDistanceError
	if _, err := p.GetDistance(context.Background(), "Nowhere", "A"); !errors.As(err, &missing) {
		t.Fatalf("expected MissingDistanceError, got %v", err)
	}
}

func TestCachedDistanceProviderSurvivesCacheOutage(t *testing.T) {
	c, mr := newTestCache(t, 0)
	mr.Close()

	m := domain.DistanceMatrix{}
	m.Set("Tichonet", "A", 7)
	p := NewCachedDistanceProvider(singleProvider{m: m}, c)

	d, err := p.GetDistance(context.Background(), "Tichonet", "A")
	if err != nil {
		t.Fatalf("expected fallback to provider, got %v", err)
	}
	if d != 7 {
		t.Fatalf("distance = %v, want 7", d)
	}
}
