package cache

import (
	"carpool-service/internal/platform/obs"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "carpool:dist:"

// RedisDistanceCache stores one hash per origin: destination -> distance.
// Keys are expected to be consistent (already trimmed) by the caller.
type RedisDistanceCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisDistanceCache wraps a client. A zero ttl keeps entries forever.
func NewRedisDistanceCache(rdb *redis.Client, ttl time.Duration) *RedisDistanceCache {
	return &RedisDistanceCache{rdb: rdb, ttl: ttl}
}

// NewRedisClient parses a redis:// URL into a client.
func NewRedisClient(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}
	return redis.NewClient(opt), nil
}

func (c *RedisDistanceCache) key(origin string) string {
	return keyPrefix + origin
}

// Fetch cached distances for one origin and multiple destinations.
func (c *RedisDistanceCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]float64, err error) {
	defer obs.Time(ctx, "distance.cache.GetMany")(&err)

	if c.rdb == nil {
		return nil, errors.New("distance cache: redis client is nil")
	}

	if origin == "" {
		return nil, errors.New("get distance cache: origin must not be empty")
	}

	if len(destinations) == 0 {
		return map[string]float64{}, nil
	}

	vals, err := c.rdb.HMGet(ctx, c.key(origin), destinations...).Result()
	if err != nil {
		return nil, fmt.Errorf("get distance cache: hmget %q: %w", origin, err)
	}

	out := make(map[string]float64, len(destinations))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		d, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("get distance cache: %q -> %q: bad value %q: %w", origin, destinations[i], s, err)
		}
		out[destinations[i]] = d
	}

	return out, nil
}

// Store many cached distance results for a single origin.
func (c *RedisDistanceCache) PutMany(ctx context.Context, origin string, results map[string]float64) error {
	if c.rdb == nil {
		return errors.New("distance cache: redis client is nil")
	}

	if origin == "" {
		return errors.New("insert distance cache: origin must not be empty")
	}

	if len(results) == 0 {
		return nil
	}

	fields := make([]any, 0, 2*len(results))
	for dest, d := range results {
		if strings.TrimSpace(dest) == "" {
			return errors.New("insert distance cache: empty destination key")
		}
		fields = append(fields, dest, strconv.FormatFloat(d, 'g', -1, 64))
	}

	key := c.key(origin)
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fields...)
		if c.ttl > 0 {
			pipe.Expire(ctx, key, c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert distance cache %q: %w", origin, err)
	}

	return nil
}
