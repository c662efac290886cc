package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"office-commute-service/internal/domain"
)

// RedisGeocodeCache is a Redis-backed cache mapping addresses to
// coordinates. Entries carry a TTL so stale geocodes eventually expire;
// a zero TTL keeps them forever.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

func redisGeocodeKey(address string) string {
	return "geocode:" + address
}

// Fetch the cached coordinate for one address.
func (r *RedisGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinate, bool, error) {
	if r.Client == nil {
		return domain.Coordinate{}, false, errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Coordinate{}, false, errors.New("get geocode cache: address must not be empty")
	}

	val, err := r.Client.Get(ctx, redisGeocodeKey(address)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinate{}, false, nil
	}
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	c, err := parseCoordinateValue(val)
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("get geocode cache addr=%q: %w", address, err)
	}

	return c, true, nil
}

// Store one address -> coordinate mapping in the cache.
func (r *RedisGeocodeCache) Put(ctx context.Context, address string, c domain.Coordinate) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	val := formatCoordinateValue(c)
	if err := r.Client.Set(ctx, redisGeocodeKey(address), val, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache addr=%q: redis set: %w", address, err)
	}

	return nil
}

func formatCoordinateValue(c domain.Coordinate) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

func parseCoordinateValue(val string) (domain.Coordinate, error) {
	parts := strings.SplitN(val, ",", 2)
	if len(parts) != 2 {
		return domain.Coordinate{}, fmt.Errorf("malformed cache value %q", val)
	}

	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("parse lat: %w", err)
	}
	lng, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("parse lng: %w", err)
	}

	return domain.Coordinate{Lat: lat, Lng: lng}, nil
}
