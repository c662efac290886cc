package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"office-commute-service/internal/domain"
)

func newTestRedisCache(t *testing.T) *RedisGeocodeCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisGeocodeCache(client, 0)
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	want := domain.Coordinate{Lat: -33.8688, Lng: 151.2093}
	if err := c.Put(ctx, "1 George St, Sydney", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "1 George St, Sydney")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRedisGeocodeCacheMiss(t *testing.T) {
	c := newTestRedisCache(t)

	_, ok, err := c.Get(context.Background(), "never stored")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss")
	}
}

func TestRedisGeocodeCacheRejectsEmptyAddress(t *testing.T) {
	c := newTestRedisCache(t)

	if _, _, err := c.Get(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty address")
	}
	if err := c.Put(context.Background(), "", domain.Coordinate{}); err == nil {
		t.Fatal("expected error for empty address")
	}
}
