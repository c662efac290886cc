package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"office-commute-service/internal/domain"
	"office-commute-service/internal/ports"
)

// SQLite backed cache for (origin, destination, mode) route metrics.
// Coordinates are keyed at six decimal places (~0.1m), so a dragged
// office location that moves meaningfully always misses.
type SqliteLegCache struct {
	DB *sql.DB
}

func NewSqliteLegCache(db *sql.DB) *SqliteLegCache {
	return &SqliteLegCache{DB: db}
}

func coordKey(c domain.Coordinate) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

// Fetch cached metrics for one leg.
func (s *SqliteLegCache) Get(
	ctx context.Context,
	origin, destination domain.Coordinate,
	mode domain.Mode,
) (ports.LegResult, bool, error) {
	if s.DB == nil {
		return ports.LegResult{}, false, errors.New("leg cache: db is nil")
	}

	q := `
	SELECT distance_meters, duration_seconds
	FROM leg_cache
	WHERE origin = ?
		AND destination = ?
		AND mode = ?;
	`

	var r ports.LegResult
	err := s.DB.QueryRowContext(ctx, q, coordKey(origin), coordKey(destination), string(mode)).
		Scan(&r.DistanceMeters, &r.DurationSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.LegResult{}, false, nil
	}
	if err != nil {
		return ports.LegResult{}, false, fmt.Errorf("get leg cache: query leg_cache table: %w", err)
	}

	return r, true, nil
}

// Store metrics for one leg.
func (s *SqliteLegCache) Put(
	ctx context.Context,
	origin, destination domain.Coordinate,
	mode domain.Mode,
	r ports.LegResult,
) error {
	if s.DB == nil {
		return errors.New("leg cache: db is nil")
	}

	q := `
	INSERT OR REPLACE INTO leg_cache (
		origin,
		destination,
		mode,
		distance_meters,
		duration_seconds
	)
	VALUES (?, ?, ?, ?, ?);
	`

	_, err := s.DB.ExecContext(ctx, q, coordKey(origin), coordKey(destination), string(mode), r.DistanceMeters, r.DurationSeconds)
	if err != nil {
		return fmt.Errorf("insert leg cache origin=%q dest=%q mode=%s: %w", coordKey(origin), coordKey(destination), mode, err)
	}

	return nil
}
