// Package config handles application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port            string
	ORSAPIKey       string
	TransitRelayURL string

	// Geocoding bias: qualifier appended to every query, plus the
	// bounding box that flags out-of-region results.
	RegionQualifier string
	RegionMinLat    float64
	RegionMaxLat    float64
	RegionMinLng    float64
	RegionMaxLng    float64

	// Default office until the first manual placement.
	OfficeLat float64
	OfficeLng float64

	Workers            int
	MinCallInterval    time.Duration
	GeocodeParallelism int

	DBPath          string
	DatabaseURL     string
	RedisAddr       string
	GeocodeCacheTTL time.Duration

	// Optional roster CSV loaded at startup for local runs.
	RosterPath string
}

// Load reads configuration from environment variables with sensible defaults.
// Region and office defaults place the service in Sydney.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		ORSAPIKey:       getEnv("ORS_API_KEY", ""),
		TransitRelayURL: getEnv("TRANSIT_RELAY_URL", ""),

		RegionQualifier: getEnv("REGION_QUALIFIER", "Sydney NSW, Australia"),
		RegionMinLat:    getFloatEnv("REGION_MIN_LAT", -34.2),
		RegionMaxLat:    getFloatEnv("REGION_MAX_LAT", -33.4),
		RegionMinLng:    getFloatEnv("REGION_MIN_LNG", 150.5),
		RegionMaxLng:    getFloatEnv("REGION_MAX_LNG", 151.5),

		OfficeLat: getFloatEnv("OFFICE_LAT", -33.8688),
		OfficeLng: getFloatEnv("OFFICE_LNG", 151.2093),

		Workers:            getIntEnv("WORKERS", 4),
		MinCallInterval:    getDurationEnv("MIN_CALL_INTERVAL_MS", 250) * time.Millisecond,
		GeocodeParallelism: getIntEnv("GEOCODE_PARALLELISM", 2),

		DBPath:          getEnv("DB_PATH", "data/app.db"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		GeocodeCacheTTL: getDurationEnv("GEOCODE_CACHE_TTL_SECONDS", 86400) * time.Second,

		RosterPath: getEnv("ROSTER_PATH", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultUnits int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return time.Duration(n)
		}
	}
	return time.Duration(defaultUnits)
}
