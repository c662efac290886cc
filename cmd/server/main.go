package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"office-commute-service/internal/adapters/cache"
	"office-commute-service/internal/adapters/rostercsv"
	"office-commute-service/internal/adapters/travel"
	"office-commute-service/internal/api"
	"office-commute-service/internal/api/handlers"
	"office-commute-service/internal/config"
	"office-commute-service/internal/domain"
	"office-commute-service/internal/platform/db"
	"office-commute-service/internal/ports"
	"office-commute-service/internal/roster"
	"office-commute-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres/Redis caches, ORS, the
// transit relay) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	if strings.TrimSpace(cfg.ORSAPIKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}
	if strings.TrimSpace(cfg.TransitRelayURL) == "" {
		log.Fatal("TRANSIT_RELAY_URL is required")
	}

	sqlite, err := db.OpenSqlite(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlite.Close()

	if err := cache.InitSqliteSchema(sqlite); err != nil {
		log.Fatal(err)
	}

	// Geocode cache backend preference: Redis, then Postgres, then the
	// local SQLite file everyone gets for free.
	var geocodeCache ports.GeocodeCache = cache.NewSqliteGeocodeCache(sqlite)
	switch {
	case cfg.RedisAddr != "":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		geocodeCache = cache.NewRedisGeocodeCache(client, cfg.GeocodeCacheTTL)
		log.Printf("geocode cache backend=redis addr=%s", cfg.RedisAddr)
	case cfg.DatabaseURL != "":
		pg, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		geocodeCache = cache.NewSQLGeocodeCache(pg)
		log.Printf("geocode cache backend=postgres")
	default:
		log.Printf("geocode cache backend=sqlite path=%s", cfg.DBPath)
	}

	geocoder, err := travel.NewORSGeocoder(cfg.ORSAPIKey)
	if err != nil {
		log.Fatal(err)
	}
	driving, err := travel.NewORSDrivingRouter(cfg.ORSAPIKey)
	if err != nil {
		log.Fatal(err)
	}
	transit, err := travel.NewRelayTransitRouter(cfg.TransitRelayURL)
	if err != nil {
		log.Fatal(err)
	}

	region := services.Region{
		MinLat: cfg.RegionMinLat,
		MaxLat: cfg.RegionMaxLat,
		MinLng: cfg.RegionMinLng,
		MaxLng: cfg.RegionMaxLng,
	}
	resolver := services.NewResolver(geocoder, geocodeCache, cfg.RegionQualifier, region, cfg.GeocodeParallelism)

	store := roster.NewStore()
	estimator := services.NewEstimator(driving, transit, cache.NewSqliteLegCache(sqlite))
	engine := services.NewEngine(context.Background(), estimator, store, services.EngineConfig{
		Workers:         cfg.Workers,
		MinCallInterval: cfg.MinCallInterval,
	})

	office := handlers.NewOfficeState(domain.OfficeLocation{
		Coordinate: domain.Coordinate{Lat: cfg.OfficeLat, Lng: cfg.OfficeLng},
		Source:     domain.SourceDefault,
	})

	// Optional roster preload so local runs have data before the first upload.
	if cfg.RosterPath != "" {
		if err := loadRoster(cfg.RosterPath, resolver, store); err != nil {
			log.Fatal(err)
		}
		engine.Recompute(office.Current())
	}

	router := api.NewRouter(store, resolver, engine, office)

	// Timeouts are tuned for cold-cache recomputation triggers (external API latency).
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func loadRoster(path string, resolver *services.Resolver, store *roster.Store) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	employees, err := rostercsv.Parse(f)
	if err != nil {
		return err
	}

	resolved, err := resolver.ResolveRoster(context.Background(), employees)
	if err != nil {
		return err
	}

	store.ReplaceRoster(resolved)
	log.Printf("roster preloaded path=%s employees=%d", path, len(resolved))
	return nil
}
