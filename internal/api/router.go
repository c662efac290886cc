package api

import (
	"net/http"

	"office-commute-service/internal/api/handlers"
	"office-commute-service/internal/roster"
	"office-commute-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(store *roster.Store, resolver *services.Resolver, engine *services.Engine, office *handlers.OfficeState) http.Handler {
	mux := http.NewServeMux()

	rosterHandler := &handlers.RosterHandler{
		Store:    store,
		Resolver: resolver,
		Engine:   engine,
		Office:   office,
	}
	officeHandler := &handlers.OfficeHandler{
		Store:  store,
		Engine: engine,
		Office: office,
	}
	resultsHandler := &handlers.ResultsHandler{Store: store}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/roster", rosterHandler.Handle)
	mux.HandleFunc("/office", officeHandler.Handle)
	mux.HandleFunc("/office/optimize", officeHandler.Optimize)
	mux.HandleFunc("/results", resultsHandler.Results)
	mux.HandleFunc("/stats", resultsHandler.Stats)

	return loggingMiddleware(mux)
}
