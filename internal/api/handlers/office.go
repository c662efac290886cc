package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"office-commute-service/internal/api/dto"
	"office-commute-service/internal/domain"
	"office-commute-service/internal/roster"
	"office-commute-service/internal/services"
)

// OfficeHandler owns the office location. Every accepted change triggers
// an asynchronous recomputation; the request returns immediately.
type OfficeHandler struct {
	Store  *roster.Store
	Engine *services.Engine
	Office *OfficeState
}

func (h *OfficeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.put(w, r)
	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *OfficeHandler) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, officeResponse(h.Office.Current()))
}

func (h *OfficeHandler) put(w http.ResponseWriter, r *http.Request) {
	var req dto.OfficeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	coord := domain.Coordinate{Lat: req.Lat, Lng: req.Lng}
	if !coord.Valid() {
		writeError(w, r, http.StatusBadRequest, "lat must be in [-90,90] and lng in [-180,180]")
		return
	}

	source := domain.OfficeSource(req.Source)
	if req.Source == "" {
		source = domain.SourceManualSearch
	}
	if !domain.ValidOfficeSource(source) {
		writeError(w, r, http.StatusBadRequest, "unknown office source")
		return
	}

	loc := domain.OfficeLocation{Coordinate: coord, Source: source}
	h.Office.Set(loc)
	h.Engine.Recompute(loc)

	writeJSON(w, r, http.StatusAccepted, officeResponse(loc))
}

// Optimize computes the centroid of all resolved employee homes, adopts
// it as the office location, and triggers recomputation.
func (h *OfficeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	coord, err := services.OptimalLocation(h.Store.Employees())
	if errors.Is(err, domain.ErrNoCoordinates) {
		writeError(w, r, http.StatusUnprocessableEntity, "no resolved employee coordinates")
		return
	}
	if err != nil {
		log.Printf("optimize failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	loc := domain.OfficeLocation{Coordinate: coord, Source: domain.SourceOptimized}
	h.Office.Set(loc)
	h.Engine.Recompute(loc)

	writeJSON(w, r, http.StatusAccepted, officeResponse(loc))
}

func officeResponse(loc domain.OfficeLocation) dto.OfficeResponse {
	return dto.OfficeResponse{
		Lat:    loc.Coordinate.Lat,
		Lng:    loc.Coordinate.Lng,
		Source: string(loc.Source),
	}
}
