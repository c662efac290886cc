package handlers

import (
	"log"
	"net/http"

	"office-commute-service/internal/adapters/rostercsv"
	"office-commute-service/internal/api/dto"
	"office-commute-service/internal/domain"
	"office-commute-service/internal/roster"
	"office-commute-service/internal/services"
)

// RosterHandler owns roster upload and listing. An upload replaces the
// whole roster, geocodes every address once, and triggers the initial
// recomputation against the current office.
type RosterHandler struct {
	Store    *roster.Store
	Resolver *services.Resolver
	Engine   *services.Engine
	Office   *OfficeState
}

func (h *RosterHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.upload(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *RosterHandler) upload(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	employees, err := rostercsv.Parse(r.Body)
	if err != nil {
		log.Printf("roster parse failed: %v", err)
		writeError(w, r, http.StatusBadRequest, "invalid roster csv")
		return
	}
	if len(employees) == 0 {
		writeError(w, r, http.StatusBadRequest, "roster contains no rows")
		return
	}

	resolved, err := h.Resolver.ResolveRoster(r.Context(), employees)
	if err != nil {
		log.Printf("roster geocode failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	h.Store.ReplaceRoster(resolved)
	h.Engine.Recompute(h.Office.Current())

	writeJSON(w, r, http.StatusOK, rosterResponse(resolved))
}

func (h *RosterHandler) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, rosterResponse(h.Store.Employees()))
}

func rosterResponse(employees []domain.Employee) dto.ListRosterResponse {
	res := dto.ListRosterResponse{
		Employees: make([]dto.EmployeeResponse, 0, len(employees)),
	}
	for _, e := range employees {
		er := dto.EmployeeResponse{
			ID:                  e.ID,
			Name:                e.Name,
			HomeAddress:         e.HomeAddress,
			ClientOfficeAddress: e.ClientOfficeAddress,
		}
		if e.Home != nil {
			er.HomeLat = &e.Home.Lat
			er.HomeLng = &e.Home.Lng
		}
		if e.ClientOffice != nil {
			er.ClientOfficeLat = &e.ClientOffice.Lat
			er.ClientOfficeLng = &e.ClientOffice.Lng
		}
		res.Employees = append(res.Employees, er)
	}
	return res
}
