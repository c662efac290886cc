package handlers

import (
	"net/http"

	"office-commute-service/internal/api/dto"
	"office-commute-service/internal/domain"
	"office-commute-service/internal/roster"
)

// ResultsHandler exposes the latest committed commute results and their
// statistics. It only ever reads the store; the recompute engine is the
// single writer.
type ResultsHandler struct {
	Store *roster.Store
}

func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snap := h.Store.Results()

	res := dto.ListResultsResponse{
		Office:  officeResponse(snap.Office),
		Results: make([]dto.ResultResponse, 0, len(snap.Results)),
		NoData:  !snap.Committed || len(snap.Results) == 0,
	}
	for _, cr := range snap.Results {
		rr := dto.ResultResponse{
			EmployeeID: cr.EmployeeID,
			MainOffice: pairResponse(cr.MainOffice),
		}
		if cr.ClientOffice != nil {
			p := pairResponse(*cr.ClientOffice)
			rr.ClientOffice = &p
		}
		res.Results = append(res.Results, rr)
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ResultsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snap := h.Store.Results()
	writeJSON(w, r, http.StatusOK, dto.StatsResponse{
		EmployeeCount:         snap.Stats.EmployeeCount,
		AverageDrivingMinutes: snap.Stats.AverageDrivingMinutes,
		AverageTransitMinutes: snap.Stats.AverageTransitMinutes,
	})
}

func pairResponse(p domain.CommutePair) dto.PairResponse {
	return dto.PairResponse{
		Driving: legResponse(p.Driving),
		Transit: legResponse(p.Transit),
	}
}

func legResponse(l domain.CommuteLeg) dto.LegResponse {
	return dto.LegResponse{
		Mode:            string(l.Mode),
		DurationMinutes: l.DurationMinutes,
		DistanceKm:      l.DistanceKm,
		TransitSummary:  l.TransitSummary,
	}
}
