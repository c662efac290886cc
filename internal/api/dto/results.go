package dto

// Unresolved metrics serialize as null, never zero.
type LegResponse struct {
	Mode            string   `json:"mode"`
	DurationMinutes *float64 `json:"duration_minutes"`
	DistanceKm      *float64 `json:"distance_km"`
	TransitSummary  string   `json:"transit_summary,omitempty"`
}

type PairResponse struct {
	Driving LegResponse `json:"driving"`
	Transit LegResponse `json:"transit"`
}

type ResultResponse struct {
	EmployeeID   int           `json:"employee_id"`
	MainOffice   PairResponse  `json:"main_office"`
	ClientOffice *PairResponse `json:"client_office,omitempty"`
}

type ListResultsResponse struct {
	Office  OfficeResponse   `json:"office"`
	Results []ResultResponse `json:"results"`
	// NoData marks a valid empty result set (service outage or nothing
	// computed yet), to be rendered as "no data available".
	NoData bool `json:"no_data"`
}

type StatsResponse struct {
	EmployeeCount         int      `json:"employee_count"`
	AverageDrivingMinutes *float64 `json:"average_driving_minutes"`
	AverageTransitMinutes *float64 `json:"average_transit_minutes"`
}
