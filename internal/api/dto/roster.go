package dto

type EmployeeResponse struct {
	ID                  int      `json:"id"`
	Name                string   `json:"name"`
	HomeAddress         string   `json:"home_address"`
	HomeLat             *float64 `json:"home_lat"`
	HomeLng             *float64 `json:"home_lng"`
	ClientOfficeAddress string   `json:"client_office_address,omitempty"`
	ClientOfficeLat     *float64 `json:"client_office_lat,omitempty"`
	ClientOfficeLng     *float64 `json:"client_office_lng,omitempty"`
}

type ListRosterResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
