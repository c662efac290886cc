package travel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"office-commute-service/internal/domain"
	"office-commute-service/internal/platform/obs"
	"office-commute-service/internal/ports"
)

// ORSDrivingRouter implements DrivingRouter using the OpenRouteService
// directions endpoint with the driving-car profile. Safe for concurrent use.
type ORSDrivingRouter struct {
	core    httpCore
	baseURL string
	profile string
}

func NewORSDrivingRouter(apiKey string) (*ORSDrivingRouter, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSDrivingRouter{
		core:    newHTTPCore(apiKey, 10*time.Second),
		baseURL: "https://api.openrouteservice.org",
		profile: "driving-car",
	}, nil
}

type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// Routes returns driving routes between two coordinates, best first.
// Zero routes means the service was reached but knows no connection.
func (d *ORSDrivingRouter) Routes(
	ctx context.Context,
	origin, destination domain.Coordinate,
) (_ []ports.DrivingRoute, err error) {
	defer obs.Time(ctx, "ors.directions.Routes")(&err)

	endpoint := fmt.Sprintf("%s/v2/directions/%s", d.baseURL, d.profile)

	resp, err := d.core.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := d.core.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("start", fmt.Sprintf("%f,%f", origin.Lng, origin.Lat))
		q.Set("end", fmt.Sprintf("%f,%f", destination.Lng, destination.Lat))
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("driving directions: %w: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	routes := make([]ports.DrivingRoute, 0, len(decoded.Features))
	for _, f := range decoded.Features {
		routes = append(routes, ports.DrivingRoute{
			DistanceMeters:  f.Properties.Summary.Distance,
			DurationSeconds: f.Properties.Summary.Duration,
		})
	}

	return routes, nil
}
