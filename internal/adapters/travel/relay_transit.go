package travel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"office-commute-service/internal/domain"
	"office-commute-service/internal/platform/obs"
	"office-commute-service/internal/ports"
)

// RelayTransitRouter implements TransitRouter against the transit
// directions relay. The relay is a pure pass-through in front of the
// upstream transit API; this client only shapes the query and decodes
// the itinerary tree. Safe for concurrent use.
type RelayTransitRouter struct {
	core    httpCore
	baseURL string
}

func NewRelayTransitRouter(baseURL string) (*RelayTransitRouter, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("transit relay URL is empty")
	}

	return &RelayTransitRouter{
		core:    newHTTPCore("", 15*time.Second),
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

type transitResponse struct {
	Routes []struct {
		Legs []struct {
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"`
			} `json:"duration"`
			Steps []struct {
				TravelMode string `json:"travel_mode"`
				Distance   struct {
					Value float64 `json:"value"`
				} `json:"distance"`
				Duration struct {
					Value float64 `json:"value"`
				} `json:"duration"`
				TransitDetails *struct {
					Line struct {
						ShortName string `json:"short_name"`
						Name      string `json:"name"`
					} `json:"line"`
					DepartureStop struct {
						Name string `json:"name"`
					} `json:"departure_stop"`
					ArrivalStop struct {
						Name string `json:"name"`
					} `json:"arrival_stop"`
				} `json:"transit_details"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// Itineraries returns transit itineraries between two coordinates.
// Zero itineraries means no connection was found, not a failure.
func (t *RelayTransitRouter) Itineraries(
	ctx context.Context,
	origin, destination domain.Coordinate,
) (_ []ports.Itinerary, err error) {
	defer obs.Time(ctx, "relay.transit.Itineraries")(&err)

	endpoint := t.baseURL + "/directions"

	resp, err := t.core.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := t.core.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
		q.Set("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lng))
		q.Set("mode", "transit")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("transit directions: %w: %v", domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded transitResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode transit response: %w", err)
	}

	itineraries := make([]ports.Itinerary, 0, len(decoded.Routes))
	for _, route := range decoded.Routes {
		legs := make([]ports.TransitRouteLeg, 0, len(route.Legs))
		for _, leg := range route.Legs {
			steps := make([]ports.TransitStep, 0, len(leg.Steps))
			for _, step := range leg.Steps {
				out := ports.TransitStep{
					TravelMode:      step.TravelMode,
					DistanceMeters:  step.Distance.Value,
					DurationSeconds: step.Duration.Value,
				}
				if step.TransitDetails != nil {
					line := step.TransitDetails.Line.ShortName
					if line == "" {
						line = step.TransitDetails.Line.Name
					}
					out.Line = line
					out.DepartureStop = step.TransitDetails.DepartureStop.Name
					out.ArrivalStop = step.TransitDetails.ArrivalStop.Name
				}
				steps = append(steps, out)
			}
			legs = append(legs, ports.TransitRouteLeg{
				DistanceMeters:  leg.Distance.Value,
				DurationSeconds: leg.Duration.Value,
				Steps:           steps,
			})
		}
		itineraries = append(itineraries, ports.Itinerary{Legs: legs})
	}

	return itineraries, nil
}
