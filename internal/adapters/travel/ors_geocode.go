package travel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"office-commute-service/internal/domain"
	"office-commute-service/internal/platform/obs"
	"office-commute-service/internal/ports"
)

// ORSGeocoder implements GeocodingService using the OpenRouteService
// /geocode/search endpoint. Safe for concurrent use.
type ORSGeocoder struct {
	core    httpCore
	baseURL string
	size    int
}

func NewORSGeocoder(apiKey string) (*ORSGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSGeocoder{
		core:    newHTTPCore(apiKey, 10*time.Second),
		baseURL: "https://api.openrouteservice.org",
		size:    3,
	}, nil
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Confidence float64 `json:"confidence"`
		} `json:"properties"`
	} `json:"features"`
}

// Search returns candidate coordinates for the query text, best first.
// A query the service cannot match yields an empty slice, not an error.
func (g *ORSGeocoder) Search(ctx context.Context, text string) (_ []ports.GeocodeHit, err error) {
	defer obs.Time(ctx, "ors.geocode.Search")(&err)

	norm := normalize(text)
	if norm == "" {
		return nil, errors.New("geocode search: query must be non-empty")
	}

	endpoint := g.baseURL + "/geocode/search"

	resp, err := g.core.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.core.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", norm)
		q.Set("size", strconv.Itoa(g.size))
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("geocode search %q: %w: %v", norm, domain.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	hits := make([]ports.GeocodeHit, 0, len(decoded.Features))
	for _, f := range decoded.Features {
		coords := f.Geometry.Coordinates
		if len(coords) != 2 {
			return nil, fmt.Errorf("invalid coordinate format for %q", norm)
		}
		hits = append(hits, ports.GeocodeHit{
			Coordinate: domain.Coordinate{Lat: coords[1], Lng: coords[0]},
			Confidence: f.Properties.Confidence,
		})
	}

	return hits, nil
}
