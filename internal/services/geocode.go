package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"office-commute-service/internal/domain"
	"office-commute-service/internal/platform/obs"
	"office-commute-service/internal/ports"
)

// Bounding region the geocoding service is expected to return results in.
type Region struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Defined reports whether region validation is configured at all.
func (r Region) Defined() bool { return r != Region{} }

func (r Region) Contains(c domain.Coordinate) bool {
	return c.Lat >= r.MinLat && c.Lat <= r.MaxLat && c.Lng >= r.MinLng && c.Lng <= r.MaxLng
}

// One resolved address. OutOfRegion marks a hit outside the expected
// service region; the coordinate is still returned and callers decide
// whether to keep it.
type Resolution struct {
	Coordinate  domain.Coordinate
	OutOfRegion bool
}

// Resolver turns address strings into coordinates via the geocoding
// service, qualified with a region hint and validated against the
// expected bounding region. A cache in front guarantees each distinct
// address is geocoded at most once per roster import.
type Resolver struct {
	service     ports.GeocodingService
	cache       ports.GeocodeCache
	qualifier   string
	region      Region
	parallelism int
}

// NewResolver builds a Resolver. cache may be nil to disable caching;
// qualifier (e.g. "Sydney NSW, Australia") is appended to every query.
func NewResolver(
	service ports.GeocodingService,
	cache ports.GeocodeCache,
	qualifier string,
	region Region,
	parallelism int,
) *Resolver {
	if parallelism <= 0 {
		parallelism = 2
	}
	return &Resolver{
		service:     service,
		cache:       cache,
		qualifier:   qualifier,
		region:      region,
		parallelism: parallelism,
	}
}

// Resolve geocodes one address. "Address not found" and service errors
// are ordinary error returns, never panics; out-of-region hits come back
// flagged, not rejected.
func (r *Resolver) Resolve(ctx context.Context, address string) (Resolution, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Resolution{}, fmt.Errorf("resolve: empty address: %w", domain.ErrAddressNotFound)
	}

	if r.cache != nil {
		coord, ok, err := r.cache.Get(ctx, address)
		if err != nil {
			obs.Event("geocode_cache_error", "err", err)
		} else if ok {
			return r.validated(address, coord), nil
		}
	}

	query := address
	if r.qualifier != "" {
		query = address + ", " + r.qualifier
	}

	hits, err := r.service.Search(ctx, query)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolve %q: %w", address, err)
	}
	if len(hits) == 0 {
		return Resolution{}, fmt.Errorf("resolve %q: %w", address, domain.ErrAddressNotFound)
	}

	// Hits arrive best-first; keep the first.
	coord := hits[0].Coordinate

	if r.cache != nil {
		if err := r.cache.Put(ctx, address, coord); err != nil {
			obs.Event("geocode_cache_error", "err", err)
		}
	}

	return r.validated(address, coord), nil
}

func (r *Resolver) validated(address string, coord domain.Coordinate) Resolution {
	res := Resolution{Coordinate: coord}
	if r.region.Defined() && !r.region.Contains(coord) {
		res.OutOfRegion = true
		obs.Event("geocode_out_of_region",
			"address", address,
			"lat", coord.Lat,
			"lng", coord.Lng,
		)
	}
	return res
}

// ResolveRoster geocodes the home and client-office address of every
// employee with bounded parallelism. Unresolvable addresses leave the
// coordinate nil and never abort the pass; the returned roster is a copy.
// An employee with an empty client-office address never acquires a
// client-office coordinate.
func (r *Resolver) ResolveRoster(ctx context.Context, employees []domain.Employee) ([]domain.Employee, error) {
	out := make([]domain.Employee, len(employees))
	copy(out, employees)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for i := range out {
		i := i
		g.Go(func() error {
			emp := &out[i]

			if res, err := r.Resolve(ctx, emp.HomeAddress); err != nil {
				obs.Event("geocode_failed", "employee_id", emp.ID, "field", "home", "err", err)
			} else {
				c := res.Coordinate
				emp.Home = &c
				obs.Event("geocode_resolved", "employee_id", emp.ID, "field", "home", "out_of_region", res.OutOfRegion)
			}

			if emp.ClientOfficeAddress == "" {
				return ctx.Err()
			}

			if res, err := r.Resolve(ctx, emp.ClientOfficeAddress); err != nil {
				obs.Event("geocode_failed", "employee_id", emp.ID, "field", "client_office", "err", err)
			} else {
				c := res.Coordinate
				emp.ClientOffice = &c
				obs.Event("geocode_resolved", "employee_id", emp.ID, "field", "client_office", "out_of_region", res.OutOfRegion)
			}

			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve roster: %w", err)
	}

	return out, nil
}
