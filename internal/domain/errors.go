package domain

import "errors"

// Failure taxonomy. Per-address and per-leg failures are absorbed into
// unresolved data close to where they occur; only ErrNoCoordinates and a
// total service outage surface to callers as explicit failures.
var (
	// The geocoding service returned no hit for an address.
	ErrAddressNotFound = errors.New("address not found")

	// Network failure, timeout, or non-2xx from an external service.
	ErrServiceUnavailable = errors.New("service unavailable")

	// The routing service was reached but returned no route or itinerary.
	ErrNoRoute = errors.New("no route found")

	// The optimizer input contained no resolved home coordinates.
	ErrNoCoordinates = errors.New("no resolved coordinates")
)
