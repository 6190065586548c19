// Package geocode resolves free-text addresses to geographic locations.
package geocode

import (
	"context"
	"errors"

	"github.com/DariushJinx/restaurants-api/internal/domain"
)

// Common geocoding errors.
var (
	// ErrNoMatch indicates that the provider returned no result for the address.
	ErrNoMatch = errors.New("no location found for address")

	// ErrProviderFailure indicates the provider could not be reached or
	// returned an unusable response.
	ErrProviderFailure = errors.New("geocoding provider failure")
)

// Geocoder resolves a free-text address to a best-match location.
// Implementations do not retry; a failed lookup surfaces immediately.
type Geocoder interface {
	// Geocode returns the best-match location for the given address.
	// Returns ErrNoMatch if the provider finds nothing, or ErrProviderFailure
	// for transport and decoding problems.
	Geocode(ctx context.Context, address string) (domain.Location, error)
}
