package mocks

import (
	"context"

	"github.com/DariushJinx/restaurants-api/internal/domain"
)

// MockGeocoder implements geocode.Geocoder for testing
type MockGeocoder struct {
	// GeocodeFn allows test cases to mock the Geocode behavior
	GeocodeFn func(ctx context.Context, address string) (domain.Location, error)

	// Default values used when GeocodeFn isn't explicitly defined
	Location domain.Location
	Err      error

	// Call tracking for verification
	Calls     int
	Addresses []string
}

// Geocode implements the geocode.Geocoder interface
func (m *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Location, error) {
	m.Calls++
	m.Addresses = append(m.Addresses, address)

	if m.GeocodeFn != nil {
		return m.GeocodeFn(ctx, address)
	}

	return m.Location, m.Err
}
