package geocode_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DariushJinx/restaurants-api/internal/config"
	"github.com/DariushJinx/restaurants-api/internal/platform/geocode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *geocode.NominatimGeocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	geocoder, err := geocode.NewNominatimGeocoder(config.GeocoderConfig{
		BaseURL:        server.URL,
		UserAgent:      "restaurants-api-test",
		TimeoutSeconds: 5,
	}, nil)
	require.NoError(t, err)

	return geocoder
}

func TestNominatimGeocoder_Geocode(t *testing.T) {
	t.Run("maps the best-match result", func(t *testing.T) {
		geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "200 Olympic Dr, Stafford, VA 22554", r.URL.Query().Get("q"))
			assert.Equal(t, "restaurants-api-test", r.Header.Get("User-Agent"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{
				"lat": "38.492151",
				"lon": "-77.376204",
				"display_name": "200 Olympic Dr, Stafford, VA 22554-7763, US",
				"address": {
					"town": "Stafford",
					"state": "Virginia",
					"postcode": "22554-7763",
					"country_code": "us"
				}
			}]`))
		})

		location, err := geocoder.Geocode(context.Background(), "200 Olympic Dr, Stafford, VA 22554")
		require.NoError(t, err)

		assert.Equal(t, "Stafford", location.City)
		assert.Equal(t, "22554-7763", location.Zipcode)
		assert.Equal(t, "us", location.Country)
		assert.InDelta(t, -77.376204, location.Coordinates[0], 1e-9)
		assert.InDelta(t, 38.492151, location.Coordinates[1], 1e-9)
	})

	t.Run("returns ErrNoMatch for an empty result set", func(t *testing.T) {
		geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		})

		_, err := geocoder.Geocode(context.Background(), "nowhere at all")
		assert.True(t, errors.Is(err, geocode.ErrNoMatch))
	})

	t.Run("returns ErrProviderFailure on a non-OK status", func(t *testing.T) {
		geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := geocoder.Geocode(context.Background(), "200 Olympic Dr")
		assert.True(t, errors.Is(err, geocode.ErrProviderFailure))
	})

	t.Run("returns ErrProviderFailure on malformed JSON", func(t *testing.T) {
		geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		})

		_, err := geocoder.Geocode(context.Background(), "200 Olympic Dr")
		assert.True(t, errors.Is(err, geocode.ErrProviderFailure))
	})
}
