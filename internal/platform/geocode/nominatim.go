package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DariushJinx/restaurants-api/internal/config"
	"github.com/DariushJinx/restaurants-api/internal/domain"
	"github.com/DariushJinx/restaurants-api/internal/platform/logger"
)

// NominatimGeocoder implements the Geocoder interface against the
// OpenStreetMap Nominatim search API.
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// nominatimResult is the subset of the Nominatim response we consume.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		State       string `json:"state"`
		Postcode    string `json:"postcode"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

// Ensure NominatimGeocoder implements the Geocoder interface
var _ Geocoder = (*NominatimGeocoder)(nil)

// NewNominatimGeocoder creates a Nominatim-backed Geocoder from configuration.
// If log is nil, a default logger will be used.
func NewNominatimGeocoder(cfg config.GeocoderConfig, log *slog.Logger) (*NominatimGeocoder, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL cannot be empty", ErrProviderFailure)
	}
	if log == nil {
		log = slog.Default()
	}

	return &NominatimGeocoder{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: log.With(slog.String("component", "geocoder")),
	}, nil
}

// Geocode implements Geocoder.Geocode.
// It queries the Nominatim search endpoint and maps the first (best-match)
// result into a domain Location.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (domain.Location, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	endpoint := fmt.Sprintf(
		"%s/search?format=jsonv2&addressdetails=1&limit=1&q=%s",
		g.baseURL,
		url.QueryEscape(address),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		log.Error("geocoding request failed",
			slog.String("error", err.Error()))
		return domain.Location{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Error("geocoding provider returned non-OK status",
			slog.Int("status", resp.StatusCode))
		return domain.Location{}, fmt.Errorf(
			"%w: unexpected status %d", ErrProviderFailure, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		log.Error("failed to decode geocoding response",
			slog.String("error", err.Error()))
		return domain.Location{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}

	if len(results) == 0 {
		log.Debug("no geocoding match for address")
		return domain.Location{}, ErrNoMatch
	}

	location, err := mapResult(results[0])
	if err != nil {
		return domain.Location{}, err
	}

	log.Debug("address geocoded successfully",
		slog.String("city", location.City),
		slog.String("country", location.Country))
	return location, nil
}

// mapResult converts a raw Nominatim result into a domain Location.
func mapResult(result nominatimResult) (domain.Location, error) {
	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: invalid latitude %q", ErrProviderFailure, result.Lat)
	}
	lon, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: invalid longitude %q", ErrProviderFailure, result.Lon)
	}

	// Nominatim reports the locality under city, town or village depending
	// on the place type.
	city := result.Address.City
	if city == "" {
		city = result.Address.Town
	}
	if city == "" {
		city = result.Address.Village
	}

	return domain.Location{
		Coordinates:      [2]float64{lon, lat},
		FormattedAddress: result.DisplayName,
		City:             city,
		State:            result.Address.State,
		Zipcode:          result.Address.Postcode,
		Country:          result.Address.CountryCode,
	}, nil
}
