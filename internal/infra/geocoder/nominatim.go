// Package geocoder implements the geocoding service against the OSM
// Nominatim HTTP API.
package geocoder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"atlas/config"
	"atlas/internal/domain/entity"
	"atlas/internal/domain/service"
	"atlas/internal/errors"
)

const (
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "atlas/1.0"
)

// NominatimClient resolves addresses and coordinates through a Nominatim
// endpoint. Every call is a single request; there is no caching and no retry.
type NominatimClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatimClient is the constructor for NominatimClient.
func NewNominatimClient(cfg config.GeocoderConfig) service.GeocodingService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &NominatimClient{
		baseURL:   cfg.BaseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// searchResult is one entry of a Nominatim /search response. Latitude and
// longitude come back as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// reverseResult is a Nominatim /reverse response.
type reverseResult struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// CoordinateFromAddress resolves a free-form address into a coordinate.
// Returns service.ErrNoMatch when the provider knows no such place.
func (n *NominatimClient) CoordinateFromAddress(ctx context.Context, address string) (entity.Coordinate, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "jsonv2")
	query.Set("limit", "1")

	var results []searchResult
	if err := n.get(ctx, "/search", query, &results); err != nil {
		return entity.Coordinate{}, err
	}
	if len(results) == 0 {
		return entity.Coordinate{}, service.ErrNoMatch
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "parse latitude")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "parse longitude")
	}

	return entity.Coordinate{Latitude: lat, Longitude: lon}, nil
}

// AddressFromCoordinate resolves a coordinate into a display address.
// Returns service.ErrNoMatch when no feature exists at the location.
func (n *NominatimClient) AddressFromCoordinate(ctx context.Context, coord entity.Coordinate) (string, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	query.Set("format", "jsonv2")

	var result reverseResult
	if err := n.get(ctx, "/reverse", query, &result); err != nil {
		return "", err
	}
	// Nominatim reports "Unable to geocode" inside a 200 body.
	if result.Error != "" || result.DisplayName == "" {
		return "", service.ErrNoMatch
	}

	return result.DisplayName, nil
}

func (n *NominatimClient) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "build geocoding request")
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("geocoding provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode geocoding response")
	}

	return nil
}
