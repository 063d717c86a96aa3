package geocoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atlas/config"
	"atlas/internal/domain/entity"
	"atlas/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) service.GeocodingService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewNominatimClient(config.GeocoderConfig{
		BaseURL:   server.URL,
		UserAgent: "atlas-test",
		Timeout:   2 * time.Second,
	})
}

func TestNominatimClient_CoordinateFromAddress(t *testing.T) {
	var gotQuery, gotUserAgent string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotUserAgent = r.Header.Get("User-Agent")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"-27.5935","lon":"-48.5585","display_name":"Florianopolis, Brazil"}]`))
	}))

	coord, err := client.CoordinateFromAddress(context.Background(), "Florianopolis")
	require.NoError(t, err)
	assert.InDelta(t, -27.5935, coord.Latitude, 1e-9)
	assert.InDelta(t, -48.5585, coord.Longitude, 1e-9)
	assert.Equal(t, "Florianopolis", gotQuery)
	assert.Equal(t, "atlas-test", gotUserAgent)
}

func TestNominatimClient_CoordinateFromAddress_NoMatch(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))

	_, err := client.CoordinateFromAddress(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, service.ErrNoMatch)
}

func TestNominatimClient_AddressFromCoordinate(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "-27.5935", r.URL.Query().Get("lat"))
		assert.Equal(t, "-48.5585", r.URL.Query().Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name":"Rua Felipe Schmidt, Florianopolis"}`))
	}))

	address, err := client.AddressFromCoordinate(context.Background(), entity.Coordinate{
		Latitude:  -27.5935,
		Longitude: -48.5585,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rua Felipe Schmidt, Florianopolis", address)
}

func TestNominatimClient_AddressFromCoordinate_NoMatch(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Nominatim reports this case inside a 200 body.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))

	_, err := client.AddressFromCoordinate(context.Background(), entity.Coordinate{})
	assert.ErrorIs(t, err, service.ErrNoMatch)
}

func TestNominatimClient_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.CoordinateFromAddress(context.Background(), "anything")
	assert.Error(t, err)
}
