package capability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyagee/internal/apperr"
)

func TestForwardGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Paris", r.URL.Query().Get("q"))
		w.Write([]byte(`[
			{"lat":"48.8566","lon":"2.3522","display_name":"Paris, France"},
			{"lat":"33.6609","lon":"-95.5555","display_name":"Paris, Texas"}
		]`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, testClient())
	points, err := g.Forward(context.Background(), "Paris")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.InDelta(t, 48.8566, points[0].Lat, 0.0001)
	assert.InDelta(t, 2.3522, points[0].Lng, 0.0001)
	assert.Equal(t, "Paris, France", points[0].DisplayName)
}

func TestForwardGeocodeEmptyQuery(t *testing.T) {
	g := NewNominatimGeocoder("http://127.0.0.1:0", testClient())
	_, err := g.Forward(context.Background(), "   ")
	assert.Equal(t, apperr.Validation, apperr.TypeOf(err))
}

func TestReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		w.Write([]byte(`{"lat":"-15.79","lon":"-47.88","display_name":"Brasília, DF"}`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, testClient())
	addr, err := g.Reverse(context.Background(), -15.79, -47.88)
	require.NoError(t, err)
	assert.Equal(t, "Brasília, DF", addr)
}

func TestReverseGeocodeUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, testClient())
	_, err := g.Reverse(context.Background(), -15.79, -47.88)
	assert.Equal(t, apperr.CapabilityUnavailable, apperr.TypeOf(err))

	// Callers fall back to the raw coordinates.
	assert.Equal(t, "-15.79000, -47.88000", FallbackAddress(-15.79, -47.88))
}
