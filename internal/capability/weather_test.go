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

type stubGeocoder struct {
	points []GeoPoint
	err    error
}

func (s stubGeocoder) Forward(ctx context.Context, q string) ([]GeoPoint, error) {
	return s.points, s.err
}

func (s stubGeocoder) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	return "", nil
}

func TestCurrentWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("current_weather"))
		w.Write([]byte(`{"current_weather":{"temperature":27.5,"weathercode":3}}`))
	}))
	defer srv.Close()

	geo := stubGeocoder{points: []GeoPoint{{Lat: -15.79, Lng: -47.88, DisplayName: "Brasília"}}}
	source := NewOpenMeteoWeather(srv.URL, testClient(), geo)
	w, err := source.Current(context.Background(), "Brasília")
	require.NoError(t, err)
	assert.InDelta(t, 27.5, w.TemperatureCelsius, 0.01)
	assert.Equal(t, 3, w.ConditionCode)
}

func TestCurrentWeatherUnknownPlace(t *testing.T) {
	source := NewOpenMeteoWeather("http://127.0.0.1:0", testClient(), stubGeocoder{})
	_, err := source.Current(context.Background(), "Lugar Nenhum")
	assert.Equal(t, apperr.CapabilityUnavailable, apperr.TypeOf(err))
}

func TestNearbyPlaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "restaurant", r.URL.Query().Get("category"))
		w.Write([]byte(`{"places":[
			{"id":"p1","title":"Café Central","rating":4.6,"ratingCount":120,"vicinity":"Asa Sul","lat":-15.8,"lng":-47.9}
		]}`))
	}))
	defer srv.Close()

	source := NewHTTPPlaces(srv.URL, testClient())
	places, err := source.Nearby(context.Background(), -15.8, -47.9, "restaurant")
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Café Central", places[0].Title)
	assert.Equal(t, 120, places[0].RatingCount)
}
