package capability

import (
	"context"
	"fmt"
	"strings"

	"voyagee/internal/apperr"
)

// OpenMeteoWeather reports current conditions from an Open-Meteo compatible
// endpoint. Place names are resolved to coordinates through the injected
// Geocoder first.
type OpenMeteoWeather struct {
	BaseURL  string
	Client   *Client
	Geocoder Geocoder
}

// NewOpenMeteoWeather builds the adapter.
func NewOpenMeteoWeather(baseURL string, client *Client, geocoder Geocoder) *OpenMeteoWeather {
	return &OpenMeteoWeather{BaseURL: strings.TrimRight(baseURL, "/"), Client: client, Geocoder: geocoder}
}

type openMeteoResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// Current returns the current conditions at the named place.
func (w *OpenMeteoWeather) Current(ctx context.Context, placeName string) (Weather, error) {
	points, err := w.Geocoder.Forward(ctx, placeName)
	if err != nil {
		return Weather{}, err
	}
	if len(points) == 0 {
		return Weather{}, apperr.New(apperr.CapabilityUnavailable, "place not found", placeName)
	}
	p := points[0]
	u := fmt.Sprintf("%s/v1/forecast?latitude=%f&longitude=%f&current_weather=true", w.BaseURL, p.Lat, p.Lng)
	var body openMeteoResponse
	if err := w.Client.GetJSON(ctx, u, &body); err != nil {
		return Weather{}, err
	}
	return Weather{
		TemperatureCelsius: body.CurrentWeather.Temperature,
		ConditionCode:      body.CurrentWeather.WeatherCode,
	}, nil
}
