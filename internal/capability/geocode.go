package capability

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"voyagee/internal/apperr"
)

// NominatimGeocoder resolves queries and coordinates against a
// Nominatim-compatible endpoint.
type NominatimGeocoder struct {
	BaseURL string
	Client  *Client
}

// NewNominatimGeocoder builds the adapter over the given base URL.
func NewNominatimGeocoder(baseURL string, client *Client) *NominatimGeocoder {
	return &NominatimGeocoder{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Forward returns the ranked candidate coordinates for a free-text query.
func (g *NominatimGeocoder) Forward(ctx context.Context, queryText string) ([]GeoPoint, error) {
	if strings.TrimSpace(queryText) == "" {
		return nil, apperr.ValidationFailed("search query is required", "")
	}
	u := fmt.Sprintf("%s/search?format=json&q=%s", g.BaseURL, url.QueryEscape(queryText))
	var results []nominatimResult
	if err := g.Client.GetJSON(ctx, u, &results); err != nil {
		return nil, err
	}
	points := make([]GeoPoint, 0, len(results))
	for _, r := range results {
		var lat, lon float64
		if _, err := fmt.Sscanf(r.Lat, "%f", &lat); err != nil {
			continue
		}
		if _, err := fmt.Sscanf(r.Lon, "%f", &lon); err != nil {
			continue
		}
		points = append(points, GeoPoint{Lat: lat, Lng: lon, DisplayName: r.DisplayName})
	}
	return points, nil
}

// Reverse resolves a coordinate to a display address. When the service has
// no answer, the caller falls back to rendering the raw coordinates.
func (g *NominatimGeocoder) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	u := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f", g.BaseURL, lat, lng)
	var result nominatimResult
	if err := g.Client.GetJSON(ctx, u, &result); err != nil {
		return "", err
	}
	if result.DisplayName == "" {
		return "", apperr.New(apperr.CapabilityUnavailable, "no address for coordinate", fmt.Sprintf("%.5f,%.5f", lat, lng))
	}
	return result.DisplayName, nil
}

// FallbackAddress renders a coordinate as the placeholder address used when
// reverse geocoding is unavailable.
func FallbackAddress(lat, lng float64) string {
	return fmt.Sprintf("%.5f, %.5f", lat, lng)
}
