// Package capability holds the boundaries to the external services the app
// consumes: exchange rates, geocoding, weather and nearby-places search.
// The core never implements these; it depends on the interfaces and treats
// every failure as a soft one.
package capability

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateSource resolves a currency code to its conversion rate into BRL.
// An unavailable rate must surface as an error, never default to 1;
// a silent 1.0 would corrupt every converted expense amount.
type RateSource interface {
	RateToBRL(ctx context.Context, currencyCode string) (decimal.Decimal, error)
}

// GeoPoint is a named coordinate returned by forward geocoding.
type GeoPoint struct {
	Lat         float64
	Lng         float64
	DisplayName string
}

// Geocoder resolves between coordinates and addresses.
type Geocoder interface {
	Forward(ctx context.Context, queryText string) ([]GeoPoint, error)
	Reverse(ctx context.Context, lat, lng float64) (string, error)
}

// Weather is a current-conditions reading.
type Weather struct {
	TemperatureCelsius float64
	ConditionCode      int
}

// WeatherSource reports current conditions for a named place.
type WeatherSource interface {
	Current(ctx context.Context, placeName string) (Weather, error)
}

// Place is one ranked nearby-places result.
type Place struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	ImageURL    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"ratingCount"`
	Vicinity    string  `json:"vicinity"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// PlacesSource searches for places of a category around a coordinate.
type PlacesSource interface {
	Nearby(ctx context.Context, lat, lng float64, category string) ([]Place, error)
}
