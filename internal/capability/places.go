package capability

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// HTTPPlaces searches a places endpoint answering the documented shape:
// GET {base}?lat=&lng=&category= -> {"places": [{id, title, imageUrl,
// rating, ratingCount, vicinity, lat, lng}, ...]} ranked best-first.
type HTTPPlaces struct {
	BaseURL string
	Client  *Client
}

// NewHTTPPlaces builds the adapter over the given base URL.
func NewHTTPPlaces(baseURL string, client *Client) *HTTPPlaces {
	return &HTTPPlaces{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

type placesResponse struct {
	Places []Place `json:"places"`
}

// Nearby returns ranked places of the category around the coordinate. An
// unavailable service surfaces as an error; the caller shows an empty list.
func (p *HTTPPlaces) Nearby(ctx context.Context, lat, lng float64, category string) ([]Place, error) {
	u := fmt.Sprintf("%s?lat=%f&lng=%f&category=%s", p.BaseURL, lat, lng, url.QueryEscape(category))
	var body placesResponse
	if err := p.Client.GetJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	return body.Places, nil
}
