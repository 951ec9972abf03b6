package capability

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"voyagee/internal/apperr"
)

// ERAPIRates resolves exchange rates against an open.er-api.com compatible
// endpoint: GET {base}/{CODE} answering {"rates": {"BRL": n, ...}}.
type ERAPIRates struct {
	BaseURL string
	Client  *Client
}

// NewERAPIRates builds the adapter over the given base URL.
func NewERAPIRates(baseURL string, client *Client) *ERAPIRates {
	return &ERAPIRates{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// RateToBRL returns the BRL conversion rate for the given currency code.
// BRL itself is 1 without a network call. Any other code that cannot be
// resolved is an error; there is deliberately no 1.0 fallback.
func (r *ERAPIRates) RateToBRL(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if code == "BRL" {
		return decimal.NewFromInt(1), nil
	}
	var body ratesResponse
	if err := r.Client.GetJSON(ctx, fmt.Sprintf("%s/%s", r.BaseURL, code), &body); err != nil {
		return decimal.Zero, err
	}
	rate, ok := body.Rates["BRL"]
	if !ok || rate <= 0 {
		return decimal.Zero, apperr.New(apperr.CapabilityUnavailable, "no BRL rate for currency", code)
	}
	return decimal.NewFromFloat(rate), nil
}
