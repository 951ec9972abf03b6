package capability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"voyagee/internal/apperr"
)

// Client is the shared HTTP client for capability adapters: JSON GETs with a
// bounded retry count. After the retries are exhausted the caller gets a
// CapabilityUnavailable error and is expected to fall back to a placeholder.
type Client struct {
	HTTP    *http.Client
	Retries int
}

// NewClient builds a Client with the given timeout and retry budget.
func NewClient(timeout time.Duration, retries int) *Client {
	if retries < 1 {
		retries = 1
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		Retries: retries,
	}
}

// GetJSON fetches url and decodes the response body into out.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	var lastErr error
	for attempt := 0; attempt < c.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return apperr.Wrap(ctx.Err(), apperr.CapabilityUnavailable, "request cancelled")
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			}
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return apperr.Wrap(err, apperr.CapabilityUnavailable, "building request failed")
		}
		req.Header.Set("Accept", "application/json")
		resp, err := c.HTTP.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)
			continue
		}
		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return apperr.Wrap(lastErr, apperr.CapabilityUnavailable, "service did not answer")
}
