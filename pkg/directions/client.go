package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var baseURL = "https://maps.googleapis.com/maps/api/directions/json"

// Client talks to the directions provider.
type Client struct {
	httpClient *http.Client
	apiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
	}
}

// getWithRetries attempts an HTTP GET request up to 3 times for 502/503/504
// and transport-level errors.
func (c *Client) getWithRetries(ctx context.Context, reqURL string) (*http.Response, error) {
	var lastErr error
	var resp *http.Response

	for attempt := 0; attempt < 3; attempt++ {
		req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "eggycommutes/1.0 (https://github.com/dreedsanders/EggyCommutes-sub000)")

		resp, lastErr = c.httpClient.Do(req)

		// Transient gateway errors are worth another attempt
		if lastErr == nil && (resp.StatusCode == 502 || resp.StatusCode == 503 || resp.StatusCode == 504) {
			resp.Body.Close()
			lastErr = fmt.Errorf("transient status code: %d", resp.StatusCode)
		} else if lastErr == nil {
			return resp, nil
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		time.Sleep(time.Duration(attempt+1) * time.Second)
	}

	return nil, fmt.Errorf("failed after 3 attempts: %v", lastErr)
}

// Routes fetches directions for the given request. The returned response may
// still carry a non-OK status; interpreting that is the caller's job.
func (c *Client) Routes(ctx context.Context, r Request) (*Response, error) {
	params := url.Values{}
	params.Set("origin", r.Origin)
	params.Set("destination", r.Destination)
	params.Set("mode", r.Mode)
	if r.TransitMode != "" {
		params.Set("transit_mode", r.TransitMode)
	}
	if r.DepartureTime != "" {
		params.Set("departure_time", r.DepartureTime)
	}
	if r.Alternatives {
		params.Set("alternatives", "true")
	}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	reqURL := fmt.Sprintf("%s?%s", baseURL, params.Encode())

	resp, err := c.getWithRetries(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch directions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read directions response body: %w", err)
	}

	var dirResp Response
	if err := json.Unmarshal(body, &dirResp); err != nil {
		return nil, fmt.Errorf("failed to decode directions JSON: %w", err)
	}

	return &dirResp, nil
}
