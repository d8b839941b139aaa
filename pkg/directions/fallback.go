package directions

import (
	"context"
	"fmt"
)

// Fallback wraps a Client with a last-good-response disk cache. When the live
// call fails, the most recent cached response for the same request is served
// instead, so a flaky provider degrades to slightly stale schedules rather
// than an empty board.
type Fallback struct {
	client *Client
}

func NewFallback(client *Client) *Fallback {
	return &Fallback{client: client}
}

// Routes fetches live directions, caching good responses and serving the
// cache when the provider is unreachable or returns a non-OK status.
func (f *Fallback) Routes(ctx context.Context, r Request) (*Response, error) {
	resp, err := f.client.Routes(ctx, r)
	if err == nil && resp.Status == StatusOK {
		writeCache(r, resp)
		return resp, nil
	}

	if cached, ok := readCache(r); ok {
		return cached, nil
	}

	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("provider returned status %q and no cached response exists", resp.Status)
}
