// internal/adapters/upstream/client.go
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"btravel/internal/adapters/observability"
	"btravel/internal/domain"
)

// DestinationsPath is the upstream list route. The trailing slash is required by the backend.
const DestinationsPath = "/api/destinations/"

const service = "destinations"

// Client talks to the upstream destinations service. It makes exactly one attempt per
// call; deadlines come from the caller's context.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		// outer guard only; the gateway sets its own, shorter deadline
		hc: &http.Client{Timeout: 20 * time.Second},
	}
}

// URL returns the upstream list URL this client calls.
func (c *Client) URL() string { return c.base + DestinationsPath }

func (c *Client) ListDestinations(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.get(ctx, "list_destinations", c.URL(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchJSON(ctx context.Context, url string, out any) error {
	return c.get(ctx, "fetch", url, out)
}

// ---- Internals ----

func (c *Client) get(ctx context.Context, endpoint, url string, out any) error {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "btravel-web/1.0")

	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(service, endpoint, 0, time.Since(start))
		// network error or context canceled
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal(service, endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &domain.UpstreamStatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := decodeStrict(resp.Body, out); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// decodeStrict decodes exactly one JSON value; trailing data is an error.
func decodeStrict(r io.Reader, out any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamDecode, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data after JSON value", domain.ErrUpstreamDecode)
	}
	return nil
}
