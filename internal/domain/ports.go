package domain

import (
	"context"
	"encoding/json"
)

type UpstreamClient interface {
	URL() string
	// ListDestinations calls {base}/api/destinations/ and returns the body as-is.
	ListDestinations(ctx context.Context) (json.RawMessage, error)
	// FetchJSON GETs an absolute URL and decodes the body into out.
	FetchJSON(ctx context.Context, url string, out any) error
}

// Gateway never fails: on upstream trouble it answers with fallback data.
type Gateway interface {
	ListDestinations(ctx context.Context) Envelope
}

// Source is the shared data-access abstraction every view fetches through.
type Source interface {
	FetchDestinations(ctx context.Context) ([]DestinationRecord, error)
}

// StaticDataset is the local dataset module used as a second-stage fallback.
type StaticDataset interface {
	Destinations() ([]DestinationRecord, error)
}

// EnvelopeFetcher returns a complete Gateway response body, {"data": ...}.
type EnvelopeFetcher interface {
	FetchEnvelope(ctx context.Context) (json.RawMessage, error)
}
