package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"btravel/internal/domain"
)

// DirectSource reads the upstream list from a fixed absolute URL, bypassing the gateway.
// The body must be a JSON array; entries that are not objects become empty records.
type DirectSource struct {
	Client domain.UpstreamClient
	URL    string
}

func (s DirectSource) FetchDestinations(ctx context.Context) ([]domain.DestinationRecord, error) {
	var body any
	if err := s.Client.FetchJSON(ctx, s.URL, &body); err != nil {
		return nil, fmt.Errorf("error fetching destinations: %w", err)
	}
	arr, ok := body.([]any)
	if !ok {
		return nil, domain.ErrNotArray
	}
	return toRecords(arr), nil
}

// GatewaySource reads through the gateway and validates the envelope strictly.
type GatewaySource struct {
	Fetcher         domain.EnvelopeFetcher
	RequireNonEmpty bool
}

func (s GatewaySource) FetchDestinations(ctx context.Context) ([]domain.DestinationRecord, error) {
	body, err := s.Fetcher.FetchEnvelope(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch destinations: %w", err)
	}
	return DecodeEnvelope(body, s.RequireNonEmpty)
}

// DecodeEnvelope validates a gateway body: "data" must be present and truthy
// (ErrInvalidFormat), an array (ErrNotArray) and, if requireNonEmpty, non-empty
// (ErrEmpty). Array entries that are not objects become empty records.
func DecodeEnvelope(body []byte, requireNonEmpty bool) ([]domain.DestinationRecord, error) {
	var top any
	if err := json.Unmarshal(body, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
	obj, ok := top.(map[string]any)
	if !ok {
		return nil, domain.ErrInvalidFormat
	}
	data, ok := obj["data"]
	if !ok || isFalsy(data) {
		return nil, domain.ErrInvalidFormat
	}
	arr, ok := data.([]any)
	if !ok {
		return nil, domain.ErrNotArray
	}
	if requireNonEmpty && len(arr) == 0 {
		return nil, domain.ErrEmpty
	}
	return toRecords(arr), nil
}

// toRecords keeps array order; entries that are not objects become empty records.
func toRecords(arr []any) []domain.DestinationRecord {
	out := make([]domain.DestinationRecord, 0, len(arr))
	for _, it := range arr {
		m, _ := it.(map[string]any)
		if m == nil {
			m = map[string]any{}
		}
		out = append(out, m)
	}
	return out
}

func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	}
	return false
}

// LocalGateway serves envelopes from an in-process gateway.
type LocalGateway struct {
	Gateway domain.Gateway
}

func (l LocalGateway) FetchEnvelope(ctx context.Context) (json.RawMessage, error) {
	return json.Marshal(l.Gateway.ListDestinations(ctx))
}

// RemoteGateway fetches envelopes from a gateway over HTTP.
type RemoteGateway struct {
	Client domain.UpstreamClient
	URL    string
}

func (r RemoteGateway) FetchEnvelope(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := r.Client.FetchJSON(ctx, r.URL, &raw); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(raw), nil
}
