package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DestinationRecord is one upstream destination as received. Field names vary by
// producer (name/city/title, properties/numberOfProperties, img/image), so it stays
// untyped until a view projects it.
type DestinationRecord map[string]any

// Envelope is the Gateway response body. Data is passed through verbatim.
type Envelope struct {
	Data json.RawMessage `json:"data"`
}

// FallbackDestination is the shape of the Gateway's canned records.
type FallbackDestination struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Region     string `json:"region"`
	Properties int    `json:"properties"`
	Stays      []any  `json:"stays"` // N nulls, N == Properties
	Img        string `json:"img"`
	HoverText  string `json:"hoverText"`
}

// Envelope validation failures.
var (
	ErrInvalidFormat = errors.New("invalid data format received from API")
	ErrNotArray      = errors.New("API did not return an array of destinations")
	ErrEmpty         = errors.New("no destinations found in API response")
)

// ErrStaticModule is returned when the local static dataset cannot be loaded.
var ErrStaticModule = errors.New("could not load destinations data")

// ErrUpstreamDecode marks a 2xx upstream response whose body is not a single JSON value.
var ErrUpstreamDecode = errors.New("upstream: invalid JSON body")

// UpstreamStatusError is a non-2xx upstream answer.
type UpstreamStatusError struct {
	Status int
	Body   string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("backend API responded with status: %d", e.Status)
}
