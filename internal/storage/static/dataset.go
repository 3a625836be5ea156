// Package static serves the destination dataset bundled into the binary. It is the
// grid's last resort when neither the gateway nor the upstream can be used.
package static

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"btravel/internal/domain"
)

//go:embed data/*.json
var embedded embed.FS

const (
	defaultFile       = "data/destinations1.json"
	defaultCollection = "destinations1"
)

// Dataset reads one named collection from a JSON file shaped {"<name>": [...]}.
type Dataset struct {
	fsys       fs.FS
	file       string
	collection string
}

// New returns the bundled destinations1 collection.
func New() *Dataset {
	return &Dataset{fsys: embedded, file: defaultFile, collection: defaultCollection}
}

// NewFromFS reads collection from file in fsys.
func NewFromFS(fsys fs.FS, file, collection string) *Dataset {
	return &Dataset{fsys: fsys, file: file, collection: collection}
}

// Destinations parses the collection on every call so callers never share a slice.
func (d *Dataset) Destinations() ([]domain.DestinationRecord, error) {
	b, err := fs.ReadFile(d.fsys, d.file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", d.file, err)
	}
	var doc map[string][]domain.DestinationRecord
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", d.file, err)
	}
	recs, ok := doc[d.collection]
	if !ok {
		return nil, fmt.Errorf("collection %q not found in %s", d.collection, d.file)
	}
	return recs, nil
}
