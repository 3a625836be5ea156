package static_test

import (
	"testing"
	"testing/fstest"

	"btravel/internal/storage/static"
)

func TestDataset_Bundled(t *testing.T) {
	recs, err := static.New().Destinations()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) == 0 {
		t.Fatalf("expected bundled records")
	}
	for i, r := range recs {
		if r["id"] == nil || r["city"] == nil {
			t.Fatalf("record %d lacks id or city: %+v", i, r)
		}
	}
}

func TestDataset_CallsDoNotShareState(t *testing.T) {
	d := static.New()
	a, _ := d.Destinations()
	a[0]["city"] = "mutated"
	b, err := d.Destinations()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if b[0]["city"] == "mutated" {
		t.Fatalf("second call observed mutation of the first result")
	}
}

func TestDataset_Failures(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.json":   {Data: []byte(`{"destinations1": [`)},
		"other.json": {Data: []byte(`{"destinations2": []}`)},
	}
	cases := map[string]*static.Dataset{
		"missing file":       static.NewFromFS(fsys, "nope.json", "destinations1"),
		"broken json":        static.NewFromFS(fsys, "bad.json", "destinations1"),
		"missing collection": static.NewFromFS(fsys, "other.json", "destinations1"),
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := d.Destinations(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
