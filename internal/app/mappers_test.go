package app_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"btravel/internal/app"
	"btravel/internal/domain"
)

func record(t *testing.T, s string) domain.DestinationRecord {
	t.Helper()
	var r domain.DestinationRecord
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		t.Fatalf("bad fixture %s: %v", s, err)
	}
	return r
}

func TestValidImageURL(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"/img/x.png", true},
		{"https://drive.google.com/drive/folders/abc", false},
		{"https://drive.google.com/folders/abc", false},
		{"https://example.com/x.png", true},
		{"not a url", false},
		{"img/x.png", false},
		{"//cdn.example.com/x.png", true},
		{"https://", false},
		{"https://drive.google.com/uc?id=abc", true},
		{"http:/cdn.example.com/x.png", true},
		{"https:example.com/x.png", true},
		{" https://example.com/x.png", true},
		{"https://example.com:8443/x.png", true},
		{"https://example.com:99999/x.png", false},
		{"https://exa mple.com/x.png", false},
		{"data:image/png;base64,iVBORw0KGgo=", true},
		{"1http://example.com/x.png", false},
	}
	for _, tc := range cases {
		if got := app.ValidImageURL(tc.in); got != tc.want {
			t.Errorf("ValidImageURL(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDeriveRegion(t *testing.T) {
	cases := []struct {
		region, country, want string
	}{
		{"", "France", "europe"},
		{"", "Brazil", "other"},
		{"", "", "other"},
		{"Europe", "Japan", "europe"},
		{"OCEANIA", "", "oceania"},
		{"", "united states", "north_america"},
		{"", "UK", "europe"},
		{"", "Indonesia", "asia"},
	}
	for _, tc := range cases {
		if got := app.DeriveRegion(tc.region, tc.country); got != tc.want {
			t.Errorf("DeriveRegion(%q, %q) = %q, want %q", tc.region, tc.country, got, tc.want)
		}
	}
}

func TestToCarouselCard(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want app.CarouselCard
	}{
		{
			"all present",
			`{"id":3,"name":"Paris","properties":"1,530","image":"https://cdn.example.com/p.png"}`,
			app.CarouselCard{ID: "3", Name: "Paris", Properties: "1,530", Image: "https://cdn.example.com/p.png"},
		},
		{
			"secondary aliases",
			`{"id":"a","location":"Lisbon","numberOfProperties":42}`,
			app.CarouselCard{ID: "a", Name: "Lisbon", Properties: "42", Image: app.CarouselPlaceholder},
		},
		{
			"nothing usable",
			`{"name":"","properties":0,"image":null}`,
			app.CarouselCard{Name: "Unknown Location", Properties: "0", Image: app.CarouselPlaceholder},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := app.ToCarouselCard(record(t, tc.in)); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestToPopularCard(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want app.PopularCard
	}{
		{
			"hover text and valid image",
			`{"id":1,"city":"Rome","hover_text":"10 Hotels","img":"/img/rome.png"}`,
			app.PopularCard{ID: "1", City: "Rome", HoverText: "10 Hotels", Img: "/img/rome.png"},
		},
		{
			"generated caption from properties",
			`{"id":2,"name":"Oslo","properties":"7","img":"https://drive.google.com/drive/folders/x"}`,
			app.PopularCard{ID: "2", City: "Oslo", HoverText: "7 Properties Available", Img: app.PopularPlaceholder},
		},
		{
			"defaults",
			`{"img":"relative/path.png"}`,
			app.PopularCard{City: "Unknown City", HoverText: "10 Properties Available", Img: app.PopularPlaceholder},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := app.ToPopularCard(record(t, tc.in)); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestGridProjector(t *testing.T) {
	p := app.GridProjector{NewID: func() string { return "generated" }}
	cases := []struct {
		name string
		in   string
		want app.GridItem
	}{
		{
			"berlin",
			`{"id":"9","city":"Berlin","properties":5}`,
			app.GridItem{ID: "9", City: "Berlin", Properties: 5, Region: "other"},
		},
		{
			"region from country, title alias, numeric string",
			`{"id":12,"title":"Kyoto","country":"Japan","properties":"1,305"}`,
			app.GridItem{ID: "12", City: "Kyoto", Properties: 1305, Region: "asia"},
		},
		{
			"explicit region lower-cased",
			`{"id":"x","name":"Lyon","region":"Europe","country":"Japan"}`,
			app.GridItem{ID: "x", City: "Lyon", Properties: 10, Region: "europe"},
		},
		{
			"missing id and zero properties",
			`{"properties":0}`,
			app.GridItem{ID: "generated", City: "Unknown", Properties: 10, Region: "other"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Project(record(t, tc.in)); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestNormalizedFieldsNeverEmpty(t *testing.T) {
	p := app.NewGridProjector()
	for _, in := range []string{`{}`, `{"name":null,"city":"","img":"","hover_text":""}`, `{"title":false}`} {
		r := record(t, in)
		c := app.ToCarouselCard(r)
		pc := app.ToPopularCard(r)
		g := p.Project(r)
		if c.Name == "" || c.Image == "" || c.Properties == "" {
			t.Fatalf("carousel card has empty field for %s: %+v", in, c)
		}
		if pc.City == "" || pc.HoverText == "" || pc.Img == "" {
			t.Fatalf("popular card has empty field for %s: %+v", in, pc)
		}
		if g.ID == "" || g.City == "" || g.Region == "" || g.Properties == 0 {
			t.Fatalf("grid item has empty field for %s: %+v", in, g)
		}
	}
}

func TestFilter(t *testing.T) {
	items := []app.GridItem{
		{ID: "a", Region: "europe"},
		{ID: "b", Region: "asia"},
		{ID: "c", Region: "europe"},
	}
	got := app.Filter(items, app.FilterEurope)
	if want := []app.GridItem{items[0], items[2]}; !reflect.DeepEqual(got, want) {
		t.Fatalf("europe: got %+v, want %+v", got, want)
	}
	if got := app.Filter(items, app.FilterAll); !reflect.DeepEqual(got, items) {
		t.Fatalf("all: got %+v", got)
	}
	if got := app.Filter(items, app.FilterNorthAmerica); len(got) != 0 {
		t.Fatalf("north_america: expected none, got %+v", got)
	}
	all := app.Filter(items, app.FilterAll)
	all[0].ID = "mutated"
	if items[0].ID != "a" {
		t.Fatalf("Filter(all) aliases its input")
	}
}

func TestParseGridFilter(t *testing.T) {
	for in, want := range map[string]app.GridFilter{"": app.FilterAll, "all": app.FilterAll, "asia": app.FilterAsia, "north_america": app.FilterNorthAmerica} {
		got, err := app.ParseGridFilter(in)
		if err != nil || got != want {
			t.Errorf("ParseGridFilter(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := app.ParseGridFilter("other"); err == nil {
		t.Errorf("expected error for unlisted filter")
	}
}
