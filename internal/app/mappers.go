package app

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"btravel/internal/domain"
)

/********** alias registries (first truthy value wins) **********/

var carouselAliases = map[string][]string{
	"name":       {"name", "location"},
	"properties": {"properties", "numberOfProperties"},
	"image":      {"image"},
}

var popularAliases = map[string][]string{
	"city":       {"city", "name"},
	"caption":    {"hover_text"},
	"properties": {"properties"},
	"img":        {"img"},
}

var gridAliases = map[string][]string{
	"city":       {"city", "name", "title"},
	"region":     {"region"},
	"country":    {"country"},
	"properties": {"properties"},
}

/********** view shapes **********/

// CarouselCard is one slide of the direct-upstream carousel.
type CarouselCard struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Properties string `json:"properties"`
	Image      string `json:"image"`
}

// PopularCard is one slide of the popular-destinations carousel.
type PopularCard struct {
	ID        string `json:"id"`
	City      string `json:"city"`
	HoverText string `json:"hoverText"`
	Img       string `json:"img"`
}

// GridItem is one cell of the region-filtered grid.
type GridItem struct {
	ID         string `json:"id"`
	City       string `json:"city"`
	Properties int    `json:"properties"`
	Region     string `json:"region"`
}

const (
	CarouselPlaceholder = "/img/destinations/placeholder.png"
	PopularPlaceholder  = "/img/destinations/1/1.png"

	defaultGridProperties = 10
)

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// truthyText renders scalars the way a template would print them and reports
// whether the value counts as present. "", 0, false and null do not.
func truthyText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), t != 0
	case json.Number:
		f, err := t.Float64()
		return t.String(), err == nil && f != 0
	case int:
		return strconv.Itoa(t), t != 0
	case int64:
		return strconv.FormatInt(t, 10), t != 0
	case bool:
		return "true", t
	default:
		return "", false
	}
}

// firstTruthyAlias: first present scalar for a named alias set.
func firstTruthyAlias(m map[string]any, aliases map[string][]string, key string) (string, bool) {
	for _, p := range aliases[key] {
		if s, ok := truthyText(lookupAny(m, p)); ok {
			return s, true
		}
	}
	return "", false
}

func aliasOr(m map[string]any, aliases map[string][]string, key, def string) string {
	if s, ok := firstTruthyAlias(m, aliases, key); ok {
		return s
	}
	return def
}

// lookupStr returns the string at path or "" (non-strings count as absent).
func lookupStr(m map[string]any, path string) string {
	if s, ok := lookupAny(m, path).(string); ok {
		return s
	}
	return ""
}

// recordID renders the identifier for use as a list key.
func recordID(r domain.DestinationRecord) (string, bool) {
	return truthyText(r["id"])
}

// positiveIntFlexible: count from number or numeric string ("1,714" included).
func positiveIntFlexible(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), t != 0
	case int:
		return t, t != 0
	case json.Number:
		f, err := t.Float64()
		return int(f), err == nil && f != 0
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f == 0 {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

/********** per-view projections **********/

// ToCarouselCard projects a record for the direct-upstream carousel.
func ToCarouselCard(r domain.DestinationRecord) CarouselCard {
	id, _ := recordID(r)
	return CarouselCard{
		ID:         id,
		Name:       aliasOr(r, carouselAliases, "name", "Unknown Location"),
		Properties: aliasOr(r, carouselAliases, "properties", "0"),
		Image:      aliasOr(r, carouselAliases, "image", CarouselPlaceholder),
	}
}

// ToPopularCard projects a record for the popular-destinations carousel.
func ToPopularCard(r domain.DestinationRecord) PopularCard {
	id, _ := recordID(r)
	caption, ok := firstTruthyAlias(r, popularAliases, "caption")
	if !ok {
		caption = aliasOr(r, popularAliases, "properties", "10") + " Properties Available"
	}
	img := lookupStr(r, popularAliases["img"][0])
	if !ValidImageURL(img) {
		img = PopularPlaceholder
	}
	return PopularCard{
		ID:        id,
		City:      aliasOr(r, popularAliases, "city", "Unknown City"),
		HoverText: caption,
		Img:       img,
	}
}

// GridProjector projects records for the filtered grid. NewID supplies a token for
// records without an identifier; tokens are random, so uniqueness is likely, not
// guaranteed.
type GridProjector struct {
	NewID func() string
}

func NewGridProjector() GridProjector {
	return GridProjector{NewID: uuid.NewString}
}

func (p GridProjector) Project(r domain.DestinationRecord) GridItem {
	id, ok := recordID(r)
	if !ok {
		id = p.NewID()
	}
	props := defaultGridProperties
	for _, k := range gridAliases["properties"] {
		if n, ok := positiveIntFlexible(lookupAny(r, k)); ok {
			props = n
			break
		}
	}
	return GridItem{
		ID:         id,
		City:       aliasOr(r, gridAliases, "city", "Unknown"),
		Properties: props,
		Region:     DeriveRegion(lookupStr(r, gridAliases["region"][0]), lookupStr(r, gridAliases["country"][0])),
	}
}

// project maps every record in order; the result never aliases a previous fetch.
func project[T any](in []domain.DestinationRecord, fn func(domain.DestinationRecord) T) []T {
	out := make([]T, 0, len(in))
	for _, r := range in {
		out = append(out, fn(r))
	}
	return out
}
