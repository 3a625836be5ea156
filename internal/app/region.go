package app

import (
	"fmt"
	"strings"
)

const (
	RegionNorthAmerica = "north_america"
	RegionEurope       = "europe"
	RegionAsia         = "asia"
	RegionOther        = "other"
)

// countryRegions is keyed by lower-cased country name.
var countryRegions = map[string]string{
	"usa":            RegionNorthAmerica,
	"united states":  RegionNorthAmerica,
	"canada":         RegionNorthAmerica,
	"uk":             RegionEurope,
	"united kingdom": RegionEurope,
	"france":         RegionEurope,
	"italy":          RegionEurope,
	"spain":          RegionEurope,
	"germany":        RegionEurope,
	"japan":          RegionAsia,
	"china":          RegionAsia,
	"thailand":       RegionAsia,
	"india":          RegionAsia,
	"indonesia":      RegionAsia,
}

// DeriveRegion: explicit region (lower-cased) wins, then the country table, then "other".
func DeriveRegion(region, country string) string {
	if region != "" {
		return strings.ToLower(region)
	}
	if country != "" {
		if r, ok := countryRegions[strings.ToLower(country)]; ok {
			return r
		}
	}
	return RegionOther
}

// GridFilter is the grid's active selection.
type GridFilter string

const (
	FilterAll          GridFilter = "all"
	FilterEurope       GridFilter = RegionEurope
	FilterAsia         GridFilter = RegionAsia
	FilterNorthAmerica GridFilter = RegionNorthAmerica
)

// FilterOption is a selectable tab.
type FilterOption struct {
	Label string     `json:"label"`
	Value GridFilter `json:"value"`
}

var FilterOptions = []FilterOption{
	{Label: "All", Value: FilterAll},
	{Label: "Europe", Value: FilterEurope},
	{Label: "Asia", Value: FilterAsia},
	{Label: "North America", Value: FilterNorthAmerica},
}

// ParseGridFilter accepts only the enumerated selections; empty means all.
func ParseGridFilter(s string) (GridFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, o := range FilterOptions {
		if string(o.Value) == s {
			return o.Value, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// Filter returns the visible subset in original relative order.
func Filter(items []GridItem, f GridFilter) []GridItem {
	if f == FilterAll {
		out := make([]GridItem, len(items))
		copy(out, items)
		return out
	}
	out := make([]GridItem, 0, len(items))
	for _, it := range items {
		if it.Region == string(f) {
			out = append(out, it)
		}
	}
	return out
}
