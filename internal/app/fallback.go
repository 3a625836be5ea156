package app

import (
	"encoding/json"

	"btravel/internal/domain"
)

// Canned datasets served when live data is unavailable.

func fallbackDestination(id, name, city, country, region string, props int, img, hover string) domain.FallbackDestination {
	return domain.FallbackDestination{
		ID: id, Name: name, City: city, Country: country, Region: region,
		Properties: props,
		Stays:      make([]any, props),
		Img:        img,
		HoverText:  hover,
	}
}

// GatewayFallback returns the eight records the Gateway answers with when the
// upstream service cannot be used.
func GatewayFallback() []domain.FallbackDestination {
	return []domain.FallbackDestination{
		fallbackDestination("1", "New York City", "New York", "USA", "north_america", 12, "/img/destinations/1/1.png", "12 Hotels - 7 Tours - 10 Activities"),
		fallbackDestination("2", "London", "London", "UK", "europe", 14, "/img/destinations/1/2.png", "14 Hotels - 8 Tours - 12 Activities"),
		fallbackDestination("3", "Paris", "Paris", "France", "europe", 16, "/img/destinations/1/3.png", "16 Hotels - 10 Tours - 15 Activities"),
		fallbackDestination("4", "Tokyo", "Tokyo", "Japan", "asia", 15, "/img/destinations/1/4.png", "15 Hotels - 9 Tours - 12 Activities"),
		fallbackDestination("5", "Rome", "Rome", "Italy", "europe", 10, "/img/destinations/1/5.png", "10 Hotels - 6 Tours - 8 Activities"),
		fallbackDestination("6", "Barcelona", "Barcelona", "Spain", "europe", 8, "/img/destinations/1/1.png", "8 Hotels - 5 Tours - 7 Activities"),
		fallbackDestination("7", "Dubai", "Dubai", "UAE", "asia", 17, "/img/destinations/1/2.png", "17 Hotels - 12 Tours - 18 Activities"),
		fallbackDestination("8", "Bangkok", "Bangkok", "Thailand", "asia", 11, "/img/destinations/1/3.png", "11 Hotels - 7 Tours - 9 Activities"),
	}
}

var gatewayFallbackJSON = mustMarshal(GatewayFallback())

func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

const popularFallbackCaption = "14 Hotel - 22 Cars - 18 Tours - 95 Activity"

// PopularFallback is the fixed set the popular carousel substitutes on any error.
func PopularFallback() []PopularCard {
	return []PopularCard{
		{ID: "1", City: "New York", HoverText: popularFallbackCaption, Img: "/img/destinations/1/1.png"},
		{ID: "2", City: "London", HoverText: popularFallbackCaption, Img: "/img/destinations/1/2.png"},
		{ID: "3", City: "Barcelona", HoverText: popularFallbackCaption, Img: "/img/destinations/1/3.png"},
		{ID: "4", City: "Sydney", HoverText: popularFallbackCaption, Img: "/img/destinations/1/4.png"},
		{ID: "5", City: "Rome", HoverText: popularFallbackCaption, Img: "/img/destinations/1/5.png"},
	}
}
