package entity

// Hotel is a presentation-only record resolved from the static tables by
// city name; it is not persisted through the repository.
type Hotel struct {
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	PricePerNight string  `json:"pricePerNight"`
	Area          string  `json:"area"`
}

// Restaurant is a presentation-only record resolved from the static tables
// by city name.
type Restaurant struct {
	Name       string  `json:"name"`
	Cuisine    string  `json:"cuisine"`
	Rating     float64 `json:"rating"`
	PriceRange string  `json:"priceRange"`
	Specialty  string  `json:"specialty"`
}

// Transportation describes how to reach and move around a city.
type Transportation struct {
	TrainStations  []string `json:"trainStations"`
	BusRoutes      []string `json:"busRoutes"`
	LocalTransport string   `json:"localTransport"`
	Airports       []string `json:"airports"`
}
