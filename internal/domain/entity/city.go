package entity

// City is the canonical city record. Identity key is the case-insensitive
// name; the repository assigns IDs on creation.
type City struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
