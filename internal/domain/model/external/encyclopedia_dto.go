package external

// PageSummaryResponse represents the response from the encyclopedia page
// summary endpoint.
type PageSummaryResponse struct {
	Title       string          `json:"title"`
	Extract     string          `json:"extract"`
	Description string          `json:"description"`
	Coordinates *CoordinatesDTO `json:"coordinates,omitempty"`
	Type        string          `json:"type"`
}

// CoordinatesDTO carries the geographic coordinates of a page subject.
type CoordinatesDTO struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// EncyclopediaAPIError represents error responses from the encyclopedia service.
type EncyclopediaAPIError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
