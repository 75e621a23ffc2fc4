package entity

// EmergencyContacts holds the standard Indian emergency numbers plus
// tourist-specific helplines.
type EmergencyContacts struct {
	Police          string `json:"police"`
	Medical         string `json:"medical"`
	Fire            string `json:"fire"`
	TouristHelpline string `json:"touristHelpline"`
	WomenHelpline   string `json:"womenHelpline"`
}

// CityInfo is the persisted cultural/safety record for a city, upserted by
// cityId with the same replace semantics as WeatherSnapshot.
type CityInfo struct {
	ID                 int64             `json:"id"`
	CityID             int64             `json:"cityId"`
	HistoricalInfo     string            `json:"historicalInfo"`
	BestTimeToVisit    string            `json:"bestTimeToVisit"`
	LocalLanguages     []string          `json:"localLanguages"`
	CulturalTips       []string          `json:"culturalTips"`
	SafetyRating       float64           `json:"safetyRating"`
	CrimeRate          string            `json:"crimeRate"`
	TouristSafety      string            `json:"touristSafety"`
	TouristAttractions []string          `json:"touristAttractions"`
	LocalCuisine       []string          `json:"localCuisine"`
	EmergencyContacts  EmergencyContacts `json:"emergencyContacts"`
	PoliticalInfo      string            `json:"politicalInfo"`
	Festivals          []string          `json:"festivals"`
}
