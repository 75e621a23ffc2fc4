// Package refdata holds the static reference tables for Indian cities and the
// name-resolution logic over them. Every lookup is a total function: known
// cities return curated data, unknown cities return a generic record built
// around the requested name.
package refdata

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// aliases maps lower-cased misspellings, former names and vernacular names to
// the canonical city name.
var aliases = map[string]string{
	"bombay":     "Mumbai",
	"mumbai":     "Mumbai",
	"bengaluru":  "Bangalore",
	"banglore":   "Bangalore",
	"bangalore":  "Bangalore",
	"calcutta":   "Kolkata",
	"kolkata":    "Kolkata",
	"madras":     "Chennai",
	"chennai":    "Chennai",
	"new delhi":  "Delhi",
	"dilli":      "Delhi",
	"delhi":      "Delhi",
	"poona":      "Pune",
	"pune":       "Pune",
	"hydrabad":   "Hyderabad",
	"hyderabad":  "Hyderabad",
	"benares":    "Varanasi",
	"banaras":    "Varanasi",
	"kashi":      "Varanasi",
	"varanasi":   "Varanasi",
	"cochin":     "Kochi",
	"kochi":      "Kochi",
	"trivandrum": "Thiruvananthapuram",
	"mysore":     "Mysuru",
	"baroda":     "Vadodara",
	"allahabad":  "Prayagraj",
	"gauhati":    "Guwahati",
	"simla":      "Shimla",
	"jaipur":     "Jaipur",
	"agra":       "Agra",
	"amritsar":   "Amritsar",
	"ahmedabad":  "Ahmedabad",
	"lucknow":    "Lucknow",
	"goa":        "Goa",
}

// cityStates maps canonical city names to their state.
var cityStates = map[string]string{
	"Mumbai":             "Maharashtra",
	"Delhi":              "Delhi",
	"Bangalore":          "Karnataka",
	"Kolkata":            "West Bengal",
	"Chennai":            "Tamil Nadu",
	"Pune":               "Maharashtra",
	"Hyderabad":          "Telangana",
	"Varanasi":           "Uttar Pradesh",
	"Kochi":              "Kerala",
	"Thiruvananthapuram": "Kerala",
	"Mysuru":             "Karnataka",
	"Vadodara":           "Gujarat",
	"Prayagraj":          "Uttar Pradesh",
	"Guwahati":           "Assam",
	"Shimla":             "Himachal Pradesh",
	"Jaipur":             "Rajasthan",
	"Agra":               "Uttar Pradesh",
	"Amritsar":           "Punjab",
	"Ahmedabad":          "Gujarat",
	"Lucknow":            "Uttar Pradesh",
	"Goa":                "Goa",
}

// Normalize resolves free-text input to the canonical city name. Input is
// trimmed and matched case-insensitively against the alias table. When no
// alias matches, the trimmed input is title-cased as a best-effort guess; the
// result is not guaranteed to name a city the static tables know.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if canonical, ok := aliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}

	return titleCase(trimmed)
}

// StateFor returns the state for a canonical city name, defaulting to
// "India" when the city is not in the table.
func StateFor(canonicalName string) string {
	if state, ok := cityStates[canonicalName]; ok {
		return state
	}
	return "India"
}

// titleCase upper-cases the first rune of each whitespace-separated word
// and lower-cases the rest. Scripts without case (Devanagari, Tamil, ...)
// pass through unchanged.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		first, width := utf8.DecodeRuneInString(word)
		if first == utf8.RuneError && width <= 1 {
			continue
		}
		words[i] = string(unicode.ToUpper(first)) + word[width:]
	}
	return strings.Join(words, " ")
}
