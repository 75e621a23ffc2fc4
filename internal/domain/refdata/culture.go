package refdata

import (
	"fmt"

	"yatra-api/internal/domain/entity"
)

var bestTimes = map[string]string{
	"Mumbai":    "November to February, when humidity drops and evenings are pleasant",
	"Delhi":     "October to March, avoiding the May-June heat and the July monsoon",
	"Bangalore": "Year-round; October to February is the most comfortable stretch",
	"Kolkata":   "October to February, around Durga Puja and winter",
	"Chennai":   "November to February, after the northeast monsoon retreats",
}

var culturalTips = map[string][]string{
	"Mumbai": {
		"Local trains are the city's lifeline; avoid peak hours if you are new to them",
		"Dress modestly when visiting Siddhivinayak or Haji Ali",
		"Street food at Juhu and Mohammed Ali Road is safe at busy, high-turnover stalls",
	},
	"Delhi": {
		"Cover your head before entering gurudwaras; scarves are available at the entrance",
		"Agree on auto-rickshaw fares before the ride or insist on the meter",
		"Friday is closed day for several monuments, check before visiting",
	},
	"Bangalore": {
		"The city shuts down relatively early; plan dinners before 10:30pm",
		"Kannada greetings are appreciated though English is widely spoken",
		"Carry a light jacket, evenings get cool year-round",
	},
	"Kolkata": {
		"Hand-pulled rickshaws operate only in a few old neighbourhoods; tip generously",
		"Adda (long conversation) over tea is a social institution, join one",
		"Durga Puja week transforms the city; book accommodation months ahead",
	},
	"Chennai": {
		"Remove footwear well before the temple sanctum, not just at the door",
		"December music season (Margazhi) fills sabha halls across the city",
		"Filter coffee is served in a tumbler and davara; pouring between them cools it",
	},
}

var safetyRatings = map[string]float64{
	"Mumbai":    4.2,
	"Delhi":     3.6,
	"Bangalore": 4.3,
	"Kolkata":   4.0,
	"Chennai":   4.4,
}

var crimeRates = map[string]string{
	"Mumbai":    "Moderate; petty theft in crowded areas, violent crime against tourists is rare",
	"Delhi":     "Above national average; stay alert in isolated areas after dark",
	"Bangalore": "Low to moderate; occasional phone snatching near traffic signals",
	"Kolkata":   "Low; consistently among the safest Indian metros in NCRB data",
	"Chennai":   "Low; well-policed tourist areas",
}

var touristSafety = map[string]string{
	"Mumbai":    "Generally safe for tourists including solo travellers; use registered taxis at night",
	"Delhi":     "Safe in daytime tourist zones; prefer metro and prepaid taxis after dark",
	"Bangalore": "Safe for tourists; traffic is the biggest hazard",
	"Kolkata":   "Safe and welcoming; usual precautions in crowded markets",
	"Chennai":   "Very safe for tourists; beaches unsafe for swimming due to currents",
}

var touristAttractions = map[string][]string{
	"Mumbai":    {"Gateway of India", "Marine Drive", "Elephanta Caves", "Chhatrapati Shivaji Maharaj Terminus", "Sanjay Gandhi National Park"},
	"Delhi":     {"Red Fort", "Qutub Minar", "Humayun's Tomb", "India Gate", "Lotus Temple", "Chandni Chowk"},
	"Bangalore": {"Lalbagh Botanical Garden", "Bangalore Palace", "Cubbon Park", "Vidhana Soudha", "Nandi Hills"},
	"Kolkata":   {"Victoria Memorial", "Howrah Bridge", "Dakshineswar Kali Temple", "Indian Museum", "College Street"},
	"Chennai":   {"Marina Beach", "Kapaleeshwarar Temple", "Fort St. George", "San Thome Basilica", "Government Museum"},
}

var localCuisines = map[string][]string{
	"Mumbai":    {"Vada Pav", "Pav Bhaji", "Bombay Sandwich", "Bhel Puri", "Malvani seafood"},
	"Delhi":     {"Chole Bhature", "Butter Chicken", "Paranthe", "Kebabs of Old Delhi", "Daulat ki Chaat"},
	"Bangalore": {"Masala Dosa", "Bisi Bele Bath", "Mangalorean fish curry", "Filter Coffee", "Ragi Mudde"},
	"Kolkata":   {"Kathi Rolls", "Macher Jhol", "Rosogolla", "Mishti Doi", "Kosha Mangsho"},
	"Chennai":   {"Idli and Sambar", "Chettinad Chicken", "Filter Coffee", "Kothu Parotta", "Murukku"},
}

var politicalInfos = map[string]string{
	"Mumbai":    "Capital of Maharashtra and India's financial centre; governed by the BMC, the country's richest municipal corporation",
	"Delhi":     "National Capital Territory with its own legislative assembly; seat of the Union government",
	"Bangalore": "Capital of Karnataka and hub of the state's technology-driven economy; governed by the BBMP",
	"Kolkata":   "Capital of West Bengal and former capital of British India; governed by the KMC",
	"Chennai":   "Capital of Tamil Nadu with a strong Dravidian political tradition; governed by the Greater Chennai Corporation",
}

var festivals = map[string][]string{
	"Mumbai":    {"Ganesh Chaturthi", "Mumbai Film Festival", "Kala Ghoda Arts Festival", "Diwali"},
	"Delhi":     {"Diwali", "Holi", "Republic Day Parade", "Qutub Festival"},
	"Bangalore": {"Karaga Festival", "Kadalekai Parishe", "Bengaluru Habba", "Diwali"},
	"Kolkata":   {"Durga Puja", "Kali Puja", "Poila Boishakh", "Kolkata Book Fair"},
	"Chennai":   {"Pongal", "Margazhi Music Season", "Chennai Book Fair", "Karthigai Deepam"},
}

var localLanguages = map[string][]string{
	"Mumbai":    {"Marathi", "Hindi", "English"},
	"Delhi":     {"Hindi", "Punjabi", "Urdu", "English"},
	"Bangalore": {"Kannada", "English", "Hindi", "Tamil"},
	"Kolkata":   {"Bengali", "Hindi", "English"},
	"Chennai":   {"Tamil", "English"},
}

var historicalBlurbs = map[string]string{
	"Mumbai":    "Mumbai grew from seven fishing islands ceded to the Portuguese in 1534 and later transferred to the British, who merged them through land reclamation into India's busiest port and commercial capital.",
	"Delhi":     "Delhi has been the seat of power for successive empires for over a millennium, from the Delhi Sultanate through the Mughals to British India, each leaving forts, tombs and city walls across the modern capital.",
	"Bangalore": "Bangalore was founded in 1537 by Kempe Gowda I as a mud-fort town; under Mysore rule and the British cantonment it grew into a garden city, and after 1990 into India's technology capital.",
	"Kolkata":   "Kolkata rose in the late 17th century around an East India Company trading post and served as the capital of British India until 1911, making it the intellectual and artistic heart of the subcontinent.",
	"Chennai":   "Chennai began with the British purchase of a strip of coast in 1639 and the construction of Fort St. George, around which the city grew into the gateway of South India.",
}

// nationalEmergency is the all-India contact set; the same numbers apply in
// every city.
var nationalEmergency = entity.EmergencyContacts{
	Police:          "100",
	Medical:         "108",
	Fire:            "101",
	TouristHelpline: "1363",
	WomenHelpline:   "1091",
}

// BestTimeToVisit returns the recommended travel window for a city.
func BestTimeToVisit(city string) string {
	if v, ok := bestTimes[city]; ok {
		return v
	}
	return "October to March, the cooler and drier months across most of India"
}

// CulturalTips returns etiquette and practical advice for a city.
func CulturalTips(city string) []string {
	if v, ok := culturalTips[city]; ok {
		return v
	}
	return []string{
		fmt.Sprintf("Respect local customs and dress modestly at religious sites in %s", city),
		"Carry small denomination notes; many vendors cannot change large bills",
		"Bargaining is expected in street markets but not in fixed-price shops",
	}
}

// SafetyRating returns a 0-5 safety score for a city.
func SafetyRating(city string) float64 {
	if v, ok := safetyRatings[city]; ok {
		return v
	}
	return 3.8
}

// CrimeRate returns a one-line crime characterisation for a city.
func CrimeRate(city string) string {
	if v, ok := crimeRates[city]; ok {
		return v
	}
	return fmt.Sprintf("No city-specific data for %s; petty crime precautions recommended as anywhere in India", city)
}

// TouristSafety returns tourist-focused safety guidance for a city.
func TouristSafety(city string) string {
	if v, ok := touristSafety[city]; ok {
		return v
	}
	return fmt.Sprintf("%s is generally safe for tourists; keep valuables secure and use registered transport at night", city)
}

// TouristAttractions returns the highlight sights of a city.
func TouristAttractions(city string) []string {
	if v, ok := touristAttractions[city]; ok {
		return v
	}
	return []string{
		fmt.Sprintf("%s City Centre", city),
		fmt.Sprintf("Local markets of %s", city),
		fmt.Sprintf("Temples and historic sites around %s", city),
	}
}

// LocalCuisine returns signature dishes of a city.
func LocalCuisine(city string) []string {
	if v, ok := localCuisines[city]; ok {
		return v
	}
	return []string{"Regional thali", "Local street food", "Seasonal sweets"}
}

// PoliticalInfo returns a one-line administrative summary for a city.
func PoliticalInfo(city string) string {
	if v, ok := politicalInfos[city]; ok {
		return v
	}
	return fmt.Sprintf("%s is administered by its municipal body under the respective state government", city)
}

// Festivals returns the major festivals celebrated in a city.
func Festivals(city string) []string {
	if v, ok := festivals[city]; ok {
		return v
	}
	return []string{"Diwali", "Holi", "Local harvest festival"}
}

// LocalLanguages returns the languages commonly spoken in a city.
func LocalLanguages(city string) []string {
	if v, ok := localLanguages[city]; ok {
		return v
	}
	return []string{"Hindi", "English", "Regional language"}
}

// EmergencyContacts returns the emergency numbers applicable in a city.
// The national numbers apply everywhere.
func EmergencyContacts(city string) entity.EmergencyContacts {
	return nationalEmergency
}

// HistoricalBlurb returns the static historical summary for a city, or the
// generic templated sentence when no curated blurb exists.
func HistoricalBlurb(city string) string {
	if v, ok := historicalBlurbs[city]; ok {
		return v
	}
	return fmt.Sprintf("%s is a significant city in India with a rich cultural heritage, known for its historical importance and vibrant local traditions.", city)
}
