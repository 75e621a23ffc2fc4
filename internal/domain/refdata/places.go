package refdata

import (
	"fmt"

	"yatra-api/internal/domain/entity"
)

var hotels = map[string][]entity.Hotel{
	"Mumbai": {
		{Name: "The Taj Mahal Palace", Rating: 4.8, PricePerNight: "₹18,000+", Area: "Colaba"},
		{Name: "Trident Nariman Point", Rating: 4.6, PricePerNight: "₹12,000+", Area: "Nariman Point"},
		{Name: "Hotel Suba Palace", Rating: 4.1, PricePerNight: "₹5,500+", Area: "Apollo Bunder"},
		{Name: "Backpacker Panda", Rating: 3.9, PricePerNight: "₹900+", Area: "Andheri"},
	},
	"Delhi": {
		{Name: "The Imperial", Rating: 4.7, PricePerNight: "₹15,000+", Area: "Janpath"},
		{Name: "The Claridges", Rating: 4.5, PricePerNight: "₹11,000+", Area: "Lutyens' Delhi"},
		{Name: "Bloomrooms", Rating: 4.2, PricePerNight: "₹4,000+", Area: "New Delhi Railway Station"},
		{Name: "Zostel Delhi", Rating: 4.0, PricePerNight: "₹800+", Area: "Paharganj"},
	},
	"Bangalore": {
		{Name: "The Leela Palace", Rating: 4.8, PricePerNight: "₹14,000+", Area: "Old Airport Road"},
		{Name: "Taj West End", Rating: 4.7, PricePerNight: "₹13,000+", Area: "Race Course Road"},
		{Name: "Lemon Tree Premier", Rating: 4.3, PricePerNight: "₹6,000+", Area: "Ulsoor"},
		{Name: "The Hosteller", Rating: 4.0, PricePerNight: "₹700+", Area: "Koramangala"},
	},
	"Kolkata": {
		{Name: "The Oberoi Grand", Rating: 4.7, PricePerNight: "₹12,000+", Area: "Esplanade"},
		{Name: "Taj Bengal", Rating: 4.6, PricePerNight: "₹11,000+", Area: "Alipore"},
		{Name: "The Astor", Rating: 4.2, PricePerNight: "₹5,000+", Area: "Shakespeare Sarani"},
		{Name: "Wanderers' Nest", Rating: 3.9, PricePerNight: "₹850+", Area: "New Town"},
	},
	"Chennai": {
		{Name: "ITC Grand Chola", Rating: 4.8, PricePerNight: "₹13,000+", Area: "Guindy"},
		{Name: "Taj Coromandel", Rating: 4.6, PricePerNight: "₹10,000+", Area: "Nungambakkam"},
		{Name: "The Residency Towers", Rating: 4.3, PricePerNight: "₹5,500+", Area: "T. Nagar"},
		{Name: "Red Lollipop Hostel", Rating: 4.0, PricePerNight: "₹750+", Area: "Mylapore"},
	},
}

var restaurants = map[string][]entity.Restaurant{
	"Mumbai": {
		{Name: "Trishna", Cuisine: "Seafood", Rating: 4.6, PriceRange: "₹₹₹", Specialty: "Butter garlic crab"},
		{Name: "Britannia & Co.", Cuisine: "Parsi", Rating: 4.5, PriceRange: "₹₹", Specialty: "Berry pulav"},
		{Name: "Cafe Madras", Cuisine: "South Indian", Rating: 4.4, PriceRange: "₹", Specialty: "Rava dosa"},
		{Name: "Bademiya", Cuisine: "Mughlai", Rating: 4.2, PriceRange: "₹₹", Specialty: "Seekh kebab rolls"},
	},
	"Delhi": {
		{Name: "Karim's", Cuisine: "Mughlai", Rating: 4.5, PriceRange: "₹₹", Specialty: "Mutton korma"},
		{Name: "Bukhara", Cuisine: "North-West Frontier", Rating: 4.7, PriceRange: "₹₹₹₹", Specialty: "Dal Bukhara"},
		{Name: "Saravana Bhavan", Cuisine: "South Indian", Rating: 4.3, PriceRange: "₹", Specialty: "Mini tiffin"},
		{Name: "Paranthe Wali Gali stalls", Cuisine: "Street food", Rating: 4.1, PriceRange: "₹", Specialty: "Stuffed paranthas"},
	},
	"Bangalore": {
		{Name: "MTR", Cuisine: "South Indian", Rating: 4.6, PriceRange: "₹", Specialty: "Rava idli"},
		{Name: "Vidyarthi Bhavan", Cuisine: "South Indian", Rating: 4.5, PriceRange: "₹", Specialty: "Benne masala dosa"},
		{Name: "Karavalli", Cuisine: "Coastal", Rating: 4.7, PriceRange: "₹₹₹₹", Specialty: "Kane fry"},
		{Name: "Truffles", Cuisine: "Continental", Rating: 4.3, PriceRange: "₹₹", Specialty: "Burgers"},
	},
	"Kolkata": {
		{Name: "Peter Cat", Cuisine: "Continental", Rating: 4.4, PriceRange: "₹₹", Specialty: "Chelo kebab"},
		{Name: "6 Ballygunge Place", Cuisine: "Bengali", Rating: 4.5, PriceRange: "₹₹₹", Specialty: "Bhetki paturi"},
		{Name: "Arsalan", Cuisine: "Mughlai", Rating: 4.4, PriceRange: "₹₹", Specialty: "Kolkata biryani"},
		{Name: "Flurys", Cuisine: "Bakery", Rating: 4.2, PriceRange: "₹₹", Specialty: "Rum balls"},
	},
	"Chennai": {
		{Name: "Murugan Idli Shop", Cuisine: "South Indian", Rating: 4.5, PriceRange: "₹", Specialty: "Podi idli"},
		{Name: "Dakshin", Cuisine: "South Indian", Rating: 4.6, PriceRange: "₹₹₹₹", Specialty: "Appam with stew"},
		{Name: "Buhari", Cuisine: "Mughlai", Rating: 4.3, PriceRange: "₹₹", Specialty: "Chicken 65"},
		{Name: "Sangeetha", Cuisine: "Vegetarian", Rating: 4.2, PriceRange: "₹", Specialty: "Ghee roast dosa"},
	},
}

// Hotels returns the curated hotel list for a city, or a generic set built
// around the city name when no curated list exists. The result is never empty.
func Hotels(city string) []entity.Hotel {
	if v, ok := hotels[city]; ok {
		return v
	}
	return []entity.Hotel{
		{Name: fmt.Sprintf("Hotel %s Grand", city), Rating: 4.0, PricePerNight: "₹3,500+", Area: "City Centre"},
		{Name: fmt.Sprintf("%s Residency", city), Rating: 3.8, PricePerNight: "₹2,200+", Area: "Railway Station Road"},
		{Name: fmt.Sprintf("Budget Stay %s", city), Rating: 3.5, PricePerNight: "₹1,000+", Area: "Old Town"},
	}
}

// Restaurants returns the curated restaurant list for a city, or a generic
// set when no curated list exists. The result is never empty.
func Restaurants(city string) []entity.Restaurant {
	if v, ok := restaurants[city]; ok {
		return v
	}
	return []entity.Restaurant{
		{Name: fmt.Sprintf("%s Bhavan", city), Cuisine: "Regional", Rating: 4.0, PriceRange: "₹", Specialty: "Local thali"},
		{Name: fmt.Sprintf("Spice Route %s", city), Cuisine: "North Indian", Rating: 3.9, PriceRange: "₹₹", Specialty: "Tandoori platter"},
		{Name: fmt.Sprintf("%s Chaat Corner", city), Cuisine: "Street food", Rating: 3.8, PriceRange: "₹", Specialty: "Chaat"},
	}
}
