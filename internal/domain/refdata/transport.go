package refdata

import (
	"fmt"

	"yatra-api/internal/domain/entity"
)

var transportation = map[string]entity.Transportation{
	"Mumbai": {
		TrainStations:  []string{"Chhatrapati Shivaji Maharaj Terminus", "Mumbai Central", "Dadar", "Lokmanya Tilak Terminus"},
		BusRoutes:      []string{"BEST city network", "MSRTC intercity from Mumbai Central depot", "NMMT to Navi Mumbai"},
		LocalTransport: "Suburban local trains, metro lines 1-3, BEST buses, kaali-peeli taxis and ride-hailing",
		Airports:       []string{"Chhatrapati Shivaji Maharaj International Airport (BOM)"},
	},
	"Delhi": {
		TrainStations:  []string{"New Delhi Railway Station", "Old Delhi Junction", "Hazrat Nizamuddin", "Anand Vihar Terminal"},
		BusRoutes:      []string{"DTC city network", "ISBT Kashmere Gate interstate", "ISBT Sarai Kale Khan"},
		LocalTransport: "Delhi Metro across NCR, DTC buses, auto-rickshaws and ride-hailing",
		Airports:       []string{"Indira Gandhi International Airport (DEL)"},
	},
	"Bangalore": {
		TrainStations:  []string{"KSR Bengaluru City Junction", "Yesvantpur Junction", "SMVT Bengaluru"},
		BusRoutes:      []string{"BMTC city network", "KSRTC intercity from Majestic", "Airport Vayu Vajra shuttles"},
		LocalTransport: "Namma Metro purple and green lines, BMTC buses, autos and ride-hailing",
		Airports:       []string{"Kempegowda International Airport (BLR)"},
	},
	"Kolkata": {
		TrainStations:  []string{"Howrah Junction", "Sealdah", "Kolkata (Chitpur)", "Shalimar"},
		BusRoutes:      []string{"WBTC city network", "Esplanade interstate terminus"},
		LocalTransport: "India's oldest metro (north-south and east-west lines), trams, ferries on the Hooghly, yellow taxis",
		Airports:       []string{"Netaji Subhas Chandra Bose International Airport (CCU)"},
	},
	"Chennai": {
		TrainStations:  []string{"Chennai Central", "Chennai Egmore", "Tambaram"},
		BusRoutes:      []string{"MTC city network", "CMBT interstate terminus"},
		LocalTransport: "Chennai Metro blue and green lines, MTC buses, suburban EMU trains, autos",
		Airports:       []string{"Chennai International Airport (MAA)"},
	},
}

// Transportation returns transport options for a city, with a generic record
// for cities outside the curated tables.
func Transportation(city string) entity.Transportation {
	if v, ok := transportation[city]; ok {
		return v
	}
	return entity.Transportation{
		TrainStations:  []string{fmt.Sprintf("%s Railway Station", city)},
		BusRoutes:      []string{fmt.Sprintf("State transport buses from %s bus stand", city)},
		LocalTransport: "Auto-rickshaws, cycle-rickshaws and local buses",
		Airports:       []string{fmt.Sprintf("Nearest airport serving %s; check regional connectivity", city)},
	}
}
