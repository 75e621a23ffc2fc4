package db

import (
	"sort"
	"strings"
	"sync"

	"yatra-api/internal/domain/entity"
)

// MemoryTravelGateway is an in-memory TravelGateway used when no database is
// configured. All maps are guarded by a single RWMutex so that
// CreateCityIfAbsent keeps its once-per-name guarantee under concurrency.
type MemoryTravelGateway struct {
	mu sync.RWMutex

	cities       map[int64]entity.City
	cityByName   map[string]int64
	snapshots    map[int64]entity.WeatherSnapshot
	infos        map[int64]entity.CityInfo
	nextCityID   int64
	nextRecordID int64
}

var _ TravelGateway = (*MemoryTravelGateway)(nil)

func NewMemoryTravelGateway() *MemoryTravelGateway {
	return &MemoryTravelGateway{
		cities:     make(map[int64]entity.City),
		cityByName: make(map[string]int64),
		snapshots:  make(map[int64]entity.WeatherSnapshot),
		infos:      make(map[int64]entity.CityInfo),
	}
}

func (gateway *MemoryTravelGateway) FindCityByName(name string) (*entity.City, error) {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()

	id, ok := gateway.cityByName[strings.ToLower(name)]
	if !ok {
		return nil, nil
	}
	city := gateway.cities[id]
	return &city, nil
}

func (gateway *MemoryTravelGateway) FindCityByID(id int64) (*entity.City, error) {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()

	city, ok := gateway.cities[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &city, nil
}

func (gateway *MemoryTravelGateway) CreateCityIfAbsent(city entity.City) (*entity.City, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	key := strings.ToLower(city.Name)
	if id, ok := gateway.cityByName[key]; ok {
		existing := gateway.cities[id]
		return &existing, nil
	}

	gateway.nextCityID++
	city.ID = gateway.nextCityID
	gateway.cities[city.ID] = city
	gateway.cityByName[key] = city.ID
	return &city, nil
}

func (gateway *MemoryTravelGateway) UpdateCityCoordinates(id int64, latitude float64, longitude float64) error {
	if latitude == 0 && longitude == 0 {
		return nil
	}

	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	city, ok := gateway.cities[id]
	if !ok {
		return ErrNotFound
	}
	city.Latitude = latitude
	city.Longitude = longitude
	gateway.cities[id] = city
	return nil
}

func (gateway *MemoryTravelGateway) FindAllCities(page int, size int) ([]entity.City, error) {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()

	all := make([]entity.City, 0, len(gateway.cities))
	for _, city := range gateway.cities {
		all = append(all, city)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if size <= 0 {
		return []entity.City{}, nil
	}
	if page < 0 {
		page = 0
	}
	start := page * size
	if start >= len(all) {
		return []entity.City{}, nil
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (gateway *MemoryTravelGateway) CountCities() (int64, error) {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()
	return int64(len(gateway.cities)), nil
}

func (gateway *MemoryTravelGateway) UpsertWeatherSnapshot(snapshot entity.WeatherSnapshot) (*entity.WeatherSnapshot, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	if existing, ok := gateway.snapshots[snapshot.CityID]; ok {
		snapshot.ID = existing.ID
	} else {
		gateway.nextRecordID++
		snapshot.ID = gateway.nextRecordID
	}
	gateway.snapshots[snapshot.CityID] = snapshot
	return &snapshot, nil
}

func (gateway *MemoryTravelGateway) FindWeatherSnapshotByCityID(cityID int64) (*entity.WeatherSnapshot, error) {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()

	snapshot, ok := gateway.snapshots[cityID]
	if !ok {
		return nil, ErrNotFound
	}
	return &snapshot, nil
}

func (gateway *MemoryTravelGateway) UpsertCityInfo(info entity.CityInfo) (*entity.CityInfo, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	if existing, ok := gateway.infos[info.CityID]; ok {
		info.ID = existing.ID
	} else {
		gateway.nextRecordID++
		info.ID = gateway.nextRecordID
	}
	gateway.infos[info.CityID] = info
	return &info, nil
}

func (gateway *MemoryTravelGateway) FindCityInfoByCityID(cityID int64) (*entity.CityInfo, error) {
	gateway.mu.RLock()
	defer gateway.mu.RUnlock()

	info, ok := gateway.infos[cityID]
	if !ok {
		return nil, ErrNotFound
	}
	return &info, nil
}
