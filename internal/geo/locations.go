package geo

import (
	"strings"
)

// knownLocations - статическая таблица координат известных мест.
// Транзакции с неизвестным местом освобождаются от географической
// проверки (fail open).
var knownLocations = map[string]Coordinates{
	"chennai":   {Latitude: 13.0827, Longitude: 80.2707},
	"delhi":     {Latitude: 28.7041, Longitude: 77.1025},
	"mumbai":    {Latitude: 19.0760, Longitude: 72.8777},
	"bangalore": {Latitude: 12.9716, Longitude: 77.5946},
	"kolkata":   {Latitude: 22.5726, Longitude: 88.3639},
	"hyderabad": {Latitude: 17.3850, Longitude: 78.4867},
	"pune":      {Latitude: 18.5204, Longitude: 73.8567},
	"ahmedabad": {Latitude: 23.0225, Longitude: 72.5714},
	"jaipur":    {Latitude: 26.9124, Longitude: 75.7873},
	"lucknow":   {Latitude: 26.8467, Longitude: 80.9462},
	"london":    {Latitude: 51.5074, Longitude: -0.1278},
	"new york":  {Latitude: 40.7128, Longitude: -74.0060},
	"singapore": {Latitude: 1.3521, Longitude: 103.8198},
	"dubai":     {Latitude: 25.2048, Longitude: 55.2708},
}

// Resolve возвращает координаты по названию места.
// Поиск нечувствителен к регистру.
func Resolve(name string) (Coordinates, bool) {
	coords, ok := knownLocations[strings.ToLower(strings.TrimSpace(name))]
	return coords, ok
}

// KnownLocations возвращает копию таблицы известных мест
func KnownLocations() map[string]Coordinates {
	result := make(map[string]Coordinates, len(knownLocations))
	for name, coords := range knownLocations {
		result[name] = coords
	}
	return result
}
