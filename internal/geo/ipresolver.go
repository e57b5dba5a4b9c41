package geo

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// IPResolver резолвит координаты по IP-адресу клиента через базу
// MaxMind GeoLite2-City. Используется как запасной источник координат,
// когда название места транзакции неизвестно.
type IPResolver struct {
	cityDB *geoip2.Reader
}

// NewIPResolver открывает mmdb базу по указанному пути
func NewIPResolver(cityDBPath string) (*IPResolver, error) {
	cityDB, err := geoip2.Open(cityDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open GeoIP city database: %w", err)
	}
	return &IPResolver{cityDB: cityDB}, nil
}

// ResolveIP возвращает координаты для IP-адреса.
// Нераспознанный адрес или нулевые координаты не считаются ошибкой (fail open).
func (r *IPResolver) ResolveIP(ip string) (Coordinates, bool) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return Coordinates{}, false
	}

	city, err := r.cityDB.City(parsed)
	if err != nil {
		return Coordinates{}, false
	}
	if city.Location.Latitude == 0 && city.Location.Longitude == 0 {
		return Coordinates{}, false
	}

	return Coordinates{
		Latitude:  city.Location.Latitude,
		Longitude: city.Location.Longitude,
	}, true
}

// Close закрывает mmdb базу
func (r *IPResolver) Close() error {
	return r.cityDB.Close()
}
