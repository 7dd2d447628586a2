package geo

import (
	"net"

	"github.com/oschwald/geoip2-golang"
)

const UnknownCountry = "Unknown"

// Locator resolves a requester IP to an ISO country code using a MaxMind
// GeoLite2 database.
type Locator struct {
	reader *geoip2.Reader
}

func Open(path string) (*Locator, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	return &Locator{reader: reader}, nil
}

func (l *Locator) Country(ipStr string) string {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return UnknownCountry
	}
	record, err := l.reader.Country(ip)
	if err != nil || record.Country.IsoCode == "" {
		return UnknownCountry
	}
	return record.Country.IsoCode
}

func (l *Locator) Close() error {
	return l.reader.Close()
}
