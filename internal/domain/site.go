package domain

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// Site is a broadcast site eligible for field inspection. Sites are
// produced by the eligibility filter (repository layer) and are treated
// as immutable by the planning core.
type Site struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	FrequencyMHz float64 `json:"frequency_mhz" db:"frequency_mhz"`
	Province     string  `json:"province" db:"province"`
	District     string  `json:"district" db:"district"`
	Lat          float64 `json:"lat" db:"lat"`
	Lon          float64 `json:"lon" db:"lon"`
	Eligible     bool    `json:"eligible" db:"eligible"`
}

// Location returns the site coordinates as a Point.
func (s Site) Location() Point {
	return Point{Lat: s.Lat, Lon: s.Lon}
}
