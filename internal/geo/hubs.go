package geo

import "math"

// RegionHub is the dispatch staging point for a region, used to bucket
// geocoded job pins for the map layer.
type RegionHub struct {
	Region Region  `json:"region"`
	City   string  `json:"city"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

var regionHubs = []RegionHub{
	{Region: RegionValley, City: "Phoenix", Lat: 33.4484, Lon: -112.0740},
	{Region: RegionOuterCities, City: "Casa Grande", Lat: 32.8795, Lon: -111.7574},
	{Region: RegionTucson, City: "Tucson", Lat: 32.2226, Lon: -110.9747},
	{Region: RegionNorthern, City: "Flagstaff", Lat: 35.1983, Lon: -111.6513},
}

// NearestHub returns the region hub closest to a coordinate and the
// distance to it in kilometers.
func NearestHub(lat, lon float64) (RegionHub, float64) {
	best := regionHubs[0]
	bestDist := haversineKm(lat, lon, best.Lat, best.Lon)
	for _, hub := range regionHubs[1:] {
		if d := haversineKm(lat, lon, hub.Lat, hub.Lon); d < bestDist {
			best = hub
			bestDist = d
		}
	}
	return best, bestDist
}

const earthRadiusKm = 6371.0

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	lat1R := degreesToRadians(lat1)
	lat2R := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1R)*math.Cos(lat2R)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
