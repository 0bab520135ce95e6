// Package geo holds the static city catalog, region buckets, and the
// city adjacency graph. Everything here is built once at init and is
// read-only afterward, so it is safe to share without locking.
package geo

import (
	"sort"
	"strings"
)

type Region string

const (
	RegionValley      Region = "Valley"
	RegionOuterCities Region = "OuterCities"
	RegionTucson      Region = "Tucson"
	RegionNorthern    Region = "Northern"
)

// knownCities is the full catalog used for city detection in parsed
// lines and for trailing-city stripping in address normalization.
var knownCities = []string{
	"Phoenix", "Scottsdale", "Tempe", "Mesa", "Chandler", "Gilbert",
	"Glendale", "Peoria", "Surprise", "Goodyear", "Avondale", "Buckeye",
	"Queen Creek", "San Tan Valley", "Sun City", "Sun City West",
	"Sun Lakes", "El Mirage", "Tolleson", "Laveen", "Cave Creek",
	"Fountain Hills", "Paradise Valley", "Anthem", "New River",
	"Carefree", "Rio Verde", "Litchfield Park", "Waddell", "Wittmann",
	"Youngtown", "Guadalupe", "Ahwatukee", "Apache Junction",
	"Gold Canyon", "Wickenburg", "Morristown", "Tonopah",
	"Maricopa", "Casa Grande", "Coolidge", "Florence", "Eloy",
	"Arizona City", "Stanfield", "Sacaton", "Red Rock", "Picacho",
	"Tucson", "Oro Valley", "Marana", "Sahuarita", "Vail",
	"Green Valley", "Catalina", "Saddlebrooke", "Corona de Tucson",
	"Flagstaff", "Prescott", "Prescott Valley", "Chino Valley",
	"Dewey", "Sedona", "Cottonwood", "Camp Verde", "Payson",
	"Show Low", "Williams", "Cornville", "Clarkdale",
}

// knownCitiesByLength is the catalog sorted longest-first so that a
// prefix scan matches "Sun City West" before "Sun City".
var knownCitiesByLength []string

var tucsonCities = toSet(
	"Tucson", "Oro Valley", "Marana", "Sahuarita", "Vail",
	"Green Valley", "Catalina", "Saddlebrooke", "Corona de Tucson",
	"Red Rock", "Picacho",
)

var northernCities = toSet(
	"Flagstaff", "Prescott", "Prescott Valley", "Chino Valley", "Dewey",
	"Sedona", "Cottonwood", "Camp Verde", "Payson", "Show Low",
	"Williams", "Cornville", "Clarkdale",
)

var outerRingCities = toSet(
	"Maricopa", "Casa Grande", "Coolidge", "Florence", "Eloy",
	"Arizona City", "Stanfield", "Sacaton",
)

var valleyCities = toSet(
	"Phoenix", "Scottsdale", "Tempe", "Mesa", "Chandler", "Gilbert",
	"Glendale", "Peoria", "Surprise", "Goodyear", "Avondale", "Buckeye",
	"Queen Creek", "San Tan Valley", "Sun City", "Sun City West",
	"Sun Lakes", "El Mirage", "Tolleson", "Laveen", "Cave Creek",
	"Fountain Hills", "Paradise Valley", "Anthem", "New River",
	"Carefree", "Rio Verde", "Litchfield Park", "Waddell", "Wittmann",
	"Youngtown", "Guadalupe", "Ahwatukee", "Apache Junction",
	"Gold Canyon", "Wickenburg", "Morristown", "Tonopah",
)

func init() {
	knownCitiesByLength = make([]string, len(knownCities))
	copy(knownCitiesByLength, knownCities)
	sort.SliceStable(knownCitiesByLength, func(i, j int) bool {
		return len(knownCitiesByLength[i]) > len(knownCitiesByLength[j])
	})
	buildAdjacency()
}

// KnownCities returns the catalog sorted longest-first.
func KnownCities() []string {
	return knownCitiesByLength
}

// IsKnownCity reports whether name is in the catalog.
func IsKnownCity(name string) bool {
	key := normalizeCityKey(name)
	for _, c := range knownCities {
		if normalizeCityKey(c) == key {
			return true
		}
	}
	return false
}

// RegionOf classifies a city into a coarse region bucket. Unknown or
// ambiguous cities fall back to Valley; that is the documented default,
// not an error.
func RegionOf(city string) Region {
	key := normalizeCityKey(city)
	if _, ok := tucsonCities[key]; ok {
		return RegionTucson
	}
	if _, ok := northernCities[key]; ok {
		return RegionNorthern
	}
	if _, ok := outerRingCities[key]; ok {
		return RegionOuterCities
	}
	if _, ok := valleyCities[key]; ok {
		return RegionValley
	}
	return RegionValley
}

func normalizeCityKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func toSet(names ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[normalizeCityKey(n)] = struct{}{}
	}
	return out
}
