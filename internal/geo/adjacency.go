package geo

import "sort"

// The adjacency tables below are authored as directed edges for
// readability; buildAdjacency merges them and forces symmetry, so if A
// lists B then B also lists A even when not authored that way.

var valleyAdjacency = map[string][]string{
	"Phoenix":         {"Scottsdale", "Tempe", "Glendale", "Paradise Valley", "Laveen", "Ahwatukee", "Tolleson", "Guadalupe"},
	"Scottsdale":      {"Paradise Valley", "Fountain Hills", "Tempe", "Cave Creek", "Carefree", "Rio Verde"},
	"Tempe":           {"Mesa", "Chandler", "Guadalupe"},
	"Mesa":            {"Gilbert", "Apache Junction", "Queen Creek"},
	"Chandler":        {"Gilbert", "Sun Lakes", "Ahwatukee"},
	"Gilbert":         {"Queen Creek", "San Tan Valley"},
	"Glendale":        {"Peoria", "Tolleson", "Youngtown", "El Mirage"},
	"Peoria":          {"Surprise", "Sun City", "Sun City West", "El Mirage", "Youngtown"},
	"Surprise":        {"Sun City West", "El Mirage", "Waddell", "Wittmann"},
	"Goodyear":        {"Avondale", "Buckeye", "Litchfield Park", "Tolleson"},
	"Avondale":        {"Tolleson", "Litchfield Park"},
	"Buckeye":         {"Tonopah", "Waddell"},
	"Queen Creek":     {"San Tan Valley", "Gold Canyon"},
	"Apache Junction": {"Gold Canyon"},
	"Cave Creek":      {"Carefree", "Anthem", "New River"},
	"Anthem":          {"New River"},
	"Wickenburg":      {"Morristown", "Wittmann"},
}

var outerAdjacency = map[string][]string{
	"Maricopa":    {"Casa Grande", "Stanfield", "Sacaton"},
	"Casa Grande": {"Coolidge", "Eloy", "Arizona City", "Stanfield"},
	"Coolidge":    {"Florence", "Sacaton"},
	"Eloy":        {"Arizona City", "Picacho", "Red Rock"},
	"Florence":    {"San Tan Valley"},
}

var tucsonAdjacency = map[string][]string{
	"Tucson":       {"Oro Valley", "Marana", "Sahuarita", "Vail", "Catalina", "Corona de Tucson"},
	"Oro Valley":   {"Marana", "Catalina", "Saddlebrooke"},
	"Marana":       {"Red Rock", "Picacho"},
	"Sahuarita":    {"Green Valley", "Corona de Tucson"},
	"Green Valley": {"Vail"},
	"Catalina":     {"Saddlebrooke"},
}

var northernAdjacency = map[string][]string{
	"Flagstaff":       {"Williams", "Sedona"},
	"Prescott":        {"Prescott Valley", "Chino Valley", "Dewey"},
	"Prescott Valley": {"Dewey", "Chino Valley"},
	"Sedona":          {"Cottonwood", "Cornville", "Camp Verde", "Clarkdale"},
	"Cottonwood":      {"Clarkdale", "Cornville", "Camp Verde"},
	"Camp Verde":      {"Payson"},
}

var adjacency map[string]map[string]struct{}

func buildAdjacency() {
	adjacency = map[string]map[string]struct{}{}
	for _, table := range []map[string][]string{valleyAdjacency, outerAdjacency, tucsonAdjacency, northernAdjacency} {
		for city, neighbors := range table {
			for _, n := range neighbors {
				addEdge(city, n)
				addEdge(n, city)
			}
		}
	}
}

func addEdge(from, to string) {
	key := normalizeCityKey(from)
	if adjacency[key] == nil {
		adjacency[key] = map[string]struct{}{}
	}
	adjacency[key][normalizeCityKey(to)] = struct{}{}
}

// Neighbors returns the adjacent cities of a city, sorted, or nil when
// the city has no authored neighbors.
func Neighbors(city string) []string {
	set, ok := adjacency[normalizeCityKey(city)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// AreAdjacent reports whether two cities share an edge.
func AreAdjacent(a, b string) bool {
	set, ok := adjacency[normalizeCityKey(a)]
	if !ok {
		return false
	}
	_, ok = set[normalizeCityKey(b)]
	return ok
}
