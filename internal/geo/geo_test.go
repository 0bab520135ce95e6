package geo

import "testing"

func TestRegionOf(t *testing.T) {
	cases := []struct {
		city string
		want Region
	}{
		{"Phoenix", RegionValley},
		{"PHOENIX", RegionValley},
		{"  scottsdale ", RegionValley},
		{"Tucson", RegionTucson},
		{"Oro Valley", RegionTucson},
		{"Flagstaff", RegionNorthern},
		{"Prescott Valley", RegionNorthern},
		{"Casa Grande", RegionOuterCities},
		{"Maricopa", RegionOuterCities},
		{"Somewhere Unknown", RegionValley},
		{"", RegionValley},
	}
	for _, c := range cases {
		if got := RegionOf(c.city); got != c.want {
			t.Fatalf("RegionOf(%q) = %s, want %s", c.city, got, c.want)
		}
	}
}

func TestKnownCitiesSortedLongestFirst(t *testing.T) {
	cities := KnownCities()
	if len(cities) == 0 {
		t.Fatal("empty city catalog")
	}
	for i := 1; i < len(cities); i++ {
		if len(cities[i]) > len(cities[i-1]) {
			t.Fatalf("catalog not sorted longest-first at %d: %q after %q", i, cities[i], cities[i-1])
		}
	}
	// "Sun City West" must come before "Sun City" so prefix scans never
	// truncate the longer name.
	west, plain := -1, -1
	for i, c := range cities {
		switch c {
		case "Sun City West":
			west = i
		case "Sun City":
			plain = i
		}
	}
	if west < 0 || plain < 0 || west > plain {
		t.Fatalf("Sun City West (%d) must precede Sun City (%d)", west, plain)
	}
}

func TestIsKnownCity(t *testing.T) {
	if !IsKnownCity("phoenix") {
		t.Fatal("phoenix should be known")
	}
	if !IsKnownCity("CORONA DE TUCSON") {
		t.Fatal("corona de tucson should be known")
	}
	if IsKnownCity("Las Vegas") {
		t.Fatal("las vegas should not be known")
	}
}

func TestAdjacencyIsSymmetric(t *testing.T) {
	for city := range adjacency {
		for _, n := range Neighbors(city) {
			if !AreAdjacent(n, city) {
				t.Fatalf("edge %s -> %s has no reverse", city, n)
			}
		}
	}
}

func TestNeighbors(t *testing.T) {
	if !AreAdjacent("Phoenix", "Scottsdale") {
		t.Fatal("phoenix and scottsdale should be adjacent")
	}
	// Authored only on the Florence side; symmetry makes it bidirectional.
	if !AreAdjacent("San Tan Valley", "Florence") {
		t.Fatal("san tan valley and florence should be adjacent")
	}
	if AreAdjacent("Phoenix", "Tucson") {
		t.Fatal("phoenix and tucson should not be adjacent")
	}
	if Neighbors("Nowhere") != nil {
		t.Fatal("unknown city should have nil neighbors")
	}
}

func TestNearestHub(t *testing.T) {
	// Downtown Tucson coordinates.
	hub, dist := NearestHub(32.2226, -110.9747)
	if hub.Region != RegionTucson {
		t.Fatalf("expected Tucson hub, got %+v", hub)
	}
	if dist < 0 || dist > 50 {
		t.Fatalf("unexpected hub distance: %f", dist)
	}
}
