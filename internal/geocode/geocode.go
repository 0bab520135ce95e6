package geocode

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("geocode not found")

// Result is a resolved map pin for a job address.
type Result struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
	Confidence  float64 `json:"confidence"`
}

type Geocoder interface {
	Geocode(ctx context.Context, query string) (Result, error)
}

// BuildQuery assembles the lookup string from the job's address parts.
// Empty parts are skipped.
func BuildQuery(address, city, state string) string {
	parts := []string{}
	for _, p := range []string{address, city, state} {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
