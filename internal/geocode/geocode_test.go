package geocode

import "testing"

func TestBuildQuery(t *testing.T) {
	if got := BuildQuery("123 N Central Ave", "Phoenix", "AZ"); got != "123 N Central Ave, Phoenix, AZ" {
		t.Fatalf("unexpected query: %q", got)
	}
	if got := BuildQuery("123 N Central Ave", "", "AZ"); got != "123 N Central Ave, AZ" {
		t.Fatalf("empty parts should be skipped: %q", got)
	}
	if got := BuildQuery("", "", ""); got != "" {
		t.Fatalf("expected empty query, got %q", got)
	}
}
