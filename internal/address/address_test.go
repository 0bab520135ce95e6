package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got, ok := Normalize("123 N Central Ave, Phoenix, AZ 85004")
	require.True(t, ok)
	require.Equal(t, "123 north central avenue", got)

	got, ok = Normalize("456 W. Elm St, Mesa AZ")
	require.True(t, ok)
	require.Equal(t, "456 west elm street", got)

	_, ok = Normalize("Central Ave, Phoenix")
	require.False(t, ok, "addresses without a street number are not canonicalized")
}

func TestLooseForm(t *testing.T) {
	require.Equal(t, "123 central", LooseForm("123 north central avenue"))
	require.Equal(t, "456 elm", LooseForm("456 elm street"))
	// Too short to strip further.
	require.Equal(t, "789 main", LooseForm("789 main"))
}

func TestVariations(t *testing.T) {
	got := Variations("123 N Central Ave")
	require.Contains(t, got, "123 north central avenue")
	require.Contains(t, got, "123 n central ave")
	require.Contains(t, got, "123 north central ave")
	require.Contains(t, got, "123 n central avenue")
	require.Len(t, got, 4)

	// No street number: only the bare cleaned string.
	got = Variations("Main Street")
	require.Equal(t, []string{"main street"}, got)
}

func TestSimilarity(t *testing.T) {
	require.Equal(t, 1.0, Similarity("123 main", "123 main"))
	require.Equal(t, 1.0, Similarity("", ""))
	require.InDelta(t, 2.0/3.0, Similarity("abc", "abd"), 1e-9)
	require.Equal(t, Similarity("abcdef", "abcxef"), Similarity("abcxef", "abcdef"))
	require.Less(t, Similarity("123 main", "123 mian"), 1.0)
}

func TestFindBestMatchExactVariation(t *testing.T) {
	index := map[string]string{"123 n central ave": "JOB-1"}
	res := FindBestMatch("123 North Central Avenue, Phoenix, AZ 85004", index, DefaultThreshold)
	require.True(t, res.Found)
	require.Equal(t, 1.0, res.Score)
	require.Equal(t, "JOB-1", res.Value)
}

func TestFindBestMatchFuzzy(t *testing.T) {
	index := map[string]string{"123 north central avenue": "JOB-1"}
	res := FindBestMatch("123 North Centrel Avenue", index, DefaultThreshold)
	require.True(t, res.Found)
	require.Greater(t, res.Score, DefaultThreshold)
	require.Less(t, res.Score, 1.0)
	require.Equal(t, "JOB-1", res.Value)
}

func TestFindBestMatchStreetNumberGate(t *testing.T) {
	index := map[string]string{"999 north central avenue": "JOB-1"}
	res := FindBestMatch("123 North Central Avenue", index, DefaultThreshold)
	require.False(t, res.Found, "candidates with a different street number are never scanned")

	res = FindBestMatch("Central Avenue", index, DefaultThreshold)
	require.False(t, res.Found, "targets without a street number never fuzzy-match")
}

func TestFindBestMatchBelowThreshold(t *testing.T) {
	index := map[string]string{"123 quail run drive": "JOB-1"}
	res := FindBestMatch("123 Cactus Wren Lane", index, DefaultThreshold)
	require.False(t, res.Found)
}

func TestBuildVariationIndex(t *testing.T) {
	out := BuildVariationIndex(map[string]string{"123 N Central Ave": "JOB-1"})
	require.Equal(t, "JOB-1", out["123 north central avenue"])
	require.Equal(t, "JOB-1", out["123 n central ave"])
	require.Len(t, out, 4)
}
