package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var regionPlants = []Plant{
	{Name: "Neem Tree", City: "Delhi"},
	{Name: "Coconut Tree", City: "Kochi"},
	{Name: "Pothos Plant", City: "Mumbai"},
	{Name: "Teak Tree", City: "New Delhi NCR"},
	{Name: "Karanj Tree", City: "Bengaluru"},
}

func names(plants []Plant) []string {
	out := make([]string, len(plants))
	for i, p := range plants {
		out[i] = p.Name
	}
	return out
}

// ---------------------------------------------------------------------------
// TestNormalizeCity - Alias table lookups
// ---------------------------------------------------------------------------

func TestNormalizeCity(t *testing.T) {
	t.Parallel()

	extra := map[string]string{"Poona": "Pune", "bombay": "Greater Mumbai"}

	tests := []struct {
		input string
		want  string
	}{
		{"bangalore", "Bengaluru"},
		{"  Bombay ", "Greater Mumbai"},
		{"CALCUTTA", "Kolkata"},
		{"cochin", "Kochi"},
		{"new delhi", "Delhi"},
		{"poona", "Pune"},
		{" Shimla ", "Shimla"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeCity(tt.input, extra); got != tt.want {
				t.Errorf("NormalizeCity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultCityAliases_ReturnsCopy(t *testing.T) {
	t.Parallel()

	aliases := DefaultCityAliases()
	aliases["bangalore"] = "changed"

	if got := NormalizeCity("bangalore", nil); got != "Bengaluru" {
		t.Errorf("NormalizeCity() = %q after mutating copy, want Bengaluru", got)
	}
}

// ---------------------------------------------------------------------------
// TestByRegion - Exact, substring and fallback matching
// ---------------------------------------------------------------------------

func TestByRegion(t *testing.T) {
	t.Parallel()

	all := names(regionPlants)

	tests := []struct {
		name        string
		region      string
		want        []string
		wantMatched bool
	}{
		{"empty region selects all", "", all, true},
		{"all selects all", "All", all, true},
		{"exact match wins over substring", "delhi", []string{"Neem Tree"}, true},
		{"alias resolves before matching", "Bangalore", []string{"Karanj Tree"}, true},
		{"substring match", "NCR", []string{"Teak Tree"}, true},
		{"no match falls back to all", "Shimla", all, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, matched := ByRegion(regionPlants, tt.region, nil)
			if diff := cmp.Diff(tt.want, names(got)); diff != "" {
				t.Errorf("ByRegion(%q) mismatch (-want +got):\n%s", tt.region, diff)
			}
			if matched != tt.wantMatched {
				t.Errorf("ByRegion(%q) matched = %v, want %v", tt.region, matched, tt.wantMatched)
			}
		})
	}
}

func TestByRegion_ReturnsCopy(t *testing.T) {
	t.Parallel()

	in := []Plant{{Name: "Neem Tree", City: "Delhi"}}
	got, _ := ByRegion(in, "all", nil)
	got[0].Name = "changed"

	if in[0].Name != "Neem Tree" {
		t.Errorf("ByRegion() shares backing array with input")
	}
}
