package catalog

import (
	"fmt"
	"strings"
)

// Criteria narrows a plant list. Empty fields match everything.
type Criteria struct {
	Search   string // Name or scientific name substring
	Sunlight string // Sunlight substring, e.g. "full"
	Water    string // Water need substring, e.g. "low"
	Type     string // Exact type, e.g. "Tree"
}

// Filter returns the plants matching every non-empty criterion.
// All comparisons ignore case.
func Filter(plants []Plant, c Criteria) []Plant {
	search := strings.ToLower(strings.TrimSpace(c.Search))
	sunlight := strings.ToLower(strings.TrimSpace(c.Sunlight))
	water := strings.ToLower(strings.TrimSpace(c.Water))
	kind := strings.TrimSpace(c.Type)

	return filterPlants(plants, func(p Plant) bool {
		if search != "" &&
			!containsFold(p.Name, search) &&
			!containsFold(p.ScientificName, search) {
			return false
		}
		if sunlight != "" && !containsFold(p.Sunlight, sunlight) {
			return false
		}
		if water != "" && !containsFold(p.WaterNeed, water) {
			return false
		}
		if kind != "" && !strings.EqualFold(strings.TrimSpace(p.Type), kind) {
			return false
		}
		return true
	})
}

// FindByName returns the first plant whose name contains query,
// ignoring case.
func FindByName(plants []Plant, query string) (Plant, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Plant{}, fmt.Errorf("%w: empty name", ErrPlantNotFound)
	}
	for _, p := range plants {
		if containsFold(p.Name, q) {
			return p, nil
		}
	}
	return Plant{}, fmt.Errorf("%w: %q", ErrPlantNotFound, query)
}

// containsFold reports whether s contains the already-lowercased needle.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}

func filterPlants(plants []Plant, keep func(Plant) bool) []Plant {
	var out []Plant
	for _, p := range plants {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func clonePlants(plants []Plant) []Plant {
	if plants == nil {
		return nil
	}
	out := make([]Plant, len(plants))
	copy(out, plants)
	return out
}
