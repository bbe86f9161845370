package catalog

import (
	"maps"
	"strings"
)

// RegionAll selects every plant regardless of city.
const RegionAll = "all"

// cityAliases maps geocoder spellings to the city names used in catalogs.
var cityAliases = map[string]string{
	"bangalore":  "Bengaluru",
	"bengaluru":  "Bengaluru",
	"new delhi":  "Delhi",
	"delhi":      "Delhi",
	"mumbai":     "Mumbai",
	"bombay":     "Mumbai",
	"calcutta":   "Kolkata",
	"kolkata":    "Kolkata",
	"madras":     "Chennai",
	"chennai":    "Chennai",
	"pune":       "Pune",
	"hyderabad":  "Hyderabad",
	"ahmedabad":  "Ahmedabad",
	"jaipur":     "Jaipur",
	"lucknow":    "Lucknow",
	"indore":     "Indore",
	"patna":      "Patna",
	"bhopal":     "Bhopal",
	"kochi":      "Kochi",
	"cochin":     "Kochi",
	"surat":      "Surat",
	"nagpur":     "Nagpur",
	"goa":        "Goa",
	"ranchi":     "Ranchi",
	"guwahati":   "Guwahati",
	"coimbatore": "Coimbatore",
}

// DefaultCityAliases returns a copy of the built-in alias table.
func DefaultCityAliases() map[string]string {
	return maps.Clone(cityAliases)
}

// NormalizeCity maps a city spelling to its catalog name.
// Aliases in extra take precedence over the built-in table; keys match
// case-insensitively. Unknown cities are returned trimmed.
func NormalizeCity(city string, extra map[string]string) string {
	key := strings.ToLower(strings.TrimSpace(city))
	for alias, name := range extra {
		if strings.ToLower(strings.TrimSpace(alias)) == key {
			return name
		}
	}
	if name, ok := cityAliases[key]; ok {
		return name
	}
	return strings.TrimSpace(city)
}

// ByRegion selects the plants recommended for region.
//
// An empty region or "all" selects everything. Otherwise the region is
// normalized and matched against each plant's City: exact case-insensitive
// matches win, then substring matches. When nothing matches, every plant is
// returned and matched is false so callers can say so.
func ByRegion(plants []Plant, region string, aliases map[string]string) (selected []Plant, matched bool) {
	region = strings.TrimSpace(region)
	if region == "" || strings.EqualFold(region, RegionAll) {
		return clonePlants(plants), true
	}

	city := NormalizeCity(region, aliases)
	if exact := filterPlants(plants, func(p Plant) bool {
		return strings.EqualFold(strings.TrimSpace(p.City), city)
	}); len(exact) > 0 {
		return exact, true
	}

	needle := strings.ToLower(city)
	if partial := filterPlants(plants, func(p Plant) bool {
		return strings.Contains(strings.ToLower(p.City), needle)
	}); len(partial) > 0 {
		return partial, true
	}

	return clonePlants(plants), false
}
