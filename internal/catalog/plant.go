// Package catalog loads plant records from CSV, attaches resolved asset
// URLs and filters records by region and attributes.
package catalog

import "strings"

// Column names as they appear in the catalog CSV header.
const (
	ColumnName           = "Name"
	ColumnScientificName = "Scientific_Name"
	ColumnCity           = "City"
	ColumnType           = "Type"
	ColumnSunlight       = "sunlight"
	ColumnWaterNeed      = "water_need"
	ColumnPrice          = "price"
	ColumnModelURL       = "model_url"
	ColumnIOSModelURL    = "ios_model_url"
	ColumnImageURL       = "image_url"
)

// Plant is one catalog record.
// Columns the loader does not recognize are kept in Extra.
type Plant struct {
	Name           string            `yaml:"Name"`
	ScientificName string            `yaml:"Scientific_Name,omitempty"`
	City           string            `yaml:"City,omitempty"`
	Type           string            `yaml:"Type,omitempty"`
	Sunlight       string            `yaml:"sunlight,omitempty"`
	WaterNeed      string            `yaml:"water_need,omitempty"`
	Price          string            `yaml:"price,omitempty"`
	ModelURL       string            `yaml:"model_url,omitempty"`
	IOSModelURL    string            `yaml:"ios_model_url,omitempty"`
	ImageURL       string            `yaml:"image_url,omitempty"`
	Extra          map[string]string `yaml:"extra,omitempty"`
}

// set assigns a cell to the field named by column.
// Returns false for columns that have no dedicated field.
func (p *Plant) set(column, value string) bool {
	switch column {
	case ColumnName:
		p.Name = value
	case ColumnScientificName:
		p.ScientificName = value
	case ColumnCity:
		p.City = value
	case ColumnType:
		p.Type = value
	case ColumnSunlight:
		p.Sunlight = value
	case ColumnWaterNeed:
		p.WaterNeed = value
	case ColumnPrice:
		p.Price = value
	case ColumnModelURL:
		p.ModelURL = value
	case ColumnIOSModelURL:
		p.IOSModelURL = value
	case ColumnImageURL:
		p.ImageURL = value
	default:
		return false
	}
	return true
}

// knownColumns maps a lowercased header cell to its canonical column name.
var knownColumns = func() map[string]string {
	cols := []string{
		ColumnName, ColumnScientificName, ColumnCity, ColumnType,
		ColumnSunlight, ColumnWaterNeed, ColumnPrice,
		ColumnModelURL, ColumnIOSModelURL, ColumnImageURL,
	}
	m := make(map[string]string, len(cols))
	for _, c := range cols {
		m[strings.ToLower(c)] = c
	}
	return m
}()
