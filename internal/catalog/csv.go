package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// MaxRecords caps the number of rows read from one catalog.
const MaxRecords = 100_000

// utf8BOM is stripped from the first header cell (spreadsheet exports).
const utf8BOM = "\uFEFF"

// LoadFile reads a CSV catalog from disk.
func LoadFile(path string) ([]Plant, error) {
	f, err := os.Open(path) // #nosec G304 -- catalog path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrCatalogRead, err)
	}
	defer func() { _ = f.Close() }()

	plants, err := LoadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plants, nil
}

// LoadCSV parses a catalog with a header row.
// Header cells match known columns case-insensitively; unknown columns land
// in Plant.Extra. Cells are trimmed. Short rows leave trailing fields empty,
// rows longer than the header are an error.
func LoadCSV(r io.Reader) ([]Plant, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogParse, err)
	}
	columns := canonicalHeader(header)
	if !slices.Contains(columns, ColumnName) {
		return nil, fmt.Errorf("%w: got %s", ErrMissingNameColumn, strings.Join(columns, ", "))
	}

	var plants []Plant
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCatalogParse, err)
		}
		if len(record) > len(columns) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: %d fields, header has %d", ErrCatalogParse, line, len(record), len(columns))
		}
		if len(plants) == MaxRecords {
			return nil, fmt.Errorf("%w: more than %d records", ErrCatalogParse, MaxRecords)
		}
		plants = append(plants, parseRecord(columns, record))
	}
	return plants, nil
}

func parseRecord(columns, record []string) Plant {
	var p Plant
	for i, cell := range record {
		value := strings.TrimSpace(cell)
		if p.set(columns[i], value) || value == "" {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]string)
		}
		p.Extra[columns[i]] = value
	}
	return p
}

// canonicalHeader maps known header cells to their canonical spelling and
// keeps unknown ones trimmed as-is.
func canonicalHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, cell := range header {
		cell = strings.TrimSpace(cell)
		if i == 0 {
			cell = strings.TrimPrefix(cell, utf8BOM)
		}
		if canonical, ok := knownColumns[strings.ToLower(cell)]; ok {
			cell = canonical
		}
		columns[i] = cell
	}
	return columns
}
