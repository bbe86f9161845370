package catalog

import "errors"

// Sentinel errors for catalog operations.
var (
	ErrCatalogNotFound   = errors.New("catalog file not found")
	ErrCatalogRead       = errors.New("failed to read catalog")
	ErrCatalogParse      = errors.New("failed to parse catalog")
	ErrMissingHeader     = errors.New("catalog has no header row")
	ErrMissingNameColumn = errors.New("catalog header has no Name column")
	ErrPlantNotFound     = errors.New("plant not found")
)
