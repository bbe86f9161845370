package main

import (
	"errors"
	"os"

	"github.com/alnah/go-greenar"
	"github.com/alnah/go-greenar/internal/assets"
	"github.com/alnah/go-greenar/internal/catalog"
	"github.com/alnah/go-greenar/internal/config"
)

// Exit codes for greenar CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Success
	ExitGeneral = 1 // General/unexpected error, plant not found
	ExitUsage   = 2 // Invalid flags, config, inventory or catalog contents
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2). Checked first: a missing
	// config file is a usage problem even though it wraps "not found".
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoName) ||
		errors.Is(err, ErrNoCatalog) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrUnknownFormat) ||
		errors.Is(err, assets.ErrUnknownClass) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, greenar.ErrInvalidInventory) ||
		errors.Is(err, catalog.ErrCatalogParse) ||
		errors.Is(err, catalog.ErrMissingHeader) ||
		errors.Is(err, catalog.ErrMissingNameColumn) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, greenar.ErrInventoryNotFound) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, catalog.ErrCatalogNotFound) ||
		errors.Is(err, catalog.ErrCatalogRead) {
		return ExitIO
	}

	return ExitGeneral
}
