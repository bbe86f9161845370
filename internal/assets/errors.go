package assets

import "errors"

// Sentinel errors for inventory and class handling. Resolution itself has
// no error path.
var (
	// ErrInvalidAssetName indicates an inventory entry is not a bare filename.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInventoryNotFound indicates the inventory file does not exist.
	ErrInventoryNotFound = errors.New("inventory file not found")

	// ErrInventoryParse indicates the inventory file is not valid YAML or
	// has unknown keys.
	ErrInventoryParse = errors.New("failed to parse inventory")

	// ErrAssetRead indicates an I/O error while reading an inventory file.
	ErrAssetRead = errors.New("failed to read inventory")

	// ErrUnknownClass indicates an asset class name other than model or image.
	ErrUnknownClass = errors.New("unknown asset class")
)
