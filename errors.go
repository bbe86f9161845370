package greenar

import "errors"

// Sentinel errors for resolver construction.
var (
	ErrInvalidInventory  = errors.New("invalid asset inventory")
	ErrInventoryNotFound = errors.New("inventory file not found")
)
