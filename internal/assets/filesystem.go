package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alnah/go-greenar/internal/yamlutil"
)

// inventoryFile is the on-disk inventory layout.
type inventoryFile struct {
	Models []string `yaml:"models"`
	Images []string `yaml:"images"`
}

// ParseInventory decodes an inventory document:
//
//	models:
//	  - neem_tree.glb
//	images:
//	  - neem_tree.jpg
//
// Unknown keys are rejected. Returns ErrInventoryParse for malformed input
// and ErrInvalidAssetName for entries that are not bare filenames.
func ParseInventory(data []byte) (*Inventory, error) {
	var doc inventoryFile
	if err := yamlutil.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInventoryParse, err)
	}
	return NewInventory(doc.Models, doc.Images)
}

// LoadInventoryFile reads and parses an inventory file from disk.
// Returns ErrInventoryNotFound if the file does not exist and ErrAssetRead
// for other I/O failures.
func LoadInventoryFile(path string) (*Inventory, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- inventory path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInventoryNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	inv, err := ParseInventory(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inv, nil
}
