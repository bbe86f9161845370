package assets

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed inventory.yaml
var embeddedInventory []byte

var defaultInventory = sync.OnceValue(func() *Inventory {
	inv, err := ParseInventory(embeddedInventory)
	if err != nil {
		panic(fmt.Sprintf("assets: embedded inventory.yaml is invalid: %v", err))
	}
	return inv
})

// DefaultInventory returns the inventory compiled into the binary.
// The same *Inventory is returned on every call.
func DefaultInventory() *Inventory {
	return defaultInventory()
}
