package assets

// Inventory is the fixed set of asset filenames known to exist in the public
// asset directories. It is immutable after construction. A nil *Inventory
// behaves as an empty inventory.
type Inventory struct {
	models []string
	images []string
	index  map[Class]map[string]struct{}
}

// NewInventory builds an Inventory from model and image filenames.
// Entries must be bare filenames (see ValidateAssetName). Duplicates are
// dropped, keeping the first occurrence so declaration order is preserved.
func NewInventory(models, images []string) (*Inventory, error) {
	inv := &Inventory{index: make(map[Class]map[string]struct{}, 2)}

	var err error
	if inv.models, err = inv.add(ClassModel, models); err != nil {
		return nil, err
	}
	if inv.images, err = inv.add(ClassImage, images); err != nil {
		return nil, err
	}
	return inv, nil
}

func (inv *Inventory) add(class Class, names []string) ([]string, error) {
	seen := make(map[string]struct{}, len(names))
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if err := ValidateAssetName(name); err != nil {
			return nil, err
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		kept = append(kept, name)
	}
	inv.index[class] = seen
	return kept, nil
}

// Contains reports whether filename is a known asset of the given class.
func (inv *Inventory) Contains(class Class, filename string) bool {
	if inv == nil {
		return false
	}
	_, ok := inv.index[class][filename]
	return ok
}

// Entries returns a copy of the filenames for class, in declaration order.
func (inv *Inventory) Entries(class Class) []string {
	return append([]string(nil), inv.entries(class)...)
}

// First returns the first declared filename for class.
func (inv *Inventory) First(class Class) (string, bool) {
	entries := inv.entries(class)
	if len(entries) == 0 {
		return "", false
	}
	return entries[0], true
}

// Len returns the number of filenames known for class.
func (inv *Inventory) Len(class Class) int {
	return len(inv.entries(class))
}

func (inv *Inventory) entries(class Class) []string {
	if inv == nil {
		return nil
	}
	switch class {
	case ClassModel:
		return inv.models
	case ClassImage:
		return inv.images
	default:
		return nil
	}
}
