// Package assets maps plant display names to public asset paths.
//
// # Resolution
//
// A Resolver turns a display name such as "Neem Tree" into a path under a
// public asset directory by guessing the filename and checking it against a
// fixed Inventory:
//
//	Resolve(name, override, class)
//	    │
//	    ├── override set          → override, unchanged
//	    ├── underscore candidate  → /models/neem_tree.glb
//	    ├── hyphen candidate      → /models/neem-tree.glb
//	    ├── slug candidate        → /models/neem_tree.glb (punctuation-heavy names)
//	    └── fallback              → never empty, see below
//
// Candidates are tried in that order, and for each candidate the class
// extensions in declaration order (images: .jpg, .jpeg, .png, .webp).
//
// # Fallback
//
// Resolution never fails. When nothing in the inventory matches:
//
//   - models fall back to the first inventory model, or to a synthesized
//     "<dir>/<underscore-name>.glb" when the model inventory is empty;
//   - images fall back to a synthesized "<dir>/<underscore-name>.jpg".
//
// Whether the file exists is the consumer's problem: the model viewer and
// image tags carry their own error handlers.
//
// # Companion formats
//
// iOS Quick Look needs USDZ next to the GLB. Companion derives it by swapping
// the extension on the resolved primary path; it never consults the
// inventory.
//
// # Inventories
//
// DefaultInventory is parsed from an embedded inventory.yaml.
// LoadInventoryFile reads the same format from disk. An Inventory is
// immutable once built and safe to share.
package assets
