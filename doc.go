// Package greenar resolves plant display names to the 3D model, AR
// companion model and preview image paths served by the GreenAR front end.
//
// # Quick Start
//
// Create a resolver over the built-in asset inventory and look up paths:
//
//	r, err := greenar.NewResolver()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r.ModelPath("Coconut Tree", "")      // /models/coconut_tree.glb
//	r.IOSModelPath("Coconut Tree", "", "") // /models/coconut_tree.usdz
//	r.ImagePath("Coconut Tree", "")      // /images/coconut_tree.jpg
//
// Resolution never fails. A name with no matching inventory file falls back
// to the first known model, and images fall back to a synthesized
// /images/<name>.jpg guess. A non-empty override is always returned as-is.
//
// # Name Matching
//
// Names are lowercased, trimmed and stripped of punctuation. Whitespace runs
// become underscores, then hyphens, and each candidate is tried with every
// extension of the asset class:
//
//	model: .glb
//	image: .jpg .jpeg .png .webp
//
// A final slug candidate covers names whose punctuation separates words.
//
// # Custom Inventories
//
// The embedded inventory lists the models shipped with the front end.
// Replace it with a YAML file or explicit lists:
//
//	r, err := greenar.NewResolver(
//	    greenar.WithInventoryFile("inventory.yaml"),
//	    greenar.WithModelsDir("https://cdn.example.com/models"),
//	)
//
// Inventory file format:
//
//	models:
//	  - neem_tree.glb
//	images:
//	  - neem_tree.jpg
//
// A Resolver is immutable and safe for concurrent use.
package greenar
