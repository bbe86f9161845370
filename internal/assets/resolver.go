package assets

import "strings"

// Resolver derives public asset paths from plant display names.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	inventory *Inventory
	modelsDir string
	imagesDir string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithModelsDir sets the public directory model paths are rooted at.
// An empty dir keeps the default.
func WithModelsDir(dir string) Option {
	return func(r *Resolver) {
		if dir != "" {
			r.modelsDir = strings.TrimRight(dir, "/")
		}
	}
}

// WithImagesDir sets the public directory image paths are rooted at.
// An empty dir keeps the default.
func WithImagesDir(dir string) Option {
	return func(r *Resolver) {
		if dir != "" {
			r.imagesDir = strings.TrimRight(dir, "/")
		}
	}
}

// NewResolver creates a Resolver over inv. A nil inventory is valid and
// makes every lookup fall back.
func NewResolver(inv *Inventory, opts ...Option) *Resolver {
	r := &Resolver{
		inventory: inv,
		modelsDir: DefaultModelsDir,
		imagesDir: DefaultImagesDir,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Inventory returns the inventory the resolver matches against.
func (r *Resolver) Inventory() *Inventory {
	return r.inventory
}

// Resolve returns the asset path for name. A non-empty override is returned
// unchanged. Otherwise the underscore, hyphen and slug candidates are
// matched against the inventory, and the class fallback applies when none
// is found. The result is never empty.
func (r *Resolver) Resolve(name, override string, class Class) string {
	if override != "" {
		return override
	}

	c := normalize(name)
	for _, stem := range []string{c.underscore, c.hyphen, slug(name)} {
		if file, ok := r.match(stem, class); ok {
			return r.path(class, file)
		}
	}
	return r.fallback(c.underscore, class)
}

// match probes stem with each extension of class.
func (r *Resolver) match(stem string, class Class) (string, bool) {
	if stem == "" {
		return "", false
	}
	for _, ext := range class.extensions() {
		if file := stem + ext; r.inventory.Contains(class, file) {
			return file, true
		}
	}
	return "", false
}

// fallback implements the no-match policy: first inventory model for
// models, a synthesized name for images (and for models when the inventory
// has none).
func (r *Resolver) fallback(stem string, class Class) string {
	if class == ClassModel {
		if first, ok := r.inventory.First(ClassModel); ok {
			return r.path(class, first)
		}
		if stem == "" {
			stem = "model"
		}
		return r.path(class, stem+ModelExtension)
	}

	if stem == "" {
		stem = "placeholder"
	}
	return r.path(class, stem+ImageExtension)
}

// Companion returns the USDZ companion of a resolved model path.
func (r *Resolver) Companion(primary string) string {
	return SwapExtension(primary, CompanionExtension)
}

// CompanionOrOverride returns override when set, else Companion(primary).
func (r *Resolver) CompanionOrOverride(primary, override string) string {
	if override != "" {
		return override
	}
	return r.Companion(primary)
}

// Available returns every inventory entry of class as a public path.
func (r *Resolver) Available(class Class) []string {
	entries := r.inventory.entries(class)
	paths := make([]string, 0, len(entries))
	for _, file := range entries {
		paths = append(paths, r.path(class, file))
	}
	return paths
}

// Dir returns the public directory for class.
func (r *Resolver) Dir(class Class) string {
	if class == ClassImage {
		return r.imagesDir
	}
	return r.modelsDir
}

func (r *Resolver) path(class Class, file string) string {
	return r.Dir(class) + "/" + file
}
