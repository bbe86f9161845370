package greenar

import (
	"errors"

	"github.com/alnah/go-greenar/internal/assets"
)

// Option configures a Resolver.
type Option func(*resolverConfig)

type resolverConfig struct {
	models        []string
	images        []string
	inventorySet  bool
	inventoryFile string
	modelsDir     string
	imagesDir     string
}

// WithInventory replaces the embedded inventory with explicit filename
// lists, in priority order. The first model is the fallback model.
func WithInventory(models, images []string) Option {
	return func(c *resolverConfig) {
		c.models = models
		c.images = images
		c.inventorySet = true
		c.inventoryFile = ""
	}
}

// WithInventoryFile loads the inventory from a YAML file.
func WithInventoryFile(path string) Option {
	return func(c *resolverConfig) {
		c.inventoryFile = path
		c.inventorySet = false
	}
}

// WithModelsDir sets the public directory or URL prefix for models.
// Default: /models.
func WithModelsDir(dir string) Option {
	return func(c *resolverConfig) {
		c.modelsDir = dir
	}
}

// WithImagesDir sets the public directory or URL prefix for images.
// Default: /images.
func WithImagesDir(dir string) Option {
	return func(c *resolverConfig) {
		c.imagesDir = dir
	}
}

// Resolver maps plant names to asset paths.
type Resolver struct {
	inner *assets.Resolver
}

// NewResolver creates a resolver. Without options it uses the embedded
// inventory and the /models and /images directories.
func NewResolver(opts ...Option) (*Resolver, error) {
	var cfg resolverConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	inv, err := cfg.inventory()
	if err != nil {
		return nil, convertAssetError(err)
	}

	return &Resolver{
		inner: assets.NewResolver(inv,
			assets.WithModelsDir(cfg.modelsDir),
			assets.WithImagesDir(cfg.imagesDir),
		),
	}, nil
}

func (c *resolverConfig) inventory() (*assets.Inventory, error) {
	switch {
	case c.inventoryFile != "":
		return assets.LoadInventoryFile(c.inventoryFile)
	case c.inventorySet:
		return assets.NewInventory(c.models, c.images)
	default:
		return assets.DefaultInventory(), nil
	}
}

// ModelPath returns the model path for name, or override when non-empty.
func (r *Resolver) ModelPath(name, override string) string {
	return r.inner.Resolve(name, override, assets.ClassModel)
}

// IOSModelPath returns the companion (.usdz) model path. iosOverride wins
// when non-empty; otherwise the companion is derived from ModelPath.
func (r *Resolver) IOSModelPath(name, override, iosOverride string) string {
	return r.inner.CompanionOrOverride(r.ModelPath(name, override), iosOverride)
}

// ImagePath returns the preview image path for name, or override when
// non-empty.
func (r *Resolver) ImagePath(name, override string) string {
	return r.inner.Resolve(name, override, assets.ClassImage)
}

// CompanionPath swaps the extension of a model path for .usdz, keeping any
// query string or fragment.
func (r *Resolver) CompanionPath(modelPath string) string {
	return r.inner.Companion(modelPath)
}

// AvailableModels lists every known model path in inventory order.
func (r *Resolver) AvailableModels() []string {
	return r.inner.Available(assets.ClassModel)
}

// AvailableImages lists every known image path in inventory order.
func (r *Resolver) AvailableImages() []string {
	return r.inner.Available(assets.ClassImage)
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrInventoryNotFound):
		return wrapError(ErrInventoryNotFound, err)
	case errors.Is(err, assets.ErrInventoryParse),
		errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrInvalidInventory, err)
	default:
		return err
	}
}

// wrapError keeps the internal message and exposes the public sentinel.
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
