package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-greenar/internal/fileutil"
	"github.com/alnah/go-greenar/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength   = 4096 // Filesystem paths
	MaxURLLength    = 2048 // Browser limit
	MaxRegionLength = 100  // City or region name
	MaxAliases      = 500  // cityAliases entries
)

// appDir is the directory searched under os.UserConfigDir().
const appDir = "go-greenar"

// Config holds all configuration for asset resolution and catalog handling.
type Config struct {
	Assets  AssetsConfig  `yaml:"assets"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// AssetsConfig defines where assets live and how paths are published.
type AssetsConfig struct {
	Inventory string `yaml:"inventory"` // Inventory YAML file (empty = embedded list)
	ModelsDir string `yaml:"modelsDir"` // Public model directory (default: /models)
	ImagesDir string `yaml:"imagesDir"` // Public image directory (default: /images)
	BaseURL   string `yaml:"baseURL"`   // Prefix for catalog asset URLs (empty = rooted paths)
}

// CatalogConfig defines the plant catalog source and region matching.
type CatalogConfig struct {
	Path        string            `yaml:"path"`        // CSV file
	Region      string            `yaml:"region"`      // Default region (default: India)
	CityAliases map[string]string `yaml:"cityAliases"` // Extra aliases, e.g. bombay: Mumbai
}

// Defaults applied to empty fields after loading.
const (
	DefaultModelsDir = "/models"
	DefaultImagesDir = "/images"
	DefaultRegion    = "India"
)

// Validate checks field lengths and formats.
// Called automatically by LoadConfig, but available for callers that build
// a Config by hand.
func (c *Config) Validate() error {
	if err := validateFieldLength("assets.inventory", c.Assets.Inventory, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.modelsDir", c.Assets.ModelsDir, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.imagesDir", c.Assets.ImagesDir, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.baseURL", c.Assets.BaseURL, MaxURLLength); err != nil {
		return err
	}

	if err := validatePublicDir("assets.modelsDir", c.Assets.ModelsDir); err != nil {
		return err
	}
	if err := validatePublicDir("assets.imagesDir", c.Assets.ImagesDir); err != nil {
		return err
	}
	if c.Assets.BaseURL != "" && !fileutil.IsURL(c.Assets.BaseURL) {
		return fmt.Errorf("%w: assets.baseURL must start with http:// or https://, got %q", ErrInvalidField, c.Assets.BaseURL)
	}

	if err := validateFieldLength("catalog.path", c.Catalog.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("catalog.region", c.Catalog.Region, MaxRegionLength); err != nil {
		return err
	}
	if len(c.Catalog.CityAliases) > MaxAliases {
		return fmt.Errorf("%w: catalog.cityAliases (%d entries, max %d)", ErrFieldTooLong, len(c.Catalog.CityAliases), MaxAliases)
	}
	for alias, city := range c.Catalog.CityAliases {
		if strings.TrimSpace(alias) == "" || strings.TrimSpace(city) == "" {
			return fmt.Errorf("%w: catalog.cityAliases: empty alias or city (%q: %q)", ErrInvalidField, alias, city)
		}
		if err := validateFieldLength("catalog.cityAliases", alias, MaxRegionLength); err != nil {
			return err
		}
		if err := validateFieldLength("catalog.cityAliases", city, MaxRegionLength); err != nil {
			return err
		}
	}

	return nil
}

// validatePublicDir accepts empty (default applies), rooted paths and URLs.
func validatePublicDir(fieldName, dir string) error {
	if dir == "" || fileutil.IsPublicPath(dir) {
		return nil
	}
	return fmt.Errorf("%w: %s must start with / or be an http(s) URL, got %q", ErrInvalidField, fieldName, dir)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// embedded inventory, /models and /images, rooted paths, region India.
func DefaultConfig() *Config {
	return &Config{
		Assets: AssetsConfig{
			ModelsDir: DefaultModelsDir,
			ImagesDir: DefaultImagesDir,
		},
		Catalog: CatalogConfig{Region: DefaultRegion},
	}
}

// applyDefaults fills fields left empty by the config file.
func (c *Config) applyDefaults() {
	if c.Assets.ModelsDir == "" {
		c.Assets.ModelsDir = DefaultModelsDir
	}
	if c.Assets.ImagesDir == "" {
		c.Assets.ImagesDir = DefaultImagesDir
	}
	if c.Catalog.Region == "" {
		c.Catalog.Region = DefaultRegion
	}
}

// relativeTo makes file references in the config relative to the config
// file's own directory rather than the working directory.
func (c *Config) relativeTo(dir string) {
	c.Assets.Inventory = joinIfRelative(dir, c.Assets.Inventory)
	c.Catalog.Path = joinIfRelative(dir, c.Catalog.Path)
}

func joinIfRelative(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// An empty file is a valid config: every field takes its default.
	var cfg Config
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.relativeTo(filepath.Dir(configPath))
	return &cfg, nil
}

// SearchPaths lists the files tried for a config name, in order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
