package main

import (
	"log/slog"
	"strings"

	"github.com/alnah/go-greenar/internal/config"
)

// Environment variable names.
const (
	envPrefix    = "GREENAR_"
	envConfig    = "GREENAR_CONFIG"
	envInventory = "GREENAR_INVENTORY"
	envBaseURL   = "GREENAR_BASE_URL"
	envCatalog   = "GREENAR_CATALOG"
	envRegion    = "GREENAR_REGION"
)

// envSettings holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envSettings struct {
	ConfigPath string // GREENAR_CONFIG: config file name or path
	Inventory  string // GREENAR_INVENTORY: inventory YAML file
	BaseURL    string // GREENAR_BASE_URL: prefix for catalog asset URLs
	Catalog    string // GREENAR_CATALOG: catalog CSV file
	Region     string // GREENAR_REGION: default region
}

// knownEnvVars lists valid GREENAR_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfig:    true,
	envInventory: true,
	envBaseURL:   true,
	envCatalog:   true,
	envRegion:    true,
}

// loadEnvSettings reads every recognized GREENAR_* value.
func loadEnvSettings(env *Environment) *envSettings {
	return &envSettings{
		ConfigPath: strings.TrimSpace(env.getenv(envConfig)),
		Inventory:  strings.TrimSpace(env.getenv(envInventory)),
		BaseURL:    strings.TrimSpace(env.getenv(envBaseURL)),
		Catalog:    strings.TrimSpace(env.getenv(envCatalog)),
		Region:     strings.TrimSpace(env.getenv(envRegion)),
	}
}

// warnUnknownEnvVars logs a warning for each unrecognized GREENAR_* variable.
// Helps catch typos like GREENAR_INVENTROY.
func warnUnknownEnvVars(logger *slog.Logger, env *Environment) {
	for _, kv := range env.environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvSettings overlays environment values on cfg.
// Precedence: CLI flags > env vars > config file > defaults
// (flags are applied afterwards by each command).
func applyEnvSettings(s *envSettings, cfg *config.Config) {
	if s.Inventory != "" {
		cfg.Assets.Inventory = s.Inventory
	}
	if s.BaseURL != "" {
		cfg.Assets.BaseURL = s.BaseURL
	}
	if s.Catalog != "" {
		cfg.Catalog.Path = s.Catalog
	}
	if s.Region != "" {
		cfg.Catalog.Region = s.Region
	}
}
