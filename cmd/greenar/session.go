package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alnah/go-greenar"
	"github.com/alnah/go-greenar/internal/config"
	"github.com/alnah/go-greenar/internal/fileutil"
	"github.com/alnah/go-greenar/internal/hints"
)

// session is the state shared by one command run: logger, merged
// configuration and the resolver built from it.
type session struct {
	log      *slog.Logger
	cfg      *config.Config
	resolver *greenar.Resolver
}

// newSession builds the logger, loads configuration (defaults < file < env
// < flags) and constructs the resolver.
func newSession(f commonFlags, env *Environment) (*session, error) {
	log := newLogger(env.Stderr, logLevel(f.verbose, f.quiet), noColor(env))
	if env.SetMaxProcs != nil {
		env.SetMaxProcs(func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...))
		})
	}
	warnUnknownEnvVars(log, env)

	settings := loadEnvSettings(env)
	cfg, err := loadConfig(f.config, settings.ConfigPath, log)
	if err != nil {
		return nil, err
	}
	applyEnvSettings(settings, cfg)
	if f.inventory != "" {
		cfg.Assets.Inventory = f.inventory
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resolver, err := newResolver(cfg, log)
	if err != nil {
		return nil, err
	}
	return &session{log: log, cfg: cfg, resolver: resolver}, nil
}

// loadConfig loads the config named by the flag, then the env var, and
// falls back to defaults when neither is set.
func loadConfig(flagValue, envValue string, log *slog.Logger) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		log.Debug("no config file, using defaults")
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			searched := []string{name}
			if !fileutil.IsFilePath(name) {
				searched = config.SearchPaths(name)
			}
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(searched))
		}
		return nil, err
	}
	log.Debug("config loaded", "config", name)
	return cfg, nil
}

// newResolver builds the public resolver from the merged config.
func newResolver(cfg *config.Config, log *slog.Logger) (*greenar.Resolver, error) {
	opts := []greenar.Option{
		greenar.WithModelsDir(cfg.Assets.ModelsDir),
		greenar.WithImagesDir(cfg.Assets.ImagesDir),
	}
	if cfg.Assets.Inventory != "" {
		opts = append(opts, greenar.WithInventoryFile(cfg.Assets.Inventory))
	}

	r, err := greenar.NewResolver(opts...)
	switch {
	case errors.Is(err, greenar.ErrInventoryNotFound):
		return nil, fmt.Errorf("%w%s", err, hints.ForInventoryNotFound())
	case errors.Is(err, greenar.ErrInvalidInventory):
		return nil, fmt.Errorf("%w%s", err, hints.ForInventoryParse())
	case err != nil:
		return nil, err
	}

	log.Debug("resolver ready",
		"inventory", inventorySource(cfg.Assets.Inventory),
		"models", len(r.AvailableModels()),
		"images", len(r.AvailableImages()),
	)
	return r, nil
}

func inventorySource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
