package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-greenar"
	"github.com/alnah/go-greenar/internal/assets"
	"github.com/alnah/go-greenar/internal/catalog"
	"github.com/alnah/go-greenar/internal/hints"
)

// assetAdapter lets catalog.Enrich drive the public resolver.
type assetAdapter struct {
	r *greenar.Resolver
}

// Compile-time interface implementation check.
var _ catalog.AssetResolver = assetAdapter{}

func (a assetAdapter) Resolve(name, override string, class assets.Class) string {
	if class == assets.ClassImage {
		return a.r.ImagePath(name, override)
	}
	return a.r.ModelPath(name, override)
}

func (a assetAdapter) Companion(primary string) string {
	return a.r.CompanionPath(primary)
}

// runCatalog lists the plants recommended for a region with their asset URLs.
func runCatalog(args []string, env *Environment) error {
	f, rest, err := parseCatalogFlags("catalog", args, env.Stdout, printCatalogUsage, formatTable)
	if err != nil {
		return err
	}
	if len(rest) > 1 {
		return fmt.Errorf("%w: %v", ErrTooManyArgs, rest[1:])
	}
	format, err := checkFormat(f.format, formatYAML, formatTable)
	if err != nil {
		return err
	}

	s, err := newCatalogSession(f, env)
	if err != nil {
		return err
	}
	plants, err := s.loadCatalog(optionalArg(rest, 0))
	if err != nil {
		return err
	}

	region := f.region
	if region == "" {
		region = s.cfg.Catalog.Region
	}
	selected, matched := catalog.ByRegion(plants, region, s.cfg.Catalog.CityAliases)
	if !matched {
		s.log.Info("no plants listed for region, showing all", "region", region)
	}
	selected = catalog.Filter(selected, catalog.Criteria{
		Search:   f.search,
		Sunlight: f.sunlight,
		Water:    f.water,
		Type:     f.kind,
	})
	s.log.Debug("catalog filtered", "region", region, "total", len(plants), "shown", len(selected))

	enriched := catalog.Enrich(selected, assetAdapter{s.resolver}, s.cfg.Assets.BaseURL)
	if format == formatYAML {
		return writeYAML(env.Stdout, enriched)
	}
	return writePlantTable(env, enriched)
}

// runPlant prints the first plant whose name contains the query.
func runPlant(args []string, env *Environment) error {
	f, rest, err := parseCatalogFlags("plant", args, env.Stdout, printPlantUsage, formatYAML)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("%w: usage: greenar plant <name> [plants.csv]", ErrNoName)
	}
	if len(rest) > 2 {
		return fmt.Errorf("%w: %v", ErrTooManyArgs, rest[2:])
	}
	format, err := checkFormat(f.format, formatYAML, formatTable)
	if err != nil {
		return err
	}

	s, err := newCatalogSession(f, env)
	if err != nil {
		return err
	}
	plants, err := s.loadCatalog(optionalArg(rest, 1))
	if err != nil {
		return err
	}

	plant, err := catalog.FindByName(plants, rest[0])
	if err != nil {
		return err
	}
	enriched := catalog.Enrich([]catalog.Plant{plant}, assetAdapter{s.resolver}, s.cfg.Assets.BaseURL)[0]
	if format == formatYAML {
		return writeYAML(env.Stdout, enriched)
	}
	return writePlantTable(env, []catalog.Plant{enriched})
}

// newCatalogSession builds a session and applies --base-url on top of the
// merged config.
func newCatalogSession(f *catalogFlags, env *Environment) (*session, error) {
	s, err := newSession(f.common, env)
	if err != nil {
		return nil, err
	}
	if f.baseURL != "" {
		s.cfg.Assets.BaseURL = f.baseURL
		if err := s.cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// loadCatalog reads the CSV named by the argument, falling back to the
// configured catalog path.
func (s *session) loadCatalog(path string) ([]catalog.Plant, error) {
	if path == "" {
		path = s.cfg.Catalog.Path
	}
	if path == "" {
		return nil, fmt.Errorf("%w%s", ErrNoCatalog, hints.ForCatalogNotFound())
	}

	plants, err := catalog.LoadFile(path)
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForCatalogNotFound())
		}
		return nil, err
	}
	s.log.Debug("catalog loaded", "path", path, "plants", len(plants))
	return plants, nil
}

func writePlantTable(env *Environment, plants []catalog.Plant) error {
	headers := []string{"Name", "Scientific name", "City", "Type", "Sunlight", "Water", "Price", "Model", "Image"}
	rows := make([][]string, len(plants))
	for i, p := range plants {
		rows[i] = []string{p.Name, p.ScientificName, p.City, p.Type, p.Sunlight, p.WaterNeed, p.Price, p.ModelURL, p.ImageURL}
	}
	return writeTable(env.Stdout, headers, rows, noColor(env))
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
