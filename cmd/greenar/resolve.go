package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-greenar"
	"github.com/alnah/go-greenar/internal/assets"
	"github.com/alnah/go-greenar/internal/hints"
)

// assetRecord is the structured output of resolve.
type assetRecord struct {
	Name     string `yaml:"name"`
	Model    string `yaml:"model"`
	IOSModel string `yaml:"iosModel"`
	Image    string `yaml:"image"`
}

// runResolve prints the resolved path for each name argument.
func runResolve(args []string, env *Environment) error {
	f, names, err := parseResolveFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("%w: usage: greenar resolve <name...>", ErrNoName)
	}

	class, err := parseClass(f.class)
	if err != nil {
		return err
	}
	if f.companion && class != assets.ClassModel {
		return usageError(errors.New("--companion only applies to --class model"))
	}
	format, err := checkFormat(f.format, formatPlain, formatYAML, formatTable)
	if err != nil {
		return err
	}

	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}

	if format == formatPlain {
		for _, name := range names {
			p := resolvePath(s.resolver, name, class, f)
			s.log.Debug("resolved", "name", name, "class", class, "path", p)
			env.printf("%s\n", p)
		}
		return nil
	}

	records := make([]assetRecord, len(names))
	for i, name := range names {
		records[i] = resolveRecord(s.resolver, name, class, f)
	}
	if format == formatYAML {
		return writeYAML(env.Stdout, records)
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{r.Name, r.Model, r.IOSModel, r.Image}
	}
	return writeTable(env.Stdout, []string{"Name", "Model", "iOS model", "Image"}, rows, noColor(env))
}

// resolvePath returns the single path plain output prints.
func resolvePath(r *greenar.Resolver, name string, class assets.Class, f *resolveFlags) string {
	switch {
	case class == assets.ClassImage:
		return r.ImagePath(name, f.override)
	case f.companion:
		return r.IOSModelPath(name, f.override, f.iosOverride)
	default:
		return r.ModelPath(name, f.override)
	}
}

// resolveRecord resolves all three paths. --override applies to the asset
// named by --class only.
func resolveRecord(r *greenar.Resolver, name string, class assets.Class, f *resolveFlags) assetRecord {
	var modelOverride, imageOverride string
	if class == assets.ClassImage {
		imageOverride = f.override
	} else {
		modelOverride = f.override
	}
	return assetRecord{
		Name:     name,
		Model:    r.ModelPath(name, modelOverride),
		IOSModel: r.IOSModelPath(name, modelOverride, f.iosOverride),
		Image:    r.ImagePath(name, imageOverride),
	}
}

// parseClass wraps assets.ParseClass with the list of valid classes.
func parseClass(s string) (assets.Class, error) {
	class, err := assets.ParseClass(s)
	if err != nil {
		return 0, fmt.Errorf("%w%s", err, hints.ForUnknownClass(classNames()))
	}
	return class, nil
}

func classNames() []string {
	classes := assets.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}
