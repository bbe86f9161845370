package main

import (
	"fmt"

	"github.com/alnah/go-greenar/internal/assets"
)

// inventoryListing is the YAML shape of the inventory command.
type inventoryListing struct {
	Models []string `yaml:"models,omitempty"`
	Images []string `yaml:"images,omitempty"`
}

// runInventory lists the paths the resolver can return without falling back.
func runInventory(args []string, env *Environment) error {
	f, rest, err := parseInventoryFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: %v", ErrTooManyArgs, rest)
	}

	classes := assets.Classes()
	if f.class != "" {
		class, err := parseClass(f.class)
		if err != nil {
			return err
		}
		classes = []assets.Class{class}
	}
	format, err := checkFormat(f.format, formatPlain, formatYAML, formatTable)
	if err != nil {
		return err
	}

	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}

	var listing inventoryListing
	for _, c := range classes {
		switch c {
		case assets.ClassModel:
			listing.Models = s.resolver.AvailableModels()
		case assets.ClassImage:
			listing.Images = s.resolver.AvailableImages()
		}
	}
	if len(listing.Models) == 0 && len(listing.Images) == 0 {
		s.log.Warn("inventory is empty, every lookup will fall back")
	}

	switch format {
	case formatYAML:
		return writeYAML(env.Stdout, listing)
	case formatTable:
		var rows [][]string
		for _, p := range listing.Models {
			rows = append(rows, []string{assets.ClassModel.String(), p})
		}
		for _, p := range listing.Images {
			rows = append(rows, []string{assets.ClassImage.String(), p})
		}
		return writeTable(env.Stdout, []string{"Class", "Path"}, rows, noColor(env))
	default:
		for _, p := range listing.Models {
			env.printf("%s\n", p)
		}
		for _, p := range listing.Images {
			env.printf("%s\n", p)
		}
		return nil
	}
}
