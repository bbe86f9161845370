package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	inventory string
	quiet     bool
	verbose   bool
}

// resolveFlags holds flags for the resolve command.
type resolveFlags struct {
	common      commonFlags
	class       string
	override    string
	iosOverride string
	companion   bool
	format      string
}

// inventoryFlags holds flags for the inventory command.
type inventoryFlags struct {
	common commonFlags
	class  string
	format string
}

// catalogFlags holds flags for the catalog and plant commands.
type catalogFlags struct {
	common   commonFlags
	region   string
	search   string
	sunlight string
	water    string
	kind     string
	baseURL  string
	format   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.inventory, "inventory", "", "inventory YAML file (default: built-in list)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors and warnings")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug diagnostics")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting and
// prints usage to w on --help.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseResolveFlags parses resolve command flags.
func parseResolveFlags(args []string, w io.Writer) (*resolveFlags, []string, error) {
	f := &resolveFlags{}
	fs := newFlagSet("resolve", w, printResolveUsage)

	fs.StringVar(&f.class, "class", "model", "asset class: model or image")
	fs.StringVar(&f.override, "override", "", "explicit URL returned instead of a resolved path")
	fs.StringVar(&f.iosOverride, "ios-override", "", "explicit companion URL (with --companion)")
	fs.BoolVar(&f.companion, "companion", false, "print the .usdz companion of the model path")
	fs.StringVarP(&f.format, "format", "f", formatPlain, "output format: plain, yaml, table")
	addCommonFlags(fs, &f.common)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseInventoryFlags parses inventory command flags.
func parseInventoryFlags(args []string, w io.Writer) (*inventoryFlags, []string, error) {
	f := &inventoryFlags{}
	fs := newFlagSet("inventory", w, printInventoryUsage)

	fs.StringVar(&f.class, "class", "", "only list one class: model or image")
	fs.StringVarP(&f.format, "format", "f", formatPlain, "output format: plain, yaml, table")
	addCommonFlags(fs, &f.common)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseCatalogFlags parses catalog and plant command flags.
func parseCatalogFlags(name string, args []string, w io.Writer, usage func(io.Writer), defaultFormat string) (*catalogFlags, []string, error) {
	f := &catalogFlags{}
	fs := newFlagSet(name, w, usage)

	fs.StringVarP(&f.region, "region", "r", "", "city or region (\"all\" = every plant)")
	fs.StringVarP(&f.search, "search", "s", "", "name or scientific name contains")
	fs.StringVar(&f.sunlight, "sunlight", "", "sunlight contains, e.g. full")
	fs.StringVar(&f.water, "water", "", "water need contains, e.g. low")
	fs.StringVar(&f.kind, "type", "", "plant type, exact match")
	fs.StringVar(&f.baseURL, "base-url", "", "prefix for resolved asset URLs")
	fs.StringVarP(&f.format, "format", "f", defaultFormat, "output format: yaml, table")
	addCommonFlags(fs, &f.common)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parse runs fs.Parse and tags failures as usage errors.
// pflag prints usage itself on -h/--help.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errHelpShown
		}
		return usageError(err)
	}
	return nil
}
