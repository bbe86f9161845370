package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: greenar <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  resolve      Resolve plant names to model and image paths")
	fmt.Fprintln(w, "  inventory    List the known model and image paths")
	fmt.Fprintln(w, "  catalog      List catalog plants for a region with asset URLs")
	fmt.Fprintln(w, "  plant        Show one catalog plant with asset URLs")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'greenar help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --inventory <path>    Inventory YAML file (default: built-in list)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors and warnings")
	fmt.Fprintln(w, "  -v, --verbose             Show debug diagnostics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  GREENAR_CONFIG, GREENAR_INVENTORY, GREENAR_BASE_URL,")
	fmt.Fprintln(w, "  GREENAR_CATALOG, GREENAR_REGION, NO_COLOR")
}

// printResolveUsage prints usage for the resolve command.
func printResolveUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: greenar resolve <name...> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resolve each plant name to an asset path. Unknown names fall back to")
	fmt.Fprintln(w, "the first known model, or to a /images/<name>.jpg guess for images.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  name    Plant display name; quote names with spaces (\"Neem Tree\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resolution:")
	fmt.Fprintln(w, "      --class <s>           Asset class: model, image (default: model)")
	fmt.Fprintln(w, "      --override <url>      Return this URL instead of a resolved path")
	fmt.Fprintln(w, "      --companion           Print the .usdz companion of the model")
	fmt.Fprintln(w, "      --ios-override <url>  Companion URL to use with --companion")
	fmt.Fprintln(w, "  -f, --format <s>          Output: plain, yaml, table (default: plain)")
	fmt.Fprintln(w, "                            yaml and table print model, companion and image")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printInventoryUsage prints usage for the inventory command.
func printInventoryUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: greenar inventory [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the asset paths the resolver can match, in priority order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Listing:")
	fmt.Fprintln(w, "      --class <s>           Only list model or image paths")
	fmt.Fprintln(w, "  -f, --format <s>          Output: plain, yaml, table (default: plain)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printCatalogFilters prints the flags shared by catalog and plant.
func printCatalogFilters(w io.Writer) {
	fmt.Fprintln(w, "Catalog:")
	fmt.Fprintln(w, "  -r, --region <s>          City or region, \"all\" for every plant")
	fmt.Fprintln(w, "                            (default: catalog.region, India)")
	fmt.Fprintln(w, "  -s, --search <s>          Name or scientific name contains")
	fmt.Fprintln(w, "      --sunlight <s>        Sunlight contains, e.g. full")
	fmt.Fprintln(w, "      --water <s>           Water need contains, e.g. low")
	fmt.Fprintln(w, "      --type <s>            Plant type, exact match")
	fmt.Fprintln(w, "      --base-url <url>      Prefix for resolved asset URLs")
}

// printCatalogUsage prints usage for the catalog command.
func printCatalogUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: greenar catalog [plants.csv] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List plants recommended for a region with model, companion and image")
	fmt.Fprintln(w, "URLs attached. URLs present in the CSV are kept as-is. When no plant")
	fmt.Fprintln(w, "matches the region, every plant is listed.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  plants.csv    Catalog file (default: catalog.path, GREENAR_CATALOG)")
	fmt.Fprintln(w)
	printCatalogFilters(w)
	fmt.Fprintln(w, "  -f, --format <s>          Output: yaml, table (default: table)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPlantUsage prints usage for the plant command.
func printPlantUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: greenar plant <name> [plants.csv] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the first plant whose name contains <name> (case-insensitive).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  name          Name or part of it")
	fmt.Fprintln(w, "  plants.csv    Catalog file (default: catalog.path, GREENAR_CATALOG)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --base-url <url>      Prefix for resolved asset URLs")
	fmt.Fprintln(w, "  -f, --format <s>          Output: yaml, table (default: yaml)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "resolve":
		printResolveUsage(env.Stdout)
	case "inventory":
		printInventoryUsage(env.Stdout)
	case "catalog":
		printCatalogUsage(env.Stdout)
	case "plant":
		printPlantUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: greenar version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: greenar help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
