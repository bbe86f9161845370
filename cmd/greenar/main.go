package main

import (
	"errors"
	"fmt"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for CLI operations.
var (
	ErrUsage         = errors.New("invalid usage")
	ErrNoName        = errors.New("no plant name given")
	ErrNoCatalog     = errors.New("no catalog CSV given")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrTooManyArgs   = errors.New("too many arguments")

	// errHelpShown stops a command after --help; it is not a failure.
	errHelpShown = errors.New("help shown")
)

// usageError tags err as a usage problem while keeping its message.
func usageError(err error) error {
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

func main() {
	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run dispatches a command and returns the process exit code.
func run(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "resolve":
		err = runResolve(rest, env)
	case "inventory":
		err = runInventory(rest, env)
	case "catalog":
		err = runCatalog(rest, env)
	case "plant":
		err = runPlant(rest, env)
	case "version", "--version":
		env.printf("greenar %s\n", Version)
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		_, _ = fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, errHelpShown) {
		return ExitSuccess
	}
	if err != nil {
		_, _ = fmt.Fprintf(env.Stderr, "greenar %s: %v\n", cmd, err)
	}
	return exitCodeFor(err)
}
