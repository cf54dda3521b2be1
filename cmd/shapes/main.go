package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/seuros/gopher-shapes/src/shapecache"
)

// stdin is swapped out by tests.
var stdin io.Reader = os.Stdin

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil {
		return
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.Error() != "" {
			fmt.Fprintln(os.Stderr, exitErr.Error())
		}
		os.Exit(exitErr.code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)
		return &exitError{code: 1}
	}

	cfg, err := loadConfig()
	if err != nil {
		return usageErrorf(2, "%v", err)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "lint":
		return lintCommand(args, stdout)
	case "fmt":
		return fmtCommand(args, stdout)
	case "inspect":
		return inspectCommand(args, cfg, stdout, stderr)
	case "color":
		return colorCommand(args, stdout)
	case "version", "--version", "-v":
		fmt.Fprintf(stdout, "shapes version %s\n", shapecache.Version())
		return nil
	case "help", "--help", "-h":
		printUsage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return &exitError{code: 1}
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "shapes - shape description tool")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  shapes lint <file|->              - Validate shape text")
	fmt.Fprintln(w, "  shapes fmt <file|->               - Print shape text in canonical form")
	fmt.Fprintln(w, "  shapes inspect [flags] <file|->   - Register shapes and print normalized commands")
	fmt.Fprintln(w, "  shapes color <#rrggbb>...         - Print integer color values")
	fmt.Fprintln(w, "  shapes version                    - Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inspect flags:")
	fmt.Fprintln(w, "  --format table|json|jsonl|yaml    - Output format (default: table, or SHAPES_FORMAT)")
	fmt.Fprintln(w, "  --log-level debug|info|warn|off   - Cache logging to stderr (or SHAPES_LOG_LEVEL)")
	fmt.Fprintln(w, "  --trace                           - Print OpenTelemetry spans to stderr (or SHAPES_TRACE)")
	fmt.Fprintln(w, "  --metrics                         - Print OpenTelemetry metrics to stderr (or SHAPES_METRICS)")
}
