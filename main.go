package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/damienestewart/gocaps/internal/capscan"
	"github.com/damienestewart/gocaps/internal/diagram"
	"github.com/damienestewart/gocaps/internal/logging"
	"github.com/damienestewart/gocaps/internal/report"
	"github.com/damienestewart/gocaps/internal/resolver"
	"github.com/damienestewart/gocaps/pets"
)

func main() {
	// Use a custom FlagSet so we can parse all args regardless of position.
	// Go's default flag.Parse stops at the first non-flag argument, which
	// breaks "gocaps ./path -output adoption.mmd". We reorder args so flags
	// come first, then positional args.
	flags, positional := reorderArgs(os.Args[1:])

	fs := flag.NewFlagSet("gocaps", flag.ExitOnError)
	pathFlag := fs.String("path", "", "path to scan (alternative to positional argument)")
	filter := fs.String("filter", "", "package path prefix filter")
	includeUnexported := fs.Bool("include-unexported", false, "include unexported types and capabilities")
	format := fs.String("format", "report", "output format (report, mermaid)")
	output := fs.String("output", "", "write output to file instead of stdout")
	logFile := fs.String("log-file", "", "log file path (in addition to stderr)")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")

	if err := fs.Parse(flags); err != nil {
		os.Exit(1)
	}
	// Collect any remaining args from flag parsing + our positional args
	positional = append(positional, fs.Args()...)

	// Determine input: positional argument takes precedence, then -path flag
	input := ""
	if len(positional) > 0 {
		input = positional[0]
	}
	if input == "" {
		input = *pathFlag
	}

	// No path: run the capability demonstration script and exit.
	if input == "" {
		if err := pets.Script(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error running demonstration: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Parse log level
	level, err := parseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", *logLevel, err)
		os.Exit(1)
	}

	// Setup logging
	logger, logCleanup, err := logging.Setup(*logFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	// Setup signal handling with context cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	// Step 1: Resolve input to a module root
	dir, err := resolver.Resolve(ctx, input, logger)
	if err != nil {
		logger.Error("failed to resolve input", "error", err)
		fmt.Fprintf(os.Stderr, "Error resolving input: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Scan
	opts := capscan.Options{
		Filter:            *filter,
		IncludeUnexported: *includeUnexported,
	}

	result, err := capscan.Scan(ctx, dir, opts, logger)
	if err != nil {
		logger.Error("scan failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error scanning packages: %v\n", err)
		os.Exit(1)
	}

	// Step 3: Filter
	result = capscan.Filter(result, opts)

	logger.Info("scan summary",
		"capabilities", len(result.Capabilities),
		"adopters", len(result.Adopters),
		"adoptions", len(result.Adoptions))

	if len(result.Adoptions) == 0 {
		fmt.Println("No capability adoptions found.")
		return
	}

	// Step 4: Render
	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			logger.Error("failed to create output file", "error", err)
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *output, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	switch *format {
	case "report":
		if err := report.Write(out, result); err != nil {
			logger.Error("failed to write report", "error", err)
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			os.Exit(1)
		}
	case "mermaid":
		diagramOpts := diagram.DefaultOptions()
		// File output: include %%{init:}%% for standalone .mmd rendering
		diagramOpts.IncludeInit = *output != ""
		if _, err := fmt.Fprintln(out, diagram.Generate(result, diagramOpts)); err != nil {
			logger.Error("failed to write diagram", "error", err)
			fmt.Fprintf(os.Stderr, "Error writing diagram: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown format %q (valid: report, mermaid)\n", *format)
		os.Exit(1)
	}
}

// reorderArgs separates flags and positional arguments so flags can appear
// in any position (before or after the positional path argument).
// Flags that take a value (e.g., -output adoption.mmd) consume the next arg.
func reorderArgs(args []string) (flags, positional []string) {
	// Set of flags that take a value argument
	valueFlagSet := map[string]bool{
		"-path": true, "-filter": true, "-format": true,
		"-output": true, "-log-file": true, "-log-level": true,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
			// Check if this flag takes a value (and it's not using = syntax)
			if !strings.Contains(arg, "=") && valueFlagSet[arg] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return flags, positional
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s (valid: debug, info, warn, error)", s)
	}
}
