package main

import (
	"context"
	"flag"
	"io"
	"strings"

	"github.com/seuros/gopher-shapes/src/logging"
	"github.com/seuros/gopher-shapes/src/shapecache"
	"github.com/seuros/gopher-shapes/src/shapes"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func inspectCommand(args []string, cfg *config, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)

	formatFlag := fs.String("format", cfg.Format, "Output format: table|json|jsonl|yaml")
	logLevelFlag := fs.String("log-level", cfg.LogLevel, "Cache log level: debug|info|warn|error|off")
	traceFlag := fs.Bool("trace", cfg.Trace, "Print spans to stderr")
	metricsFlag := fs.Bool("metrics", cfg.Metrics, "Print cache metrics to stderr")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return &exitError{code: 0}
		}
		return usageErrorf(2, "%v", err)
	}
	if fs.NArg() != 1 {
		return usageErrorf(2, "Usage: shapes inspect [flags] <file|->")
	}

	format := strings.ToLower(*formatFlag)
	switch format {
	case "table", "json", "jsonl", "yaml":
	default:
		return usageErrorf(2, "Unknown --format %q (expected table|json|jsonl|yaml)", *formatFlag)
	}

	filename := fs.Arg(0)
	text, err := readInput(filename)
	if err != nil {
		return err
	}

	tel, err := setupTelemetry(*traceFlag, *metricsFlag, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = tel.Shutdown(context.Background()) }()

	logger := logging.NewConsoleLoggerWithOutput(logging.ParseLogLevel(*logLevelFlag), stderr, stderr)
	cacheCfg := shapecache.DefaultConfig()
	cacheCfg.Logger = logger
	cache := shapecache.New(cacheCfg)

	ctx, span := tel.tracer.Start(context.Background(), "shapes.inspect")
	span.SetAttributes(attribute.String("shapes.file", filename))
	defer span.End()

	keys, err := register(ctx, tel, cache, logger, text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return usageErrorf(1, "Invalid shapes in %s: %v", filename, err)
	}

	records := make([]shapeRecord, 0, len(keys))
	for _, key := range keys {
		cmds, _ := cache.Lookup(key)
		records = append(records, toRecord(key, cmds))
	}

	switch format {
	case "json":
		return writeJSONArray(stdout, records)
	case "jsonl":
		return writeJSONLines(stdout, records)
	case "yaml":
		return writeYAML(stdout, records)
	default:
		return writeTable(stdout, records)
	}
}

// register decodes text and adds the result to cache, one span per step.
func register(ctx context.Context, tel *telemetry, cache *shapecache.Cache, logger logging.Logger, text string) ([]string, error) {
	dec, err := shapes.NewDecoder(shapes.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	_, decodeSpan := tel.tracer.Start(ctx, "shapes.decode")
	decoded, err := dec.Decode(text)
	if err != nil {
		decodeSpan.RecordError(err)
		decodeSpan.SetStatus(codes.Error, err.Error())
		decodeSpan.End()
		return nil, err
	}
	decodeSpan.SetAttributes(attribute.Int("shapes.count", len(decoded)))
	decodeSpan.End()

	_, addSpan := tel.tracer.Start(ctx, "shapecache.add_all")
	defer addSpan.End()
	if err := cache.AddAll(decoded); err != nil {
		addSpan.RecordError(err)
		addSpan.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	addSpan.SetAttributes(attribute.Int("shapecache.entries", cache.Len()))

	return cache.Keys(), nil
}
