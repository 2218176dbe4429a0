package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/diwise/entity-model/internal/pkg/application/catalog"
	"github.com/diwise/entity-model/internal/pkg/application/hydrator"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const serviceName string = "entity-hydrator"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, flags := parseExternalConfig(context.Background(), DefaultFlags())

	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, flags[logFormat])
	defer cleanup()

	schema, err := os.Open(flags[schemaPath])
	if err != nil {
		fatal(ctx, "failed to open schema file", err)
	}
	defer schema.Close()

	in, out, closeAll, err := openStreams(flags)
	if err != nil {
		fatal(ctx, "failed to open input or output", err)
	}
	defer closeAll()

	count, err := run(ctx, flags, schema, in, out)
	if err != nil {
		fatal(ctx, "hydration failed", err)
	}

	logger.Debug("done", slog.String("entity_type", flags[entityType]), slog.Int("count", count))
}

func parseExternalConfig(ctx context.Context, flags FlagMap) (context.Context, FlagMap) {

	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault
	flags[schemaPath] = envOrDef(ctx, "ENTITY_SCHEMA_PATH", flags[schemaPath])
	flags[logFormat] = envOrDef(ctx, "LOG_FORMAT", flags[logFormat])

	apply := func(f FlagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("schema", "a yaml file with entity type definitions", apply(schemaPath))
	flag.Func("type", "the name of the entity type to hydrate", apply(entityType))
	flag.Func("input", "newline delimited json to read, - for stdin", apply(inputPath))
	flag.Func("output", "where to write hydrated records, - for stdout", apply(outputPath))
	flag.BoolFunc("plain", "write plain records without the $id marker", func(value string) error {
		flags[plainOutput] = value
		return nil
	})
	flag.Parse()

	return ctx, flags
}

func run(ctx context.Context, flags FlagMap, schema, in io.Reader, out io.Writer) (int, error) {
	if flags[entityType] == "" {
		return 0, fmt.Errorf("no entity type specified")
	}

	plain, err := strconv.ParseBool(flags[plainOutput])
	if err != nil {
		return 0, fmt.Errorf("invalid value for plain: %w", err)
	}

	cfg, err := catalog.LoadConfiguration(schema)
	if err != nil {
		return 0, fmt.Errorf("failed to load schema: %w", err)
	}

	cat, err := catalog.New(ctx, *cfg)
	if err != nil {
		return 0, err
	}

	return hydrator.New(cat, hydrator.Plain(plain)).Hydrate(ctx, flags[entityType], in, out)
}

func openStreams(flags FlagMap) (io.Reader, io.Writer, func(), error) {
	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout

	closers := []io.Closer{}
	closeAll := func() {
		for _, c := range closers {
			c.Close()
		}
	}

	if flags[inputPath] != stdio {
		f, err := os.Open(flags[inputPath])
		if err != nil {
			return nil, nil, closeAll, err
		}
		closers = append(closers, f)
		in = f
	}

	if flags[outputPath] != stdio {
		f, err := os.Create(flags[outputPath])
		if err != nil {
			closeAll()
			return nil, nil, func() {}, err
		}
		closers = append(closers, f)
		out = f
	}

	return in, out, closeAll, nil
}

func fatal(ctx context.Context, msg string, err error) {
	logger := logging.GetFromContext(ctx)
	logger.Error(msg, "err", err.Error())
	os.Exit(1)
}
