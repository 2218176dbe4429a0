package hydrator

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/diwise/entity-model/internal/pkg/application/catalog"
	"github.com/diwise/entity-model/pkg/model/entities"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("entity-model/hydrator")

const maxLineSize int = 4 * 1024 * 1024

type Hydrator interface {
	Hydrate(ctx context.Context, entityType string, in io.Reader, out io.Writer) (int, error)
}

type Option func(*hydratorImpl)

// Plain makes the hydrator write plain records, without the $id marker
func Plain(enabled bool) Option {
	return func(h *hydratorImpl) {
		h.plain = enabled
	}
}

type hydratorImpl struct {
	catalog catalog.Catalog
	plain   bool
}

func New(cat catalog.Catalog, options ...Option) Hydrator {
	h := &hydratorImpl{
		catalog: cat,
	}

	for _, option := range options {
		option(h)
	}

	return h
}

// Hydrate reads newline delimited json objects from in and writes one hydrated
// record per line to out. It returns the number of records written.
func (h *hydratorImpl) Hydrate(ctx context.Context, entityType string, in io.Reader, out io.Writer) (count int, err error) {
	ctx, span := tracer.Start(ctx, "hydrate",
		trace.WithAttributes(attribute.String("entity_type", entityType), attribute.Bool("plain", h.plain)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx).With(slog.String("entity_type", entityType))

	et, err := h.catalog.Lookup(entityType)
	if err != nil {
		return 0, err
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)

	lineno := 0

	for scanner.Scan() {
		lineno++

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var record any
		record, err = h.hydrate(et, line)
		if err != nil {
			err = fmt.Errorf("line %d: %w", lineno, err)
			return count, err
		}

		if err = encoder.Encode(record); err != nil {
			err = fmt.Errorf("failed to write record from line %d: %w", lineno, err)
			return count, err
		}

		count++
	}

	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("failed to read input after line %d: %w", lineno, err)
		return count, err
	}

	log.Debug("hydration complete", slog.Int("lines", lineno), slog.Int("records", count))

	return count, nil
}

func (h *hydratorImpl) hydrate(et *entities.EntityType, line []byte) (any, error) {
	if h.plain {
		input := map[string]any{}
		if err := json.Unmarshal(line, &input); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", et.Name(), err)
		}
		return et.MakePlain(input), nil
	}

	instance, err := et.MakeFromJSON(line)
	if err != nil {
		return nil, err
	}

	return instance.ToJSON(), nil
}
