package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Masterminds/semver/v3"
	"github.com/diwise/entity-model/pkg/model/entities"
	"github.com/diwise/entity-model/pkg/model/errors"
	"github.com/diwise/entity-model/pkg/model/mutators"
	"github.com/diwise/entity-model/pkg/model/schema"
	"github.com/diwise/entity-model/pkg/model/types"
	"github.com/diwise/entity-model/pkg/model/types/attributes"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SupportedVersion is the schema file version understood by this catalog.
// Files declaring any version compatible with it (same major) are accepted.
const SupportedVersion string = "1.0.0"

var tracer = otel.Tracer("entity-model/catalog")

type Catalog interface {
	Lookup(name string) (*entities.EntityType, error)
	Names() []string
}

type catalogImpl struct {
	entityTypes map[string]*entities.EntityType
}

func New(ctx context.Context, cfg Config) (Catalog, error) {
	var err error

	ctx, span := tracer.Start(ctx, "load-catalog",
		trace.WithAttributes(attribute.Int("entity_type_count", len(cfg.Entities))),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	if err = checkVersion(cfg.Version); err != nil {
		return nil, err
	}

	c := &catalogImpl{
		entityTypes: make(map[string]*entities.EntityType, len(cfg.Entities)),
	}

	for _, ec := range cfg.Entities {
		if _, exists := c.entityTypes[ec.Entity]; exists {
			err = errors.NewInvalidSchemaError(fmt.Sprintf("entity type %s is defined more than once", ec.Entity))
			return nil, err
		}

		var et *entities.EntityType
		et, err = newEntityType(ec)
		if err != nil {
			return nil, err
		}

		c.entityTypes[ec.Entity] = et

		log.Debug("loaded entity type", slog.String("entity_type", ec.Entity), slog.Int("fields", len(ec.Fields)))
	}

	log.Debug("catalog loaded", slog.String("version", cfg.Version), slog.Int("entity_types", len(c.entityTypes)))

	return c, nil
}

func (c *catalogImpl) Lookup(name string) (*entities.EntityType, error) {
	et, ok := c.entityTypes[name]
	if !ok {
		return nil, errors.NewUnknownEntityTypeError(name)
	}
	return et, nil
}

func (c *catalogImpl) Names() []string {
	names := make([]string, 0, len(c.entityTypes))
	for name := range c.entityTypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func checkVersion(version string) error {
	constraint, err := semver.NewConstraint("^" + SupportedVersion)
	if err != nil {
		return err
	}

	v, err := semver.NewVersion(version)
	if err != nil || !constraint.Check(v) {
		return errors.NewUnsupportedVersionError(version)
	}

	return nil
}

func newEntityType(ec EntityConfig) (*entities.EntityType, error) {
	if ec.Entity == "" {
		return nil, errors.NewInvalidSchemaError("entity name must not be empty")
	}

	fields := make([]schema.SchemaDecoratorFunc, 0, len(ec.Fields)+len(ec.Mutators))

	for _, fc := range ec.Fields {
		kind := fc.Kind
		if kind == "" {
			kind = attributes.KindAttr
		}

		mutate := []types.MutatorFunc{}
		if fc.Mutate != "" {
			m, err := mutators.Lookup(fc.Mutate)
			if err != nil {
				return nil, fmt.Errorf("failed to define entity %s: %w", ec.Entity, err)
			}
			mutate = append(mutate, m)
		}

		fields = append(fields, schema.Field(fc.Name, kind, fc.Default, mutate...))
	}

	for field, name := range ec.Mutators {
		m, err := mutators.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("failed to define entity %s: %w", ec.Entity, err)
		}
		fields = append(fields, schema.Mutator(field, m))
	}

	decorators := []entities.EntityDecoratorFunc{entities.Fields(fields...)}

	if ec.PrimaryKey != nil {
		decorators = append(decorators, entities.WithPrimaryKey(*ec.PrimaryKey))
	}

	if ec.LocalKey != "" {
		decorators = append(decorators, entities.LocalKey(ec.LocalKey))
	}

	return entities.New(ec.Entity, decorators...)
}
