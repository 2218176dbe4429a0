package entities

import (
	"encoding/json"
	"fmt"

	"github.com/diwise/entity-model/pkg/model/errors"
	"github.com/diwise/entity-model/pkg/model/identity"
	"github.com/diwise/entity-model/pkg/model/schema"
	"github.com/diwise/entity-model/pkg/model/types"
	"github.com/diwise/entity-model/pkg/model/types/attributes"
	"github.com/diwise/entity-model/pkg/model/types/records"
)

// IDField is the name of the derived identity marker added on serialization
const IDField string = "$id"

type EntityDecoratorFunc func(et *EntityType) error

// EntityType describes one kind of modeled object: its schema, its primary key
// and the name it is known by.
type EntityType struct {
	name       string
	schema     *schema.Schema
	primaryKey identity.PrimaryKey
	localKey   string
}

func New(name string, decorators ...EntityDecoratorFunc) (*EntityType, error) {
	et := &EntityType{
		name:       name,
		primaryKey: identity.Default(),
	}

	for _, decorator := range decorators {
		if err := decorator(et); err != nil {
			return nil, fmt.Errorf("failed to define entity %s: %w", name, err)
		}
	}

	// entities without a declared schema get an empty one
	if et.schema == nil {
		et.schema, _ = schema.New()
	}

	return et, nil
}

// Must panics if err is not nil. It is intended for package level entity
// definitions where an invalid schema is a programming error.
func Must(et *EntityType, err error) *EntityType {
	if err != nil {
		panic(err)
	}
	return et
}

// Fields builds the schema of the entity type from field declarations
func Fields(decorators ...schema.SchemaDecoratorFunc) EntityDecoratorFunc {
	return func(et *EntityType) error {
		s, err := schema.New(decorators...)
		if err != nil {
			return err
		}
		et.schema = s
		return nil
	}
}

func WithSchema(s *schema.Schema) EntityDecoratorFunc {
	return func(et *EntityType) error {
		if s == nil {
			return errors.NewInvalidSchemaError("schema must not be nil")
		}
		et.schema = s
		return nil
	}
}

func PrimaryKey(name string) EntityDecoratorFunc {
	return func(et *EntityType) (err error) {
		et.primaryKey, err = identity.Single(name)
		return
	}
}

func CompositeKey(names ...string) EntityDecoratorFunc {
	return func(et *EntityType) (err error) {
		et.primaryKey, err = identity.Composite(names...)
		return
	}
}

func WithPrimaryKey(pk identity.PrimaryKey) EntityDecoratorFunc {
	return func(et *EntityType) error {
		et.primaryKey = pk
		return nil
	}
}

// LocalKey overrides the name reported by EntityType.LocalKey
func LocalKey(name string) EntityDecoratorFunc {
	return func(et *EntityType) error {
		et.localKey = name
		return nil
	}
}

func (et *EntityType) Name() string {
	return et.name
}

func (et *EntityType) Schema() *schema.Schema {
	return et.schema
}

func (et *EntityType) Fields() []schema.FieldDef {
	return et.schema.Fields()
}

func (et *EntityType) Mutators() map[string]types.MutatorFunc {
	return et.schema.Mutators()
}

func (et *EntityType) PrimaryKey() identity.PrimaryKey {
	return et.primaryKey
}

// Make hydrates input into a new instance of this entity type
func (et *EntityType) Make(input map[string]any) *Instance {
	return &Instance{
		entityType: et,
		record:     et.schema.Hydrate(input),
	}
}

func (et *EntityType) MakeFromJSON(body []byte) (*Instance, error) {
	input := map[string]any{}

	err := json.Unmarshal(body, &input)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", et.name, err)
	}

	return et.Make(input), nil
}

// MakePlain hydrates input into a plain record that carries no entity identity
func (et *EntityType) MakePlain(input map[string]any) records.Record {
	return et.schema.Hydrate(input)
}

// ID resolves the identity of a record, instance or map without constructing
// an instance first.
func (et *EntityType) ID(record any) any {
	switch r := record.(type) {
	case map[string]any:
		return et.primaryKey.Resolve(identity.Map(r))
	case *Instance:
		return et.primaryKey.Resolve(r.record)
	case types.Getter:
		return et.primaryKey.Resolve(r)
	default:
		return nil
	}
}

func (et *EntityType) LocalKey() string {
	return identity.LocalKey(et.primaryKey, et.localKey)
}

func (et *EntityType) GetAttributeClass(kind string) (attributes.Constructor, error) {
	return attributes.Resolve(kind)
}

// Instance is a hydrated record owned by, and tagged with, its entity type
type Instance struct {
	entityType *EntityType
	record     records.Record
}

func (i *Instance) Type() *EntityType {
	return i.entityType
}

func (i *Instance) InstanceOf(et *EntityType) bool {
	return i != nil && et != nil && i.entityType == et
}

func (i *Instance) Fields() []schema.FieldDef {
	return i.entityType.Fields()
}

func (i *Instance) Get(name string) (any, bool) {
	return i.record.Get(name)
}

// Set reassigns the value of a declared field. The set of fields is fixed at
// creation, so undeclared names are rejected.
func (i *Instance) Set(name string, value any) error {
	if !i.record.Has(name) {
		return errors.NewUnknownFieldError(i.entityType.name, name)
	}

	i.record.Set(name, value)
	return nil
}

func (i *Instance) Record() records.Record {
	return i.record.Clone()
}

func (i *Instance) ID() any {
	return i.entityType.primaryKey.Resolve(i.record)
}

// ToJSON projects the instance into a plain record holding the resolved
// identity followed by the declared fields in schema order.
func (i *Instance) ToJSON() records.Record {
	r := records.New(i.record.Len() + 1)
	r.Set(IDField, i.ID())

	i.record.Each(func(name string, value any) {
		r.Set(name, value)
	})

	return r
}

func (i *Instance) MarshalJSON() ([]byte, error) {
	return i.ToJSON().MarshalJSON()
}
