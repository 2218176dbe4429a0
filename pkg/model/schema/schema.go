package schema

import (
	"fmt"
	"maps"
	"slices"

	"github.com/diwise/entity-model/pkg/model/errors"
	"github.com/diwise/entity-model/pkg/model/types"
	"github.com/diwise/entity-model/pkg/model/types/attributes"
	"github.com/diwise/entity-model/pkg/model/types/records"
)

type SchemaDecoratorFunc func(s *Schema) error

// FieldDef binds a field name to its attribute declaration
type FieldDef struct {
	Name      string
	Attribute types.Attribute
}

// Schema is the ordered set of fields of one entity type together with the
// entity level mutators. A Schema is immutable once New has returned.
type Schema struct {
	fields   []FieldDef
	index    map[string]int
	mutators map[string]types.MutatorFunc
}

func New(decorators ...SchemaDecoratorFunc) (*Schema, error) {
	s := &Schema{
		fields:   []FieldDef{},
		index:    map[string]int{},
		mutators: map[string]types.MutatorFunc{},
	}

	for _, decorator := range decorators {
		if err := decorator(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func Declare(name string, attribute types.Attribute) SchemaDecoratorFunc {
	return func(s *Schema) error {
		if name == "" {
			return errors.NewInvalidSchemaError("field name must not be empty")
		}

		if _, exists := s.index[name]; exists {
			return errors.NewInvalidSchemaError(fmt.Sprintf("field %s is declared more than once", name))
		}

		if attribute == nil {
			return errors.NewInvalidSchemaError(fmt.Sprintf("field %s has no attribute", name))
		}

		s.index[name] = len(s.fields)
		s.fields = append(s.fields, FieldDef{Name: name, Attribute: attribute})

		return nil
	}
}

// Field declares a field using the attribute constructor registered for kind
func Field(name, kind string, defaultValue any, mutate ...types.MutatorFunc) SchemaDecoratorFunc {
	return func(s *Schema) error {
		attribute, err := attributes.Create(kind, defaultValue, mutate...)
		if err != nil {
			return fmt.Errorf("failed to declare field %s: %w", name, err)
		}

		return Declare(name, attribute)(s)
	}
}

func Attr(name string, defaultValue any, mutate ...types.MutatorFunc) SchemaDecoratorFunc {
	return Field(name, attributes.KindAttr, defaultValue, mutate...)
}

func String(name string, defaultValue any, mutate ...types.MutatorFunc) SchemaDecoratorFunc {
	return Field(name, attributes.KindString, defaultValue, mutate...)
}

func Number(name string, defaultValue any, mutate ...types.MutatorFunc) SchemaDecoratorFunc {
	return Field(name, attributes.KindNumber, defaultValue, mutate...)
}

func Boolean(name string, defaultValue any, mutate ...types.MutatorFunc) SchemaDecoratorFunc {
	return Field(name, attributes.KindBoolean, defaultValue, mutate...)
}

func UID(name string, mutate ...types.MutatorFunc) SchemaDecoratorFunc {
	return Field(name, attributes.KindUID, nil, mutate...)
}

// Mutator registers an entity level mutator. It is only used for fields that
// do not declare a mutator of their own.
func Mutator(name string, fn types.MutatorFunc) SchemaDecoratorFunc {
	return func(s *Schema) error {
		if fn == nil {
			return errors.NewInvalidSchemaError(fmt.Sprintf("mutator for %s must not be nil", name))
		}

		s.mutators[name] = fn
		return nil
	}
}

func (s *Schema) Fields() []FieldDef {
	return slices.Clone(s.fields)
}

func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.Name)
	}
	return names
}

func (s *Schema) Field(name string) (types.Attribute, bool) {
	idx, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[idx].Attribute, true
}

func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

func (s *Schema) Len() int {
	return len(s.fields)
}

func (s *Schema) Mutators() map[string]types.MutatorFunc {
	return maps.Clone(s.mutators)
}

// Hydrate builds a complete record from a partial input. Every declared field
// gets its default unless the input supplies a value, in which case the field
// mutator, or failing that the entity mutator, is applied. Input keys that are
// not declared are dropped.
func (s *Schema) Hydrate(input map[string]any) records.Record {
	r := records.New(len(s.fields))

	for _, f := range s.fields {
		value, supplied := input[f.Name]
		if !supplied {
			value = f.Attribute.Default()
		}

		value = f.Attribute.Make(value)

		if supplied {
			value = s.mutate(f, value)
		}

		r.Set(f.Name, value)
	}

	return r
}

func (s *Schema) mutate(f FieldDef, value any) any {
	if m := f.Attribute.Mutator(); m != nil {
		return m(value)
	}

	if m, ok := s.mutators[f.Name]; ok {
		return m(value)
	}

	return value
}
