package identity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diwise/entity-model/pkg/model/errors"
	"github.com/diwise/entity-model/pkg/model/types"
)

// DefaultKey is the primary key name used when an entity does not declare one
const DefaultKey string = "id"

// Separator joins the values of a composite key
const Separator string = "_"

// PrimaryKey is either a single field name or an ordered list of field names
type PrimaryKey struct {
	names     []string
	composite bool
}

func Default() PrimaryKey {
	return PrimaryKey{names: []string{DefaultKey}}
}

func Single(name string) (PrimaryKey, error) {
	if name == "" {
		return PrimaryKey{}, errors.NewInvalidPrimaryKeyError("primary key name must not be empty")
	}
	return PrimaryKey{names: []string{name}}, nil
}

// Composite creates a key whose value joins the given fields in declared order
func Composite(names ...string) (PrimaryKey, error) {
	if len(names) == 0 {
		return PrimaryKey{}, errors.NewInvalidPrimaryKeyError("composite primary key must name at least one field")
	}

	for _, n := range names {
		if n == "" {
			return PrimaryKey{}, errors.NewInvalidPrimaryKeyError("composite primary key contains an empty field name")
		}
	}

	return PrimaryKey{names: append([]string{}, names...), composite: true}, nil
}

func (pk PrimaryKey) IsComposite() bool {
	return pk.composite
}

func (pk PrimaryKey) Names() []string {
	if len(pk.names) == 0 {
		return []string{DefaultKey}
	}
	return append([]string{}, pk.names...)
}

func (pk PrimaryKey) String() string {
	if pk.composite {
		return "[" + strings.Join(pk.names, ", ") + "]"
	}
	return pk.Names()[0]
}

// Resolve computes the identity of a record. A single key returns the raw
// field value, a composite key returns the field values joined by Separator.
func (pk PrimaryKey) Resolve(record types.Getter) any {
	if !pk.composite {
		v, _ := record.Get(pk.Names()[0])
		return v
	}

	parts := make([]string, 0, len(pk.names))
	for _, n := range pk.names {
		v, _ := record.Get(n)
		parts = append(parts, format(v))
	}

	return strings.Join(parts, Separator)
}

// LocalKey returns the name of the field used as the local identifier. An
// explicit override wins, then a single primary key name, then DefaultKey.
func LocalKey(pk PrimaryKey, override string) string {
	if override != "" {
		return override
	}

	if !pk.composite && len(pk.names) == 1 {
		return pk.names[0]
	}

	return DefaultKey
}

// UnmarshalYAML accepts either a single field name or a list of field names
func (pk *PrimaryKey) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		key, err := Single(name)
		if err != nil {
			return err
		}
		*pk = key
		return nil
	}

	var names []string
	if err := unmarshal(&names); err != nil {
		return fmt.Errorf("primary key must be a field name or a list of field names: %w", err)
	}

	key, err := Composite(names...)
	if err != nil {
		return err
	}

	*pk = key
	return nil
}

// Map adapts a plain map so that it can be used with Resolve
type Map map[string]any

func (m Map) Get(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

func format(v any) string {
	switch typedValue := v.(type) {
	case nil:
		return ""
	case string:
		return typedValue
	case float64:
		return strconv.FormatFloat(typedValue, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typedValue), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", typedValue)
	}
}
