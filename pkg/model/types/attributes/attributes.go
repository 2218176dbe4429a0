package attributes

import (
	"maps"
	"slices"

	"github.com/diwise/entity-model/pkg/model/types"
	"github.com/google/uuid"
	"github.com/zclconf/go-cty/cty"
)

const (
	KindAttr    string = "attr"
	KindString  string = "string"
	KindNumber  string = "number"
	KindBoolean string = "boolean"
	KindUID     string = "uid"
)

// AttributeImpl is the generic attribute. Values pass through unchanged.
type AttributeImpl struct {
	kind         string
	defaultValue any
	mutate       types.MutatorFunc
}

func (a AttributeImpl) Kind() string {
	return a.kind
}

// Default returns the declared default. Maps and slices are copied so that
// records never share a default with each other.
func (a AttributeImpl) Default() any {
	return copyValue(a.defaultValue)
}

func (a AttributeImpl) Mutator() types.MutatorFunc {
	return a.mutate
}

func (a AttributeImpl) Make(value any) any {
	return value
}

// NewAttr creates a generic attribute with the given default value
func NewAttr(defaultValue any, mutate types.MutatorFunc) types.Attribute {
	return AttributeImpl{kind: KindAttr, defaultValue: defaultValue, mutate: mutate}
}

// StringAttribute coerces values into strings
type StringAttribute struct {
	AttributeImpl
}

func (sa StringAttribute) Make(value any) any {
	if s, ok := coerce(value, cty.String); ok {
		return s
	}
	return sa.Default()
}

func NewString(defaultValue any, mutate types.MutatorFunc) types.Attribute {
	return StringAttribute{
		AttributeImpl: AttributeImpl{kind: KindString, defaultValue: defaultValue, mutate: mutate},
	}
}

// NumberAttribute coerces values into float64
type NumberAttribute struct {
	AttributeImpl
}

func (na NumberAttribute) Make(value any) any {
	if n, ok := coerce(value, cty.Number); ok {
		return n
	}
	return na.Default()
}

func NewNumber(defaultValue any, mutate types.MutatorFunc) types.Attribute {
	return NumberAttribute{
		AttributeImpl: AttributeImpl{kind: KindNumber, defaultValue: defaultValue, mutate: mutate},
	}
}

// BooleanAttribute coerces values into bool. Numbers are true when non zero
// and the empty string is false.
type BooleanAttribute struct {
	AttributeImpl
}

func (ba BooleanAttribute) Make(value any) any {
	switch typedValue := value.(type) {
	case float64:
		return typedValue != 0
	case int:
		return typedValue != 0
	case int64:
		return typedValue != 0
	case string:
		if typedValue == "" {
			return false
		}
	}

	if b, ok := coerce(value, cty.Bool); ok {
		return b
	}
	return ba.Default()
}

func NewBoolean(defaultValue any, mutate types.MutatorFunc) types.Attribute {
	return BooleanAttribute{
		AttributeImpl: AttributeImpl{kind: KindBoolean, defaultValue: defaultValue, mutate: mutate},
	}
}

// UIDAttribute generates a new unique id as its default unless an explicit
// default was declared
type UIDAttribute struct {
	AttributeImpl
}

func (ua UIDAttribute) Default() any {
	if ua.defaultValue != nil {
		return ua.defaultValue
	}
	return uuid.NewString()
}

func NewUID(defaultValue any, mutate types.MutatorFunc) types.Attribute {
	return UIDAttribute{
		AttributeImpl: AttributeImpl{kind: KindUID, defaultValue: defaultValue, mutate: mutate},
	}
}

func copyValue(value any) any {
	switch typedValue := value.(type) {
	case map[string]any:
		return maps.Clone(typedValue)
	case []any:
		return slices.Clone(typedValue)
	case []string:
		return slices.Clone(typedValue)
	default:
		return value
	}
}
