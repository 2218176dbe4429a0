package attributes

import (
	"fmt"
	"slices"

	"github.com/diwise/entity-model/pkg/model/errors"
	"github.com/diwise/entity-model/pkg/model/types"
)

// Constructor creates an attribute of a specific kind
type Constructor func(defaultValue any, mutate types.MutatorFunc) types.Attribute

var constructors = map[string]Constructor{
	KindAttr:    NewAttr,
	KindString:  NewString,
	KindNumber:  NewNumber,
	KindBoolean: NewBoolean,
	KindUID:     NewUID,
}

// Register adds a constructor for a new attribute kind. Registration must be
// completed before any schema is hydrated and a kind can only be registered once.
func Register(kind string, ctor Constructor) {
	if _, ok := constructors[kind]; ok {
		panic(fmt.Sprintf("attribute kind %s registered twice", kind))
	}

	constructors[kind] = ctor
}

// Resolve returns the constructor registered for kind
func Resolve(kind string) (Constructor, error) {
	ctor, ok := constructors[kind]
	if !ok {
		return nil, errors.NewUnknownAttributeKindError(kind)
	}

	return ctor, nil
}

// Create resolves the constructor for kind and builds an attribute with it
func Create(kind string, defaultValue any, mutate ...types.MutatorFunc) (types.Attribute, error) {
	ctor, err := Resolve(kind)
	if err != nil {
		return nil, err
	}

	var m types.MutatorFunc
	if len(mutate) > 0 {
		m = mutate[0]
	}

	return ctor(defaultValue, m), nil
}

func Kinds() []string {
	kinds := make([]string, 0, len(constructors))
	for k := range constructors {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
