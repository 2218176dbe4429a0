package types

// MutatorFunc transforms a single field value during hydration.
type MutatorFunc func(value any) any

// Attribute declares one field of an entity: its kind, its default value and
// an optional field level mutator.
type Attribute interface {
	Kind() string
	Default() any
	Mutator() MutatorFunc
	Make(value any) any
}

type Getter interface {
	Get(name string) (any, bool)
}
