package errors

import (
	"fmt"
)

var ErrUnknownAttributeKind = fmt.Errorf("unknown attribute kind")
var ErrUnknownField = fmt.Errorf("unknown field")
var ErrInvalidSchema = fmt.Errorf("invalid schema")
var ErrInvalidPrimaryKey = fmt.Errorf("invalid primary key")
var ErrUnknownMutator = fmt.Errorf("unknown mutator")
var ErrUnsupportedVersion = fmt.Errorf("unsupported version")
var ErrUnknownEntityType = fmt.Errorf("unknown entity type")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

// NewUnknownAttributeKindError is returned when a schema references an attribute
// kind that has no registered constructor. It signals a schema authoring bug and
// is never recovered from.
func NewUnknownAttributeKindError(kind string) error {
	return &myError{
		msg:    fmt.Sprintf("attribute kind \"%s\" is not registered", kind),
		target: ErrUnknownAttributeKind,
	}
}

func NewUnknownFieldError(entity, field string) error {
	return &myError{
		msg:    fmt.Sprintf("entity \"%s\" does not declare a field named \"%s\"", entity, field),
		target: ErrUnknownField,
	}
}

func NewInvalidSchemaError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInvalidSchema,
	}
}

func NewInvalidPrimaryKeyError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInvalidPrimaryKey,
	}
}

func NewUnknownMutatorError(name string) error {
	return &myError{
		msg:    fmt.Sprintf("mutator \"%s\" is not defined", name),
		target: ErrUnknownMutator,
	}
}

func NewUnsupportedVersionError(version string) error {
	return &myError{
		msg:    fmt.Sprintf("schema version %s is not supported", version),
		target: ErrUnsupportedVersion,
	}
}

func NewUnknownEntityTypeError(name string) error {
	return &myError{
		msg:    fmt.Sprintf("no entity type named %s in catalog", name),
		target: ErrUnknownEntityType,
	}
}
