package decorators

import (
	"strings"

	"github.com/diwise/entity-model/pkg/model/mutators"
	"github.com/diwise/entity-model/pkg/model/schema"
	"github.com/diwise/entity-model/pkg/model/types"
)

const (
	DateCreated  string = "dateCreated"
	DateModified string = "dateModified"
	DateObserved string = "dateObserved"

	Description string = "description"
	Location    string = "location"
	Name        string = "name"
	RefDevice   string = "refDevice"
	Status      string = "status"
)

// ID declares the id field. Supplied ids are given prefix unless they already have it.
func ID(prefix string) schema.SchemaDecoratorFunc {
	return schema.String("id", "", mutators.Prefix(prefix))
}

// Type declares a type field that always holds typeName
func Type(typeName string) schema.SchemaDecoratorFunc {
	return schema.String("type", typeName, func(any) any { return typeName })
}

func Text(name string, mutate ...types.MutatorFunc) schema.SchemaDecoratorFunc {
	return schema.String(name, "", mutate...)
}

func Number(name string, mutate ...types.MutatorFunc) schema.SchemaDecoratorFunc {
	return schema.Number(name, nil, mutate...)
}

func TextList(name string) schema.SchemaDecoratorFunc {
	return schema.Attr(name, []any{})
}

func DateTime(name string) schema.SchemaDecoratorFunc {
	return schema.String(name, nil, mutators.Strings(normalizeTimestamp))
}

func NameField() schema.SchemaDecoratorFunc {
	return Text(Name, mutators.Strings(strings.TrimSpace))
}

func DescriptionField() schema.SchemaDecoratorFunc {
	return Text(Description)
}

func StatusField() schema.SchemaDecoratorFunc {
	return Text(Status, mutators.Strings(strings.ToLower))
}

func LocationField() schema.SchemaDecoratorFunc {
	return schema.Attr(Location, nil)
}

func RefDeviceField(prefix string) schema.SchemaDecoratorFunc {
	return schema.String(RefDevice, nil, mutators.Prefix(prefix))
}

func DateObservedField() schema.SchemaDecoratorFunc {
	return DateTime(DateObserved)
}

func DateCreatedField() schema.SchemaDecoratorFunc {
	return DateTime(DateCreated)
}

func DateModifiedField() schema.SchemaDecoratorFunc {
	return DateTime(DateModified)
}
