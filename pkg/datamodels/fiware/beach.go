package fiware

import (
	"github.com/diwise/entity-model/pkg/model/entities"
	ed "github.com/diwise/entity-model/pkg/model/entities/decorators"
)

var Beach = entities.Must(entities.New(BeachTypeName,
	entities.Fields(
		ed.ID(BeachIDPrefix),
		ed.Type(BeachTypeName),
		ed.NameField(),
		ed.DescriptionField(),
		ed.LocationField(),
		ed.TextList("refSeeAlso"),
		ed.DateCreatedField(),
		ed.DateModifiedField(),
	),
))

// NewBeach creates a new instance of Beach
func NewBeach(entityID, name string, properties map[string]any) (*entities.Instance, error) {
	b, err := newInstance(Beach, entityID, properties)
	if err != nil {
		return nil, err
	}

	return b, b.Set(ed.Name, name)
}
