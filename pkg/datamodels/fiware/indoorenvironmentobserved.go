package fiware

import (
	"maps"

	"github.com/diwise/entity-model/pkg/model/entities"
	ed "github.com/diwise/entity-model/pkg/model/entities/decorators"
)

var IndoorEnvironmentObserved = entities.Must(entities.New(IndoorEnvironmentObservedTypeName,
	entities.Fields(
		ed.ID(IndoorEnvironmentObservedIDPrefix),
		ed.Type(IndoorEnvironmentObservedTypeName),
		ed.DateObservedField(),
		ed.RefDeviceField(DeviceIDPrefix),
		ed.Number("temperature"),
		ed.Number("humidity"),
		ed.Number("illuminance"),
		ed.Number("peopleCount"),
	),
))

func NewIndoorEnvironmentObserved(id, dateObserved string, properties map[string]any) (*entities.Instance, error) {
	if len(properties) == 0 {
		return newInstance(IndoorEnvironmentObserved, id, nil)
	}

	input := maps.Clone(properties)
	input[ed.DateObserved] = dateObserved

	return newInstance(IndoorEnvironmentObserved, id, input)
}
