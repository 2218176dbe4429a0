package fiware

import (
	"github.com/diwise/entity-model/pkg/model/entities"
	ed "github.com/diwise/entity-model/pkg/model/entities/decorators"
	"github.com/diwise/entity-model/pkg/model/schema"
)

// WaterConsumptionObserved is identified by the observing device and the time
// of the observation rather than by its id.
var WaterConsumptionObserved = entities.Must(entities.New(WaterConsumptionObservedTypeName,
	entities.CompositeKey(ed.RefDevice, ed.DateObserved),
	entities.Fields(
		ed.ID(WaterConsumptionObservedIDPrefix),
		ed.Type(WaterConsumptionObservedTypeName),
		ed.RefDeviceField(DeviceIDPrefix),
		ed.DateObservedField(),
		ed.Number("waterConsumption"),
		schema.String("unitCode", "LTR"),
	),
))

func NewWaterConsumptionObserved(entityID string, properties map[string]any) (*entities.Instance, error) {
	return newInstance(WaterConsumptionObserved, entityID, properties)
}
