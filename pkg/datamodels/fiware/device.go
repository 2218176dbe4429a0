package fiware

import (
	"github.com/diwise/entity-model/pkg/model/entities"
	ed "github.com/diwise/entity-model/pkg/model/entities/decorators"
	"github.com/diwise/entity-model/pkg/model/schema"
)

var Device = entities.Must(entities.New(DeviceTypeName,
	entities.Fields(
		ed.ID(DeviceIDPrefix),
		ed.Type(DeviceTypeName),
		ed.NameField(),
		ed.DescriptionField(),
		ed.StatusField(),
		ed.Text("value"),
		ed.TextList("category"),
		ed.LocationField(),
		ed.DateTime("dateLastValueReported"),
		schema.Number("batteryLevel", nil),
	),
))

// NewDevice creates a new instance of Device
func NewDevice(entityID string, properties map[string]any) (*entities.Instance, error) {
	return newInstance(Device, entityID, properties)
}
