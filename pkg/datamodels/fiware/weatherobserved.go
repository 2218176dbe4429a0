package fiware

import (
	"maps"

	"github.com/diwise/entity-model/pkg/model/entities"
	ed "github.com/diwise/entity-model/pkg/model/entities/decorators"
)

var WeatherObserved = entities.Must(entities.New(WeatherObservedTypeName,
	entities.Fields(
		ed.ID(WeatherObservedIDPrefix),
		ed.Type(WeatherObservedTypeName),
		ed.DateObservedField(),
		ed.LocationField(),
		ed.RefDeviceField(DeviceIDPrefix),
		ed.Number("temperature"),
		ed.Number("relativeHumidity"),
		ed.Number("windSpeed"),
	),
))

// NewWeatherObserved creates a new instance of WeatherObserved
func NewWeatherObserved(observationID string, latitude, longitude float64, observedAt string, properties map[string]any) (*entities.Instance, error) {
	input := maps.Clone(properties)
	if input == nil {
		input = map[string]any{}
	}

	input[ed.DateObserved] = observedAt
	input[ed.Location] = Point(latitude, longitude)

	return newInstance(WeatherObserved, observationID, input)
}

// Point creates a GeoJSON point. Note that GeoJSON puts longitude first.
func Point(latitude, longitude float64) map[string]any {
	return map[string]any{
		"type":        "Point",
		"coordinates": []float64{longitude, latitude},
	}
}
