package fiware

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestNewDevice(t *testing.T) {
	is := is.New(t)

	d, err := NewDevice("sensor-1", map[string]any{"status": " OK ", "value": "t%3D12"})
	is.NoErr(err)

	is.Equal(d.ID(), DeviceIDPrefix+"sensor-1") // should prefix the id
	is.Equal(get(d, "type"), DeviceTypeName)
	is.Equal(get(d, "status"), " ok ")
	is.Equal(get(d, "category"), []any{})
}

func TestNewDeviceRequiresProperties(t *testing.T) {
	is := is.New(t)

	_, err := NewDevice("sensor-1", nil)
	is.True(err != nil) // should require at least one property
}

func TestDeviceIDIsOnlyPrefixedOnce(t *testing.T) {
	is := is.New(t)

	d := Device.Make(map[string]any{"id": DeviceIDPrefix + "sensor-1"})
	is.Equal(d.ID(), DeviceIDPrefix+"sensor-1")
}

func TestTypeCannotBeOverridden(t *testing.T) {
	is := is.New(t)

	d := Device.Make(map[string]any{"type": "Beach"})
	is.Equal(get(d, "type"), DeviceTypeName)
}

func TestNewBeach(t *testing.T) {
	is := is.New(t)

	b, err := NewBeach("omaha", "  Omaha Beach ", map[string]any{"dateCreated": "2024-05-01T08:00:00+02:00"})
	is.NoErr(err)

	is.Equal(b.ID(), BeachIDPrefix+"omaha")
	is.Equal(get(b, "name"), "  Omaha Beach ") // set after hydration, so not trimmed
	is.Equal(get(b, "dateCreated"), "2024-05-01T06:00:00Z")
	is.Equal(get(b, "dateModified"), nil)
}

func TestNewWeatherObserved(t *testing.T) {
	is := is.New(t)

	w, err := NewWeatherObserved("obs-1", 62.39, 17.30, "2024-05-01", map[string]any{"temperature": "12.5"})
	is.NoErr(err)

	is.Equal(get(w, "temperature"), 12.5)
	is.Equal(get(w, "dateObserved"), "2024-05-01T00:00:00Z")

	b, err := json.Marshal(get(w, "location"))
	is.NoErr(err)
	is.Equal(string(b), `{"coordinates":[17.3,62.39],"type":"Point"}`) // should put longitude first
}

func TestWaterConsumptionObservedHasCompositeKey(t *testing.T) {
	is := is.New(t)

	wco, err := NewWaterConsumptionObserved("wco-1", map[string]any{
		"refDevice":        "meter-7",
		"dateObserved":     "2024-05-01T10:00:00Z",
		"waterConsumption": 117,
	})
	is.NoErr(err)

	is.Equal(wco.ID(), DeviceIDPrefix+"meter-7_2024-05-01T10:00:00Z")
	is.Equal(get(wco, "unitCode"), "LTR")
	is.Equal(WaterConsumptionObserved.LocalKey(), "id")
}

func TestNewIndoorEnvironmentObserved(t *testing.T) {
	is := is.New(t)

	_, err := NewIndoorEnvironmentObserved("room-1", "2024-05-01T10:00:00Z", nil)
	is.True(err != nil)

	ieo, err := NewIndoorEnvironmentObserved("room-1", "2024-05-01T10:00:00Z", map[string]any{"peopleCount": 4})
	is.NoErr(err)
	is.Equal(ieo.ID(), IndoorEnvironmentObservedIDPrefix+"room-1")
	is.Equal(get(ieo, "peopleCount"), 4.0)
	is.Equal(get(ieo, "humidity"), nil)
}

func get(i interface{ Get(string) (any, bool) }, name string) any {
	v, _ := i.Get(name)
	return v
}
