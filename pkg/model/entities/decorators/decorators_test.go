package decorators

import (
	"testing"

	"github.com/diwise/entity-model/pkg/model/schema"
	"github.com/matryer/is"
)

func TestNormalizeTimestamp(t *testing.T) {
	is := is.New(t)

	is.Equal(normalizeTimestamp("2021-05-23T23:14:16.000Z"), "2021-05-23T23:14:16Z")
	is.Equal(normalizeTimestamp("2021-05-23T23:14:16+02:00"), "2021-05-23T21:14:16Z")
	is.Equal(normalizeTimestamp("2021-05-23"), "2021-05-23T00:00:00Z")
	is.Equal(normalizeTimestamp("yesterday"), "yesterday") // should keep unparseable values
}

func TestCommonFields(t *testing.T) {
	is := is.New(t)

	s, err := schema.New(
		ID("urn:ngsi-ld:Lifebuoy:"),
		Type("Lifebuoy"),
		NameField(),
		StatusField(),
		DateObservedField(),
	)
	is.NoErr(err)

	r := s.Hydrate(map[string]any{
		"id":           "mybuoy",
		"type":         "SomethingElse",
		"name":         "  Buoy 1 ",
		"status":       "OFF",
		"dateObserved": "2022-02-13T21:33:42.123Z",
	})

	is.Equal(r.Keys(), []string{"id", "type", "name", "status", "dateObserved"})
	is.Equal(r.AsMap(), map[string]any{
		"id":           "urn:ngsi-ld:Lifebuoy:mybuoy",
		"type":         "Lifebuoy", // should not be overridden by input
		"name":         "Buoy 1",
		"status":       "off",
		"dateObserved": "2022-02-13T21:33:42Z",
	})
}

func TestTypeDefaultIsSetWithoutInput(t *testing.T) {
	is := is.New(t)

	s, err := schema.New(Type("Lifebuoy"), DateObservedField(), TextList("category"))
	is.NoErr(err)

	r := s.Hydrate(nil)
	is.Equal(r.AsMap(), map[string]any{"type": "Lifebuoy", "dateObserved": nil, "category": []any{}})
}
