package diwise

import (
	"maps"
	"strings"

	"github.com/diwise/entity-model/pkg/model/entities"
	ed "github.com/diwise/entity-model/pkg/model/entities/decorators"
	"github.com/diwise/entity-model/pkg/model/mutators"
	"github.com/diwise/entity-model/pkg/model/schema"
)

var ExerciseTrail = entities.Must(entities.New(ExerciseTrailTypeName,
	entities.Fields(
		ed.ID(ExerciseTrailIDPrefix),
		ed.Type(ExerciseTrailTypeName),
		ed.NameField(),
		ed.DescriptionField(),
		ed.Number("length", trailLength),
		ed.TextList("category"),
		ed.StatusField(),
		ed.LocationField(),
		ed.Text("areaServed"),
		ed.Text("source"),
		ed.DateCreatedField(),
		ed.DateModifiedField(),
	),
))

var SportsField = entities.Must(entities.New(SportsFieldTypeName,
	entities.Fields(
		ed.ID(SportsFieldIDPrefix),
		ed.Type(SportsFieldTypeName),
		ed.NameField(),
		ed.DescriptionField(),
		ed.TextList("category"),
		ed.LocationField(),
		schema.Boolean("publicAccess", false),
		ed.Text("source", mutators.Strings(strings.TrimSpace)),
		ed.DateCreatedField(),
		ed.DateModifiedField(),
		ed.DateTime("dateLastPreparation"),
	),
))

func NewExerciseTrail(id, name string, length float64, description string, properties map[string]any) *entities.Instance {
	input := map[string]any{}
	maps.Copy(input, properties)

	input["id"] = id
	input[ed.Name] = name
	input[ed.Description] = description
	input["length"] = length

	return ExerciseTrail.Make(input)
}

// trailLength drops lengths that are too short to be meaningful
func trailLength(v any) any {
	if l, ok := v.(float64); ok && l <= 0.1 {
		return nil
	}
	return v
}
