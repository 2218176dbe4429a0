package fiware

import (
	"fmt"
	"maps"

	"github.com/diwise/entity-model/pkg/model/entities"
)

// newInstance hydrates properties with id set to entityID. At least one property
// besides the id must be supplied.
func newInstance(et *entities.EntityType, entityID string, properties map[string]any) (*entities.Instance, error) {
	if len(properties) == 0 {
		return nil, fmt.Errorf("at least one property must be set in a %s entity", et.Name())
	}

	input := maps.Clone(properties)
	input["id"] = entityID

	return et.Make(input), nil
}
