package catalog

import (
	"fmt"
	"io"

	"github.com/diwise/entity-model/pkg/model/identity"
	yaml "gopkg.in/yaml.v2"
)

type FieldConfig struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Default any    `yaml:"default"`
	Mutate  string `yaml:"mutate"`
}

type EntityConfig struct {
	Entity     string               `yaml:"entity"`
	PrimaryKey *identity.PrimaryKey `yaml:"primaryKey"`
	LocalKey   string               `yaml:"localKey"`
	Fields     []FieldConfig        `yaml:"fields"`
	Mutators   map[string]string    `yaml:"mutators"`
}

type Config struct {
	Version  string         `yaml:"version"`
	Entities []EntityConfig `yaml:"entities"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return nil, err
	}

	for i := range cfg.Entities {
		for j := range cfg.Entities[i].Fields {
			f := &cfg.Entities[i].Fields[j]
			if f.Default, err = normalize(f.Default); err != nil {
				return nil, fmt.Errorf("bad default for %s.%s: %w", cfg.Entities[i].Entity, f.Name, err)
			}
		}
	}

	return cfg, nil
}

// normalize rewrites the map[interface{}]interface{} values produced by yaml.v2
// into map[string]any so that defaults can be serialized as json.
func normalize(value any) (any, error) {
	switch v := value.(type) {
	case map[any]any:
		m := make(map[string]any, len(v))
		for key, item := range v {
			k, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("map key %v is not a string", key)
			}

			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return m, nil
	case []any:
		s := make([]any, len(v))
		for i, item := range v {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			s[i] = n
		}
		return s, nil
	default:
		return value, nil
	}
}
