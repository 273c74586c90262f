// Where: internal/fixture/load.go
// What: Decode YAML or JSON fixtures into Lightsail model objects.
// Why: Let developers inspect models from hand-written files without code.
package fixture

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/poruru-code/lightsail-model/internal/catalog"
	"github.com/poruru-code/lightsail-model/pkg/shape"
	"sigs.k8s.io/yaml"
)

// Load resolves name in the catalog, validates content against the derived
// schema, and decodes it into a fresh model object.
func Load(name string, content []byte) (shape.Shape, error) {
	s, err := catalog.New(name)
	if err != nil {
		return nil, err
	}
	if err := Validate(s, content); err != nil {
		return nil, err
	}
	if err := Decode(s, content); err != nil {
		return nil, err
	}
	return s, nil
}

// Decode fills s from YAML or JSON content keyed by member name. It does not
// validate; unknown keys are ignored. A key repeated within one mapping is
// an error, so map entries are never silently replaced.
func Decode(s shape.Shape, content []byte) error {
	data, err := toJSON(content)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("decode %s fixture: %w", s.ShapeName(), err)
	}
	return nil
}

func toJSON(content []byte) ([]byte, error) {
	data, err := yaml.YAMLToJSONStrict(content)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}
	return data, nil
}
