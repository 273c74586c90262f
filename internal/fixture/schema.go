// Where: internal/fixture/schema.go
// What: JSON Schema derived from model member descriptors.
// Why: Catch misspelled members and wrong value types before decoding.
package fixture

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

const schemaDialect = "https://json-schema.org/draft/2020-12/schema"

// Schema builds a JSON Schema document for s. Nested structures are placed
// under $defs by shape name. Enum members are plain strings because the
// service may return values this build does not know.
func Schema(s shape.Shape) map[string]any {
	defs := map[string]any{}
	root := objectSchema(s, defs)
	root["$schema"] = schemaDialect
	root["title"] = s.ShapeName()
	if len(defs) > 0 {
		root["$defs"] = defs
	}
	return root
}

// SchemaJSON renders Schema(s) as indented JSON.
func SchemaJSON(s shape.Shape) ([]byte, error) {
	payload, err := json.MarshalIndent(Schema(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s schema: %w", s.ShapeName(), err)
	}
	return payload, nil
}

func objectSchema(s shape.Shape, defs map[string]any) map[string]any {
	properties := map[string]any{}
	for _, member := range shape.Collect(s) {
		properties[member.Name] = memberSchema(member, defs)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
}

func memberSchema(member shape.Member, defs map[string]any) map[string]any {
	switch member.Kind {
	case shape.KindList:
		return map[string]any{
			"type":  "array",
			"items": elemSchema(member, defs),
		}
	case shape.KindMap:
		return map[string]any{
			"type":                 "object",
			"additionalProperties": elemSchema(member, defs),
		}
	case shape.KindStructure:
		return refSchema(member, defs)
	default:
		return kindSchema(member.Kind, member.Known)
	}
}

func elemSchema(member shape.Member, defs map[string]any) map[string]any {
	if member.Elem != shape.KindStructure {
		return kindSchema(member.Elem, member.Known)
	}
	ref := refSchema(member, defs)
	if member.Kind == shape.KindMap {
		// Map values of structure kind are lists of structures.
		return map[string]any{"type": "array", "items": ref}
	}
	return ref
}

func refSchema(member shape.Member, defs map[string]any) map[string]any {
	nested := member.New()
	name := nested.ShapeName()
	if _, ok := defs[name]; !ok {
		// Reserve the slot first so self-referencing shapes terminate.
		defs[name] = map[string]any{}
		defs[name] = objectSchema(nested, defs)
	}
	return map[string]any{"$ref": "#/$defs/" + name}
}

func kindSchema(kind shape.Kind, known []string) map[string]any {
	switch kind {
	case shape.KindInteger:
		return map[string]any{"type": "integer", "minimum": math.MinInt32, "maximum": math.MaxInt32}
	case shape.KindLong:
		return map[string]any{"type": "integer"}
	case shape.KindFloat, shape.KindDouble:
		return map[string]any{"type": "number"}
	case shape.KindBoolean:
		return map[string]any{"type": "boolean"}
	case shape.KindTimestamp:
		return map[string]any{"type": "string", "format": "date-time"}
	case shape.KindBlob:
		return map[string]any{"type": "string", "contentEncoding": "base64"}
	case shape.KindEnum:
		out := map[string]any{"type": "string"}
		if len(known) > 0 {
			out["examples"] = known
		}
		return out
	default:
		return map[string]any{"type": "string"}
	}
}
