// Where: internal/fixture/audit.go
// What: Report enum values that this build does not know.
// Why: Unknown values are legal, but a typo in a fixture is worth a warning.
package fixture

import (
	"fmt"
	"slices"

	"github.com/poruru-code/lightsail-model/pkg/shape"
)

// Warning is an enum value outside the known set.
type Warning struct {
	Path  string
	Value string
	Known []string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %q is not a known value", w.Path, w.Value)
}

// AuditEnums walks every present enum member of s, including nested
// structures, and reports values missing from the member's known set.
func AuditEnums(s shape.Shape) []Warning {
	return auditShape(s, s.ShapeName(), nil)
}

func auditShape(s shape.Shape, path string, out []Warning) []Warning {
	for _, member := range shape.Collect(s) {
		if !member.Present {
			continue
		}
		memberPath := path + "." + member.Name
		switch value := member.Value.(type) {
		case string:
			if member.Kind == shape.KindEnum {
				out = auditValue(memberPath, value, member.Known, out)
			}
		case []string:
			if member.Elem == shape.KindEnum {
				for i, v := range value {
					out = auditValue(fmt.Sprintf("%s[%d]", memberPath, i), v, member.Known, out)
				}
			}
		case shape.Shape:
			out = auditShape(value, memberPath, out)
		case []shape.Shape:
			for i, item := range value {
				out = auditShape(item, fmt.Sprintf("%s[%d]", memberPath, i), out)
			}
		case map[string][]shape.Shape:
			for _, key := range sortedKeys(value) {
				for i, item := range value[key] {
					out = auditShape(item, fmt.Sprintf("%s[%s][%d]", memberPath, key, i), out)
				}
			}
		}
	}
	return out
}

func auditValue(path, value string, known []string, out []Warning) []Warning {
	if slices.Contains(known, value) {
		return out
	}
	return append(out, Warning{Path: path, Value: value, Known: known})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
