// Where: pkg/shape/render.go
// What: Diagnostic string form of model objects.
// Why: Logging needs a compact view listing only present members.
package shape

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Redacted replaces the value of sensitive members in rendered output.
const Redacted = "*** Sensitive Data Redacted ***"

// Render lists the present members of s in declaration order as
// "{name: value, name: value}". It is not a wire format.
func Render(s Shape) string {
	if isNil(s) {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for _, member := range Collect(s) {
		if !member.Present {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(member.Name)
		b.WriteString(": ")
		if member.Sensitive {
			b.WriteString(Redacted)
			continue
		}
		b.WriteString(renderValue(member.Value))
	}
	b.WriteByte('}')
	return b.String()
}

func renderValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case []byte:
		return base64.StdEncoding.EncodeToString(x)
	case Shape:
		return Render(x)
	case []string:
		return "[" + strings.Join(x, ", ") + "]"
	case []Shape:
		parts := make([]string, len(x))
		for i, item := range x {
			parts[i] = Render(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]string:
		keys := sortedKeys(x)
		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = key + "=" + x[key]
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case map[string][]Shape:
		keys := sortedKeys(x)
		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = key + "=" + renderValue(x[key])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(x)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
