// Where: pkg/shape/clone.go
// What: Deep copies of model objects.
// Why: Let callers hand a request to the transport and keep mutating their own copy.
package shape

import (
	"fmt"

	"github.com/mitchellh/copystructure"
)

// Clone returns a deep copy of s. Absent members stay absent and present
// empty lists or maps stay present.
func Clone[T Shape](s T) (T, error) {
	var zero T
	if isNil(s) {
		return s, nil
	}
	out, err := copystructure.Copy(s)
	if err != nil {
		return zero, fmt.Errorf("clone %s: %w", s.ShapeName(), err)
	}
	copied, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("clone %s: unexpected copy type %T", s.ShapeName(), out)
	}
	return copied, nil
}
