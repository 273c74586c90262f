// Where: pkg/shape/equal.go
// What: Structural equality across model objects.
// Why: Absent compares equal only to absent, then values compare pairwise.
package shape

import (
	"bytes"
	"maps"
	"math"
	"reflect"
	"slices"
	"time"
)

// Equal reports whether a and b are the same concrete shape with pairwise
// equal members. A nil shape equals only another nil shape.
func Equal(a, b Shape) bool {
	aNil, bNil := isNil(a), isNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	left, right := Collect(a), Collect(b)
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if left[i].Present != right[i].Present {
			return false
		}
		if left[i].Present && !equalValue(left[i].Value, right[i].Value) {
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	switch x := a.(type) {
	case float32:
		// Floats compare by bits: NaN equals NaN, 0 and -0 differ.
		y, ok := b.(float32)
		return ok && math.Float32bits(x) == math.Float32bits(y)
	case float64:
		y, ok := b.(float64)
		return ok && math.Float64bits(x) == math.Float64bits(y)
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Equal(y)
	case []byte:
		y, ok := b.([]byte)
		return ok && bytes.Equal(x, y)
	case Shape:
		y, ok := b.(Shape)
		return ok && Equal(x, y)
	case []string:
		y, ok := b.([]string)
		return ok && slices.Equal(x, y)
	case []Shape:
		y, ok := b.([]Shape)
		return ok && equalShapes(x, y)
	case map[string]string:
		y, ok := b.(map[string]string)
		return ok && maps.Equal(x, y)
	case map[string][]Shape:
		y, ok := b.(map[string][]Shape)
		if !ok || len(x) != len(y) {
			return false
		}
		for key, items := range x {
			other, found := y[key]
			if !found || (items == nil) != (other == nil) || !equalShapes(items, other) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func equalShapes(a, b []Shape) bool {
	return slices.EqualFunc(a, b, Equal)
}

// Diff returns the names of top-level members that make a and b unequal.
// Shapes of different concrete types, or a nil on either side, report
// every member of the non-nil side.
func Diff(a, b Shape) []string {
	if Equal(a, b) {
		return nil
	}
	if isNil(a) || isNil(b) || reflect.TypeOf(a) != reflect.TypeOf(b) {
		side := a
		if isNil(a) {
			side = b
		}
		var names []string
		for _, member := range Collect(side) {
			names = append(names, member.Name)
		}
		return names
	}
	var names []string
	left, right := Collect(a), Collect(b)
	for i := range left {
		same := left[i].Present == right[i].Present &&
			(!left[i].Present || equalValue(left[i].Value, right[i].Value))
		if !same {
			names = append(names, left[i].Name)
		}
	}
	return names
}
