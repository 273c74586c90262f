// Where: pkg/shape/mutate.go
// What: Mutation helpers shared by model setters.
// Why: Keep list, map, and presence semantics identical across every model object.
package shape

import (
	"maps"
	"slices"
)

// Ptr returns a pointer to a copy of v. Scalars usually go through the
// aws.String family instead; Ptr covers enums and structures.
func Ptr[T any](v T) *T {
	return &v
}

// Append appends values to *dst, initializing an absent list first. Calling
// it with no values still makes the list present and empty.
func Append[T any](dst *[]T, values ...T) {
	if *dst == nil {
		*dst = make([]T, 0, len(values))
	}
	*dst = append(*dst, values...)
}

// CopyList returns a shallow copy of src. nil stays nil and an empty list
// stays present.
func CopyList[T any](src []T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// CopyMap returns a shallow copy of src. nil stays nil.
func CopyMap[K comparable, V any](src map[K]V) map[K]V {
	if src == nil {
		return nil
	}
	out := make(map[K]V, len(src))
	maps.Copy(out, src)
	return out
}

// AddEntry inserts key into *dst, initializing an absent map first. A key
// that is already present yields a *UsageError and leaves the map unchanged.
func AddEntry[K comparable, V any](dst *map[K]V, shapeName, member string, key K, value V) error {
	if *dst == nil {
		*dst = make(map[K]V)
	}
	if _, exists := (*dst)[key]; exists {
		return &UsageError{Shape: shapeName, Member: member, Key: key, Err: ErrDuplicateKey}
	}
	(*dst)[key] = value
	return nil
}

// IsKnown reports whether v is one of the values this build knows about.
// Unknown values remain valid input; the service decides.
func IsKnown[E ~string](v E, known []E) bool {
	return slices.Contains(known, v)
}
