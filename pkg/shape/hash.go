// Where: pkg/shape/hash.go
// What: Order-sensitive hashing consistent with Equal.
package shape

import (
	"time"

	"github.com/mitchellh/hashstructure/v2"
)

const hashPrime = 31

// Hash folds the member hashes of s in declaration order. Absent members
// contribute zero, so equal shapes always hash equal.
func Hash(s Shape) uint64 {
	if isNil(s) {
		return 0
	}
	h := uint64(1)
	for _, member := range Collect(s) {
		var value uint64
		if member.Present {
			value = hashValue(member.Value)
		}
		h = hashPrime*h + value
	}
	return h
}

func hashValue(v any) uint64 {
	switch x := v.(type) {
	case time.Time:
		// Equal instants in different zones must hash equal.
		return leafHash(x.UTC().UnixNano())
	case Shape:
		return Hash(x)
	case []string:
		h := uint64(1)
		for _, item := range x {
			h = hashPrime*h + leafHash(item)
		}
		return h
	case []Shape:
		h := uint64(1)
		for _, item := range x {
			h = hashPrime*h + Hash(item)
		}
		return h
	case map[string]string:
		var h uint64
		for key, value := range x {
			h += leafHash(key) ^ leafHash(value)
		}
		return h
	case map[string][]Shape:
		var h uint64
		for key, items := range x {
			h += leafHash(key) ^ hashValue(items)
		}
		return h
	default:
		return leafHash(x)
	}
}

func leafHash(v any) uint64 {
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return h
}
