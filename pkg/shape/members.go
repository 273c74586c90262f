// Where: pkg/shape/members.go
// What: Member descriptors enumerated by every model object.
// Why: Give equality, hashing, rendering, and tooling one ordered view of a shape.
package shape

import (
	"reflect"
	"time"
)

// Shape is implemented by every request, result, and nested value object.
// Members must report fields in declaration order.
type Shape interface {
	ShapeName() string
	Members(m *Members)
}

// Kind is the semantic type of a member.
type Kind int

const (
	KindString Kind = iota + 1
	KindInteger
	KindLong
	KindFloat
	KindDouble
	KindBoolean
	KindTimestamp
	KindBlob
	KindEnum
	KindList
	KindMap
	KindStructure
)

var kindNames = map[Kind]string{
	KindString:    "string",
	KindInteger:   "integer",
	KindLong:      "long",
	KindFloat:     "float",
	KindDouble:    "double",
	KindBoolean:   "boolean",
	KindTimestamp: "timestamp",
	KindBlob:      "blob",
	KindEnum:      "enum",
	KindList:      "list",
	KindMap:       "map",
	KindStructure: "structure",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Member describes one field of a shape.
//
// Value holds the dereferenced value when Present is true. Enum values are
// stored as plain strings, structure values as Shape, structure lists as
// []Shape, and list-valued maps as map[string][]Shape.
type Member struct {
	Name      string
	Kind      Kind
	Elem      Kind // element kind for lists and map values
	Known     []string
	Sensitive bool
	Present   bool
	Value     any
	New       func() Shape // constructs the structure type for structure members and elements
}

// Members accumulates descriptors while a shape enumerates its fields.
type Members struct {
	list []Member
}

func (m *Members) add(member Member, opts []Option) {
	for _, opt := range opts {
		opt(&member)
	}
	m.list = append(m.list, member)
}

// Option adjusts a member descriptor.
type Option func(*Member)

// Sensitive marks a member whose value must never be rendered.
func Sensitive() Option {
	return func(member *Member) {
		member.Sensitive = true
	}
}

// Collect returns the member descriptors of s in declaration order.
func Collect(s Shape) []Member {
	if isNil(s) {
		return nil
	}
	var m Members
	s.Members(&m)
	return m.list
}

func scalar[T any](m *Members, name string, kind Kind, v *T, opts []Option) {
	member := Member{Name: name, Kind: kind}
	if v != nil {
		member.Present = true
		member.Value = *v
	}
	m.add(member, opts)
}

// String describes a string member.
func String(m *Members, name string, v *string, opts ...Option) {
	scalar(m, name, KindString, v, opts)
}

// Integer describes a 32-bit integer member.
func Integer(m *Members, name string, v *int32, opts ...Option) {
	scalar(m, name, KindInteger, v, opts)
}

// Long describes a 64-bit integer member.
func Long(m *Members, name string, v *int64, opts ...Option) {
	scalar(m, name, KindLong, v, opts)
}

// Float describes a 32-bit float member.
func Float(m *Members, name string, v *float32, opts ...Option) {
	scalar(m, name, KindFloat, v, opts)
}

// Double describes a 64-bit float member.
func Double(m *Members, name string, v *float64, opts ...Option) {
	scalar(m, name, KindDouble, v, opts)
}

// Boolean describes a boolean member.
func Boolean(m *Members, name string, v *bool, opts ...Option) {
	scalar(m, name, KindBoolean, v, opts)
}

// Timestamp describes a timestamp member.
func Timestamp(m *Members, name string, v *time.Time, opts ...Option) {
	scalar(m, name, KindTimestamp, v, opts)
}

// Blob describes an opaque binary member. A nil slice is absent.
func Blob(m *Members, name string, v []byte, opts ...Option) {
	member := Member{Name: name, Kind: KindBlob}
	if v != nil {
		member.Present = true
		member.Value = v
	}
	m.add(member, opts)
}

// Enum describes an open enum member. The stored value is its string form.
func Enum[E ~string](m *Members, name string, v *E, known []E, opts ...Option) {
	member := Member{Name: name, Kind: KindEnum, Known: enumStrings(known)}
	if v != nil {
		member.Present = true
		member.Value = string(*v)
	}
	m.add(member, opts)
}

// Struct describes a nested structure member.
func Struct[T any, PT interface {
	*T
	Shape
}](m *Members, name string, v PT, opts ...Option) {
	member := Member{Name: name, Kind: KindStructure, New: newShape[T, PT]}
	if v != nil {
		member.Present = true
		member.Value = Shape(v)
	}
	m.add(member, opts)
}

// StringList describes a list of strings.
func StringList(m *Members, name string, v []string, opts ...Option) {
	member := Member{Name: name, Kind: KindList, Elem: KindString}
	if v != nil {
		member.Present = true
		member.Value = v
	}
	m.add(member, opts)
}

// EnumList describes a list of open enum values.
func EnumList[E ~string](m *Members, name string, v []E, known []E, opts ...Option) {
	member := Member{Name: name, Kind: KindList, Elem: KindEnum, Known: enumStrings(known)}
	if v != nil {
		member.Present = true
		member.Value = enumStrings(v)
	}
	m.add(member, opts)
}

// StructList describes a list of nested structures.
func StructList[T any, PT interface {
	*T
	Shape
}](m *Members, name string, v []T, opts ...Option) {
	member := Member{Name: name, Kind: KindList, Elem: KindStructure, New: newShape[T, PT]}
	if v != nil {
		member.Present = true
		member.Value = shapeList[T, PT](v)
	}
	m.add(member, opts)
}

// StringMap describes a string-to-string map member.
func StringMap(m *Members, name string, v map[string]string, opts ...Option) {
	member := Member{Name: name, Kind: KindMap, Elem: KindString}
	if v != nil {
		member.Present = true
		member.Value = v
	}
	m.add(member, opts)
}

// StructListMap describes a map whose values are lists of structures.
func StructListMap[T any, PT interface {
	*T
	Shape
}](m *Members, name string, v map[string][]T, opts ...Option) {
	member := Member{Name: name, Kind: KindMap, Elem: KindStructure, New: newShape[T, PT]}
	if v != nil {
		out := make(map[string][]Shape, len(v))
		for key, items := range v {
			if items == nil {
				out[key] = nil
				continue
			}
			out[key] = shapeList[T, PT](items)
		}
		member.Present = true
		member.Value = out
	}
	m.add(member, opts)
}

func newShape[T any, PT interface {
	*T
	Shape
}]() Shape {
	return PT(new(T))
}

func shapeList[T any, PT interface {
	*T
	Shape
}](v []T) []Shape {
	out := make([]Shape, len(v))
	for i := range v {
		out[i] = PT(&v[i])
	}
	return out
}

func enumStrings[E ~string](values []E) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = string(value)
	}
	return out
}

func isNil(s Shape) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
