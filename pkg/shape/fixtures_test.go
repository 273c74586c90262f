// Where: pkg/shape/fixtures_test.go
// What: Small shapes used by the package tests.
package shape

import "time"

type testColor string

const (
	testColorRed  testColor = "red"
	testColorBlue testColor = "blue"
)

func (testColor) Values() []testColor {
	return []testColor{testColorRed, testColorBlue}
}

type testTag struct {
	Key   *string
	Value *string
}

func (*testTag) ShapeName() string { return "testTag" }

func (t *testTag) Members(m *Members) {
	String(m, "key", t.Key)
	String(m, "value", t.Value)
}

type testRecord struct {
	Name    *string
	Count   *int32
	Size    *int64
	Ratio   *float64
	Enabled *bool
	At      *time.Time
	Data    []byte
	Color   *testColor
	Labels  []string
	Colors  []testColor
	Tag     *testTag
	Tags    []testTag
	Options map[string]string
	Groups  map[string][]testTag
	Secret  *string
}

func (*testRecord) ShapeName() string { return "testRecord" }

func (r *testRecord) Members(m *Members) {
	String(m, "name", r.Name)
	Integer(m, "count", r.Count)
	Long(m, "size", r.Size)
	Double(m, "ratio", r.Ratio)
	Boolean(m, "enabled", r.Enabled)
	Timestamp(m, "at", r.At)
	Blob(m, "data", r.Data)
	Enum(m, "color", r.Color, testColor("").Values())
	StringList(m, "labels", r.Labels)
	EnumList(m, "colors", r.Colors, testColor("").Values())
	Struct(m, "tag", r.Tag)
	StructList(m, "tags", r.Tags)
	StringMap(m, "options", r.Options)
	StructListMap(m, "groups", r.Groups)
	String(m, "secret", r.Secret, Sensitive())
}

type testPair struct {
	A *string
	B *string
}

func (*testPair) ShapeName() string { return "testPair" }

func (p *testPair) Members(m *Members) {
	String(m, "a", p.A)
	String(m, "b", p.B)
}
