// Where: pkg/shape/equal_test.go
// What: Tests for structural equality and hashing.
// Why: Equality and hashing must agree for every presence combination.
package shape

import (
	"math"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func fullRecord() *testRecord {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	color := testColorBlue
	return &testRecord{
		Name:    aws.String("disk"),
		Count:   aws.Int32(3),
		Size:    aws.Int64(64),
		Ratio:   aws.Float64(0.5),
		Enabled: aws.Bool(true),
		At:      &at,
		Data:    []byte("abc"),
		Color:   &color,
		Labels:  []string{"a", "b"},
		Colors:  []testColor{testColorRed},
		Tag:     &testTag{Key: aws.String("k"), Value: aws.String("v")},
		Tags:    []testTag{{Key: aws.String("env")}},
		Options: map[string]string{"ttl": "300"},
		Groups:  map[string][]testTag{"g": {{Key: aws.String("x")}}},
		Secret:  aws.String("hunter2"),
	}
}

func TestEqualReflexiveAndNil(t *testing.T) {
	r := fullRecord()
	if !Equal(r, r) {
		t.Fatal("shape must equal itself")
	}
	if Equal(r, nil) || Equal(nil, r) {
		t.Fatal("shape must not equal nil")
	}
	var typedNil *testRecord
	if Equal(r, typedNil) {
		t.Fatal("shape must not equal a typed nil")
	}
	if !Equal(typedNil, nil) {
		t.Fatal("nil must equal nil")
	}
}

func TestEqualSymmetricAndHashConsistent(t *testing.T) {
	a, b := fullRecord(), fullRecord()
	if !Equal(a, b) || !Equal(b, a) {
		t.Fatal("identical records must be equal both ways")
	}
	if Hash(a) != Hash(b) {
		t.Fatalf("equal records must hash equal: %d != %d", Hash(a), Hash(b))
	}
}

func TestEqualDetectsDifferences(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(r *testRecord)
	}{
		{name: "absent vs empty string", mutate: func(r *testRecord) { r.Name = nil }},
		{name: "scalar value", mutate: func(r *testRecord) { r.Count = aws.Int32(4) }},
		{name: "blob bytes", mutate: func(r *testRecord) { r.Data = []byte("abd") }},
		{name: "enum value", mutate: func(r *testRecord) { c := testColorRed; r.Color = &c }},
		{name: "list element", mutate: func(r *testRecord) { r.Labels = []string{"a", "c"} }},
		{name: "empty list vs absent", mutate: func(r *testRecord) { r.Labels = nil }},
		{name: "nested shape", mutate: func(r *testRecord) { r.Tag.Value = aws.String("w") }},
		{name: "nested list", mutate: func(r *testRecord) { r.Tags[0].Value = aws.String("") }},
		{name: "map value", mutate: func(r *testRecord) { r.Options["ttl"] = "600" }},
		{name: "list-valued map", mutate: func(r *testRecord) { r.Groups["g"] = nil }},
		{name: "sensitive member", mutate: func(r *testRecord) { r.Secret = aws.String("other") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := fullRecord(), fullRecord()
			tc.mutate(b)
			if Equal(a, b) || Equal(b, a) {
				t.Fatalf("expected records to differ after %s", tc.name)
			}
		})
	}
}

func TestEqualPresentEmptyDiffersFromAbsent(t *testing.T) {
	a := &testRecord{Name: aws.String("")}
	b := &testRecord{}
	if Equal(a, b) {
		t.Fatal("empty string must not equal absent")
	}
	c := &testRecord{Labels: []string{}}
	if Equal(c, b) {
		t.Fatal("empty list must not equal absent")
	}
}

func TestEqualDifferentShapeTypes(t *testing.T) {
	tag := &testTag{Key: aws.String("a"), Value: aws.String("b")}
	pair := &testPair{A: aws.String("a"), B: aws.String("b")}
	if Equal(tag, pair) {
		t.Fatal("different shape types must never be equal")
	}
}

func TestEqualTimestampsAcrossZones(t *testing.T) {
	utc := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	tokyo := utc.In(time.FixedZone("JST", 9*60*60))
	a := &testRecord{At: &utc}
	b := &testRecord{At: &tokyo}
	if !Equal(a, b) {
		t.Fatal("same instant must compare equal across zones")
	}
	if Hash(a) != Hash(b) {
		t.Fatal("same instant must hash equal across zones")
	}
}

func TestEqualFloatsCompareByBits(t *testing.T) {
	nan := &testRecord{Ratio: aws.Float64(math.NaN())}
	if !Equal(nan, nan) || !Equal(nan, &testRecord{Ratio: aws.Float64(math.NaN())}) {
		t.Fatal("NaN members must compare equal")
	}

	pos := &testRecord{Ratio: aws.Float64(0)}
	neg := &testRecord{Ratio: aws.Float64(math.Copysign(0, -1))}
	if Equal(pos, neg) {
		t.Fatal("0 and -0 must differ")
	}
	if names := Diff(pos, neg); len(names) != 1 || names[0] != "ratio" {
		t.Fatalf("Diff() = %v, want [ratio]", names)
	}
}

func TestHashAbsentMembersContributeZero(t *testing.T) {
	var empty testPair
	// Two absent members fold to 31*(31*1+0)+0.
	if got := Hash(&empty); got != 961 {
		t.Fatalf("unexpected hash for empty pair: %d", got)
	}
	var nilPair *testPair
	if Hash(nilPair) != 0 {
		t.Fatal("nil shape must hash to zero")
	}
}

func TestHashOrderSensitive(t *testing.T) {
	a := &testPair{A: aws.String("x"), B: aws.String("y")}
	b := &testPair{A: aws.String("y"), B: aws.String("x")}
	if Hash(a) == Hash(b) {
		t.Fatal("swapping member values must change the hash")
	}
}

func TestHashMapOrderIndependent(t *testing.T) {
	a := &testRecord{Options: map[string]string{}}
	b := &testRecord{Options: map[string]string{}}
	keys := []string{"a", "b", "c", "d", "e"}
	for _, key := range keys {
		a.Options[key] = key + "1"
	}
	for i := len(keys) - 1; i >= 0; i-- {
		b.Options[keys[i]] = keys[i] + "1"
	}
	if Hash(a) != Hash(b) {
		t.Fatal("map insertion order must not affect the hash")
	}
}

func TestDiffNamesChangedMembers(t *testing.T) {
	a, b := fullRecord(), fullRecord()
	if got := Diff(a, b); got != nil {
		t.Fatalf("equal records have no diff: %v", got)
	}

	b.Count = aws.Int32(4)
	b.Options = nil
	b.Groups["g"][0].Value = aws.String("y")
	got := Diff(a, b)
	want := []string{"count", "options", "groups"}
	if len(got) != len(want) {
		t.Fatalf("unexpected diff: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected diff: %v", got)
		}
	}
}

func TestDiffAgainstNil(t *testing.T) {
	got := Diff(nil, &testPair{A: aws.String("l")})
	if len(got) != 2 || got[0] != "a" {
		t.Fatalf("nil side reports every member: %v", got)
	}
}
