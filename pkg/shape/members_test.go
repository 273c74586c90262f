// Where: pkg/shape/members_test.go
// What: Tests for member descriptors.
// Why: Every other operation trusts the descriptor order and presence flags.
package shape

import (
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func TestCollectReportsDeclarationOrder(t *testing.T) {
	members := Collect(&testRecord{})
	var names []string
	for _, member := range members {
		names = append(names, member.Name)
		if member.Present {
			t.Fatalf("member %s must be absent on a fresh shape", member.Name)
		}
	}
	want := []string{
		"name", "count", "size", "ratio", "enabled", "at", "data", "color",
		"labels", "colors", "tag", "tags", "options", "groups", "secret",
	}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("unexpected member order: %v", names)
	}
}

func TestCollectNilShape(t *testing.T) {
	var r *testRecord
	if got := Collect(r); got != nil {
		t.Fatalf("expected nil members for nil shape, got %v", got)
	}
}

func TestCollectKinds(t *testing.T) {
	members := Collect(&testRecord{})
	kinds := map[string][2]Kind{}
	for _, member := range members {
		kinds[member.Name] = [2]Kind{member.Kind, member.Elem}
	}
	cases := map[string][2]Kind{
		"name":    {KindString, 0},
		"count":   {KindInteger, 0},
		"color":   {KindEnum, 0},
		"colors":  {KindList, KindEnum},
		"tag":     {KindStructure, 0},
		"tags":    {KindList, KindStructure},
		"options": {KindMap, KindString},
		"groups":  {KindMap, KindStructure},
	}
	for name, want := range cases {
		if got := kinds[name]; got != want {
			t.Fatalf("%s: expected kinds %v, got %v", name, want, got)
		}
	}
}

func TestEnumMemberStoresStringForm(t *testing.T) {
	color := testColorRed
	members := Collect(&testRecord{Color: &color})
	for _, member := range members {
		if member.Name != "color" {
			continue
		}
		if value, ok := member.Value.(string); !ok || value != "red" {
			t.Fatalf("expected string value red, got %#v", member.Value)
		}
		if !reflect.DeepEqual(member.Known, []string{"red", "blue"}) {
			t.Fatalf("unexpected known values: %v", member.Known)
		}
		return
	}
	t.Fatal("color member not found")
}

func TestStructMemberConstructor(t *testing.T) {
	for _, member := range Collect(&testRecord{}) {
		if member.Name != "tags" {
			continue
		}
		if member.New == nil {
			t.Fatal("expected constructor for structure list")
		}
		if got := member.New().ShapeName(); got != "testTag" {
			t.Fatalf("unexpected element shape %s", got)
		}
		return
	}
	t.Fatal("tags member not found")
}

func TestPresentEmptyValuesAreReported(t *testing.T) {
	r := &testRecord{
		Name:    aws.String(""),
		Count:   aws.Int32(0),
		Enabled: aws.Bool(false),
		Labels:  []string{},
		Options: map[string]string{},
	}
	present := map[string]bool{}
	for _, member := range Collect(r) {
		present[member.Name] = member.Present
	}
	for _, name := range []string{"name", "count", "enabled", "labels", "options"} {
		if !present[name] {
			t.Fatalf("%s must be present when set to its zero value", name)
		}
	}
	if present["tags"] {
		t.Fatal("tags must stay absent")
	}
}

func TestKindString(t *testing.T) {
	if KindStructure.String() != "structure" {
		t.Fatalf("unexpected kind name %q", KindStructure.String())
	}
	if Kind(99).String() != "unknown" {
		t.Fatalf("unexpected name for unknown kind")
	}
}
