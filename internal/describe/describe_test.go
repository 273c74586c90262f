// Where: internal/describe/describe_test.go
// What: Tests for the member table renderer.
package describe

import (
	"strings"
	"testing"

	"github.com/poruru-code/lightsail-model/pkg/lightsail"
)

func TestDescribeTag(t *testing.T) {
	got, err := Describe(new(lightsail.Tag))
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	want := "Tag\n===\nkey    string\nvalue  string\n"
	if got != want {
		t.Fatalf("unexpected table:\n%q\nwant:\n%q", got, want)
	}
}

func TestDescribeListsKindsAndValues(t *testing.T) {
	got, err := Describe(new(lightsail.PutAlarmRequest))
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	for _, fragment := range []string{
		"contactProtocols",
		"list<enum>",
		"values: Email, SMS",
		"threshold",
		"double",
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("table should contain %q:\n%s", fragment, got)
		}
	}
}

func TestDescribeMarksSensitiveMembers(t *testing.T) {
	got, err := Describe(new(lightsail.CreateRelationalDatabaseRequest))
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "masterUserPassword ") {
			if !strings.HasSuffix(line, "string (sensitive)") {
				t.Fatalf("password must be flagged: %q", line)
			}
			return
		}
	}
	t.Fatalf("password row missing:\n%s", got)
}

func TestTypeNameForNestedMembers(t *testing.T) {
	rows := Rows(new(lightsail.CreateInstancesFromSnapshotRequest))
	types := map[string]string{}
	for _, row := range rows {
		types[row.Name] = row.Type
	}
	cases := map[string]string{
		"instanceNames":                   "list<string>",
		"attachedDiskMapping":             "map<string, list<structure DiskMap>>",
		"tags":                            "list<structure Tag>",
		"useLatestRestorableAutoSnapshot": "boolean",
	}
	for name, want := range cases {
		if types[name] != want {
			t.Fatalf("%s: got %q, want %q", name, types[name], want)
		}
	}

	rows = Rows(new(lightsail.Disk))
	if rows[4].Name != "location" || rows[4].Type != "structure ResourceLocation" {
		t.Fatalf("unexpected row: %+v", rows[4])
	}
}
