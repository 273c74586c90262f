// Where: internal/fixture/fixture_test.go
// What: Tests for fixture loading, validation, auditing, and scaffolding.
package fixture

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/poruru-code/lightsail-model/internal/catalog"
	"github.com/poruru-code/lightsail-model/pkg/lightsail"
)

const diskFixture = `
diskName: my-disk
availabilityZone: us-east-2a
sizeInGb: 32
tags:
  - key: env
    value: prod
`

func TestLoadYAMLFixture(t *testing.T) {
	s, err := Load("CreateDiskRequest", []byte(diskFixture))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	req, ok := s.(*lightsail.CreateDiskRequest)
	if !ok {
		t.Fatalf("unexpected type %T", s)
	}
	want := new(lightsail.CreateDiskRequest).
		WithDiskName("my-disk").
		WithAvailabilityZone("us-east-2a").
		WithSizeInGb(32).
		WithTags(*new(lightsail.Tag).WithKey("env").WithValue("prod"))
	if !req.Equal(want) {
		t.Fatalf("unexpected model:\n got: %s\nwant: %s", req, want)
	}
	if req.AddOns != nil {
		t.Fatal("members missing from the fixture must stay absent")
	}
}

func TestLoadJSONFixtureWithMapAndTimestamp(t *testing.T) {
	content := `{
  "domainEntries": [{"name": "www", "options": {"ttl": "300"}}],
  "createdAt": "2024-01-02T12:04:05+09:00"
}`
	s, err := Load("Domain", []byte(content))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	domain := s.(*lightsail.Domain)
	if got := domain.DomainEntries[0].Options["ttl"]; got != "300" {
		t.Fatalf("unexpected option: %q", got)
	}
	want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if !aws.ToTime(domain.CreatedAt).Equal(want) {
		t.Fatalf("unexpected timestamp: %v", domain.CreatedAt)
	}
}

func TestLoadUnknownShape(t *testing.T) {
	_, err := Load("Bucket", []byte("{}"))
	if !errors.Is(err, catalog.ErrUnknownShape) {
		t.Fatalf("expected ErrUnknownShape, got %v", err)
	}
}

func TestValidateReportsEveryIssue(t *testing.T) {
	content := `
diskName: 12
sizeInGB: 32
tags:
  - key: env
    colour: red
`
	err := Validate(new(lightsail.CreateDiskRequest), []byte(content))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %v", len(ve.Issues), ve.Issues)
	}
	msg := ve.Error()
	for _, fragment := range []string{"sizeInGB", "colour", "/diskName"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("error should mention %q: %s", fragment, msg)
		}
	}
}

func TestLoadRejectsDuplicateMapKeys(t *testing.T) {
	cases := map[string]string{
		"yaml": "domainEntries:\n  - name: www\n    options:\n      ttl: \"300\"\n      ttl: \"600\"\n",
		"json": `{"domainEntries": [{"name": "www", "options": {"ttl": "300", "ttl": "600"}}]}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := Load("Domain", []byte(content))
			if err == nil {
				t.Fatalf("expected duplicate key error, got %s", s)
			}
			if !strings.Contains(err.Error(), "ttl") {
				t.Fatalf("error should name the key: %v", err)
			}
		})
	}
}

func TestValidateRejectsMalformedTimestamp(t *testing.T) {
	err := Validate(new(lightsail.Domain), []byte("createdAt: not-a-date\n"))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Issues) != 1 || ve.Issues[0].Path != "/createdAt" {
		t.Fatalf("unexpected issues: %v", ve.Issues)
	}
}

func TestValidateAcceptsUnknownEnumValues(t *testing.T) {
	content := "state: resizing\n"
	if err := Validate(new(lightsail.Disk), []byte(content)); err != nil {
		t.Fatalf("unknown enum values are legal: %v", err)
	}
}

func TestValidateRejectsOutOfRangeInteger(t *testing.T) {
	err := Validate(new(lightsail.CreateDiskRequest), []byte("sizeInGb: 3000000000\n"))
	if err == nil {
		t.Fatal("expected range error for 32-bit member")
	}
}

func TestSchemaShape(t *testing.T) {
	doc := Schema(new(lightsail.CreateInstancesFromSnapshotRequest))
	if doc["additionalProperties"] != false {
		t.Fatalf("root must reject unknown members: %v", doc["additionalProperties"])
	}
	defs, ok := doc["$defs"].(map[string]any)
	if !ok {
		t.Fatal("expected $defs")
	}
	for _, name := range []string{"DiskMap", "Tag", "AddOnRequest", "AutoSnapshotAddOnRequest"} {
		if _, ok := defs[name]; !ok {
			t.Fatalf("missing definition %s", name)
		}
	}
	properties := doc["properties"].(map[string]any)
	mapping := properties["attachedDiskMapping"].(map[string]any)
	values := mapping["additionalProperties"].(map[string]any)
	if values["type"] != "array" {
		t.Fatalf("map of lists must use array values: %v", values)
	}
}

func TestSchemaEnumHasNoConstraint(t *testing.T) {
	doc := Schema(new(lightsail.Disk))
	state := doc["properties"].(map[string]any)["state"].(map[string]any)
	if _, ok := state["enum"]; ok {
		t.Fatal("enum members must not be constrained")
	}
	if state["type"] != "string" {
		t.Fatalf("enum members are strings: %v", state)
	}
}

func TestAuditEnumsReportsUnknownValues(t *testing.T) {
	alarm := new(lightsail.PutAlarmRequest).
		WithMetricName(lightsail.MetricNameCPUUtilization).
		WithComparisonOperator("GreaterThan").
		WithContactProtocols(lightsail.ContactProtocolEmail, "Pager")

	warnings := AuditEnums(alarm)
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}
	if warnings[0].Path != "PutAlarmRequest.comparisonOperator" || warnings[0].Value != "GreaterThan" {
		t.Fatalf("unexpected warning: %+v", warnings[0])
	}
	if warnings[1].Path != "PutAlarmRequest.contactProtocols[1]" {
		t.Fatalf("unexpected warning: %+v", warnings[1])
	}
}

func TestAuditEnumsWalksNestedShapes(t *testing.T) {
	op := new(lightsail.Operation).
		WithLocation(new(lightsail.ResourceLocation).WithRegionName("mars-north-1"))
	result := new(lightsail.CreateDiskResult).WithOperations(*op)

	warnings := AuditEnums(result)
	if len(warnings) != 1 || warnings[0].Path != "CreateDiskResult.operations[0].location.regionName" {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}

func TestScaffoldRoundTripsForEveryShape(t *testing.T) {
	origID, origNow := newID, now
	t.Cleanup(func() { newID, now = origID, origNow })
	newID = func() string { return "00000000-0000-4000-8000-000000000000" }
	now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	for _, name := range catalog.Shapes() {
		s, err := catalog.New(name)
		if err != nil {
			t.Fatalf("new %s: %v", name, err)
		}
		content, err := Scaffold(s)
		if err != nil {
			t.Fatalf("scaffold %s: %v", name, err)
		}
		loaded, err := Load(name, content)
		if err != nil {
			t.Fatalf("scaffold for %s does not load: %v\n%s", name, err, content)
		}
		if warnings := AuditEnums(loaded); len(warnings) != 0 {
			t.Fatalf("scaffold for %s has unknown enum values: %v", name, warnings)
		}
	}
}

func TestScaffoldMapsUseExampleKey(t *testing.T) {
	content, err := Scaffold(new(lightsail.DomainEntry))
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	s, err := Load("DomainEntry", content)
	if err != nil {
		t.Fatalf("load scaffold: %v\n%s", err, content)
	}
	options := s.(*lightsail.DomainEntry).Options
	if len(options) != 1 || options["example"] != "example" {
		t.Fatalf("unexpected options: %v", options)
	}
}

func TestScaffoldFillsMembersInOrder(t *testing.T) {
	origID := newID
	t.Cleanup(func() { newID = origID })
	newID = func() string { return "fixed-id" }

	content, err := Scaffold(new(lightsail.CreateRelationalDatabaseRequest))
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	text := string(content)
	if !strings.HasPrefix(text, `relationalDatabaseName: "example"`) {
		t.Fatalf("first member must come first:\n%s", text)
	}
	if !strings.Contains(text, `relationalDatabaseBlueprintId: "fixed-id"`) {
		t.Fatalf("identifier members should get an id:\n%s", text)
	}
	if !strings.Contains(text, `masterUserPassword: "`+sensitiveExample+`"`) {
		t.Fatalf("sensitive members get a placeholder:\n%s", text)
	}
}

func TestDecodeIgnoresValidation(t *testing.T) {
	var tag lightsail.Tag
	if err := Decode(&tag, []byte("key: a\nextra: b\n")); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if aws.ToString(tag.Key) != "a" {
		t.Fatalf("unexpected tag: %s", &tag)
	}
}
