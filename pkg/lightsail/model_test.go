// Where: pkg/lightsail/model_test.go
// What: Behavior tests for Lightsail model objects.
// Why: Lock down presence, chaining, equality, and rendering on real shapes.
package lightsail

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

func TestCreateDiskRequestChainRendersPresentMembers(t *testing.T) {
	req := new(CreateDiskRequest).
		WithDiskName("my-disk").
		WithAvailabilityZone("us-east-2a").
		WithSizeInGb(32)

	if got := aws.ToString(req.DiskName); got != "my-disk" {
		t.Fatalf("unexpected disk name: %q", got)
	}
	if got := aws.ToInt32(req.SizeInGb); got != 32 {
		t.Fatalf("unexpected size: %d", got)
	}
	if req.Tags != nil {
		t.Fatalf("tags must stay absent: %#v", req.Tags)
	}
	want := "{diskName: my-disk, availabilityZone: us-east-2a, sizeInGb: 32}"
	if got := req.String(); got != want {
		t.Fatalf("unexpected render:\n got: %s\nwant: %s", got, want)
	}
}

func TestRegionChainAndSettersAreEqual(t *testing.T) {
	chained := new(Region).
		WithName(RegionNameUsEast2).
		WithDisplayName("Ohio").
		WithAvailabilityZones(
			*new(AvailabilityZone).WithZoneName("us-east-2a").WithState("available"),
		)

	var assigned Region
	assigned.Name = shape.Ptr(RegionName("us-east-2"))
	assigned.DisplayName = aws.String("Ohio")
	assigned.SetAvailabilityZones([]AvailabilityZone{
		{ZoneName: aws.String("us-east-2a"), State: aws.String("available")},
	})

	if !chained.Equal(&assigned) || !assigned.Equal(chained) {
		t.Fatalf("expected equal regions:\n%s\n%s", chained, &assigned)
	}
	if chained.Hash() != assigned.Hash() {
		t.Fatalf("equal regions must hash equal: %d != %d", chained.Hash(), assigned.Hash())
	}
	if chained.String() != assigned.String() {
		t.Fatalf("equal regions must render equal:\n%s\n%s", chained, &assigned)
	}
}

func TestDomainEntryOptionsRejectDuplicateKey(t *testing.T) {
	entry := new(DomainEntry).WithName("www.example.com").WithType("A")
	if err := entry.AddOptionsEntry("ttl", "300"); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	err := entry.AddOptionsEntry("ttl", "600")
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
	if !errors.Is(err, shape.ErrDuplicateKey) || !shape.IsUsage(err) {
		t.Fatalf("unexpected error type: %T %v", err, err)
	}
	if got := entry.Options["ttl"]; got != "300" {
		t.Fatalf("duplicate insert must not overwrite, got %q", got)
	}
	if !strings.Contains(err.Error(), "DomainEntry.options") {
		t.Fatalf("error should name the member: %v", err)
	}

	entry.ClearOptionsEntries()
	if entry.Options != nil {
		t.Fatal("clear must make options absent")
	}
	if err := entry.AddOptionsEntry("ttl", "600"); err != nil {
		t.Fatalf("insert after clear failed: %v", err)
	}
}

func TestAttachedDiskMappingRejectsDuplicateKey(t *testing.T) {
	req := new(CreateInstancesFromSnapshotRequest).WithInstanceNames("web-1")
	first := []DiskMap{*new(DiskMap).WithOriginalDiskPath("/dev/xvdf").WithNewDiskName("data-1")}
	if err := req.AddAttachedDiskMappingEntry("web-1", first); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	err := req.AddAttachedDiskMappingEntry("web-1", nil)
	var usage *shape.UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if usage.Member != "attachedDiskMapping" || usage.Key != "web-1" {
		t.Fatalf("unexpected usage error: %+v", usage)
	}
	if len(req.AttachedDiskMapping["web-1"]) != 1 {
		t.Fatalf("mapping must be unchanged: %v", req.AttachedDiskMapping)
	}

	want := "{instanceNames: [web-1], attachedDiskMapping: {web-1=[{originalDiskPath: /dev/xvdf, newDiskName: data-1}]}}"
	if got := req.String(); got != want {
		t.Fatalf("unexpected render:\n got: %s\nwant: %s", got, want)
	}
}

func TestEnumConstantAndStringAreInterchangeable(t *testing.T) {
	byConst := new(Disk).WithState(DiskStateInUse)
	byString := new(Disk).WithState("in-use")
	if !byConst.Equal(byString) {
		t.Fatalf("enum constant and raw string must be equal: %s vs %s", byConst, byString)
	}

	unknown := new(Disk).WithState("resizing")
	if got := string(*unknown.State); got != "resizing" {
		t.Fatalf("unknown values must be stored verbatim, got %q", got)
	}
	if shape.IsKnown(*unknown.State, DiskState("").Values()) {
		t.Fatal("resizing is not a known disk state")
	}
	if !shape.IsKnown(*byConst.State, DiskState("").Values()) {
		t.Fatal("in-use is a known disk state")
	}
}

func TestListWithAppendsAndSetReplaces(t *testing.T) {
	alarm := new(PutAlarmRequest).WithContactProtocols(ContactProtocolEmail)
	alarm.WithContactProtocols(ContactProtocolSms)
	want := []ContactProtocol{ContactProtocolEmail, ContactProtocolSms}
	if !reflect.DeepEqual(alarm.ContactProtocols, want) {
		t.Fatalf("with must append: %v", alarm.ContactProtocols)
	}

	replacement := []AlarmState{AlarmStateAlarm}
	alarm.SetNotificationTriggers(replacement)
	replacement[0] = AlarmStateOk
	if alarm.NotificationTriggers[0] != AlarmStateAlarm {
		t.Fatal("set must copy its input")
	}

	alarm.SetNotificationTriggers(nil)
	if alarm.NotificationTriggers != nil {
		t.Fatal("set nil must clear the member")
	}
}

func TestEmptyListIsPresent(t *testing.T) {
	empty := new(CreateDiskRequest).WithDiskName("d").WithTags()
	absent := new(CreateDiskRequest).WithDiskName("d")

	if empty.Tags == nil {
		t.Fatal("with no values must create an empty list")
	}
	if empty.Equal(absent) {
		t.Fatal("present-empty list must not equal an absent one")
	}
	if got := empty.String(); got != "{diskName: d, tags: []}" {
		t.Fatalf("unexpected render: %s", got)
	}
}

func TestFluentSettersReturnReceiver(t *testing.T) {
	req := new(EnableAddOnRequest)
	if req.WithResourceName("web-1") != req {
		t.Fatal("with must return the receiver")
	}
	addOn := new(AddOnRequest).
		WithAddOnType(AddOnTypeAutoSnapshot).
		WithAutoSnapshotAddOnRequest(new(AutoSnapshotAddOnRequest).WithSnapshotTimeOfDay("06:00"))
	if req.WithAddOnRequest(addOn) != req {
		t.Fatal("with must return the receiver")
	}
	want := "{resourceName: web-1, addOnRequest: {addOnType: AutoSnapshot, autoSnapshotAddOnRequest: {snapshotTimeOfDay: 06:00}}}"
	if got := req.String(); got != want {
		t.Fatalf("unexpected render:\n got: %s\nwant: %s", got, want)
	}
}

func TestSensitiveMembersAreRedacted(t *testing.T) {
	req := new(CreateRelationalDatabaseRequest).
		WithRelationalDatabaseName("db-1").
		WithMasterUserPassword("hunter2!")

	got := req.String()
	if strings.Contains(got, "hunter2") {
		t.Fatalf("password leaked into render: %s", got)
	}
	want := "{relationalDatabaseName: db-1, masterUserPassword: " + shape.Redacted + "}"
	if got != want {
		t.Fatalf("unexpected render:\n got: %s\nwant: %s", got, want)
	}

	other := new(CreateRelationalDatabaseRequest).
		WithRelationalDatabaseName("db-1").
		WithMasterUserPassword("different")
	if req.Equal(other) {
		t.Fatal("redaction must not affect equality")
	}

	pending := new(PendingModifiedRelationalDatabaseValues).WithMasterUserPassword("x")
	if strings.Contains(pending.String(), ": x") {
		t.Fatalf("pending password leaked: %s", pending)
	}
}

func TestNestedStructuresCompareByValue(t *testing.T) {
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	build := func(zone *time.Location) *Operation {
		return new(Operation).
			WithId("op-1").
			WithCreatedAt(at.In(zone)).
			WithLocation(new(ResourceLocation).WithRegionName(RegionNameUsEast2).WithAvailabilityZone("us-east-2a")).
			WithStatus(OperationStatusSucceeded)
	}
	a := build(time.UTC)
	b := build(time.FixedZone("JST", 9*60*60))
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Fatalf("operations with the same instant must be equal:\n%s\n%s", a, b)
	}

	b.Location.WithAvailabilityZone("us-east-2b")
	if a.Equal(b) {
		t.Fatal("nested difference must break equality")
	}
}

func TestCloneKeepsModelIndependent(t *testing.T) {
	src := new(Domain).
		WithName("example.com").
		WithTags(*new(Tag).WithKey("env").WithValue("prod")).
		WithDomainEntries(*new(DomainEntry).WithName("www").WithOptions(map[string]string{"ttl": "60"}))

	dst, err := shape.Clone(src)
	if err != nil {
		t.Fatalf("clone failed: %v", err)
	}
	if !src.Equal(dst) {
		t.Fatalf("clone must equal source:\n%s\n%s", src, dst)
	}
	dst.DomainEntries[0].Options["ttl"] = "3600"
	dst.Tags[0].WithValue("dev")
	if src.DomainEntries[0].Options["ttl"] != "60" || aws.ToString(src.Tags[0].Value) != "prod" {
		t.Fatalf("clone shares state with source: %s", src)
	}
}

func TestEnumValuesAreNonEmptyAndUnique(t *testing.T) {
	lists := map[string][]string{
		"RegionName":   stringsOf(RegionName("").Values()),
		"ResourceType": stringsOf(ResourceType("").Values()),
		"DiskState":    stringsOf(DiskState("").Values()),
		"MetricUnit":   stringsOf(MetricUnit("").Values()),
		"AlarmState":   stringsOf(AlarmState("").Values()),
	}
	for name, values := range lists {
		if len(values) == 0 {
			t.Fatalf("%s has no values", name)
		}
		seen := map[string]bool{}
		for _, v := range values {
			if seen[v] {
				t.Fatalf("%s lists %q twice", name, v)
			}
			seen[v] = true
		}
	}
}

func stringsOf[E ~string](values []E) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func TestFloatMembersKeepEqualityContract(t *testing.T) {
	d := (&MetricDatapoint{}).WithAverage(math.NaN())
	if !d.Equal(d) {
		t.Fatal("datapoint with NaN average must equal itself")
	}
	other := (&MetricDatapoint{}).WithAverage(math.NaN())
	if !d.Equal(other) || d.Hash() != other.Hash() {
		t.Fatal("NaN averages must be equal and hash equal")
	}

	pos := (&MetricDatapoint{}).WithAverage(0)
	neg := (&MetricDatapoint{}).WithAverage(math.Copysign(0, -1))
	if pos.Equal(neg) && pos.Hash() != neg.Hash() {
		t.Fatalf("equal datapoints must hash equal: %d != %d", pos.Hash(), neg.Hash())
	}
	if pos.Equal(neg) {
		t.Fatal("0 and -0 averages must differ")
	}

	alarm := (&Alarm{}).WithName("cpu").WithThreshold(math.NaN())
	if !alarm.Equal(alarm) {
		t.Fatal("alarm with NaN threshold must equal itself")
	}
	if alarm.Equal((&Alarm{}).WithName("cpu").WithThreshold(80)) {
		t.Fatal("different thresholds must differ")
	}
}
