// Where: pkg/lightsail/instance.go
// What: Instance networking and snapshot restore model objects.
package lightsail

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

// InstancePortInfo describes a firewall port range open on an instance.
type InstancePortInfo struct {
	// First port in the range; -1 for ICMP type.
	FromPort        *int32           `json:"fromPort,omitempty"`
	ToPort          *int32           `json:"toPort,omitempty"`
	Protocol        *NetworkProtocol `json:"protocol,omitempty"`
	AccessFrom      *string          `json:"accessFrom,omitempty"`
	AccessType      *PortAccessType  `json:"accessType,omitempty"`
	CommonName      *string          `json:"commonName,omitempty"`
	AccessDirection *AccessDirection `json:"accessDirection,omitempty"`
	Cidrs           []string         `json:"cidrs,omitempty"`

	// Only lightsail-connect is supported.
	CidrListAliases []string `json:"cidrListAliases,omitempty"`
}

func (*InstancePortInfo) ShapeName() string { return "InstancePortInfo" }

func (i *InstancePortInfo) Members(m *shape.Members) {
	shape.Integer(m, "fromPort", i.FromPort)
	shape.Integer(m, "toPort", i.ToPort)
	shape.Enum(m, "protocol", i.Protocol, NetworkProtocol("").Values())
	shape.String(m, "accessFrom", i.AccessFrom)
	shape.Enum(m, "accessType", i.AccessType, PortAccessType("").Values())
	shape.String(m, "commonName", i.CommonName)
	shape.Enum(m, "accessDirection", i.AccessDirection, AccessDirection("").Values())
	shape.StringList(m, "cidrs", i.Cidrs)
	shape.StringList(m, "cidrListAliases", i.CidrListAliases)
}

func (i *InstancePortInfo) WithFromPort(v int32) *InstancePortInfo {
	i.FromPort = aws.Int32(v)
	return i
}

func (i *InstancePortInfo) WithToPort(v int32) *InstancePortInfo {
	i.ToPort = aws.Int32(v)
	return i
}

func (i *InstancePortInfo) WithProtocol(v NetworkProtocol) *InstancePortInfo {
	i.Protocol = &v
	return i
}

func (i *InstancePortInfo) WithAccessFrom(v string) *InstancePortInfo {
	i.AccessFrom = aws.String(v)
	return i
}

func (i *InstancePortInfo) WithAccessType(v PortAccessType) *InstancePortInfo {
	i.AccessType = &v
	return i
}

func (i *InstancePortInfo) WithCommonName(v string) *InstancePortInfo {
	i.CommonName = aws.String(v)
	return i
}

func (i *InstancePortInfo) WithAccessDirection(v AccessDirection) *InstancePortInfo {
	i.AccessDirection = &v
	return i
}

func (i *InstancePortInfo) WithCidrs(v ...string) *InstancePortInfo {
	shape.Append(&i.Cidrs, v...)
	return i
}

func (i *InstancePortInfo) SetCidrs(v []string) {
	i.Cidrs = shape.CopyList(v)
}

func (i *InstancePortInfo) WithCidrListAliases(v ...string) *InstancePortInfo {
	shape.Append(&i.CidrListAliases, v...)
	return i
}

func (i *InstancePortInfo) SetCidrListAliases(v []string) {
	i.CidrListAliases = shape.CopyList(v)
}

// Equal reports whether i and o hold the same members.
func (i *InstancePortInfo) Equal(o *InstancePortInfo) bool { return shape.Equal(i, o) }

// Hash is consistent with Equal.
func (i *InstancePortInfo) Hash() uint64 { return shape.Hash(i) }

// String renders only the members that are present.
func (i *InstancePortInfo) String() string { return shape.Render(i) }

// CreateInstancesFromSnapshotRequest creates instances from a manual or
// automatic instance snapshot.
type CreateInstancesFromSnapshotRequest struct {
	InstanceNames []string `json:"instanceNames,omitempty"`

	// Keyed by instance name.
	AttachedDiskMapping map[string][]DiskMap `json:"attachedDiskMapping,omitempty"`
	AvailabilityZone    *string              `json:"availabilityZone,omitempty"`

	// Mutually exclusive with sourceInstanceName.
	InstanceSnapshotName *string        `json:"instanceSnapshotName,omitempty"`
	BundleId             *string        `json:"bundleId,omitempty"`
	UserData             *string        `json:"userData,omitempty"`
	KeyPairName          *string        `json:"keyPairName,omitempty"`
	Tags                 []Tag          `json:"tags,omitempty"`
	AddOns               []AddOnRequest `json:"addOns,omitempty"`
	SourceInstanceName   *string        `json:"sourceInstanceName,omitempty"`

	// Mutually exclusive with useLatestRestorableAutoSnapshot.
	RestoreDate                     *string `json:"restoreDate,omitempty"`
	UseLatestRestorableAutoSnapshot *bool   `json:"useLatestRestorableAutoSnapshot,omitempty"`
}

func (*CreateInstancesFromSnapshotRequest) ShapeName() string { return "CreateInstancesFromSnapshotRequest" }

func (c *CreateInstancesFromSnapshotRequest) Members(m *shape.Members) {
	shape.StringList(m, "instanceNames", c.InstanceNames)
	shape.StructListMap(m, "attachedDiskMapping", c.AttachedDiskMapping)
	shape.String(m, "availabilityZone", c.AvailabilityZone)
	shape.String(m, "instanceSnapshotName", c.InstanceSnapshotName)
	shape.String(m, "bundleId", c.BundleId)
	shape.String(m, "userData", c.UserData)
	shape.String(m, "keyPairName", c.KeyPairName)
	shape.StructList(m, "tags", c.Tags)
	shape.StructList(m, "addOns", c.AddOns)
	shape.String(m, "sourceInstanceName", c.SourceInstanceName)
	shape.String(m, "restoreDate", c.RestoreDate)
	shape.Boolean(m, "useLatestRestorableAutoSnapshot", c.UseLatestRestorableAutoSnapshot)
}

func (c *CreateInstancesFromSnapshotRequest) WithInstanceNames(v ...string) *CreateInstancesFromSnapshotRequest {
	shape.Append(&c.InstanceNames, v...)
	return c
}

func (c *CreateInstancesFromSnapshotRequest) SetInstanceNames(v []string) {
	c.InstanceNames = shape.CopyList(v)
}

func (c *CreateInstancesFromSnapshotRequest) WithAttachedDiskMapping(v map[string][]DiskMap) *CreateInstancesFromSnapshotRequest {
	c.AttachedDiskMapping = shape.CopyMap(v)
	return c
}

// AddAttachedDiskMappingEntry inserts one attachedDiskMapping entry. A key that is already
// present is a *shape.UsageError and leaves the map unchanged.
func (c *CreateInstancesFromSnapshotRequest) AddAttachedDiskMappingEntry(key string, value []DiskMap) error {
	return shape.AddEntry(&c.AttachedDiskMapping, c.ShapeName(), "attachedDiskMapping", key, value)
}

// ClearAttachedDiskMappingEntries resets attachedDiskMapping to absent.
func (c *CreateInstancesFromSnapshotRequest) ClearAttachedDiskMappingEntries() *CreateInstancesFromSnapshotRequest {
	c.AttachedDiskMapping = nil
	return c
}

func (c *CreateInstancesFromSnapshotRequest) WithAvailabilityZone(v string) *CreateInstancesFromSnapshotRequest {
	c.AvailabilityZone = aws.String(v)
	return c
}

func (c *CreateInstancesFromSnapshotRequest) WithInstanceSnapshotName(v string) *CreateInstancesFromSnapshotRequest {
	c.InstanceSnapshotName = aws.String(v)
	return c
}

func (c *CreateInstancesFromSnapshotRequest) WithBundleId(v string) *CreateInstancesFromSnapshotRequest {
	c.BundleId = aws.String(v)
	return c
}

func (c *CreateInstancesFromSnapshotRequest) WithUserData(v string) *CreateInstancesFromSnapshotRequest {
	c.UserData = aws.String(v)
	return c
}

func (c *CreateInstancesFromSnapshotRequest) WithKeyPairName(v string) *CreateInstancesFromSnapshotRequest {
	c.KeyPairName = aws.String(v)
	return c
}

func (c *CreateInstancesFromSnapshotRequest) WithTags(v ...Tag) *CreateInstancesFromSnapshotRequest {
	shape.Append(&c.Tags, v...)
	return c
}

func (c *CreateInstancesFromSnapshotRequest) SetTags(v []Tag) {
	c.Tags = shape.CopyList(v)
}

func (c *CreateInstancesFromSnapshotRequest) WithAddOns(v ...AddOnRequest) *CreateInstancesFromSnapshotRequest {
	shape.Append(&c.AddOns, v...)
	return c
}

func (c *CreateInstancesFromSnapshotRequest) SetAddOns(v []AddOnRequest) {
	c.AddOns = shape.CopyList(v)
}

func (c *CreateInstancesFromSnapshotRequest) WithSourceInstanceName(v string) *CreateInstancesFromSnapshotRequest {
	c.SourceInstanceName = aws.String(v)
	return c
}

func (c *CreateInstancesFromSnapshotRequest) WithRestoreDate(v string) *CreateInstancesFromSnapshotRequest {
	c.RestoreDate = aws.String(v)
	return c
}

func (c *CreateInstancesFromSnapshotRequest) WithUseLatestRestorableAutoSnapshot(v bool) *CreateInstancesFromSnapshotRequest {
	c.UseLatestRestorableAutoSnapshot = aws.Bool(v)
	return c
}

// Equal reports whether c and o hold the same members.
func (c *CreateInstancesFromSnapshotRequest) Equal(o *CreateInstancesFromSnapshotRequest) bool { return shape.Equal(c, o) }

// Hash is consistent with Equal.
func (c *CreateInstancesFromSnapshotRequest) Hash() uint64 { return shape.Hash(c) }

// String renders only the members that are present.
func (c *CreateInstancesFromSnapshotRequest) String() string { return shape.Render(c) }

type CreateInstancesFromSnapshotResult struct {
	Operations []Operation `json:"operations,omitempty"`
}

func (*CreateInstancesFromSnapshotResult) ShapeName() string { return "CreateInstancesFromSnapshotResult" }

func (c *CreateInstancesFromSnapshotResult) Members(m *shape.Members) {
	shape.StructList(m, "operations", c.Operations)
}

func (c *CreateInstancesFromSnapshotResult) WithOperations(v ...Operation) *CreateInstancesFromSnapshotResult {
	shape.Append(&c.Operations, v...)
	return c
}

func (c *CreateInstancesFromSnapshotResult) SetOperations(v []Operation) {
	c.Operations = shape.CopyList(v)
}

// Equal reports whether c and o hold the same members.
func (c *CreateInstancesFromSnapshotResult) Equal(o *CreateInstancesFromSnapshotResult) bool { return shape.Equal(c, o) }

// Hash is consistent with Equal.
func (c *CreateInstancesFromSnapshotResult) Hash() uint64 { return shape.Hash(c) }

// String renders only the members that are present.
func (c *CreateInstancesFromSnapshotResult) String() string { return shape.Render(c) }
