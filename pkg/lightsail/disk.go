// Where: pkg/lightsail/disk.go
// What: Block storage disk model objects.
package lightsail

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

// DiskMap maps a disk path on the source snapshot to the name of the new
// disk created from it.
type DiskMap struct {
	OriginalDiskPath *string `json:"originalDiskPath,omitempty"`
	NewDiskName      *string `json:"newDiskName,omitempty"`
}

func (*DiskMap) ShapeName() string { return "DiskMap" }

func (d *DiskMap) Members(m *shape.Members) {
	shape.String(m, "originalDiskPath", d.OriginalDiskPath)
	shape.String(m, "newDiskName", d.NewDiskName)
}

func (d *DiskMap) WithOriginalDiskPath(v string) *DiskMap {
	d.OriginalDiskPath = aws.String(v)
	return d
}

func (d *DiskMap) WithNewDiskName(v string) *DiskMap {
	d.NewDiskName = aws.String(v)
	return d
}

// Equal reports whether d and o hold the same members.
func (d *DiskMap) Equal(o *DiskMap) bool { return shape.Equal(d, o) }

// Hash is consistent with Equal.
func (d *DiskMap) Hash() uint64 { return shape.Hash(d) }

// String renders only the members that are present.
func (d *DiskMap) String() string { return shape.Render(d) }

// Disk describes a block storage disk.
type Disk struct {
	Name         *string           `json:"name,omitempty"`
	Arn          *string           `json:"arn,omitempty"`
	SupportCode  *string           `json:"supportCode,omitempty"`
	CreatedAt    *time.Time        `json:"createdAt,omitempty"`
	Location     *ResourceLocation `json:"location,omitempty"`
	ResourceType *ResourceType     `json:"resourceType,omitempty"`
	Tags         []Tag             `json:"tags,omitempty"`
	AddOns       []AddOn           `json:"addOns,omitempty"`
	SizeInGb     *int32            `json:"sizeInGb,omitempty"`
	IsSystemDisk *bool             `json:"isSystemDisk,omitempty"`
	Iops         *int32            `json:"iops,omitempty"`
	Path         *string           `json:"path,omitempty"`
	State        *DiskState        `json:"state,omitempty"`

	// Name of the instance the disk is attached to.
	AttachedTo *string `json:"attachedTo,omitempty"`
	IsAttached *bool   `json:"isAttached,omitempty"`
}

func (*Disk) ShapeName() string { return "Disk" }

func (d *Disk) Members(m *shape.Members) {
	shape.String(m, "name", d.Name)
	shape.String(m, "arn", d.Arn)
	shape.String(m, "supportCode", d.SupportCode)
	shape.Timestamp(m, "createdAt", d.CreatedAt)
	shape.Struct(m, "location", d.Location)
	shape.Enum(m, "resourceType", d.ResourceType, ResourceType("").Values())
	shape.StructList(m, "tags", d.Tags)
	shape.StructList(m, "addOns", d.AddOns)
	shape.Integer(m, "sizeInGb", d.SizeInGb)
	shape.Boolean(m, "isSystemDisk", d.IsSystemDisk)
	shape.Integer(m, "iops", d.Iops)
	shape.String(m, "path", d.Path)
	shape.Enum(m, "state", d.State, DiskState("").Values())
	shape.String(m, "attachedTo", d.AttachedTo)
	shape.Boolean(m, "isAttached", d.IsAttached)
}

func (d *Disk) WithName(v string) *Disk {
	d.Name = aws.String(v)
	return d
}

func (d *Disk) WithArn(v string) *Disk {
	d.Arn = aws.String(v)
	return d
}

func (d *Disk) WithSupportCode(v string) *Disk {
	d.SupportCode = aws.String(v)
	return d
}

func (d *Disk) WithCreatedAt(v time.Time) *Disk {
	d.CreatedAt = aws.Time(v)
	return d
}

func (d *Disk) WithLocation(v *ResourceLocation) *Disk {
	d.Location = v
	return d
}

func (d *Disk) WithResourceType(v ResourceType) *Disk {
	d.ResourceType = &v
	return d
}

func (d *Disk) WithTags(v ...Tag) *Disk {
	shape.Append(&d.Tags, v...)
	return d
}

func (d *Disk) SetTags(v []Tag) {
	d.Tags = shape.CopyList(v)
}

func (d *Disk) WithAddOns(v ...AddOn) *Disk {
	shape.Append(&d.AddOns, v...)
	return d
}

func (d *Disk) SetAddOns(v []AddOn) {
	d.AddOns = shape.CopyList(v)
}

func (d *Disk) WithSizeInGb(v int32) *Disk {
	d.SizeInGb = aws.Int32(v)
	return d
}

func (d *Disk) WithIsSystemDisk(v bool) *Disk {
	d.IsSystemDisk = aws.Bool(v)
	return d
}

func (d *Disk) WithIops(v int32) *Disk {
	d.Iops = aws.Int32(v)
	return d
}

func (d *Disk) WithPath(v string) *Disk {
	d.Path = aws.String(v)
	return d
}

func (d *Disk) WithState(v DiskState) *Disk {
	d.State = &v
	return d
}

func (d *Disk) WithAttachedTo(v string) *Disk {
	d.AttachedTo = aws.String(v)
	return d
}

func (d *Disk) WithIsAttached(v bool) *Disk {
	d.IsAttached = aws.Bool(v)
	return d
}

// Equal reports whether d and o hold the same members.
func (d *Disk) Equal(o *Disk) bool { return shape.Equal(d, o) }

// Hash is consistent with Equal.
func (d *Disk) Hash() uint64 { return shape.Hash(d) }

// String renders only the members that are present.
func (d *Disk) String() string { return shape.Render(d) }

// CreateDiskRequest creates a block storage disk that can be attached to an
// instance in the same Availability Zone.
type CreateDiskRequest struct {
	DiskName *string `json:"diskName,omitempty"`

	// Use GetRegions with availability zones included to list valid values.
	AvailabilityZone *string        `json:"availabilityZone,omitempty"`
	SizeInGb         *int32         `json:"sizeInGb,omitempty"`
	Tags             []Tag          `json:"tags,omitempty"`
	AddOns           []AddOnRequest `json:"addOns,omitempty"`
}

func (*CreateDiskRequest) ShapeName() string { return "CreateDiskRequest" }

func (c *CreateDiskRequest) Members(m *shape.Members) {
	shape.String(m, "diskName", c.DiskName)
	shape.String(m, "availabilityZone", c.AvailabilityZone)
	shape.Integer(m, "sizeInGb", c.SizeInGb)
	shape.StructList(m, "tags", c.Tags)
	shape.StructList(m, "addOns", c.AddOns)
}

func (c *CreateDiskRequest) WithDiskName(v string) *CreateDiskRequest {
	c.DiskName = aws.String(v)
	return c
}

func (c *CreateDiskRequest) WithAvailabilityZone(v string) *CreateDiskRequest {
	c.AvailabilityZone = aws.String(v)
	return c
}

func (c *CreateDiskRequest) WithSizeInGb(v int32) *CreateDiskRequest {
	c.SizeInGb = aws.Int32(v)
	return c
}

func (c *CreateDiskRequest) WithTags(v ...Tag) *CreateDiskRequest {
	shape.Append(&c.Tags, v...)
	return c
}

func (c *CreateDiskRequest) SetTags(v []Tag) {
	c.Tags = shape.CopyList(v)
}

func (c *CreateDiskRequest) WithAddOns(v ...AddOnRequest) *CreateDiskRequest {
	shape.Append(&c.AddOns, v...)
	return c
}

func (c *CreateDiskRequest) SetAddOns(v []AddOnRequest) {
	c.AddOns = shape.CopyList(v)
}

// Equal reports whether c and o hold the same members.
func (c *CreateDiskRequest) Equal(o *CreateDiskRequest) bool { return shape.Equal(c, o) }

// Hash is consistent with Equal.
func (c *CreateDiskRequest) Hash() uint64 { return shape.Hash(c) }

// String renders only the members that are present.
func (c *CreateDiskRequest) String() string { return shape.Render(c) }

type CreateDiskResult struct {
	Operations []Operation `json:"operations,omitempty"`
}

func (*CreateDiskResult) ShapeName() string { return "CreateDiskResult" }

func (c *CreateDiskResult) Members(m *shape.Members) {
	shape.StructList(m, "operations", c.Operations)
}

func (c *CreateDiskResult) WithOperations(v ...Operation) *CreateDiskResult {
	shape.Append(&c.Operations, v...)
	return c
}

func (c *CreateDiskResult) SetOperations(v []Operation) {
	c.Operations = shape.CopyList(v)
}

// Equal reports whether c and o hold the same members.
func (c *CreateDiskResult) Equal(o *CreateDiskResult) bool { return shape.Equal(c, o) }

// Hash is consistent with Equal.
func (c *CreateDiskResult) Hash() uint64 { return shape.Hash(c) }

// String renders only the members that are present.
func (c *CreateDiskResult) String() string { return shape.Render(c) }
