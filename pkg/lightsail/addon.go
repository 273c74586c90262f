// Where: pkg/lightsail/addon.go
// What: Add-on and automatic snapshot model objects.
package lightsail

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

// AddOn describes an add-on enabled on an instance or disk.
type AddOn struct {
	Name   *string `json:"name,omitempty"`
	Status *string `json:"status,omitempty"`

	// Daily snapshot window start, in HH:00 UTC.
	SnapshotTimeOfDay     *string `json:"snapshotTimeOfDay,omitempty"`
	NextSnapshotTimeOfDay *string `json:"nextSnapshotTimeOfDay,omitempty"`
}

func (*AddOn) ShapeName() string { return "AddOn" }

func (a *AddOn) Members(m *shape.Members) {
	shape.String(m, "name", a.Name)
	shape.String(m, "status", a.Status)
	shape.String(m, "snapshotTimeOfDay", a.SnapshotTimeOfDay)
	shape.String(m, "nextSnapshotTimeOfDay", a.NextSnapshotTimeOfDay)
}

func (a *AddOn) WithName(v string) *AddOn {
	a.Name = aws.String(v)
	return a
}

func (a *AddOn) WithStatus(v string) *AddOn {
	a.Status = aws.String(v)
	return a
}

func (a *AddOn) WithSnapshotTimeOfDay(v string) *AddOn {
	a.SnapshotTimeOfDay = aws.String(v)
	return a
}

func (a *AddOn) WithNextSnapshotTimeOfDay(v string) *AddOn {
	a.NextSnapshotTimeOfDay = aws.String(v)
	return a
}

// Equal reports whether a and o hold the same members.
func (a *AddOn) Equal(o *AddOn) bool { return shape.Equal(a, o) }

func (a *AddOn) Hash() uint64 { return shape.Hash(a) }

func (a *AddOn) String() string { return shape.Render(a) }

// AutoSnapshotAddOnRequest configures the automatic snapshot add-on.
type AutoSnapshotAddOnRequest struct {
	SnapshotTimeOfDay *string `json:"snapshotTimeOfDay,omitempty"`
}

func (*AutoSnapshotAddOnRequest) ShapeName() string { return "AutoSnapshotAddOnRequest" }

func (a *AutoSnapshotAddOnRequest) Members(m *shape.Members) {
	shape.String(m, "snapshotTimeOfDay", a.SnapshotTimeOfDay)
}

func (a *AutoSnapshotAddOnRequest) WithSnapshotTimeOfDay(v string) *AutoSnapshotAddOnRequest {
	a.SnapshotTimeOfDay = aws.String(v)
	return a
}

// Equal reports whether a and o hold the same members.
func (a *AutoSnapshotAddOnRequest) Equal(o *AutoSnapshotAddOnRequest) bool { return shape.Equal(a, o) }

func (a *AutoSnapshotAddOnRequest) Hash() uint64 { return shape.Hash(a) }

func (a *AutoSnapshotAddOnRequest) String() string { return shape.Render(a) }

// AddOnRequest enables an add-on on a new or existing resource.
type AddOnRequest struct {
	AddOnType                *AddOnType                `json:"addOnType,omitempty"`
	AutoSnapshotAddOnRequest *AutoSnapshotAddOnRequest `json:"autoSnapshotAddOnRequest,omitempty"`
}

func (*AddOnRequest) ShapeName() string { return "AddOnRequest" }

func (a *AddOnRequest) Members(m *shape.Members) {
	shape.Enum(m, "addOnType", a.AddOnType, AddOnType("").Values())
	shape.Struct(m, "autoSnapshotAddOnRequest", a.AutoSnapshotAddOnRequest)
}

func (a *AddOnRequest) WithAddOnType(v AddOnType) *AddOnRequest {
	a.AddOnType = &v
	return a
}

func (a *AddOnRequest) WithAutoSnapshotAddOnRequest(v *AutoSnapshotAddOnRequest) *AddOnRequest {
	a.AutoSnapshotAddOnRequest = v
	return a
}

// Equal reports whether a and o hold the same members.
func (a *AddOnRequest) Equal(o *AddOnRequest) bool { return shape.Equal(a, o) }

func (a *AddOnRequest) Hash() uint64 { return shape.Hash(a) }

func (a *AddOnRequest) String() string { return shape.Render(a) }

// AttachedDisk is a disk that was attached when an automatic snapshot ran.
type AttachedDisk struct {
	Path     *string `json:"path,omitempty"`
	SizeInGb *int32  `json:"sizeInGb,omitempty"`
}

func (*AttachedDisk) ShapeName() string { return "AttachedDisk" }

func (a *AttachedDisk) Members(m *shape.Members) {
	shape.String(m, "path", a.Path)
	shape.Integer(m, "sizeInGb", a.SizeInGb)
}

func (a *AttachedDisk) WithPath(v string) *AttachedDisk {
	a.Path = aws.String(v)
	return a
}

func (a *AttachedDisk) WithSizeInGb(v int32) *AttachedDisk {
	a.SizeInGb = aws.Int32(v)
	return a
}

// Equal reports whether a and o hold the same members.
func (a *AttachedDisk) Equal(o *AttachedDisk) bool { return shape.Equal(a, o) }

func (a *AttachedDisk) Hash() uint64 { return shape.Hash(a) }

func (a *AttachedDisk) String() string { return shape.Render(a) }

// AutoSnapshotDetails describes one automatic snapshot of a resource.
type AutoSnapshotDetails struct {
	// Snapshot date in YYYY-MM-DD.
	Date              *string             `json:"date,omitempty"`
	CreatedAt         *time.Time          `json:"createdAt,omitempty"`
	Status            *AutoSnapshotStatus `json:"status,omitempty"`
	FromAttachedDisks []AttachedDisk      `json:"fromAttachedDisks,omitempty"`
}

func (*AutoSnapshotDetails) ShapeName() string { return "AutoSnapshotDetails" }

func (a *AutoSnapshotDetails) Members(m *shape.Members) {
	shape.String(m, "date", a.Date)
	shape.Timestamp(m, "createdAt", a.CreatedAt)
	shape.Enum(m, "status", a.Status, AutoSnapshotStatus("").Values())
	shape.StructList(m, "fromAttachedDisks", a.FromAttachedDisks)
}

func (a *AutoSnapshotDetails) WithDate(v string) *AutoSnapshotDetails {
	a.Date = aws.String(v)
	return a
}

func (a *AutoSnapshotDetails) WithCreatedAt(v time.Time) *AutoSnapshotDetails {
	a.CreatedAt = aws.Time(v)
	return a
}

func (a *AutoSnapshotDetails) WithStatus(v AutoSnapshotStatus) *AutoSnapshotDetails {
	a.Status = &v
	return a
}

func (a *AutoSnapshotDetails) WithFromAttachedDisks(v ...AttachedDisk) *AutoSnapshotDetails {
	shape.Append(&a.FromAttachedDisks, v...)
	return a
}

func (a *AutoSnapshotDetails) SetFromAttachedDisks(v []AttachedDisk) {
	a.FromAttachedDisks = shape.CopyList(v)
}

// Equal reports whether a and o hold the same members.
func (a *AutoSnapshotDetails) Equal(o *AutoSnapshotDetails) bool { return shape.Equal(a, o) }

func (a *AutoSnapshotDetails) Hash() uint64 { return shape.Hash(a) }

func (a *AutoSnapshotDetails) String() string { return shape.Render(a) }

type EnableAddOnRequest struct {
	ResourceName *string       `json:"resourceName,omitempty"`
	AddOnRequest *AddOnRequest `json:"addOnRequest,omitempty"`
}

func (*EnableAddOnRequest) ShapeName() string { return "EnableAddOnRequest" }

func (e *EnableAddOnRequest) Members(m *shape.Members) {
	shape.String(m, "resourceName", e.ResourceName)
	shape.Struct(m, "addOnRequest", e.AddOnRequest)
}

func (e *EnableAddOnRequest) WithResourceName(v string) *EnableAddOnRequest {
	e.ResourceName = aws.String(v)
	return e
}

func (e *EnableAddOnRequest) WithAddOnRequest(v *AddOnRequest) *EnableAddOnRequest {
	e.AddOnRequest = v
	return e
}

// Equal reports whether e and o hold the same members.
func (e *EnableAddOnRequest) Equal(o *EnableAddOnRequest) bool { return shape.Equal(e, o) }

func (e *EnableAddOnRequest) Hash() uint64 { return shape.Hash(e) }

func (e *EnableAddOnRequest) String() string { return shape.Render(e) }

type EnableAddOnResult struct {
	Operations []Operation `json:"operations,omitempty"`
}

func (*EnableAddOnResult) ShapeName() string { return "EnableAddOnResult" }

func (e *EnableAddOnResult) Members(m *shape.Members) {
	shape.StructList(m, "operations", e.Operations)
}

func (e *EnableAddOnResult) WithOperations(v ...Operation) *EnableAddOnResult {
	shape.Append(&e.Operations, v...)
	return e
}

func (e *EnableAddOnResult) SetOperations(v []Operation) {
	e.Operations = shape.CopyList(v)
}

// Equal reports whether e and o hold the same members.
func (e *EnableAddOnResult) Equal(o *EnableAddOnResult) bool { return shape.Equal(e, o) }

func (e *EnableAddOnResult) Hash() uint64 { return shape.Hash(e) }

func (e *EnableAddOnResult) String() string { return shape.Render(e) }

type GetAutoSnapshotsRequest struct {
	ResourceName *string `json:"resourceName,omitempty"`
}

func (*GetAutoSnapshotsRequest) ShapeName() string { return "GetAutoSnapshotsRequest" }

func (g *GetAutoSnapshotsRequest) Members(m *shape.Members) {
	shape.String(m, "resourceName", g.ResourceName)
}

func (g *GetAutoSnapshotsRequest) WithResourceName(v string) *GetAutoSnapshotsRequest {
	g.ResourceName = aws.String(v)
	return g
}

// Equal reports whether g and o hold the same members.
func (g *GetAutoSnapshotsRequest) Equal(o *GetAutoSnapshotsRequest) bool { return shape.Equal(g, o) }

func (g *GetAutoSnapshotsRequest) Hash() uint64 { return shape.Hash(g) }

func (g *GetAutoSnapshotsRequest) String() string { return shape.Render(g) }

type GetAutoSnapshotsResult struct {
	ResourceName  *string               `json:"resourceName,omitempty"`
	ResourceType  *ResourceType         `json:"resourceType,omitempty"`
	AutoSnapshots []AutoSnapshotDetails `json:"autoSnapshots,omitempty"`
}

func (*GetAutoSnapshotsResult) ShapeName() string { return "GetAutoSnapshotsResult" }

func (g *GetAutoSnapshotsResult) Members(m *shape.Members) {
	shape.String(m, "resourceName", g.ResourceName)
	shape.Enum(m, "resourceType", g.ResourceType, ResourceType("").Values())
	shape.StructList(m, "autoSnapshots", g.AutoSnapshots)
}

func (g *GetAutoSnapshotsResult) WithResourceName(v string) *GetAutoSnapshotsResult {
	g.ResourceName = aws.String(v)
	return g
}

func (g *GetAutoSnapshotsResult) WithResourceType(v ResourceType) *GetAutoSnapshotsResult {
	g.ResourceType = &v
	return g
}

func (g *GetAutoSnapshotsResult) WithAutoSnapshots(v ...AutoSnapshotDetails) *GetAutoSnapshotsResult {
	shape.Append(&g.AutoSnapshots, v...)
	return g
}

func (g *GetAutoSnapshotsResult) SetAutoSnapshots(v []AutoSnapshotDetails) {
	g.AutoSnapshots = shape.CopyList(v)
}

// Equal reports whether g and o hold the same members.
func (g *GetAutoSnapshotsResult) Equal(o *GetAutoSnapshotsResult) bool { return shape.Equal(g, o) }

func (g *GetAutoSnapshotsResult) Hash() uint64 { return shape.Hash(g) }

func (g *GetAutoSnapshotsResult) String() string { return shape.Render(g) }
