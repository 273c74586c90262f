// Where: pkg/lightsail/common.go
// What: Model objects shared by many Lightsail operations.
package lightsail

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

// Tag is a key-value pair attached to a Lightsail resource. Keys are case
// sensitive and values may be empty.
type Tag struct {
	Key   *string `json:"key,omitempty"`
	Value *string `json:"value,omitempty"`
}

func (*Tag) ShapeName() string { return "Tag" }

func (t *Tag) Members(m *shape.Members) {
	shape.String(m, "key", t.Key)
	shape.String(m, "value", t.Value)
}

func (t *Tag) WithKey(v string) *Tag {
	t.Key = aws.String(v)
	return t
}

func (t *Tag) WithValue(v string) *Tag {
	t.Value = aws.String(v)
	return t
}

// Equal reports whether t and o hold the same members.
func (t *Tag) Equal(o *Tag) bool { return shape.Equal(t, o) }

// Hash is consistent with Equal.
func (t *Tag) Hash() uint64 { return shape.Hash(t) }

// String renders only the members that are present.
func (t *Tag) String() string { return shape.Render(t) }

// ResourceLocation is the Region and Availability Zone of a resource.
type ResourceLocation struct {
	AvailabilityZone *string     `json:"availabilityZone,omitempty"`
	RegionName       *RegionName `json:"regionName,omitempty"`
}

func (*ResourceLocation) ShapeName() string { return "ResourceLocation" }

func (r *ResourceLocation) Members(m *shape.Members) {
	shape.String(m, "availabilityZone", r.AvailabilityZone)
	shape.Enum(m, "regionName", r.RegionName, RegionName("").Values())
}

func (r *ResourceLocation) WithAvailabilityZone(v string) *ResourceLocation {
	r.AvailabilityZone = aws.String(v)
	return r
}

func (r *ResourceLocation) WithRegionName(v RegionName) *ResourceLocation {
	r.RegionName = &v
	return r
}

// Equal reports whether r and o hold the same members.
func (r *ResourceLocation) Equal(o *ResourceLocation) bool { return shape.Equal(r, o) }

// Hash is consistent with Equal.
func (r *ResourceLocation) Hash() uint64 { return shape.Hash(r) }

// String renders only the members that are present.
func (r *ResourceLocation) String() string { return shape.Render(r) }

// Operation describes an asynchronous request accepted by the service.
// Most mutating calls return one or more of these.
type Operation struct {
	Id           *string           `json:"id,omitempty"`
	ResourceName *string           `json:"resourceName,omitempty"`
	ResourceType *ResourceType     `json:"resourceType,omitempty"`
	CreatedAt    *time.Time        `json:"createdAt,omitempty"`
	Location     *ResourceLocation `json:"location,omitempty"`

	// True once the operation can no longer change state.
	IsTerminal       *bool            `json:"isTerminal,omitempty"`
	OperationDetails *string          `json:"operationDetails,omitempty"`
	OperationType    *OperationType   `json:"operationType,omitempty"`
	Status           *OperationStatus `json:"status,omitempty"`
	StatusChangedAt  *time.Time       `json:"statusChangedAt,omitempty"`
	ErrorCode        *string          `json:"errorCode,omitempty"`
	ErrorDetails     *string          `json:"errorDetails,omitempty"`
}

func (*Operation) ShapeName() string { return "Operation" }

func (op *Operation) Members(m *shape.Members) {
	shape.String(m, "id", op.Id)
	shape.String(m, "resourceName", op.ResourceName)
	shape.Enum(m, "resourceType", op.ResourceType, ResourceType("").Values())
	shape.Timestamp(m, "createdAt", op.CreatedAt)
	shape.Struct(m, "location", op.Location)
	shape.Boolean(m, "isTerminal", op.IsTerminal)
	shape.String(m, "operationDetails", op.OperationDetails)
	shape.Enum(m, "operationType", op.OperationType, OperationType("").Values())
	shape.Enum(m, "status", op.Status, OperationStatus("").Values())
	shape.Timestamp(m, "statusChangedAt", op.StatusChangedAt)
	shape.String(m, "errorCode", op.ErrorCode)
	shape.String(m, "errorDetails", op.ErrorDetails)
}

func (op *Operation) WithId(v string) *Operation {
	op.Id = aws.String(v)
	return op
}

func (op *Operation) WithResourceName(v string) *Operation {
	op.ResourceName = aws.String(v)
	return op
}

func (op *Operation) WithResourceType(v ResourceType) *Operation {
	op.ResourceType = &v
	return op
}

func (op *Operation) WithCreatedAt(v time.Time) *Operation {
	op.CreatedAt = aws.Time(v)
	return op
}

func (op *Operation) WithLocation(v *ResourceLocation) *Operation {
	op.Location = v
	return op
}

func (op *Operation) WithIsTerminal(v bool) *Operation {
	op.IsTerminal = aws.Bool(v)
	return op
}

func (op *Operation) WithOperationDetails(v string) *Operation {
	op.OperationDetails = aws.String(v)
	return op
}

func (op *Operation) WithOperationType(v OperationType) *Operation {
	op.OperationType = &v
	return op
}

func (op *Operation) WithStatus(v OperationStatus) *Operation {
	op.Status = &v
	return op
}

func (op *Operation) WithStatusChangedAt(v time.Time) *Operation {
	op.StatusChangedAt = aws.Time(v)
	return op
}

func (op *Operation) WithErrorCode(v string) *Operation {
	op.ErrorCode = aws.String(v)
	return op
}

func (op *Operation) WithErrorDetails(v string) *Operation {
	op.ErrorDetails = aws.String(v)
	return op
}

// Equal reports whether op and o hold the same members.
func (op *Operation) Equal(o *Operation) bool { return shape.Equal(op, o) }

// Hash is consistent with Equal.
func (op *Operation) Hash() uint64 { return shape.Hash(op) }

// String renders only the members that are present.
func (op *Operation) String() string { return shape.Render(op) }
