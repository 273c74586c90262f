// Where: pkg/lightsail/staticip.go
// What: Static IP model objects.
package lightsail

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

// StaticIp describes a static IP address.
type StaticIp struct {
	Name         *string           `json:"name,omitempty"`
	Arn          *string           `json:"arn,omitempty"`
	SupportCode  *string           `json:"supportCode,omitempty"`
	CreatedAt    *time.Time        `json:"createdAt,omitempty"`
	Location     *ResourceLocation `json:"location,omitempty"`
	ResourceType *ResourceType     `json:"resourceType,omitempty"`
	IpAddress    *string           `json:"ipAddress,omitempty"`
	AttachedTo   *string           `json:"attachedTo,omitempty"`
	IsAttached   *bool             `json:"isAttached,omitempty"`
}

func (*StaticIp) ShapeName() string { return "StaticIp" }

func (s *StaticIp) Members(m *shape.Members) {
	shape.String(m, "name", s.Name)
	shape.String(m, "arn", s.Arn)
	shape.String(m, "supportCode", s.SupportCode)
	shape.Timestamp(m, "createdAt", s.CreatedAt)
	shape.Struct(m, "location", s.Location)
	shape.Enum(m, "resourceType", s.ResourceType, ResourceType("").Values())
	shape.String(m, "ipAddress", s.IpAddress)
	shape.String(m, "attachedTo", s.AttachedTo)
	shape.Boolean(m, "isAttached", s.IsAttached)
}

func (s *StaticIp) WithName(v string) *StaticIp {
	s.Name = aws.String(v)
	return s
}

func (s *StaticIp) WithArn(v string) *StaticIp {
	s.Arn = aws.String(v)
	return s
}

func (s *StaticIp) WithSupportCode(v string) *StaticIp {
	s.SupportCode = aws.String(v)
	return s
}

func (s *StaticIp) WithCreatedAt(v time.Time) *StaticIp {
	s.CreatedAt = aws.Time(v)
	return s
}

func (s *StaticIp) WithLocation(v *ResourceLocation) *StaticIp {
	s.Location = v
	return s
}

func (s *StaticIp) WithResourceType(v ResourceType) *StaticIp {
	s.ResourceType = &v
	return s
}

func (s *StaticIp) WithIpAddress(v string) *StaticIp {
	s.IpAddress = aws.String(v)
	return s
}

func (s *StaticIp) WithAttachedTo(v string) *StaticIp {
	s.AttachedTo = aws.String(v)
	return s
}

func (s *StaticIp) WithIsAttached(v bool) *StaticIp {
	s.IsAttached = aws.Bool(v)
	return s
}

func (s *StaticIp) Equal(o *StaticIp) bool { return shape.Equal(s, o) }

func (s *StaticIp) Hash() uint64 { return shape.Hash(s) }

func (s *StaticIp) String() string { return shape.Render(s) }

type AllocateStaticIpRequest struct {
	StaticIpName *string `json:"staticIpName,omitempty"`
}

func (*AllocateStaticIpRequest) ShapeName() string { return "AllocateStaticIpRequest" }

func (a *AllocateStaticIpRequest) Members(m *shape.Members) {
	shape.String(m, "staticIpName", a.StaticIpName)
}

func (a *AllocateStaticIpRequest) WithStaticIpName(v string) *AllocateStaticIpRequest {
	a.StaticIpName = aws.String(v)
	return a
}

func (a *AllocateStaticIpRequest) Equal(o *AllocateStaticIpRequest) bool { return shape.Equal(a, o) }

func (a *AllocateStaticIpRequest) Hash() uint64 { return shape.Hash(a) }

func (a *AllocateStaticIpRequest) String() string { return shape.Render(a) }

type AllocateStaticIpResult struct {
	Operations []Operation `json:"operations,omitempty"`
}

func (*AllocateStaticIpResult) ShapeName() string { return "AllocateStaticIpResult" }

func (a *AllocateStaticIpResult) Members(m *shape.Members) {
	shape.StructList(m, "operations", a.Operations)
}

func (a *AllocateStaticIpResult) WithOperations(v ...Operation) *AllocateStaticIpResult {
	shape.Append(&a.Operations, v...)
	return a
}

func (a *AllocateStaticIpResult) SetOperations(v []Operation) {
	a.Operations = shape.CopyList(v)
}

func (a *AllocateStaticIpResult) Equal(o *AllocateStaticIpResult) bool { return shape.Equal(a, o) }

func (a *AllocateStaticIpResult) Hash() uint64 { return shape.Hash(a) }

func (a *AllocateStaticIpResult) String() string { return shape.Render(a) }

type GetStaticIpRequest struct {
	StaticIpName *string `json:"staticIpName,omitempty"`
}

func (*GetStaticIpRequest) ShapeName() string { return "GetStaticIpRequest" }

func (g *GetStaticIpRequest) Members(m *shape.Members) {
	shape.String(m, "staticIpName", g.StaticIpName)
}

func (g *GetStaticIpRequest) WithStaticIpName(v string) *GetStaticIpRequest {
	g.StaticIpName = aws.String(v)
	return g
}

func (g *GetStaticIpRequest) Equal(o *GetStaticIpRequest) bool { return shape.Equal(g, o) }

func (g *GetStaticIpRequest) Hash() uint64 { return shape.Hash(g) }

func (g *GetStaticIpRequest) String() string { return shape.Render(g) }

type GetStaticIpResult struct {
	StaticIp *StaticIp `json:"staticIp,omitempty"`
}

func (*GetStaticIpResult) ShapeName() string { return "GetStaticIpResult" }

func (g *GetStaticIpResult) Members(m *shape.Members) {
	shape.Struct(m, "staticIp", g.StaticIp)
}

func (g *GetStaticIpResult) WithStaticIp(v *StaticIp) *GetStaticIpResult {
	g.StaticIp = v
	return g
}

func (g *GetStaticIpResult) Equal(o *GetStaticIpResult) bool { return shape.Equal(g, o) }

func (g *GetStaticIpResult) Hash() uint64 { return shape.Hash(g) }

func (g *GetStaticIpResult) String() string { return shape.Render(g) }
