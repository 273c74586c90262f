// Where: pkg/lightsail/domain.go
// What: DNS domain and domain entry model objects.
package lightsail

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

// DomainEntry is a DNS record inside a Lightsail domain.
type DomainEntry struct {
	Id     *string `json:"id,omitempty"`
	Name   *string `json:"name,omitempty"`
	Target *string `json:"target,omitempty"`

	// Alias records point at a load balancer, distribution, or container
	// service.
	IsAlias *bool `json:"isAlias,omitempty"`

	// A, AAAA, CNAME, MX, NS, SOA, SRV, or TXT.
	Type *string `json:"type,omitempty"`

	// Deprecated by the service; kept because older responses still carry it.
	Options map[string]string `json:"options,omitempty"`
}

func (*DomainEntry) ShapeName() string { return "DomainEntry" }

func (d *DomainEntry) Members(m *shape.Members) {
	shape.String(m, "id", d.Id)
	shape.String(m, "name", d.Name)
	shape.String(m, "target", d.Target)
	shape.Boolean(m, "isAlias", d.IsAlias)
	shape.String(m, "type", d.Type)
	shape.StringMap(m, "options", d.Options)
}

func (d *DomainEntry) WithId(v string) *DomainEntry {
	d.Id = aws.String(v)
	return d
}

func (d *DomainEntry) WithName(v string) *DomainEntry {
	d.Name = aws.String(v)
	return d
}

func (d *DomainEntry) WithTarget(v string) *DomainEntry {
	d.Target = aws.String(v)
	return d
}

func (d *DomainEntry) WithIsAlias(v bool) *DomainEntry {
	d.IsAlias = aws.Bool(v)
	return d
}

func (d *DomainEntry) WithType(v string) *DomainEntry {
	d.Type = aws.String(v)
	return d
}

func (d *DomainEntry) WithOptions(v map[string]string) *DomainEntry {
	d.Options = shape.CopyMap(v)
	return d
}

// AddOptionsEntry inserts one options entry. A key that is already
// present is a *shape.UsageError and leaves the map unchanged.
func (d *DomainEntry) AddOptionsEntry(key string, value string) error {
	return shape.AddEntry(&d.Options, d.ShapeName(), "options", key, value)
}

// ClearOptionsEntries resets options to absent.
func (d *DomainEntry) ClearOptionsEntries() *DomainEntry {
	d.Options = nil
	return d
}

// Equal reports whether d and o hold the same members.
func (d *DomainEntry) Equal(o *DomainEntry) bool { return shape.Equal(d, o) }

// Hash is consistent with Equal.
func (d *DomainEntry) Hash() uint64 { return shape.Hash(d) }

// String renders only the members that are present.
func (d *DomainEntry) String() string { return shape.Render(d) }

// Domain describes a DNS zone managed by Lightsail.
type Domain struct {
	Name          *string           `json:"name,omitempty"`
	Arn           *string           `json:"arn,omitempty"`
	SupportCode   *string           `json:"supportCode,omitempty"`
	CreatedAt     *time.Time        `json:"createdAt,omitempty"`
	Location      *ResourceLocation `json:"location,omitempty"`
	ResourceType  *ResourceType     `json:"resourceType,omitempty"`
	Tags          []Tag             `json:"tags,omitempty"`
	DomainEntries []DomainEntry     `json:"domainEntries,omitempty"`
}

func (*Domain) ShapeName() string { return "Domain" }

func (d *Domain) Members(m *shape.Members) {
	shape.String(m, "name", d.Name)
	shape.String(m, "arn", d.Arn)
	shape.String(m, "supportCode", d.SupportCode)
	shape.Timestamp(m, "createdAt", d.CreatedAt)
	shape.Struct(m, "location", d.Location)
	shape.Enum(m, "resourceType", d.ResourceType, ResourceType("").Values())
	shape.StructList(m, "tags", d.Tags)
	shape.StructList(m, "domainEntries", d.DomainEntries)
}

func (d *Domain) WithName(v string) *Domain {
	d.Name = aws.String(v)
	return d
}

func (d *Domain) WithArn(v string) *Domain {
	d.Arn = aws.String(v)
	return d
}

func (d *Domain) WithSupportCode(v string) *Domain {
	d.SupportCode = aws.String(v)
	return d
}

func (d *Domain) WithCreatedAt(v time.Time) *Domain {
	d.CreatedAt = aws.Time(v)
	return d
}

func (d *Domain) WithLocation(v *ResourceLocation) *Domain {
	d.Location = v
	return d
}

func (d *Domain) WithResourceType(v ResourceType) *Domain {
	d.ResourceType = &v
	return d
}

func (d *Domain) WithTags(v ...Tag) *Domain {
	shape.Append(&d.Tags, v...)
	return d
}

func (d *Domain) SetTags(v []Tag) {
	d.Tags = shape.CopyList(v)
}

func (d *Domain) WithDomainEntries(v ...DomainEntry) *Domain {
	shape.Append(&d.DomainEntries, v...)
	return d
}

func (d *Domain) SetDomainEntries(v []DomainEntry) {
	d.DomainEntries = shape.CopyList(v)
}

// Equal reports whether d and o hold the same members.
func (d *Domain) Equal(o *Domain) bool { return shape.Equal(d, o) }

// Hash is consistent with Equal.
func (d *Domain) Hash() uint64 { return shape.Hash(d) }

// String renders only the members that are present.
func (d *Domain) String() string { return shape.Render(d) }

type CreateDomainEntryRequest struct {
	DomainName  *string      `json:"domainName,omitempty"`
	DomainEntry *DomainEntry `json:"domainEntry,omitempty"`
}

func (*CreateDomainEntryRequest) ShapeName() string { return "CreateDomainEntryRequest" }

func (c *CreateDomainEntryRequest) Members(m *shape.Members) {
	shape.String(m, "domainName", c.DomainName)
	shape.Struct(m, "domainEntry", c.DomainEntry)
}

func (c *CreateDomainEntryRequest) WithDomainName(v string) *CreateDomainEntryRequest {
	c.DomainName = aws.String(v)
	return c
}

func (c *CreateDomainEntryRequest) WithDomainEntry(v *DomainEntry) *CreateDomainEntryRequest {
	c.DomainEntry = v
	return c
}

// Equal reports whether c and o hold the same members.
func (c *CreateDomainEntryRequest) Equal(o *CreateDomainEntryRequest) bool { return shape.Equal(c, o) }

// Hash is consistent with Equal.
func (c *CreateDomainEntryRequest) Hash() uint64 { return shape.Hash(c) }

// String renders only the members that are present.
func (c *CreateDomainEntryRequest) String() string { return shape.Render(c) }

type CreateDomainEntryResult struct {
	Operation *Operation `json:"operation,omitempty"`
}

func (*CreateDomainEntryResult) ShapeName() string { return "CreateDomainEntryResult" }

func (c *CreateDomainEntryResult) Members(m *shape.Members) {
	shape.Struct(m, "operation", c.Operation)
}

func (c *CreateDomainEntryResult) WithOperation(v *Operation) *CreateDomainEntryResult {
	c.Operation = v
	return c
}

// Equal reports whether c and o hold the same members.
func (c *CreateDomainEntryResult) Equal(o *CreateDomainEntryResult) bool { return shape.Equal(c, o) }

// Hash is consistent with Equal.
func (c *CreateDomainEntryResult) Hash() uint64 { return shape.Hash(c) }

// String renders only the members that are present.
func (c *CreateDomainEntryResult) String() string { return shape.Render(c) }
