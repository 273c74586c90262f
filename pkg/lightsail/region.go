// Where: pkg/lightsail/region.go
// What: Region listing requests, results, and values.
package lightsail

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

// AvailabilityZone is one zone inside a Region.
type AvailabilityZone struct {
	ZoneName *string `json:"zoneName,omitempty"`
	State    *string `json:"state,omitempty"`
}

func (*AvailabilityZone) ShapeName() string { return "AvailabilityZone" }

func (a *AvailabilityZone) Members(m *shape.Members) {
	shape.String(m, "zoneName", a.ZoneName)
	shape.String(m, "state", a.State)
}

func (a *AvailabilityZone) WithZoneName(v string) *AvailabilityZone {
	a.ZoneName = aws.String(v)
	return a
}

func (a *AvailabilityZone) WithState(v string) *AvailabilityZone {
	a.State = aws.String(v)
	return a
}

func (a *AvailabilityZone) Equal(o *AvailabilityZone) bool { return shape.Equal(a, o) }

func (a *AvailabilityZone) Hash() uint64 { return shape.Hash(a) }

func (a *AvailabilityZone) String() string { return shape.Render(a) }

// Region describes an AWS Region where Lightsail resources can run.
type Region struct {
	ContinentCode *string     `json:"continentCode,omitempty"`
	Description   *string     `json:"description,omitempty"`
	DisplayName   *string     `json:"displayName,omitempty"`
	Name          *RegionName `json:"name,omitempty"`

	// Only filled when the request asks for zones.
	AvailabilityZones                   []AvailabilityZone `json:"availabilityZones,omitempty"`
	RelationalDatabaseAvailabilityZones []AvailabilityZone `json:"relationalDatabaseAvailabilityZones,omitempty"`
}

func (*Region) ShapeName() string { return "Region" }

func (r *Region) Members(m *shape.Members) {
	shape.String(m, "continentCode", r.ContinentCode)
	shape.String(m, "description", r.Description)
	shape.String(m, "displayName", r.DisplayName)
	shape.Enum(m, "name", r.Name, RegionName("").Values())
	shape.StructList(m, "availabilityZones", r.AvailabilityZones)
	shape.StructList(m, "relationalDatabaseAvailabilityZones", r.RelationalDatabaseAvailabilityZones)
}

func (r *Region) WithContinentCode(v string) *Region {
	r.ContinentCode = aws.String(v)
	return r
}

func (r *Region) WithDescription(v string) *Region {
	r.Description = aws.String(v)
	return r
}

func (r *Region) WithDisplayName(v string) *Region {
	r.DisplayName = aws.String(v)
	return r
}

func (r *Region) WithName(v RegionName) *Region {
	r.Name = &v
	return r
}

func (r *Region) WithAvailabilityZones(v ...AvailabilityZone) *Region {
	shape.Append(&r.AvailabilityZones, v...)
	return r
}

func (r *Region) SetAvailabilityZones(v []AvailabilityZone) {
	r.AvailabilityZones = shape.CopyList(v)
}

func (r *Region) WithRelationalDatabaseAvailabilityZones(v ...AvailabilityZone) *Region {
	shape.Append(&r.RelationalDatabaseAvailabilityZones, v...)
	return r
}

func (r *Region) SetRelationalDatabaseAvailabilityZones(v []AvailabilityZone) {
	r.RelationalDatabaseAvailabilityZones = shape.CopyList(v)
}

func (r *Region) Equal(o *Region) bool { return shape.Equal(r, o) }

func (r *Region) Hash() uint64 { return shape.Hash(r) }

func (r *Region) String() string { return shape.Render(r) }

// GetRegionsRequest lists the Regions available to the account.
type GetRegionsRequest struct {
	IncludeAvailabilityZones                   *bool `json:"includeAvailabilityZones,omitempty"`
	IncludeRelationalDatabaseAvailabilityZones *bool `json:"includeRelationalDatabaseAvailabilityZones,omitempty"`
}

func (*GetRegionsRequest) ShapeName() string { return "GetRegionsRequest" }

func (g *GetRegionsRequest) Members(m *shape.Members) {
	shape.Boolean(m, "includeAvailabilityZones", g.IncludeAvailabilityZones)
	shape.Boolean(m, "includeRelationalDatabaseAvailabilityZones", g.IncludeRelationalDatabaseAvailabilityZones)
}

func (g *GetRegionsRequest) WithIncludeAvailabilityZones(v bool) *GetRegionsRequest {
	g.IncludeAvailabilityZones = aws.Bool(v)
	return g
}

func (g *GetRegionsRequest) WithIncludeRelationalDatabaseAvailabilityZones(v bool) *GetRegionsRequest {
	g.IncludeRelationalDatabaseAvailabilityZones = aws.Bool(v)
	return g
}

func (g *GetRegionsRequest) Equal(o *GetRegionsRequest) bool { return shape.Equal(g, o) }

func (g *GetRegionsRequest) Hash() uint64 { return shape.Hash(g) }

func (g *GetRegionsRequest) String() string { return shape.Render(g) }

// GetRegionsResult carries the Regions returned by GetRegions.
type GetRegionsResult struct {
	Regions []Region `json:"regions,omitempty"`
}

func (*GetRegionsResult) ShapeName() string { return "GetRegionsResult" }

func (g *GetRegionsResult) Members(m *shape.Members) {
	shape.StructList(m, "regions", g.Regions)
}

func (g *GetRegionsResult) WithRegions(v ...Region) *GetRegionsResult {
	shape.Append(&g.Regions, v...)
	return g
}

func (g *GetRegionsResult) SetRegions(v []Region) {
	g.Regions = shape.CopyList(v)
}

func (g *GetRegionsResult) Equal(o *GetRegionsResult) bool { return shape.Equal(g, o) }

func (g *GetRegionsResult) Hash() uint64 { return shape.Hash(g) }

func (g *GetRegionsResult) String() string { return shape.Render(g) }
