// Where: pkg/lightsail/database.go
// What: Managed database model objects.
// Why: Databases carry the only sensitive members in the package.
package lightsail

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

type RelationalDatabaseHardware struct {
	CpuCount     *int32   `json:"cpuCount,omitempty"`
	DiskSizeInGb *int32   `json:"diskSizeInGb,omitempty"`
	RamSizeInGb  *float32 `json:"ramSizeInGb,omitempty"`
}

func (*RelationalDatabaseHardware) ShapeName() string { return "RelationalDatabaseHardware" }

func (r *RelationalDatabaseHardware) Members(m *shape.Members) {
	shape.Integer(m, "cpuCount", r.CpuCount)
	shape.Integer(m, "diskSizeInGb", r.DiskSizeInGb)
	shape.Float(m, "ramSizeInGb", r.RamSizeInGb)
}

func (r *RelationalDatabaseHardware) WithCpuCount(v int32) *RelationalDatabaseHardware {
	r.CpuCount = aws.Int32(v)
	return r
}

func (r *RelationalDatabaseHardware) WithDiskSizeInGb(v int32) *RelationalDatabaseHardware {
	r.DiskSizeInGb = aws.Int32(v)
	return r
}

func (r *RelationalDatabaseHardware) WithRamSizeInGb(v float32) *RelationalDatabaseHardware {
	r.RamSizeInGb = aws.Float32(v)
	return r
}

func (r *RelationalDatabaseHardware) Equal(o *RelationalDatabaseHardware) bool { return shape.Equal(r, o) }

func (r *RelationalDatabaseHardware) Hash() uint64 { return shape.Hash(r) }

func (r *RelationalDatabaseHardware) String() string { return shape.Render(r) }

type RelationalDatabaseEndpoint struct {
	Port    *int32  `json:"port,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (*RelationalDatabaseEndpoint) ShapeName() string { return "RelationalDatabaseEndpoint" }

func (r *RelationalDatabaseEndpoint) Members(m *shape.Members) {
	shape.Integer(m, "port", r.Port)
	shape.String(m, "address", r.Address)
}

func (r *RelationalDatabaseEndpoint) WithPort(v int32) *RelationalDatabaseEndpoint {
	r.Port = aws.Int32(v)
	return r
}

func (r *RelationalDatabaseEndpoint) WithAddress(v string) *RelationalDatabaseEndpoint {
	r.Address = aws.String(v)
	return r
}

func (r *RelationalDatabaseEndpoint) Equal(o *RelationalDatabaseEndpoint) bool { return shape.Equal(r, o) }

func (r *RelationalDatabaseEndpoint) Hash() uint64 { return shape.Hash(r) }

func (r *RelationalDatabaseEndpoint) String() string { return shape.Render(r) }

// PendingModifiedRelationalDatabaseValues lists changes not yet applied.
type PendingModifiedRelationalDatabaseValues struct {
	MasterUserPassword     *string `json:"masterUserPassword,omitempty"`
	EngineVersion          *string `json:"engineVersion,omitempty"`
	BackupRetentionEnabled *bool   `json:"backupRetentionEnabled,omitempty"`
}

func (*PendingModifiedRelationalDatabaseValues) ShapeName() string { return "PendingModifiedRelationalDatabaseValues" }

func (p *PendingModifiedRelationalDatabaseValues) Members(m *shape.Members) {
	shape.String(m, "masterUserPassword", p.MasterUserPassword, shape.Sensitive())
	shape.String(m, "engineVersion", p.EngineVersion)
	shape.Boolean(m, "backupRetentionEnabled", p.BackupRetentionEnabled)
}

func (p *PendingModifiedRelationalDatabaseValues) WithMasterUserPassword(v string) *PendingModifiedRelationalDatabaseValues {
	p.MasterUserPassword = aws.String(v)
	return p
}

func (p *PendingModifiedRelationalDatabaseValues) WithEngineVersion(v string) *PendingModifiedRelationalDatabaseValues {
	p.EngineVersion = aws.String(v)
	return p
}

func (p *PendingModifiedRelationalDatabaseValues) WithBackupRetentionEnabled(v bool) *PendingModifiedRelationalDatabaseValues {
	p.BackupRetentionEnabled = aws.Bool(v)
	return p
}

func (p *PendingModifiedRelationalDatabaseValues) Equal(o *PendingModifiedRelationalDatabaseValues) bool { return shape.Equal(p, o) }

func (p *PendingModifiedRelationalDatabaseValues) Hash() uint64 { return shape.Hash(p) }

func (p *PendingModifiedRelationalDatabaseValues) String() string { return shape.Render(p) }

type PendingMaintenanceAction struct {
	Action           *string    `json:"action,omitempty"`
	Description      *string    `json:"description,omitempty"`
	CurrentApplyDate *time.Time `json:"currentApplyDate,omitempty"`
}

func (*PendingMaintenanceAction) ShapeName() string { return "PendingMaintenanceAction" }

func (p *PendingMaintenanceAction) Members(m *shape.Members) {
	shape.String(m, "action", p.Action)
	shape.String(m, "description", p.Description)
	shape.Timestamp(m, "currentApplyDate", p.CurrentApplyDate)
}

func (p *PendingMaintenanceAction) WithAction(v string) *PendingMaintenanceAction {
	p.Action = aws.String(v)
	return p
}

func (p *PendingMaintenanceAction) WithDescription(v string) *PendingMaintenanceAction {
	p.Description = aws.String(v)
	return p
}

func (p *PendingMaintenanceAction) WithCurrentApplyDate(v time.Time) *PendingMaintenanceAction {
	p.CurrentApplyDate = aws.Time(v)
	return p
}

func (p *PendingMaintenanceAction) Equal(o *PendingMaintenanceAction) bool { return shape.Equal(p, o) }

func (p *PendingMaintenanceAction) Hash() uint64 { return shape.Hash(p) }

func (p *PendingMaintenanceAction) String() string { return shape.Render(p) }

// RelationalDatabase describes a managed database.
type RelationalDatabase struct {
	Name                          *string                     `json:"name,omitempty"`
	Arn                           *string                     `json:"arn,omitempty"`
	SupportCode                   *string                     `json:"supportCode,omitempty"`
	CreatedAt                     *time.Time                  `json:"createdAt,omitempty"`
	Location                      *ResourceLocation           `json:"location,omitempty"`
	ResourceType                  *ResourceType               `json:"resourceType,omitempty"`
	Tags                          []Tag                       `json:"tags,omitempty"`
	RelationalDatabaseBlueprintId *string                     `json:"relationalDatabaseBlueprintId,omitempty"`
	RelationalDatabaseBundleId    *string                     `json:"relationalDatabaseBundleId,omitempty"`
	MasterDatabaseName            *string                     `json:"masterDatabaseName,omitempty"`
	Hardware                      *RelationalDatabaseHardware `json:"hardware,omitempty"`
	State                         *string                     `json:"state,omitempty"`

	// Only set for high availability databases.
	SecondaryAvailabilityZone  *string                                  `json:"secondaryAvailabilityZone,omitempty"`
	BackupRetentionEnabled     *bool                                    `json:"backupRetentionEnabled,omitempty"`
	PendingModifiedValues      *PendingModifiedRelationalDatabaseValues `json:"pendingModifiedValues,omitempty"`
	Engine                     *string                                  `json:"engine,omitempty"`
	EngineVersion              *string                                  `json:"engineVersion,omitempty"`
	LatestRestorableTime       *time.Time                               `json:"latestRestorableTime,omitempty"`
	MasterUsername             *string                                  `json:"masterUsername,omitempty"`
	ParameterApplyStatus       *string                                  `json:"parameterApplyStatus,omitempty"`
	PreferredBackupWindow      *string                                  `json:"preferredBackupWindow,omitempty"`
	PreferredMaintenanceWindow *string                                  `json:"preferredMaintenanceWindow,omitempty"`
	PubliclyAccessible         *bool                                    `json:"publiclyAccessible,omitempty"`
	MasterEndpoint             *RelationalDatabaseEndpoint              `json:"masterEndpoint,omitempty"`
	PendingMaintenanceActions  []PendingMaintenanceAction               `json:"pendingMaintenanceActions,omitempty"`
	CaCertificateIdentifier    *string                                  `json:"caCertificateIdentifier,omitempty"`
}

func (*RelationalDatabase) ShapeName() string { return "RelationalDatabase" }

func (r *RelationalDatabase) Members(m *shape.Members) {
	shape.String(m, "name", r.Name)
	shape.String(m, "arn", r.Arn)
	shape.String(m, "supportCode", r.SupportCode)
	shape.Timestamp(m, "createdAt", r.CreatedAt)
	shape.Struct(m, "location", r.Location)
	shape.Enum(m, "resourceType", r.ResourceType, ResourceType("").Values())
	shape.StructList(m, "tags", r.Tags)
	shape.String(m, "relationalDatabaseBlueprintId", r.RelationalDatabaseBlueprintId)
	shape.String(m, "relationalDatabaseBundleId", r.RelationalDatabaseBundleId)
	shape.String(m, "masterDatabaseName", r.MasterDatabaseName)
	shape.Struct(m, "hardware", r.Hardware)
	shape.String(m, "state", r.State)
	shape.String(m, "secondaryAvailabilityZone", r.SecondaryAvailabilityZone)
	shape.Boolean(m, "backupRetentionEnabled", r.BackupRetentionEnabled)
	shape.Struct(m, "pendingModifiedValues", r.PendingModifiedValues)
	shape.String(m, "engine", r.Engine)
	shape.String(m, "engineVersion", r.EngineVersion)
	shape.Timestamp(m, "latestRestorableTime", r.LatestRestorableTime)
	shape.String(m, "masterUsername", r.MasterUsername)
	shape.String(m, "parameterApplyStatus", r.ParameterApplyStatus)
	shape.String(m, "preferredBackupWindow", r.PreferredBackupWindow)
	shape.String(m, "preferredMaintenanceWindow", r.PreferredMaintenanceWindow)
	shape.Boolean(m, "publiclyAccessible", r.PubliclyAccessible)
	shape.Struct(m, "masterEndpoint", r.MasterEndpoint)
	shape.StructList(m, "pendingMaintenanceActions", r.PendingMaintenanceActions)
	shape.String(m, "caCertificateIdentifier", r.CaCertificateIdentifier)
}

func (r *RelationalDatabase) WithName(v string) *RelationalDatabase {
	r.Name = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithArn(v string) *RelationalDatabase {
	r.Arn = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithSupportCode(v string) *RelationalDatabase {
	r.SupportCode = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithCreatedAt(v time.Time) *RelationalDatabase {
	r.CreatedAt = aws.Time(v)
	return r
}

func (r *RelationalDatabase) WithLocation(v *ResourceLocation) *RelationalDatabase {
	r.Location = v
	return r
}

func (r *RelationalDatabase) WithResourceType(v ResourceType) *RelationalDatabase {
	r.ResourceType = &v
	return r
}

func (r *RelationalDatabase) WithTags(v ...Tag) *RelationalDatabase {
	shape.Append(&r.Tags, v...)
	return r
}

func (r *RelationalDatabase) SetTags(v []Tag) {
	r.Tags = shape.CopyList(v)
}

func (r *RelationalDatabase) WithRelationalDatabaseBlueprintId(v string) *RelationalDatabase {
	r.RelationalDatabaseBlueprintId = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithRelationalDatabaseBundleId(v string) *RelationalDatabase {
	r.RelationalDatabaseBundleId = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithMasterDatabaseName(v string) *RelationalDatabase {
	r.MasterDatabaseName = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithHardware(v *RelationalDatabaseHardware) *RelationalDatabase {
	r.Hardware = v
	return r
}

func (r *RelationalDatabase) WithState(v string) *RelationalDatabase {
	r.State = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithSecondaryAvailabilityZone(v string) *RelationalDatabase {
	r.SecondaryAvailabilityZone = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithBackupRetentionEnabled(v bool) *RelationalDatabase {
	r.BackupRetentionEnabled = aws.Bool(v)
	return r
}

func (r *RelationalDatabase) WithPendingModifiedValues(v *PendingModifiedRelationalDatabaseValues) *RelationalDatabase {
	r.PendingModifiedValues = v
	return r
}

func (r *RelationalDatabase) WithEngine(v string) *RelationalDatabase {
	r.Engine = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithEngineVersion(v string) *RelationalDatabase {
	r.EngineVersion = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithLatestRestorableTime(v time.Time) *RelationalDatabase {
	r.LatestRestorableTime = aws.Time(v)
	return r
}

func (r *RelationalDatabase) WithMasterUsername(v string) *RelationalDatabase {
	r.MasterUsername = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithParameterApplyStatus(v string) *RelationalDatabase {
	r.ParameterApplyStatus = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithPreferredBackupWindow(v string) *RelationalDatabase {
	r.PreferredBackupWindow = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithPreferredMaintenanceWindow(v string) *RelationalDatabase {
	r.PreferredMaintenanceWindow = aws.String(v)
	return r
}

func (r *RelationalDatabase) WithPubliclyAccessible(v bool) *RelationalDatabase {
	r.PubliclyAccessible = aws.Bool(v)
	return r
}

func (r *RelationalDatabase) WithMasterEndpoint(v *RelationalDatabaseEndpoint) *RelationalDatabase {
	r.MasterEndpoint = v
	return r
}

func (r *RelationalDatabase) WithPendingMaintenanceActions(v ...PendingMaintenanceAction) *RelationalDatabase {
	shape.Append(&r.PendingMaintenanceActions, v...)
	return r
}

func (r *RelationalDatabase) SetPendingMaintenanceActions(v []PendingMaintenanceAction) {
	r.PendingMaintenanceActions = shape.CopyList(v)
}

func (r *RelationalDatabase) WithCaCertificateIdentifier(v string) *RelationalDatabase {
	r.CaCertificateIdentifier = aws.String(v)
	return r
}

func (r *RelationalDatabase) Equal(o *RelationalDatabase) bool { return shape.Equal(r, o) }

func (r *RelationalDatabase) Hash() uint64 { return shape.Hash(r) }

func (r *RelationalDatabase) String() string { return shape.Render(r) }

// CreateRelationalDatabaseRequest creates a managed database.
type CreateRelationalDatabaseRequest struct {
	RelationalDatabaseName        *string `json:"relationalDatabaseName,omitempty"`
	AvailabilityZone              *string `json:"availabilityZone,omitempty"`
	RelationalDatabaseBlueprintId *string `json:"relationalDatabaseBlueprintId,omitempty"`
	RelationalDatabaseBundleId    *string `json:"relationalDatabaseBundleId,omitempty"`
	MasterDatabaseName            *string `json:"masterDatabaseName,omitempty"`
	MasterUsername                *string `json:"masterUsername,omitempty"`

	// Printable ASCII except "/", double quote, or "@". Never rendered.
	MasterUserPassword *string `json:"masterUserPassword,omitempty"`

	// hh24:mi-hh24:mi in UTC, at least 30 minutes.
	PreferredBackupWindow *string `json:"preferredBackupWindow,omitempty"`

	// ddd:hh24:mi-ddd:hh24:mi in UTC.
	PreferredMaintenanceWindow *string `json:"preferredMaintenanceWindow,omitempty"`
	PubliclyAccessible         *bool   `json:"publiclyAccessible,omitempty"`
	Tags                       []Tag   `json:"tags,omitempty"`
}

func (*CreateRelationalDatabaseRequest) ShapeName() string { return "CreateRelationalDatabaseRequest" }

func (c *CreateRelationalDatabaseRequest) Members(m *shape.Members) {
	shape.String(m, "relationalDatabaseName", c.RelationalDatabaseName)
	shape.String(m, "availabilityZone", c.AvailabilityZone)
	shape.String(m, "relationalDatabaseBlueprintId", c.RelationalDatabaseBlueprintId)
	shape.String(m, "relationalDatabaseBundleId", c.RelationalDatabaseBundleId)
	shape.String(m, "masterDatabaseName", c.MasterDatabaseName)
	shape.String(m, "masterUsername", c.MasterUsername)
	shape.String(m, "masterUserPassword", c.MasterUserPassword, shape.Sensitive())
	shape.String(m, "preferredBackupWindow", c.PreferredBackupWindow)
	shape.String(m, "preferredMaintenanceWindow", c.PreferredMaintenanceWindow)
	shape.Boolean(m, "publiclyAccessible", c.PubliclyAccessible)
	shape.StructList(m, "tags", c.Tags)
}

func (c *CreateRelationalDatabaseRequest) WithRelationalDatabaseName(v string) *CreateRelationalDatabaseRequest {
	c.RelationalDatabaseName = aws.String(v)
	return c
}

func (c *CreateRelationalDatabaseRequest) WithAvailabilityZone(v string) *CreateRelationalDatabaseRequest {
	c.AvailabilityZone = aws.String(v)
	return c
}

func (c *CreateRelationalDatabaseRequest) WithRelationalDatabaseBlueprintId(v string) *CreateRelationalDatabaseRequest {
	c.RelationalDatabaseBlueprintId = aws.String(v)
	return c
}

func (c *CreateRelationalDatabaseRequest) WithRelationalDatabaseBundleId(v string) *CreateRelationalDatabaseRequest {
	c.RelationalDatabaseBundleId = aws.String(v)
	return c
}

func (c *CreateRelationalDatabaseRequest) WithMasterDatabaseName(v string) *CreateRelationalDatabaseRequest {
	c.MasterDatabaseName = aws.String(v)
	return c
}

func (c *CreateRelationalDatabaseRequest) WithMasterUsername(v string) *CreateRelationalDatabaseRequest {
	c.MasterUsername = aws.String(v)
	return c
}

func (c *CreateRelationalDatabaseRequest) WithMasterUserPassword(v string) *CreateRelationalDatabaseRequest {
	c.MasterUserPassword = aws.String(v)
	return c
}

func (c *CreateRelationalDatabaseRequest) WithPreferredBackupWindow(v string) *CreateRelationalDatabaseRequest {
	c.PreferredBackupWindow = aws.String(v)
	return c
}

func (c *CreateRelationalDatabaseRequest) WithPreferredMaintenanceWindow(v string) *CreateRelationalDatabaseRequest {
	c.PreferredMaintenanceWindow = aws.String(v)
	return c
}

func (c *CreateRelationalDatabaseRequest) WithPubliclyAccessible(v bool) *CreateRelationalDatabaseRequest {
	c.PubliclyAccessible = aws.Bool(v)
	return c
}

func (c *CreateRelationalDatabaseRequest) WithTags(v ...Tag) *CreateRelationalDatabaseRequest {
	shape.Append(&c.Tags, v...)
	return c
}

func (c *CreateRelationalDatabaseRequest) SetTags(v []Tag) {
	c.Tags = shape.CopyList(v)
}

func (c *CreateRelationalDatabaseRequest) Equal(o *CreateRelationalDatabaseRequest) bool { return shape.Equal(c, o) }

func (c *CreateRelationalDatabaseRequest) Hash() uint64 { return shape.Hash(c) }

func (c *CreateRelationalDatabaseRequest) String() string { return shape.Render(c) }

type CreateRelationalDatabaseResult struct {
	Operations []Operation `json:"operations,omitempty"`
}

func (*CreateRelationalDatabaseResult) ShapeName() string { return "CreateRelationalDatabaseResult" }

func (c *CreateRelationalDatabaseResult) Members(m *shape.Members) {
	shape.StructList(m, "operations", c.Operations)
}

func (c *CreateRelationalDatabaseResult) WithOperations(v ...Operation) *CreateRelationalDatabaseResult {
	shape.Append(&c.Operations, v...)
	return c
}

func (c *CreateRelationalDatabaseResult) SetOperations(v []Operation) {
	c.Operations = shape.CopyList(v)
}

func (c *CreateRelationalDatabaseResult) Equal(o *CreateRelationalDatabaseResult) bool { return shape.Equal(c, o) }

func (c *CreateRelationalDatabaseResult) Hash() uint64 { return shape.Hash(c) }

func (c *CreateRelationalDatabaseResult) String() string { return shape.Render(c) }

type MetricDatapoint struct {
	Average     *float64    `json:"average,omitempty"`
	Maximum     *float64    `json:"maximum,omitempty"`
	Minimum     *float64    `json:"minimum,omitempty"`
	SampleCount *float64    `json:"sampleCount,omitempty"`
	Sum         *float64    `json:"sum,omitempty"`
	Timestamp   *time.Time  `json:"timestamp,omitempty"`
	Unit        *MetricUnit `json:"unit,omitempty"`
}

func (*MetricDatapoint) ShapeName() string { return "MetricDatapoint" }

func (md *MetricDatapoint) Members(m *shape.Members) {
	shape.Double(m, "average", md.Average)
	shape.Double(m, "maximum", md.Maximum)
	shape.Double(m, "minimum", md.Minimum)
	shape.Double(m, "sampleCount", md.SampleCount)
	shape.Double(m, "sum", md.Sum)
	shape.Timestamp(m, "timestamp", md.Timestamp)
	shape.Enum(m, "unit", md.Unit, MetricUnit("").Values())
}

func (md *MetricDatapoint) WithAverage(v float64) *MetricDatapoint {
	md.Average = aws.Float64(v)
	return md
}

func (md *MetricDatapoint) WithMaximum(v float64) *MetricDatapoint {
	md.Maximum = aws.Float64(v)
	return md
}

func (md *MetricDatapoint) WithMinimum(v float64) *MetricDatapoint {
	md.Minimum = aws.Float64(v)
	return md
}

func (md *MetricDatapoint) WithSampleCount(v float64) *MetricDatapoint {
	md.SampleCount = aws.Float64(v)
	return md
}

func (md *MetricDatapoint) WithSum(v float64) *MetricDatapoint {
	md.Sum = aws.Float64(v)
	return md
}

func (md *MetricDatapoint) WithTimestamp(v time.Time) *MetricDatapoint {
	md.Timestamp = aws.Time(v)
	return md
}

func (md *MetricDatapoint) WithUnit(v MetricUnit) *MetricDatapoint {
	md.Unit = &v
	return md
}

func (md *MetricDatapoint) Equal(o *MetricDatapoint) bool { return shape.Equal(md, o) }

func (md *MetricDatapoint) Hash() uint64 { return shape.Hash(md) }

func (md *MetricDatapoint) String() string { return shape.Render(md) }

// GetRelationalDatabaseMetricDataRequest fetches datapoints for one database
// metric over a time window.
type GetRelationalDatabaseMetricDataRequest struct {
	RelationalDatabaseName *string                       `json:"relationalDatabaseName,omitempty"`
	MetricName             *RelationalDatabaseMetricName `json:"metricName,omitempty"`

	// Granularity in seconds; a multiple of 60.
	Period     *int32            `json:"period,omitempty"`
	StartTime  *time.Time        `json:"startTime,omitempty"`
	EndTime    *time.Time        `json:"endTime,omitempty"`
	Unit       *MetricUnit       `json:"unit,omitempty"`
	Statistics []MetricStatistic `json:"statistics,omitempty"`
}

func (*GetRelationalDatabaseMetricDataRequest) ShapeName() string { return "GetRelationalDatabaseMetricDataRequest" }

func (g *GetRelationalDatabaseMetricDataRequest) Members(m *shape.Members) {
	shape.String(m, "relationalDatabaseName", g.RelationalDatabaseName)
	shape.Enum(m, "metricName", g.MetricName, RelationalDatabaseMetricName("").Values())
	shape.Integer(m, "period", g.Period)
	shape.Timestamp(m, "startTime", g.StartTime)
	shape.Timestamp(m, "endTime", g.EndTime)
	shape.Enum(m, "unit", g.Unit, MetricUnit("").Values())
	shape.EnumList(m, "statistics", g.Statistics, MetricStatistic("").Values())
}

func (g *GetRelationalDatabaseMetricDataRequest) WithRelationalDatabaseName(v string) *GetRelationalDatabaseMetricDataRequest {
	g.RelationalDatabaseName = aws.String(v)
	return g
}

func (g *GetRelationalDatabaseMetricDataRequest) WithMetricName(v RelationalDatabaseMetricName) *GetRelationalDatabaseMetricDataRequest {
	g.MetricName = &v
	return g
}

func (g *GetRelationalDatabaseMetricDataRequest) WithPeriod(v int32) *GetRelationalDatabaseMetricDataRequest {
	g.Period = aws.Int32(v)
	return g
}

func (g *GetRelationalDatabaseMetricDataRequest) WithStartTime(v time.Time) *GetRelationalDatabaseMetricDataRequest {
	g.StartTime = aws.Time(v)
	return g
}

func (g *GetRelationalDatabaseMetricDataRequest) WithEndTime(v time.Time) *GetRelationalDatabaseMetricDataRequest {
	g.EndTime = aws.Time(v)
	return g
}

func (g *GetRelationalDatabaseMetricDataRequest) WithUnit(v MetricUnit) *GetRelationalDatabaseMetricDataRequest {
	g.Unit = &v
	return g
}

func (g *GetRelationalDatabaseMetricDataRequest) WithStatistics(v ...MetricStatistic) *GetRelationalDatabaseMetricDataRequest {
	shape.Append(&g.Statistics, v...)
	return g
}

func (g *GetRelationalDatabaseMetricDataRequest) SetStatistics(v []MetricStatistic) {
	g.Statistics = shape.CopyList(v)
}

func (g *GetRelationalDatabaseMetricDataRequest) Equal(o *GetRelationalDatabaseMetricDataRequest) bool { return shape.Equal(g, o) }

func (g *GetRelationalDatabaseMetricDataRequest) Hash() uint64 { return shape.Hash(g) }

func (g *GetRelationalDatabaseMetricDataRequest) String() string { return shape.Render(g) }

type GetRelationalDatabaseMetricDataResult struct {
	MetricName *RelationalDatabaseMetricName `json:"metricName,omitempty"`
	MetricData []MetricDatapoint             `json:"metricData,omitempty"`
}

func (*GetRelationalDatabaseMetricDataResult) ShapeName() string { return "GetRelationalDatabaseMetricDataResult" }

func (g *GetRelationalDatabaseMetricDataResult) Members(m *shape.Members) {
	shape.Enum(m, "metricName", g.MetricName, RelationalDatabaseMetricName("").Values())
	shape.StructList(m, "metricData", g.MetricData)
}

func (g *GetRelationalDatabaseMetricDataResult) WithMetricName(v RelationalDatabaseMetricName) *GetRelationalDatabaseMetricDataResult {
	g.MetricName = &v
	return g
}

func (g *GetRelationalDatabaseMetricDataResult) WithMetricData(v ...MetricDatapoint) *GetRelationalDatabaseMetricDataResult {
	shape.Append(&g.MetricData, v...)
	return g
}

func (g *GetRelationalDatabaseMetricDataResult) SetMetricData(v []MetricDatapoint) {
	g.MetricData = shape.CopyList(v)
}

func (g *GetRelationalDatabaseMetricDataResult) Equal(o *GetRelationalDatabaseMetricDataResult) bool { return shape.Equal(g, o) }

func (g *GetRelationalDatabaseMetricDataResult) Hash() uint64 { return shape.Hash(g) }

func (g *GetRelationalDatabaseMetricDataResult) String() string { return shape.Render(g) }
