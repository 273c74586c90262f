// Where: pkg/lightsail/alarm.go
// What: Metric alarm model objects.
package lightsail

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

// MonitoredResourceInfo names the resource an alarm watches.
type MonitoredResourceInfo struct {
	Arn          *string       `json:"arn,omitempty"`
	Name         *string       `json:"name,omitempty"`
	ResourceType *ResourceType `json:"resourceType,omitempty"`
}

func (*MonitoredResourceInfo) ShapeName() string { return "MonitoredResourceInfo" }

func (mri *MonitoredResourceInfo) Members(m *shape.Members) {
	shape.String(m, "arn", mri.Arn)
	shape.String(m, "name", mri.Name)
	shape.Enum(m, "resourceType", mri.ResourceType, ResourceType("").Values())
}

func (mri *MonitoredResourceInfo) WithArn(v string) *MonitoredResourceInfo {
	mri.Arn = aws.String(v)
	return mri
}

func (mri *MonitoredResourceInfo) WithName(v string) *MonitoredResourceInfo {
	mri.Name = aws.String(v)
	return mri
}

func (mri *MonitoredResourceInfo) WithResourceType(v ResourceType) *MonitoredResourceInfo {
	mri.ResourceType = &v
	return mri
}

func (mri *MonitoredResourceInfo) Equal(o *MonitoredResourceInfo) bool { return shape.Equal(mri, o) }

func (mri *MonitoredResourceInfo) Hash() uint64 { return shape.Hash(mri) }

// String renders only the members that are present.
func (mri *MonitoredResourceInfo) String() string { return shape.Render(mri) }

// Alarm describes a metric alarm.
type Alarm struct {
	Name                  *string                `json:"name,omitempty"`
	Arn                   *string                `json:"arn,omitempty"`
	CreatedAt             *time.Time             `json:"createdAt,omitempty"`
	Location              *ResourceLocation      `json:"location,omitempty"`
	ResourceType          *ResourceType          `json:"resourceType,omitempty"`
	SupportCode           *string                `json:"supportCode,omitempty"`
	MonitoredResourceInfo *MonitoredResourceInfo `json:"monitoredResourceInfo,omitempty"`
	ComparisonOperator    *ComparisonOperator    `json:"comparisonOperator,omitempty"`

	// Most recent periods used to decide the alarm state.
	EvaluationPeriods    *int32            `json:"evaluationPeriods,omitempty"`
	Period               *int32            `json:"period,omitempty"`
	Threshold            *float64          `json:"threshold,omitempty"`
	DatapointsToAlarm    *int32            `json:"datapointsToAlarm,omitempty"`
	TreatMissingData     *TreatMissingData `json:"treatMissingData,omitempty"`
	Statistic            *MetricStatistic  `json:"statistic,omitempty"`
	MetricName           *MetricName       `json:"metricName,omitempty"`
	State                *AlarmState       `json:"state,omitempty"`
	Unit                 *MetricUnit       `json:"unit,omitempty"`
	ContactProtocols     []ContactProtocol `json:"contactProtocols,omitempty"`
	NotificationTriggers []AlarmState      `json:"notificationTriggers,omitempty"`
	NotificationEnabled  *bool             `json:"notificationEnabled,omitempty"`
}

func (*Alarm) ShapeName() string { return "Alarm" }

func (a *Alarm) Members(m *shape.Members) {
	shape.String(m, "name", a.Name)
	shape.String(m, "arn", a.Arn)
	shape.Timestamp(m, "createdAt", a.CreatedAt)
	shape.Struct(m, "location", a.Location)
	shape.Enum(m, "resourceType", a.ResourceType, ResourceType("").Values())
	shape.String(m, "supportCode", a.SupportCode)
	shape.Struct(m, "monitoredResourceInfo", a.MonitoredResourceInfo)
	shape.Enum(m, "comparisonOperator", a.ComparisonOperator, ComparisonOperator("").Values())
	shape.Integer(m, "evaluationPeriods", a.EvaluationPeriods)
	shape.Integer(m, "period", a.Period)
	shape.Double(m, "threshold", a.Threshold)
	shape.Integer(m, "datapointsToAlarm", a.DatapointsToAlarm)
	shape.Enum(m, "treatMissingData", a.TreatMissingData, TreatMissingData("").Values())
	shape.Enum(m, "statistic", a.Statistic, MetricStatistic("").Values())
	shape.Enum(m, "metricName", a.MetricName, MetricName("").Values())
	shape.Enum(m, "state", a.State, AlarmState("").Values())
	shape.Enum(m, "unit", a.Unit, MetricUnit("").Values())
	shape.EnumList(m, "contactProtocols", a.ContactProtocols, ContactProtocol("").Values())
	shape.EnumList(m, "notificationTriggers", a.NotificationTriggers, AlarmState("").Values())
	shape.Boolean(m, "notificationEnabled", a.NotificationEnabled)
}

func (a *Alarm) WithName(v string) *Alarm {
	a.Name = aws.String(v)
	return a
}

func (a *Alarm) WithArn(v string) *Alarm {
	a.Arn = aws.String(v)
	return a
}

func (a *Alarm) WithCreatedAt(v time.Time) *Alarm {
	a.CreatedAt = aws.Time(v)
	return a
}

func (a *Alarm) WithLocation(v *ResourceLocation) *Alarm {
	a.Location = v
	return a
}

func (a *Alarm) WithResourceType(v ResourceType) *Alarm {
	a.ResourceType = &v
	return a
}

func (a *Alarm) WithSupportCode(v string) *Alarm {
	a.SupportCode = aws.String(v)
	return a
}

func (a *Alarm) WithMonitoredResourceInfo(v *MonitoredResourceInfo) *Alarm {
	a.MonitoredResourceInfo = v
	return a
}

func (a *Alarm) WithComparisonOperator(v ComparisonOperator) *Alarm {
	a.ComparisonOperator = &v
	return a
}

func (a *Alarm) WithEvaluationPeriods(v int32) *Alarm {
	a.EvaluationPeriods = aws.Int32(v)
	return a
}

func (a *Alarm) WithPeriod(v int32) *Alarm {
	a.Period = aws.Int32(v)
	return a
}

func (a *Alarm) WithThreshold(v float64) *Alarm {
	a.Threshold = aws.Float64(v)
	return a
}

func (a *Alarm) WithDatapointsToAlarm(v int32) *Alarm {
	a.DatapointsToAlarm = aws.Int32(v)
	return a
}

func (a *Alarm) WithTreatMissingData(v TreatMissingData) *Alarm {
	a.TreatMissingData = &v
	return a
}

func (a *Alarm) WithStatistic(v MetricStatistic) *Alarm {
	a.Statistic = &v
	return a
}

func (a *Alarm) WithMetricName(v MetricName) *Alarm {
	a.MetricName = &v
	return a
}

func (a *Alarm) WithState(v AlarmState) *Alarm {
	a.State = &v
	return a
}

func (a *Alarm) WithUnit(v MetricUnit) *Alarm {
	a.Unit = &v
	return a
}

func (a *Alarm) WithContactProtocols(v ...ContactProtocol) *Alarm {
	shape.Append(&a.ContactProtocols, v...)
	return a
}

func (a *Alarm) SetContactProtocols(v []ContactProtocol) {
	a.ContactProtocols = shape.CopyList(v)
}

func (a *Alarm) WithNotificationTriggers(v ...AlarmState) *Alarm {
	shape.Append(&a.NotificationTriggers, v...)
	return a
}

func (a *Alarm) SetNotificationTriggers(v []AlarmState) {
	a.NotificationTriggers = shape.CopyList(v)
}

func (a *Alarm) WithNotificationEnabled(v bool) *Alarm {
	a.NotificationEnabled = aws.Bool(v)
	return a
}

func (a *Alarm) Equal(o *Alarm) bool { return shape.Equal(a, o) }

func (a *Alarm) Hash() uint64 { return shape.Hash(a) }

// String renders only the members that are present.
func (a *Alarm) String() string { return shape.Render(a) }

// PutAlarmRequest creates or replaces an alarm on a monitored resource. An
// alarm with the same name is overwritten.
type PutAlarmRequest struct {
	AlarmName *string `json:"alarmName,omitempty"`

	// The valid metrics depend on the monitored resource type.
	MetricName            *MetricName         `json:"metricName,omitempty"`
	MonitoredResourceName *string             `json:"monitoredResourceName,omitempty"`
	ComparisonOperator    *ComparisonOperator `json:"comparisonOperator,omitempty"`
	Threshold             *float64            `json:"threshold,omitempty"`
	EvaluationPeriods     *int32              `json:"evaluationPeriods,omitempty"`
	DatapointsToAlarm     *int32              `json:"datapointsToAlarm,omitempty"`
	TreatMissingData      *TreatMissingData   `json:"treatMissingData,omitempty"`
	ContactProtocols      []ContactProtocol   `json:"contactProtocols,omitempty"`
	NotificationTriggers  []AlarmState        `json:"notificationTriggers,omitempty"`
	NotificationEnabled   *bool               `json:"notificationEnabled,omitempty"`
}

func (*PutAlarmRequest) ShapeName() string { return "PutAlarmRequest" }

func (p *PutAlarmRequest) Members(m *shape.Members) {
	shape.String(m, "alarmName", p.AlarmName)
	shape.Enum(m, "metricName", p.MetricName, MetricName("").Values())
	shape.String(m, "monitoredResourceName", p.MonitoredResourceName)
	shape.Enum(m, "comparisonOperator", p.ComparisonOperator, ComparisonOperator("").Values())
	shape.Double(m, "threshold", p.Threshold)
	shape.Integer(m, "evaluationPeriods", p.EvaluationPeriods)
	shape.Integer(m, "datapointsToAlarm", p.DatapointsToAlarm)
	shape.Enum(m, "treatMissingData", p.TreatMissingData, TreatMissingData("").Values())
	shape.EnumList(m, "contactProtocols", p.ContactProtocols, ContactProtocol("").Values())
	shape.EnumList(m, "notificationTriggers", p.NotificationTriggers, AlarmState("").Values())
	shape.Boolean(m, "notificationEnabled", p.NotificationEnabled)
}

func (p *PutAlarmRequest) WithAlarmName(v string) *PutAlarmRequest {
	p.AlarmName = aws.String(v)
	return p
}

func (p *PutAlarmRequest) WithMetricName(v MetricName) *PutAlarmRequest {
	p.MetricName = &v
	return p
}

func (p *PutAlarmRequest) WithMonitoredResourceName(v string) *PutAlarmRequest {
	p.MonitoredResourceName = aws.String(v)
	return p
}

func (p *PutAlarmRequest) WithComparisonOperator(v ComparisonOperator) *PutAlarmRequest {
	p.ComparisonOperator = &v
	return p
}

func (p *PutAlarmRequest) WithThreshold(v float64) *PutAlarmRequest {
	p.Threshold = aws.Float64(v)
	return p
}

func (p *PutAlarmRequest) WithEvaluationPeriods(v int32) *PutAlarmRequest {
	p.EvaluationPeriods = aws.Int32(v)
	return p
}

func (p *PutAlarmRequest) WithDatapointsToAlarm(v int32) *PutAlarmRequest {
	p.DatapointsToAlarm = aws.Int32(v)
	return p
}

func (p *PutAlarmRequest) WithTreatMissingData(v TreatMissingData) *PutAlarmRequest {
	p.TreatMissingData = &v
	return p
}

func (p *PutAlarmRequest) WithContactProtocols(v ...ContactProtocol) *PutAlarmRequest {
	shape.Append(&p.ContactProtocols, v...)
	return p
}

func (p *PutAlarmRequest) SetContactProtocols(v []ContactProtocol) {
	p.ContactProtocols = shape.CopyList(v)
}

func (p *PutAlarmRequest) WithNotificationTriggers(v ...AlarmState) *PutAlarmRequest {
	shape.Append(&p.NotificationTriggers, v...)
	return p
}

func (p *PutAlarmRequest) SetNotificationTriggers(v []AlarmState) {
	p.NotificationTriggers = shape.CopyList(v)
}

func (p *PutAlarmRequest) WithNotificationEnabled(v bool) *PutAlarmRequest {
	p.NotificationEnabled = aws.Bool(v)
	return p
}

func (p *PutAlarmRequest) Equal(o *PutAlarmRequest) bool { return shape.Equal(p, o) }

func (p *PutAlarmRequest) Hash() uint64 { return shape.Hash(p) }

// String renders only the members that are present.
func (p *PutAlarmRequest) String() string { return shape.Render(p) }

type PutAlarmResult struct {
	Operations []Operation `json:"operations,omitempty"`
}

func (*PutAlarmResult) ShapeName() string { return "PutAlarmResult" }

func (p *PutAlarmResult) Members(m *shape.Members) {
	shape.StructList(m, "operations", p.Operations)
}

func (p *PutAlarmResult) WithOperations(v ...Operation) *PutAlarmResult {
	shape.Append(&p.Operations, v...)
	return p
}

func (p *PutAlarmResult) SetOperations(v []Operation) {
	p.Operations = shape.CopyList(v)
}

func (p *PutAlarmResult) Equal(o *PutAlarmResult) bool { return shape.Equal(p, o) }

func (p *PutAlarmResult) Hash() uint64 { return shape.Hash(p) }

// String renders only the members that are present.
func (p *PutAlarmResult) String() string { return shape.Render(p) }
