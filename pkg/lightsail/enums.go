// Where: pkg/lightsail/enums.go
// What: Open enum types for Lightsail members.
// Why: Known values get constants, unknown strings stay valid so the service stays authoritative.
package lightsail

// RegionName is an open set of region values.
type RegionName string

// Enum values for RegionName
const (
	RegionNameUsEast1      RegionName = "us-east-1"
	RegionNameUsEast2      RegionName = "us-east-2"
	RegionNameUsWest1      RegionName = "us-west-1"
	RegionNameUsWest2      RegionName = "us-west-2"
	RegionNameEuWest1      RegionName = "eu-west-1"
	RegionNameEuWest2      RegionName = "eu-west-2"
	RegionNameEuWest3      RegionName = "eu-west-3"
	RegionNameEuCentral1   RegionName = "eu-central-1"
	RegionNameCaCentral1   RegionName = "ca-central-1"
	RegionNameApSouth1     RegionName = "ap-south-1"
	RegionNameApSoutheast1 RegionName = "ap-southeast-1"
	RegionNameApSoutheast2 RegionName = "ap-southeast-2"
	RegionNameApNortheast1 RegionName = "ap-northeast-1"
	RegionNameApNortheast2 RegionName = "ap-northeast-2"
)

// Values returns the RegionName values known to this build. The service
// may return others.
func (RegionName) Values() []RegionName {
	return []RegionName{
		RegionNameUsEast1,
		RegionNameUsEast2,
		RegionNameUsWest1,
		RegionNameUsWest2,
		RegionNameEuWest1,
		RegionNameEuWest2,
		RegionNameEuWest3,
		RegionNameEuCentral1,
		RegionNameCaCentral1,
		RegionNameApSouth1,
		RegionNameApSoutheast1,
		RegionNameApSoutheast2,
		RegionNameApNortheast1,
		RegionNameApNortheast2,
	}
}

// ResourceType is an open set of resource values.
type ResourceType string

// Enum values for ResourceType
const (
	ResourceTypeInstance                   ResourceType = "Instance"
	ResourceTypeStaticIp                   ResourceType = "StaticIp"
	ResourceTypeKeyPair                    ResourceType = "KeyPair"
	ResourceTypeInstanceSnapshot           ResourceType = "InstanceSnapshot"
	ResourceTypeDomain                     ResourceType = "Domain"
	ResourceTypePeeredVpc                  ResourceType = "PeeredVpc"
	ResourceTypeLoadBalancer               ResourceType = "LoadBalancer"
	ResourceTypeLoadBalancerTlsCertificate ResourceType = "LoadBalancerTlsCertificate"
	ResourceTypeDisk                       ResourceType = "Disk"
	ResourceTypeDiskSnapshot               ResourceType = "DiskSnapshot"
	ResourceTypeRelationalDatabase         ResourceType = "RelationalDatabase"
	ResourceTypeRelationalDatabaseSnapshot ResourceType = "RelationalDatabaseSnapshot"
	ResourceTypeExportSnapshotRecord       ResourceType = "ExportSnapshotRecord"
	ResourceTypeCloudFormationStackRecord  ResourceType = "CloudFormationStackRecord"
	ResourceTypeAlarm                      ResourceType = "Alarm"
	ResourceTypeContactMethod              ResourceType = "ContactMethod"
)

// Values returns the ResourceType values known to this build. The service
// may return others.
func (ResourceType) Values() []ResourceType {
	return []ResourceType{
		ResourceTypeInstance,
		ResourceTypeStaticIp,
		ResourceTypeKeyPair,
		ResourceTypeInstanceSnapshot,
		ResourceTypeDomain,
		ResourceTypePeeredVpc,
		ResourceTypeLoadBalancer,
		ResourceTypeLoadBalancerTlsCertificate,
		ResourceTypeDisk,
		ResourceTypeDiskSnapshot,
		ResourceTypeRelationalDatabase,
		ResourceTypeRelationalDatabaseSnapshot,
		ResourceTypeExportSnapshotRecord,
		ResourceTypeCloudFormationStackRecord,
		ResourceTypeAlarm,
		ResourceTypeContactMethod,
	}
}

// OperationType is an open set of operation values.
type OperationType string

// Enum values for OperationType
const (
	OperationTypeAllocateStaticIp                 OperationType = "AllocateStaticIp"
	OperationTypeAttachStaticIp                   OperationType = "AttachStaticIp"
	OperationTypeCreateDisk                       OperationType = "CreateDisk"
	OperationTypeCreateDomain                     OperationType = "CreateDomain"
	OperationTypeCreateInstance                   OperationType = "CreateInstance"
	OperationTypeCreateInstancesFromSnapshot      OperationType = "CreateInstancesFromSnapshot"
	OperationTypeCreateLoadBalancerTlsCertificate OperationType = "CreateLoadBalancerTlsCertificate"
	OperationTypeCreateRelationalDatabase         OperationType = "CreateRelationalDatabase"
	OperationTypeDeleteDisk                       OperationType = "DeleteDisk"
	OperationTypeDeleteDomainEntry                OperationType = "DeleteDomainEntry"
	OperationTypeDisableAddOn                     OperationType = "DisableAddOn"
	OperationTypeEnableAddOn                      OperationType = "EnableAddOn"
	OperationTypePutAlarm                         OperationType = "PutAlarm"
	OperationTypeReleaseStaticIp                  OperationType = "ReleaseStaticIp"
	OperationTypeUpdateDomainEntry                OperationType = "UpdateDomainEntry"
)

// Values returns the OperationType values known to this build. The service
// may return others.
func (OperationType) Values() []OperationType {
	return []OperationType{
		OperationTypeAllocateStaticIp,
		OperationTypeAttachStaticIp,
		OperationTypeCreateDisk,
		OperationTypeCreateDomain,
		OperationTypeCreateInstance,
		OperationTypeCreateInstancesFromSnapshot,
		OperationTypeCreateLoadBalancerTlsCertificate,
		OperationTypeCreateRelationalDatabase,
		OperationTypeDeleteDisk,
		OperationTypeDeleteDomainEntry,
		OperationTypeDisableAddOn,
		OperationTypeEnableAddOn,
		OperationTypePutAlarm,
		OperationTypeReleaseStaticIp,
		OperationTypeUpdateDomainEntry,
	}
}

// OperationStatus is an open set of operation status values.
type OperationStatus string

// Enum values for OperationStatus
const (
	OperationStatusNotStarted OperationStatus = "NotStarted"
	OperationStatusStarted    OperationStatus = "Started"
	OperationStatusFailed     OperationStatus = "Failed"
	OperationStatusCompleted  OperationStatus = "Completed"
	OperationStatusSucceeded  OperationStatus = "Succeeded"
)

// Values returns the OperationStatus values known to this build. The service
// may return others.
func (OperationStatus) Values() []OperationStatus {
	return []OperationStatus{
		OperationStatusNotStarted,
		OperationStatusStarted,
		OperationStatusFailed,
		OperationStatusCompleted,
		OperationStatusSucceeded,
	}
}

// AddOnType is an open set of add-on values.
type AddOnType string

// Enum values for AddOnType
const (
	AddOnTypeAutoSnapshot AddOnType = "AutoSnapshot"
)

// Values returns the AddOnType values known to this build. The service
// may return others.
func (AddOnType) Values() []AddOnType {
	return []AddOnType{
		AddOnTypeAutoSnapshot,
	}
}

// AutoSnapshotStatus is an open set of automatic snapshot values.
type AutoSnapshotStatus string

// Enum values for AutoSnapshotStatus
const (
	AutoSnapshotStatusSuccess    AutoSnapshotStatus = "Success"
	AutoSnapshotStatusFailed     AutoSnapshotStatus = "Failed"
	AutoSnapshotStatusInProgress AutoSnapshotStatus = "InProgress"
	AutoSnapshotStatusNotFound   AutoSnapshotStatus = "NotFound"
)

// Values returns the AutoSnapshotStatus values known to this build. The service
// may return others.
func (AutoSnapshotStatus) Values() []AutoSnapshotStatus {
	return []AutoSnapshotStatus{
		AutoSnapshotStatusSuccess,
		AutoSnapshotStatusFailed,
		AutoSnapshotStatusInProgress,
		AutoSnapshotStatusNotFound,
	}
}

// DiskState is an open set of disk values.
type DiskState string

// Enum values for DiskState
const (
	DiskStatePending   DiskState = "pending"
	DiskStateError     DiskState = "error"
	DiskStateAvailable DiskState = "available"
	DiskStateInUse     DiskState = "in-use"
	DiskStateUnknown   DiskState = "unknown"
)

// Values returns the DiskState values known to this build. The service
// may return others.
func (DiskState) Values() []DiskState {
	return []DiskState{
		DiskStatePending,
		DiskStateError,
		DiskStateAvailable,
		DiskStateInUse,
		DiskStateUnknown,
	}
}

// NetworkProtocol is an open set of network protocol values.
type NetworkProtocol string

// Enum values for NetworkProtocol
const (
	NetworkProtocolTcp  NetworkProtocol = "tcp"
	NetworkProtocolAll  NetworkProtocol = "all"
	NetworkProtocolUdp  NetworkProtocol = "udp"
	NetworkProtocolIcmp NetworkProtocol = "icmp"
)

// Values returns the NetworkProtocol values known to this build. The service
// may return others.
func (NetworkProtocol) Values() []NetworkProtocol {
	return []NetworkProtocol{
		NetworkProtocolTcp,
		NetworkProtocolAll,
		NetworkProtocolUdp,
		NetworkProtocolIcmp,
	}
}

// PortAccessType is an open set of port access values.
type PortAccessType string

// Enum values for PortAccessType
const (
	PortAccessTypePublic  PortAccessType = "Public"
	PortAccessTypePrivate PortAccessType = "Private"
)

// Values returns the PortAccessType values known to this build. The service
// may return others.
func (PortAccessType) Values() []PortAccessType {
	return []PortAccessType{
		PortAccessTypePublic,
		PortAccessTypePrivate,
	}
}

// AccessDirection is an open set of access direction values.
type AccessDirection string

// Enum values for AccessDirection
const (
	AccessDirectionInbound  AccessDirection = "inbound"
	AccessDirectionOutbound AccessDirection = "outbound"
)

// Values returns the AccessDirection values known to this build. The service
// may return others.
func (AccessDirection) Values() []AccessDirection {
	return []AccessDirection{
		AccessDirectionInbound,
		AccessDirectionOutbound,
	}
}

// ComparisonOperator is an open set of alarm comparison values.
type ComparisonOperator string

// Enum values for ComparisonOperator
const (
	ComparisonOperatorGreaterThanOrEqualToThreshold ComparisonOperator = "GreaterThanOrEqualToThreshold"
	ComparisonOperatorGreaterThanThreshold          ComparisonOperator = "GreaterThanThreshold"
	ComparisonOperatorLessThanThreshold             ComparisonOperator = "LessThanThreshold"
	ComparisonOperatorLessThanOrEqualToThreshold    ComparisonOperator = "LessThanOrEqualToThreshold"
)

// Values returns the ComparisonOperator values known to this build. The service
// may return others.
func (ComparisonOperator) Values() []ComparisonOperator {
	return []ComparisonOperator{
		ComparisonOperatorGreaterThanOrEqualToThreshold,
		ComparisonOperatorGreaterThanThreshold,
		ComparisonOperatorLessThanThreshold,
		ComparisonOperatorLessThanOrEqualToThreshold,
	}
}

// TreatMissingData is an open set of missing data values.
type TreatMissingData string

// Enum values for TreatMissingData
const (
	TreatMissingDataBreaching    TreatMissingData = "breaching"
	TreatMissingDataNotBreaching TreatMissingData = "notBreaching"
	TreatMissingDataIgnore       TreatMissingData = "ignore"
	TreatMissingDataMissing      TreatMissingData = "missing"
)

// Values returns the TreatMissingData values known to this build. The service
// may return others.
func (TreatMissingData) Values() []TreatMissingData {
	return []TreatMissingData{
		TreatMissingDataBreaching,
		TreatMissingDataNotBreaching,
		TreatMissingDataIgnore,
		TreatMissingDataMissing,
	}
}

// MetricStatistic is an open set of metric statistic values.
type MetricStatistic string

// Enum values for MetricStatistic
const (
	MetricStatisticMinimum     MetricStatistic = "Minimum"
	MetricStatisticMaximum     MetricStatistic = "Maximum"
	MetricStatisticSum         MetricStatistic = "Sum"
	MetricStatisticAverage     MetricStatistic = "Average"
	MetricStatisticSampleCount MetricStatistic = "SampleCount"
)

// Values returns the MetricStatistic values known to this build. The service
// may return others.
func (MetricStatistic) Values() []MetricStatistic {
	return []MetricStatistic{
		MetricStatisticMinimum,
		MetricStatisticMaximum,
		MetricStatisticSum,
		MetricStatisticAverage,
		MetricStatisticSampleCount,
	}
}

// MetricName is an open set of metric values.
type MetricName string

// Enum values for MetricName
const (
	MetricNameCPUUtilization                 MetricName = "CPUUtilization"
	MetricNameNetworkIn                      MetricName = "NetworkIn"
	MetricNameNetworkOut                     MetricName = "NetworkOut"
	MetricNameStatusCheckFailed              MetricName = "StatusCheckFailed"
	MetricNameStatusCheckFailedInstance      MetricName = "StatusCheckFailed_Instance"
	MetricNameStatusCheckFailedSystem        MetricName = "StatusCheckFailed_System"
	MetricNameClientTLSNegotiationErrorCount MetricName = "ClientTLSNegotiationErrorCount"
	MetricNameHealthyHostCount               MetricName = "HealthyHostCount"
	MetricNameUnhealthyHostCount             MetricName = "UnhealthyHostCount"
	MetricNameHTTPCodeLb4XXCount             MetricName = "HTTPCode_LB_4XX_Count"
	MetricNameHTTPCodeLb5XXCount             MetricName = "HTTPCode_LB_5XX_Count"
	MetricNameHTTPCodeInstance2XXCount       MetricName = "HTTPCode_Instance_2XX_Count"
	MetricNameHTTPCodeInstance3XXCount       MetricName = "HTTPCode_Instance_3XX_Count"
	MetricNameHTTPCodeInstance4XXCount       MetricName = "HTTPCode_Instance_4XX_Count"
	MetricNameHTTPCodeInstance5XXCount       MetricName = "HTTPCode_Instance_5XX_Count"
	MetricNameInstanceResponseTime           MetricName = "InstanceResponseTime"
	MetricNameRejectedConnectionCount        MetricName = "RejectedConnectionCount"
	MetricNameRequestCount                   MetricName = "RequestCount"
	MetricNameDatabaseConnections            MetricName = "DatabaseConnections"
	MetricNameDiskQueueDepth                 MetricName = "DiskQueueDepth"
	MetricNameFreeStorageSpace               MetricName = "FreeStorageSpace"
	MetricNameNetworkReceiveThroughput       MetricName = "NetworkReceiveThroughput"
	MetricNameNetworkTransmitThroughput      MetricName = "NetworkTransmitThroughput"
	MetricNameBurstCapacityTime              MetricName = "BurstCapacityTime"
	MetricNameBurstCapacityPercentage        MetricName = "BurstCapacityPercentage"
)

// Values returns the MetricName values known to this build. The service
// may return others.
func (MetricName) Values() []MetricName {
	return []MetricName{
		MetricNameCPUUtilization,
		MetricNameNetworkIn,
		MetricNameNetworkOut,
		MetricNameStatusCheckFailed,
		MetricNameStatusCheckFailedInstance,
		MetricNameStatusCheckFailedSystem,
		MetricNameClientTLSNegotiationErrorCount,
		MetricNameHealthyHostCount,
		MetricNameUnhealthyHostCount,
		MetricNameHTTPCodeLb4XXCount,
		MetricNameHTTPCodeLb5XXCount,
		MetricNameHTTPCodeInstance2XXCount,
		MetricNameHTTPCodeInstance3XXCount,
		MetricNameHTTPCodeInstance4XXCount,
		MetricNameHTTPCodeInstance5XXCount,
		MetricNameInstanceResponseTime,
		MetricNameRejectedConnectionCount,
		MetricNameRequestCount,
		MetricNameDatabaseConnections,
		MetricNameDiskQueueDepth,
		MetricNameFreeStorageSpace,
		MetricNameNetworkReceiveThroughput,
		MetricNameNetworkTransmitThroughput,
		MetricNameBurstCapacityTime,
		MetricNameBurstCapacityPercentage,
	}
}

// MetricUnit is an open set of metric unit values.
type MetricUnit string

// Enum values for MetricUnit
const (
	MetricUnitSeconds         MetricUnit = "Seconds"
	MetricUnitMicroseconds    MetricUnit = "Microseconds"
	MetricUnitMilliseconds    MetricUnit = "Milliseconds"
	MetricUnitBytes           MetricUnit = "Bytes"
	MetricUnitKilobytes       MetricUnit = "Kilobytes"
	MetricUnitMegabytes       MetricUnit = "Megabytes"
	MetricUnitGigabytes       MetricUnit = "Gigabytes"
	MetricUnitTerabytes       MetricUnit = "Terabytes"
	MetricUnitBits            MetricUnit = "Bits"
	MetricUnitKilobits        MetricUnit = "Kilobits"
	MetricUnitMegabits        MetricUnit = "Megabits"
	MetricUnitGigabits        MetricUnit = "Gigabits"
	MetricUnitTerabits        MetricUnit = "Terabits"
	MetricUnitPercent         MetricUnit = "Percent"
	MetricUnitCount           MetricUnit = "Count"
	MetricUnitBytesSecond     MetricUnit = "Bytes/Second"
	MetricUnitKilobytesSecond MetricUnit = "Kilobytes/Second"
	MetricUnitMegabytesSecond MetricUnit = "Megabytes/Second"
	MetricUnitGigabytesSecond MetricUnit = "Gigabytes/Second"
	MetricUnitTerabytesSecond MetricUnit = "Terabytes/Second"
	MetricUnitBitsSecond      MetricUnit = "Bits/Second"
	MetricUnitKilobitsSecond  MetricUnit = "Kilobits/Second"
	MetricUnitMegabitsSecond  MetricUnit = "Megabits/Second"
	MetricUnitGigabitsSecond  MetricUnit = "Gigabits/Second"
	MetricUnitTerabitsSecond  MetricUnit = "Terabits/Second"
	MetricUnitCountSecond     MetricUnit = "Count/Second"
	MetricUnitNone            MetricUnit = "None"
)

// Values returns the MetricUnit values known to this build. The service
// may return others.
func (MetricUnit) Values() []MetricUnit {
	return []MetricUnit{
		MetricUnitSeconds,
		MetricUnitMicroseconds,
		MetricUnitMilliseconds,
		MetricUnitBytes,
		MetricUnitKilobytes,
		MetricUnitMegabytes,
		MetricUnitGigabytes,
		MetricUnitTerabytes,
		MetricUnitBits,
		MetricUnitKilobits,
		MetricUnitMegabits,
		MetricUnitGigabits,
		MetricUnitTerabits,
		MetricUnitPercent,
		MetricUnitCount,
		MetricUnitBytesSecond,
		MetricUnitKilobytesSecond,
		MetricUnitMegabytesSecond,
		MetricUnitGigabytesSecond,
		MetricUnitTerabytesSecond,
		MetricUnitBitsSecond,
		MetricUnitKilobitsSecond,
		MetricUnitMegabitsSecond,
		MetricUnitGigabitsSecond,
		MetricUnitTerabitsSecond,
		MetricUnitCountSecond,
		MetricUnitNone,
	}
}

// AlarmState is an open set of alarm state values.
type AlarmState string

// Enum values for AlarmState
const (
	AlarmStateOk               AlarmState = "OK"
	AlarmStateAlarm            AlarmState = "ALARM"
	AlarmStateInsufficientData AlarmState = "INSUFFICIENT_DATA"
)

// Values returns the AlarmState values known to this build. The service
// may return others.
func (AlarmState) Values() []AlarmState {
	return []AlarmState{
		AlarmStateOk,
		AlarmStateAlarm,
		AlarmStateInsufficientData,
	}
}

// ContactProtocol is an open set of contact protocol values.
type ContactProtocol string

// Enum values for ContactProtocol
const (
	ContactProtocolEmail ContactProtocol = "Email"
	ContactProtocolSms   ContactProtocol = "SMS"
)

// Values returns the ContactProtocol values known to this build. The service
// may return others.
func (ContactProtocol) Values() []ContactProtocol {
	return []ContactProtocol{
		ContactProtocolEmail,
		ContactProtocolSms,
	}
}

// RelationalDatabaseMetricName is an open set of database metric values.
type RelationalDatabaseMetricName string

// Enum values for RelationalDatabaseMetricName
const (
	RelationalDatabaseMetricNameCPUUtilization            RelationalDatabaseMetricName = "CPUUtilization"
	RelationalDatabaseMetricNameDatabaseConnections       RelationalDatabaseMetricName = "DatabaseConnections"
	RelationalDatabaseMetricNameDiskQueueDepth            RelationalDatabaseMetricName = "DiskQueueDepth"
	RelationalDatabaseMetricNameFreeStorageSpace          RelationalDatabaseMetricName = "FreeStorageSpace"
	RelationalDatabaseMetricNameNetworkReceiveThroughput  RelationalDatabaseMetricName = "NetworkReceiveThroughput"
	RelationalDatabaseMetricNameNetworkTransmitThroughput RelationalDatabaseMetricName = "NetworkTransmitThroughput"
)

// Values returns the RelationalDatabaseMetricName values known to this build. The service
// may return others.
func (RelationalDatabaseMetricName) Values() []RelationalDatabaseMetricName {
	return []RelationalDatabaseMetricName{
		RelationalDatabaseMetricNameCPUUtilization,
		RelationalDatabaseMetricNameDatabaseConnections,
		RelationalDatabaseMetricNameDiskQueueDepth,
		RelationalDatabaseMetricNameFreeStorageSpace,
		RelationalDatabaseMetricNameNetworkReceiveThroughput,
		RelationalDatabaseMetricNameNetworkTransmitThroughput,
	}
}

// LoadBalancerTlsCertificateStatus is an open set of certificate status values.
type LoadBalancerTlsCertificateStatus string

// Enum values for LoadBalancerTlsCertificateStatus
const (
	LoadBalancerTlsCertificateStatusPendingValidation  LoadBalancerTlsCertificateStatus = "PENDING_VALIDATION"
	LoadBalancerTlsCertificateStatusIssued             LoadBalancerTlsCertificateStatus = "ISSUED"
	LoadBalancerTlsCertificateStatusInactive           LoadBalancerTlsCertificateStatus = "INACTIVE"
	LoadBalancerTlsCertificateStatusExpired            LoadBalancerTlsCertificateStatus = "EXPIRED"
	LoadBalancerTlsCertificateStatusValidationTimedOut LoadBalancerTlsCertificateStatus = "VALIDATION_TIMED_OUT"
	LoadBalancerTlsCertificateStatusRevoked            LoadBalancerTlsCertificateStatus = "REVOKED"
	LoadBalancerTlsCertificateStatusFailed             LoadBalancerTlsCertificateStatus = "FAILED"
	LoadBalancerTlsCertificateStatusUnknown            LoadBalancerTlsCertificateStatus = "UNKNOWN"
)

// Values returns the LoadBalancerTlsCertificateStatus values known to this build. The service
// may return others.
func (LoadBalancerTlsCertificateStatus) Values() []LoadBalancerTlsCertificateStatus {
	return []LoadBalancerTlsCertificateStatus{
		LoadBalancerTlsCertificateStatusPendingValidation,
		LoadBalancerTlsCertificateStatusIssued,
		LoadBalancerTlsCertificateStatusInactive,
		LoadBalancerTlsCertificateStatusExpired,
		LoadBalancerTlsCertificateStatusValidationTimedOut,
		LoadBalancerTlsCertificateStatusRevoked,
		LoadBalancerTlsCertificateStatusFailed,
		LoadBalancerTlsCertificateStatusUnknown,
	}
}

// LoadBalancerTlsCertificateFailureReason is an open set of certificate failure values.
type LoadBalancerTlsCertificateFailureReason string

// Enum values for LoadBalancerTlsCertificateFailureReason
const (
	LoadBalancerTlsCertificateFailureReasonNoAvailableContacts            LoadBalancerTlsCertificateFailureReason = "NO_AVAILABLE_CONTACTS"
	LoadBalancerTlsCertificateFailureReasonAdditionalVerificationRequired LoadBalancerTlsCertificateFailureReason = "ADDITIONAL_VERIFICATION_REQUIRED"
	LoadBalancerTlsCertificateFailureReasonDomainNotAllowed               LoadBalancerTlsCertificateFailureReason = "DOMAIN_NOT_ALLOWED"
	LoadBalancerTlsCertificateFailureReasonInvalidPublicDomain            LoadBalancerTlsCertificateFailureReason = "INVALID_PUBLIC_DOMAIN"
	LoadBalancerTlsCertificateFailureReasonOther                          LoadBalancerTlsCertificateFailureReason = "OTHER"
)

// Values returns the LoadBalancerTlsCertificateFailureReason values known to this build. The service
// may return others.
func (LoadBalancerTlsCertificateFailureReason) Values() []LoadBalancerTlsCertificateFailureReason {
	return []LoadBalancerTlsCertificateFailureReason{
		LoadBalancerTlsCertificateFailureReasonNoAvailableContacts,
		LoadBalancerTlsCertificateFailureReasonAdditionalVerificationRequired,
		LoadBalancerTlsCertificateFailureReasonDomainNotAllowed,
		LoadBalancerTlsCertificateFailureReasonInvalidPublicDomain,
		LoadBalancerTlsCertificateFailureReasonOther,
	}
}

// LoadBalancerTlsCertificateRevocationReason is an open set of certificate revocation values.
type LoadBalancerTlsCertificateRevocationReason string

// Enum values for LoadBalancerTlsCertificateRevocationReason
const (
	LoadBalancerTlsCertificateRevocationReasonUnspecified          LoadBalancerTlsCertificateRevocationReason = "UNSPECIFIED"
	LoadBalancerTlsCertificateRevocationReasonKeyCompromise        LoadBalancerTlsCertificateRevocationReason = "KEY_COMPROMISE"
	LoadBalancerTlsCertificateRevocationReasonCaCompromise         LoadBalancerTlsCertificateRevocationReason = "CA_COMPROMISE"
	LoadBalancerTlsCertificateRevocationReasonAffiliationChanged   LoadBalancerTlsCertificateRevocationReason = "AFFILIATION_CHANGED"
	LoadBalancerTlsCertificateRevocationReasonSuperceded           LoadBalancerTlsCertificateRevocationReason = "SUPERCEDED"
	LoadBalancerTlsCertificateRevocationReasonCessationOfOperation LoadBalancerTlsCertificateRevocationReason = "CESSATION_OF_OPERATION"
	LoadBalancerTlsCertificateRevocationReasonCertificateHold      LoadBalancerTlsCertificateRevocationReason = "CERTIFICATE_HOLD"
	LoadBalancerTlsCertificateRevocationReasonRemoveFromCrl        LoadBalancerTlsCertificateRevocationReason = "REMOVE_FROM_CRL"
	LoadBalancerTlsCertificateRevocationReasonPrivilegeWithdrawn   LoadBalancerTlsCertificateRevocationReason = "PRIVILEGE_WITHDRAWN"
	LoadBalancerTlsCertificateRevocationReasonAACompromise         LoadBalancerTlsCertificateRevocationReason = "A_A_COMPROMISE"
)

// Values returns the LoadBalancerTlsCertificateRevocationReason values known to this build. The service
// may return others.
func (LoadBalancerTlsCertificateRevocationReason) Values() []LoadBalancerTlsCertificateRevocationReason {
	return []LoadBalancerTlsCertificateRevocationReason{
		LoadBalancerTlsCertificateRevocationReasonUnspecified,
		LoadBalancerTlsCertificateRevocationReasonKeyCompromise,
		LoadBalancerTlsCertificateRevocationReasonCaCompromise,
		LoadBalancerTlsCertificateRevocationReasonAffiliationChanged,
		LoadBalancerTlsCertificateRevocationReasonSuperceded,
		LoadBalancerTlsCertificateRevocationReasonCessationOfOperation,
		LoadBalancerTlsCertificateRevocationReasonCertificateHold,
		LoadBalancerTlsCertificateRevocationReasonRemoveFromCrl,
		LoadBalancerTlsCertificateRevocationReasonPrivilegeWithdrawn,
		LoadBalancerTlsCertificateRevocationReasonAACompromise,
	}
}

// LoadBalancerTlsCertificateRenewalStatus is an open set of certificate renewal values.
type LoadBalancerTlsCertificateRenewalStatus string

// Enum values for LoadBalancerTlsCertificateRenewalStatus
const (
	LoadBalancerTlsCertificateRenewalStatusPendingAutoRenewal LoadBalancerTlsCertificateRenewalStatus = "PENDING_AUTO_RENEWAL"
	LoadBalancerTlsCertificateRenewalStatusPendingValidation  LoadBalancerTlsCertificateRenewalStatus = "PENDING_VALIDATION"
	LoadBalancerTlsCertificateRenewalStatusSuccess            LoadBalancerTlsCertificateRenewalStatus = "SUCCESS"
	LoadBalancerTlsCertificateRenewalStatusFailed             LoadBalancerTlsCertificateRenewalStatus = "FAILED"
)

// Values returns the LoadBalancerTlsCertificateRenewalStatus values known to this build. The service
// may return others.
func (LoadBalancerTlsCertificateRenewalStatus) Values() []LoadBalancerTlsCertificateRenewalStatus {
	return []LoadBalancerTlsCertificateRenewalStatus{
		LoadBalancerTlsCertificateRenewalStatusPendingAutoRenewal,
		LoadBalancerTlsCertificateRenewalStatusPendingValidation,
		LoadBalancerTlsCertificateRenewalStatusSuccess,
		LoadBalancerTlsCertificateRenewalStatusFailed,
	}
}

// LoadBalancerTlsCertificateDomainStatus is an open set of domain validation values.
type LoadBalancerTlsCertificateDomainStatus string

// Enum values for LoadBalancerTlsCertificateDomainStatus
const (
	LoadBalancerTlsCertificateDomainStatusPendingValidation LoadBalancerTlsCertificateDomainStatus = "PENDING_VALIDATION"
	LoadBalancerTlsCertificateDomainStatusFailed            LoadBalancerTlsCertificateDomainStatus = "FAILED"
	LoadBalancerTlsCertificateDomainStatusSuccess           LoadBalancerTlsCertificateDomainStatus = "SUCCESS"
)

// Values returns the LoadBalancerTlsCertificateDomainStatus values known to this build. The service
// may return others.
func (LoadBalancerTlsCertificateDomainStatus) Values() []LoadBalancerTlsCertificateDomainStatus {
	return []LoadBalancerTlsCertificateDomainStatus{
		LoadBalancerTlsCertificateDomainStatusPendingValidation,
		LoadBalancerTlsCertificateDomainStatusFailed,
		LoadBalancerTlsCertificateDomainStatusSuccess,
	}
}
