// Where: internal/catalog/catalog.go
// What: Name lookup for Lightsail model objects and enum types.
// Why: The model package stays registry-free; tooling resolves names here.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/poruru-code/lightsail-model/pkg/lightsail"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

var (
	ErrUnknownShape = errors.New("unknown shape")
	ErrUnknownEnum  = errors.New("unknown enum")
)

// Constructor returns a fresh, empty model object.
type Constructor func() shape.Shape

func ctor[T any, PT interface {
	*T
	shape.Shape
}]() Constructor {
	return func() shape.Shape { return PT(new(T)) }
}

var constructors = []Constructor{
	ctor[lightsail.Tag](),
	ctor[lightsail.ResourceLocation](),
	ctor[lightsail.Operation](),
	ctor[lightsail.AvailabilityZone](),
	ctor[lightsail.Region](),
	ctor[lightsail.GetRegionsRequest](),
	ctor[lightsail.GetRegionsResult](),
	ctor[lightsail.AddOn](),
	ctor[lightsail.AutoSnapshotAddOnRequest](),
	ctor[lightsail.AddOnRequest](),
	ctor[lightsail.AttachedDisk](),
	ctor[lightsail.AutoSnapshotDetails](),
	ctor[lightsail.EnableAddOnRequest](),
	ctor[lightsail.EnableAddOnResult](),
	ctor[lightsail.GetAutoSnapshotsRequest](),
	ctor[lightsail.GetAutoSnapshotsResult](),
	ctor[lightsail.DiskMap](),
	ctor[lightsail.Disk](),
	ctor[lightsail.CreateDiskRequest](),
	ctor[lightsail.CreateDiskResult](),
	ctor[lightsail.StaticIp](),
	ctor[lightsail.AllocateStaticIpRequest](),
	ctor[lightsail.AllocateStaticIpResult](),
	ctor[lightsail.GetStaticIpRequest](),
	ctor[lightsail.GetStaticIpResult](),
	ctor[lightsail.DomainEntry](),
	ctor[lightsail.Domain](),
	ctor[lightsail.CreateDomainEntryRequest](),
	ctor[lightsail.CreateDomainEntryResult](),
	ctor[lightsail.MonitoredResourceInfo](),
	ctor[lightsail.Alarm](),
	ctor[lightsail.PutAlarmRequest](),
	ctor[lightsail.PutAlarmResult](),
	ctor[lightsail.InstancePortInfo](),
	ctor[lightsail.CreateInstancesFromSnapshotRequest](),
	ctor[lightsail.CreateInstancesFromSnapshotResult](),
	ctor[lightsail.RelationalDatabaseHardware](),
	ctor[lightsail.RelationalDatabaseEndpoint](),
	ctor[lightsail.PendingModifiedRelationalDatabaseValues](),
	ctor[lightsail.PendingMaintenanceAction](),
	ctor[lightsail.RelationalDatabase](),
	ctor[lightsail.CreateRelationalDatabaseRequest](),
	ctor[lightsail.CreateRelationalDatabaseResult](),
	ctor[lightsail.MetricDatapoint](),
	ctor[lightsail.GetRelationalDatabaseMetricDataRequest](),
	ctor[lightsail.GetRelationalDatabaseMetricDataResult](),
	ctor[lightsail.LoadBalancerTlsCertificateDomainValidationRecord](),
	ctor[lightsail.LoadBalancerTlsCertificateDomainValidationOption](),
	ctor[lightsail.LoadBalancerTlsCertificateRenewalSummary](),
	ctor[lightsail.LoadBalancerTlsCertificate](),
}

var shapes = func() map[string]Constructor {
	out := make(map[string]Constructor, len(constructors))
	for _, c := range constructors {
		out[c().ShapeName()] = c
	}
	return out
}()

var enums = map[string][]string{
	"RegionName":                                 values(lightsail.RegionName("").Values()),
	"ResourceType":                               values(lightsail.ResourceType("").Values()),
	"OperationType":                              values(lightsail.OperationType("").Values()),
	"OperationStatus":                            values(lightsail.OperationStatus("").Values()),
	"AddOnType":                                  values(lightsail.AddOnType("").Values()),
	"AutoSnapshotStatus":                         values(lightsail.AutoSnapshotStatus("").Values()),
	"DiskState":                                  values(lightsail.DiskState("").Values()),
	"NetworkProtocol":                            values(lightsail.NetworkProtocol("").Values()),
	"PortAccessType":                             values(lightsail.PortAccessType("").Values()),
	"AccessDirection":                            values(lightsail.AccessDirection("").Values()),
	"ComparisonOperator":                         values(lightsail.ComparisonOperator("").Values()),
	"TreatMissingData":                           values(lightsail.TreatMissingData("").Values()),
	"MetricStatistic":                            values(lightsail.MetricStatistic("").Values()),
	"MetricName":                                 values(lightsail.MetricName("").Values()),
	"MetricUnit":                                 values(lightsail.MetricUnit("").Values()),
	"AlarmState":                                 values(lightsail.AlarmState("").Values()),
	"ContactProtocol":                            values(lightsail.ContactProtocol("").Values()),
	"RelationalDatabaseMetricName":               values(lightsail.RelationalDatabaseMetricName("").Values()),
	"LoadBalancerTlsCertificateStatus":           values(lightsail.LoadBalancerTlsCertificateStatus("").Values()),
	"LoadBalancerTlsCertificateFailureReason":    values(lightsail.LoadBalancerTlsCertificateFailureReason("").Values()),
	"LoadBalancerTlsCertificateRevocationReason": values(lightsail.LoadBalancerTlsCertificateRevocationReason("").Values()),
	"LoadBalancerTlsCertificateRenewalStatus":    values(lightsail.LoadBalancerTlsCertificateRenewalStatus("").Values()),
	"LoadBalancerTlsCertificateDomainStatus":     values(lightsail.LoadBalancerTlsCertificateDomainStatus("").Values()),
}

func values[E ~string](in []E) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

// Shapes returns every model object name in sorted order.
func Shapes() []string {
	return sortedNames(shapes)
}

// Enums returns every enum type name in sorted order.
func Enums() []string {
	return sortedNames(enums)
}

// New returns an empty model object for name. Lookup falls back to a
// case-insensitive match.
func New(name string) (shape.Shape, error) {
	key, ok := resolve(shapes, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShape, name)
	}
	return shapes[key](), nil
}

// EnumValues returns the values known for the named enum type.
func EnumValues(name string) ([]string, error) {
	key, ok := resolve(enums, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEnum, name)
	}
	return append([]string(nil), enums[key]...), nil
}

// Search returns shape names containing query, ignoring case.
func Search(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []string
	for _, name := range Shapes() {
		if strings.Contains(strings.ToLower(name), query) {
			out = append(out, name)
		}
	}
	return out
}

func resolve[V any](table map[string]V, name string) (string, bool) {
	name = strings.TrimSpace(name)
	if _, ok := table[name]; ok {
		return name, true
	}
	for key := range table {
		if strings.EqualFold(key, name) {
			return key, true
		}
	}
	return "", false
}

func sortedNames[V any](table map[string]V) []string {
	out := make([]string, 0, len(table))
	for key := range table {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
