// Where: pkg/lightsail/certificate.go
// What: Load balancer TLS certificate model objects.
package lightsail

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/poruru-code/lightsail-model/pkg/shape"
)

// LoadBalancerTlsCertificateDomainValidationRecord is the DNS record a
// domain owner creates to prove control of the domain.
type LoadBalancerTlsCertificateDomainValidationRecord struct {
	Name             *string                                 `json:"name,omitempty"`
	Type             *string                                 `json:"type,omitempty"`
	Value            *string                                 `json:"value,omitempty"`
	ValidationStatus *LoadBalancerTlsCertificateDomainStatus `json:"validationStatus,omitempty"`
	DomainName       *string                                 `json:"domainName,omitempty"`
}

func (*LoadBalancerTlsCertificateDomainValidationRecord) ShapeName() string { return "LoadBalancerTlsCertificateDomainValidationRecord" }

func (l *LoadBalancerTlsCertificateDomainValidationRecord) Members(m *shape.Members) {
	shape.String(m, "name", l.Name)
	shape.String(m, "type", l.Type)
	shape.String(m, "value", l.Value)
	shape.Enum(m, "validationStatus", l.ValidationStatus, LoadBalancerTlsCertificateDomainStatus("").Values())
	shape.String(m, "domainName", l.DomainName)
}

func (l *LoadBalancerTlsCertificateDomainValidationRecord) WithName(v string) *LoadBalancerTlsCertificateDomainValidationRecord {
	l.Name = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificateDomainValidationRecord) WithType(v string) *LoadBalancerTlsCertificateDomainValidationRecord {
	l.Type = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificateDomainValidationRecord) WithValue(v string) *LoadBalancerTlsCertificateDomainValidationRecord {
	l.Value = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificateDomainValidationRecord) WithValidationStatus(v LoadBalancerTlsCertificateDomainStatus) *LoadBalancerTlsCertificateDomainValidationRecord {
	l.ValidationStatus = &v
	return l
}

func (l *LoadBalancerTlsCertificateDomainValidationRecord) WithDomainName(v string) *LoadBalancerTlsCertificateDomainValidationRecord {
	l.DomainName = aws.String(v)
	return l
}

// Equal reports whether l and o hold the same members.
func (l *LoadBalancerTlsCertificateDomainValidationRecord) Equal(o *LoadBalancerTlsCertificateDomainValidationRecord) bool { return shape.Equal(l, o) }

// Hash is consistent with Equal.
func (l *LoadBalancerTlsCertificateDomainValidationRecord) Hash() uint64 { return shape.Hash(l) }

func (l *LoadBalancerTlsCertificateDomainValidationRecord) String() string { return shape.Render(l) }

type LoadBalancerTlsCertificateDomainValidationOption struct {
	DomainName       *string                                 `json:"domainName,omitempty"`
	ValidationStatus *LoadBalancerTlsCertificateDomainStatus `json:"validationStatus,omitempty"`
}

func (*LoadBalancerTlsCertificateDomainValidationOption) ShapeName() string { return "LoadBalancerTlsCertificateDomainValidationOption" }

func (l *LoadBalancerTlsCertificateDomainValidationOption) Members(m *shape.Members) {
	shape.String(m, "domainName", l.DomainName)
	shape.Enum(m, "validationStatus", l.ValidationStatus, LoadBalancerTlsCertificateDomainStatus("").Values())
}

func (l *LoadBalancerTlsCertificateDomainValidationOption) WithDomainName(v string) *LoadBalancerTlsCertificateDomainValidationOption {
	l.DomainName = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificateDomainValidationOption) WithValidationStatus(v LoadBalancerTlsCertificateDomainStatus) *LoadBalancerTlsCertificateDomainValidationOption {
	l.ValidationStatus = &v
	return l
}

// Equal reports whether l and o hold the same members.
func (l *LoadBalancerTlsCertificateDomainValidationOption) Equal(o *LoadBalancerTlsCertificateDomainValidationOption) bool { return shape.Equal(l, o) }

// Hash is consistent with Equal.
func (l *LoadBalancerTlsCertificateDomainValidationOption) Hash() uint64 { return shape.Hash(l) }

func (l *LoadBalancerTlsCertificateDomainValidationOption) String() string { return shape.Render(l) }

type LoadBalancerTlsCertificateRenewalSummary struct {
	RenewalStatus           *LoadBalancerTlsCertificateRenewalStatus           `json:"renewalStatus,omitempty"`
	DomainValidationOptions []LoadBalancerTlsCertificateDomainValidationOption `json:"domainValidationOptions,omitempty"`
}

func (*LoadBalancerTlsCertificateRenewalSummary) ShapeName() string { return "LoadBalancerTlsCertificateRenewalSummary" }

func (l *LoadBalancerTlsCertificateRenewalSummary) Members(m *shape.Members) {
	shape.Enum(m, "renewalStatus", l.RenewalStatus, LoadBalancerTlsCertificateRenewalStatus("").Values())
	shape.StructList(m, "domainValidationOptions", l.DomainValidationOptions)
}

func (l *LoadBalancerTlsCertificateRenewalSummary) WithRenewalStatus(v LoadBalancerTlsCertificateRenewalStatus) *LoadBalancerTlsCertificateRenewalSummary {
	l.RenewalStatus = &v
	return l
}

func (l *LoadBalancerTlsCertificateRenewalSummary) WithDomainValidationOptions(v ...LoadBalancerTlsCertificateDomainValidationOption) *LoadBalancerTlsCertificateRenewalSummary {
	shape.Append(&l.DomainValidationOptions, v...)
	return l
}

func (l *LoadBalancerTlsCertificateRenewalSummary) SetDomainValidationOptions(v []LoadBalancerTlsCertificateDomainValidationOption) {
	l.DomainValidationOptions = shape.CopyList(v)
}

// Equal reports whether l and o hold the same members.
func (l *LoadBalancerTlsCertificateRenewalSummary) Equal(o *LoadBalancerTlsCertificateRenewalSummary) bool { return shape.Equal(l, o) }

// Hash is consistent with Equal.
func (l *LoadBalancerTlsCertificateRenewalSummary) Hash() uint64 { return shape.Hash(l) }

func (l *LoadBalancerTlsCertificateRenewalSummary) String() string { return shape.Render(l) }

// LoadBalancerTlsCertificate describes a certificate attached to a load balancer.
type LoadBalancerTlsCertificate struct {
	Name                    *string                                            `json:"name,omitempty"`
	Arn                     *string                                            `json:"arn,omitempty"`
	SupportCode             *string                                            `json:"supportCode,omitempty"`
	CreatedAt               *time.Time                                         `json:"createdAt,omitempty"`
	Location                *ResourceLocation                                  `json:"location,omitempty"`
	ResourceType            *ResourceType                                      `json:"resourceType,omitempty"`
	Tags                    []Tag                                              `json:"tags,omitempty"`
	LoadBalancerName        *string                                            `json:"loadBalancerName,omitempty"`
	IsAttached              *bool                                              `json:"isAttached,omitempty"`
	Status                  *LoadBalancerTlsCertificateStatus                  `json:"status,omitempty"`
	DomainName              *string                                            `json:"domainName,omitempty"`
	DomainValidationRecords []LoadBalancerTlsCertificateDomainValidationRecord `json:"domainValidationRecords,omitempty"`

	// Only set when status is FAILED.
	FailureReason           *LoadBalancerTlsCertificateFailureReason    `json:"failureReason,omitempty"`
	IssuedAt                *time.Time                                  `json:"issuedAt,omitempty"`
	Issuer                  *string                                     `json:"issuer,omitempty"`
	KeyAlgorithm            *string                                     `json:"keyAlgorithm,omitempty"`
	NotAfter                *time.Time                                  `json:"notAfter,omitempty"`
	NotBefore               *time.Time                                  `json:"notBefore,omitempty"`
	RenewalSummary          *LoadBalancerTlsCertificateRenewalSummary   `json:"renewalSummary,omitempty"`
	RevocationReason        *LoadBalancerTlsCertificateRevocationReason `json:"revocationReason,omitempty"`
	RevokedAt               *time.Time                                  `json:"revokedAt,omitempty"`
	Serial                  *string                                     `json:"serial,omitempty"`
	SignatureAlgorithm      *string                                     `json:"signatureAlgorithm,omitempty"`
	Subject                 *string                                     `json:"subject,omitempty"`
	SubjectAlternativeNames []string                                    `json:"subjectAlternativeNames,omitempty"`
}

func (*LoadBalancerTlsCertificate) ShapeName() string { return "LoadBalancerTlsCertificate" }

func (l *LoadBalancerTlsCertificate) Members(m *shape.Members) {
	shape.String(m, "name", l.Name)
	shape.String(m, "arn", l.Arn)
	shape.String(m, "supportCode", l.SupportCode)
	shape.Timestamp(m, "createdAt", l.CreatedAt)
	shape.Struct(m, "location", l.Location)
	shape.Enum(m, "resourceType", l.ResourceType, ResourceType("").Values())
	shape.StructList(m, "tags", l.Tags)
	shape.String(m, "loadBalancerName", l.LoadBalancerName)
	shape.Boolean(m, "isAttached", l.IsAttached)
	shape.Enum(m, "status", l.Status, LoadBalancerTlsCertificateStatus("").Values())
	shape.String(m, "domainName", l.DomainName)
	shape.StructList(m, "domainValidationRecords", l.DomainValidationRecords)
	shape.Enum(m, "failureReason", l.FailureReason, LoadBalancerTlsCertificateFailureReason("").Values())
	shape.Timestamp(m, "issuedAt", l.IssuedAt)
	shape.String(m, "issuer", l.Issuer)
	shape.String(m, "keyAlgorithm", l.KeyAlgorithm)
	shape.Timestamp(m, "notAfter", l.NotAfter)
	shape.Timestamp(m, "notBefore", l.NotBefore)
	shape.Struct(m, "renewalSummary", l.RenewalSummary)
	shape.Enum(m, "revocationReason", l.RevocationReason, LoadBalancerTlsCertificateRevocationReason("").Values())
	shape.Timestamp(m, "revokedAt", l.RevokedAt)
	shape.String(m, "serial", l.Serial)
	shape.String(m, "signatureAlgorithm", l.SignatureAlgorithm)
	shape.String(m, "subject", l.Subject)
	shape.StringList(m, "subjectAlternativeNames", l.SubjectAlternativeNames)
}

func (l *LoadBalancerTlsCertificate) WithName(v string) *LoadBalancerTlsCertificate {
	l.Name = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithArn(v string) *LoadBalancerTlsCertificate {
	l.Arn = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithSupportCode(v string) *LoadBalancerTlsCertificate {
	l.SupportCode = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithCreatedAt(v time.Time) *LoadBalancerTlsCertificate {
	l.CreatedAt = aws.Time(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithLocation(v *ResourceLocation) *LoadBalancerTlsCertificate {
	l.Location = v
	return l
}

func (l *LoadBalancerTlsCertificate) WithResourceType(v ResourceType) *LoadBalancerTlsCertificate {
	l.ResourceType = &v
	return l
}

func (l *LoadBalancerTlsCertificate) WithTags(v ...Tag) *LoadBalancerTlsCertificate {
	shape.Append(&l.Tags, v...)
	return l
}

func (l *LoadBalancerTlsCertificate) SetTags(v []Tag) {
	l.Tags = shape.CopyList(v)
}

func (l *LoadBalancerTlsCertificate) WithLoadBalancerName(v string) *LoadBalancerTlsCertificate {
	l.LoadBalancerName = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithIsAttached(v bool) *LoadBalancerTlsCertificate {
	l.IsAttached = aws.Bool(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithStatus(v LoadBalancerTlsCertificateStatus) *LoadBalancerTlsCertificate {
	l.Status = &v
	return l
}

func (l *LoadBalancerTlsCertificate) WithDomainName(v string) *LoadBalancerTlsCertificate {
	l.DomainName = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithDomainValidationRecords(v ...LoadBalancerTlsCertificateDomainValidationRecord) *LoadBalancerTlsCertificate {
	shape.Append(&l.DomainValidationRecords, v...)
	return l
}

func (l *LoadBalancerTlsCertificate) SetDomainValidationRecords(v []LoadBalancerTlsCertificateDomainValidationRecord) {
	l.DomainValidationRecords = shape.CopyList(v)
}

func (l *LoadBalancerTlsCertificate) WithFailureReason(v LoadBalancerTlsCertificateFailureReason) *LoadBalancerTlsCertificate {
	l.FailureReason = &v
	return l
}

func (l *LoadBalancerTlsCertificate) WithIssuedAt(v time.Time) *LoadBalancerTlsCertificate {
	l.IssuedAt = aws.Time(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithIssuer(v string) *LoadBalancerTlsCertificate {
	l.Issuer = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithKeyAlgorithm(v string) *LoadBalancerTlsCertificate {
	l.KeyAlgorithm = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithNotAfter(v time.Time) *LoadBalancerTlsCertificate {
	l.NotAfter = aws.Time(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithNotBefore(v time.Time) *LoadBalancerTlsCertificate {
	l.NotBefore = aws.Time(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithRenewalSummary(v *LoadBalancerTlsCertificateRenewalSummary) *LoadBalancerTlsCertificate {
	l.RenewalSummary = v
	return l
}

func (l *LoadBalancerTlsCertificate) WithRevocationReason(v LoadBalancerTlsCertificateRevocationReason) *LoadBalancerTlsCertificate {
	l.RevocationReason = &v
	return l
}

func (l *LoadBalancerTlsCertificate) WithRevokedAt(v time.Time) *LoadBalancerTlsCertificate {
	l.RevokedAt = aws.Time(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithSerial(v string) *LoadBalancerTlsCertificate {
	l.Serial = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithSignatureAlgorithm(v string) *LoadBalancerTlsCertificate {
	l.SignatureAlgorithm = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithSubject(v string) *LoadBalancerTlsCertificate {
	l.Subject = aws.String(v)
	return l
}

func (l *LoadBalancerTlsCertificate) WithSubjectAlternativeNames(v ...string) *LoadBalancerTlsCertificate {
	shape.Append(&l.SubjectAlternativeNames, v...)
	return l
}

func (l *LoadBalancerTlsCertificate) SetSubjectAlternativeNames(v []string) {
	l.SubjectAlternativeNames = shape.CopyList(v)
}

// Equal reports whether l and o hold the same members.
func (l *LoadBalancerTlsCertificate) Equal(o *LoadBalancerTlsCertificate) bool { return shape.Equal(l, o) }

// Hash is consistent with Equal.
func (l *LoadBalancerTlsCertificate) Hash() uint64 { return shape.Hash(l) }

func (l *LoadBalancerTlsCertificate) String() string { return shape.Render(l) }
