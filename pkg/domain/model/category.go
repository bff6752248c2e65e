package model

// Credential exposure case categories
const (
	CategoryPrivateCredentialExposure = "IDENTITY__PRIVATE_CREDENTIAL_EXPOSURE"
	CategoryPublicCredentialExposure  = "IDENTITY__PUBLIC_CREDENTIAL_EXPOSURE"
)

// DetectionCategory is one of the fixed buckets of the detection breakdown
type DetectionCategory struct {
	Key   string // matched against the category class
	Label string // matched against the display name and used as output label
}

// FixedDetectionCategories is the ordered set of categories every report shows
var FixedDetectionCategories = []DetectionCategory{
	{Key: "endpoint", Label: "Endpoint"},
	{Key: "identity", Label: "Identity"},
	{Key: "cloud", Label: "Cloud"},
	{Key: "email", Label: "Email"},
	{Key: "network", Label: "Network"},
	{Key: "data", Label: "Data Loss"},
	{Key: "other", Label: "Other"},
}

// Integration category tags
const (
	IntegrationTypeIdentity = "Identity"
	IntegrationTypeEmail    = "Email"
	IntegrationTypeEndpoint = "Endpoint"
	IntegrationTypeCloud    = "Cloud"
	IntegrationTypeNetwork  = "Network"
	IntegrationTypeSaaS     = "SaaS"
	IntegrationTypeOther    = "Other"
)

// IntegrationTypeRule tags an integration when its description contains any keyword
type IntegrationTypeRule struct {
	Type     string
	Keywords []string
}

// IntegrationTypeRules are evaluated in order against the lower-cased description
var IntegrationTypeRules = []IntegrationTypeRule{
	{Type: IntegrationTypeIdentity, Keywords: []string{"password"}},
	{Type: IntegrationTypeIdentity, Keywords: []string{"mfa", "2fa", "otp"}},
	{Type: IntegrationTypeEmail, Keywords: []string{"email", "mail", "office 365", "google workspace"}},
	{Type: IntegrationTypeEndpoint, Keywords: []string{"endpoint", "edr", "antivirus", "xdr"}},
	{Type: IntegrationTypeIdentity, Keywords: []string{"user", "identity", "active directory", "entra", "okta", "duo"}},
	{Type: IntegrationTypeCloud, Keywords: []string{"cloud", "aws", "azure", "gcp"}},
	{Type: IntegrationTypeNetwork, Keywords: []string{"network", "firewall", "vpn", "dns"}},
	{Type: IntegrationTypeSaaS, Keywords: []string{"saas", "application"}},
}

// GenericIngestPlatforms name their integrations through the identity label
var GenericIngestPlatforms = map[string]bool{
	"generic-json":   true,
	"generic-syslog": true,
}

// ExcludedPlatforms are internal or notification integrations never shown in a report
var ExcludedPlatforms = map[string]bool{
	"have-i-been-pwned": true,
	"ipinfo":            true,
	"reversing-labs":    true,
	"wirespeed":         true,
	"sms":               true,
	"slack":             true,
	"email":             true,
	"microsoft-teams":   true,
}

// OSBucket is an output bucket of the endpoint operating system breakdown
type OSBucket string

const (
	OSWindows OSBucket = "windows"
	OSMacOS   OSBucket = "macos"
	OSLinux   OSBucket = "linux"
	OSMobile  OSBucket = "mobile"
	OSOther   OSBucket = "other"
)

// OSBucketRule maps operating system labels containing any keyword to a bucket
type OSBucketRule struct {
	Bucket   OSBucket
	Keywords []string
}

// OSBucketRules are evaluated in order; the first match wins and OSOther is the fallback
var OSBucketRules = []OSBucketRule{
	{Bucket: OSWindows, Keywords: []string{"windows"}},
	{Bucket: OSMacOS, Keywords: []string{"mac"}},
	{Bucket: OSLinux, Keywords: []string{"linux"}},
	{Bucket: OSMobile, Keywords: []string{"ios", "android", "mobile"}},
}
