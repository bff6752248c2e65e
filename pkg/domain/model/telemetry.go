package model

import (
	"github.com/secmon-lab/wirereport/pkg/domain/types"
)

// Remote Wirespeed API payloads. Every field uses the lenient types so that
// missing or mistyped values decode to zero instead of failing the response.

// ReportPeriodQuery is the request body of all statistics endpoints
type ReportPeriodQuery struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// DateRange filters listings by creation time
type DateRange struct {
	GTE string `json:"gte"`
	LTE string `json:"lte"`
}

// CaseQuery is the request body of the case search endpoint
type CaseQuery struct {
	OrderBy   string    `json:"orderBy"`
	OrderDir  string    `json:"orderDir"`
	CreatedAt DateRange `json:"createdAt"`
	Category  string    `json:"category,omitempty"`
}

// DetectionQuery is the request body of the detection search endpoint
type DetectionQuery struct {
	OrderBy   string    `json:"orderBy"`
	OrderDir  string    `json:"orderDir"`
	CreatedAt DateRange `json:"createdAt"`
}

// IntegrationQuery is the request body of the integration search endpoint
type IntegrationQuery struct {
	IncludeDisabled bool `json:"includeDisabled"`
}

// TeamQuery is the request body of the team search endpoint
type TeamQuery struct {
	Size     int    `json:"size"`
	OrderBy  string `json:"orderBy"`
	OrderDir string `json:"orderDir"`
}

// Team is the current team as returned by GET /team
type Team struct {
	ID              types.Text `json:"id"`
	Name            types.Text `json:"name"`
	Logo            types.Text `json:"logo"`
	LogoURL         types.Text `json:"logoUrl"`
	SupportEmail    types.Text `json:"supportEmail"`
	ServiceProvider types.Flag `json:"serviceProvider"`
}

// TeamSummary is one entry of a team search result. Unknown fields are kept
// verbatim so the team picker receives what the API returned.
type TeamSummary map[string]any

// TeamSearch is the result of POST /team
type TeamSearch struct {
	Data       types.List[TeamSummary] `json:"data"`
	TotalCount types.Number            `json:"totalCount"`
}

// SwitchTeamResult carries the scoped session token
type SwitchTeamResult struct {
	AccessToken types.Text `json:"accessToken"`
}

// PlatformLogos holds the service provider's platform logos
type PlatformLogos struct {
	PlatformLogo      types.Text `json:"platformLogo"`
	PlatformLogoLight types.Text `json:"platformLogoLight"`
	PlatformLogoDark  types.Text `json:"platformLogoDark"`
}

// DetectionStatistics is the detection counters group
type DetectionStatistics struct {
	TotalDetections                types.Number `json:"totalDetections"`
	HistoricDetections             types.Number `json:"historicDetections"`
	EscalatedDetections            types.Number `json:"escalatedDetections"`
	ChatOpsDetections              types.Number `json:"chatOpsDetections"`
	ContainmentDetections          types.Number `json:"containmentDetections"`
	AutomaticallyClosed            types.Number `json:"automaticallyClosed"`
	VerdictedMalicious             types.Number `json:"verdictedMalicious"`
	ConfirmedMalicious             types.Number `json:"confirmedMalicious"`
	TruePositiveDetections         types.Number `json:"truePositiveDetections"`
	FalsePositiveDetections        types.Number `json:"falsePositiveDetections"`
	PotentialEscalatedDetections   types.Number `json:"potentialEscalatedDetections"`
	PotentialChatOpsDetections     types.Number `json:"potentialChatOpsDetections"`
	PotentialContainmentDetections types.Number `json:"potentialContainmentDetections"`
}

// OperatingSystemCount is a raw operating system label with its endpoint count
type OperatingSystemCount struct {
	OperatingSystem types.Text   `json:"operatingSystem"`
	Count           types.Number `json:"count"`
}

// OperatingSystemStatistics is the operating systems group
type OperatingSystemStatistics struct {
	OperatingSystems types.List[OperatingSystemCount] `json:"operatingSystems"`
}

// ResourceStatistics is the billable resources group
type ResourceStatistics struct {
	BillableUsers     types.Number `json:"billableUsers"`
	BillableEndpoints types.Number `json:"billableEndpoints"`
}

// LocationCount is a per-country counter
type LocationCount struct {
	Country types.Text   `json:"country"`
	Count   types.Number `json:"count"`
}

// GeographyStatistics is the geography group
type GeographyStatistics struct {
	DetectionLocations       types.List[LocationCount] `json:"detectionLocations"`
	SuspiciousLoginLocations types.List[LocationCount] `json:"suspiciousLoginLocations"`
}

// IntegrationConfig is the configuration block shared by integrations and OCSF statistics
type IntegrationConfig struct {
	Name        types.Text `json:"name"`
	Description types.Text `json:"description"`
	Logo        types.Text `json:"logo"`
	LogoLight   types.Text `json:"logoLight"`
}

// OCSFIntegration is the integration an OCSF statistic belongs to
type OCSFIntegration struct {
	Config IntegrationConfig `json:"config"`
}

// OCSFStatistic is a per-integration event volume record
type OCSFStatistic struct {
	Integration OCSFIntegration `json:"integration"`
	TotalEvents types.Number    `json:"totalEvents"`
	TotalBytes  types.Number    `json:"totalBytes"`
}

// EventStatistics is the events group
type EventStatistics struct {
	OCSFStatistics types.List[OCSFStatistic] `json:"ocsfStatistics"`
}

// SeverityCount is a case count for one severity
type SeverityCount struct {
	Severity types.Text   `json:"severity"`
	Count    types.Number `json:"count"`
}

// TimeMetric is a mean-time measurement such as MTTR
type TimeMetric struct {
	Average types.OptionalNumber `json:"average"`
	Unit    types.Text           `json:"unit"`
}

// Case is a case entity
type Case struct {
	ID        types.Text             `json:"id"`
	SID       types.Text             `json:"sid"`
	Title     types.Text             `json:"title"`
	Severity  types.Text             `json:"severity"`
	Status    types.Text             `json:"status"`
	CreatedAt types.Text             `json:"createdAt"`
	Summary   types.Text             `json:"summary"`
	Notes     types.Text             `json:"notes"`
	Category  types.Text             `json:"category"`
	Platforms types.List[types.Text] `json:"platforms"`
}

// CaseList is a case search result
type CaseList struct {
	Data       types.List[Case] `json:"data"`
	TotalCount types.Number     `json:"totalCount"`
}

// Detection is a detection entity
type Detection struct {
	ID        types.Text             `json:"id"`
	Title     types.Text             `json:"title"`
	Severity  types.Text             `json:"severity"`
	Status    types.Text             `json:"status"`
	CreatedAt types.Text             `json:"createdAt"`
	Category  types.Text             `json:"category"`
	Platforms types.List[types.Text] `json:"platforms"`
}

// DetectionList is a detection search result
type DetectionList struct {
	Data       types.List[Detection] `json:"data"`
	TotalCount types.Number          `json:"totalCount"`
}

// CategoryClassStat is a detection count for one category class
type CategoryClassStat struct {
	CategoryClass types.Text   `json:"categoryClass"`
	DisplayName   types.Text   `json:"displayName"`
	Count         types.Number `json:"count"`
	Percentage    types.Number `json:"percentage"`
}

// IdentityFields identify a generic ingest integration
type IdentityFields struct {
	Label types.Text `json:"label"`
}

// Integration is a remote integration configuration record
type Integration struct {
	Platform       types.Text        `json:"platform"`
	Config         IntegrationConfig `json:"config"`
	Enabled        types.Flag        `json:"enabled"`
	IdentityFields IdentityFields    `json:"identityFields"`
}

// IntegrationList is an integration search result
type IntegrationList struct {
	Data       types.List[Integration] `json:"data"`
	TotalCount types.Number            `json:"totalCount"`
}

// EndpointAsset is an endpoint linked to a detection
type EndpointAsset struct {
	Name        types.Text `json:"name"`
	DisplayName types.Text `json:"displayName"`
}

// DirectoryAsset is a directory identity linked to a detection
type DirectoryAsset struct {
	DisplayName types.Text `json:"displayName"`
	Email       types.Text `json:"email"`
	DirectoryID types.Text `json:"directoryId"`
}

// Assets are the assets linked to one detection
type Assets struct {
	Endpoints types.List[EndpointAsset]  `json:"endpoints"`
	Directory types.List[DirectoryAsset] `json:"directory"`
}
