package model

import (
	"github.com/secmon-lab/wirereport/pkg/domain/types"
)

// Report is the assembled report document served to the presentation layer.
// Every leaf is defaulted; Branding is the only field that may be absent.
type Report struct {
	CompanyName                   string                `json:"companyName"`
	ReportPeriodLabel             string                `json:"reportPeriodLabel"`
	ReportPeriod                  string                `json:"reportPeriod"`
	Days                          int                   `json:"days"`
	Branding                      *Branding             `json:"branding,omitempty"`
	ExecutiveSummary              string                `json:"executiveSummary"`
	BillableUsers                 int64                 `json:"billableUsers"`
	BillableEndpoints             int64                 `json:"billableEndpoints"`
	Detections                    DetectionSummary      `json:"detections"`
	VerdictAccuracy               VerdictAccuracy       `json:"verdictAccuracy"`
	PotentialActions              PotentialActions      `json:"potentialActions"`
	EventsByIntegration           []IntegrationEvents   `json:"eventsByIntegration"`
	EndpointsByOS                 EndpointOS            `json:"endpointsByOS"`
	MostAttackedEndpoints         []RankedItem          `json:"mostAttackedEndpoints"`
	MostAttackedIdentities        []RankedItem          `json:"mostAttackedIdentities"`
	MeanTimeMetrics               MeanTimeMetrics       `json:"meanTimeMetrics"`
	FunnelData                    Funnel                `json:"funnelData"`
	CasesBySeverity               SeverityBreakdown     `json:"casesBySeverity"`
	SuspiciousLoginLocations      []LocationEntry       `json:"suspiciousLoginLocations"`
	Integrations                  []IntegrationEntry    `json:"integrations"`
	DetectionStatsByCategoryClass []CategoryClassEntry  `json:"detectionStatsByCategoryClass"`
	MappedDetectionStats          []MappedDetectionStat `json:"mappedDetectionStats"`
	EscalatedCases                []EscalatedCase       `json:"escalatedCases"`
	DarkWebReport                 DarkWebReport         `json:"darkWebReport"`
}

// Branding is the service provider branding of a team report
type Branding struct {
	Logo          string        `json:"logo"`
	LogoLight     string        `json:"logoLight"`
	LogoDark      string        `json:"logoDark"`
	SPName        string        `json:"spName"`
	SupportEmail  string        `json:"supportEmail"`
	HidePoweredBy bool          `json:"hidePoweredBy"`
	Colors        *CustomColors `json:"colors,omitempty"`
	Theme         string        `json:"theme"`
}

// CustomColors are caller supplied branding colors, passed through untouched
type CustomColors struct {
	Primary   string `json:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty"`
}

// DetectionSummary holds detection counters and their share of all detections
type DetectionSummary struct {
	Total              int64  `json:"total"`
	Historic           int64  `json:"historic"`
	Escalated          int64  `json:"escalated"`
	EscalatedPercent   string `json:"escalatedPercent"`
	ChatOps            int64  `json:"chatOps"`
	ChatOpsPercent     string `json:"chatOpsPercent"`
	Containment        int64  `json:"containment"`
	ContainmentPercent string `json:"containmentPercent"`
	AutoClosed         int64  `json:"autoClosed"`
}

// VerdictAccuracy holds verdict counters relative to escalated detections
type VerdictAccuracy struct {
	VerdictedMalicious    int64  `json:"verdictedMalicious"`
	ConfirmedMalicious    int64  `json:"confirmedMalicious"`
	TruePositives         int64  `json:"truePositives"`
	TruePositivesPercent  string `json:"truePositivesPercent"`
	FalsePositives        int64  `json:"falsePositives"`
	FalsePositivesPercent string `json:"falsePositivesPercent"`
}

// PotentialActions are actions that would have been taken with full automation
type PotentialActions struct {
	WouldEscalate int64 `json:"wouldEscalate"`
	WouldChatOps  int64 `json:"wouldChatOps"`
	WouldContain  int64 `json:"wouldContain"`
}

// IntegrationEvents is the processed event volume of one integration
type IntegrationEvents struct {
	Name       string `json:"name"`
	Processed  string `json:"processed"`
	Count      string `json:"count"`
	CountValue int64  `json:"countValue"`
}

// EndpointOS counts endpoints per operating system bucket
type EndpointOS struct {
	Windows int64 `json:"windows"`
	MacOS   int64 `json:"macos"`
	Linux   int64 `json:"linux"`
	Mobile  int64 `json:"mobile"`
	Other   int64 `json:"other"`
}

// Add adds n endpoints to bucket
func (e *EndpointOS) Add(bucket OSBucket, n int64) {
	switch bucket {
	case OSWindows:
		e.Windows += n
	case OSMacOS:
		e.MacOS += n
	case OSLinux:
		e.Linux += n
	case OSMobile:
		e.Mobile += n
	default:
		e.Other += n
	}
}

// RankedItem is an entry of an attack surface ranking
type RankedItem struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// MeanTimeMetrics are formatted mean-time durations
type MeanTimeMetrics struct {
	MTTR string `json:"mttr"`
	MTTD string `json:"mttd"`
	MTTV string `json:"mttv"`
	MTTC string `json:"mttc"`
}

// Funnel narrows events down to responses
type Funnel struct {
	Total      int64 `json:"total"`
	Detections int64 `json:"detections"`
	Cases      int64 `json:"cases"`
	Responded  int64 `json:"responded"`
}

// SeverityBreakdown counts cases per severity
type SeverityBreakdown struct {
	Critical      int64 `json:"critical"`
	High          int64 `json:"high"`
	Medium        int64 `json:"medium"`
	Low           int64 `json:"low"`
	Informational int64 `json:"informational"`
}

// Set stores n for severity; unknown severities are ignored
func (b *SeverityBreakdown) Set(severity Severity, n int64) {
	switch severity {
	case SeverityCritical:
		b.Critical = n
	case SeverityHigh:
		b.High = n
	case SeverityMedium:
		b.Medium = n
	case SeverityLow:
		b.Low = n
	case SeverityInformational:
		b.Informational = n
	}
}

// LocationEntry is a country with a count
type LocationEntry struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// IntegrationEntry is a reportable integration
type IntegrationEntry struct {
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	Platform string   `json:"platform"`
	Enabled  bool     `json:"enabled"`
	Logo     string   `json:"logo"`
}

// CategoryClassEntry is a raw detection category class statistic
type CategoryClassEntry struct {
	CategoryClass string  `json:"categoryClass"`
	DisplayName   string  `json:"displayName"`
	Count         int64   `json:"count"`
	Percentage    float64 `json:"percentage"`
}

// MappedDetectionStat is a detection count for one of FixedDetectionCategories
type MappedDetectionStat struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	Count      int64   `json:"count"`
}

// EscalatedCase is a sanitized case shown in the report
type EscalatedCase struct {
	ID        string   `json:"id"`
	SID       string   `json:"sid"`
	Title     string   `json:"title"`
	Severity  Severity `json:"severity"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"createdAt"`
	Response  string   `json:"response"`
}

// DarkWebReport summarizes credential exposure cases. CompromisedAccounts is
// an approximation: it counts merged exposure cases, and a case does not
// always map to exactly one account.
type DarkWebReport struct {
	TotalExposures      int64  `json:"totalExposures"`
	HighRiskExposures   int    `json:"highRiskExposures"`
	CompromisedAccounts int    `json:"compromisedAccounts"`
	RecentLeaks         []Leak `json:"recentLeaks"`
}

// Leak is a recent credential exposure
type Leak struct {
	Date     string   `json:"date"`
	Source   string   `json:"source"`
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
}

// TeamsResult is the team picker payload
type TeamsResult struct {
	IsServiceProvider bool          `json:"isServiceProvider"`
	Teams             []TeamSummary `json:"teams"`
}

// ReportRequest is the input of a report generation
type ReportRequest struct {
	APIKey        types.APIKey  `json:"apiKey"`
	Timeframe     Timeframe     `json:"timeframe"`
	TeamID        types.TeamID  `json:"teamId,omitempty"`
	CustomColors  *CustomColors `json:"customColors,omitempty"`
	HidePoweredBy bool          `json:"hidePoweredBy,omitempty"`
}

// Validate checks the fields required before any remote call
func (r *ReportRequest) Validate() error {
	if r == nil || r.APIKey == "" {
		return ErrAPIKeyRequired
	}
	return nil
}
