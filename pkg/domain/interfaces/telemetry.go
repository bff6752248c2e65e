package interfaces

//go:generate moq -out mocks/telemetry_mock.go -pkg mocks . Telemetry

import (
	"context"

	"github.com/secmon-lab/wirereport/pkg/domain/model"
	"github.com/secmon-lab/wirereport/pkg/domain/types"
)

// Telemetry defines the Wirespeed API operations used to build reports.
// An implementation is bound to one session credential.
type Telemetry interface {
	// Team operations
	CurrentTeam(ctx context.Context) (*model.Team, error)
	SearchTeams(ctx context.Context, query model.TeamQuery) (*model.TeamSearch, error)
	SwitchTeam(ctx context.Context, teamID types.TeamID) (*model.SwitchTeamResult, error)
	PlatformLogos(ctx context.Context) (*model.PlatformLogos, error)

	// Statistics groups
	DetectionStatistics(ctx context.Context, period model.ReportPeriodQuery) (*model.DetectionStatistics, error)
	OperatingSystemStatistics(ctx context.Context, period model.ReportPeriodQuery) (*model.OperatingSystemStatistics, error)
	ResourceStatistics(ctx context.Context, period model.ReportPeriodQuery) (*model.ResourceStatistics, error)
	GeographyStatistics(ctx context.Context, period model.ReportPeriodQuery) (*model.GeographyStatistics, error)
	EventStatistics(ctx context.Context, period model.ReportPeriodQuery) (*model.EventStatistics, error)
	CaseSeverityStatistics(ctx context.Context, period model.ReportPeriodQuery) ([]model.SeverityCount, error)
	DetectionCategoryClassStatistics(ctx context.Context, period model.ReportPeriodQuery) ([]model.CategoryClassStat, error)

	// Mean time metrics
	MTTR(ctx context.Context, period model.ReportPeriodQuery) (*model.TimeMetric, error)
	MTTD(ctx context.Context, period model.ReportPeriodQuery) (*model.TimeMetric, error)
	MTTV(ctx context.Context, period model.ReportPeriodQuery) (*model.TimeMetric, error)
	MTTC(ctx context.Context, period model.ReportPeriodQuery) (*model.TimeMetric, error)

	// Listings
	SearchCases(ctx context.Context, query model.CaseQuery) (*model.CaseList, error)
	SearchDetections(ctx context.Context, query model.DetectionQuery) (*model.DetectionList, error)
	SearchIntegrations(ctx context.Context, query model.IntegrationQuery) (*model.IntegrationList, error)
	AssetsByDetection(ctx context.Context, id types.DetectionID) (*model.Assets, error)
}

// TelemetryFactory creates a Telemetry bound to the given API key or session token
type TelemetryFactory func(apiKey types.APIKey) Telemetry
