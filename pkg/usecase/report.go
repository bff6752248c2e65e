package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/wirereport/pkg/domain/interfaces"
	"github.com/secmon-lab/wirereport/pkg/domain/model"
	"github.com/secmon-lab/wirereport/pkg/domain/types"
	"github.com/secmon-lab/wirereport/pkg/utils/async"
)

// Report assembles security reports from Wirespeed telemetry
type Report struct {
	newTelemetry     interfaces.TelemetryFactory
	settings         *model.ReportSettings
	assetConcurrency int
	now              func() time.Time
}

var _ interfaces.ReportGenerator = (*Report)(nil)

// ReportOption configures Report
type ReportOption func(*Report)

// WithReportSettings sets presentation defaults. Empty fields keep the built-in values.
func WithReportSettings(settings *model.ReportSettings) ReportOption {
	return func(r *Report) {
		r.settings = settings.WithDefaults()
	}
}

// WithAssetConcurrency bounds concurrent asset lookups. n <= 0 means unbounded.
func WithAssetConcurrency(n int) ReportOption {
	return func(r *Report) {
		r.assetConcurrency = n
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) ReportOption {
	return func(r *Report) {
		r.now = now
	}
}

// NewReport creates a new Report use case
func NewReport(factory interfaces.TelemetryFactory, opts ...ReportOption) *Report {
	r := &Report{
		newTelemetry: factory,
		settings:     model.DefaultReportSettings(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// telemetry holds the raw results of one fan-out. Each field is written by
// exactly one task.
type telemetry struct {
	team               *model.Team
	detectionStats     *model.DetectionStatistics
	osStats            *model.OperatingSystemStatistics
	resourceStats      *model.ResourceStatistics
	geographyStats     *model.GeographyStatistics
	eventStats         *model.EventStatistics
	severityStats      []model.SeverityCount
	mttr               *model.TimeMetric
	mttd               *model.TimeMetric
	mttv               *model.TimeMetric
	mttc               *model.TimeMetric
	cases              *model.CaseList
	detections         *model.DetectionList
	privateCredentials *model.CaseList
	publicCredentials  *model.CaseList
	categoryClassStats []model.CategoryClassStat
	integrations       *model.IntegrationList
	detectionAssets    []*model.Assets
}

// Generate fetches all telemetry of the requested window and assembles the
// report. Any remote failure aborts the whole generation.
func (r *Report) Generate(ctx context.Context, req *model.ReportRequest) (*model.Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.now()
	period, err := model.NewReportPeriod(req.Timeframe, now)
	if err != nil {
		return nil, err
	}

	reportID := types.NewReportID()
	logger := ctxlog.From(ctx).With("report_id", reportID)
	ctx = ctxlog.With(ctx, logger)

	logger.Info("Generating report",
		"start", period.StartString(),
		"end", period.EndString(),
		"days", period.Days,
		"team_id", req.TeamID,
	)

	client := r.newTelemetry(req.APIKey)

	var branding *model.Branding
	if req.TeamID != "" {
		client, branding, err = r.switchTeam(ctx, client, req)
		if err != nil {
			return nil, err
		}
	}

	data, err := r.fetch(ctx, client, period)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch telemetry",
			goerr.V("report_id", reportID))
	}

	report := r.assemble(data, period, req.Timeframe.PeriodLabel, now)
	report.Branding = branding

	logger.Info("Report generated",
		"detections", report.Detections.Total,
		"escalated_cases", len(report.EscalatedCases),
		"integrations", len(report.Integrations),
	)

	return report, nil
}

// switchTeam resolves the service provider branding and returns a client
// scoped to the requested team
func (r *Report) switchTeam(ctx context.Context, client interfaces.Telemetry, req *model.ReportRequest) (interfaces.Telemetry, *model.Branding, error) {
	var team *model.Team
	var logos *model.PlatformLogos

	g := async.NewGroup(ctx, 0)
	async.Fetch(g, "service_provider_team", &team, client.CurrentTeam)
	async.Fetch(g, "platform_logos", &logos, client.PlatformLogos)
	if err := g.Wait(); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to fetch service provider branding",
			goerr.V("team_id", req.TeamID))
	}
	if team == nil {
		team = &model.Team{}
	}
	if logos == nil {
		logos = &model.PlatformLogos{}
	}

	switched, err := client.SwitchTeam(ctx, req.TeamID)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to switch team",
			goerr.V("team_id", req.TeamID))
	}
	if switched == nil || switched.AccessToken == "" {
		return nil, nil, goerr.New("team switch returned no access token",
			goerr.V("team_id", req.TeamID),
			goerr.T(model.ErrTagTransport))
	}

	ctxlog.From(ctx).Debug("Switched team", "team_id", req.TeamID)

	branding := &model.Branding{
		Logo:          logos.PlatformLogo.Or(team.Logo.Or(team.LogoURL.Or(r.settings.DefaultLogo))),
		LogoLight:     logos.PlatformLogoLight.String(),
		LogoDark:      logos.PlatformLogoDark.String(),
		SPName:        team.Name.String(),
		SupportEmail:  team.SupportEmail.String(),
		HidePoweredBy: req.HidePoweredBy,
		Colors:        req.CustomColors,
		Theme:         r.settings.Theme,
	}

	return r.newTelemetry(types.APIKey(switched.AccessToken)), branding, nil
}

func withPeriod[T any](fn func(context.Context, model.ReportPeriodQuery) (T, error), q model.ReportPeriodQuery) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		return fn(ctx, q)
	}
}

func (r *Report) fetch(ctx context.Context, client interfaces.Telemetry, period *model.ReportPeriod) (*telemetry, error) {
	var data telemetry
	q := period.Query()
	createdAt := period.CreatedWithin()

	caseQuery := func(category string) func(context.Context) (*model.CaseList, error) {
		return func(ctx context.Context) (*model.CaseList, error) {
			return client.SearchCases(ctx, model.CaseQuery{
				OrderBy:   "createdAt",
				OrderDir:  "desc",
				CreatedAt: createdAt,
				Category:  category,
			})
		}
	}

	g := async.NewGroup(ctx, 0)
	async.Fetch(g, "current_team", &data.team, client.CurrentTeam)
	async.Fetch(g, "detection_statistics", &data.detectionStats, withPeriod(client.DetectionStatistics, q))
	async.Fetch(g, "operating_system_statistics", &data.osStats, withPeriod(client.OperatingSystemStatistics, q))
	async.Fetch(g, "resource_statistics", &data.resourceStats, withPeriod(client.ResourceStatistics, q))
	async.Fetch(g, "geography_statistics", &data.geographyStats, withPeriod(client.GeographyStatistics, q))
	async.Fetch(g, "event_statistics", &data.eventStats, withPeriod(client.EventStatistics, q))
	async.Fetch(g, "case_severity_statistics", &data.severityStats, withPeriod(client.CaseSeverityStatistics, q))
	async.Fetch(g, "mttr", &data.mttr, withPeriod(client.MTTR, q))
	async.Fetch(g, "mttd", &data.mttd, withPeriod(client.MTTD, q))
	async.Fetch(g, "mttv", &data.mttv, withPeriod(client.MTTV, q))
	async.Fetch(g, "mttc", &data.mttc, withPeriod(client.MTTC, q))
	async.Fetch(g, "cases", &data.cases, caseQuery(""))
	async.Fetch(g, "private_credential_cases", &data.privateCredentials, caseQuery(model.CategoryPrivateCredentialExposure))
	async.Fetch(g, "public_credential_cases", &data.publicCredentials, caseQuery(model.CategoryPublicCredentialExposure))
	async.Fetch(g, "category_class_statistics", &data.categoryClassStats, withPeriod(client.DetectionCategoryClassStatistics, q))
	async.Fetch(g, "integrations", &data.integrations, func(ctx context.Context) (*model.IntegrationList, error) {
		return client.SearchIntegrations(ctx, model.IntegrationQuery{IncludeDisabled: true})
	})
	g.Go("detections", func(ctx context.Context) error {
		detections, err := client.SearchDetections(ctx, model.DetectionQuery{
			OrderBy:   "createdAt",
			OrderDir:  "desc",
			CreatedAt: createdAt,
		})
		if err != nil {
			return err
		}
		assets, err := r.fetchAssets(ctx, client, detections)
		if err != nil {
			return err
		}
		data.detections = detections
		data.detectionAssets = assets
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

// fetchAssets looks up the assets of every listed detection
func (r *Report) fetchAssets(ctx context.Context, client interfaces.Telemetry, detections *model.DetectionList) ([]*model.Assets, error) {
	if detections == nil {
		return nil, nil
	}
	items := detections.Data.Items()
	assets := make([]*model.Assets, len(items))

	g := async.NewGroup(ctx, r.assetConcurrency)
	async.Map(g, "detection_assets", items, assets, func(ctx context.Context, d model.Detection) (*model.Assets, error) {
		return client.AssetsByDetection(ctx, types.DetectionID(d.ID))
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Debug("Fetched detection assets", "detections", len(items))
	return assets, nil
}

func (r *Report) assemble(data *telemetry, period *model.ReportPeriod, periodLabel string, now time.Time) *model.Report {
	team := data.team
	if team == nil {
		team = &model.Team{}
	}
	stats := data.detectionStats
	if stats == nil {
		stats = &model.DetectionStatistics{}
	}
	resources := data.resourceStats
	if resources == nil {
		resources = &model.ResourceStatistics{}
	}

	total := stats.TotalDetections.Int()
	escalated := stats.EscalatedDetections.Int()
	chatOps := stats.ChatOpsDetections.Int()
	containment := stats.ContainmentDetections.Int()
	truePositives := stats.TruePositiveDetections.Int()
	falsePositives := stats.FalsePositiveDetections.Int()
	events := totalEvents(data.eventStats)

	reportPeriod := periodLabel
	if reportPeriod == "" {
		reportPeriod = fmt.Sprintf("Last %d Days", period.Days)
	}

	endpoints, identities := rankAttackSurface(data.detectionAssets)

	return &model.Report{
		CompanyName:       team.Name.Or(unknownTeamName),
		ReportPeriodLabel: periodLabel,
		ReportPeriod:      reportPeriod,
		Days:              period.Days,
		ExecutiveSummary: executiveSummary(summaryFacts{
			ProductName:     r.settings.ProductName,
			Events:          events,
			Endpoints:       resources.BillableEndpoints.Int(),
			Users:           resources.BillableUsers.Int(),
			Detections:      total,
			AutoClosed:      stats.AutomaticallyClosed.Int(),
			Escalated:       escalated,
			ResponseActions: chatOps + containment,
		}),
		BillableUsers:     resources.BillableUsers.Int(),
		BillableEndpoints: resources.BillableEndpoints.Int(),
		Detections: model.DetectionSummary{
			Total:              total,
			Historic:           stats.HistoricDetections.Int(),
			Escalated:          escalated,
			EscalatedPercent:   formatPercent(escalated, total),
			ChatOps:            chatOps,
			ChatOpsPercent:     formatPercent(chatOps, total),
			Containment:        containment,
			ContainmentPercent: formatPercent(containment, total),
			AutoClosed:         stats.AutomaticallyClosed.Int(),
		},
		VerdictAccuracy: model.VerdictAccuracy{
			VerdictedMalicious:    stats.VerdictedMalicious.Int(),
			ConfirmedMalicious:    stats.ConfirmedMalicious.Int(),
			TruePositives:         truePositives,
			TruePositivesPercent:  formatPercent(truePositives, escalated),
			FalsePositives:        falsePositives,
			FalsePositivesPercent: formatPercent(falsePositives, escalated),
		},
		PotentialActions: model.PotentialActions{
			WouldEscalate: stats.PotentialEscalatedDetections.Int(),
			WouldChatOps:  stats.PotentialChatOpsDetections.Int(),
			WouldContain:  stats.PotentialContainmentDetections.Int(),
		},
		EventsByIntegration:    eventsByIntegration(data.eventStats),
		EndpointsByOS:          endpointsByOS(data.osStats),
		MostAttackedEndpoints:  endpoints,
		MostAttackedIdentities: identities,
		MeanTimeMetrics: model.MeanTimeMetrics{
			MTTR: formatTimeMetric(data.mttr),
			MTTD: formatTimeMetric(data.mttd),
			MTTV: formatTimeMetric(data.mttv),
			MTTC: formatTimeMetric(data.mttc),
		},
		FunnelData: model.Funnel{
			Total:      events,
			Detections: total,
			Cases:      escalated,
			Responded:  chatOps + containment,
		},
		CasesBySeverity:               casesBySeverity(data.severityStats),
		SuspiciousLoginLocations:      suspiciousLoginLocations(data.geographyStats),
		Integrations:                  integrationEntries(data.integrations),
		DetectionStatsByCategoryClass: categoryClassEntries(data.categoryClassStats),
		MappedDetectionStats:          mappedDetectionStats(data.categoryClassStats, total),
		EscalatedCases:                escalatedCases(data.cases, r.settings.CaseResponse, now),
		DarkWebReport:                 darkWebReport(data.privateCredentials, data.publicCredentials, now),
	}
}
