package usecase_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/wirereport/pkg/domain/interfaces"
	"github.com/secmon-lab/wirereport/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/wirereport/pkg/domain/model"
	"github.com/secmon-lab/wirereport/pkg/domain/types"
	"github.com/secmon-lab/wirereport/pkg/usecase"
)

var testNow = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

var januaryTimeframe = model.Timeframe{
	StartDate:   "2024-01-01",
	EndDate:     "2024-01-31",
	PeriodLabel: "January",
}

// newEmptyTelemetry returns a mock whose endpoints all answer with empty payloads
func newEmptyTelemetry() *mocks.TelemetryMock {
	return &mocks.TelemetryMock{
		CurrentTeamFunc: func(ctx context.Context) (*model.Team, error) {
			return &model.Team{}, nil
		},
		SearchTeamsFunc: func(ctx context.Context, query model.TeamQuery) (*model.TeamSearch, error) {
			return &model.TeamSearch{}, nil
		},
		SwitchTeamFunc: func(ctx context.Context, teamID types.TeamID) (*model.SwitchTeamResult, error) {
			return &model.SwitchTeamResult{}, nil
		},
		PlatformLogosFunc: func(ctx context.Context) (*model.PlatformLogos, error) {
			return &model.PlatformLogos{}, nil
		},
		DetectionStatisticsFunc: func(ctx context.Context, period model.ReportPeriodQuery) (*model.DetectionStatistics, error) {
			return &model.DetectionStatistics{}, nil
		},
		OperatingSystemStatisticsFunc: func(ctx context.Context, period model.ReportPeriodQuery) (*model.OperatingSystemStatistics, error) {
			return &model.OperatingSystemStatistics{}, nil
		},
		ResourceStatisticsFunc: func(ctx context.Context, period model.ReportPeriodQuery) (*model.ResourceStatistics, error) {
			return &model.ResourceStatistics{}, nil
		},
		GeographyStatisticsFunc: func(ctx context.Context, period model.ReportPeriodQuery) (*model.GeographyStatistics, error) {
			return &model.GeographyStatistics{}, nil
		},
		EventStatisticsFunc: func(ctx context.Context, period model.ReportPeriodQuery) (*model.EventStatistics, error) {
			return &model.EventStatistics{}, nil
		},
		CaseSeverityStatisticsFunc: func(ctx context.Context, period model.ReportPeriodQuery) ([]model.SeverityCount, error) {
			return nil, nil
		},
		DetectionCategoryClassStatisticsFunc: func(ctx context.Context, period model.ReportPeriodQuery) ([]model.CategoryClassStat, error) {
			return nil, nil
		},
		MTTRFunc: func(ctx context.Context, period model.ReportPeriodQuery) (*model.TimeMetric, error) {
			return nil, nil
		},
		MTTDFunc: func(ctx context.Context, period model.ReportPeriodQuery) (*model.TimeMetric, error) {
			return nil, nil
		},
		MTTVFunc: func(ctx context.Context, period model.ReportPeriodQuery) (*model.TimeMetric, error) {
			return nil, nil
		},
		MTTCFunc: func(ctx context.Context, period model.ReportPeriodQuery) (*model.TimeMetric, error) {
			return nil, nil
		},
		SearchCasesFunc: func(ctx context.Context, query model.CaseQuery) (*model.CaseList, error) {
			return &model.CaseList{}, nil
		},
		SearchDetectionsFunc: func(ctx context.Context, query model.DetectionQuery) (*model.DetectionList, error) {
			return &model.DetectionList{}, nil
		},
		SearchIntegrationsFunc: func(ctx context.Context, query model.IntegrationQuery) (*model.IntegrationList, error) {
			return &model.IntegrationList{}, nil
		},
		AssetsByDetectionFunc: func(ctx context.Context, id types.DetectionID) (*model.Assets, error) {
			return &model.Assets{}, nil
		},
	}
}

// factoryOf returns a factory handing out mocks by API key and recording the keys used
func factoryOf(clients map[types.APIKey]*mocks.TelemetryMock) (interfaces.TelemetryFactory, func() []types.APIKey) {
	var mu sync.Mutex
	var keys []types.APIKey
	factory := func(apiKey types.APIKey) interfaces.Telemetry {
		mu.Lock()
		defer mu.Unlock()
		keys = append(keys, apiKey)
		if c, ok := clients[apiKey]; ok {
			return c
		}
		return newEmptyTelemetry()
	}
	return factory, func() []types.APIKey {
		mu.Lock()
		defer mu.Unlock()
		return keys
	}
}

func TestGenerateEmptyReport(t *testing.T) {
	client := newEmptyTelemetry()
	factory, _ := factoryOf(map[types.APIKey]*mocks.TelemetryMock{"key": client})
	uc := usecase.NewReport(factory, usecase.WithClock(func() time.Time { return testNow }))

	report, err := uc.Generate(context.Background(), &model.ReportRequest{
		APIKey:    "key",
		Timeframe: januaryTimeframe,
	})
	gt.NoError(t, err).Required()

	gt.Equal(t, "Unknown Team", report.CompanyName)
	gt.Equal(t, "January", report.ReportPeriod)
	gt.Equal(t, "January", report.ReportPeriodLabel)
	gt.Equal(t, 30, report.Days)
	gt.Nil(t, report.Branding)

	gt.Equal(t, "0%", report.Detections.EscalatedPercent)
	gt.Equal(t, "0%", report.VerdictAccuracy.TruePositivesPercent)
	gt.Equal(t, model.MeanTimeMetrics{MTTR: "0ms", MTTD: "0ms", MTTV: "0ms", MTTC: "0ms"}, report.MeanTimeMetrics)
	gt.Equal(t, model.EndpointOS{}, report.EndpointsByOS)
	gt.Equal(t, model.SeverityBreakdown{}, report.CasesBySeverity)
	gt.Equal(t, 7, len(report.MappedDetectionStats))

	gt.NotNil(t, report.EventsByIntegration)
	gt.NotNil(t, report.MostAttackedEndpoints)
	gt.NotNil(t, report.MostAttackedIdentities)
	gt.NotNil(t, report.SuspiciousLoginLocations)
	gt.NotNil(t, report.Integrations)
	gt.NotNil(t, report.DetectionStatsByCategoryClass)
	gt.NotNil(t, report.EscalatedCases)
	gt.NotNil(t, report.DarkWebReport.RecentLeaks)

	gt.S(t, report.ExecutiveSummary).Contains("Wirespeed analyzed 0 events from 0 endpoints, 0 users, and other sources")
	gt.S(t, report.ExecutiveSummary).Contains("escalated 0 cases to your security team")
	gt.S(t, report.ExecutiveSummary).Contains("led to no response actions")
	gt.False(t, strings.Contains(report.ExecutiveSummary, "<"))

	gt.Equal(t, 0, len(client.SwitchTeamCalls()))
	gt.Equal(t, 0, len(client.PlatformLogosCalls()))
	gt.Equal(t, 0, len(client.AssetsByDetectionCalls()))
}

func TestGenerateQueries(t *testing.T) {
	client := newEmptyTelemetry()
	factory, _ := factoryOf(map[types.APIKey]*mocks.TelemetryMock{"key": client})
	uc := usecase.NewReport(factory, usecase.WithClock(func() time.Time { return testNow }))

	_, err := uc.Generate(context.Background(), &model.ReportRequest{
		APIKey: "key",
		Timeframe: model.Timeframe{
			StartDate: "2024-01-01T00:00:00.123456Z",
			EndDate:   "2099-01-01T00:00:00Z",
		},
	})
	gt.NoError(t, err).Required()

	period := model.ReportPeriodQuery{
		StartDate: "2024-01-01T00:00:00.123",
		EndDate:   "2024-03-01T00:00:00.000",
	}
	gt.Equal(t, period, client.DetectionStatisticsCalls()[0].Period)
	gt.Equal(t, period, client.MTTCCalls()[0].Period)
	gt.Equal(t, 1, len(client.CurrentTeamCalls()))
	gt.Equal(t, 1, len(client.SearchDetectionsCalls()))
	gt.Equal(t, 1, len(client.SearchIntegrationsCalls()))
	gt.True(t, client.SearchIntegrationsCalls()[0].Query.IncludeDisabled)

	caseCalls := client.SearchCasesCalls()
	gt.Equal(t, 3, len(caseCalls))
	categories := map[string]bool{}
	for _, c := range caseCalls {
		categories[c.Query.Category] = true
		gt.Equal(t, "createdAt", c.Query.OrderBy)
		gt.Equal(t, "desc", c.Query.OrderDir)
		gt.Equal(t, model.DateRange{GTE: period.StartDate, LTE: period.EndDate}, c.Query.CreatedAt)
	}
	gt.True(t, categories[""])
	gt.True(t, categories[model.CategoryPrivateCredentialExposure])
	gt.True(t, categories[model.CategoryPublicCredentialExposure])
}

func TestGenerateDerivesFigures(t *testing.T) {
	client := newEmptyTelemetry()
	client.CurrentTeamFunc = func(ctx context.Context) (*model.Team, error) {
		return &model.Team{Name: "Acme Corp"}, nil
	}
	client.DetectionStatisticsFunc = func(ctx context.Context, period model.ReportPeriodQuery) (*model.DetectionStatistics, error) {
		return &model.DetectionStatistics{
			TotalDetections:        200,
			EscalatedDetections:    1,
			ChatOpsDetections:      3,
			ContainmentDetections:  2,
			AutomaticallyClosed:    199,
			TruePositiveDetections: 1,
		}, nil
	}
	client.ResourceStatisticsFunc = func(ctx context.Context, period model.ReportPeriodQuery) (*model.ResourceStatistics, error) {
		return &model.ResourceStatistics{BillableUsers: 1, BillableEndpoints: 1200}, nil
	}
	client.EventStatisticsFunc = func(ctx context.Context, period model.ReportPeriodQuery) (*model.EventStatistics, error) {
		return &model.EventStatistics{OCSFStatistics: types.List[model.OCSFStatistic]{
			{TotalEvents: 1000000},
			{TotalEvents: 234567},
		}}, nil
	}
	client.OperatingSystemStatisticsFunc = func(ctx context.Context, period model.ReportPeriodQuery) (*model.OperatingSystemStatistics, error) {
		return &model.OperatingSystemStatistics{OperatingSystems: types.List[model.OperatingSystemCount]{
			{OperatingSystem: "Windows 10", Count: 10},
			{OperatingSystem: "Windows Server", Count: 5},
			{OperatingSystem: "BeOS", Count: 1},
		}}, nil
	}
	client.MTTRFunc = func(ctx context.Context, period model.ReportPeriodQuery) (*model.TimeMetric, error) {
		return &model.TimeMetric{Average: types.NewOptionalNumber(7200), Unit: "seconds"}, nil
	}
	client.SearchDetectionsFunc = func(ctx context.Context, query model.DetectionQuery) (*model.DetectionList, error) {
		return &model.DetectionList{Data: types.List[model.Detection]{{ID: "d1"}, {ID: "d2"}, {ID: "d3"}}}, nil
	}
	client.AssetsByDetectionFunc = func(ctx context.Context, id types.DetectionID) (*model.Assets, error) {
		return &model.Assets{
			Endpoints: types.List[model.EndpointAsset]{{Name: "laptop-" + types.Text(id)}, {DisplayName: "dc-01"}},
			Directory: types.List[model.DirectoryAsset]{{Email: "ceo@example.com", DirectoryID: "dir"}},
		}, nil
	}

	factory, _ := factoryOf(map[types.APIKey]*mocks.TelemetryMock{"key": client})
	uc := usecase.NewReport(factory,
		usecase.WithClock(func() time.Time { return testNow }),
		usecase.WithAssetConcurrency(2),
		usecase.WithReportSettings(&model.ReportSettings{ProductName: "Acme MDR"}),
	)

	report, err := uc.Generate(context.Background(), &model.ReportRequest{
		APIKey:    "key",
		Timeframe: model.Timeframe{StartDate: "2024-02-01", EndDate: "2024-02-08"},
	})
	gt.NoError(t, err).Required()

	gt.Equal(t, "Acme Corp", report.CompanyName)
	gt.Equal(t, "Last 7 Days", report.ReportPeriod)
	gt.Equal(t, "", report.ReportPeriodLabel)
	gt.Equal(t, "0.50%", report.Detections.EscalatedPercent)
	gt.Equal(t, "1.50%", report.Detections.ChatOpsPercent)
	gt.Equal(t, "1.00%", report.Detections.ContainmentPercent)
	gt.Equal(t, "100.00%", report.VerdictAccuracy.TruePositivesPercent)
	gt.Equal(t, "0.00%", report.VerdictAccuracy.FalsePositivesPercent)
	gt.Equal(t, model.EndpointOS{Windows: 15, Other: 1}, report.EndpointsByOS)
	gt.Equal(t, "2.0h", report.MeanTimeMetrics.MTTR)
	gt.Equal(t, model.Funnel{Total: 1234567, Detections: 200, Cases: 1, Responded: 5}, report.FunnelData)

	gt.Equal(t, 3, len(client.AssetsByDetectionCalls()))
	gt.Equal(t, model.RankedItem{Name: "dc-01", Count: 3}, report.MostAttackedEndpoints[0])
	gt.Equal(t, 4, len(report.MostAttackedEndpoints))
	gt.Equal(t, []model.RankedItem{{Name: "ceo@example.com", Count: 3}}, report.MostAttackedIdentities)

	gt.S(t, report.ExecutiveSummary).Contains("Acme MDR analyzed 1,234,567 events from 1,200 endpoints, 1 user, and other sources")
	gt.S(t, report.ExecutiveSummary).Contains("Of those events, 200 triggered detections")
	gt.S(t, report.ExecutiveSummary).Contains("automatically resolved 199 and escalated 1 case to your security team")
	gt.S(t, report.ExecutiveSummary).Contains("led to 5 response actions")
}

func TestGenerateWithTeam(t *testing.T) {
	provider := newEmptyTelemetry()
	provider.CurrentTeamFunc = func(ctx context.Context) (*model.Team, error) {
		return &model.Team{Name: "MSSP Inc", Logo: "team.png", LogoURL: "team-url.png", SupportEmail: "help@mssp.example"}, nil
	}
	provider.PlatformLogosFunc = func(ctx context.Context) (*model.PlatformLogos, error) {
		return &model.PlatformLogos{PlatformLogoLight: "light.png", PlatformLogoDark: "dark.png"}, nil
	}
	provider.SwitchTeamFunc = func(ctx context.Context, teamID types.TeamID) (*model.SwitchTeamResult, error) {
		return &model.SwitchTeamResult{AccessToken: "scoped-token"}, nil
	}

	customer := newEmptyTelemetry()
	customer.CurrentTeamFunc = func(ctx context.Context) (*model.Team, error) {
		return &model.Team{Name: "Customer LLC"}, nil
	}

	factory, keys := factoryOf(map[types.APIKey]*mocks.TelemetryMock{
		"provider-key": provider,
		"scoped-token": customer,
	})
	uc := usecase.NewReport(factory, usecase.WithClock(func() time.Time { return testNow }))

	colors := &model.CustomColors{Primary: "#112233"}
	report, err := uc.Generate(context.Background(), &model.ReportRequest{
		APIKey:        "provider-key",
		Timeframe:     januaryTimeframe,
		TeamID:        "team-7",
		CustomColors:  colors,
		HidePoweredBy: true,
	})
	gt.NoError(t, err).Required()

	gt.Equal(t, []types.APIKey{"provider-key", "scoped-token"}, keys())
	gt.Equal(t, types.TeamID("team-7"), provider.SwitchTeamCalls()[0].TeamID)
	gt.Equal(t, 0, len(provider.DetectionStatisticsCalls()))
	gt.Equal(t, 1, len(customer.DetectionStatisticsCalls()))

	gt.Equal(t, "Customer LLC", report.CompanyName)
	gt.V(t, report.Branding).NotNil()
	gt.Equal(t, model.Branding{
		Logo:          "team.png",
		LogoLight:     "light.png",
		LogoDark:      "dark.png",
		SPName:        "MSSP Inc",
		SupportEmail:  "help@mssp.example",
		HidePoweredBy: true,
		Colors:        colors,
		Theme:         "light",
	}, *report.Branding)
}

func TestGenerateBrandingLogoPrecedence(t *testing.T) {
	testCases := []struct {
		name  string
		team  model.Team
		logos model.PlatformLogos
		want  string
	}{
		{"platform logo", model.Team{Logo: "t", LogoURL: "u"}, model.PlatformLogos{PlatformLogo: "p"}, "p"},
		{"team logo", model.Team{Logo: "t", LogoURL: "u"}, model.PlatformLogos{}, "t"},
		{"team logo url", model.Team{LogoURL: "u"}, model.PlatformLogos{}, "u"},
		{"default asset", model.Team{}, model.PlatformLogos{}, model.DefaultLogo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider := newEmptyTelemetry()
			provider.CurrentTeamFunc = func(ctx context.Context) (*model.Team, error) { return &tc.team, nil }
			provider.PlatformLogosFunc = func(ctx context.Context) (*model.PlatformLogos, error) { return &tc.logos, nil }
			provider.SwitchTeamFunc = func(ctx context.Context, teamID types.TeamID) (*model.SwitchTeamResult, error) {
				return &model.SwitchTeamResult{AccessToken: "scoped"}, nil
			}
			factory, _ := factoryOf(map[types.APIKey]*mocks.TelemetryMock{"key": provider})
			uc := usecase.NewReport(factory, usecase.WithClock(func() time.Time { return testNow }))

			report, err := uc.Generate(context.Background(), &model.ReportRequest{
				APIKey: "key", Timeframe: januaryTimeframe, TeamID: "t1",
			})
			gt.NoError(t, err).Required()
			gt.Equal(t, tc.want, report.Branding.Logo)
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		factory, keys := factoryOf(nil)
		uc := usecase.NewReport(factory)

		_, err := uc.Generate(context.Background(), &model.ReportRequest{Timeframe: januaryTimeframe})
		gt.Error(t, err)
		gt.True(t, model.IsValidation(err))
		gt.Equal(t, 0, len(keys()))
	})

	t.Run("invalid timeframe", func(t *testing.T) {
		factory, keys := factoryOf(nil)
		uc := usecase.NewReport(factory)

		_, err := uc.Generate(context.Background(), &model.ReportRequest{
			APIKey:    "key",
			Timeframe: model.Timeframe{StartDate: "yesterday", EndDate: "2024-01-31"},
		})
		gt.Error(t, err)
		gt.True(t, model.IsValidation(err))
		gt.Equal(t, 0, len(keys()))
	})

	t.Run("unauthorized current team", func(t *testing.T) {
		client := newEmptyTelemetry()
		client.CurrentTeamFunc = func(ctx context.Context) (*model.Team, error) {
			return nil, &model.TransportError{Status: 401, Message: "Unauthorized", Path: "/team"}
		}
		factory, _ := factoryOf(map[types.APIKey]*mocks.TelemetryMock{"key": client})
		uc := usecase.NewReport(factory, usecase.WithClock(func() time.Time { return testNow }))

		report, err := uc.Generate(context.Background(), &model.ReportRequest{APIKey: "key", Timeframe: januaryTimeframe})
		gt.Error(t, err)
		gt.Nil(t, report)
		gt.True(t, model.IsUnauthorized(err))
		gt.False(t, model.IsValidation(err))
	})

	t.Run("asset lookup failure aborts", func(t *testing.T) {
		client := newEmptyTelemetry()
		client.SearchDetectionsFunc = func(ctx context.Context, query model.DetectionQuery) (*model.DetectionList, error) {
			return &model.DetectionList{Data: types.List[model.Detection]{{ID: "d1"}}}, nil
		}
		client.AssetsByDetectionFunc = func(ctx context.Context, id types.DetectionID) (*model.Assets, error) {
			return nil, &model.TransportError{Status: 500, Message: "boom"}
		}
		factory, _ := factoryOf(map[types.APIKey]*mocks.TelemetryMock{"key": client})
		uc := usecase.NewReport(factory, usecase.WithClock(func() time.Time { return testNow }))

		_, err := uc.Generate(context.Background(), &model.ReportRequest{APIKey: "key", Timeframe: januaryTimeframe})
		gt.Error(t, err)
		gt.False(t, model.IsUnauthorized(err))
	})

	t.Run("team switch without token", func(t *testing.T) {
		client := newEmptyTelemetry()
		factory, keys := factoryOf(map[types.APIKey]*mocks.TelemetryMock{"key": client})
		uc := usecase.NewReport(factory, usecase.WithClock(func() time.Time { return testNow }))

		_, err := uc.Generate(context.Background(), &model.ReportRequest{
			APIKey: "key", Timeframe: januaryTimeframe, TeamID: "t1",
		})
		gt.Error(t, err)
		gt.Equal(t, 1, len(keys()))
		gt.Equal(t, 0, len(client.DetectionStatisticsCalls()))
	})
}
