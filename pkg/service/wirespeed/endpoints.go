package wirespeed

import (
	"context"
	"net/http"
	"net/url"

	"github.com/secmon-lab/wirereport/pkg/domain/model"
	"github.com/secmon-lab/wirereport/pkg/domain/types"
)

// CurrentTeam implements interfaces.Telemetry
func (c *Client) CurrentTeam(ctx context.Context) (*model.Team, error) {
	return call[model.Team](ctx, c, http.MethodGet, "/team", nil)
}

// SearchTeams implements interfaces.Telemetry
func (c *Client) SearchTeams(ctx context.Context, query model.TeamQuery) (*model.TeamSearch, error) {
	return call[model.TeamSearch](ctx, c, http.MethodPost, "/team", query)
}

type switchTeamRequest struct {
	TeamID types.TeamID `json:"teamId"`
}

// SwitchTeam implements interfaces.Telemetry
func (c *Client) SwitchTeam(ctx context.Context, teamID types.TeamID) (*model.SwitchTeamResult, error) {
	return call[model.SwitchTeamResult](ctx, c, http.MethodPost, "/team/switch", switchTeamRequest{TeamID: teamID})
}

// PlatformLogos implements interfaces.Telemetry
func (c *Client) PlatformLogos(ctx context.Context) (*model.PlatformLogos, error) {
	return call[model.PlatformLogos](ctx, c, http.MethodGet, "/team/platform-logo", nil)
}

// DetectionStatistics implements interfaces.Telemetry
func (c *Client) DetectionStatistics(ctx context.Context, period model.ReportPeriodQuery) (*model.DetectionStatistics, error) {
	return call[model.DetectionStatistics](ctx, c, http.MethodPost, "/team/statistics/detections", period)
}

// OperatingSystemStatistics implements interfaces.Telemetry
func (c *Client) OperatingSystemStatistics(ctx context.Context, period model.ReportPeriodQuery) (*model.OperatingSystemStatistics, error) {
	return call[model.OperatingSystemStatistics](ctx, c, http.MethodPost, "/team/statistics/operating-systems", period)
}

// ResourceStatistics implements interfaces.Telemetry
func (c *Client) ResourceStatistics(ctx context.Context, period model.ReportPeriodQuery) (*model.ResourceStatistics, error) {
	return call[model.ResourceStatistics](ctx, c, http.MethodPost, "/team/statistics/resources", period)
}

// GeographyStatistics implements interfaces.Telemetry
func (c *Client) GeographyStatistics(ctx context.Context, period model.ReportPeriodQuery) (*model.GeographyStatistics, error) {
	return call[model.GeographyStatistics](ctx, c, http.MethodPost, "/team/statistics/geography", period)
}

// EventStatistics implements interfaces.Telemetry
func (c *Client) EventStatistics(ctx context.Context, period model.ReportPeriodQuery) (*model.EventStatistics, error) {
	return call[model.EventStatistics](ctx, c, http.MethodPost, "/team/statistics/events", period)
}

// CaseSeverityStatistics implements interfaces.Telemetry
func (c *Client) CaseSeverityStatistics(ctx context.Context, period model.ReportPeriodQuery) ([]model.SeverityCount, error) {
	list, err := call[types.List[model.SeverityCount]](ctx, c, http.MethodPost, "/cases/stats/severity", period)
	if err != nil {
		return nil, err
	}
	return list.Items(), nil
}

// DetectionCategoryClassStatistics implements interfaces.Telemetry
func (c *Client) DetectionCategoryClassStatistics(ctx context.Context, period model.ReportPeriodQuery) ([]model.CategoryClassStat, error) {
	list, err := call[types.List[model.CategoryClassStat]](ctx, c, http.MethodPost, "/detection/stats/category-class", period)
	if err != nil {
		return nil, err
	}
	return list.Items(), nil
}

// MTTR implements interfaces.Telemetry
func (c *Client) MTTR(ctx context.Context, period model.ReportPeriodQuery) (*model.TimeMetric, error) {
	return call[model.TimeMetric](ctx, c, http.MethodPost, "/cases/mttr", period)
}

// MTTD implements interfaces.Telemetry
func (c *Client) MTTD(ctx context.Context, period model.ReportPeriodQuery) (*model.TimeMetric, error) {
	return call[model.TimeMetric](ctx, c, http.MethodPost, "/detection/mttd", period)
}

// MTTV implements interfaces.Telemetry
func (c *Client) MTTV(ctx context.Context, period model.ReportPeriodQuery) (*model.TimeMetric, error) {
	return call[model.TimeMetric](ctx, c, http.MethodPost, "/detection/mttv", period)
}

// MTTC implements interfaces.Telemetry
func (c *Client) MTTC(ctx context.Context, period model.ReportPeriodQuery) (*model.TimeMetric, error) {
	return call[model.TimeMetric](ctx, c, http.MethodPost, "/cases/mttc", period)
}

// SearchCases implements interfaces.Telemetry
func (c *Client) SearchCases(ctx context.Context, query model.CaseQuery) (*model.CaseList, error) {
	return call[model.CaseList](ctx, c, http.MethodPost, "/cases", query)
}

// SearchDetections implements interfaces.Telemetry
func (c *Client) SearchDetections(ctx context.Context, query model.DetectionQuery) (*model.DetectionList, error) {
	return call[model.DetectionList](ctx, c, http.MethodPost, "/detection", query)
}

// SearchIntegrations implements interfaces.Telemetry
func (c *Client) SearchIntegrations(ctx context.Context, query model.IntegrationQuery) (*model.IntegrationList, error) {
	return call[model.IntegrationList](ctx, c, http.MethodPost, "/integration", query)
}

// AssetsByDetection implements interfaces.Telemetry
func (c *Client) AssetsByDetection(ctx context.Context, id types.DetectionID) (*model.Assets, error) {
	return call[model.Assets](ctx, c, http.MethodGet, "/asset/detection/"+url.PathEscape(id.String()), nil)
}
