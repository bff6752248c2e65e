package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/wirereport/pkg/domain/interfaces"
	"github.com/secmon-lab/wirereport/pkg/domain/model"
	"github.com/secmon-lab/wirereport/pkg/domain/types"
	"github.com/secmon-lab/wirereport/pkg/utils/async"
)

// teamSearchSize is large enough to return every team of a service provider in one page
const teamSearchSize = 1000

// Teams lists the teams a credential can generate reports for
type Teams struct {
	newTelemetry interfaces.TelemetryFactory
}

var _ interfaces.TeamLister = (*Teams)(nil)

// NewTeams creates a new Teams use case
func NewTeams(factory interfaces.TelemetryFactory) *Teams {
	return &Teams{newTelemetry: factory}
}

// ListTeams returns whether the credential belongs to a service provider and the teams it manages
func (t *Teams) ListTeams(ctx context.Context, apiKey types.APIKey) (*model.TeamsResult, error) {
	if apiKey == "" {
		return nil, model.ErrAPIKeyRequired
	}

	client := t.newTelemetry(apiKey)

	var team *model.Team
	var search *model.TeamSearch

	g := async.NewGroup(ctx, 0)
	async.Fetch(g, "current_team", &team, client.CurrentTeam)
	async.Fetch(g, "search_teams", &search, func(ctx context.Context) (*model.TeamSearch, error) {
		return client.SearchTeams(ctx, model.TeamQuery{
			Size:     teamSearchSize,
			OrderBy:  "name",
			OrderDir: "asc",
		})
	})
	if err := g.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to list teams")
	}

	result := &model.TeamsResult{Teams: []model.TeamSummary{}}
	if team != nil {
		result.IsServiceProvider = team.ServiceProvider.Bool()
	}
	if search != nil {
		result.Teams = search.Data.Items()
	}

	ctxlog.From(ctx).Debug("Listed teams",
		"service_provider", result.IsServiceProvider,
		"teams", len(result.Teams),
	)
	return result, nil
}
