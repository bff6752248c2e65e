package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/wirereport/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/wirereport/pkg/domain/model"
	"github.com/secmon-lab/wirereport/pkg/domain/types"
	"github.com/secmon-lab/wirereport/pkg/usecase"
)

func TestListTeams(t *testing.T) {
	t.Run("service provider with teams", func(t *testing.T) {
		client := newEmptyTelemetry()
		client.CurrentTeamFunc = func(ctx context.Context) (*model.Team, error) {
			return &model.Team{Name: "MSSP", ServiceProvider: true}, nil
		}
		client.SearchTeamsFunc = func(ctx context.Context, query model.TeamQuery) (*model.TeamSearch, error) {
			return &model.TeamSearch{Data: types.List[model.TeamSummary]{
				{"id": "t1", "name": "Alpha"},
				{"id": "t2", "name": "Bravo", "extra": true},
			}}, nil
		}
		factory, keys := factoryOf(map[types.APIKey]*mocks.TelemetryMock{"key": client})
		uc := usecase.NewTeams(factory)

		result, err := uc.ListTeams(context.Background(), "key")
		gt.NoError(t, err).Required()
		gt.True(t, result.IsServiceProvider)
		gt.Equal(t, 2, len(result.Teams))
		gt.Equal(t, "Bravo", result.Teams[1]["name"])
		gt.Equal(t, true, result.Teams[1]["extra"])

		gt.Equal(t, []types.APIKey{"key"}, keys())
		gt.Equal(t, model.TeamQuery{Size: 1000, OrderBy: "name", OrderDir: "asc"}, client.SearchTeamsCalls()[0].Query)
	})

	t.Run("regular team", func(t *testing.T) {
		factory, _ := factoryOf(nil)
		result, err := usecase.NewTeams(factory).ListTeams(context.Background(), "key")
		gt.NoError(t, err).Required()
		gt.False(t, result.IsServiceProvider)
		gt.NotNil(t, result.Teams)
		gt.Equal(t, 0, len(result.Teams))
	})

	t.Run("missing API key", func(t *testing.T) {
		factory, keys := factoryOf(nil)
		_, err := usecase.NewTeams(factory).ListTeams(context.Background(), "")
		gt.Error(t, err)
		gt.True(t, model.IsValidation(err))
		gt.Equal(t, 0, len(keys()))
	})

	t.Run("unauthorized", func(t *testing.T) {
		client := newEmptyTelemetry()
		client.SearchTeamsFunc = func(ctx context.Context, query model.TeamQuery) (*model.TeamSearch, error) {
			return nil, &model.TransportError{Status: 401, Message: "Unauthorized", Path: "/team"}
		}
		factory, _ := factoryOf(map[types.APIKey]*mocks.TelemetryMock{"key": client})

		_, err := usecase.NewTeams(factory).ListTeams(context.Background(), "key")
		gt.Error(t, err)
		gt.True(t, model.IsUnauthorized(err))
	})
}
