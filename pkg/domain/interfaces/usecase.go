package interfaces

import (
	"context"

	"github.com/secmon-lab/wirereport/pkg/domain/model"
	"github.com/secmon-lab/wirereport/pkg/domain/types"
)

// ReportGenerator assembles a report for one request
type ReportGenerator interface {
	Generate(ctx context.Context, req *model.ReportRequest) (*model.Report, error)
}

// TeamLister lists the teams reachable with a credential
type TeamLister interface {
	ListTeams(ctx context.Context, apiKey types.APIKey) (*model.TeamsResult, error)
}
