package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/wirereport/pkg/domain/interfaces"
	"github.com/secmon-lab/wirereport/pkg/domain/model"
	"github.com/secmon-lab/wirereport/pkg/domain/types"
	"github.com/secmon-lab/wirereport/pkg/utils/apperr"
)

// Error messages returned to team picker clients
const (
	msgTeamsUnauthorized    = "Invalid API key. Please check your credentials."
	msgTeamsUpstreamFailure = "Could not connect to the Wirespeed API. Please try again later."
	msgTeamsBadRequest      = "Failed to fetch teams"
)

type teamsRequest struct {
	APIKey types.APIKey `json:"apiKey"`
}

// TeamsHandler serves the team picker
type TeamsHandler struct {
	teamsUC interfaces.TeamLister
}

// NewTeamsHandler creates a new TeamsHandler
func NewTeamsHandler(teamsUC interfaces.TeamLister) *TeamsHandler {
	return &TeamsHandler{teamsUC: teamsUC}
}

// HandleList handles POST /api/teams
func (h *TeamsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req teamsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to decode teams request"))
		writeError(ctx, w, http.StatusInternalServerError, msgTeamsBadRequest)
		return
	}

	result, err := h.teamsUC.ListTeams(ctx, req.APIKey)
	if err != nil {
		apperr.Handle(ctx, err)
		switch {
		case model.IsValidation(err):
			writeError(ctx, w, http.StatusBadRequest, msgAPIKeyRequired)
		case model.IsUnauthorized(err):
			writeError(ctx, w, http.StatusInternalServerError, msgTeamsUnauthorized)
		default:
			writeError(ctx, w, http.StatusInternalServerError, msgTeamsUpstreamFailure)
		}
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}
