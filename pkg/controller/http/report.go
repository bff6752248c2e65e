package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/wirereport/pkg/domain/interfaces"
	"github.com/secmon-lab/wirereport/pkg/domain/model"
	"github.com/secmon-lab/wirereport/pkg/utils/apperr"
)

// Error messages returned to report clients
const (
	msgAPIKeyRequired        = "API key is required"
	msgInvalidTimeframe      = "Invalid timeframe"
	msgReportUnauthorized    = "Invalid API key or session expired."
	msgReportUpstreamFailure = "Error retrieving security data from Wirespeed."
	msgReportBadRequest      = "Failed to generate report"
)

// ReportHandler serves report generation
type ReportHandler struct {
	reportUC interfaces.ReportGenerator
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportUC interfaces.ReportGenerator) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// HandleGenerate handles POST /api/report/generate
func (h *ReportHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to decode report request"))
		writeError(ctx, w, http.StatusInternalServerError, msgReportBadRequest)
		return
	}

	report, err := h.reportUC.Generate(ctx, &req)
	if err != nil {
		apperr.Handle(ctx, err)
		switch {
		case model.IsValidation(err):
			writeError(ctx, w, http.StatusBadRequest, validationMessage(err))
		case model.IsUnauthorized(err):
			writeError(ctx, w, http.StatusInternalServerError, msgReportUnauthorized)
		default:
			writeError(ctx, w, http.StatusInternalServerError, msgReportUpstreamFailure)
		}
		return
	}

	writeJSON(ctx, w, http.StatusOK, report)
}

func validationMessage(err error) string {
	if model.IsTimeframeError(err) {
		return msgInvalidTimeframe
	}
	return msgAPIKeyRequired
}
