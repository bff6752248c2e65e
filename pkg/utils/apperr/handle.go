package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/wirereport/pkg/domain/model"
)

// Handle logs err with its full detail. Validation failures are caller
// mistakes and logged as warnings.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	logger := ctxlog.From(ctx)
	if model.IsValidation(err) {
		logger.Warn("invalid request", "error", err)
		return
	}
	logger.Error("application error",
		"error", err,
		"unauthorized", model.IsUnauthorized(err),
	)
}
