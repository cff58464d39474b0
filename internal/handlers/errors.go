package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mfrench730/career-cracker/internal/interview"
	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/utils"
)

// writeWorkflowError maps workflow error kinds to HTTP statuses and a
// structured error payload.
func writeWorkflowError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var svcErr *interview.Error
	if errors.As(err, &svcErr) {
		status := http.StatusInternalServerError
		switch svcErr.Kind {
		case interview.KindValidation, interview.KindInvalidState:
			status = http.StatusBadRequest
		case interview.KindNotFound:
			status = http.StatusNotFound
		case interview.KindInsufficientData:
			status = http.StatusServiceUnavailable
		case interview.KindUpstream:
			status = http.StatusInternalServerError
		}
		if status >= http.StatusInternalServerError {
			logger.Error("Workflow error", zap.String("kind", string(svcErr.Kind)), zap.Error(err))
		}
		utils.JSON(w, status, models.ErrorResponse{
			Code:    string(svcErr.Kind),
			Message: svcErr.Message,
		})
		return
	}

	logger.Error("Unexpected error", zap.Error(err))
	utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Code:    "internal_error",
		Message: "Internal server error",
	})
}
