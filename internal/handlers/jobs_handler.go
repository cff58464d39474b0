package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/occupation"
	"github.com/mfrench730/career-cracker/internal/utils"
)

// OccupationLookup is the subset of the occupation client the handler needs.
type OccupationLookup interface {
	SearchCode(ctx context.Context, keyword string) (string, error)
	CareerInfo(ctx context.Context, code string) (*occupation.CareerInfo, error)
}

// JobsHandler exposes occupation data (description and tasks) for a job
// title, backed by the occupation-data collaborator.
type JobsHandler struct {
	occupations OccupationLookup
	logger      *zap.Logger
}

func NewJobsHandler(occupations OccupationLookup, logger *zap.Logger) *JobsHandler {
	return &JobsHandler{occupations: occupations, logger: logger}
}

type jobInfoResponse struct {
	Description string   `json:"description"`
	Tasks       []string `json:"tasks"`
}

// JobInfoHandler handles GET /api/jobs/info?job_title=.
func (h *JobsHandler) JobInfoHandler(w http.ResponseWriter, r *http.Request) {
	jobTitle := r.URL.Query().Get("job_title")
	if jobTitle == "" {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "missing_job_title",
			Message: "job_title query parameter is required",
		})
		return
	}

	code, err := h.occupations.SearchCode(r.Context(), jobTitle)
	if err != nil {
		if errors.Is(err, occupation.ErrNoMatch) {
			utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
				Code:    "no_occupation_match",
				Message: "No relevant occupations were found",
			})
			return
		}
		h.logger.Error("Occupation search failed", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "upstream_error",
			Message: "Occupation data service is unavailable",
		})
		return
	}

	info, err := h.occupations.CareerInfo(r.Context(), code)
	if err != nil {
		h.logger.Error("Career lookup failed", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "upstream_error",
			Message: "Occupation data service is unavailable",
		})
		return
	}

	utils.JSON(w, http.StatusOK, jobInfoResponse{
		Description: info.Description,
		Tasks:       info.Tasks,
	})
}
