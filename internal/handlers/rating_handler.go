package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/mfrench730/career-cracker/internal/interview"
	"github.com/mfrench730/career-cracker/internal/middleware"
	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/utils"
)

type RatingHandler struct {
	manager *interview.Manager
	logger  *zap.Logger
}

func NewRatingHandler(manager *interview.Manager, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{manager: manager, logger: logger}
}

// RateQuestionHandler handles POST /api/interviews/question/rate.
// Returns 201 on first write, 200 when an existing rating was overwritten.
func (h *RatingHandler) RateQuestionHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.RateQuestionRequest](r)

	rating, created, err := h.manager.RateQuestion(r.Context(), middleware.UserID(r),
		req.InterviewID, req.QuestionID, models.RatingValue(req.Value))
	if err != nil {
		writeWorkflowError(w, h.logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.JSON(w, status, models.NewRatingResponse(rating))
}

// GetRatingHandler handles GET /api/interviews/question/rating.
// A missing rating is a 200 with a null body, not an error.
func (h *RatingHandler) GetRatingHandler(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseQueryID(w, r, "question_id")
	if !ok {
		return
	}
	interviewID, ok := parseQueryID(w, r, "interview_id")
	if !ok {
		return
	}

	rating, err := h.manager.GetRating(r.Context(), middleware.UserID(r), interviewID, questionID)
	if err != nil {
		writeWorkflowError(w, h.logger, err)
		return
	}
	if rating == nil {
		utils.JSON(w, http.StatusOK, nil)
		return
	}
	utils.JSON(w, http.StatusOK, models.NewRatingResponse(rating))
}

// SubmitFeedbackHandler handles POST /api/interviews/{id}/feedback.
func (h *RatingHandler) SubmitFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	interviewID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	req := middleware.GetValidatedRequest[*models.InterviewFeedbackRequest](r)

	feedback, created, err := h.manager.SubmitFeedback(r.Context(), middleware.UserID(r),
		interviewID, req.Content, req.Rating)
	if err != nil {
		writeWorkflowError(w, h.logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.JSON(w, status, models.FeedbackResponse{
		InterviewID:   feedback.InterviewID,
		Content:       feedback.Content,
		OverallRating: feedback.OverallRating,
		CreatedAt:     feedback.CreatedAt,
	})
}

func parseQueryID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	raw := r.URL.Query().Get(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_" + name,
			Message: name + " must be a positive integer",
		})
		return 0, false
	}
	return uint(parsed), true
}
