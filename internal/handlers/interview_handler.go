package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mfrench730/career-cracker/internal/interview"
	"github.com/mfrench730/career-cracker/internal/middleware"
	"github.com/mfrench730/career-cracker/internal/models"
	"github.com/mfrench730/career-cracker/internal/utils"
)

type InterviewHandler struct {
	manager *interview.Manager
	answers *interview.AnswerProcessor
	logger  *zap.Logger
}

func NewInterviewHandler(manager *interview.Manager, answers *interview.AnswerProcessor, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		manager: manager,
		answers: answers,
		logger:  logger,
	}
}

// StartHandler handles POST /api/interviews/start. The body is optional;
// with no job_title the user's stored target job title is used.
func (h *InterviewHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	var req models.StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_json",
			Message: "Invalid JSON in request body",
		})
		return
	}

	iv, err := h.manager.Start(r.Context(), middleware.UserID(r), req.JobTitle)
	if err != nil {
		writeWorkflowError(w, h.logger, err)
		return
	}

	resp := models.StartInterviewResponse{
		InterviewID:     iv.ID,
		InterviewNumber: iv.InterviewNumber,
		JobTitle:        iv.JobTitle,
		Questions:       make([]models.QuestionResponse, 0, len(iv.Questions)),
	}
	for i := range iv.Questions {
		resp.Questions = append(resp.Questions, models.NewQuestionResponse(&iv.Questions[i]))
	}
	utils.JSON(w, http.StatusCreated, resp)
}

// NextQuestionHandler handles GET /api/interviews/questions/next.
// An explicit interview can be targeted with ?interview_id=; otherwise the
// most recent IN_PROGRESS interview is used.
func (h *InterviewHandler) NextQuestionHandler(w http.ResponseWriter, r *http.Request) {
	var interviewID uint
	if raw := r.URL.Query().Get("interview_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "invalid_interview_id",
				Message: "interview_id must be a positive integer",
			})
			return
		}
		interviewID = uint(parsed)
	}

	question, done, err := h.manager.NextQuestion(r.Context(), middleware.UserID(r), interviewID)
	if err != nil {
		writeWorkflowError(w, h.logger, err)
		return
	}

	if done {
		utils.JSON(w, http.StatusOK, models.NextQuestionResponse{
			Done:    true,
			Message: "no more questions",
		})
		return
	}

	resp := models.NewQuestionResponse(question)
	utils.JSON(w, http.StatusOK, models.NextQuestionResponse{
		Done:     false,
		Question: &resp,
	})
}

// SubmitAnswerHandler handles POST /api/interviews/{id}/submit.
func (h *InterviewHandler) SubmitAnswerHandler(w http.ResponseWriter, r *http.Request) {
	interviewID, ok := parseIDParam(w, r)
	if !ok {
		return
	}
	req := middleware.GetValidatedRequest[*models.SubmitAnswerRequest](r)

	answer, questionNumber, err := h.answers.Submit(r.Context(), middleware.UserID(r), interviewID, req.QuestionID, req.Response)
	if err != nil {
		writeWorkflowError(w, h.logger, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.SubmitAnswerResponse{
		AnswerID:       answer.ID,
		Feedback:       answer.AIFeedback,
		QuestionNumber: questionNumber,
	})
}

// CompleteHandler handles POST /api/interviews/{id}/complete.
func (h *InterviewHandler) CompleteHandler(w http.ResponseWriter, r *http.Request) {
	interviewID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	iv, err := h.manager.Complete(r.Context(), middleware.UserID(r), interviewID)
	if err != nil {
		writeWorkflowError(w, h.logger, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"interview_id": iv.ID,
		"status":       iv.Status,
		"end_time":     iv.EndTime,
	})
}

// HistoryHandler handles GET /api/interviews/history?page&limit.
func (h *InterviewHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	history, err := h.manager.History(r.Context(), middleware.UserID(r), page, limit)
	if err != nil {
		writeWorkflowError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, history)
}

// parseIDParam extracts the {id} route parameter.
func parseIDParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_interview_id",
			Message: "interview id must be a positive integer",
		})
		return 0, false
	}
	return uint(parsed), true
}
