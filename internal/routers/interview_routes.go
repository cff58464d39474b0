package routers

import (
	"github.com/mfrench730/career-cracker/internal/handlers"
	"github.com/mfrench730/career-cracker/internal/middleware"
	"github.com/mfrench730/career-cracker/internal/models"

	"github.com/go-chi/chi/v5"
)

func InterviewRoutes(router *chi.Mux, jwtSecret string, interviewHandler *handlers.InterviewHandler, ratingHandler *handlers.RatingHandler) {
	router.Route("/api/interviews", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))

		r.Post("/start", interviewHandler.StartHandler)
		r.Get("/questions/next", interviewHandler.NextQuestionHandler)
		r.Get("/history", interviewHandler.HistoryHandler)

		r.With(middleware.ValidateRequest[*models.SubmitAnswerRequest]()).Post("/{id}/submit", interviewHandler.SubmitAnswerHandler)
		r.Post("/{id}/complete", interviewHandler.CompleteHandler)

		r.With(middleware.ValidateRequest[*models.RateQuestionRequest]()).Post("/question/rate", ratingHandler.RateQuestionHandler)
		r.Get("/question/rating", ratingHandler.GetRatingHandler)
		r.With(middleware.ValidateRequest[*models.InterviewFeedbackRequest]()).Post("/{id}/feedback", ratingHandler.SubmitFeedbackHandler)
	})
}
