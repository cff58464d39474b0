package routers

import (
	"github.com/mfrench730/career-cracker/internal/handlers"
	"github.com/mfrench730/career-cracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func JobsRoutes(router *chi.Mux, jwtSecret string, jobsHandler *handlers.JobsHandler) {
	router.Route("/api/jobs", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Get("/info", jobsHandler.JobInfoHandler)
	})
}
