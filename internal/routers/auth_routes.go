package routers

import (
	"github.com/mfrench730/career-cracker/internal/handlers"
	"github.com/mfrench730/career-cracker/internal/middleware"
	"github.com/mfrench730/career-cracker/internal/models"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(router *chi.Mux, authHandler *handlers.AuthHandler) {
	router.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.SignupRequest]()).Post("/signup", authHandler.SignupHandler)
		r.With(middleware.ValidateRequest[*models.SigninRequest]()).Post("/signin", authHandler.SigninHandler)
	})
}
