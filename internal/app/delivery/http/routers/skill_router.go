package routers

import (
	"advice-service/internal/app/delivery/http/controllers"
	"advice-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSkillRoutes(router chi.Router, middlewares *middlewares.Middlewares, skillController *controllers.SkillController) {
	router.Get("/", skillController.FindAll)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authentication)
		r.Use(middlewares.RequireCollegeStudent)
		r.Put("/me", skillController.ManageProfileSkills)
	})
}
