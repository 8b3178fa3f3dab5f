package routers

import (
	"advice-service/internal/app/delivery/http/controllers"
	"advice-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, availabilityController *controllers.AvailabilityController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authentication)
		r.Get("/{user_profile_id}", availabilityController.GetAvailability)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireCollegeStudent)
			r.Post("/", availabilityController.SetAvailability)
		})
	})
}
