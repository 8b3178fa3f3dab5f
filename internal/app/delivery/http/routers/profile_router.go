package routers

import (
	"advice-service/internal/app/delivery/http/controllers"
	"advice-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *controllers.ProfileController) {
	router.Get("/{user_profile_id}", profileController.GetPublicProfile)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authentication)
		r.Get("/me", profileController.GetOwnProfile)
		r.Put("/me", profileController.UpdateProfile)
		r.Post("/me/picture", profileController.UploadProfilePicture)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireCollegeStudent)
			r.Post("/me/resume", profileController.UploadResume)
		})
	})
}
