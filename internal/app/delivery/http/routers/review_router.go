package routers

import (
	"advice-service/internal/app/delivery/http/controllers"
	"advice-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachReviewRoutes(router chi.Router, middlewares *middlewares.Middlewares, reviewController *controllers.ReviewController) {
	router.Get("/{user_id}/reviews", reviewController.FindByReviewedUserID)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authentication)
		r.Post("/{user_id}/reviews", reviewController.CreateReview)
	})
}
