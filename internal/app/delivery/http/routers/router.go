package routers

import (
	"advice-service/internal/app/config"
	"advice-service/internal/app/delivery/http/controllers"
	"advice-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	availabilityController *controllers.AvailabilityController,
	skillController *controllers.SkillController,
	reviewController *controllers.ReviewController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendDomain},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/profiles", func(r chi.Router) {
			attachProfileRoutes(r, middlewares, profileController)
		})

		r.Route("/availability", func(r chi.Router) {
			attachAvailabilityRoutes(r, middlewares, availabilityController)
		})

		r.Route("/skills", func(r chi.Router) {
			attachSkillRoutes(r, middlewares, skillController)
		})

		r.Route("/users", func(r chi.Router) {
			attachReviewRoutes(r, middlewares, reviewController)
		})
	})
}
