package routers

import (
	"advice-service/internal/app/delivery/http/controllers"
	"advice-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)
	router.Post("/forgot-password", authController.ForgotPassword)
	router.Post("/reset-password", authController.ResetPassword)
	router.Get("/google", authController.GoogleLogin)
	router.Get("/google/callback", authController.GoogleCallback)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authentication)
		r.Post("/logout", authController.Logout)
	})
}
