package routes

import (
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/controllers"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(router fiber.Router) {
	group := router.Group("/auth")
	group.Post("/login", middleware.LoginRateLimiter(), controllers.Login)
	group.Post("/register", middleware.LoginRateLimiter(), controllers.RegisterStaff)
	group.Get("/me", middleware.AuthJWT, controllers.Me)
}
