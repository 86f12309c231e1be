package routes

import (
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/controllers"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func courtRoutes(router fiber.Router) {
	group := router.Group("/courts")
	group.Get("/", controllers.GetCourts)
	group.Get("/:id", controllers.GetCourtByID)
	group.Post("/", middleware.AuthJWT, middleware.RequireSuperAdmin, controllers.CreateCourt)
}
