package routes

import (
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/controllers"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func eventRoutes(router fiber.Router) {
	group := router.Group("/events")
	group.Get("/", controllers.GetEvents)
	group.Get("/:id", controllers.GetEventByID)

	// settings แตะได้เฉพาะ super admin
	admin := group.Group("/", middleware.AuthJWT, middleware.RequireSuperAdmin)
	admin.Post("/", controllers.CreateEvent)
	admin.Put("/:id/settings", controllers.UpdateEventSettings)
	admin.Post("/:id/schedule-close", controllers.ScheduleEventClose)
}
