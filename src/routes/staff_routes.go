package routes

import (
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/controllers"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func staffRoutes(router fiber.Router) {
	group := router.Group("/staffs", middleware.AuthJWT)
	group.Get("/", controllers.GetStaffs)

	admin := group.Group("/", middleware.RequireSuperAdmin)
	admin.Patch("/:id/deactivate", controllers.DeactivateStaff)
	admin.Delete("/:id", controllers.DeleteStaff)
}
