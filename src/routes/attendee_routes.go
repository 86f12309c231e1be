package routes

import (
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/controllers"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func attendeeRoutes(router fiber.Router) {
	group := router.Group("/attendees")

	// ลงทะเบียน public แต่กันสแปมต่อ IP
	group.Post("/register", middleware.RegisterRateLimiter(), controllers.RegisterAttendee)

	staff := group.Group("/", middleware.AuthJWT)
	staff.Get("/", controllers.GetAttendees)
	staff.Post("/import", controllers.ImportAttendees)
	staff.Get("/:id", controllers.GetAttendeeByID)
	staff.Put("/:id", controllers.UpdateAttendee)
	staff.Delete("/:id", controllers.DeleteAttendee)
	staff.Get("/:id/ticket-qr", controllers.GetTicketQR)
}
