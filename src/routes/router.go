package routes

import (
	"github.com/gofiber/fiber/v2"
)

// InitRoutes รวม routes จากแต่ละ module
func InitRoutes(app *fiber.App) {
	authRoutes(app)
	checkinRoutes(app)
	attendeeRoutes(app)
	eventRoutes(app)
	staffRoutes(app)
	courtRoutes(app)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
