package routes

import (
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/controllers"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// checkinRoutes เส้นทางเช็คอิน: ฝั่งผู้เข้าร่วมเปิด public (ใช้ ticket token)
// ฝั่ง override ของเจ้าหน้าที่ต้องผ่าน Authorization Gate
func checkinRoutes(router fiber.Router) {
	group := router.Group("/checkin")

	// self-service — rate limit ต่อ IP/token อยู่ในชั้น protocol
	group.Post("/", controllers.SelfCheckin)
	group.Get("/status", controllers.GetCheckinStatus)

	admin := group.Group("/admin", middleware.AuthJWT)
	admin.Post("/force", controllers.ForceCheckin)
	admin.Post("/uncheckin", controllers.ForceUncheckin)
	admin.Get("/summary/:eventId", controllers.GetRoundSummary)
}
