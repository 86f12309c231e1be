package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// LoginRateLimiter กัน brute-force รหัสผ่านเจ้าหน้าที่ (ต่อ IP)
// ส่วน rate limit ของ ticket token อยู่ในชั้น protocol (services/checkin)
// เพราะต้องนับต่อ token ไม่ใช่แค่ต่อ IP
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "พยายามเข้าสู่ระบบถี่เกินไป กรุณารอสักครู่",
			})
		},
	})
}

// RegisterRateLimiter กันสแปมฟอร์มลงทะเบียน (ต่อ IP)
func RegisterRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        20,
		Expiration: 5 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "ส่งคำขอลงทะเบียนถี่เกินไป กรุณารอสักครู่",
			})
		},
	})
}
