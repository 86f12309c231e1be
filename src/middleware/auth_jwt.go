package middleware

import (
	"strings"

	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/services/staffs"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthJWT คือ Authorization Gate ของทุกเส้นทางเจ้าหน้าที่:
// bearer token ไม่ผ่าน → 401, ไม่มี profile หรือถูกปิดบัญชี → 403
// scope ที่ resolve แล้วถูกฝากไว้ใน Locals ให้ handler ใช้กรองข้อมูล
func AuthJWT(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing or invalid Authorization header"})
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	scope, err := staffs.ResolveScope(claims)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}

	c.Locals("scope", *scope)
	return c.Next()
}

// RequireSuperAdmin ใช้ต่อท้าย AuthJWT สำหรับงาน settings/จัดการบัญชี
func RequireSuperAdmin(c *fiber.Ctx) error {
	scope, ok := c.Locals("scope").(models.StaffScope)
	if !ok || scope.Role != models.RoleSuperAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "ต้องเป็น super admin เท่านั้น"})
	}
	return c.Next()
}

// ScopeFromCtx ดึง StaffScope ที่ AuthJWT ฝากไว้
func ScopeFromCtx(c *fiber.Ctx) models.StaffScope {
	scope, _ := c.Locals("scope").(models.StaffScope)
	return scope
}
