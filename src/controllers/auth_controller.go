package controllers

import (
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/middleware"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/services/staffs"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Login godoc
// @Summary      เข้าสู่ระบบเจ้าหน้าที่
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" || body.Password == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "ต้องระบุอีเมลและรหัสผ่าน")
	}

	profile, token, err := staffs.Login(body.Email, body.Password)
	if err != nil {
		status := fiber.StatusUnauthorized
		if err == staffs.ErrInactive {
			status = fiber.StatusForbidden
		}
		return utils.HandleError(c, status, err.Error())
	}

	return c.JSON(fiber.Map{
		"token": token,
		"staff": profile,
	})
}

// RegisterStaff เปิดบัญชีเจ้าหน้าที่ประจำศาล (มี quota ต่อศาล)
func RegisterStaff(c *fiber.Ctx) error {
	var req staffs.StaffRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "ข้อมูลไม่ถูกต้อง")
	}

	profile, err := staffs.Register(&req)
	if err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return utils.HandleError(c, fiber.StatusBadRequest, "ข้อมูลไม่ครบถ้วน: "+err.Error())
		}
		switch err {
		case staffs.ErrCourtNotFound:
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		case staffs.ErrQuotaExceeded:
			return utils.HandleErrorCode(c, fiber.StatusConflict, "quota_exceeded", err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "ระบบขัดข้อง กรุณาลองใหม่")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "เปิดบัญชีสำเร็จ",
		"staff":   profile, // email ที่สังเคราะห์ให้อยู่ในนี้ — แจ้งให้เจ้าหน้าที่จดไว้
	})
}

// Me ข้อมูลเจ้าหน้าที่ของ token ปัจจุบัน
func Me(c *fiber.Ctx) error {
	scope := middleware.ScopeFromCtx(c)
	return c.JSON(fiber.Map{
		"staffId":  scope.StaffID,
		"role":     scope.Role,
		"courtId":  scope.CourtID,
		"province": scope.Province,
	})
}
