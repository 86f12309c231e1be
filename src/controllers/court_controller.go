package controllers

import (
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/middleware"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/services/courts"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// GetCourts รายชื่อศาลทั้งหมด (public — ฟอร์มลงทะเบียนใช้เติม dropdown)
func GetCourts(c *fiber.Ctx) error {
	list, err := courts.GetAll()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลได้")
	}
	return c.JSON(list)
}

// GetCourtByID อ่านข้อมูลศาลหนึ่งแห่ง
func GetCourtByID(c *fiber.Ctx) error {
	court, err := courts.GetByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(court)
}

// CreateCourt เพิ่มศาลใหม่ (super admin)
func CreateCourt(c *fiber.Ctx) error {
	var court models.Court
	if err := c.BodyParser(&court); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "ข้อมูลไม่ถูกต้อง")
	}

	scope := middleware.ScopeFromCtx(c)
	if err := courts.Create(scope, &court); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return utils.HandleError(c, fiber.StatusBadRequest, "ข้อมูลไม่ครบถ้วน: "+err.Error())
		}
		if err == courts.ErrForbidden {
			return utils.HandleError(c, fiber.StatusForbidden, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "ระบบขัดข้อง กรุณาลองใหม่")
	}
	return c.Status(fiber.StatusCreated).JSON(court)
}
