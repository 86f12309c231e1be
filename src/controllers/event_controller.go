package controllers

import (
	"time"

	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/middleware"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/services/events"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetEvents รายการงานสัมมนาทั้งหมด
func GetEvents(c *fiber.Ctx) error {
	list, err := events.GetAll()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลได้")
	}
	return c.JSON(list)
}

// GetEventByID อ่านงานสัมมนาหนึ่งงาน
func GetEventByID(c *fiber.Ctx) error {
	event, err := events.GetByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(event)
}

// CreateEvent สร้างงานใหม่ (super admin)
func CreateEvent(c *fiber.Ctx) error {
	var event models.Event
	if err := c.BodyParser(&event); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "ข้อมูลไม่ถูกต้อง")
	}

	scope := middleware.ScopeFromCtx(c)
	if err := events.Create(scope, &event); err != nil {
		return handleEventError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// UpdateEventSettings godoc
// @Summary      แก้ไข settings ของงาน (เปิด/ปิดลงทะเบียน, เปิดรอบเช็คอิน)
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "event id"
// @Param        body  body  models.EventSettingsUpdate  true  "ค่าที่ต้องการแก้"
// @Success      200  {object}  models.Event
// @Security     BearerAuth
// @Router       /events/{id}/settings [put]
func UpdateEventSettings(c *fiber.Ctx) error {
	var req models.EventSettingsUpdate
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "ข้อมูลไม่ถูกต้อง")
	}

	scope := middleware.ScopeFromCtx(c)
	event, err := events.UpdateSettings(scope, c.Params("id"), &req)
	if err != nil {
		return handleEventError(c, err)
	}
	return c.JSON(event)
}

// ScheduleEventClose ตั้งเวลาปิดรอบเช็คอิน/ปิดลงทะเบียนอัตโนมัติ
func ScheduleEventClose(c *fiber.Ctx) error {
	var body struct {
		RoundCloseAt        *time.Time `json:"roundCloseAt,omitempty"`
		RegistrationCloseAt *time.Time `json:"registrationCloseAt,omitempty"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "ข้อมูลไม่ถูกต้อง")
	}
	if body.RoundCloseAt == nil && body.RegistrationCloseAt == nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "ต้องระบุเวลาอย่างน้อยหนึ่งรายการ")
	}

	scope := middleware.ScopeFromCtx(c)
	id := c.Params("id")

	if body.RoundCloseAt != nil {
		if err := events.ScheduleRoundClose(scope, id, *body.RoundCloseAt); err != nil {
			return handleEventError(c, err)
		}
	}
	if body.RegistrationCloseAt != nil {
		if err := events.ScheduleRegistrationClose(scope, id, *body.RegistrationCloseAt); err != nil {
			return handleEventError(c, err)
		}
	}
	return c.JSON(fiber.Map{"message": "ตั้งเวลาสำเร็จ"})
}

func handleEventError(c *fiber.Ctx, err error) error {
	switch err {
	case events.ErrNotFound:
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case events.ErrForbidden:
		return utils.HandleError(c, fiber.StatusForbidden, err.Error())
	}
	return utils.HandleError(c, fiber.StatusInternalServerError, "ระบบขัดข้อง กรุณาลองใหม่")
}
