package controllers

import (
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/middleware"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/services/staffs"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetStaffs รายการบัญชีเจ้าหน้าที่ตามขอบเขต
func GetStaffs(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "พารามิเตอร์ไม่ถูกต้อง")
	}

	scope := middleware.ScopeFromCtx(c)
	result, err := staffs.GetAll(scope, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลได้")
	}
	return c.JSON(result)
}

// DeactivateStaff ปิดบัญชีเจ้าหน้าที่ (super admin)
func DeactivateStaff(c *fiber.Ctx) error {
	scope := middleware.ScopeFromCtx(c)
	if err := staffs.Deactivate(scope, c.Params("id")); err != nil {
		return handleStaffError(c, err)
	}
	return c.JSON(fiber.Map{"message": "ปิดบัญชีสำเร็จ"})
}

// DeleteStaff ลบบัญชีเจ้าหน้าที่ (super admin)
func DeleteStaff(c *fiber.Ctx) error {
	scope := middleware.ScopeFromCtx(c)
	if err := staffs.Delete(scope, c.Params("id")); err != nil {
		return handleStaffError(c, err)
	}
	return c.JSON(fiber.Map{"message": "ลบบัญชีสำเร็จ"})
}

func handleStaffError(c *fiber.Ctx, err error) error {
	switch err {
	case staffs.ErrNoProfile:
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case staffs.ErrForbidden:
		return utils.HandleError(c, fiber.StatusForbidden, err.Error())
	}
	return utils.HandleError(c, fiber.StatusInternalServerError, "ระบบขัดข้อง กรุณาลองใหม่")
}
