package controllers

import (
	"fmt"
	"os"

	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/middleware"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/qrcode"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/services/attendees"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RegisterAttendee godoc
// @Summary      ลงทะเบียนเข้าร่วมสัมมนา
// @Description  ลงทะเบียนผ่านฟอร์ม self-service และรับ ticket token
// @Tags         attendees
// @Accept       json
// @Produce      json
// @Param        body  body  models.AttendeeRegisterRequest  true  "ข้อมูลผู้ลงทะเบียน"
// @Success      201  {object}  models.Attendee
// @Failure      400  {object}  models.ErrorResponse
// @Router       /attendees/register [post]
func RegisterAttendee(c *fiber.Ctx) error {
	var req models.AttendeeRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "ข้อมูลไม่ถูกต้อง")
	}

	attendee, err := attendees.Register(&req)
	if err != nil {
		return handleAttendeeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "ลงทะเบียนสำเร็จ",
		"attendee": attendee,
	})
}

// ImportAttendees bulk import รายชื่อจากเจ้าหน้าที่ (array ของ request)
func ImportAttendees(c *fiber.Ctx) error {
	var reqs []models.AttendeeRegisterRequest
	if err := c.BodyParser(&reqs); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "ข้อมูลไม่ถูกต้อง")
	}

	scope := middleware.ScopeFromCtx(c)
	inserted, err := attendees.BulkImport(scope, reqs)
	if err != nil {
		return handleAttendeeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "นำเข้าข้อมูลสำเร็จ", "inserted": inserted})
}

// GetAttendees godoc
// @Summary      รายการผู้เข้าร่วม (ตามขอบเขตศาลของเจ้าหน้าที่)
// @Tags         attendees
// @Produce      json
// @Param        page    query  int     false  "หน้า"
// @Param        limit   query  int     false  "จำนวนต่อหน้า"
// @Param        search  query  string  false  "ค้นหาชื่อ/หน่วยงาน/จังหวัด"
// @Success      200  {object}  models.PaginatedResponse
// @Security     BearerAuth
// @Router       /attendees [get]
func GetAttendees(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "พารามิเตอร์ไม่ถูกต้อง")
	}

	scope := middleware.ScopeFromCtx(c)
	result, err := attendees.GetAll(scope, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "ไม่สามารถดึงข้อมูลได้")
	}
	return c.JSON(result)
}

// GetAttendeeByID อ่านผู้เข้าร่วมรายคน
func GetAttendeeByID(c *fiber.Ctx) error {
	scope := middleware.ScopeFromCtx(c)
	attendee, err := attendees.GetByID(scope, c.Params("id"))
	if err != nil {
		return handleAttendeeError(c, err)
	}
	return c.JSON(attendee)
}

// UpdateAttendee แก้ไขข้อมูลผู้เข้าร่วม
func UpdateAttendee(c *fiber.Ctx) error {
	var req models.AttendeeRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "ข้อมูลไม่ถูกต้อง")
	}

	scope := middleware.ScopeFromCtx(c)
	if err := attendees.Update(scope, c.Params("id"), &req); err != nil {
		return handleAttendeeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "แก้ไขข้อมูลสำเร็จ"})
}

// DeleteAttendee ลบผู้เข้าร่วมพร้อมประวัติเช็คอิน
func DeleteAttendee(c *fiber.Ctx) error {
	scope := middleware.ScopeFromCtx(c)
	if err := attendees.Delete(scope, c.Params("id")); err != nil {
		return handleAttendeeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "ลบข้อมูลสำเร็จ"})
}

// GetTicketQR สร้าง QR ของลิงก์เช็คอินสำหรับพิมพ์บัตร
func GetTicketQR(c *fiber.Ctx) error {
	scope := middleware.ScopeFromCtx(c)
	attendee, err := attendees.GetByID(scope, c.Params("id"))
	if err != nil {
		return handleAttendeeError(c, err)
	}

	baseURL := os.Getenv("CHECKIN_BASE_URL")
	if baseURL == "" {
		baseURL = "https://checkin.coj.go.th"
	}
	png, err := qrcode.GenerateTicketQR(fmt.Sprintf("%s/checkin?token=%s", baseURL, attendee.TicketToken))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "สร้าง QR ไม่สำเร็จ")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func handleAttendeeError(c *fiber.Ctx, err error) error {
	if _, ok := err.(validator.ValidationErrors); ok {
		return utils.HandleError(c, fiber.StatusBadRequest, "ข้อมูลไม่ครบถ้วน: "+err.Error())
	}
	switch err {
	case attendees.ErrNotFound:
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case attendees.ErrRegistrationClosed:
		return utils.HandleErrorCode(c, fiber.StatusForbidden, "registration_closed", err.Error())
	case attendees.ErrCourtNotFound, attendees.ErrEventNotFound:
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return utils.HandleError(c, fiber.StatusInternalServerError, "ระบบขัดข้อง กรุณาลองใหม่")
}
