package controllers

import (
	"strconv"
	"sync"

	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/middleware"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/services/checkin"
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	checkinSvc  *checkin.Service
	checkinOnce sync.Once
)

// checkinService ประกอบ service หลัง database init แล้วเท่านั้น
func checkinService() *checkin.Service {
	checkinOnce.Do(func() {
		checkinSvc = checkin.NewService()
	})
	return checkinSvc
}

// SelfCheckin godoc
// @Summary      เช็คอินด้วย ticket token
// @Description  เช็คอินรอบที่เปิดอยู่ให้ผู้ถือบัตร พร้อมอัปเดตประเภทอาหาร (optional)
// @Tags         checkin
// @Accept       json
// @Produce      json
// @Param        body  body  checkin.SelfCheckinRequest  true  "ticket token และข้อมูลเสริม"
// @Success      200  {object}  checkin.CheckinResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      429  {object}  checkin.CheckinResult
// @Router       /checkin [post]
func SelfCheckin(c *fiber.Ctx) error {
	var req checkin.SelfCheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleErrorCode(c, fiber.StatusBadRequest, checkin.StatusInvalid, "ข้อมูลไม่ถูกต้อง")
	}
	req.ClientIP = c.IP()

	result, err := checkinService().SelfCheckin(c.Context(), req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "ระบบขัดข้อง กรุณาลองใหม่")
	}

	switch result.Status {
	case checkin.StatusRateLimited:
		c.Set("Retry-After", strconv.Itoa(result.RetryAfter))
		return c.Status(fiber.StatusTooManyRequests).JSON(result)
	case checkin.StatusNotFound:
		return c.Status(fiber.StatusNotFound).JSON(result)
	case checkin.StatusInvalid:
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.JSON(result)
}

// GetCheckinStatus godoc
// @Summary      สถานะเช็คอินของผู้ถือ ticket token
// @Tags         checkin
// @Produce      json
// @Param        ticketToken  query  string  true   "ticket token"
// @Param        eventId      query  string  false  "event id (ใช้ค่า default ถ้าไม่ระบุ)"
// @Success      200  {object}  checkin.StatusResult
// @Failure      404  {object}  models.ErrorResponse
// @Router       /checkin/status [get]
func GetCheckinStatus(c *fiber.Ctx) error {
	result, err := checkinService().Status(c.Context(), c.Query("ticketToken"), c.Query("eventId"), c.IP())
	if err != nil {
		return handleCheckinError(c, err)
	}
	return c.JSON(result)
}

// ForceCheckin แบบรวม action (checkin|uncheckin) ตาม payload ของ dashboard
func ForceCheckin(c *fiber.Ctx) error {
	var body struct {
		AttendeeID string `json:"attendeeId"`
		Action     string `json:"action"` // checkin | uncheckin
		Round      string `json:"round,omitempty"`
	}
	if err := c.BodyParser(&body); err != nil || body.AttendeeID == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "ต้องระบุ attendeeId")
	}

	scope := middleware.ScopeFromCtx(c)
	svc := checkinService()

	switch body.Action {
	case "checkin", "":
		result, err := svc.ForceCheckin(c.Context(), scope, body.AttendeeID, body.Round)
		if err != nil {
			return handleCheckinError(c, err)
		}
		return c.JSON(result)
	case "uncheckin":
		result, err := svc.ForceUncheckin(c.Context(), scope, body.AttendeeID, body.Round)
		if err != nil {
			return handleCheckinError(c, err)
		}
		return c.JSON(result)
	}
	return utils.HandleError(c, fiber.StatusBadRequest, "action ต้องเป็น checkin หรือ uncheckin")
}

// ForceUncheckin endpoint เฉพาะการถอนเช็คอิน (ปุ่ม clear ใน dashboard)
func ForceUncheckin(c *fiber.Ctx) error {
	var body struct {
		AttendeeID string `json:"attendeeId"`
		Round      string `json:"round,omitempty"` // 1-3 | all | ว่าง = auto
	}
	if err := c.BodyParser(&body); err != nil || body.AttendeeID == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "ต้องระบุ attendeeId")
	}

	scope := middleware.ScopeFromCtx(c)
	result, err := checkinService().ForceUncheckin(c.Context(), scope, body.AttendeeID, body.Round)
	if err != nil {
		return handleCheckinError(c, err)
	}
	return c.JSON(result)
}

// GetRoundSummary ยอดเช็คอินรายรอบสำหรับ dashboard
func GetRoundSummary(c *fiber.Ctx) error {
	summary, err := checkin.GetRoundSummary(c.Params("eventId"))
	if err != nil {
		return handleCheckinError(c, err)
	}
	return c.JSON(summary)
}

func handleCheckinError(c *fiber.Ctx, err error) error {
	if rl, ok := err.(*checkin.RateLimitedError); ok {
		c.Set("Retry-After", strconv.Itoa(rl.RetryAfter))
		return utils.HandleErrorCode(c, fiber.StatusTooManyRequests, checkin.StatusRateLimited, err.Error())
	}
	switch err {
	case checkin.ErrTokenNotFound, checkin.ErrAttendeeNotFound, checkin.ErrEventNotFound:
		return utils.HandleErrorCode(c, fiber.StatusNotFound, checkin.StatusNotFound, err.Error())
	case checkin.ErrEventRequired, checkin.ErrInvalidRound:
		return utils.HandleErrorCode(c, fiber.StatusBadRequest, checkin.StatusInvalid, err.Error())
	}
	return utils.HandleError(c, fiber.StatusInternalServerError, "ระบบขัดข้อง กรุณาลองใหม่")
}
