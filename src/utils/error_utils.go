// error_utils.go
package utils

import (
	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleErrorCode เหมือน HandleError แต่แนบ machine code ให้ client แยก branch ได้
func HandleErrorCode(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Code:    code,
		Message: message,
	})
}
