// error_utils.go
package utils

import (
	"errors"

	"Backend-CampusPortal/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError ส่ง ErrorResponse มาตรฐานด้วย status ที่กำหนดเอง
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleAppError map ชนิดของ AppError เป็น HTTP status
// validation → 400, not_found → 404, state_conflict → 409, อื่น ๆ → 500
func HandleAppError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		status := fiber.StatusInternalServerError
		switch appErr.Kind {
		case models.ErrKindValidation:
			status = fiber.StatusBadRequest
		case models.ErrKindNotFound:
			status = fiber.StatusNotFound
		case models.ErrKindStateConflict:
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(models.ErrorResponse{
			Status:  status,
			Kind:    appErr.Kind,
			Message: appErr.Message,
		})
	}

	return HandleError(c, fiber.StatusInternalServerError, err.Error())
}
