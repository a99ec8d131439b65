package middleware

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"taskflow-api/pkg/apperrors"
	"taskflow-api/pkg/logger"
	"taskflow-api/pkg/utils"
)

// ErrorHandler แปลง domain error เป็น HTTP response ที่ boundary เดียว
// ทุก body ใช้รูปแบบ {timestamp, status, error, message, path}
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		label := "Internal Server Error"
		message := "Unexpected error occurred"

		var appErr *apperrors.Error
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			label = appErr.Label
			message = appErr.Message
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			label = http.StatusText(fiberErr.Code)
			message = fiberErr.Message
		default:
			// อย่าปล่อยรายละเอียด internal error ออกไปหา client
			logger.ErrorContext(c.UserContext(), "Unhandled error", "path", c.Path(), "error", err)
		}

		return utils.WriteError(c, status, label, message)
	}
}
