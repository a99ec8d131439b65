package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody รูปแบบ error ของทุก response ที่ไม่ใช่ 2xx
type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func NoContentResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func WriteError(c *fiber.Ctx, status int, label, message string) error {
	return c.Status(status).JSON(ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     label,
		Message:   message,
		Path:      c.Path(),
	})
}
